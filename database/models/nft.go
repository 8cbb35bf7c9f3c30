// Copyright 2026 SirbennyAngel
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package models

import "errors"

var ErrNftNotFound = errors.New("nft not found")

// Nft describes a registered asset. Creator, origin game, and creation
// ordinal are fixed at registration; only the mutable fields change on
// update.
type Nft struct {
	ID            uint   `gorm:"primaryKey"`
	NftID         string `gorm:"uniqueIndex;size:64"`
	Name          string `gorm:"size:64"`
	OriginGameID  string `gorm:"index;size:64"`
	Creator       string `gorm:"index;size:128"`
	CreationBlock uint64
	MetadataURL   string `gorm:"size:256"`
	RoyaltyBps    uint
	Active        bool
}

func (Nft) TableName() string {
	return "nft"
}
