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

var (
	ErrCapabilityNotFound    = errors.New("capability not found")
	ErrNftCapabilityNotFound = errors.New("nft capability not found")
)

// Capability is an owner-curated vocabulary entry for capability flags
type Capability struct {
	ID           uint   `gorm:"primaryKey"`
	CapabilityID string `gorm:"uniqueIndex;size:64"`
	Name         string `gorm:"size:64"`
	Description  string `gorm:"size:256"`
	CreatedBy    string `gorm:"size:128"`
	CreatedAt    uint64
}

func (Capability) TableName() string {
	return "capability"
}

// NftCapability records a capability flag for an asset, with optional
// free-form properties. Overwritable, no history.
type NftCapability struct {
	ID           uint   `gorm:"primaryKey"`
	NftID        string `gorm:"index:idx_nft_capability,unique;size:64"`
	CapabilityID string `gorm:"index:idx_nft_capability,unique;size:64"`
	Enabled      bool
	Properties   string `gorm:"size:256"`
}

func (NftCapability) TableName() string {
	return "nft_capability"
}
