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
	ErrTraitCategoryNotFound = errors.New("trait category not found")
	ErrNftTraitNotFound      = errors.New("nft trait not found")
)

// TraitCategory is an owner-curated vocabulary entry for typed traits
type TraitCategory struct {
	ID          uint   `gorm:"primaryKey"`
	CategoryID  string `gorm:"uniqueIndex;size:64"`
	Name        string `gorm:"size:64"`
	Description string `gorm:"size:256"`
	CreatedBy   string `gorm:"size:128"`
	CreatedAt   uint64
}

func (TraitCategory) TableName() string {
	return "trait_category"
}

// NftTrait assigns a trait value to an asset. Last write wins; no history
// is kept.
type NftTrait struct {
	ID         uint   `gorm:"primaryKey"`
	NftID      string `gorm:"index:idx_nft_trait,unique;size:64"`
	CategoryID string `gorm:"index:idx_nft_trait,unique;size:64"`
	Value      string `gorm:"size:256"`
}

func (NftTrait) TableName() string {
	return "nft_trait"
}
