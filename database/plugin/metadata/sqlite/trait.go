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

package sqlite

import (
	"errors"

	"github.com/SirbennyAngel/save-web3/database/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetTraitCategory gets a trait category from the catalog. Returns nil
// without error when the category does not exist.
func (d *MetadataStoreSqlite) GetTraitCategory(
	categoryId string,
	txn *gorm.DB,
) (*models.TraitCategory, error) {
	tmpCategory := models.TraitCategory{}
	result := d.resolveDB(txn).
		First(&tmpCategory, "category_id = ?", categoryId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &tmpCategory, nil
}

// SetTraitCategory saves a trait category catalog entry
func (d *MetadataStoreSqlite) SetTraitCategory(
	category *models.TraitCategory,
	txn *gorm.DB,
) error {
	onConflict := clause.OnConflict{
		Columns:   []clause.Column{{Name: "category_id"}},
		UpdateAll: true,
	}
	if result := d.resolveDB(txn).Clauses(onConflict).Create(category); result.Error != nil {
		return result.Error
	}
	return nil
}

// GetNftTrait gets a trait value assignment for an NFT. Returns nil without
// error when no value is assigned.
func (d *MetadataStoreSqlite) GetNftTrait(
	nftId string,
	categoryId string,
	txn *gorm.DB,
) (*models.NftTrait, error) {
	tmpTrait := models.NftTrait{}
	result := d.resolveDB(txn).
		First(&tmpTrait, "nft_id = ? AND category_id = ?", nftId, categoryId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &tmpTrait, nil
}

// SetNftTrait upserts a trait value assignment (last write wins)
func (d *MetadataStoreSqlite) SetNftTrait(
	trait *models.NftTrait,
	txn *gorm.DB,
) error {
	onConflict := clause.OnConflict{
		Columns: []clause.Column{
			{Name: "nft_id"},
			{Name: "category_id"},
		},
		UpdateAll: true,
	}
	if result := d.resolveDB(txn).Clauses(onConflict).Create(trait); result.Error != nil {
		return result.Error
	}
	return nil
}
