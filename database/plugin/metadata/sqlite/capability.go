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

// GetCapability gets a capability from the catalog. Returns nil without
// error when the capability does not exist.
func (d *MetadataStoreSqlite) GetCapability(
	capabilityId string,
	txn *gorm.DB,
) (*models.Capability, error) {
	tmpCapability := models.Capability{}
	result := d.resolveDB(txn).
		First(&tmpCapability, "capability_id = ?", capabilityId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &tmpCapability, nil
}

// SetCapability saves a capability catalog entry
func (d *MetadataStoreSqlite) SetCapability(
	capability *models.Capability,
	txn *gorm.DB,
) error {
	onConflict := clause.OnConflict{
		Columns:   []clause.Column{{Name: "capability_id"}},
		UpdateAll: true,
	}
	if result := d.resolveDB(txn).Clauses(onConflict).Create(capability); result.Error != nil {
		return result.Error
	}
	return nil
}

// GetNftCapability gets a capability flag for an NFT. Returns nil without
// error when the flag has never been set.
func (d *MetadataStoreSqlite) GetNftCapability(
	nftId string,
	capabilityId string,
	txn *gorm.DB,
) (*models.NftCapability, error) {
	tmpCapability := models.NftCapability{}
	result := d.resolveDB(txn).
		First(
			&tmpCapability,
			"nft_id = ? AND capability_id = ?",
			nftId,
			capabilityId,
		)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &tmpCapability, nil
}

// SetNftCapability upserts a capability flag assignment (last write wins)
func (d *MetadataStoreSqlite) SetNftCapability(
	capability *models.NftCapability,
	txn *gorm.DB,
) error {
	onConflict := clause.OnConflict{
		Columns: []clause.Column{
			{Name: "nft_id"},
			{Name: "capability_id"},
		},
		UpdateAll: true,
	}
	if result := d.resolveDB(txn).Clauses(onConflict).Create(capability); result.Error != nil {
		return result.Error
	}
	return nil
}
