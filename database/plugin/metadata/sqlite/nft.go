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

// GetNft gets an NFT by its identifier. Returns nil without error when the
// NFT does not exist.
func (d *MetadataStoreSqlite) GetNft(
	nftId string,
	txn *gorm.DB,
) (*models.Nft, error) {
	tmpNft := models.Nft{}
	result := d.resolveDB(txn).First(&tmpNft, "nft_id = ?", nftId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &tmpNft, nil
}

// SetNft saves an NFT record, overwriting any existing record with the same
// identifier
func (d *MetadataStoreSqlite) SetNft(
	nft *models.Nft,
	txn *gorm.DB,
) error {
	// A fetched record carries its row id and is updated in place
	if nft.ID != 0 {
		if result := d.resolveDB(txn).Save(nft); result.Error != nil {
			return result.Error
		}
		return nil
	}
	onConflict := clause.OnConflict{
		Columns:   []clause.Column{{Name: "nft_id"}},
		UpdateAll: true,
	}
	if result := d.resolveDB(txn).Clauses(onConflict).Create(nft); result.Error != nil {
		return result.Error
	}
	return nil
}
