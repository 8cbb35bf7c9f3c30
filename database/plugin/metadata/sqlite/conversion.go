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

// GetConversionRule gets a conversion rule by its key triple. Returns nil
// without error when no rule exists for the triple.
func (d *MetadataStoreSqlite) GetConversionRule(
	nftId string,
	sourceGameId string,
	targetGameId string,
	txn *gorm.DB,
) (*models.ConversionRule, error) {
	tmpRule := models.ConversionRule{}
	result := d.resolveDB(txn).
		First(
			&tmpRule,
			"nft_id = ? AND source_game_id = ? AND target_game_id = ?",
			nftId,
			sourceGameId,
			targetGameId,
		)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &tmpRule, nil
}

// SetConversionRule saves a conversion rule, overwriting any existing rule
// for the same key triple. Create-versus-update semantics are enforced by
// the caller.
func (d *MetadataStoreSqlite) SetConversionRule(
	rule *models.ConversionRule,
	txn *gorm.DB,
) error {
	// A fetched record carries its row id and is updated in place
	if rule.ID != 0 {
		if result := d.resolveDB(txn).Save(rule); result.Error != nil {
			return result.Error
		}
		return nil
	}
	onConflict := clause.OnConflict{
		Columns: []clause.Column{
			{Name: "nft_id"},
			{Name: "source_game_id"},
			{Name: "target_game_id"},
		},
		UpdateAll: true,
	}
	if result := d.resolveDB(txn).Clauses(onConflict).Create(rule); result.Error != nil {
		return result.Error
	}
	return nil
}

// DeleteConversionRule removes a conversion rule entirely
func (d *MetadataStoreSqlite) DeleteConversionRule(
	rule *models.ConversionRule,
	txn *gorm.DB,
) error {
	result := d.resolveDB(txn).
		Where(
			"nft_id = ? AND source_game_id = ? AND target_game_id = ?",
			rule.NftID,
			rule.SourceGameID,
			rule.TargetGameID,
		).
		Delete(&models.ConversionRule{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}
