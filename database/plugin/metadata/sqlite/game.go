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

// GetGame gets a game by its identifier. Returns nil without error when the
// game does not exist.
func (d *MetadataStoreSqlite) GetGame(
	gameId string,
	txn *gorm.DB,
) (*models.Game, error) {
	tmpGame := models.Game{}
	result := d.resolveDB(txn).First(&tmpGame, "game_id = ?", gameId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &tmpGame, nil
}

// SetGame saves a game record, overwriting any existing record with the
// same identifier
func (d *MetadataStoreSqlite) SetGame(
	game *models.Game,
	txn *gorm.DB,
) error {
	// A fetched record carries its row id and is updated in place
	if game.ID != 0 {
		if result := d.resolveDB(txn).Save(game); result.Error != nil {
			return result.Error
		}
		return nil
	}
	onConflict := clause.OnConflict{
		Columns:   []clause.Column{{Name: "game_id"}},
		UpdateAll: true,
	}
	if result := d.resolveDB(txn).Clauses(onConflict).Create(game); result.Error != nil {
		return result.Error
	}
	return nil
}

// GetDeveloperGames returns a developer's game index entries in insertion
// order. An empty slice is returned for an unknown developer.
func (d *MetadataStoreSqlite) GetDeveloperGames(
	developer string,
	txn *gorm.DB,
) ([]models.DeveloperGame, error) {
	ret := []models.DeveloperGame{}
	result := d.resolveDB(txn).
		Where("developer = ?", developer).
		Order("position").
		Find(&ret)
	if result.Error != nil {
		return nil, result.Error
	}
	return ret, nil
}

// AddDeveloperGame appends an entry to a developer's game index
func (d *MetadataStoreSqlite) AddDeveloperGame(
	entry *models.DeveloperGame,
	txn *gorm.DB,
) error {
	if result := d.resolveDB(txn).Create(entry); result.Error != nil {
		return result.Error
	}
	return nil
}
