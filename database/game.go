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

package database

import (
	"github.com/SirbennyAngel/save-web3/database/models"
)

// GetGame returns a game by its identifier
func (d *Database) GetGame(
	gameId string,
	txn *Txn,
) (*models.Game, error) {
	if txn == nil {
		txn = d.Transaction(false)
		defer txn.Release()
	}
	ret, err := d.metadata.GetGame(gameId, txn.Metadata())
	if err != nil {
		return nil, err
	}
	if ret == nil {
		return nil, models.ErrGameNotFound
	}
	return ret, nil
}

// SetGame stores a game record, replacing any existing record with the
// same identifier
func (d *Database) SetGame(
	game *models.Game,
	txn *Txn,
) error {
	if txn == nil {
		txn = d.Transaction(true)
		if err := txn.Do(func(txn *Txn) error {
			return d.metadata.SetGame(game, txn.Metadata())
		}); err != nil {
			return err
		}
		return nil
	}
	return d.metadata.SetGame(game, txn.Metadata())
}

// GetDeveloperGames returns the games registered by a developer in
// registration order
func (d *Database) GetDeveloperGames(
	developer string,
	txn *Txn,
) ([]models.DeveloperGame, error) {
	if txn == nil {
		txn = d.Transaction(false)
		defer txn.Release()
	}
	return d.metadata.GetDeveloperGames(developer, txn.Metadata())
}

// AddDeveloperGame appends a game to a developer's game index
func (d *Database) AddDeveloperGame(
	developerGame *models.DeveloperGame,
	txn *Txn,
) error {
	if txn == nil {
		txn = d.Transaction(true)
		if err := txn.Do(func(txn *Txn) error {
			return d.metadata.AddDeveloperGame(developerGame, txn.Metadata())
		}); err != nil {
			return err
		}
		return nil
	}
	return d.metadata.AddDeveloperGame(developerGame, txn.Metadata())
}
