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

package registry

import (
	"errors"

	"github.com/SirbennyAngel/save-web3/database"
	"github.com/SirbennyAngel/save-web3/database/models"
)

// RegisterGame creates a new game record owned by the calling principal.
// Anyone may register a game they will own. The game is also appended to
// the caller's developer index, which has a hard capacity.
func (s *State) RegisterGame(
	principal, gameId, name, websiteUrl, description string,
) error {
	s.Lock()
	defer s.Unlock()
	if principal == "" || !validId(gameId) || name == "" ||
		!validText(name) || !validText(websiteUrl) ||
		!validText(description) {
		return s.opErr(ErrInvalidParameters)
	}
	txn := s.db.Transaction(true)
	err := txn.Do(func(txn *database.Txn) error {
		// Uniqueness
		_, err := s.db.GetGame(gameId, txn)
		if err == nil {
			return ErrGameAlreadyExists
		}
		if !errors.Is(err, models.ErrGameNotFound) {
			return err
		}
		// Capacity of the developer index
		developerGames, err := s.db.GetDeveloperGames(principal, txn)
		if err != nil {
			return err
		}
		if len(developerGames) >= MaxDeveloperGames {
			return ErrDeveloperGameLimit
		}
		ordinal, err := s.nextOrdinal(txn)
		if err != nil {
			return err
		}
		if err := s.db.SetGame(
			&models.Game{
				GameID:       gameId,
				Name:         name,
				Developer:    principal,
				WebsiteURL:   websiteUrl,
				Description:  description,
				RegisteredAt: ordinal,
				Active:       true,
			},
			txn,
		); err != nil {
			return err
		}
		if err := s.db.AddDeveloperGame(
			&models.DeveloperGame{
				Developer: principal,
				GameID:    gameId,
				Position:  uint(len(developerGames)), //nolint:gosec
			},
			txn,
		); err != nil {
			return err
		}
		return s.journal(txn, ordinal, "registerGame", principal, gameId)
	})
	if err != nil {
		return s.opErr(err)
	}
	s.metrics.gamesRegistered.Inc()
	s.config.Logger.Info(
		"registered game",
		"component", "registry",
		"game_id", gameId,
		"developer", principal,
	)
	return s.opErr(nil)
}

// UpdateGame overwrites a game's mutable fields. The developer and
// registration ordinal are preserved.
func (s *State) UpdateGame(
	principal, gameId, name, websiteUrl, description string,
	active bool,
) error {
	s.Lock()
	defer s.Unlock()
	if principal == "" || !validId(gameId) || name == "" ||
		!validText(name) || !validText(websiteUrl) ||
		!validText(description) {
		return s.opErr(ErrInvalidParameters)
	}
	txn := s.db.Transaction(true)
	err := txn.Do(func(txn *database.Txn) error {
		game, err := s.db.GetGame(gameId, txn)
		if err != nil {
			return err
		}
		authorized, err := s.IsAuthorizedForGame(principal, gameId, txn)
		if err != nil {
			return err
		}
		if !authorized {
			return ErrNotAuthorized
		}
		game.Name = name
		game.WebsiteURL = websiteUrl
		game.Description = description
		game.Active = active
		if err := s.db.SetGame(game, txn); err != nil {
			return err
		}
		ordinal, err := s.nextOrdinal(txn)
		if err != nil {
			return err
		}
		return s.journal(txn, ordinal, "updateGame", principal, gameId)
	})
	return s.opErr(err)
}

// GetGame returns a game by its identifier
func (s *State) GetGame(gameId string) (*models.Game, error) {
	return s.db.GetGame(gameId, nil)
}

// GetGamesByDeveloper returns the games registered by a developer in
// registration order. A developer with no games yields an empty slice.
func (s *State) GetGamesByDeveloper(
	developer string,
) ([]models.Game, error) {
	txn := s.db.Transaction(false)
	defer txn.Release()
	developerGames, err := s.db.GetDeveloperGames(developer, txn)
	if err != nil {
		return nil, err
	}
	ret := []models.Game{}
	for _, entry := range developerGames {
		game, err := s.db.GetGame(entry.GameID, txn)
		if err != nil {
			return nil, err
		}
		ret = append(ret, *game)
	}
	return ret, nil
}
