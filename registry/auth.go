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

// Authorization predicates. These are stateless checks against current
// store contents and the calling principal. A missing entity yields false,
// not an error, so callers can sequence existence checks separately.

// IsRegistryOwner returns true iff the principal is the current registry
// owner
func (s *State) IsRegistryOwner(
	principal string,
	txn *database.Txn,
) (bool, error) {
	state, err := s.db.GetRegistryState(txn)
	if err != nil {
		return false, err
	}
	return state.Owner == principal, nil
}

// IsGameDeveloper returns true iff the game exists and its developer is
// the principal
func (s *State) IsGameDeveloper(
	principal, gameId string,
	txn *database.Txn,
) (bool, error) {
	game, err := s.db.GetGame(gameId, txn)
	if err != nil {
		if errors.Is(err, models.ErrGameNotFound) {
			return false, nil
		}
		return false, err
	}
	return game.Developer == principal, nil
}

// IsAuthorizedForGame returns true iff the principal is the registry owner
// or the game's developer
func (s *State) IsAuthorizedForGame(
	principal, gameId string,
	txn *database.Txn,
) (bool, error) {
	isOwner, err := s.IsRegistryOwner(principal, txn)
	if err != nil {
		return false, err
	}
	if isOwner {
		return true, nil
	}
	return s.IsGameDeveloper(principal, gameId, txn)
}

// IsAssetCreator returns true iff the NFT exists and its creator is the
// principal
func (s *State) IsAssetCreator(
	principal, nftId string,
	txn *database.Txn,
) (bool, error) {
	nft, err := s.db.GetNft(nftId, txn)
	if err != nil {
		if errors.Is(err, models.ErrNftNotFound) {
			return false, nil
		}
		return false, err
	}
	return nft.Creator == principal, nil
}

// IsAuthorizedForAsset returns true iff the principal is the registry
// owner or the NFT's creator
func (s *State) IsAuthorizedForAsset(
	principal, nftId string,
	txn *database.Txn,
) (bool, error) {
	isOwner, err := s.IsRegistryOwner(principal, txn)
	if err != nil {
		return false, err
	}
	if isOwner {
		return true, nil
	}
	return s.IsAssetCreator(principal, nftId, txn)
}

// isAuthorizedForConversion checks the either-side rule for conversion
// rule mutations: the asset's creator, the target game's developer, or
// the registry owner may author the edge.
func (s *State) isAuthorizedForConversion(
	principal, nftId, targetGameId string,
	txn *database.Txn,
) (bool, error) {
	isCreator, err := s.IsAssetCreator(principal, nftId, txn)
	if err != nil {
		return false, err
	}
	if isCreator {
		return true, nil
	}
	isDeveloper, err := s.IsGameDeveloper(principal, targetGameId, txn)
	if err != nil {
		return false, err
	}
	if isDeveloper {
		return true, nil
	}
	return s.IsRegistryOwner(principal, txn)
}
