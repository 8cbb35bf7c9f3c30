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

// RegisterAsset creates a new NFT record anchored to an origin game. Only
// the origin game's developer or the registry owner may mint an asset
// attributed to the game.
func (s *State) RegisterAsset(
	principal, nftId, name, originGameId, metadataUrl string,
	royaltyBps uint,
) error {
	s.Lock()
	defer s.Unlock()
	if principal == "" || !validId(nftId) || name == "" ||
		!validText(name) || !validId(originGameId) ||
		!validText(metadataUrl) {
		return s.opErr(ErrInvalidParameters)
	}
	txn := s.db.Transaction(true)
	err := txn.Do(func(txn *database.Txn) error {
		// Origin game must exist before the authorization check so a
		// missing game surfaces as GameNotFound rather than NotAuthorized
		if _, err := s.db.GetGame(originGameId, txn); err != nil {
			return err
		}
		authorized, err := s.IsAuthorizedForGame(principal, originGameId, txn)
		if err != nil {
			return err
		}
		if !authorized {
			return ErrNotAuthorized
		}
		_, err = s.db.GetNft(nftId, txn)
		if err == nil {
			return ErrNftAlreadyExists
		}
		if !errors.Is(err, models.ErrNftNotFound) {
			return err
		}
		if royaltyBps > MaxRoyaltyBps {
			return ErrInvalidRoyaltyPercentage
		}
		ordinal, err := s.nextOrdinal(txn)
		if err != nil {
			return err
		}
		if err := s.db.SetNft(
			&models.Nft{
				NftID:         nftId,
				Name:          name,
				OriginGameID:  originGameId,
				Creator:       principal,
				CreationBlock: ordinal,
				MetadataURL:   metadataUrl,
				RoyaltyBps:    royaltyBps,
				Active:        true,
			},
			txn,
		); err != nil {
			return err
		}
		return s.journal(txn, ordinal, "registerAsset", principal, nftId)
	})
	if err != nil {
		return s.opErr(err)
	}
	s.metrics.assetsRegistered.Inc()
	s.config.Logger.Info(
		"registered asset",
		"component", "registry",
		"nft_id", nftId,
		"origin_game_id", originGameId,
		"creator", principal,
	)
	return s.opErr(nil)
}

// UpdateAsset overwrites an NFT's mutable fields. The creator, origin
// game, and creation ordinal are preserved.
func (s *State) UpdateAsset(
	principal, nftId, name, metadataUrl string,
	royaltyBps uint,
	active bool,
) error {
	s.Lock()
	defer s.Unlock()
	if principal == "" || !validId(nftId) || name == "" ||
		!validText(name) || !validText(metadataUrl) {
		return s.opErr(ErrInvalidParameters)
	}
	txn := s.db.Transaction(true)
	err := txn.Do(func(txn *database.Txn) error {
		nft, err := s.db.GetNft(nftId, txn)
		if err != nil {
			return err
		}
		authorized, err := s.IsAuthorizedForAsset(principal, nftId, txn)
		if err != nil {
			return err
		}
		if !authorized {
			return ErrNotAuthorized
		}
		if royaltyBps > MaxRoyaltyBps {
			return ErrInvalidRoyaltyPercentage
		}
		nft.Name = name
		nft.MetadataURL = metadataUrl
		nft.RoyaltyBps = royaltyBps
		nft.Active = active
		if err := s.db.SetNft(nft, txn); err != nil {
			return err
		}
		ordinal, err := s.nextOrdinal(txn)
		if err != nil {
			return err
		}
		return s.journal(txn, ordinal, "updateAsset", principal, nftId)
	})
	return s.opErr(err)
}

// GetNft returns an NFT by its identifier
func (s *State) GetNft(nftId string) (*models.Nft, error) {
	return s.db.GetNft(nftId, nil)
}

// IsNftCompatibleWithGame reports whether an NFT can be represented in a
// game: always true for the origin game, otherwise true iff a conversion
// rule exists from the origin game to the target. A missing NFT yields
// false rather than an error.
func (s *State) IsNftCompatibleWithGame(
	nftId, gameId string,
) (bool, error) {
	txn := s.db.Transaction(false)
	defer txn.Release()
	nft, err := s.db.GetNft(nftId, txn)
	if err != nil {
		if errors.Is(err, models.ErrNftNotFound) {
			return false, nil
		}
		return false, err
	}
	if nft.OriginGameID == gameId {
		return true, nil
	}
	_, err = s.db.GetConversionRule(nftId, nft.OriginGameID, gameId, txn)
	if err != nil {
		if errors.Is(err, models.ErrConversionRuleNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
