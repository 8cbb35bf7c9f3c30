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

// RegisterTraitCategory adds an entry to the global trait vocabulary.
// Owner-only.
func (s *State) RegisterTraitCategory(
	principal, categoryId, name, description string,
) error {
	s.Lock()
	defer s.Unlock()
	if principal == "" || !validId(categoryId) || name == "" ||
		!validText(name) || !validText(description) {
		return s.opErr(ErrInvalidParameters)
	}
	txn := s.db.Transaction(true)
	err := txn.Do(func(txn *database.Txn) error {
		isOwner, err := s.IsRegistryOwner(principal, txn)
		if err != nil {
			return err
		}
		if !isOwner {
			return ErrNotAuthorized
		}
		_, err = s.db.GetTraitCategory(categoryId, txn)
		if err == nil {
			return ErrTraitCategoryAlreadyExists
		}
		if !errors.Is(err, models.ErrTraitCategoryNotFound) {
			return err
		}
		ordinal, err := s.nextOrdinal(txn)
		if err != nil {
			return err
		}
		if err := s.db.SetTraitCategory(
			&models.TraitCategory{
				CategoryID:  categoryId,
				Name:        name,
				Description: description,
				CreatedBy:   principal,
				CreatedAt:   ordinal,
			},
			txn,
		); err != nil {
			return err
		}
		return s.journal(
			txn,
			ordinal,
			"registerTraitCategory",
			principal,
			categoryId,
		)
	})
	if err != nil {
		return s.opErr(err)
	}
	s.metrics.traitCategories.Inc()
	return s.opErr(nil)
}

// SetNftTrait assigns a trait value to an NFT. The value is overwritten
// unconditionally, with no history kept.
func (s *State) SetNftTrait(
	principal, nftId, categoryId, value string,
) error {
	s.Lock()
	defer s.Unlock()
	if principal == "" || !validId(nftId) || !validId(categoryId) ||
		!validText(value) {
		return s.opErr(ErrInvalidParameters)
	}
	txn := s.db.Transaction(true)
	err := txn.Do(func(txn *database.Txn) error {
		if _, err := s.db.GetNft(nftId, txn); err != nil {
			return err
		}
		if _, err := s.db.GetTraitCategory(categoryId, txn); err != nil {
			return err
		}
		authorized, err := s.IsAuthorizedForAsset(principal, nftId, txn)
		if err != nil {
			return err
		}
		if !authorized {
			return ErrNotAuthorized
		}
		if err := s.db.SetNftTrait(
			&models.NftTrait{
				NftID:      nftId,
				CategoryID: categoryId,
				Value:      value,
			},
			txn,
		); err != nil {
			return err
		}
		ordinal, err := s.nextOrdinal(txn)
		if err != nil {
			return err
		}
		return s.journal(
			txn,
			ordinal,
			"setNftTrait",
			principal,
			nftId+"/"+categoryId,
		)
	})
	return s.opErr(err)
}

// GetTraitCategory returns a trait category by its identifier
func (s *State) GetTraitCategory(
	categoryId string,
) (*models.TraitCategory, error) {
	return s.db.GetTraitCategory(categoryId, nil)
}

// GetNftTrait returns an NFT's trait value for a category
func (s *State) GetNftTrait(
	nftId, categoryId string,
) (*models.NftTrait, error) {
	return s.db.GetNftTrait(nftId, categoryId, nil)
}
