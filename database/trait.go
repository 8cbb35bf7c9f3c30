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

// GetTraitCategory returns a trait category by its identifier
func (d *Database) GetTraitCategory(
	categoryId string,
	txn *Txn,
) (*models.TraitCategory, error) {
	if txn == nil {
		txn = d.Transaction(false)
		defer txn.Release()
	}
	ret, err := d.metadata.GetTraitCategory(categoryId, txn.Metadata())
	if err != nil {
		return nil, err
	}
	if ret == nil {
		return nil, models.ErrTraitCategoryNotFound
	}
	return ret, nil
}

// SetTraitCategory stores a trait category record
func (d *Database) SetTraitCategory(
	category *models.TraitCategory,
	txn *Txn,
) error {
	if txn == nil {
		txn = d.Transaction(true)
		if err := txn.Do(func(txn *Txn) error {
			return d.metadata.SetTraitCategory(category, txn.Metadata())
		}); err != nil {
			return err
		}
		return nil
	}
	return d.metadata.SetTraitCategory(category, txn.Metadata())
}

// GetNftTrait returns the trait value assigned to an NFT for a category
func (d *Database) GetNftTrait(
	nftId string,
	categoryId string,
	txn *Txn,
) (*models.NftTrait, error) {
	if txn == nil {
		txn = d.Transaction(false)
		defer txn.Release()
	}
	ret, err := d.metadata.GetNftTrait(nftId, categoryId, txn.Metadata())
	if err != nil {
		return nil, err
	}
	if ret == nil {
		return nil, models.ErrNftTraitNotFound
	}
	return ret, nil
}

// SetNftTrait stores an NFT trait assignment, replacing any existing value
// for the same NFT and category
func (d *Database) SetNftTrait(
	trait *models.NftTrait,
	txn *Txn,
) error {
	if txn == nil {
		txn = d.Transaction(true)
		if err := txn.Do(func(txn *Txn) error {
			return d.metadata.SetNftTrait(trait, txn.Metadata())
		}); err != nil {
			return err
		}
		return nil
	}
	return d.metadata.SetNftTrait(trait, txn.Metadata())
}
