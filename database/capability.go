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

// GetCapability returns a capability by its identifier
func (d *Database) GetCapability(
	capabilityId string,
	txn *Txn,
) (*models.Capability, error) {
	if txn == nil {
		txn = d.Transaction(false)
		defer txn.Release()
	}
	ret, err := d.metadata.GetCapability(capabilityId, txn.Metadata())
	if err != nil {
		return nil, err
	}
	if ret == nil {
		return nil, models.ErrCapabilityNotFound
	}
	return ret, nil
}

// SetCapability stores a capability record
func (d *Database) SetCapability(
	capability *models.Capability,
	txn *Txn,
) error {
	if txn == nil {
		txn = d.Transaction(true)
		if err := txn.Do(func(txn *Txn) error {
			return d.metadata.SetCapability(capability, txn.Metadata())
		}); err != nil {
			return err
		}
		return nil
	}
	return d.metadata.SetCapability(capability, txn.Metadata())
}

// GetNftCapability returns the capability state assigned to an NFT
func (d *Database) GetNftCapability(
	nftId string,
	capabilityId string,
	txn *Txn,
) (*models.NftCapability, error) {
	if txn == nil {
		txn = d.Transaction(false)
		defer txn.Release()
	}
	ret, err := d.metadata.GetNftCapability(nftId, capabilityId, txn.Metadata())
	if err != nil {
		return nil, err
	}
	if ret == nil {
		return nil, models.ErrNftCapabilityNotFound
	}
	return ret, nil
}

// SetNftCapability stores an NFT capability assignment, replacing any
// existing state for the same NFT and capability
func (d *Database) SetNftCapability(
	capability *models.NftCapability,
	txn *Txn,
) error {
	if txn == nil {
		txn = d.Transaction(true)
		if err := txn.Do(func(txn *Txn) error {
			return d.metadata.SetNftCapability(capability, txn.Metadata())
		}); err != nil {
			return err
		}
		return nil
	}
	return d.metadata.SetNftCapability(capability, txn.Metadata())
}
