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

// GetRegistryState returns the singleton registry state row
func (d *Database) GetRegistryState(
	txn *Txn,
) (*models.RegistryState, error) {
	if txn == nil {
		txn = d.Transaction(false)
		defer txn.Release()
	}
	ret, err := d.metadata.GetRegistryState(txn.Metadata())
	if err != nil {
		return nil, err
	}
	if ret == nil {
		return nil, models.ErrRegistryStateNotFound
	}
	return ret, nil
}

// SetRegistryState stores the singleton registry state row
func (d *Database) SetRegistryState(
	state *models.RegistryState,
	txn *Txn,
) error {
	if txn == nil {
		txn = d.Transaction(true)
		if err := txn.Do(func(txn *Txn) error {
			return d.metadata.SetRegistryState(state, txn.Metadata())
		}); err != nil {
			return err
		}
		return nil
	}
	return d.metadata.SetRegistryState(state, txn.Metadata())
}
