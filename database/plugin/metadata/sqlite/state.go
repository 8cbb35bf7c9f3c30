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

const (
	registryStateRowId = 1
)

// GetRegistryState gets the singleton registry state row. Returns nil
// without error when the registry has not been initialized.
func (d *MetadataStoreSqlite) GetRegistryState(
	txn *gorm.DB,
) (*models.RegistryState, error) {
	tmpState := models.RegistryState{}
	result := d.resolveDB(txn).First(&tmpState, "id = ?", registryStateRowId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &tmpState, nil
}

// SetRegistryState saves the singleton registry state row
func (d *MetadataStoreSqlite) SetRegistryState(
	state *models.RegistryState,
	txn *gorm.DB,
) error {
	state.ID = registryStateRowId
	onConflict := clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}
	if result := d.resolveDB(txn).Clauses(onConflict).Create(state); result.Error != nil {
		return result.Error
	}
	return nil
}
