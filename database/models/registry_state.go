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

package models

import "errors"

var ErrRegistryStateNotFound = errors.New("registry state not found")

// RegistryState is the singleton configuration row holding the registry
// owner principal and the monotonic call sequence. The owner is set to the
// deployer on first open and only changes through an owner transfer.
type RegistryState struct {
	ID       uint   `gorm:"primaryKey"`
	Owner    string `gorm:"size:128"`
	Sequence uint64
}

func (RegistryState) TableName() string {
	return "registry_state"
}
