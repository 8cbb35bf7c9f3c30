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

package registry_test

import (
	"testing"

	"github.com/SirbennyAngel/save-web3/database/models"
	"github.com/SirbennyAngel/save-web3/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterTraitCategory(t *testing.T) {
	s := newTestState(t)
	require.NoError(
		t,
		s.RegisterTraitCategory(
			testOwner,
			"rarity",
			"Rarity",
			"How rare this asset is",
		),
	)
	category, err := s.GetTraitCategory("rarity")
	require.NoError(t, err)
	assert.Equal(t, "rarity", category.CategoryID)
	assert.Equal(t, "Rarity", category.Name)
	assert.Equal(t, "How rare this asset is", category.Description)
	assert.Equal(t, testOwner, category.CreatedBy)
	assert.NotZero(t, category.CreatedAt)
}

func TestRegisterTraitCategoryOwnerOnly(t *testing.T) {
	s := newTestState(t)
	err := s.RegisterTraitCategory("dev1", "rarity", "Rarity", "")
	require.ErrorIs(t, err, registry.ErrNotAuthorized)
	_, err = s.GetTraitCategory("rarity")
	require.ErrorIs(t, err, models.ErrTraitCategoryNotFound)
}

func TestRegisterTraitCategoryDuplicate(t *testing.T) {
	s := newTestState(t)
	require.NoError(
		t,
		s.RegisterTraitCategory(testOwner, "rarity", "Rarity", ""),
	)
	err := s.RegisterTraitCategory(testOwner, "rarity", "Rarity Again", "")
	require.ErrorIs(t, err, registry.ErrTraitCategoryAlreadyExists)
}

func TestSetNftTrait(t *testing.T) {
	s := newTestStateWithGame(t)
	require.NoError(
		t,
		s.RegisterAsset("dev1", "drone-1", "Scout Drone", "skyworld", "", 0),
	)
	require.NoError(
		t,
		s.RegisterTraitCategory(testOwner, "rarity", "Rarity", ""),
	)
	require.NoError(
		t,
		s.SetNftTrait("dev1", "drone-1", "rarity", "legendary"),
	)
	trait, err := s.GetNftTrait("drone-1", "rarity")
	require.NoError(t, err)
	assert.Equal(t, "drone-1", trait.NftID)
	assert.Equal(t, "rarity", trait.CategoryID)
	assert.Equal(t, "legendary", trait.Value)
	// Assigning again overwrites with no history
	require.NoError(
		t,
		s.SetNftTrait("dev1", "drone-1", "rarity", "common"),
	)
	trait, err = s.GetNftTrait("drone-1", "rarity")
	require.NoError(t, err)
	assert.Equal(t, "common", trait.Value)
}

func TestSetNftTraitNotAuthorized(t *testing.T) {
	s := newTestStateWithGame(t)
	require.NoError(
		t,
		s.RegisterAsset("dev1", "drone-1", "Scout Drone", "skyworld", "", 0),
	)
	require.NoError(
		t,
		s.RegisterTraitCategory(testOwner, "rarity", "Rarity", ""),
	)
	err := s.SetNftTrait("dev2", "drone-1", "rarity", "legendary")
	require.ErrorIs(t, err, registry.ErrNotAuthorized)
	_, err = s.GetNftTrait("drone-1", "rarity")
	require.ErrorIs(t, err, models.ErrNftTraitNotFound)
}

func TestSetNftTraitUnknownCategory(t *testing.T) {
	s := newTestStateWithGame(t)
	require.NoError(
		t,
		s.RegisterAsset("dev1", "drone-1", "Scout Drone", "skyworld", "", 0),
	)
	err := s.SetNftTrait("dev1", "drone-1", "nope", "legendary")
	require.ErrorIs(t, err, models.ErrTraitCategoryNotFound)
}

func TestSetNftTraitUnknownNft(t *testing.T) {
	s := newTestState(t)
	require.NoError(
		t,
		s.RegisterTraitCategory(testOwner, "rarity", "Rarity", ""),
	)
	err := s.SetNftTrait("dev1", "nope", "rarity", "legendary")
	require.ErrorIs(t, err, models.ErrNftNotFound)
}
