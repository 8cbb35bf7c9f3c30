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

// newTestStateWithGame returns a state with a game registered by dev1
func newTestStateWithGame(t *testing.T) *registry.State {
	t.Helper()
	s := newTestState(t)
	require.NoError(
		t,
		s.RegisterGame("dev1", "skyworld", "Skyworld", "", ""),
	)
	return s
}

func TestRegisterAssetRoundTrip(t *testing.T) {
	s := newTestStateWithGame(t)
	require.NoError(
		t,
		s.RegisterAsset(
			"dev1",
			"drone-1",
			"Scout Drone",
			"skyworld",
			"https://assets.example/drone-1.json",
			250,
		),
	)
	nft, err := s.GetNft("drone-1")
	require.NoError(t, err)
	assert.Equal(t, "drone-1", nft.NftID)
	assert.Equal(t, "Scout Drone", nft.Name)
	assert.Equal(t, "skyworld", nft.OriginGameID)
	assert.Equal(t, "dev1", nft.Creator)
	assert.Equal(t, "https://assets.example/drone-1.json", nft.MetadataURL)
	assert.Equal(t, uint(250), nft.RoyaltyBps)
	assert.True(t, nft.Active)
	assert.NotZero(t, nft.CreationBlock)
}

func TestRegisterAssetGameNotFound(t *testing.T) {
	s := newTestState(t)
	err := s.RegisterAsset("dev1", "drone-1", "Scout Drone", "nope", "", 0)
	require.ErrorIs(t, err, models.ErrGameNotFound)
}

func TestRegisterAssetNotAuthorized(t *testing.T) {
	s := newTestStateWithGame(t)
	err := s.RegisterAsset("dev2", "drone-1", "Scout Drone", "skyworld", "", 0)
	require.ErrorIs(t, err, registry.ErrNotAuthorized)
	_, err = s.GetNft("drone-1")
	require.ErrorIs(t, err, models.ErrNftNotFound)
}

func TestRegisterAssetByRegistryOwner(t *testing.T) {
	s := newTestStateWithGame(t)
	require.NoError(
		t,
		s.RegisterAsset(testOwner, "drone-1", "Scout Drone", "skyworld", "", 0),
	)
	nft, err := s.GetNft("drone-1")
	require.NoError(t, err)
	assert.Equal(t, testOwner, nft.Creator)
}

func TestRegisterAssetDuplicate(t *testing.T) {
	s := newTestStateWithGame(t)
	require.NoError(
		t,
		s.RegisterAsset("dev1", "drone-1", "Scout Drone", "skyworld", "", 0),
	)
	err := s.RegisterAsset("dev1", "drone-1", "Impostor", "skyworld", "", 0)
	require.ErrorIs(t, err, registry.ErrNftAlreadyExists)
	nft, err := s.GetNft("drone-1")
	require.NoError(t, err)
	assert.Equal(t, "Scout Drone", nft.Name)
}

func TestRegisterAssetRoyaltyCap(t *testing.T) {
	s := newTestStateWithGame(t)
	// Maximum allowed royalty succeeds
	require.NoError(
		t,
		s.RegisterAsset("dev1", "drone-1", "Scout Drone", "skyworld", "", 3000),
	)
	// One basis point over the cap fails and leaves no record
	err := s.RegisterAsset("dev1", "drone-2", "Heavy Drone", "skyworld", "", 3001)
	require.ErrorIs(t, err, registry.ErrInvalidRoyaltyPercentage)
	_, err = s.GetNft("drone-2")
	require.ErrorIs(t, err, models.ErrNftNotFound)
}

func TestUpdateAsset(t *testing.T) {
	s := newTestStateWithGame(t)
	require.NoError(
		t,
		s.RegisterAsset("dev1", "drone-1", "Scout Drone", "skyworld", "", 250),
	)
	before, err := s.GetNft("drone-1")
	require.NoError(t, err)
	require.NoError(
		t,
		s.UpdateAsset(
			"dev1",
			"drone-1",
			"Scout Drone Mk2",
			"https://assets.example/drone-1v2.json",
			500,
			false,
		),
	)
	nft, err := s.GetNft("drone-1")
	require.NoError(t, err)
	assert.Equal(t, "Scout Drone Mk2", nft.Name)
	assert.Equal(t, "https://assets.example/drone-1v2.json", nft.MetadataURL)
	assert.Equal(t, uint(500), nft.RoyaltyBps)
	assert.False(t, nft.Active)
	// Provenance fields survive the update
	assert.Equal(t, "dev1", nft.Creator)
	assert.Equal(t, "skyworld", nft.OriginGameID)
	assert.Equal(t, before.CreationBlock, nft.CreationBlock)
}

func TestUpdateAssetRoyaltyCap(t *testing.T) {
	s := newTestStateWithGame(t)
	require.NoError(
		t,
		s.RegisterAsset("dev1", "drone-1", "Scout Drone", "skyworld", "", 250),
	)
	err := s.UpdateAsset("dev1", "drone-1", "Scout Drone", "", 3001, true)
	require.ErrorIs(t, err, registry.ErrInvalidRoyaltyPercentage)
	nft, err := s.GetNft("drone-1")
	require.NoError(t, err)
	assert.Equal(t, uint(250), nft.RoyaltyBps)
}

func TestUpdateAssetNotAuthorized(t *testing.T) {
	s := newTestStateWithGame(t)
	require.NoError(
		t,
		s.RegisterAsset("dev1", "drone-1", "Scout Drone", "skyworld", "", 250),
	)
	err := s.UpdateAsset("dev2", "drone-1", "Hijacked", "", 0, false)
	require.ErrorIs(t, err, registry.ErrNotAuthorized)
	nft, err := s.GetNft("drone-1")
	require.NoError(t, err)
	assert.Equal(t, "Scout Drone", nft.Name)
	assert.True(t, nft.Active)
}

func TestUpdateAssetNotFound(t *testing.T) {
	s := newTestState(t)
	err := s.UpdateAsset("dev1", "nope", "Name", "", 0, true)
	require.ErrorIs(t, err, models.ErrNftNotFound)
}

func TestNftCompatibility(t *testing.T) {
	s := newTestStateWithGame(t)
	require.NoError(
		t,
		s.RegisterGame("dev2", "dungeonia", "Dungeonia", "", ""),
	)
	require.NoError(
		t,
		s.RegisterAsset("dev1", "drone-1", "Scout Drone", "skyworld", "", 0),
	)
	// Always compatible with the origin game
	compatible, err := s.IsNftCompatibleWithGame("drone-1", "skyworld")
	require.NoError(t, err)
	assert.True(t, compatible)
	// Not compatible with another game until a conversion rule exists
	compatible, err = s.IsNftCompatibleWithGame("drone-1", "dungeonia")
	require.NoError(t, err)
	assert.False(t, compatible)
	require.NoError(
		t,
		s.CreateConversionRule(
			"dev1",
			"drone-1",
			"dungeonia",
			"Clockwork Familiar",
			"",
			"",
		),
	)
	compatible, err = s.IsNftCompatibleWithGame("drone-1", "dungeonia")
	require.NoError(t, err)
	assert.True(t, compatible)
}

func TestNftCompatibilityUnknownNft(t *testing.T) {
	s := newTestStateWithGame(t)
	compatible, err := s.IsNftCompatibleWithGame("nope", "skyworld")
	require.NoError(t, err)
	assert.False(t, compatible)
}
