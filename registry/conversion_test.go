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

// newTestStateWithAsset returns a state with two games and an asset:
// "skyworld" by dev1 with asset "drone-1", and "dungeonia" by dev2
func newTestStateWithAsset(t *testing.T) *registry.State {
	t.Helper()
	s := newTestState(t)
	require.NoError(
		t,
		s.RegisterGame("dev1", "skyworld", "Skyworld", "", ""),
	)
	require.NoError(
		t,
		s.RegisterGame("dev2", "dungeonia", "Dungeonia", "", ""),
	)
	require.NoError(
		t,
		s.RegisterAsset("dev1", "drone-1", "Scout Drone", "skyworld", "", 0),
	)
	return s
}

func TestCreateConversionRule(t *testing.T) {
	s := newTestStateWithAsset(t)
	require.NoError(
		t,
		s.CreateConversionRule(
			"dev1",
			"drone-1",
			"dungeonia",
			"Clockwork Familiar",
			"https://assets.example/familiar.glb",
			`{"scale":0.5}`,
		),
	)
	rule, err := s.GetConversionRule("drone-1", "skyworld", "dungeonia")
	require.NoError(t, err)
	assert.Equal(t, "drone-1", rule.NftID)
	// Source game derived from the asset's origin, not the caller
	assert.Equal(t, "skyworld", rule.SourceGameID)
	assert.Equal(t, "dungeonia", rule.TargetGameID)
	assert.Equal(t, "Clockwork Familiar", rule.DisplayName)
	assert.Equal(t, "https://assets.example/familiar.glb", rule.AssetURL)
	assert.Equal(t, `{"scale":0.5}`, rule.Properties)
	assert.Equal(t, "dev1", rule.CreatedBy)
	assert.NotZero(t, rule.CreatedAt)
	assert.Equal(t, rule.CreatedAt, rule.LastUpdatedAt)
}

func TestCreateConversionRuleDuplicate(t *testing.T) {
	s := newTestStateWithAsset(t)
	require.NoError(
		t,
		s.CreateConversionRule("dev1", "drone-1", "dungeonia", "", "", ""),
	)
	err := s.CreateConversionRule("dev1", "drone-1", "dungeonia", "", "", "")
	require.ErrorIs(t, err, registry.ErrConversionRuleExists)
}

func TestCreateConversionRuleByTargetDeveloper(t *testing.T) {
	s := newTestStateWithAsset(t)
	// The target game's developer may define how the asset maps into
	// their game
	require.NoError(
		t,
		s.CreateConversionRule("dev2", "drone-1", "dungeonia", "", "", ""),
	)
	rule, err := s.GetConversionRule("drone-1", "skyworld", "dungeonia")
	require.NoError(t, err)
	assert.Equal(t, "dev2", rule.CreatedBy)
}

func TestCreateConversionRuleNotAuthorized(t *testing.T) {
	s := newTestStateWithAsset(t)
	err := s.CreateConversionRule("dev3", "drone-1", "dungeonia", "", "", "")
	require.ErrorIs(t, err, registry.ErrNotAuthorized)
	_, err = s.GetConversionRule("drone-1", "skyworld", "dungeonia")
	require.ErrorIs(t, err, models.ErrConversionRuleNotFound)
}

func TestCreateConversionRuleUnknownNft(t *testing.T) {
	s := newTestStateWithAsset(t)
	err := s.CreateConversionRule("dev1", "nope", "dungeonia", "", "", "")
	require.ErrorIs(t, err, models.ErrNftNotFound)
}

func TestCreateConversionRuleUnknownTargetGame(t *testing.T) {
	s := newTestStateWithAsset(t)
	err := s.CreateConversionRule("dev1", "drone-1", "nope", "", "", "")
	require.ErrorIs(t, err, models.ErrGameNotFound)
}

func TestUpdateConversionRule(t *testing.T) {
	s := newTestStateWithAsset(t)
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
	before, err := s.GetConversionRule("drone-1", "skyworld", "dungeonia")
	require.NoError(t, err)
	require.NoError(
		t,
		s.UpdateConversionRule(
			"dev1",
			"drone-1",
			"dungeonia",
			"Brass Homunculus",
			"https://assets.example/homunculus.glb",
			`{"scale":0.75}`,
		),
	)
	rule, err := s.GetConversionRule("drone-1", "skyworld", "dungeonia")
	require.NoError(t, err)
	assert.Equal(t, "Brass Homunculus", rule.DisplayName)
	assert.Equal(t, "https://assets.example/homunculus.glb", rule.AssetURL)
	assert.Equal(t, `{"scale":0.75}`, rule.Properties)
	// Creation metadata preserved, update ordinal advanced
	assert.Equal(t, before.CreatedBy, rule.CreatedBy)
	assert.Equal(t, before.CreatedAt, rule.CreatedAt)
	assert.Greater(t, rule.LastUpdatedAt, before.LastUpdatedAt)
}

func TestUpdateConversionRuleNotFound(t *testing.T) {
	s := newTestStateWithAsset(t)
	err := s.UpdateConversionRule("dev1", "drone-1", "dungeonia", "", "", "")
	require.ErrorIs(t, err, models.ErrConversionRuleNotFound)
}

func TestDeleteConversionRule(t *testing.T) {
	s := newTestStateWithAsset(t)
	require.NoError(
		t,
		s.CreateConversionRule("dev1", "drone-1", "dungeonia", "", "", ""),
	)
	require.NoError(
		t,
		s.DeleteConversionRule("dev1", "drone-1", "skyworld", "dungeonia"),
	)
	_, err := s.GetConversionRule("drone-1", "skyworld", "dungeonia")
	require.ErrorIs(t, err, models.ErrConversionRuleNotFound)
	// Compatibility reverts with the rule gone
	compatible, err := s.IsNftCompatibleWithGame("drone-1", "dungeonia")
	require.NoError(t, err)
	assert.False(t, compatible)
	// The triple can be created again after deletion
	require.NoError(
		t,
		s.CreateConversionRule("dev1", "drone-1", "dungeonia", "", "", ""),
	)
}

func TestDeleteConversionRuleNotAuthorized(t *testing.T) {
	s := newTestStateWithAsset(t)
	require.NoError(
		t,
		s.CreateConversionRule("dev1", "drone-1", "dungeonia", "", "", ""),
	)
	err := s.DeleteConversionRule("dev3", "drone-1", "skyworld", "dungeonia")
	require.ErrorIs(t, err, registry.ErrNotAuthorized)
	_, err = s.GetConversionRule("drone-1", "skyworld", "dungeonia")
	require.NoError(t, err)
}

func TestDeleteConversionRuleNotFound(t *testing.T) {
	s := newTestStateWithAsset(t)
	err := s.DeleteConversionRule("dev1", "drone-1", "skyworld", "dungeonia")
	require.ErrorIs(t, err, models.ErrConversionRuleNotFound)
}
