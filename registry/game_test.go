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
	"fmt"
	"testing"

	"github.com/SirbennyAngel/save-web3/database/models"
	"github.com/SirbennyAngel/save-web3/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterGameRoundTrip(t *testing.T) {
	s := newTestState(t)
	require.NoError(
		t,
		s.RegisterGame(
			"dev1",
			"skyworld",
			"Skyworld",
			"https://skyworld.example",
			"An open-world flying game",
		),
	)
	game, err := s.GetGame("skyworld")
	require.NoError(t, err)
	assert.Equal(t, "skyworld", game.GameID)
	assert.Equal(t, "Skyworld", game.Name)
	assert.Equal(t, "dev1", game.Developer)
	assert.Equal(t, "https://skyworld.example", game.WebsiteURL)
	assert.Equal(t, "An open-world flying game", game.Description)
	assert.True(t, game.Active)
	assert.NotZero(t, game.RegisteredAt)
}

func TestRegisterGameDuplicate(t *testing.T) {
	s := newTestState(t)
	require.NoError(
		t,
		s.RegisterGame("dev1", "skyworld", "Skyworld", "", ""),
	)
	err := s.RegisterGame("dev2", "skyworld", "Impostor", "", "")
	require.ErrorIs(t, err, registry.ErrGameAlreadyExists)
	// Existing record unchanged
	game, err := s.GetGame("skyworld")
	require.NoError(t, err)
	assert.Equal(t, "Skyworld", game.Name)
	assert.Equal(t, "dev1", game.Developer)
}

func TestRegisterGameInvalidParameters(t *testing.T) {
	s := newTestState(t)
	testDefs := []struct {
		name      string
		principal string
		gameId    string
		gameName  string
	}{
		{"empty principal", "", "skyworld", "Skyworld"},
		{"empty game id", "dev1", "", "Skyworld"},
		{"empty name", "dev1", "skyworld", ""},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			err := s.RegisterGame(
				testDef.principal,
				testDef.gameId,
				testDef.gameName,
				"",
				"",
			)
			require.ErrorIs(t, err, registry.ErrInvalidParameters)
		})
	}
}

func TestGetGameNotFound(t *testing.T) {
	s := newTestState(t)
	_, err := s.GetGame("nope")
	require.ErrorIs(t, err, models.ErrGameNotFound)
}

func TestUpdateGame(t *testing.T) {
	s := newTestState(t)
	require.NoError(
		t,
		s.RegisterGame("dev1", "skyworld", "Skyworld", "", ""),
	)
	before, err := s.GetGame("skyworld")
	require.NoError(t, err)
	require.NoError(
		t,
		s.UpdateGame(
			"dev1",
			"skyworld",
			"Skyworld II",
			"https://skyworld.example",
			"Now with more sky",
			false,
		),
	)
	game, err := s.GetGame("skyworld")
	require.NoError(t, err)
	assert.Equal(t, "Skyworld II", game.Name)
	assert.Equal(t, "https://skyworld.example", game.WebsiteURL)
	assert.Equal(t, "Now with more sky", game.Description)
	assert.False(t, game.Active)
	// Provenance fields survive the update
	assert.Equal(t, "dev1", game.Developer)
	assert.Equal(t, before.RegisteredAt, game.RegisteredAt)
}

func TestUpdateGameNotAuthorized(t *testing.T) {
	s := newTestState(t)
	require.NoError(
		t,
		s.RegisterGame("dev1", "skyworld", "Skyworld", "", ""),
	)
	err := s.UpdateGame("dev2", "skyworld", "Hijacked", "", "", false)
	require.ErrorIs(t, err, registry.ErrNotAuthorized)
	game, err := s.GetGame("skyworld")
	require.NoError(t, err)
	assert.Equal(t, "Skyworld", game.Name)
	assert.True(t, game.Active)
}

func TestUpdateGameByRegistryOwner(t *testing.T) {
	s := newTestState(t)
	require.NoError(
		t,
		s.RegisterGame("dev1", "skyworld", "Skyworld", "", ""),
	)
	require.NoError(
		t,
		s.UpdateGame(testOwner, "skyworld", "Skyworld", "", "", false),
	)
	game, err := s.GetGame("skyworld")
	require.NoError(t, err)
	assert.False(t, game.Active)
}

func TestUpdateGameNotFound(t *testing.T) {
	s := newTestState(t)
	err := s.UpdateGame("dev1", "nope", "Name", "", "", true)
	require.ErrorIs(t, err, models.ErrGameNotFound)
}

func TestGetGamesByDeveloper(t *testing.T) {
	s := newTestState(t)
	gameIds := []string{"alpha", "beta", "gamma"}
	for _, gameId := range gameIds {
		require.NoError(
			t,
			s.RegisterGame("dev1", gameId, "Game "+gameId, "", ""),
		)
	}
	require.NoError(
		t,
		s.RegisterGame("dev2", "delta", "Game delta", "", ""),
	)
	games, err := s.GetGamesByDeveloper("dev1")
	require.NoError(t, err)
	require.Len(t, games, 3)
	// Registration order preserved
	for i, gameId := range gameIds {
		assert.Equal(t, gameId, games[i].GameID)
	}
}

func TestGetGamesByDeveloperEmpty(t *testing.T) {
	s := newTestState(t)
	games, err := s.GetGamesByDeveloper("nobody")
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestDeveloperGameLimit(t *testing.T) {
	s := newTestState(t)
	for i := range registry.MaxDeveloperGames {
		require.NoError(
			t,
			s.RegisterGame(
				"dev1",
				fmt.Sprintf("game-%d", i),
				fmt.Sprintf("Game %d", i),
				"",
				"",
			),
		)
	}
	err := s.RegisterGame("dev1", "game-overflow", "One Too Many", "", "")
	require.ErrorIs(t, err, registry.ErrDeveloperGameLimit)
	// The overflow game was not created
	_, err = s.GetGame("game-overflow")
	require.ErrorIs(t, err, models.ErrGameNotFound)
	games, err := s.GetGamesByDeveloper("dev1")
	require.NoError(t, err)
	assert.Len(t, games, registry.MaxDeveloperGames)
	// Other developers are unaffected by dev1's full index
	require.NoError(
		t,
		s.RegisterGame("dev2", "game-overflow", "One Too Many", "", ""),
	)
}
