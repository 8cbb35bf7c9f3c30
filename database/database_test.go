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

package database_test

import (
	"errors"
	"testing"

	"github.com/SirbennyAngel/save-web3/database"
	"github.com/SirbennyAngel/save-web3/database/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDatabase(t *testing.T) *database.Database {
	t.Helper()
	db, err := database.New(&database.Config{})
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close() //nolint:errcheck
	})
	return db
}

func TestGameRoundTrip(t *testing.T) {
	db := newTestDatabase(t)
	require.NoError(
		t,
		db.SetGame(
			&models.Game{
				GameID:       "skyworld",
				Name:         "Skyworld",
				Developer:    "dev1",
				RegisteredAt: 1,
				Active:       true,
			},
			nil,
		),
	)
	game, err := db.GetGame("skyworld", nil)
	require.NoError(t, err)
	assert.Equal(t, "Skyworld", game.Name)
	assert.Equal(t, "dev1", game.Developer)
	// Updating through the same row keeps a single record
	game.Name = "Skyworld II"
	require.NoError(t, db.SetGame(game, nil))
	game, err = db.GetGame("skyworld", nil)
	require.NoError(t, err)
	assert.Equal(t, "Skyworld II", game.Name)
}

func TestGameNotFound(t *testing.T) {
	db := newTestDatabase(t)
	_, err := db.GetGame("nope", nil)
	require.ErrorIs(t, err, models.ErrGameNotFound)
}

func TestDeveloperGameIndexOrdering(t *testing.T) {
	db := newTestDatabase(t)
	gameIds := []string{"gamma", "alpha", "beta"}
	for i, gameId := range gameIds {
		require.NoError(
			t,
			db.AddDeveloperGame(
				&models.DeveloperGame{
					Developer: "dev1",
					GameID:    gameId,
					Position:  uint(i), //nolint:gosec
				},
				nil,
			),
		)
	}
	entries, err := db.GetDeveloperGames("dev1", nil)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	// Insertion order, not lexical order
	for i, gameId := range gameIds {
		assert.Equal(t, gameId, entries[i].GameID)
	}
}

func TestTxnRollbackOnError(t *testing.T) {
	db := newTestDatabase(t)
	errBoom := errors.New("boom")
	txn := db.Transaction(true)
	err := txn.Do(func(txn *database.Txn) error {
		if err := db.SetGame(
			&models.Game{
				GameID: "skyworld",
				Name:   "Skyworld",
			},
			txn,
		); err != nil {
			return err
		}
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)
	// The write inside the failed transaction is not visible
	_, err = db.GetGame("skyworld", nil)
	require.ErrorIs(t, err, models.ErrGameNotFound)
}

func TestTxnCommitVisibility(t *testing.T) {
	db := newTestDatabase(t)
	txn := db.Transaction(true)
	err := txn.Do(func(txn *database.Txn) error {
		if err := db.SetGame(
			&models.Game{
				GameID: "skyworld",
				Name:   "Skyworld",
			},
			txn,
		); err != nil {
			return err
		}
		return db.AddJournalEntry(
			&database.JournalEntry{
				Ordinal:   1,
				Operation: "registerGame",
				Principal: "dev1",
				EntityKey: "skyworld",
			},
			txn,
		)
	})
	require.NoError(t, err)
	// Both stores observe the committed writes
	game, err := db.GetGame("skyworld", nil)
	require.NoError(t, err)
	assert.Equal(t, "Skyworld", game.Name)
	entry, err := db.GetJournalEntry(1, nil)
	require.NoError(t, err)
	assert.Equal(t, "registerGame", entry.Operation)
}

func TestTxnReleaseReadOnly(t *testing.T) {
	db := newTestDatabase(t)
	require.NoError(
		t,
		db.SetGame(
			&models.Game{
				GameID: "skyworld",
				Name:   "Skyworld",
			},
			nil,
		),
	)
	txn := db.Transaction(false)
	game, err := db.GetGame("skyworld", txn)
	require.NoError(t, err)
	assert.Equal(t, "Skyworld", game.Name)
	txn.Release()
	// Releasing again is a no-op
	txn.Release()
	// The stores accept new transactions after release
	_, err = db.GetGame("skyworld", nil)
	require.NoError(t, err)
	require.NoError(
		t,
		db.SetGame(
			&models.Game{
				GameID: "dungeonia",
				Name:   "Dungeonia",
			},
			nil,
		),
	)
}

func TestRegistryStateRoundTrip(t *testing.T) {
	db := newTestDatabase(t)
	_, err := db.GetRegistryState(nil)
	require.ErrorIs(t, err, models.ErrRegistryStateNotFound)
	require.NoError(
		t,
		db.SetRegistryState(
			&models.RegistryState{
				ID:       1,
				Owner:    "owner",
				Sequence: 0,
			},
			nil,
		),
	)
	state, err := db.GetRegistryState(nil)
	require.NoError(t, err)
	assert.Equal(t, "owner", state.Owner)
	state.Sequence++
	require.NoError(t, db.SetRegistryState(state, nil))
	state, err = db.GetRegistryState(nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), state.Sequence)
}
