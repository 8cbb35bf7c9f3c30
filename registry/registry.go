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

package registry

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/SirbennyAngel/save-web3/database"
	"github.com/SirbennyAngel/save-web3/database/models"
	"github.com/SirbennyAngel/save-web3/event"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// MaxDeveloperGames caps the per-developer game index
	MaxDeveloperGames = 20

	// MaxRoyaltyBps caps the declared royalty percentage (30%)
	MaxRoyaltyBps = 3000

	// Field length caps for identifiers and descriptive text
	MaxIdLen   = 64
	MaxTextLen = 256
)

type StateConfig struct {
	Logger         *slog.Logger
	DataDir        string
	BlobPlugin     string
	MetadataPlugin string
	EventBus       *event.EventBus
	PromRegistry   prometheus.Registerer
	// Owner is the initial registry owner. It's only applied when the
	// database has no existing state.
	Owner string
}

// State is the registry state machine. Every mutating operation validates
// preconditions, checks authorization, and writes atomically within a
// single database transaction. Operations are serialized, so each call
// observes a consistent snapshot.
type State struct {
	sync.Mutex
	config  StateConfig
	db      *database.Database
	metrics stateMetrics
	// Mutation events buffered until the enclosing transaction commits
	pendingEvents []MutationEvent
}

func New(cfg StateConfig) (*State, error) {
	if cfg.Logger == nil {
		// Create logger to throw away logs
		// We do this so we don't have to add guards around every log operation
		cfg.Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if cfg.Owner == "" {
		return nil, fmt.Errorf("%w: empty registry owner", ErrInvalidParameters)
	}
	s := &State{
		config: cfg,
	}
	// Init metrics
	s.metrics.init(cfg.PromRegistry)
	// Load database
	db, err := database.New(
		&database.Config{
			Logger:         cfg.Logger,
			PromRegistry:   cfg.PromRegistry,
			DataDir:        cfg.DataDir,
			BlobPlugin:     cfg.BlobPlugin,
			MetadataPlugin: cfg.MetadataPlugin,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load database: %w", err)
	}
	s.db = db
	// Bootstrap the owner/sequence row on first start
	if err := s.initRegistryState(); err != nil {
		dbErr := s.db.Close()
		return nil, errors.Join(err, dbErr)
	}
	return s, nil
}

// Database returns the underlying database instance
func (s *State) Database() *database.Database {
	return s.db
}

// Close shuts down the registry and its database
func (s *State) Close() error {
	s.Lock()
	defer s.Unlock()
	return s.db.Close()
}

// Owner returns the current registry owner principal
func (s *State) Owner() (string, error) {
	state, err := s.db.GetRegistryState(nil)
	if err != nil {
		return "", err
	}
	return state.Owner, nil
}

// SetRegistryOwner transfers registry ownership to a new principal. Only
// the current owner may transfer ownership.
func (s *State) SetRegistryOwner(principal, newOwner string) error {
	s.Lock()
	defer s.Unlock()
	if newOwner == "" || len(newOwner) > MaxTextLen {
		return s.opErr(ErrInvalidParameters)
	}
	txn := s.db.Transaction(true)
	err := txn.Do(func(txn *database.Txn) error {
		state, err := s.db.GetRegistryState(txn)
		if err != nil {
			return err
		}
		if state.Owner != principal {
			return ErrNotAuthorized
		}
		state.Owner = newOwner
		if err := s.db.SetRegistryState(state, txn); err != nil {
			return err
		}
		ordinal, err := s.nextOrdinal(txn)
		if err != nil {
			return err
		}
		return s.journal(txn, ordinal, "setRegistryOwner", principal, newOwner)
	})
	if err != nil {
		return s.opErr(err)
	}
	s.config.Logger.Info(
		"registry ownership transferred",
		"component", "registry",
		"new_owner", newOwner,
	)
	return s.opErr(nil)
}

// initRegistryState creates the owner/sequence row if it doesn't exist
func (s *State) initRegistryState() error {
	txn := s.db.Transaction(true)
	return txn.Do(func(txn *database.Txn) error {
		_, err := s.db.GetRegistryState(txn)
		if err == nil {
			return nil
		}
		if !errors.Is(err, models.ErrRegistryStateNotFound) {
			return err
		}
		s.config.Logger.Info(
			"initializing registry state",
			"component", "registry",
			"owner", s.config.Owner,
		)
		return s.db.SetRegistryState(
			&models.RegistryState{
				ID:       1,
				Owner:    s.config.Owner,
				Sequence: 0,
			},
			txn,
		)
	})
}

// nextOrdinal increments and returns the registry sequence number. The
// ordinal stands in for wall-clock time on every stored record, so it
// must only advance as part of a successful mutation.
func (s *State) nextOrdinal(txn *database.Txn) (uint64, error) {
	state, err := s.db.GetRegistryState(txn)
	if err != nil {
		return 0, err
	}
	state.Sequence++
	if err := s.db.SetRegistryState(state, txn); err != nil {
		return 0, err
	}
	s.metrics.ordinal.Set(float64(state.Sequence))
	return state.Sequence, nil
}

// journal appends an audit journal entry for a successful mutation and
// buffers the matching event for publication after commit
func (s *State) journal(
	txn *database.Txn,
	ordinal uint64,
	operation, principal, entityKey string,
) error {
	s.pendingEvents = append(s.pendingEvents, MutationEvent{
		Ordinal:   ordinal,
		Operation: operation,
		Principal: principal,
		EntityKey: entityKey,
	})
	return s.db.AddJournalEntry(
		&database.JournalEntry{
			Ordinal:   ordinal,
			Operation: operation,
			Principal: principal,
			EntityKey: entityKey,
		},
		txn,
	)
}

// opErr finalizes a mutating operation. Failures are counted and drop
// any buffered events; successes publish the buffered mutation events.
func (s *State) opErr(err error) error {
	if err != nil {
		s.metrics.opFailures.Inc()
		s.pendingEvents = nil
		return err
	}
	if s.config.EventBus != nil {
		for _, evt := range s.pendingEvents {
			s.config.EventBus.Publish(
				MutationEventType,
				event.NewEvent(MutationEventType, evt),
			)
		}
	}
	s.pendingEvents = nil
	return nil
}

// RecentActivity returns up to maxEntries audit journal entries, newest
// first
func (s *State) RecentActivity(maxEntries int) ([]database.JournalEntry, error) {
	if maxEntries <= 0 {
		return nil, ErrInvalidParameters
	}
	return s.db.GetRecentJournalEntries(maxEntries, nil)
}

// validId checks an entity identifier for presence and length
func validId(id string) bool {
	return id != "" && len(id) <= MaxIdLen
}

// validText checks an optional free-form text field for length
func validText(text string) bool {
	return len(text) <= MaxTextLen
}
