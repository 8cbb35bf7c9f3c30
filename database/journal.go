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
	"encoding/json"
	"fmt"

	"github.com/SirbennyAngel/save-web3/database/types"
)

// JournalEntry records a single registry mutation in the audit journal.
// Entries are stored in the blob store keyed by ordinal, so the journal
// is an append-only history of every state change.
type JournalEntry struct {
	Ordinal   uint64 `json:"ordinal"`
	Operation string `json:"operation"`
	Principal string `json:"principal"`
	EntityKey string `json:"entityKey"`
}

// AddJournalEntry appends an entry to the audit journal
func (d *Database) AddJournalEntry(
	entry *JournalEntry,
	txn *Txn,
) error {
	blob, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode journal entry: %w", err)
	}
	key := types.JournalBlobKey(entry.Ordinal)
	if txn == nil {
		txn = d.Transaction(true)
		if err := txn.Do(func(txn *Txn) error {
			return d.blob.Set(txn.Blob(), key, blob)
		}); err != nil {
			return err
		}
		return nil
	}
	return d.blob.Set(txn.Blob(), key, blob)
}

// GetJournalEntry returns the journal entry at the given ordinal
func (d *Database) GetJournalEntry(
	ordinal uint64,
	txn *Txn,
) (*JournalEntry, error) {
	if txn == nil {
		txn = d.Transaction(false)
		defer txn.Release()
	}
	blob, err := d.blob.Get(txn.Blob(), types.JournalBlobKey(ordinal))
	if err != nil {
		return nil, err
	}
	var entry JournalEntry
	if err := json.Unmarshal(blob, &entry); err != nil {
		return nil, fmt.Errorf("failed to decode journal entry: %w", err)
	}
	return &entry, nil
}

// GetRecentJournalEntries returns up to maxEntries journal entries,
// newest first
func (d *Database) GetRecentJournalEntries(
	maxEntries int,
	txn *Txn,
) ([]JournalEntry, error) {
	if txn == nil {
		txn = d.Transaction(false)
		defer txn.Release()
	}
	prefix := []byte(types.JournalBlobKeyPrefix)
	iter := d.blob.NewIterator(
		txn.Blob(),
		types.BlobIteratorOptions{
			Prefix:  prefix,
			Reverse: true,
		},
	)
	defer iter.Close()
	ret := []JournalEntry{}
	// A reverse badger iterator must be seeked past the end of the prefix
	// range to land on the last matching key
	seekKey := append([]byte{}, prefix...)
	seekKey = append(seekKey, 0xff)
	for iter.Seek(seekKey); iter.ValidForPrefix(prefix); iter.Next() {
		if len(ret) >= maxEntries {
			break
		}
		item := iter.Item()
		blob, err := item.ValueCopy(nil)
		if err != nil {
			return nil, err
		}
		var entry JournalEntry
		if err := json.Unmarshal(blob, &entry); err != nil {
			return nil, fmt.Errorf("failed to decode journal entry: %w", err)
		}
		ret = append(ret, entry)
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return ret, nil
}
