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

package types

import (
	"encoding/binary"
)

const (
	// JournalBlobKeyPrefix prefixes audit journal entries in the blob store
	JournalBlobKeyPrefix = "j"
)

func JournalBlobKeyUint64ToBytes(input uint64) []byte {
	ret := make([]byte, 8)
	binary.BigEndian.PutUint64(ret, input)
	return ret
}

// JournalBlobKey builds the blob store key for a journal entry. Keys sort
// in ordinal order so iteration walks the journal oldest-first.
func JournalBlobKey(ordinal uint64) []byte {
	key := []byte(JournalBlobKeyPrefix)
	key = append(key, JournalBlobKeyUint64ToBytes(ordinal)...)
	return key
}

// JournalBlobKeyOrdinal extracts the ordinal from a journal blob key
func JournalBlobKeyOrdinal(key []byte) uint64 {
	prefixLen := len(JournalBlobKeyPrefix)
	if len(key) < prefixLen+8 {
		return 0
	}
	return binary.BigEndian.Uint64(key[prefixLen : prefixLen+8])
}
