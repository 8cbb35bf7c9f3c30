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

package blob_test

import (
	"testing"

	"github.com/SirbennyAngel/save-web3/database/plugin/blob"
	"github.com/SirbennyAngel/save-web3/database/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The blob package links in its plugin implementations itself, so callers
// can open the default store without importing the plugin package.
func TestNewStartsDefaultPlugin(t *testing.T) {
	store, err := blob.New("badger", "")
	require.NoError(t, err)
	require.NotNil(t, store)
	defer store.Close()

	txn := store.NewTransaction(true)
	require.NoError(t, store.Set(txn, []byte("test-key"), []byte("test-value")))
	require.NoError(t, txn.Commit())

	readTxn := store.NewTransaction(false)
	defer readTxn.Rollback() //nolint:errcheck
	val, err := store.Get(readTxn, []byte("test-key"))
	require.NoError(t, err)
	assert.Equal(t, []byte("test-value"), val)

	_, err = store.Get(readTxn, []byte("missing-key"))
	require.ErrorIs(t, err, types.ErrBlobKeyNotFound)
}

func TestNewUnknownPlugin(t *testing.T) {
	_, err := blob.New("bogus", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bogus")
}
