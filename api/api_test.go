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

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SirbennyAngel/save-web3/api"
	"github.com/SirbennyAngel/save-web3/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOwner = "registry-owner"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	state, err := registry.New(
		registry.StateConfig{
			Owner: testOwner,
		},
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		state.Close() //nolint:errcheck
	})
	apiServer := api.New(api.Config{}, state, nil)
	server := httptest.NewServer(apiServer.Handler())
	t.Cleanup(server.Close)
	return server
}

func doRequest(
	t *testing.T,
	server *httptest.Server,
	method, path, principal string,
	body any,
	out any,
) int {
	t.Helper()
	var bodyReader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		bodyReader = bytes.NewReader(encoded)
	} else {
		bodyReader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, server.URL+path, bodyReader)
	require.NoError(t, err)
	if principal != "" {
		req.Header.Set(api.PrincipalHeader, principal)
	}
	resp, err := server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil && resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func registerTestGame(
	t *testing.T,
	server *httptest.Server,
	principal, gameId string,
) {
	t.Helper()
	status := doRequest(
		t,
		server,
		http.MethodPost,
		"/api/v0/games",
		principal,
		api.RegisterGameRequest{
			GameID: gameId,
			Name:   "Game " + gameId,
		},
		nil,
	)
	require.Equal(t, http.StatusCreated, status)
}

func registerTestAsset(
	t *testing.T,
	server *httptest.Server,
	principal, nftId, gameId string,
) {
	t.Helper()
	status := doRequest(
		t,
		server,
		http.MethodPost,
		"/api/v0/nfts",
		principal,
		api.RegisterAssetRequest{
			NftID:        nftId,
			Name:         "Asset " + nftId,
			OriginGameID: gameId,
		},
		nil,
	)
	require.Equal(t, http.StatusCreated, status)
}

func TestRootAndHealth(t *testing.T) {
	server := newTestServer(t)
	var root api.RootResponse
	status := doRequest(t, server, http.MethodGet, "/", "", nil, &root)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "save-web3 registry", root.Name)
	assert.NotEmpty(t, root.Version)
	var health api.HealthResponse
	status = doRequest(t, server, http.MethodGet, "/health", "", nil, &health)
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, health.IsHealthy)
}

func TestMissingPrincipalHeader(t *testing.T) {
	server := newTestServer(t)
	var errResp api.ErrorResponse
	status := doRequest(
		t,
		server,
		http.MethodPost,
		"/api/v0/games",
		"",
		api.RegisterGameRequest{GameID: "skyworld", Name: "Skyworld"},
		&errResp,
	)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, http.StatusUnauthorized, errResp.StatusCode)
}

func TestInvalidRequestBody(t *testing.T) {
	server := newTestServer(t)
	req, err := http.NewRequest(
		http.MethodPost,
		server.URL+"/api/v0/games",
		bytes.NewReader([]byte("not json")),
	)
	require.NoError(t, err)
	req.Header.Set(api.PrincipalHeader, "dev1")
	resp, err := server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGameLifecycle(t *testing.T) {
	server := newTestServer(t)
	var created api.GameResponse
	status := doRequest(
		t,
		server,
		http.MethodPost,
		"/api/v0/games",
		"dev1",
		api.RegisterGameRequest{
			GameID:      "skyworld",
			Name:        "Skyworld",
			WebsiteURL:  "https://skyworld.example",
			Description: "An open-world flying game",
		},
		&created,
	)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "skyworld", created.GameID)
	assert.Equal(t, "dev1", created.Developer)
	assert.True(t, created.Active)
	assert.NotZero(t, created.RegisteredAt)
	// Duplicate registration conflicts
	status = doRequest(
		t,
		server,
		http.MethodPost,
		"/api/v0/games",
		"dev2",
		api.RegisterGameRequest{GameID: "skyworld", Name: "Impostor"},
		nil,
	)
	assert.Equal(t, http.StatusConflict, status)
	// Update by a third party is forbidden
	status = doRequest(
		t,
		server,
		http.MethodPut,
		"/api/v0/games/skyworld",
		"dev2",
		api.UpdateGameRequest{Name: "Hijacked"},
		nil,
	)
	assert.Equal(t, http.StatusForbidden, status)
	// Update by the developer succeeds
	var updated api.GameResponse
	status = doRequest(
		t,
		server,
		http.MethodPut,
		"/api/v0/games/skyworld",
		"dev1",
		api.UpdateGameRequest{Name: "Skyworld II", Active: true},
		&updated,
	)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Skyworld II", updated.Name)
	// Fetch without a principal header is allowed for reads
	var fetched api.GameResponse
	status = doRequest(
		t,
		server,
		http.MethodGet,
		"/api/v0/games/skyworld",
		"",
		nil,
		&fetched,
	)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Skyworld II", fetched.Name)
}

func TestGetGameNotFound(t *testing.T) {
	server := newTestServer(t)
	status := doRequest(
		t,
		server,
		http.MethodGet,
		"/api/v0/games/nope",
		"",
		nil,
		nil,
	)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestDeveloperGamesList(t *testing.T) {
	server := newTestServer(t)
	registerTestGame(t, server, "dev1", "alpha")
	registerTestGame(t, server, "dev1", "beta")
	var games []api.GameResponse
	status := doRequest(
		t,
		server,
		http.MethodGet,
		"/api/v0/developers/dev1/games",
		"",
		nil,
		&games,
	)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, games, 2)
	assert.Equal(t, "alpha", games[0].GameID)
	assert.Equal(t, "beta", games[1].GameID)
}

func TestRegisterAssetRoyaltyRejected(t *testing.T) {
	server := newTestServer(t)
	registerTestGame(t, server, "dev1", "skyworld")
	var errResp api.ErrorResponse
	status := doRequest(
		t,
		server,
		http.MethodPost,
		"/api/v0/nfts",
		"dev1",
		api.RegisterAssetRequest{
			NftID:        "drone-1",
			Name:         "Scout Drone",
			OriginGameID: "skyworld",
			RoyaltyBps:   3001,
		},
		&errResp,
	)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	// The over-cap asset was not created
	status = doRequest(
		t,
		server,
		http.MethodGet,
		"/api/v0/nfts/drone-1",
		"",
		nil,
		nil,
	)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestNftCompatibilityEndpoint(t *testing.T) {
	server := newTestServer(t)
	registerTestGame(t, server, "dev1", "skyworld")
	registerTestGame(t, server, "dev2", "dungeonia")
	registerTestAsset(t, server, "dev1", "drone-1", "skyworld")
	var compat api.CompatibilityResponse
	status := doRequest(
		t,
		server,
		http.MethodGet,
		"/api/v0/nfts/drone-1/compatibility/skyworld",
		"",
		nil,
		&compat,
	)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, compat.Compatible)
	status = doRequest(
		t,
		server,
		http.MethodGet,
		"/api/v0/nfts/drone-1/compatibility/dungeonia",
		"",
		nil,
		&compat,
	)
	require.Equal(t, http.StatusOK, status)
	assert.False(t, compat.Compatible)
}

func TestConversionRuleLifecycle(t *testing.T) {
	server := newTestServer(t)
	registerTestGame(t, server, "dev1", "skyworld")
	registerTestGame(t, server, "dev2", "dungeonia")
	registerTestAsset(t, server, "dev1", "drone-1", "skyworld")
	var rule api.ConversionRuleResponse
	status := doRequest(
		t,
		server,
		http.MethodPost,
		"/api/v0/nfts/drone-1/conversions",
		"dev1",
		api.ConversionRuleRequest{
			TargetGameID: "dungeonia",
			DisplayName:  "Clockwork Familiar",
		},
		&rule,
	)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "skyworld", rule.SourceGameID)
	assert.Equal(t, "dungeonia", rule.TargetGameID)
	// Update display fields
	status = doRequest(
		t,
		server,
		http.MethodPut,
		"/api/v0/nfts/drone-1/conversions/dungeonia",
		"dev1",
		api.ConversionRuleRequest{DisplayName: "Brass Homunculus"},
		&rule,
	)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Brass Homunculus", rule.DisplayName)
	// Fetch and delete by triple
	status = doRequest(
		t,
		server,
		http.MethodGet,
		"/api/v0/nfts/drone-1/conversions/skyworld/dungeonia",
		"",
		nil,
		&rule,
	)
	require.Equal(t, http.StatusOK, status)
	status = doRequest(
		t,
		server,
		http.MethodDelete,
		"/api/v0/nfts/drone-1/conversions/skyworld/dungeonia",
		"dev1",
		nil,
		nil,
	)
	require.Equal(t, http.StatusNoContent, status)
	status = doRequest(
		t,
		server,
		http.MethodGet,
		"/api/v0/nfts/drone-1/conversions/skyworld/dungeonia",
		"",
		nil,
		nil,
	)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestTraitCatalogOwnerOnly(t *testing.T) {
	server := newTestServer(t)
	status := doRequest(
		t,
		server,
		http.MethodPost,
		"/api/v0/traits",
		"dev1",
		api.RegisterCatalogEntryRequest{ID: "rarity", Name: "Rarity"},
		nil,
	)
	assert.Equal(t, http.StatusForbidden, status)
	var entry api.CatalogEntryResponse
	status = doRequest(
		t,
		server,
		http.MethodPost,
		"/api/v0/traits",
		testOwner,
		api.RegisterCatalogEntryRequest{ID: "rarity", Name: "Rarity"},
		&entry,
	)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "rarity", entry.ID)
	assert.Equal(t, testOwner, entry.CreatedBy)
}

func TestNftCapabilityEndpoints(t *testing.T) {
	server := newTestServer(t)
	registerTestGame(t, server, "dev1", "skyworld")
	registerTestAsset(t, server, "dev1", "drone-1", "skyworld")
	status := doRequest(
		t,
		server,
		http.MethodPost,
		"/api/v0/capabilities",
		testOwner,
		api.RegisterCatalogEntryRequest{ID: "flight", Name: "Flight"},
		nil,
	)
	require.Equal(t, http.StatusCreated, status)
	var capability api.NftCapabilityResponse
	status = doRequest(
		t,
		server,
		http.MethodPut,
		"/api/v0/nfts/drone-1/capabilities/flight",
		"dev1",
		api.SetNftCapabilityRequest{Enabled: true},
		&capability,
	)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, capability.Enabled)
	status = doRequest(
		t,
		server,
		http.MethodGet,
		"/api/v0/nfts/drone-1/capabilities/flight",
		"",
		nil,
		&capability,
	)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, capability.Enabled)
}

func TestOwnerEndpoints(t *testing.T) {
	server := newTestServer(t)
	var owner api.OwnerResponse
	status := doRequest(
		t,
		server,
		http.MethodGet,
		"/api/v0/owner",
		"",
		nil,
		&owner,
	)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, testOwner, owner.Owner)
	status = doRequest(
		t,
		server,
		http.MethodPut,
		"/api/v0/owner",
		"dev1",
		api.SetOwnerRequest{NewOwner: "usurper"},
		nil,
	)
	assert.Equal(t, http.StatusForbidden, status)
	status = doRequest(
		t,
		server,
		http.MethodPut,
		"/api/v0/owner",
		testOwner,
		api.SetOwnerRequest{NewOwner: "new-owner"},
		&owner,
	)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "new-owner", owner.Owner)
}

func TestActivityEndpoint(t *testing.T) {
	server := newTestServer(t)
	registerTestGame(t, server, "dev1", "skyworld")
	var entries []api.ActivityEntryResponse
	status := doRequest(
		t,
		server,
		http.MethodGet,
		"/api/v0/activity",
		"",
		nil,
		&entries,
	)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, entries, 1)
	assert.Equal(t, "registerGame", entries[0].Operation)
	assert.Equal(t, "skyworld", entries[0].EntityKey)
	// Invalid count parameter
	status = doRequest(
		t,
		server,
		http.MethodGet,
		"/api/v0/activity?count=bogus",
		"",
		nil,
		nil,
	)
	assert.Equal(t, http.StatusBadRequest, status)
}
