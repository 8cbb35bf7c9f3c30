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

package api

// RootResponse is returned by GET /.
type RootResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	IsHealthy bool `json:"is_healthy"`
}

// ErrorResponse is the shape of all error replies.
type ErrorResponse struct {
	StatusCode int    `json:"status_code"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

// OwnerResponse is returned by GET /api/v0/owner.
type OwnerResponse struct {
	Owner string `json:"owner"`
}

// SetOwnerRequest is the body of PUT /api/v0/owner.
type SetOwnerRequest struct {
	NewOwner string `json:"new_owner"`
}

// RegisterGameRequest is the body of POST /api/v0/games.
type RegisterGameRequest struct {
	GameID      string `json:"game_id"`
	Name        string `json:"name"`
	WebsiteURL  string `json:"website_url,omitempty"`
	Description string `json:"description"`
}

// UpdateGameRequest is the body of PUT /api/v0/games/{gameId}.
type UpdateGameRequest struct {
	Name        string `json:"name"`
	WebsiteURL  string `json:"website_url,omitempty"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

// GameResponse represents a game record.
type GameResponse struct {
	GameID       string `json:"game_id"`
	Name         string `json:"name"`
	Developer    string `json:"developer"`
	WebsiteURL   string `json:"website_url,omitempty"`
	Description  string `json:"description"`
	RegisteredAt uint64 `json:"registered_at"`
	Active       bool   `json:"active"`
}

// RegisterAssetRequest is the body of POST /api/v0/nfts.
type RegisterAssetRequest struct {
	NftID        string `json:"nft_id"`
	Name         string `json:"name"`
	OriginGameID string `json:"origin_game_id"`
	MetadataURL  string `json:"metadata_url"`
	RoyaltyBps   uint   `json:"royalty_bps"`
}

// UpdateAssetRequest is the body of PUT /api/v0/nfts/{nftId}.
type UpdateAssetRequest struct {
	Name        string `json:"name"`
	MetadataURL string `json:"metadata_url"`
	RoyaltyBps  uint   `json:"royalty_bps"`
	Active      bool   `json:"active"`
}

// NftResponse represents an NFT record.
type NftResponse struct {
	NftID         string `json:"nft_id"`
	Name          string `json:"name"`
	OriginGameID  string `json:"origin_game_id"`
	Creator       string `json:"creator"`
	CreationBlock uint64 `json:"creation_block"`
	MetadataURL   string `json:"metadata_url"`
	RoyaltyBps    uint   `json:"royalty_bps"`
	Active        bool   `json:"active"`
}

// CompatibilityResponse is returned by the NFT/game compatibility check.
type CompatibilityResponse struct {
	NftID      string `json:"nft_id"`
	GameID     string `json:"game_id"`
	Compatible bool   `json:"compatible"`
}

// RegisterCatalogEntryRequest is the body of POST /api/v0/traits and
// POST /api/v0/capabilities.
type RegisterCatalogEntryRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CatalogEntryResponse represents a trait category or capability record.
type CatalogEntryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedBy   string `json:"created_by"`
	CreatedAt   uint64 `json:"created_at"`
}

// SetNftTraitRequest is the body of
// PUT /api/v0/nfts/{nftId}/traits/{categoryId}.
type SetNftTraitRequest struct {
	Value string `json:"value"`
}

// NftTraitResponse represents an NFT trait assignment.
type NftTraitResponse struct {
	NftID      string `json:"nft_id"`
	CategoryID string `json:"category_id"`
	Value      string `json:"value"`
}

// SetNftCapabilityRequest is the body of
// PUT /api/v0/nfts/{nftId}/capabilities/{capabilityId}.
type SetNftCapabilityRequest struct {
	Enabled    bool   `json:"enabled"`
	Properties string `json:"properties,omitempty"`
}

// NftCapabilityResponse represents an NFT capability assignment.
type NftCapabilityResponse struct {
	NftID        string `json:"nft_id"`
	CapabilityID string `json:"capability_id"`
	Enabled      bool   `json:"enabled"`
	Properties   string `json:"properties,omitempty"`
}

// ConversionRuleRequest is the body of conversion rule create/update
// calls. The source game is derived server-side from the asset record.
type ConversionRuleRequest struct {
	TargetGameID string `json:"target_game_id,omitempty"`
	DisplayName  string `json:"display_name"`
	AssetURL     string `json:"asset_url"`
	Properties   string `json:"properties,omitempty"`
}

// ConversionRuleResponse represents a conversion rule record.
type ConversionRuleResponse struct {
	NftID         string `json:"nft_id"`
	SourceGameID  string `json:"source_game_id"`
	TargetGameID  string `json:"target_game_id"`
	DisplayName   string `json:"display_name"`
	AssetURL      string `json:"asset_url"`
	Properties    string `json:"properties,omitempty"`
	CreatedBy     string `json:"created_by"`
	CreatedAt     uint64 `json:"created_at"`
	LastUpdatedAt uint64 `json:"last_updated_at"`
}

// ActivityEntryResponse represents one audit journal entry.
type ActivityEntryResponse struct {
	Ordinal   uint64 `json:"ordinal"`
	Operation string `json:"operation"`
	Principal string `json:"principal"`
	EntityKey string `json:"entity_key"`
}
