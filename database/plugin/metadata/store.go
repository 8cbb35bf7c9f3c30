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

package metadata

import (
	"fmt"
	"log/slog"

	"github.com/SirbennyAngel/save-web3/database/models"
	"github.com/SirbennyAngel/save-web3/database/plugin/metadata/sqlite"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type MetadataStore interface {
	// Database
	Close() error
	DB() *gorm.DB
	GetCommitTimestamp() (int64, error)
	SetCommitTimestamp(*gorm.DB, int64) error
	Transaction() *gorm.DB

	// Registry state
	GetRegistryState(*gorm.DB) (*models.RegistryState, error)
	SetRegistryState(*models.RegistryState, *gorm.DB) error

	// Games
	GetGame(
		string, // gameId
		*gorm.DB,
	) (*models.Game, error)
	SetGame(*models.Game, *gorm.DB) error
	GetDeveloperGames(
		string, // developer
		*gorm.DB,
	) ([]models.DeveloperGame, error)
	AddDeveloperGame(*models.DeveloperGame, *gorm.DB) error

	// Nfts
	GetNft(
		string, // nftId
		*gorm.DB,
	) (*models.Nft, error)
	SetNft(*models.Nft, *gorm.DB) error

	// Trait catalog
	GetTraitCategory(
		string, // categoryId
		*gorm.DB,
	) (*models.TraitCategory, error)
	SetTraitCategory(*models.TraitCategory, *gorm.DB) error
	GetNftTrait(
		string, // nftId
		string, // categoryId
		*gorm.DB,
	) (*models.NftTrait, error)
	SetNftTrait(*models.NftTrait, *gorm.DB) error

	// Capability catalog
	GetCapability(
		string, // capabilityId
		*gorm.DB,
	) (*models.Capability, error)
	SetCapability(*models.Capability, *gorm.DB) error
	GetNftCapability(
		string, // nftId
		string, // capabilityId
		*gorm.DB,
	) (*models.NftCapability, error)
	SetNftCapability(*models.NftCapability, *gorm.DB) error

	// Conversion rules
	GetConversionRule(
		string, // nftId
		string, // sourceGameId
		string, // targetGameId
		*gorm.DB,
	) (*models.ConversionRule, error)
	SetConversionRule(*models.ConversionRule, *gorm.DB) error
	DeleteConversionRule(*models.ConversionRule, *gorm.DB) error
}

// New returns the named metadata store implementation. Metadata stores are
// constructed directly rather than through the plugin registry so the
// caller's logger and metrics registry reach the store.
func New(
	pluginName, dataDir string,
	logger *slog.Logger,
	promRegistry prometheus.Registerer,
) (MetadataStore, error) {
	switch pluginName {
	case "sqlite":
		return sqlite.New(dataDir, logger, promRegistry)
	default:
		return nil, fmt.Errorf("unknown metadata plugin: %s", pluginName)
	}
}
