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

import (
	"github.com/SirbennyAngel/save-web3/database"
	"github.com/SirbennyAngel/save-web3/database/models"
)

// RegistryNode is the registry surface the API server depends on. It's
// satisfied by *registry.State and lets tests substitute a fake.
type RegistryNode interface {
	// Ownership
	Owner() (string, error)
	SetRegistryOwner(principal, newOwner string) error

	// Games
	RegisterGame(
		principal, gameId, name, websiteUrl, description string,
	) error
	UpdateGame(
		principal, gameId, name, websiteUrl, description string,
		active bool,
	) error
	GetGame(gameId string) (*models.Game, error)
	GetGamesByDeveloper(developer string) ([]models.Game, error)

	// NFTs
	RegisterAsset(
		principal, nftId, name, originGameId, metadataUrl string,
		royaltyBps uint,
	) error
	UpdateAsset(
		principal, nftId, name, metadataUrl string,
		royaltyBps uint,
		active bool,
	) error
	GetNft(nftId string) (*models.Nft, error)
	IsNftCompatibleWithGame(nftId, gameId string) (bool, error)

	// Trait catalog
	RegisterTraitCategory(
		principal, categoryId, name, description string,
	) error
	GetTraitCategory(categoryId string) (*models.TraitCategory, error)
	SetNftTrait(principal, nftId, categoryId, value string) error
	GetNftTrait(nftId, categoryId string) (*models.NftTrait, error)

	// Capability catalog
	RegisterCapability(
		principal, capabilityId, name, description string,
	) error
	GetCapability(capabilityId string) (*models.Capability, error)
	SetNftCapability(
		principal, nftId, capabilityId string,
		enabled bool,
		properties string,
	) error
	GetNftCapability(
		nftId, capabilityId string,
	) (*models.NftCapability, error)

	// Conversion rules
	CreateConversionRule(
		principal, nftId, targetGameId, displayName, assetUrl, properties string,
	) error
	UpdateConversionRule(
		principal, nftId, targetGameId, displayName, assetUrl, properties string,
	) error
	DeleteConversionRule(
		principal, nftId, sourceGameId, targetGameId string,
	) error
	GetConversionRule(
		nftId, sourceGameId, targetGameId string,
	) (*models.ConversionRule, error)

	// Audit journal
	RecentActivity(maxEntries int) ([]database.JournalEntry, error)
}
