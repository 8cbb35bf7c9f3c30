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
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/SirbennyAngel/save-web3/database/models"
	"github.com/SirbennyAngel/save-web3/registry"
)

const apiVersion = "0.1.0"

const defaultActivityCount = 20

// writeJSON writes a JSON response with the given status code.
func writeJSON(
	w http.ResponseWriter,
	status int,
	v any,
) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,errchkjson
	json.NewEncoder(w).Encode(v)
}

// writeError writes an error response.
func writeError(
	w http.ResponseWriter,
	status int,
	errStr string,
	message string,
) {
	writeJSON(w, status, ErrorResponse{
		StatusCode: status,
		Error:      errStr,
		Message:    message,
	})
}

// writeRegistryError maps registry business errors onto HTTP statuses
func (a *Api) writeRegistryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, registry.ErrNotAuthorized):
		writeError(w, http.StatusForbidden, "Forbidden", err.Error())
	case errors.Is(err, models.ErrGameNotFound),
		errors.Is(err, models.ErrNftNotFound),
		errors.Is(err, models.ErrTraitCategoryNotFound),
		errors.Is(err, models.ErrNftTraitNotFound),
		errors.Is(err, models.ErrCapabilityNotFound),
		errors.Is(err, models.ErrNftCapabilityNotFound),
		errors.Is(err, models.ErrConversionRuleNotFound):
		writeError(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, registry.ErrGameAlreadyExists),
		errors.Is(err, registry.ErrNftAlreadyExists),
		errors.Is(err, registry.ErrTraitCategoryAlreadyExists),
		errors.Is(err, registry.ErrCapabilityAlreadyExists),
		errors.Is(err, registry.ErrConversionRuleExists),
		errors.Is(err, registry.ErrDeveloperGameLimit):
		writeError(w, http.StatusConflict, "Conflict", err.Error())
	case errors.Is(err, registry.ErrInvalidRoyaltyPercentage),
		errors.Is(err, registry.ErrInvalidParameters):
		writeError(
			w,
			http.StatusUnprocessableEntity,
			"Unprocessable Entity",
			err.Error(),
		)
	default:
		a.logger.Error(
			"request failed",
			"error", err,
		)
		writeError(
			w,
			http.StatusInternalServerError,
			"Internal Server Error",
			"internal error",
		)
	}
}

// principal extracts the caller identity header. Mutating handlers reject
// requests without one.
func (a *Api) principal(
	w http.ResponseWriter,
	r *http.Request,
) (string, bool) {
	principal := r.Header.Get(PrincipalHeader)
	if principal == "" {
		writeError(
			w,
			http.StatusUnauthorized,
			"Unauthorized",
			"missing "+PrincipalHeader+" header",
		)
		return "", false
	}
	return principal, true
}

// decodeBody decodes a JSON request body
func decodeBody(
	w http.ResponseWriter,
	r *http.Request,
	v any,
) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(
			w,
			http.StatusBadRequest,
			"Bad Request",
			"invalid request body",
		)
		return false
	}
	return true
}

// handleRoot handles GET / and returns API metadata.
func (a *Api) handleRoot(
	w http.ResponseWriter,
	_ *http.Request,
) {
	writeJSON(w, http.StatusOK, RootResponse{
		Name:    "save-web3 registry",
		Version: apiVersion,
	})
}

// handleHealth handles GET /health.
func (a *Api) handleHealth(
	w http.ResponseWriter,
	_ *http.Request,
) {
	writeJSON(w, http.StatusOK, HealthResponse{
		IsHealthy: true,
	})
}

func (a *Api) handleGetOwner(
	w http.ResponseWriter,
	_ *http.Request,
) {
	owner, err := a.node.Owner()
	if err != nil {
		a.writeRegistryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, OwnerResponse{Owner: owner})
}

func (a *Api) handleSetOwner(
	w http.ResponseWriter,
	r *http.Request,
) {
	principal, ok := a.principal(w, r)
	if !ok {
		return
	}
	var req SetOwnerRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := a.node.SetRegistryOwner(principal, req.NewOwner); err != nil {
		a.writeRegistryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, OwnerResponse{Owner: req.NewOwner})
}

func (a *Api) handleRegisterGame(
	w http.ResponseWriter,
	r *http.Request,
) {
	principal, ok := a.principal(w, r)
	if !ok {
		return
	}
	var req RegisterGameRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := a.node.RegisterGame(
		principal,
		req.GameID,
		req.Name,
		req.WebsiteURL,
		req.Description,
	); err != nil {
		a.writeRegistryError(w, err)
		return
	}
	game, err := a.node.GetGame(req.GameID)
	if err != nil {
		a.writeRegistryError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, gameResponse(game))
}

func (a *Api) handleUpdateGame(
	w http.ResponseWriter,
	r *http.Request,
) {
	principal, ok := a.principal(w, r)
	if !ok {
		return
	}
	gameId := r.PathValue("gameId")
	var req UpdateGameRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := a.node.UpdateGame(
		principal,
		gameId,
		req.Name,
		req.WebsiteURL,
		req.Description,
		req.Active,
	); err != nil {
		a.writeRegistryError(w, err)
		return
	}
	game, err := a.node.GetGame(gameId)
	if err != nil {
		a.writeRegistryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, gameResponse(game))
}

func (a *Api) handleGetGame(
	w http.ResponseWriter,
	r *http.Request,
) {
	game, err := a.node.GetGame(r.PathValue("gameId"))
	if err != nil {
		a.writeRegistryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, gameResponse(game))
}

func (a *Api) handleGetDeveloperGames(
	w http.ResponseWriter,
	r *http.Request,
) {
	games, err := a.node.GetGamesByDeveloper(r.PathValue("developer"))
	if err != nil {
		a.writeRegistryError(w, err)
		return
	}
	ret := []GameResponse{}
	for i := range games {
		ret = append(ret, gameResponse(&games[i]))
	}
	writeJSON(w, http.StatusOK, ret)
}

func (a *Api) handleRegisterAsset(
	w http.ResponseWriter,
	r *http.Request,
) {
	principal, ok := a.principal(w, r)
	if !ok {
		return
	}
	var req RegisterAssetRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := a.node.RegisterAsset(
		principal,
		req.NftID,
		req.Name,
		req.OriginGameID,
		req.MetadataURL,
		req.RoyaltyBps,
	); err != nil {
		a.writeRegistryError(w, err)
		return
	}
	nft, err := a.node.GetNft(req.NftID)
	if err != nil {
		a.writeRegistryError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, nftResponse(nft))
}

func (a *Api) handleUpdateAsset(
	w http.ResponseWriter,
	r *http.Request,
) {
	principal, ok := a.principal(w, r)
	if !ok {
		return
	}
	nftId := r.PathValue("nftId")
	var req UpdateAssetRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := a.node.UpdateAsset(
		principal,
		nftId,
		req.Name,
		req.MetadataURL,
		req.RoyaltyBps,
		req.Active,
	); err != nil {
		a.writeRegistryError(w, err)
		return
	}
	nft, err := a.node.GetNft(nftId)
	if err != nil {
		a.writeRegistryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nftResponse(nft))
}

func (a *Api) handleGetNft(
	w http.ResponseWriter,
	r *http.Request,
) {
	nft, err := a.node.GetNft(r.PathValue("nftId"))
	if err != nil {
		a.writeRegistryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nftResponse(nft))
}

func (a *Api) handleNftCompatibility(
	w http.ResponseWriter,
	r *http.Request,
) {
	nftId := r.PathValue("nftId")
	gameId := r.PathValue("gameId")
	compatible, err := a.node.IsNftCompatibleWithGame(nftId, gameId)
	if err != nil {
		a.writeRegistryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, CompatibilityResponse{
		NftID:      nftId,
		GameID:     gameId,
		Compatible: compatible,
	})
}

func (a *Api) handleRegisterTraitCategory(
	w http.ResponseWriter,
	r *http.Request,
) {
	principal, ok := a.principal(w, r)
	if !ok {
		return
	}
	var req RegisterCatalogEntryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := a.node.RegisterTraitCategory(
		principal,
		req.ID,
		req.Name,
		req.Description,
	); err != nil {
		a.writeRegistryError(w, err)
		return
	}
	category, err := a.node.GetTraitCategory(req.ID)
	if err != nil {
		a.writeRegistryError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, CatalogEntryResponse{
		ID:          category.CategoryID,
		Name:        category.Name,
		Description: category.Description,
		CreatedBy:   category.CreatedBy,
		CreatedAt:   category.CreatedAt,
	})
}

func (a *Api) handleGetTraitCategory(
	w http.ResponseWriter,
	r *http.Request,
) {
	category, err := a.node.GetTraitCategory(r.PathValue("categoryId"))
	if err != nil {
		a.writeRegistryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, CatalogEntryResponse{
		ID:          category.CategoryID,
		Name:        category.Name,
		Description: category.Description,
		CreatedBy:   category.CreatedBy,
		CreatedAt:   category.CreatedAt,
	})
}

func (a *Api) handleSetNftTrait(
	w http.ResponseWriter,
	r *http.Request,
) {
	principal, ok := a.principal(w, r)
	if !ok {
		return
	}
	nftId := r.PathValue("nftId")
	categoryId := r.PathValue("categoryId")
	var req SetNftTraitRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := a.node.SetNftTrait(
		principal,
		nftId,
		categoryId,
		req.Value,
	); err != nil {
		a.writeRegistryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, NftTraitResponse{
		NftID:      nftId,
		CategoryID: categoryId,
		Value:      req.Value,
	})
}

func (a *Api) handleGetNftTrait(
	w http.ResponseWriter,
	r *http.Request,
) {
	trait, err := a.node.GetNftTrait(
		r.PathValue("nftId"),
		r.PathValue("categoryId"),
	)
	if err != nil {
		a.writeRegistryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, NftTraitResponse{
		NftID:      trait.NftID,
		CategoryID: trait.CategoryID,
		Value:      trait.Value,
	})
}

func (a *Api) handleRegisterCapability(
	w http.ResponseWriter,
	r *http.Request,
) {
	principal, ok := a.principal(w, r)
	if !ok {
		return
	}
	var req RegisterCatalogEntryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := a.node.RegisterCapability(
		principal,
		req.ID,
		req.Name,
		req.Description,
	); err != nil {
		a.writeRegistryError(w, err)
		return
	}
	capability, err := a.node.GetCapability(req.ID)
	if err != nil {
		a.writeRegistryError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, CatalogEntryResponse{
		ID:          capability.CapabilityID,
		Name:        capability.Name,
		Description: capability.Description,
		CreatedBy:   capability.CreatedBy,
		CreatedAt:   capability.CreatedAt,
	})
}

func (a *Api) handleGetCapability(
	w http.ResponseWriter,
	r *http.Request,
) {
	capability, err := a.node.GetCapability(r.PathValue("capabilityId"))
	if err != nil {
		a.writeRegistryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, CatalogEntryResponse{
		ID:          capability.CapabilityID,
		Name:        capability.Name,
		Description: capability.Description,
		CreatedBy:   capability.CreatedBy,
		CreatedAt:   capability.CreatedAt,
	})
}

func (a *Api) handleSetNftCapability(
	w http.ResponseWriter,
	r *http.Request,
) {
	principal, ok := a.principal(w, r)
	if !ok {
		return
	}
	nftId := r.PathValue("nftId")
	capabilityId := r.PathValue("capabilityId")
	var req SetNftCapabilityRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := a.node.SetNftCapability(
		principal,
		nftId,
		capabilityId,
		req.Enabled,
		req.Properties,
	); err != nil {
		a.writeRegistryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, NftCapabilityResponse{
		NftID:        nftId,
		CapabilityID: capabilityId,
		Enabled:      req.Enabled,
		Properties:   req.Properties,
	})
}

func (a *Api) handleGetNftCapability(
	w http.ResponseWriter,
	r *http.Request,
) {
	capability, err := a.node.GetNftCapability(
		r.PathValue("nftId"),
		r.PathValue("capabilityId"),
	)
	if err != nil {
		a.writeRegistryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, NftCapabilityResponse{
		NftID:        capability.NftID,
		CapabilityID: capability.CapabilityID,
		Enabled:      capability.Enabled,
		Properties:   capability.Properties,
	})
}

func (a *Api) handleCreateConversionRule(
	w http.ResponseWriter,
	r *http.Request,
) {
	principal, ok := a.principal(w, r)
	if !ok {
		return
	}
	nftId := r.PathValue("nftId")
	var req ConversionRuleRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := a.node.CreateConversionRule(
		principal,
		nftId,
		req.TargetGameID,
		req.DisplayName,
		req.AssetURL,
		req.Properties,
	); err != nil {
		a.writeRegistryError(w, err)
		return
	}
	nft, err := a.node.GetNft(nftId)
	if err != nil {
		a.writeRegistryError(w, err)
		return
	}
	rule, err := a.node.GetConversionRule(
		nftId,
		nft.OriginGameID,
		req.TargetGameID,
	)
	if err != nil {
		a.writeRegistryError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, conversionRuleResponse(rule))
}

func (a *Api) handleUpdateConversionRule(
	w http.ResponseWriter,
	r *http.Request,
) {
	principal, ok := a.principal(w, r)
	if !ok {
		return
	}
	nftId := r.PathValue("nftId")
	targetGameId := r.PathValue("targetGameId")
	var req ConversionRuleRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := a.node.UpdateConversionRule(
		principal,
		nftId,
		targetGameId,
		req.DisplayName,
		req.AssetURL,
		req.Properties,
	); err != nil {
		a.writeRegistryError(w, err)
		return
	}
	nft, err := a.node.GetNft(nftId)
	if err != nil {
		a.writeRegistryError(w, err)
		return
	}
	rule, err := a.node.GetConversionRule(
		nftId,
		nft.OriginGameID,
		targetGameId,
	)
	if err != nil {
		a.writeRegistryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, conversionRuleResponse(rule))
}

func (a *Api) handleDeleteConversionRule(
	w http.ResponseWriter,
	r *http.Request,
) {
	principal, ok := a.principal(w, r)
	if !ok {
		return
	}
	if err := a.node.DeleteConversionRule(
		principal,
		r.PathValue("nftId"),
		r.PathValue("sourceGameId"),
		r.PathValue("targetGameId"),
	); err != nil {
		a.writeRegistryError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *Api) handleGetConversionRule(
	w http.ResponseWriter,
	r *http.Request,
) {
	rule, err := a.node.GetConversionRule(
		r.PathValue("nftId"),
		r.PathValue("sourceGameId"),
		r.PathValue("targetGameId"),
	)
	if err != nil {
		a.writeRegistryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, conversionRuleResponse(rule))
}

func (a *Api) handleActivity(
	w http.ResponseWriter,
	r *http.Request,
) {
	count := defaultActivityCount
	if rawCount := r.URL.Query().Get("count"); rawCount != "" {
		parsed, err := strconv.Atoi(rawCount)
		if err != nil || parsed <= 0 {
			writeError(
				w,
				http.StatusBadRequest,
				"Bad Request",
				"invalid count parameter",
			)
			return
		}
		count = parsed
	}
	entries, err := a.node.RecentActivity(count)
	if err != nil {
		a.writeRegistryError(w, err)
		return
	}
	ret := []ActivityEntryResponse{}
	for _, entry := range entries {
		ret = append(ret, ActivityEntryResponse{
			Ordinal:   entry.Ordinal,
			Operation: entry.Operation,
			Principal: entry.Principal,
			EntityKey: entry.EntityKey,
		})
	}
	writeJSON(w, http.StatusOK, ret)
}

func gameResponse(game *models.Game) GameResponse {
	return GameResponse{
		GameID:       game.GameID,
		Name:         game.Name,
		Developer:    game.Developer,
		WebsiteURL:   game.WebsiteURL,
		Description:  game.Description,
		RegisteredAt: game.RegisteredAt,
		Active:       game.Active,
	}
}

func nftResponse(nft *models.Nft) NftResponse {
	return NftResponse{
		NftID:         nft.NftID,
		Name:          nft.Name,
		OriginGameID:  nft.OriginGameID,
		Creator:       nft.Creator,
		CreationBlock: nft.CreationBlock,
		MetadataURL:   nft.MetadataURL,
		RoyaltyBps:    nft.RoyaltyBps,
		Active:        nft.Active,
	}
}

func conversionRuleResponse(
	rule *models.ConversionRule,
) ConversionRuleResponse {
	return ConversionRuleResponse{
		NftID:         rule.NftID,
		SourceGameID:  rule.SourceGameID,
		TargetGameID:  rule.TargetGameID,
		DisplayName:   rule.DisplayName,
		AssetURL:      rule.AssetURL,
		Properties:    rule.Properties,
		CreatedBy:     rule.CreatedBy,
		CreatedAt:     rule.CreatedAt,
		LastUpdatedAt: rule.LastUpdatedAt,
	}
}
