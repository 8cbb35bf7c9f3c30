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
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"
)

// PrincipalHeader carries the caller identity for mutating requests. The
// value is trusted as-is; authenticating it is the job of whatever sits
// in front of this server.
const PrincipalHeader = "X-Registry-Principal"

type Config struct {
	ListenAddress string
}

// Api is the registry REST API server.
type Api struct {
	config     Config
	logger     *slog.Logger
	node       RegistryNode
	httpServer *http.Server
	mu         sync.Mutex
}

// New creates a new API server instance.
func New(
	cfg Config,
	node RegistryNode,
	logger *slog.Logger,
) *Api {
	if logger == nil {
		logger = slog.New(
			slog.NewJSONHandler(io.Discard, nil),
		)
	}
	logger = logger.With("component", "api")
	if cfg.ListenAddress == "" {
		cfg.ListenAddress = ":3000"
	}
	return &Api{
		config: cfg,
		logger: logger,
		node:   node,
	}
}

// Handler returns the route multiplexer for the API surface
func (a *Api) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /", a.handleRoot)
	mux.HandleFunc("GET /health", a.handleHealth)
	// Ownership
	mux.HandleFunc("GET /api/v0/owner", a.handleGetOwner)
	mux.HandleFunc("PUT /api/v0/owner", a.handleSetOwner)
	// Games
	mux.HandleFunc("POST /api/v0/games", a.handleRegisterGame)
	mux.HandleFunc("PUT /api/v0/games/{gameId}", a.handleUpdateGame)
	mux.HandleFunc("GET /api/v0/games/{gameId}", a.handleGetGame)
	mux.HandleFunc(
		"GET /api/v0/developers/{developer}/games",
		a.handleGetDeveloperGames,
	)
	// NFTs
	mux.HandleFunc("POST /api/v0/nfts", a.handleRegisterAsset)
	mux.HandleFunc("PUT /api/v0/nfts/{nftId}", a.handleUpdateAsset)
	mux.HandleFunc("GET /api/v0/nfts/{nftId}", a.handleGetNft)
	mux.HandleFunc(
		"GET /api/v0/nfts/{nftId}/compatibility/{gameId}",
		a.handleNftCompatibility,
	)
	// Trait catalog
	mux.HandleFunc("POST /api/v0/traits", a.handleRegisterTraitCategory)
	mux.HandleFunc(
		"GET /api/v0/traits/{categoryId}",
		a.handleGetTraitCategory,
	)
	mux.HandleFunc(
		"PUT /api/v0/nfts/{nftId}/traits/{categoryId}",
		a.handleSetNftTrait,
	)
	mux.HandleFunc(
		"GET /api/v0/nfts/{nftId}/traits/{categoryId}",
		a.handleGetNftTrait,
	)
	// Capability catalog
	mux.HandleFunc(
		"POST /api/v0/capabilities",
		a.handleRegisterCapability,
	)
	mux.HandleFunc(
		"GET /api/v0/capabilities/{capabilityId}",
		a.handleGetCapability,
	)
	mux.HandleFunc(
		"PUT /api/v0/nfts/{nftId}/capabilities/{capabilityId}",
		a.handleSetNftCapability,
	)
	mux.HandleFunc(
		"GET /api/v0/nfts/{nftId}/capabilities/{capabilityId}",
		a.handleGetNftCapability,
	)
	// Conversion rules
	mux.HandleFunc(
		"POST /api/v0/nfts/{nftId}/conversions",
		a.handleCreateConversionRule,
	)
	mux.HandleFunc(
		"PUT /api/v0/nfts/{nftId}/conversions/{targetGameId}",
		a.handleUpdateConversionRule,
	)
	mux.HandleFunc(
		"DELETE /api/v0/nfts/{nftId}/conversions/{sourceGameId}/{targetGameId}",
		a.handleDeleteConversionRule,
	)
	mux.HandleFunc(
		"GET /api/v0/nfts/{nftId}/conversions/{sourceGameId}/{targetGameId}",
		a.handleGetConversionRule,
	)
	// Audit journal
	mux.HandleFunc("GET /api/v0/activity", a.handleActivity)
	return mux
}

// Start starts the HTTP server in a background goroutine.
func (a *Api) Start(
	ctx context.Context,
) error {
	a.mu.Lock()
	if a.httpServer != nil {
		a.mu.Unlock()
		return errors.New("server already started")
	}

	server := &http.Server{
		Addr:              a.config.ListenAddress,
		Handler:           a.Handler(),
		ReadHeaderTimeout: 60 * time.Second,
	}
	a.httpServer = server
	a.mu.Unlock()

	// Start the server with deterministic error detection
	if err := a.startServer(server); err != nil {
		a.mu.Lock()
		a.httpServer = nil
		a.mu.Unlock()
		return err
	}

	a.logger.Info(
		"registry API listener started on " + a.config.ListenAddress,
	)

	// Monitor context for cancellation
	go func() {
		<-ctx.Done()
		a.mu.Lock()
		srv := a.httpServer
		a.httpServer = nil
		a.mu.Unlock()

		if srv != nil {
			a.logger.Debug(
				"context cancelled, shutting down registry API server",
			)
			//nolint:contextcheck
			shutdownCtx, cancel := context.WithTimeout(
				context.Background(),
				30*time.Second,
			)
			defer cancel()
			//nolint:contextcheck
			if err := srv.Shutdown(shutdownCtx); err != nil {
				a.logger.Error(
					"failed to shutdown registry API server on context cancellation",
					"error", err,
				)
			}
		}
	}()

	return nil
}

// Stop gracefully shuts down the HTTP server.
func (a *Api) Stop(
	ctx context.Context,
) error {
	a.mu.Lock()
	srv := a.httpServer
	a.httpServer = nil
	a.mu.Unlock()

	if srv != nil {
		a.logger.Debug("shutting down registry API server")
		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf(
				"failed to shutdown registry API server: %w",
				err,
			)
		}
	}
	return nil
}

// startServer starts the HTTP server with deterministic error detection.
// It binds the listening socket first so port conflicts are detected
// immediately, then serves in a background goroutine.
func (a *Api) startServer(
	server *http.Server,
) error {
	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return fmt.Errorf(
			"failed to listen for registry API server: %w",
			err,
		)
	}
	go func() {
		if err := server.Serve(ln); err != nil &&
			!errors.Is(err, http.ErrServerClosed) {
			a.logger.Error(
				"registry API server error",
				"error", err,
			)
		}
	}()
	return nil
}
