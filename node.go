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

package saveweb3

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/SirbennyAngel/save-web3/api"
	"github.com/SirbennyAngel/save-web3/event"
	"github.com/SirbennyAngel/save-web3/registry"
)

type Node struct {
	registryState *registry.State
	api           *api.Api
	eventBus      *event.EventBus
	shutdownFuncs []func(context.Context) error
	config        Config
	done          chan struct{}
	shutdownOnce  sync.Once
}

func New(cfg Config) (*Node, error) {
	n := &Node{
		config:   cfg,
		eventBus: event.NewEventBus(cfg.promRegistry),
		done:     make(chan struct{}),
	}
	if err := n.configValidate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return n, nil
}

func (n *Node) configValidate() error {
	if n.config.owner == "" {
		return errors.New("no registry owner defined")
	}
	return nil
}

// Registry returns the underlying registry state. It's only available
// after Run has been called.
func (n *Node) Registry() *registry.State {
	return n.registryState
}

func (n *Node) Run() error {
	// Configure tracing
	if n.config.tracing {
		if err := n.setupTracing(); err != nil {
			return err
		}
	}
	// Load registry state
	state, err := registry.New(
		registry.StateConfig{
			Logger:         n.config.logger,
			DataDir:        n.config.dataDir,
			BlobPlugin:     n.config.blobPlugin,
			MetadataPlugin: n.config.metadataPlugin,
			EventBus:       n.eventBus,
			PromRegistry:   n.config.promRegistry,
			Owner:          n.config.owner,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to load registry state: %w", err)
	}
	n.registryState = state
	// Log registry mutations at debug level
	n.eventBus.SubscribeFunc(
		registry.MutationEventType,
		func(evt event.Event) {
			if mutation, ok := evt.Data.(registry.MutationEvent); ok {
				n.config.logger.Debug(
					"registry mutation",
					"component", "node",
					"ordinal", mutation.Ordinal,
					"operation", mutation.Operation,
					"principal", mutation.Principal,
					"entity_key", mutation.EntityKey,
				)
			}
		},
	)
	// Start API listener
	if n.config.apiListenAddress != "" {
		n.api = api.New(
			api.Config{
				ListenAddress: n.config.apiListenAddress,
			},
			n.registryState,
			n.config.logger,
		)
		if err := n.api.Start(context.Background()); err != nil {
			return err
		}
	}

	// Wait for shutdown signal
	<-n.done
	return nil
}

func (n *Node) Stop() error {
	var err error
	n.shutdownOnce.Do(func() {
		err = n.shutdown()
	})
	return err
}

func (n *Node) shutdown() error {
	// Create shutdown context with timeout (default 30s if not configured)
	shutdownTimeout := 30 * time.Second
	if n.config.shutdownTimeout > 0 {
		shutdownTimeout = n.config.shutdownTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var err error

	n.config.logger.Debug("starting graceful shutdown")

	// Stop accepting new work
	if n.api != nil {
		if stopErr := n.api.Stop(ctx); stopErr != nil {
			err = errors.Join(err, fmt.Errorf("api shutdown: %w", stopErr))
		}
	}

	// Flush state and close database
	if n.registryState != nil {
		if closeErr := n.registryState.Close(); closeErr != nil {
			err = errors.Join(
				err,
				fmt.Errorf("registry state close: %w", closeErr),
			)
		}
	}

	// Call registered shutdown functions
	for _, fn := range n.shutdownFuncs {
		if fnErr := fn(ctx); fnErr != nil {
			err = errors.Join(err, fmt.Errorf("shutdown function: %w", fnErr))
		}
	}
	n.shutdownFuncs = nil

	if n.eventBus != nil {
		n.eventBus.Stop()
	}

	n.config.logger.Debug("graceful shutdown complete")
	close(n.done)
	return err
}
