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

package registry

import (
	"github.com/SirbennyAngel/save-web3/event"
)

const (
	// MutationEventType is published once per successful mutating
	// operation, after the enclosing transaction has committed
	MutationEventType event.EventType = "registry.mutation"
)

// MutationEvent is the payload for MutationEventType events. It mirrors
// the audit journal entry for the operation.
type MutationEvent struct {
	Ordinal   uint64
	Operation string
	Principal string
	EntityKey string
}
