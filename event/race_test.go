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

package event

import (
	"sync"
	"testing"

	"go.uber.org/goleak"
)

// TestPublishUnsubscribeRace exercises the overlap between Publish and
// Unsubscribe/Stop where a send could hit a concurrently closing channel.
// The iterations probabilistically surface races; the bus must not panic.
func TestPublishUnsubscribeRace(t *testing.T) {
	const iters = 1000
	typ := EventType("race.test")
	for range iters {
		eb := NewEventBus(nil)
		subId, ch := eb.Subscribe(typ)

		var wg sync.WaitGroup
		wg.Add(3)

		go func() {
			defer wg.Done()
			for j := range 10 {
				eb.Publish(typ, NewEvent(typ, j))
			}
		}()

		go func() {
			defer wg.Done()
			eb.Unsubscribe(typ, subId)
			eb.Stop()
		}()

		go func() {
			defer wg.Done()
			for range ch {
			}
		}()

		wg.Wait()
	}
}

// TestStopReleasesHandlerGoroutines verifies that goroutines spawned by
// SubscribeFunc exit once the bus is stopped
func TestStopReleasesHandlerGoroutines(t *testing.T) {
	defer goleak.VerifyNone(t)
	typ := EventType("leak.test")
	eb := NewEventBus(nil)
	for range 5 {
		eb.SubscribeFunc(typ, func(_ Event) {})
	}
	eb.Publish(typ, NewEvent(typ, 1))
	eb.Stop()
}
