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

package event_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/SirbennyAngel/save-web3/event"
	"github.com/SirbennyAngel/save-web3/internal/test/testutil"
	"github.com/stretchr/testify/require"
)

const testEvtType event.EventType = "test.event"

func TestEventBusSingleSubscriber(t *testing.T) {
	eb := event.NewEventBus(nil)
	defer eb.Stop()
	_, subCh := eb.Subscribe(testEvtType)
	eb.Publish(testEvtType, event.NewEvent(testEvtType, 999))
	evt := testutil.RequireReceive(t, subCh, time.Second, "published event")
	val, ok := evt.Data.(int)
	require.True(t, ok, "event data was not of expected type int")
	require.Equal(t, 999, val)
	require.Equal(t, testEvtType, evt.Type)
}

func TestEventBusMultipleSubscribers(t *testing.T) {
	eb := event.NewEventBus(nil)
	defer eb.Stop()
	_, sub1Ch := eb.Subscribe(testEvtType)
	_, sub2Ch := eb.Subscribe(testEvtType)
	eb.Publish(testEvtType, event.NewEvent(testEvtType, 999))
	evt1 := testutil.RequireReceive(t, sub1Ch, time.Second, "subscriber 1")
	evt2 := testutil.RequireReceive(t, sub2Ch, time.Second, "subscriber 2")
	require.Equal(t, evt1.Data, evt2.Data)
}

func TestEventBusTypeIsolation(t *testing.T) {
	eb := event.NewEventBus(nil)
	defer eb.Stop()
	_, subCh := eb.Subscribe("other.event")
	eb.Publish(testEvtType, event.NewEvent(testEvtType, 999))
	testutil.RequireNoReceive(
		t,
		subCh,
		100*time.Millisecond,
		"event of a different type",
	)
}

func TestEventBusSubscribeFunc(t *testing.T) {
	eb := event.NewEventBus(nil)
	defer eb.Stop()
	var eventCount atomic.Int64
	eb.SubscribeFunc(testEvtType, func(_ event.Event) {
		eventCount.Add(1)
	})
	for range 3 {
		eb.Publish(testEvtType, event.NewEvent(testEvtType, 999))
	}
	testutil.WaitForCondition(
		t,
		func() bool { return eventCount.Load() == 3 },
		time.Second,
		"handler called for each published event",
	)
}

func TestEventBusUnsubscribe(t *testing.T) {
	eb := event.NewEventBus(nil)
	defer eb.Stop()
	subId, subCh := eb.Subscribe(testEvtType)
	eb.Unsubscribe(testEvtType, subId)
	// The channel is closed on unsubscribe
	_, ok := <-subCh
	require.False(t, ok, "expected channel to be closed")
	// Publishing with no subscribers doesn't panic
	eb.Publish(testEvtType, event.NewEvent(testEvtType, 999))
}

func TestEventBusSlowSubscriberDoesNotBlockPublish(t *testing.T) {
	eb := event.NewEventBus(nil)
	defer eb.Stop()
	// Nobody reads from this subscription, so its buffer fills up
	_, subCh := eb.Subscribe(testEvtType)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := range event.EventQueueSize + 10 {
			eb.Publish(testEvtType, event.NewEvent(testEvtType, i))
		}
	}()
	testutil.RequireReceive(
		t,
		done,
		time.Second,
		"publisher finished without blocking",
	)
	// The buffered events are still delivered in order
	for i := range event.EventQueueSize {
		evt := testutil.RequireReceive(
			t,
			subCh,
			time.Second,
			"buffered event",
		)
		require.Equal(t, i, evt.Data)
	}
}
