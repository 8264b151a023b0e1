package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubPublishReachesAllSubscriptions(t *testing.T) {
	hub := NewHub()

	ch1, cleanup1 := hub.Subscribe("user-1")
	ch2, cleanup2 := hub.Subscribe("user-1")
	defer cleanup1()
	defer cleanup2()

	hub.Publish("user-1", Event{UserID: "user-1", Event: "notification", Data: "hello"})

	for _, ch := range []chan Event{ch1, ch2} {
		select {
		case ev := <-ch:
			assert.Equal(t, "notification", ev.Event)
			assert.Equal(t, "hello", ev.Data)
		default:
			t.Fatal("expected a buffered event")
		}
	}
}

func TestHubPublishSkipsOtherUsers(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("user-2")
	defer cleanup()

	hub.Publish("user-1", Event{UserID: "user-1", Event: "notification"})

	select {
	case <-ch:
		t.Fatal("user-2 should not receive user-1 events")
	default:
	}
}

func TestHubCleanupUnregisters(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe("user-1")
	require.Equal(t, 1, hub.SubscriberCount("user-1"))

	cleanup()
	assert.Equal(t, 0, hub.SubscriberCount("user-1"))
	assert.Equal(t, 0, hub.TotalSubscribers())

	// Calling cleanup twice must not panic.
	cleanup()
}

func TestHubFullBufferDoesNotBlock(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe("user-1")
	defer cleanup()

	for i := 0; i < subscriberBuffer+5; i++ {
		hub.Publish("user-1", Event{UserID: "user-1", Event: "notification", Data: i})
	}
}

func TestHubPublishToMany(t *testing.T) {
	hub := NewHub()

	ch1, cleanup1 := hub.Subscribe("user-1")
	ch2, cleanup2 := hub.Subscribe("user-2")
	defer cleanup1()
	defer cleanup2()

	hub.PublishToMany([]string{"user-1", "user-2"}, Event{Event: "notification"})

	ev1 := <-ch1
	ev2 := <-ch2
	assert.Equal(t, "user-1", ev1.UserID)
	assert.Equal(t, "user-2", ev2.UserID)
}
