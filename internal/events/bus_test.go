package events

import (
	"testing"
	"time"
)

func TestPublishDeliversToTopicSubscribers(t *testing.T) {
	bus := NewBus()
	var got []Event
	bus.Subscribe(TopicCartUpdated, func(ev Event) { got = append(got, ev) })
	bus.Subscribe(TopicCartBumped, func(Event) { t.Fatal("wrong topic delivered") })

	bus.Publish(Event{Topic: TopicCartUpdated, CartID: "c-1"})

	if len(got) != 1 {
		t.Fatalf("expected one delivery, got %d", len(got))
	}
	if got[0].CartID != "c-1" {
		t.Fatalf("unexpected cart id: %s", got[0].CartID)
	}
}

func TestPublishStampsOccurredAt(t *testing.T) {
	bus := NewBus()
	var got Event
	bus.Subscribe(TopicQuoteResolved, func(ev Event) { got = ev })

	bus.Publish(Event{Topic: TopicQuoteResolved})
	if got.OccurredAt.IsZero() {
		t.Fatal("expected OccurredAt to be stamped")
	}

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	bus.Publish(Event{Topic: TopicQuoteResolved, OccurredAt: at})
	if !got.OccurredAt.Equal(at) {
		t.Fatalf("explicit timestamp must be kept, got %v", got.OccurredAt)
	}
}

func TestMultipleSubscribersFanOut(t *testing.T) {
	bus := NewBus()
	count := 0
	bus.Subscribe(TopicCartUpdated, func(Event) { count++ })
	bus.Subscribe(TopicCartUpdated, func(Event) { count++ })

	bus.Publish(Event{Topic: TopicCartUpdated})
	if count != 2 {
		t.Fatalf("expected fan out to both handlers, got %d", count)
	}
}

func TestNilBusIsNoOp(t *testing.T) {
	var bus *Bus
	bus.Subscribe(TopicCartUpdated, func(Event) {})
	bus.Publish(Event{Topic: TopicCartUpdated})
}
