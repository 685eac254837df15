package broker

import (
	"testing"
	"time"
)

func TestBroker_FanOut(t *testing.T) {
	b := New()

	client1 := b.Subscribe()
	client2 := b.Subscribe()

	go b.Publish("order.created", map[string]any{"order_id": "123"})

	for i, client := range []chan Event{client1, client2} {
		select {
		case e := <-client:
			if e.Type != "order.created" {
				t.Errorf("Expected order.created, got %s", e.Type)
			}
			if e.Data["order_id"] != "123" {
				t.Errorf("Expected order_id 123, got %v", e.Data["order_id"])
			}
		case <-time.After(time.Second):
			t.Errorf("Client %d timeout", i+1)
		}
	}
}

func TestBroker_Unsubscribe(t *testing.T) {
	b := New()

	client := b.Subscribe()
	if b.ClientCount() != 1 {
		t.Errorf("Expected 1 client, got %d", b.ClientCount())
	}

	b.Unsubscribe(client)
	if b.ClientCount() != 0 {
		t.Errorf("Expected 0 clients, got %d", b.ClientCount())
	}

	// closed channel must not panic a publish
	b.Publish("message.created", nil)
}

func TestBroker_SlowClientDoesNotBlock(t *testing.T) {
	b := New()

	// fill the client's buffer and never drain it
	client := b.Subscribe()
	for i := 0; i < 15; i++ {
		b.Publish("order.created", map[string]any{"n": i})
	}

	done := make(chan struct{})
	go func() {
		b.Publish("order.created", nil)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a slow client")
	}
	_ = client
}
