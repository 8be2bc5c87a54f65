package notify

import (
	"encoding/json"
	"testing"
	"time"
)

func TestHubRegisterBroadcastUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{
		Send:      make(chan []byte, 10),
		SessionID: "sess1",
	}
	hub.register <- client

	hub.CartChanged("sess1", 3, 5400)

	select {
	case got := <-client.Send:
		var p Payload
		if err := json.Unmarshal(got, &p); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if p.Kind != "cart" || p.Count != 3 || p.Subtotal != 5400 {
			t.Fatalf("unexpected payload: %+v", p)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for message")
	}

	hub.unregister <- client
}

func TestBroadcastIsScopedToSession(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	mine := &Client{Send: make(chan []byte, 10), SessionID: "sess1"}
	other := &Client{Send: make(chan []byte, 10), SessionID: "sess2"}
	hub.register <- mine
	hub.register <- other

	hub.Toast("sess1", "success", "Order Placed Successfully!", "Your food will be delivered in 30-45 minutes.", 6*time.Second)

	select {
	case <-mine.Send:
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for own session's message")
	}

	select {
	case msg := <-other.Send:
		t.Fatalf("other session received %s", msg)
	case <-time.After(50 * time.Millisecond):
	}
}
