package ws

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestClient(h *Hub, userID uuid.UUID) *Client {
	return &Client{hub: h, send: make(chan []byte, 8), userID: userID}
}

func waitForClients(t *testing.T, h *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if h.ClientCount() == want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("expected %d clients, got %d", want, h.ClientCount())
}

func TestHubSendToUserTargetsOnlyOwner(t *testing.T) {
	h := NewHub(nil)
	go h.Run()

	alice := uuid.New()
	bob := uuid.New()
	aliceClient := newTestClient(h, alice)
	bobClient := newTestClient(h, bob)
	h.Register(aliceClient)
	h.Register(bobClient)
	waitForClients(t, h, 2)

	h.SendToUser(alice, []byte("hello"))

	select {
	case msg := <-aliceClient.send:
		if string(msg) != "hello" {
			t.Fatalf("unexpected payload %q", msg)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("message never delivered to alice")
	}

	select {
	case msg := <-bobClient.send:
		t.Fatalf("bob received %q, expected nothing", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubSendToUserDuringDisconnect(t *testing.T) {
	h := NewHub(nil)
	go h.Run()

	userID := uuid.New()

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < 2000; i++ {
			c := newTestClient(h, userID)
			h.Register(c)
			h.Unregister(c)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 2000; i++ {
			h.SendToUser(userID, []byte("ping"))
		}
	}()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("hub stalled under register/unregister churn")
	}
}

func TestHubDropsSlowClient(t *testing.T) {
	h := NewHub(nil)
	go h.Run()

	userID := uuid.New()
	c := &Client{hub: h, send: make(chan []byte), userID: userID}
	h.Register(c)
	waitForClients(t, h, 1)

	h.SendToUser(userID, []byte("overflow"))
	waitForClients(t, h, 0)

	if _, ok := <-c.send; ok {
		t.Fatal("expected send channel to be closed")
	}
}
