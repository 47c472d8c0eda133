package spectate

import (
	"context"
	"net"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/hyperspace/events"
	"github.com/lixenwraith/hyperspace/game"
	"github.com/lixenwraith/hyperspace/status"
	"github.com/lixenwraith/hyperspace/vmath"
)

func testSnapshot() *game.Snapshot {
	return &game.Snapshot{
		Tick: 42,
		Run: game.RunState{
			RunID:       "run-1",
			Score:       512.5,
			Level:       2,
			Health:      3,
			BoostCharge: 80,
			IsPlaying:   true,
		},
		Player: game.PlayerState{Position: vmath.Vec3F{X: 1, Y: 2, Z: 3}, PathParameter: 0.25},
		Obstacles: []game.EntityView{
			{Index: 0, World: vmath.Vec3F{Z: -4}, Rotation: 0.5},
		},
		Collectibles: []game.EntityView{
			{Index: 3, World: vmath.Vec3F{X: 0.2, Z: -6}},
		},
	}
}

// attach registers a viewer without a connection so broadcast can be observed directly
func attach(h *Hub, buffer int) *viewer {
	v := &viewer{send: make(chan []byte, buffer)}
	h.mu.Lock()
	h.viewers[v] = struct{}{}
	h.mu.Unlock()
	return v
}

func dial(t *testing.T, h *Hub) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(h.Handler())
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Failed to dial %s: %v", url, err)
	}
	t.Cleanup(func() { conn.Close() })

	deadline := time.Now().Add(2 * time.Second)
	for h.ViewerCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("Viewer never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}
	return conn
}

func TestFrameOverWebsocket(t *testing.T) {
	reg := status.NewRegistry()
	h := NewHub(reg, 0)
	conn := dial(t, h)

	if got := reg.Ints.Get(status.SpectateViewers).Load(); got != 1 {
		t.Errorf("Expected 1 viewer metric, got %d", got)
	}

	h.Present(testSnapshot())

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	mt, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if mt != websocket.BinaryMessage {
		t.Errorf("Expected binary message, got %d", mt)
	}

	var f Frame
	if err := msgpack.Unmarshal(data, &f); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if f.Kind != KindFrame || f.RunID != "run-1" || f.Tick != 42 {
		t.Errorf("Unexpected frame header: %+v", f)
	}
	if f.Score != 512.5 || f.Level != 2 || f.Health != 3 || f.BoostCharge != 80 {
		t.Errorf("Unexpected run fields: %+v", f)
	}
	if !f.Playing || f.Boost != "ready" {
		t.Errorf("Expected playing with ready boost, got playing=%v boost=%s", f.Playing, f.Boost)
	}
	if f.Player.Z != 3 || f.Player.PathParameter != 0.25 {
		t.Errorf("Unexpected player: %+v", f.Player)
	}
	if len(f.Entities) != 2 || f.Entities[0].Kind != "obstacle" || f.Entities[1].Kind != "collectible" {
		t.Errorf("Unexpected entities: %+v", f.Entities)
	}
}

func TestEventOverWebsocket(t *testing.T) {
	h := NewHub(nil, 0)
	conn := dial(t, h)

	h.HandleEvent(nil, events.GameEvent{
		Type:    events.EventLevelUp,
		Tick:    7,
		Payload: &events.LevelUpPayload{Level: 3, Obstacles: 12, Collectibles: 6, Speed: 1.2},
	})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	var ef struct {
		Kind    string         `msgpack:"kind"`
		Event   string         `msgpack:"event"`
		Tick    uint64         `msgpack:"tick"`
		Payload map[string]any `msgpack:"payload"`
	}
	if err := msgpack.Unmarshal(data, &ef); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if ef.Kind != KindEvent || ef.Event != "level_up" || ef.Tick != 7 {
		t.Errorf("Unexpected event frame: %+v", ef)
	}
	if ef.Payload == nil {
		t.Errorf("Expected payload")
	}
}

func TestViewerDisconnect(t *testing.T) {
	h := NewHub(nil, 0)
	conn := dial(t, h)
	conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for h.ViewerCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("Viewer was not removed after disconnect")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestPublishRateLimited(t *testing.T) {
	h := NewHub(nil, 50*time.Millisecond)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	h.now = func() time.Time { return now }
	v := attach(h, 8)

	snap := testSnapshot()
	h.Present(snap)
	now = now.Add(20 * time.Millisecond)
	h.Present(snap)
	if len(v.send) != 1 {
		t.Errorf("Expected 1 frame inside interval, got %d", len(v.send))
	}

	now = now.Add(30 * time.Millisecond)
	h.Present(snap)
	if len(v.send) != 2 {
		t.Errorf("Expected 2 frames after interval, got %d", len(v.send))
	}
}

func TestSlowViewerDrops(t *testing.T) {
	reg := status.NewRegistry()
	h := NewHub(reg, 0)
	v := attach(h, 1)

	for i := 0; i < 4; i++ {
		h.HandleEvent(nil, events.GameEvent{Type: events.EventBoostReady})
	}

	if len(v.send) != 1 {
		t.Errorf("Expected queue to hold 1, got %d", len(v.send))
	}
	if got := reg.Ints.Get(status.SpectateDropped).Load(); got != 3 {
		t.Errorf("Expected 3 drops, got %d", got)
	}
}

func TestNoViewersNoWork(t *testing.T) {
	h := NewHub(nil, 0)
	h.Present(testSnapshot())
	if !h.lastPublish.IsZero() {
		t.Errorf("Expected no publish without viewers")
	}
}

func TestSubscribesAllEvents(t *testing.T) {
	h := NewHub(nil, 0)
	if got := len(h.EventTypes()); got != int(events.EventTypeCount) {
		t.Errorf("Expected %d event types, got %d", events.EventTypeCount, got)
	}
}

func TestServeStopsOnCancel(t *testing.T) {
	h := NewHub(nil, 0)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- h.serve(ctx, ln) }()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Expected clean shutdown, got %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
