// Package spectate streams the run to read-only websocket viewers as msgpack frames.
package spectate

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/hyperspace/constants"
	"github.com/lixenwraith/hyperspace/core"
	"github.com/lixenwraith/hyperspace/events"
	"github.com/lixenwraith/hyperspace/game"
	"github.com/lixenwraith/hyperspace/status"
)

const (
	pingPeriod    = 25 * time.Second
	pongWait      = 60 * time.Second
	maxViewerRead = 512
	shutdownWait  = 2 * time.Second
)

type viewer struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans snapshots and events out to connected viewers
// Present and HandleEvent run on the loop goroutine and never block on the network
type Hub struct {
	mu      sync.Mutex
	viewers map[*viewer]struct{}

	upgrader websocket.Upgrader
	interval time.Duration
	now      func() time.Time

	lastPublish time.Time
	frame       Frame

	statViewers *atomic.Int64
	statDropped *atomic.Int64
}

// NewHub creates a hub publishing at most one frame per interval; reg may be nil
func NewHub(reg *status.Registry, interval time.Duration) *Hub {
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Hub{
		viewers: make(map[*viewer]struct{}),
		upgrader: websocket.Upgrader{
			// Spectating is read-only, any origin may watch
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		interval:    interval,
		now:         time.Now,
		statViewers: reg.Ints.Get(status.SpectateViewers),
		statDropped: reg.Ints.Get(status.SpectateDropped),
	}
}

// ViewerCount returns the number of connected viewers
func (h *Hub) ViewerCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.viewers)
}

// Present publishes a frame when the publish interval has elapsed
func (h *Hub) Present(snap *game.Snapshot) {
	if h.ViewerCount() == 0 {
		return
	}
	now := h.now()
	if !h.lastPublish.IsZero() && now.Sub(h.lastPublish) < h.interval {
		return
	}
	h.lastPublish = now

	h.frame.fill(snap)
	data, err := msgpack.Marshal(&h.frame)
	if err != nil {
		log.Printf("[spectate] frame encode failed: %v", err)
		return
	}
	h.broadcast(data)
}

func (h *Hub) EventTypes() []events.EventType {
	types := make([]events.EventType, 0, events.EventTypeCount)
	for t := events.EventType(0); t < events.EventTypeCount; t++ {
		types = append(types, t)
	}
	return types
}

// HandleEvent forwards every core event unthrottled
func (h *Hub) HandleEvent(_ *game.Snapshot, ev events.GameEvent) {
	if h.ViewerCount() == 0 {
		return
	}
	ef := newEventFrame(ev)
	data, err := msgpack.Marshal(&ef)
	if err != nil {
		log.Printf("[spectate] event encode failed: %v", err)
		return
	}
	h.broadcast(data)
}

// broadcast queues data on every viewer; full queues drop the message
func (h *Hub) broadcast(data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for v := range h.viewers {
		select {
		case v.send <- data:
		default:
			h.statDropped.Add(1)
		}
	}
}

// ServeHTTP upgrades the request and attaches a viewer
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[spectate] upgrade: %v", err)
		return
	}

	v := &viewer{conn: conn, send: make(chan []byte, constants.SpectateSendBuffer)}
	h.mu.Lock()
	h.viewers[v] = struct{}{}
	n := len(h.viewers)
	h.mu.Unlock()
	h.statViewers.Store(int64(n))
	log.Printf("[spectate] viewer %s connected (%d watching)", conn.RemoteAddr(), n)

	core.Go(func() { h.writePump(v) })
	h.readPump(v)
}

// readPump discards viewer input and detects disconnects
func (h *Hub) readPump(v *viewer) {
	defer h.remove(v)

	v.conn.SetReadLimit(maxViewerRead)
	_ = v.conn.SetReadDeadline(time.Now().Add(pongWait))
	v.conn.SetPongHandler(func(string) error {
		return v.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := v.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(v *viewer) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		v.conn.Close()
	}()

	for {
		select {
		case data, ok := <-v.send:
			_ = v.conn.SetWriteDeadline(time.Now().Add(constants.SpectateWriteWait))
			if !ok {
				_ = v.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := v.conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			_ = v.conn.SetWriteDeadline(time.Now().Add(constants.SpectateWriteWait))
			if err := v.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// remove detaches v once; closing send stops its write pump
func (h *Hub) remove(v *viewer) {
	h.mu.Lock()
	if _, ok := h.viewers[v]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.viewers, v)
	close(v.send)
	n := len(h.viewers)
	h.mu.Unlock()

	h.statViewers.Store(int64(n))
	log.Printf("[spectate] viewer %s left (%d watching)", v.conn.RemoteAddr(), n)
}

// Close disconnects every viewer
func (h *Hub) Close() {
	h.mu.Lock()
	vs := make([]*viewer, 0, len(h.viewers))
	for v := range h.viewers {
		vs = append(vs, v)
	}
	h.mu.Unlock()

	for _, v := range vs {
		h.remove(v)
	}
}

// Handler returns the HTTP routes: /ws
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/ws", h)
	return mux
}

// Serve listens on addr until ctx is cancelled
func (h *Hub) Serve(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return h.serve(ctx, ln)
}

func (h *Hub) serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{Handler: h.Handler(), ReadHeaderTimeout: 5 * time.Second}

	core.Go(func() {
		<-ctx.Done()
		h.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownWait)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	})

	log.Printf("[spectate] listening on %s (ws endpoint: /ws)", ln.Addr())
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
