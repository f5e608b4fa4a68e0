package api

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const writeWait = time.Second

// Hub serves the preview client and pushes every frame to the websockets
// connected on /frames.
type Hub struct {
	mu        sync.Mutex
	clients   map[*websocket.Conn]bool
	staticDir string
	upgrader  websocket.Upgrader
}

// NewHub creates a Hub serving static files from staticDir.
func NewHub(staticDir string) *Hub {
	return &Hub{
		clients:   map[*websocket.Conn]bool{},
		staticDir: staticDir,
		upgrader:  websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
	}
}

// Handler routes /frames to the websocket endpoint and everything else to the
// static files.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/frames", h.HandleFramesWS)
	mux.Handle("/", http.FileServer(http.Dir(h.staticDir)))
	return mux
}

// HandleFramesWS upgrades the request and keeps the connection until the
// client goes away.
func (h *Hub) HandleFramesWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Debug().Err(err).Msg("websocket upgrade failed")
		return
	}
	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()
	log.Info().Str("remote", r.RemoteAddr).Msg("preview client connected")

	go func() {
		defer h.drop(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *Hub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	_, ok := h.clients[conn]
	delete(h.clients, conn)
	h.mu.Unlock()
	if ok {
		conn.Close()
	}
}

// Clients is the number of connected preview clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast sends data as a binary message to every client. Clients that
// cannot keep up are disconnected.
func (h *Hub) Broadcast(data []byte) {
	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.clients))
	for c := range h.clients {
		conns = append(conns, c)
	}
	h.mu.Unlock()

	for _, c := range conns {
		_ = c.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.WriteMessage(websocket.BinaryMessage, data); err != nil {
			log.Debug().Err(err).Msg("dropping preview client")
			h.drop(c)
		}
	}
}

// Send implements stream.Sink.
func (h *Hub) Send(data []byte) error {
	h.Broadcast(data)
	return nil
}

// Serve listens on addr until ctx is done.
func (h *Hub) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      h.Handler(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()

	log.Info().Str("addr", addr).Msg("HTTP server starting")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
