// SPDX-License-Identifier: MIT
package poller

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
)

type hubEntry struct {
	poller *Poller
	refs   int
}

// Hub shares pollers between clients watching the same configuration. A
// poller starts with its first client and stops when the last one leaves.
type Hub struct {
	ctx    context.Context
	client *http.Client

	mu      sync.Mutex
	entries map[string]*hubEntry
}

// NewHub returns a hub whose pollers live no longer than ctx.
func NewHub(ctx context.Context, client *http.Client) *Hub {
	return &Hub{
		ctx:     ctx,
		client:  client,
		entries: make(map[string]*hubEntry),
	}
}

// Acquire returns the running poller for cfg and a release func.
func (h *Hub) Acquire(cfg Config) (*Poller, func()) {
	key := cfg.Key()

	h.mu.Lock()
	e, ok := h.entries[key]
	if !ok {
		e = &hubEntry{poller: New(cfg, h.client)}
		h.entries[key] = e
		e.poller.Start(h.ctx)
		log.Printf("[poller] started %s poller", cfg.Service)
	}
	e.refs++
	h.mu.Unlock()

	var once sync.Once
	return e.poller, func() {
		once.Do(func() { h.release(key, e) })
	}
}

func (h *Hub) release(key string, e *hubEntry) {
	h.mu.Lock()
	e.refs--
	last := e.refs == 0
	// After Close the key may belong to a newer entry.
	if last && h.entries[key] == e {
		delete(h.entries, key)
	}
	h.mu.Unlock()

	if last {
		e.poller.Stop()
		log.Printf("[poller] stopped %s poller", e.poller.cfg.Service)
	}
}

// Len returns the number of running pollers.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Close stops every poller.
func (h *Hub) Close() {
	h.mu.Lock()
	entries := h.entries
	h.entries = make(map[string]*hubEntry)
	h.mu.Unlock()

	for _, e := range entries {
		e.poller.Stop()
	}
}

// Serve streams state updates for cfg to conn until the client goes away.
// It closes conn before returning.
func (h *Hub) Serve(conn *websocket.Conn, cfg Config) {
	defer conn.Close()

	p, release := h.Acquire(cfg)
	defer release()
	updates, unsubscribe := p.Subscribe()
	defer unsubscribe()

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-closed:
			return
		case <-h.ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, ""), time.Now().Add(writeWait))
			return
		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		case s := <-updates:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(s); err != nil {
				log.Printf("[poller] websocket write failed: %v", err)
				return
			}
		}
	}
}
