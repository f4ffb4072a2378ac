// SPDX-License-Identifier: MIT
package poller

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/sync/singleflight"
)

// maxBody caps how much of a response is read.
const maxBody = 1 << 20

// Trend is the direction of the last change.
type Trend string

const (
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendNeutral Trend = "neutral"
)

// State is a snapshot of one poller. Value keeps the last good reading when
// a later fetch fails; Stale marks that case.
type State struct {
	Value     *float64  `json:"value"`
	Previous  *float64  `json:"previous,omitempty"`
	Trend     Trend     `json:"trend"`
	Error     string    `json:"error,omitempty"`
	Loading   bool      `json:"loading"`
	Stale     bool      `json:"stale"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Fetch performs one request for cfg and extracts the count.
func Fetch(ctx context.Context, client *http.Client, cfg Config) (float64, error) {
	req, err := cfg.Request(ctx)
	if err != nil {
		return 0, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("API request failed: %s", resp.Status)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return 0, fmt.Errorf("failed to read response: %w", err)
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return 0, fmt.Errorf("failed to decode response: %w", err)
	}
	return ExtractNumber(doc, cfg.JSONPath())
}

// Poller fetches one counter configuration on an interval. Overlapping
// fetches share a single request.
type Poller struct {
	cfg    Config
	client *http.Client
	group  singleflight.Group

	mu     sync.RWMutex
	state  State
	subs   map[int]chan State
	nextID int

	cancel context.CancelFunc
	done   chan struct{}
}

// New returns a stopped poller.
func New(cfg Config, client *http.Client) *Poller {
	if client == nil {
		client = http.DefaultClient
	}
	if cfg.Interval <= 0 {
		cfg.Interval = ClampInterval(DefaultInterval)
	}
	return &Poller{
		cfg:    cfg,
		client: client,
		state:  State{Trend: TrendNeutral, Loading: true},
		subs:   make(map[int]chan State),
	}
}

// Start fetches immediately, then on every interval until ctx is done or
// Stop is called. Calling Start on a running poller does nothing.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	if p.cancel != nil {
		p.mu.Unlock()
		return
	}
	ctx, p.cancel = context.WithCancel(ctx)
	p.done = make(chan struct{})
	done := p.done
	p.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(p.cfg.Interval)
		defer ticker.Stop()

		p.Poll(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.Poll(ctx)
			}
		}
	}()
}

// Stop cancels the loop and any in-flight request, then waits for it.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Poll fetches once and returns the new state.
func (p *Poller) Poll(ctx context.Context) State {
	v, err, _ := p.group.Do("fetch", func() (any, error) {
		return Fetch(ctx, p.client, p.cfg)
	})
	if ctx.Err() != nil {
		return p.State()
	}

	p.mu.Lock()
	now := time.Now()
	if err != nil {
		log.Printf("[poller] %s fetch failed: %v", p.cfg.Service, err)
		p.state.Error = err.Error()
		p.state.Stale = p.state.Value != nil
	} else {
		n := v.(float64)
		p.state.Previous = p.state.Value
		p.state.Trend = trend(p.state.Value, n)
		p.state.Value = &n
		p.state.Error = ""
		p.state.Stale = false
	}
	p.state.Loading = false
	p.state.UpdatedAt = now
	s := p.state
	subs := make([]chan State, 0, len(p.subs))
	for _, ch := range p.subs {
		subs = append(subs, ch)
	}
	p.mu.Unlock()

	for _, ch := range subs {
		offer(ch, s)
	}
	return s
}

func trend(prev *float64, next float64) Trend {
	switch {
	case prev == nil || *prev == next:
		return TrendNeutral
	case next > *prev:
		return TrendUp
	default:
		return TrendDown
	}
}

// offer delivers s, replacing an undelivered older state.
func offer(ch chan State, s State) {
	for {
		select {
		case ch <- s:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

// State returns the current snapshot.
func (p *Poller) State() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// Subscribe returns a channel receiving the current state and then every
// update. Slow readers only see the latest state. Call the returned func to
// unsubscribe.
func (p *Poller) Subscribe() (<-chan State, func()) {
	ch := make(chan State, 1)

	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.subs[id] = ch
	ch <- p.state
	p.mu.Unlock()

	return ch, func() {
		p.mu.Lock()
		delete(p.subs, id)
		p.mu.Unlock()
	}
}
