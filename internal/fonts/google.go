// SPDX-License-Identifier: MIT
package fonts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/patrickmn/go-cache"
	"github.com/thatcatcamp/obskit/internal/storage"
)

const (
	// CacheKey is where the catalog is persisted between runs.
	CacheKey = "obs-google-fonts-cache-v1"
	// DefaultAPIURL is the public Google Fonts metadata endpoint.
	DefaultAPIURL = "https://www.googleapis.com/webfonts/v1/webfonts?sort=popularity"
	// DefaultTTL is how long a fetched catalog stays fresh.
	DefaultTTL = 7 * 24 * time.Hour

	cacheVersion = 1
	memKey       = "catalog"
	searchLimit  = 50
)

// ErrInvalidResponse is returned when the API answers without a font list.
var ErrInvalidResponse = errors.New("invalid response format from Google Fonts API")

// Font is one Google Fonts family.
type Font struct {
	Family       string            `json:"family"`
	Category     string            `json:"category"`
	Variants     []string          `json:"variants"`
	Subsets      []string          `json:"subsets"`
	Version      string            `json:"version,omitempty"`
	LastModified string            `json:"lastModified,omitempty"`
	Files        map[string]string `json:"files,omitempty"`
}

// Option returns the picker entry for f.
func (f Font) Option() Option {
	return Option{
		Value:      f.Family,
		Label:      f.Family,
		FontFamily: quote(f.Family) + ", " + CategoryFallback(f.Category),
	}
}

type apiResponse struct {
	Kind  string `json:"kind"`
	Items []Font `json:"items"`
}

type cacheRecord struct {
	Timestamp int64  `json:"timestamp"`
	Fonts     []Font `json:"fonts"`
	Version   int    `json:"version"`
}

// Service fetches the catalog once and keeps it in memory and in storage.
type Service struct {
	store  storage.Store
	client *http.Client
	apiURL string
	ttl    time.Duration
	mem    *cache.Cache
	now    func() time.Time
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithAPIURL overrides the catalog endpoint.
func WithAPIURL(u string) ServiceOption {
	return func(s *Service) { s.apiURL = u }
}

// WithTTL overrides how long a catalog stays fresh.
func WithTTL(ttl time.Duration) ServiceOption {
	return func(s *Service) { s.ttl = ttl }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) ServiceOption {
	return func(s *Service) { s.client = c }
}

// NewService returns a catalog service persisting to store.
func NewService(store storage.Store, opts ...ServiceOption) *Service {
	s := &Service{
		store:  store,
		client: &http.Client{Timeout: 15 * time.Second},
		apiURL: DefaultAPIURL,
		ttl:    DefaultTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.ttl <= 0 {
		s.ttl = DefaultTTL
	}
	s.mem = cache.New(s.ttl, time.Hour)
	return s
}

// List returns the catalog, fetching it only when no fresh copy is cached.
func (s *Service) List(ctx context.Context) ([]Font, error) {
	if v, ok := s.mem.Get(memKey); ok {
		return v.([]Font), nil
	}
	if cached, ok := s.Cached(); ok {
		log.Printf("[fonts] loaded %d fonts from cache", len(cached))
		return cached, nil
	}

	fonts, err := s.fetch(ctx)
	if err != nil {
		log.Printf("[fonts] failed to fetch fonts: %v", err)
		return nil, err
	}
	log.Printf("[fonts] fetched %d fonts from API", len(fonts))
	s.save(fonts)
	return fonts, nil
}

// Cached returns the persisted catalog if it is present and fresh. Expired
// or unreadable records are removed.
func (s *Service) Cached() ([]Font, bool) {
	var rec cacheRecord
	if err := storage.GetJSON(s.store, CacheKey, &rec); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("[fonts] failed to read cache: %v", err)
			s.ClearCache()
		}
		return nil, false
	}

	age := s.now().Sub(time.UnixMilli(rec.Timestamp))
	if rec.Version != cacheVersion || age > s.ttl {
		log.Printf("[fonts] cache expired, clearing")
		s.ClearCache()
		return nil, false
	}
	s.mem.Set(memKey, rec.Fonts, s.ttl-age)
	return rec.Fonts, true
}

// ClearCache drops the catalog from memory and storage.
func (s *Service) ClearCache() {
	s.mem.Delete(memKey)
	if err := s.store.Delete(CacheKey); err != nil {
		log.Printf("[fonts] failed to clear cache: %v", err)
	}
}

func (s *Service) save(fonts []Font) {
	s.mem.Set(memKey, fonts, cache.DefaultExpiration)
	rec := cacheRecord{Timestamp: s.now().UnixMilli(), Fonts: fonts, Version: cacheVersion}
	if err := storage.SetJSON(s.store, CacheKey, rec); err != nil {
		log.Printf("[fonts] failed to cache fonts: %v", err)
	}
}

func (s *Service) fetch(ctx context.Context) ([]Font, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach Google Fonts API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google fonts API error: %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var data apiResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if data.Items == nil {
		return nil, ErrInvalidResponse
	}
	return data.Items, nil
}

// Search filters fonts by category ("all" or empty for any) and a case
// insensitive family substring, capped at the picker limit.
func Search(fonts []Font, category, query string) []Font {
	query = strings.ToLower(strings.TrimSpace(query))
	var out []Font
	for _, f := range fonts {
		if category != "" && category != "all" && f.Category != category {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(f.Family), query) {
			continue
		}
		out = append(out, f)
		if len(out) == searchLimit {
			break
		}
	}
	return out
}
