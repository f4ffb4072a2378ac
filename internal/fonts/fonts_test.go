package fonts

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thatcatcamp/obskit/internal/models"
	"github.com/thatcatcamp/obskit/internal/storage"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestStore(t *testing.T) *storage.GormStore {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("migration failed: %v", err)
	}
	return storage.NewGormStore(db)
}

const catalog = `{"kind":"webfonts#webfontList","items":[
	{"family":"Roboto","category":"sans-serif","variants":["regular","700"],"subsets":["latin"]},
	{"family":"Lobster","category":"display","variants":["regular"],"subsets":["latin"]},
	{"family":"Roboto Mono","category":"monospace","variants":["regular"],"subsets":["latin"]}
]}`

func catalogServer(t *testing.T, hits *int32) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, catalog)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFamily(t *testing.T) {
	custom := []string{"Bebas Neue", ""}
	tests := []struct {
		name string
		want string
	}{
		{"display", "'Inter', sans-serif"},
		{"body", "'Inter', sans-serif"},
		{"", "'Inter', sans-serif"},
		{"mono", "'JetBrains Mono', monospace"},
		{"custom1", "'Bebas Neue', sans-serif"},
		{"custom2", "'Inter', sans-serif"},
		{"custom9", "'Inter', sans-serif"},
		{"Open Sans", "'Open Sans', sans-serif"},
		{"customer", "'customer', sans-serif"},
		{"Evil'; }</style>", "'Evil style', sans-serif"},
	}

	for _, tt := range tests {
		if got := Family(tt.name, custom); got != tt.want {
			t.Errorf("Family(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestName(t *testing.T) {
	custom := []string{"Bebas Neue"}
	if got := Name("custom1", custom); got != "Bebas Neue" {
		t.Errorf("expected custom slot family, got %q", got)
	}
	if got := Name("display", custom); got != "" {
		t.Errorf("standard fonts have no family to load, got %q", got)
	}
	if got := Name("Lobster", nil); got != "Lobster" {
		t.Errorf("expected Lobster, got %q", got)
	}
}

func TestCategoryFallback(t *testing.T) {
	tests := map[string]string{
		"serif":       "serif",
		"sans-serif":  "sans-serif",
		"display":     "cursive",
		"handwriting": "cursive",
		"monospace":   "monospace",
		"weird":       "sans-serif",
	}
	for in, want := range tests {
		if got := CategoryFallback(in); got != want {
			t.Errorf("CategoryFallback(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCSSURL(t *testing.T) {
	got := CSSURL("Open Sans", "display", "Lobster", "Open Sans", "custom1")
	want := "https://fonts.googleapis.com/css2?family=Open+Sans&family=Lobster&display=swap"
	if got != want {
		t.Errorf("CSSURL = %q, want %q", got, want)
	}
	if got := CSSURL("mono", ""); got != "" {
		t.Errorf("standard fonts need no stylesheet, got %q", got)
	}
}

func TestListFetchesOnce(t *testing.T) {
	var hits int32
	srv := catalogServer(t, &hits)
	store := setupTestStore(t)
	svc := NewService(store, WithAPIURL(srv.URL))

	for i := 0; i < 3; i++ {
		fonts, err := svc.List(context.Background())
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(fonts) != 3 || fonts[0].Family != "Roboto" {
			t.Fatalf("unexpected fonts: %+v", fonts)
		}
	}
	if atomic.LoadInt32(&hits) != 1 {
		t.Errorf("expected 1 API call, got %d", hits)
	}

	// A fresh service reads the persisted copy.
	again := NewService(store, WithAPIURL(srv.URL))
	if _, err := again.List(context.Background()); err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if atomic.LoadInt32(&hits) != 1 {
		t.Errorf("expected persisted cache to be used, got %d calls", hits)
	}
}

func TestExpiredCacheIsCleared(t *testing.T) {
	var hits int32
	srv := catalogServer(t, &hits)
	store := setupTestStore(t)

	old := time.Now().Add(-8 * 24 * time.Hour).UnixMilli()
	rec := fmt.Sprintf(`{"timestamp":%d,"fonts":[{"family":"Stale","category":"serif"}],"version":1}`, old)
	if err := store.Set(CacheKey, rec); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	svc := NewService(store, WithAPIURL(srv.URL))
	if _, ok := svc.Cached(); ok {
		t.Fatal("expected expired cache to be rejected")
	}
	if _, err := store.Get(CacheKey); err == nil {
		t.Error("expected expired cache to be deleted")
	}

	fonts, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if fonts[0].Family != "Roboto" || atomic.LoadInt32(&hits) != 1 {
		t.Errorf("expected fresh fetch, got %+v after %d calls", fonts, hits)
	}
}

func TestCorruptCacheIsCleared(t *testing.T) {
	store := setupTestStore(t)
	if err := store.Set(CacheKey, "garbage"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	svc := NewService(store)
	if _, ok := svc.Cached(); ok {
		t.Fatal("expected corrupt cache to be rejected")
	}
	if _, err := store.Get(CacheKey); err == nil {
		t.Error("expected corrupt cache to be deleted")
	}
}

func TestListAPIErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		payload string
	}{
		{"server error", http.StatusInternalServerError, `{}`},
		{"missing items", http.StatusOK, `{"kind":"webfonts#webfontList"}`},
		{"bad json", http.StatusOK, `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.payload)
			}))
			defer srv.Close()

			svc := NewService(setupTestStore(t), WithAPIURL(srv.URL))
			if _, err := svc.List(context.Background()); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestSearch(t *testing.T) {
	fonts := []Font{
		{Family: "Roboto", Category: "sans-serif"},
		{Family: "Roboto Mono", Category: "monospace"},
		{Family: "Lobster", Category: "display"},
	}

	if got := Search(fonts, "all", "robo"); len(got) != 2 {
		t.Errorf("expected 2 matches, got %+v", got)
	}
	if got := Search(fonts, "monospace", ""); len(got) != 1 || got[0].Family != "Roboto Mono" {
		t.Errorf("unexpected category filter result: %+v", got)
	}

	many := make([]Font, 80)
	for i := range many {
		many[i] = Font{Family: fmt.Sprintf("Font %d", i)}
	}
	if got := Search(many, "", ""); len(got) != 50 {
		t.Errorf("expected results capped at 50, got %d", len(got))
	}
}

func TestFontOption(t *testing.T) {
	opt := Font{Family: "Lobster", Category: "display"}.Option()
	if opt.FontFamily != "'Lobster', cursive" {
		t.Errorf("unexpected font family %q", opt.FontFamily)
	}
}
