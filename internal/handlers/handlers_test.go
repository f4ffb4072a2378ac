package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/thatcatcamp/obskit/internal/fonts"
	"github.com/thatcatcamp/obskit/internal/models"
	"github.com/thatcatcamp/obskit/internal/poller"
	"github.com/thatcatcamp/obskit/internal/settings"
	"github.com/thatcatcamp/obskit/internal/storage"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const fontCatalog = `{"kind":"webfonts#webfontList","items":[
	{"family":"Lobster","category":"display","variants":["regular"],"subsets":["latin"]},
	{"family":"Open Sans","category":"sans-serif","variants":["regular","700"],"subsets":["latin"]}
]}`

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

// setupTestRouter wires handlers over a fresh store. fontStatus is the status
// the fake Google Fonts API answers with.
func setupTestRouter(t *testing.T, fontStatus int) *gin.Engine {
	return setupTestRouterWith(t, fontStatus, RouteOptions{}, nil)
}

// setupTestRouterWith lets a test adjust the deps before the routes are built.
// Custom counters may poll the local test servers unless configure changes it.
func setupTestRouterWith(t *testing.T, fontStatus int, opts RouteOptions, configure func(*Deps)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	store := setupTestStore(t)

	fontAPI := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(fontStatus)
		if fontStatus == http.StatusOK {
			w.Write([]byte(fontCatalog))
		}
	}))
	t.Cleanup(fontAPI.Close)

	hub := poller.NewHub(context.Background(), http.DefaultClient)
	t.Cleanup(hub.Close)

	manager := settings.NewManager(store)
	manager.Load()

	deps := Deps{
		Settings:    manager,
		UI:          settings.NewUIState(store),
		Credentials: settings.NewCredentialStore(store),
		Fonts:       fonts.NewService(store, fonts.WithAPIURL(fontAPI.URL)),
		Hub:         hub,
		HTTPClient:  http.DefaultClient,
		PollTimeout: 2 * time.Second,
		BaseURL:     "http://localhost:4455",
		PollHosts:   []string{"127.0.0.1"},
	}
	if configure != nil {
		configure(&deps)
	}
	h := New(deps)
	r := gin.New()
	h.Routes(r, opts)
	return r
}

func doRequest(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON response %q: %v", w.Body.String(), err)
	}
	return out
}

func TestHealth(t *testing.T) {
	r := setupTestRouter(t, http.StatusOK)

	w := doRequest(r, "GET", "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if got := decode(t, w)["status"]; got != "ok" {
		t.Errorf("Expected status ok, got %v", got)
	}
}

func TestResolveOverlay(t *testing.T) {
	r := setupTestRouter(t, http.StatusOK)

	w := doRequest(r, "GET", "/api/overlays/text?text=Hello&size=72&gradient=fire", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	p := body["params"].(map[string]any)
	if p["text"] != "Hello" {
		t.Errorf("Expected text Hello, got %v", p["text"])
	}
	if p["size"] != float64(72) {
		t.Errorf("Expected size 72, got %v", p["size"])
	}
	stops := body["stops"].([]any)
	if len(stops) == 0 || stops[0] != "#ef4444" {
		t.Errorf("Expected fire stops, got %v", stops)
	}
}

func TestResolveOverlayUnknownKind(t *testing.T) {
	r := setupTestRouter(t, http.StatusOK)

	for _, target := range []string{"/api/overlays/ticker", "/overlays/ticker", "/api/overlays/ticker/presets"} {
		if w := doRequest(r, "GET", target, ""); w.Code != http.StatusNotFound {
			t.Errorf("%s: expected status 404, got %d", target, w.Code)
		}
	}
}

func TestOverlayPage(t *testing.T) {
	r := setupTestRouter(t, http.StatusOK)

	q := url.Values{}
	q.Set("text", "<script>alert(1)</script>Hi")
	q.Set("font", "Lobster")
	w := doRequest(r, "GET", "/overlays/text?"+q.Encode(), "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Expected HTML, got %s", ct)
	}

	body := w.Body.String()
	if strings.Contains(body, "<script>alert") {
		t.Error("Markup in overlay text should be stripped")
	}
	if !strings.Contains(body, `"text":"Hi"`) {
		t.Error("Overlay data should carry the plain text")
	}
	if !strings.Contains(body, `id="overlay-data"`) {
		t.Error("Page should embed the overlay data")
	}
	if !strings.Contains(body, "https://fonts.googleapis.com/css2?family=Lobster") {
		t.Error("Page should load the Google font")
	}
	if !strings.Contains(body, "--gradient:") {
		t.Error("Page should carry the generated CSS variables")
	}
}

func TestOverlayPageStandardFontHasNoLink(t *testing.T) {
	r := setupTestRouter(t, http.StatusOK)

	w := doRequest(r, "GET", "/overlays/text?font=display", "")
	if strings.Contains(w.Body.String(), "fonts.googleapis.com/css2") {
		t.Error("Standard fonts should not load a stylesheet")
	}
}

func TestListOverlays(t *testing.T) {
	r := setupTestRouter(t, http.StatusOK)

	w := doRequest(r, "GET", "/api/overlays", "")
	list := decode(t, w)["overlays"].([]any)
	if len(list) != 6 {
		t.Fatalf("Expected 6 overlay kinds, got %d", len(list))
	}
	first := list[0].(map[string]any)
	if first["kind"] != "text" || first["path"] != "/overlays/text" {
		t.Errorf("Unexpected first overlay: %v", first)
	}
}

func TestOverlayPresets(t *testing.T) {
	r := setupTestRouter(t, http.StatusOK)

	w := doRequest(r, "GET", "/api/overlays/cta/presets", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	body := decode(t, w)
	if cards := body["cards"].([]any); len(cards) != 9 {
		t.Errorf("Expected 9 CTA cards, got %d", len(cards))
	}
	presets := body["presets"].(map[string]any)
	if _, ok := presets["subscribe"]; !ok {
		t.Error("Expected the subscribe preset")
	}
}

func TestOverlayURLLeavesOutAPIKey(t *testing.T) {
	r := setupTestRouter(t, http.StatusOK)

	w := doRequest(r, "GET", "/api/overlays/counter/url?service=youtube&userid=UC123&apikey=secret", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	body := decode(t, w)
	share := body["share"].(string)
	full := body["full"].(string)

	if !strings.HasPrefix(share, "http://localhost:4455/overlays/counter?") {
		t.Errorf("Unexpected share URL %s", share)
	}
	if strings.Contains(share, "apikey") {
		t.Errorf("Share URL should not carry the API key: %s", share)
	}
	if !strings.Contains(full, "apikey=secret") {
		t.Errorf("Full URL should carry the API key: %s", full)
	}
	if !strings.Contains(share, "userid=UC123") {
		t.Errorf("Share URL should carry the user id: %s", share)
	}
}

func TestGradientsAndThemes(t *testing.T) {
	r := setupTestRouter(t, http.StatusOK)

	body := decode(t, doRequest(r, "GET", "/api/gradients", ""))
	if n := len(body["gradients"].([]any)); n != 21 {
		t.Errorf("Expected 21 gradients, got %d", n)
	}
	if n := len(body["palettes"].([]any)); n != 8 {
		t.Errorf("Expected 8 palettes, got %d", n)
	}

	body = decode(t, doRequest(r, "GET", "/api/themes", ""))
	list := body["themes"].([]any)
	if len(list) != 2 {
		t.Fatalf("Expected 2 themes, got %d", len(list))
	}
	light := list[1].(map[string]any)
	if light["name"] != "light" {
		t.Errorf("Expected light second, got %v", light["name"])
	}
	if accents := light["accents"].(map[string]any); accents["primary"] != "#4f46e5" {
		t.Errorf("Unexpected light accents %v", accents)
	}
}

func TestFonts(t *testing.T) {
	r := setupTestRouter(t, http.StatusOK)

	w := doRequest(r, "GET", "/api/fonts?q=lob", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	body := decode(t, w)
	if n := len(body["standard"].([]any)); n != 3 {
		t.Errorf("Expected 3 standard fonts, got %d", n)
	}
	found := body["fonts"].([]any)
	if len(found) != 1 || found[0].(map[string]any)["value"] != "Lobster" {
		t.Errorf("Expected Lobster, got %v", found)
	}
	if body["total"] != float64(2) {
		t.Errorf("Expected catalog of 2, got %v", body["total"])
	}

	if w := doRequest(r, "DELETE", "/api/fonts/cache", ""); w.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", w.Code)
	}
}

func TestFontsAPIFailureKeepsStandardFonts(t *testing.T) {
	r := setupTestRouter(t, http.StatusInternalServerError)

	w := doRequest(r, "GET", "/api/fonts", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	body := decode(t, w)
	if _, ok := body["error"]; !ok {
		t.Error("Expected an error message")
	}
	if n := len(body["standard"].([]any)); n != 3 {
		t.Errorf("Expected 3 standard fonts, got %d", n)
	}
	if n := len(body["fonts"].([]any)); n != 0 {
		t.Errorf("Expected no catalog fonts, got %d", n)
	}
}

func TestSettingsLifecycle(t *testing.T) {
	r := setupTestRouter(t, http.StatusOK)

	body := decode(t, doRequest(r, "GET", "/api/settings", ""))
	if body["theme"] != "dark" || body["setupComplete"] != false {
		t.Errorf("Expected defaults, got %v", body)
	}

	w := doRequest(r, "PATCH", "/api/settings", `{"theme":"light","gradient":"fire","setupComplete":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	body = decode(t, w)
	if body["theme"] != "light" || body["gradient"] != "fire" || body["font"] != "display" {
		t.Errorf("Expected merged settings, got %v", body)
	}

	// Overlays pick up the brand once setup is complete.
	res := decode(t, doRequest(r, "GET", "/api/overlays/text", ""))
	if res["params"].(map[string]any)["gradient"] != "fire" {
		t.Errorf("Expected global gradient, got %v", res["params"].(map[string]any)["gradient"])
	}

	w = doRequest(r, "PATCH", "/api/settings", `{"theme":"sepia"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
	if field := decode(t, w)["field"]; field != "Theme" {
		t.Errorf("Expected Theme field error, got %v", field)
	}

	w = doRequest(r, "PATCH", "/api/settings", `{"gradient":"sparkles"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for unknown gradient, got %d", w.Code)
	}
	if got := decode(t, doRequest(r, "GET", "/api/settings", ""))["gradient"]; got != "fire" {
		t.Errorf("Rejected gradient should not be stored, got %v", got)
	}

	if w := doRequest(r, "PATCH", "/api/settings", `{not json`); w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}

	body = decode(t, doRequest(r, "DELETE", "/api/settings", ""))
	if body["theme"] != "dark" || body["gradient"] != "indigo" {
		t.Errorf("Expected defaults after reset, got %v", body)
	}
}

func TestCollapsible(t *testing.T) {
	r := setupTestRouter(t, http.StatusOK)

	body := decode(t, doRequest(r, "GET", "/api/ui/collapsible/fonts?default=false", ""))
	if body["open"] != false {
		t.Errorf("Expected default closed, got %v", body["open"])
	}

	if w := doRequest(r, "PUT", "/api/ui/collapsible/fonts", `{"open":true}`); w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	body = decode(t, doRequest(r, "GET", "/api/ui/collapsible/fonts?default=false", ""))
	if body["open"] != true {
		t.Errorf("Expected stored open state, got %v", body["open"])
	}

	sections := decode(t, doRequest(r, "GET", "/api/ui/collapsible", ""))["sections"].(map[string]any)
	if sections["fonts"] != true {
		t.Errorf("Expected fonts section listed as open, got %v", sections)
	}

	if w := doRequest(r, "PUT", "/api/ui/collapsible/fonts", `{}`); w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 without open, got %d", w.Code)
	}
}

func TestCredentials(t *testing.T) {
	r := setupTestRouter(t, http.StatusOK)

	w := doRequest(r, "PUT", "/api/counter/credentials", `{"apikey":"k1","userid":"u1","remember":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	body := decode(t, doRequest(r, "GET", "/api/counter/credentials", ""))
	if body["apikey"] != "k1" || body["userid"] != "u1" || body["remember"] != true {
		t.Errorf("Expected remembered credentials, got %v", body)
	}

	doRequest(r, "PUT", "/api/counter/credentials", `{"apikey":"k2","userid":"u2","remember":false}`)
	body = decode(t, doRequest(r, "GET", "/api/counter/credentials", ""))
	if body["apikey"] != "" || body["remember"] != false {
		t.Errorf("Expected credentials forgotten, got %v", body)
	}

	doRequest(r, "PUT", "/api/counter/credentials", `{"apikey":"k3","userid":"u3","remember":true}`)
	if w := doRequest(r, "DELETE", "/api/counter/credentials", ""); w.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", w.Code)
	}
	body = decode(t, doRequest(r, "GET", "/api/counter/credentials", ""))
	if body["apikey"] != "" {
		t.Errorf("Expected credentials cleared, got %v", body)
	}
}

func TestCounterValueManual(t *testing.T) {
	r := setupTestRouter(t, http.StatusOK)

	body := decode(t, doRequest(r, "GET", "/api/counter/value?value=1234567", ""))
	if body["value"] != float64(1234567) {
		t.Errorf("Expected value 1234567, got %v", body["value"])
	}
	if body["formatted"] != "1,234,567" {
		t.Errorf("Expected 1,234,567, got %v", body["formatted"])
	}
}

func TestCounterValuePoll(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/down" {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"stats":{"count":1500}}`))
	}))
	defer api.Close()
	r := setupTestRouter(t, http.StatusOK)

	q := url.Values{}
	q.Set("service", "poll")
	q.Set("poll", api.URL+"/stats")
	q.Set("pollkey", "stats.count")
	q.Set("abbreviate", "true")
	w := doRequest(r, "GET", "/api/counter/value?"+q.Encode(), "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	if body["value"] != float64(1500) {
		t.Errorf("Expected value 1500, got %v", body["value"])
	}
	if body["formatted"] != "1.5K" {
		t.Errorf("Expected 1.5K, got %v", body["formatted"])
	}

	q.Set("poll", api.URL+"/down")
	if w := doRequest(r, "GET", "/api/counter/value?"+q.Encode(), ""); w.Code != http.StatusBadGateway {
		t.Errorf("Expected status 502, got %d", w.Code)
	}
}

func TestCounterStream(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"value":7}`))
	}))
	defer api.Close()
	r := setupTestRouter(t, http.StatusOK)

	if w := doRequest(r, "GET", "/api/counter/stream?value=3", ""); w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for a manual counter, got %d", w.Code)
	}

	srv := httptest.NewServer(r)
	defer srv.Close()

	q := url.Values{}
	q.Set("service", "poll")
	q.Set("poll", api.URL)
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/api/counter/stream?"+q.Encode(), nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	for {
		var s poller.State
		if err := conn.ReadJSON(&s); err != nil {
			t.Fatalf("read failed: %v", err)
		}
		if s.Value != nil {
			if *s.Value != 7 {
				t.Errorf("Expected 7, got %v", *s.Value)
			}
			break
		}
	}
}

func TestCSRFGuardsSettings(t *testing.T) {
	r := setupTestRouterWith(t, http.StatusOK, RouteOptions{CSRF: true}, nil)

	w := doRequest(r, "GET", "/api/csrf", "")
	token := decode(t, w)["token"].(string)
	if token == "" {
		t.Fatal("Expected a CSRF token")
	}
	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("Expected one cookie, got %d", len(cookies))
	}

	if w := doRequest(r, "PATCH", "/api/settings", `{"theme":"light"}`); w.Code != http.StatusForbidden {
		t.Errorf("Expected status 403 without token, got %d", w.Code)
	}

	req := httptest.NewRequest("PATCH", "/api/settings", strings.NewReader(`{"theme":"light"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-CSRF-Token", token)
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200 with token, got %d", w.Code)
	}
}

func TestAPIAllowlist(t *testing.T) {
	r := setupTestRouterWith(t, http.StatusOK, RouteOptions{APIAllowlist: []string{"10.0.0.0/8"}}, nil)

	// httptest requests come from 192.0.2.1
	if w := doRequest(r, "GET", "/api/settings", ""); w.Code != http.StatusForbidden {
		t.Errorf("Expected status 403 outside the allowlist, got %d", w.Code)
	}
	if w := doRequest(r, "GET", "/overlays/text", ""); w.Code != http.StatusOK {
		t.Errorf("Overlay pages should stay public, got %d", w.Code)
	}
}

func TestCounterPollHostRestrictions(t *testing.T) {
	var hits int32
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(`{"value":1}`))
	}))
	defer api.Close()

	q := url.Values{}
	q.Set("service", "poll")
	q.Set("poll", api.URL)
	target := "/api/counter/value?" + q.Encode()

	// Without an allowed list, local addresses are refused.
	r := setupTestRouterWith(t, http.StatusOK, RouteOptions{}, func(d *Deps) { d.PollHosts = nil })
	if w := doRequest(r, "GET", target, ""); w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for a loopback poll URL, got %d", w.Code)
	}
	if w := doRequest(r, "GET", "/api/counter/stream?"+q.Encode(), ""); w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for a loopback stream, got %d", w.Code)
	}

	// An allowed list that does not name the host refuses it too.
	r = setupTestRouterWith(t, http.StatusOK, RouteOptions{}, func(d *Deps) { d.PollHosts = []string{"example.com"} })
	if w := doRequest(r, "GET", target, ""); w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for an unlisted host, got %d", w.Code)
	}

	if n := atomic.LoadInt32(&hits); n != 0 {
		t.Errorf("Refused polls should not reach the API, got %d requests", n)
	}
}
