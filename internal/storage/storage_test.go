package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/thatcatcamp/obskit/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestStore(t *testing.T) *GormStore {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("migration failed: %v", err)
	}
	return NewGormStore(db)
}

func TestGetMissing(t *testing.T) {
	s := setupTestStore(t)
	if _, err := s.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSetOverwrites(t *testing.T) {
	s := setupTestStore(t)

	if err := s.Set("k", "one"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Set("k", "two"); err != nil {
		t.Fatalf("second Set failed: %v", err)
	}

	got, err := s.Get("k")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != "two" {
		t.Errorf("expected last write to win, got %q", got)
	}
}

func TestDelete(t *testing.T) {
	s := setupTestStore(t)
	_ = s.Set("k", "v")

	if err := s.Delete("k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := s.Get("k"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected key gone, got %v", err)
	}
	if err := s.Delete("never-set"); err != nil {
		t.Errorf("deleting a missing key should not fail: %v", err)
	}
}

func TestKeysPrefix(t *testing.T) {
	s := setupTestStore(t)
	for _, k := range []string{"collapsible-b", "collapsible-a", "collapsible_x", "obs-toolkit-global"} {
		if err := s.Set(k, "1"); err != nil {
			t.Fatalf("Set %s: %v", k, err)
		}
	}

	keys, err := s.Keys("collapsible-")
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if len(keys) != 2 || keys[0] != "collapsible-a" || keys[1] != "collapsible-b" {
		t.Errorf("unexpected keys %v", keys)
	}

	all, _ := s.Keys("")
	if len(all) != 4 {
		t.Errorf("expected 4 keys, got %v", all)
	}
}

func TestJSONHelpers(t *testing.T) {
	s := setupTestStore(t)

	type record struct {
		Theme string `json:"theme"`
		Done  bool   `json:"setupComplete"`
	}
	if err := SetJSON(s, "rec", record{Theme: "light", Done: true}); err != nil {
		t.Fatalf("SetJSON failed: %v", err)
	}

	var got record
	if err := GetJSON(s, "rec", &got); err != nil {
		t.Fatalf("GetJSON failed: %v", err)
	}
	if got.Theme != "light" || !got.Done {
		t.Errorf("unexpected record %+v", got)
	}

	_ = s.Set("broken", "{not json")
	if err := GetJSON(s, "broken", &got); err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("expected decode error, got %v", err)
	}
}
