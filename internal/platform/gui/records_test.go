package gui

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
)

func openTestData(t *testing.T) *gdata.Manager {
	t.Helper()
	appName := fmt.Sprintf("meteors_test_%d", time.Now().UnixNano())
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Skipf("gdata unavailable: %v", err)
	}
	t.Cleanup(func() {
		if home, err := os.UserHomeDir(); err == nil {
			os.RemoveAll(filepath.Join(home, ".local", "share", appName))
		}
	})
	return m
}

func TestRecordBookInMemory(t *testing.T) {
	rb := NewRecordBook(nil)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		score, level int
		improved     bool
	}{
		{500, 1, true},
		{300, 3, false},
		{500, 2, true},
		{500, 2, false},
		{900, 1, true},
	}
	for i, tc := range tests {
		got, err := rb.Record(tc.score, tc.level, now)
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.improved {
			t.Errorf("run %d (%d, L%d): improved = %v, expected %v", i, tc.score, tc.level, got, tc.improved)
		}
	}

	best := rb.Best()
	if best.Score != 900 || best.Level != 1 || best.Runs != 5 {
		t.Errorf("Best() = %+v", best)
	}
}

func TestRecordBookPersists(t *testing.T) {
	m := openTestData(t)
	when := time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)

	rb := NewRecordBook(m)
	if err := rb.Load(); err != nil {
		t.Fatalf("Load on empty store: %v", err)
	}
	if _, err := rb.Record(1200, 3, when); err != nil {
		t.Fatal(err)
	}

	reopened := NewRecordBook(m)
	if err := reopened.Load(); err != nil {
		t.Fatal(err)
	}
	got := reopened.Best()
	if got.Score != 1200 || got.Level != 3 || got.Runs != 1 || !got.When.Equal(when) {
		t.Errorf("reloaded best = %+v", got)
	}
}
