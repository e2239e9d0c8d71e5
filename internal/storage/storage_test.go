package storage

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/eugenenazirov/section-kit/internal/sections"
)

func TestNewMemoryStorageStartsEmpty(t *testing.T) {
	t.Parallel()

	store := NewMemoryStorage([]string{"hero", "footer"})

	for _, name := range []string{"hero", "footer"} {
		entry, err := store.GetOverride(name)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", name, err)
		}
		if len(entry.Document) != 0 {
			t.Fatalf("expected empty override for %s, got %v", name, entry.Document)
		}
		if entry.Revision == "" {
			t.Fatalf("expected initial revision for %s", name)
		}
	}
}

func TestGetOverrideUnknownSection(t *testing.T) {
	t.Parallel()

	store := NewMemoryStorage([]string{"hero"})
	if _, err := store.GetOverride("sidebar"); !errors.Is(err, ErrUnknownSection) {
		t.Fatalf("expected ErrUnknownSection, got %v", err)
	}
	if _, err := store.SetOverride("sidebar", nil, ""); !errors.Is(err, ErrUnknownSection) {
		t.Fatalf("expected ErrUnknownSection, got %v", err)
	}
}

func TestSetOverrideUpdatesState(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 11, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStorage([]string{"hero"}, WithClock(func() time.Time { return now }))

	before, err := store.GetOverride("hero")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	now = now.Add(time.Hour)
	saved, err := store.SetOverride("hero", sections.Document{"badge": "Beta"}, before.Revision)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.Revision == before.Revision {
		t.Fatalf("expected a new revision")
	}
	if !saved.UpdatedAt.Equal(now) {
		t.Fatalf("expected updatedAt %s, got %s", now, saved.UpdatedAt)
	}

	got, err := store.GetOverride("hero")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Document["badge"] != "Beta" {
		t.Fatalf("expected stored badge, got %v", got.Document)
	}
}

func TestSetOverrideRejectsStaleRevision(t *testing.T) {
	t.Parallel()

	store := NewMemoryStorage([]string{"hero"})
	first, err := store.GetOverride("hero")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.SetOverride("hero", sections.Document{"title": "One"}, first.Revision); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.SetOverride("hero", sections.Document{"title": "Two"}, first.Revision); !errors.Is(err, ErrRevisionMismatch) {
		t.Fatalf("expected ErrRevisionMismatch, got %v", err)
	}
}

func TestOverrideDefensiveCopies(t *testing.T) {
	t.Parallel()

	store := NewMemoryStorage([]string{"hero"})
	input := sections.Document{"features": []any{"A", "B"}}
	if _, err := store.SetOverride("hero", input, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// mutate caller copy after write
	input["features"].([]any)[0] = "mutated"

	got, err := store.GetOverride("hero")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Document["features"].([]any)[0] != "A" {
		t.Fatalf("expected stored document to be isolated, got %v", got.Document)
	}

	got.Document["badge"] = "leak"
	again, _ := store.GetOverride("hero")
	if _, ok := again.Document["badge"]; ok {
		t.Fatalf("expected defensive copy on read, got %v", again.Document)
	}
}

func TestResetOverride(t *testing.T) {
	t.Parallel()

	store := NewMemoryStorage([]string{"footer"})
	if _, err := store.SetOverride("footer", sections.Document{"linkPricing": "Plans"}, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entry, err := store.ResetOverride("footer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entry.Document) != 0 {
		t.Fatalf("expected empty document after reset, got %v", entry.Document)
	}
}

func TestMemoryStorageConcurrentAccess(t *testing.T) {
	store := NewMemoryStorage([]string{"hero"})
	var wg sync.WaitGroup

	for i := 0; i < 32; i++ {
		wg.Add(2)

		go func(offset int) {
			defer wg.Done()
			doc := sections.Document{"badge": fmt.Sprintf("badge-%d", offset)}
			if _, err := store.SetOverride("hero", doc, ""); err != nil {
				t.Errorf("SetOverride failed: %v", err)
			}
		}(i)

		go func() {
			defer wg.Done()
			if _, err := store.GetOverride("hero"); err != nil {
				t.Errorf("GetOverride failed: %v", err)
			}
		}()
	}

	wg.Wait()

	// final read should succeed
	if _, err := store.GetOverride("hero"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
