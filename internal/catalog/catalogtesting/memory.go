// Package catalogtesting provides in-memory catalog store for tests.
package catalogtesting

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/MichalMitros/frame-order-parser/internal/platform"
	"github.com/MichalMitros/frame-order-parser/internal/platform/fold"
	"github.com/MichalMitros/frame-order-parser/internal/platform/frame"
	"github.com/MichalMitros/frame-order-parser/internal/platform/models"
)

// MemoryStore is catalog store keeping entries in memory with the same matching rules as postgres store.
type MemoryStore struct {
	mu      sync.Mutex
	entries []models.CatalogEntry
	nextID  int
}

// NewMemoryStore returns new MemoryStore seeded with entries.
func NewMemoryStore(entries ...models.CatalogEntry) *MemoryStore {
	s := &MemoryStore{nextID: 1}
	for _, e := range entries {
		s.Add(e)
	}
	return s
}

// Add inserts entry as is and returns its id.
func (s *MemoryStore) Add(entry models.CatalogEntry) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry.ID = s.nextID
	s.nextID++
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	s.entries = append(s.entries, entry)
	return entry.ID
}

// Entries returns copy of stored entries ordered by id.
func (s *MemoryStore) Entries() []models.CatalogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.CatalogEntry(nil), s.entries...)
}

// Get returns entry with id.
func (s *MemoryStore) Get(id int) (models.CatalogEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return models.CatalogEntry{}, false
}

func (s *MemoryStore) FindExact(_ context.Context, vendorID, model, color, eyeSize string) (*models.CatalogEntry, error) {
	return s.find(func(e models.CatalogEntry) bool {
		return e.VendorID == vendorID && fold.Equal(e.Model, model) && fold.Equal(e.Color, color) && e.EyeSize == eyeSize
	})
}

func (s *MemoryStore) FindByEyeSize(_ context.Context, vendorID, model, color, eye string) (*models.CatalogEntry, error) {
	return s.find(func(e models.CatalogEntry) bool {
		return e.VendorID == vendorID && fold.Equal(e.Model, model) && fold.Equal(e.Color, color) && frame.HasEye(e.Size, eye)
	})
}

func (s *MemoryStore) FindByUPC(_ context.Context, vendorID, upc string) (*models.CatalogEntry, error) {
	return s.find(func(e models.CatalogEntry) bool {
		return e.VendorID == vendorID && e.UPC == upc
	})
}

func (s *MemoryStore) FindFuzzy(_ context.Context, vendorID, model, color string) (*models.CatalogEntry, error) {
	return s.find(func(e models.CatalogEntry) bool {
		return e.VendorID == vendorID && strings.Contains(fold.Key(e.Model), fold.Key(model)) && fold.Equal(e.Color, color)
	})
}

func (s *MemoryStore) Touch(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for ix := range s.entries {
		if s.entries[ix].ID == id {
			s.entries[ix].TimesOrdered++
			s.entries[ix].LastSeenAt = time.Now().UTC()
			return nil
		}
	}
	return platform.ErrNotFound
}

func (s *MemoryStore) Upsert(_ context.Context, entry models.CatalogEntry) (int32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	for ix, e := range s.entries {
		if e.VendorID == entry.VendorID && fold.Equal(e.Model, entry.Model) &&
			fold.Equal(e.Color, entry.Color) && e.EyeSize == entry.EyeSize {
			updated := overwrite(e, entry)
			updated.TimesOrdered = e.TimesOrdered + 1
			updated.LastSeenAt = now
			s.entries[ix] = updated
			return updated.TimesOrdered, nil
		}
	}

	entry.ID = s.nextID
	s.nextID++
	entry.TimesOrdered = 1
	entry.CreatedAt = now
	entry.LastSeenAt = now
	s.entries = append(s.entries, entry)
	return 1, nil
}

func (s *MemoryStore) Refresh(_ context.Context, id int, entry models.CatalogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for ix, e := range s.entries {
		if e.ID == id {
			s.entries[ix] = overwrite(e, entry)
			return nil
		}
	}
	return platform.ErrNotFound
}

// overwrite replaces attributes of current with update, keeping current prices and stock when update has none.
func overwrite(current, update models.CatalogEntry) models.CatalogEntry {
	update.ID = current.ID
	update.TimesOrdered = current.TimesOrdered
	update.CreatedAt = current.CreatedAt
	update.LastSeenAt = current.LastSeenAt
	if update.WholesaleCost == nil {
		update.WholesaleCost = current.WholesaleCost
	}
	if update.MSRP == nil {
		update.MSRP = current.MSRP
	}
	if update.InStock == nil {
		update.InStock = current.InStock
	}
	return update
}

// find returns most ordered matching entry, the oldest one on ties.
func (s *MemoryStore) find(match func(models.CatalogEntry) bool) (*models.CatalogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := make([]models.CatalogEntry, 0)
	for _, e := range s.entries {
		if match(e) {
			found = append(found, e)
		}
	}
	if len(found) == 0 {
		return nil, platform.ErrNotFound
	}

	sort.SliceStable(found, func(i, j int) bool {
		if found[i].TimesOrdered != found[j].TimesOrdered {
			return found[i].TimesOrdered > found[j].TimesOrdered
		}
		return found[i].ID < found[j].ID
	})
	return &found[0], nil
}
