package savedsearch

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/crebase/listing-finder/pkg/types"
)

// Capacity is the hard cap on concurrently saved filters. Writing past it
// evicts the entry with the smallest CreatedAt first.
const Capacity = 10

// KeyPrefix prefixes every persisted entry key, cookie name or redis field
// alike.
const KeyPrefix = "saved_filters_"

// Expiry is how long a saved filter lives.
const Expiry = 365 * 24 * time.Hour

// SavedFilter is one named, timestamped filter snapshot.
type SavedFilter struct {
	Id        string             `json:"id"`
	Name      string             `json:"name"`
	Duration  string             `json:"duration"`
	Filters   types.FilterValues `json:"filters"`
	CreatedAt int64              `json:"createdAt"`
}

// Store is the persistence surface for saved filters. Backends differ
// (cookies per request, redis per session) but call sites never touch the
// medium directly.
type Store interface {
	// List returns all parseable entries, newest first. Corrupt entries
	// are logged and skipped, never fatal.
	List() []SavedFilter
	Save(name, duration string, filters types.FilterValues) (string, error)
	Get(id string) (SavedFilter, bool)
	// Update rewrites name and duration in place, preserving the stored
	// filters and creation time.
	Update(id, name, duration string) error
	Delete(id string) error
}

// newId builds a new entry id: creation timestamp plus a short random
// suffix so two saves in the same instant cannot collide.
func newId(now time.Time) string {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("%d_%s", now.UnixMilli(), suffix)
}

// oldest returns the index of the entry with the smallest CreatedAt, -1
// for an empty list.
func oldest(entries []SavedFilter) int {
	idx := -1
	for i, e := range entries {
		if idx == -1 || e.CreatedAt < entries[idx].CreatedAt {
			idx = i
		}
	}
	return idx
}

// byCreatedDesc orders a listing newest first with a stable id tie-break.
func byCreatedDesc(a, b SavedFilter) int {
	if a.CreatedAt > b.CreatedAt {
		return -1
	}
	if a.CreatedAt < b.CreatedAt {
		return 1
	}
	return strings.Compare(b.Id, a.Id)
}
