package savedsearch

import (
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/crebase/listing-finder/pkg/types"
)

func newRedisTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s := NewRedisStore(client, "session-1")
	tick := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}
	return s, mr
}

func TestRedisStoreCapacityEviction(t *testing.T) {
	s, _ := newRedisTestStore(t)
	ids := make([]string, 0, 11)
	for i := 0; i < 11; i++ {
		id, err := s.Save(fmt.Sprintf("search %d", i), "90d", types.DefaultFilterValues())
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
		ids = append(ids, id)
	}
	entries := s.List()
	if len(entries) != Capacity {
		t.Fatalf("Expected %d entries, got %d", Capacity, len(entries))
	}
	if _, ok := s.Get(ids[0]); ok {
		t.Errorf("Oldest entry should have been evicted")
	}
	if entries[0].Id != ids[10] {
		t.Errorf("Expected newest first, got %s", entries[0].Id)
	}
}

func TestRedisStoreSkipsCorruptEntries(t *testing.T) {
	s, mr := newRedisTestStore(t)
	if _, err := s.Save("offices", "30d", types.DefaultFilterValues()); err != nil {
		t.Fatalf("save: %v", err)
	}
	mr.HSet(s.key(), KeyPrefix+"bad", "{not json")
	entries := s.List()
	if len(entries) != 1 {
		t.Errorf("Corrupt entry should be skipped, got %d entries", len(entries))
	}
}

func TestRedisStoreUpdateAndDelete(t *testing.T) {
	s, _ := newRedisTestStore(t)
	filters := types.DefaultFilterValues()
	filters.Keywords = "net lease"
	id, err := s.Save("original", "30d", filters)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Update(id, "renamed", "60d"); err != nil {
		t.Fatalf("update: %v", err)
	}
	entry, ok := s.Get(id)
	if !ok || entry.Name != "renamed" || entry.Filters.Keywords != "net lease" {
		t.Errorf("Update lost data: %+v", entry)
	}
	if err := s.Delete(id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := s.Get(id); ok {
		t.Errorf("Deleted entry still readable")
	}
	if err := s.Update("missing", "x", "y"); err == nil {
		t.Errorf("Updating a missing id should error")
	}
}

func TestStoresShareOneInterface(t *testing.T) {
	var _ Store = (*CookieStore)(nil)
	var _ Store = (*RedisStore)(nil)
}
