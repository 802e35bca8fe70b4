package savedsearch

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"github.com/crebase/listing-finder/pkg/types"
)

// CookieStore persists saved filters as one cookie per entry on the
// current request/response pair: key KeyPrefix+id, value URL-encoded JSON,
// one year expiry, path scoped to the whole site.
type CookieStore struct {
	r   *http.Request
	w   http.ResponseWriter
	now func() time.Time

	// written overlays cookies set during this request, since the request
	// header never sees our own Set-Cookie output.
	written map[string]*SavedFilter
}

func NewCookieStore(w http.ResponseWriter, r *http.Request) *CookieStore {
	return &CookieStore{
		r:       r,
		w:       w,
		now:     time.Now,
		written: map[string]*SavedFilter{},
	}
}

func (s *CookieStore) List() []SavedFilter {
	entries := make([]SavedFilter, 0, Capacity)
	seen := map[string]struct{}{}
	for id, entry := range s.written {
		seen[id] = struct{}{}
		if entry != nil {
			entries = append(entries, *entry)
		}
	}
	for _, c := range s.r.Cookies() {
		if !strings.HasPrefix(c.Name, KeyPrefix) {
			continue
		}
		id := strings.TrimPrefix(c.Name, KeyPrefix)
		if _, done := seen[id]; done {
			continue
		}
		entry, err := decodeEntry(c.Value)
		if err != nil {
			log.Printf("skipping unreadable saved filter cookie %s: %v", c.Name, err)
			continue
		}
		entries = append(entries, entry)
	}
	slices.SortFunc(entries, byCreatedDesc)
	return entries
}

func (s *CookieStore) Save(name, duration string, filters types.FilterValues) (string, error) {
	entries := s.List()
	if len(entries) >= Capacity {
		if i := oldest(entries); i >= 0 {
			if err := s.Delete(entries[i].Id); err != nil {
				return "", err
			}
		}
	}
	now := s.now()
	entry := SavedFilter{
		Id:        newId(now),
		Name:      name,
		Duration:  duration,
		Filters:   filters,
		CreatedAt: now.UnixMilli(),
	}
	if err := s.write(entry); err != nil {
		return "", err
	}
	return entry.Id, nil
}

func (s *CookieStore) Get(id string) (SavedFilter, bool) {
	if entry, ok := s.written[id]; ok {
		if entry == nil {
			return SavedFilter{}, false
		}
		return *entry, true
	}
	c, err := s.r.Cookie(KeyPrefix + id)
	if err != nil {
		return SavedFilter{}, false
	}
	entry, err := decodeEntry(c.Value)
	if err != nil {
		log.Printf("unreadable saved filter cookie %s: %v", c.Name, err)
		return SavedFilter{}, false
	}
	return entry, true
}

func (s *CookieStore) Update(id, name, duration string) error {
	entry, ok := s.Get(id)
	if !ok {
		return fmt.Errorf("saved filter %s not found", id)
	}
	entry.Name = name
	entry.Duration = duration
	return s.write(entry)
}

func (s *CookieStore) Delete(id string) error {
	s.written[id] = nil
	http.SetCookie(s.w, &http.Cookie{
		Name:     KeyPrefix + id,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (s *CookieStore) write(entry SavedFilter) error {
	value, err := encodeEntry(entry)
	if err != nil {
		return err
	}
	s.written[entry.Id] = &entry
	http.SetCookie(s.w, &http.Cookie{
		Name:     KeyPrefix + entry.Id,
		Value:    value,
		Path:     "/",
		Expires:  s.now().Add(Expiry),
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func encodeEntry(entry SavedFilter) (string, error) {
	raw, err := sonic.Marshal(entry)
	if err != nil {
		return "", err
	}
	return url.QueryEscape(string(raw)), nil
}

func decodeEntry(value string) (SavedFilter, error) {
	raw, err := url.QueryUnescape(value)
	if err != nil {
		return SavedFilter{}, err
	}
	var entry SavedFilter
	if err := sonic.Unmarshal([]byte(raw), &entry); err != nil {
		return SavedFilter{}, err
	}
	return entry, nil
}
