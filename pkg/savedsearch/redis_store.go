package savedsearch

import (
	"context"
	"fmt"
	"log"
	"slices"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"

	"github.com/crebase/listing-finder/pkg/types"
)

// RedisStore keeps one hash per owner (session id), field KeyPrefix+id,
// value JSON. It backs saved filters when the service runs with redis
// configured, behind the exact same Store surface as the cookie backend.
type RedisStore struct {
	client *redis.Client
	ctx    context.Context
	owner  string
	now    func() time.Time
}

func NewRedisStore(client *redis.Client, owner string) *RedisStore {
	return &RedisStore{
		client: client,
		ctx:    context.Background(),
		owner:  owner,
		now:    time.Now,
	}
}

func (s *RedisStore) key() string {
	return "saved_filters:" + s.owner
}

func (s *RedisStore) List() []SavedFilter {
	fields, err := s.client.HGetAll(s.ctx, s.key()).Result()
	if err != nil {
		log.Printf("listing saved filters for %s: %v", s.owner, err)
		return []SavedFilter{}
	}
	entries := make([]SavedFilter, 0, len(fields))
	for field, raw := range fields {
		var entry SavedFilter
		if err := sonic.Unmarshal([]byte(raw), &entry); err != nil {
			log.Printf("skipping unreadable saved filter %s: %v", field, err)
			continue
		}
		entries = append(entries, entry)
	}
	slices.SortFunc(entries, byCreatedDesc)
	return entries
}

func (s *RedisStore) Save(name, duration string, filters types.FilterValues) (string, error) {
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

func (s *RedisStore) Get(id string) (SavedFilter, bool) {
	raw, err := s.client.HGet(s.ctx, s.key(), KeyPrefix+id).Result()
	if err != nil {
		return SavedFilter{}, false
	}
	var entry SavedFilter
	if err := sonic.Unmarshal([]byte(raw), &entry); err != nil {
		log.Printf("unreadable saved filter %s: %v", id, err)
		return SavedFilter{}, false
	}
	return entry, true
}

func (s *RedisStore) Update(id, name, duration string) error {
	entry, ok := s.Get(id)
	if !ok {
		return fmt.Errorf("saved filter %s not found", id)
	}
	entry.Name = name
	entry.Duration = duration
	return s.write(entry)
}

func (s *RedisStore) Delete(id string) error {
	return s.client.HDel(s.ctx, s.key(), KeyPrefix+id).Err()
}

func (s *RedisStore) write(entry SavedFilter) error {
	raw, err := sonic.Marshal(entry)
	if err != nil {
		return err
	}
	if err := s.client.HSet(s.ctx, s.key(), KeyPrefix+entry.Id, string(raw)).Err(); err != nil {
		return err
	}
	return s.client.Expire(s.ctx, s.key(), Expiry).Err()
}
