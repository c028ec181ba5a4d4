package redis

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/redis/go-redis/v9"
)

// Storage keeps rget sections in redis: one hash per section plus a set
// indexing the section names. It satisfies store.Store.
type Storage struct {
	db     redis.UniversalClient
	prefix string
}

// NewStorage wraps client. Keys are namespaced with prefix (e.g. "rget:").
func NewStorage(client redis.UniversalClient, prefix string) *Storage {
	return &Storage{db: client, prefix: prefix}
}

func (s *Storage) sectionKey(section string) string {
	return s.prefix + "section:" + section
}

func (s *Storage) indexKey() string {
	return s.prefix + "sections"
}

// Get returns false for missing sections and keys (redis.Nil is not an error).
func (s *Storage) Get(ctx context.Context, section, key string) (string, bool, error) {
	v, err := s.db.HGet(ctx, s.sectionKey(section), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *Storage) Set(ctx context.Context, section, key, value string) error {
	_, err := s.db.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, s.sectionKey(section), key, value)
		pipe.SAdd(ctx, s.indexKey(), section)
		return nil
	})
	return err
}

func (s *Storage) HasSection(ctx context.Context, section string) (bool, error) {
	return s.db.SIsMember(ctx, s.indexKey(), section).Result()
}

func (s *Storage) RemoveSection(ctx context.Context, section string) error {
	_, err := s.db.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, s.sectionKey(section))
		pipe.SRem(ctx, s.indexKey(), section)
		return nil
	})
	return err
}

func (s *Storage) ListSections(ctx context.Context) ([]string, error) {
	names, err := s.db.SMembers(ctx, s.indexKey()).Result()
	if err != nil {
		return nil, err
	}
	slices.SortFunc(names, strings.Compare)
	return names, nil
}

// Close terminates the redis connection.
func (s *Storage) Close() error {
	return s.db.Close()
}
