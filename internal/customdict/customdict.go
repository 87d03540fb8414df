// Package customdict stores personal-dictionary words and substitutions in
// Redis, so a fleet of checkers can share one curated list.
package customdict

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Store wraps a Redis client holding the personal dictionary.
type Store struct {
	client *redis.Client
	words  string
	subs   string
}

// New creates a Store on the provided Redis client. prefix namespaces the
// keys; "" means "ocrspell".
func New(client *redis.Client, prefix string) *Store {
	if prefix == "" {
		prefix = "ocrspell"
	}
	return &Store{
		client: client,
		words:  prefix + ":personal_dict",
		subs:   prefix + ":personal_subs",
	}
}

// AddWord inserts a word into the personal dictionary.
func (s *Store) AddWord(ctx context.Context, word string) error {
	return s.client.SAdd(ctx, s.words, word).Err()
}

// RemoveWord deletes a word from the personal dictionary.
func (s *Store) RemoveWord(ctx context.Context, word string) error {
	return s.client.SRem(ctx, s.words, word).Err()
}

// Words returns all personal-dictionary words.
func (s *Store) Words(ctx context.Context) ([]string, error) {
	return s.client.SMembers(ctx, s.words).Result()
}

// AddSub inserts or overwrites a token substitution.
func (s *Store) AddSub(ctx context.Context, token, replacement string) error {
	return s.client.HSet(ctx, s.subs, token, replacement).Err()
}

// RemoveSub deletes a token substitution.
func (s *Store) RemoveSub(ctx context.Context, token string) error {
	return s.client.HDel(ctx, s.subs, token).Err()
}

// Subs returns the full substitution table.
func (s *Store) Subs(ctx context.Context) (map[string]string, error) {
	return s.client.HGetAll(ctx, s.subs).Result()
}
