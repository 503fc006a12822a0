// Package history keeps the most recent city searches in a storage.KV.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"weather-client/storage"
)

const (
	// StorageKey is the fixed key the list is serialized under
	StorageKey = "recentSearches"
	// MaxEntries bounds the list length
	MaxEntries = 5
)

// Store is the RecentSearches list: most-recent-first, at most MaxEntries long and
// unique under case-insensitive comparison
type Store struct {
	kv     storage.KV
	logger *log.Logger
	mu     sync.Mutex
}

// New creates a store over kv. A nil logger uses log.Default().
func New(kv storage.KV, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{kv: kv, logger: logger}
}

// Load returns the persisted list. A missing or unreadable value yields an empty list;
// the failure is logged, never returned.
func (s *Store) Load(ctx context.Context) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx)
}

func (s *Store) load(ctx context.Context) []string {
	raw, err := s.kv.Get(ctx, StorageKey)
	if errors.Is(err, storage.ErrNotFound) {
		return []string{}
	}
	if err != nil {
		s.logger.Printf("Error loading recent searches: %v", err)
		return []string{}
	}

	var entries []string
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		s.logger.Printf("Error parsing recent searches: %v", err)
		return []string{}
	}
	return normalize(entries)
}

// Save moves city to the front, dropping any case-insensitive duplicate and
// anything past MaxEntries, then persists the list. The returned list is the new
// state even when persisting fails.
func (s *Store) Save(ctx context.Context, city string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := Prepend(s.load(ctx), city)

	data, err := json.Marshal(entries)
	if err != nil {
		return entries, fmt.Errorf("encode recent searches: %w", err)
	}
	if err := s.kv.Set(ctx, StorageKey, string(data)); err != nil {
		return entries, fmt.Errorf("save recent searches: %w", err)
	}

	s.logger.Printf("Recent searches updated: %v", entries)
	return entries, nil
}

// Prepend returns a new list with city first, without case-insensitive duplicates,
// truncated to MaxEntries
func Prepend(entries []string, city string) []string {
	out := make([]string, 0, MaxEntries)
	out = append(out, city)
	for _, e := range entries {
		if len(out) == MaxEntries {
			break
		}
		if !strings.EqualFold(e, city) {
			out = append(out, e)
		}
	}
	return out
}

// normalize enforces the list invariants on data read back from storage
func normalize(entries []string) []string {
	out := make([]string, 0, MaxEntries)
	for _, e := range entries {
		if len(out) == MaxEntries {
			break
		}
		if e == "" || containsFold(out, e) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func containsFold(list []string, s string) bool {
	for _, e := range list {
		if strings.EqualFold(e, s) {
			return true
		}
	}
	return false
}
