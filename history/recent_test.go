package history

import (
	"context"
	"errors"
	"io"
	"log"
	"reflect"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v7"

	"weather-client/storage"
)

var quiet = log.New(io.Discard, "", 0)

func newStore(t *testing.T) (*Store, *storage.Memory) {
	t.Helper()
	kv := storage.NewMemory()
	return New(kv, quiet), kv
}

// distinctCities returns n city names that differ case-insensitively
func distinctCities(n int) []string {
	seen := map[string]bool{}
	var out []string
	for len(out) < n {
		c := gofakeit.City()
		if c == "" || seen[strings.ToLower(c)] {
			continue
		}
		seen[strings.ToLower(c)] = true
		out = append(out, c)
	}
	return out
}

func TestLoadEmpty(t *testing.T) {
	s, _ := newStore(t)
	got := s.Load(context.Background())
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil list, got %#v", got)
	}
}

func TestSaveFirstCity(t *testing.T) {
	s, kv := newStore(t)
	ctx := context.Background()

	got, err := s.Save(ctx, "Tokyo")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"Tokyo"}) {
		t.Errorf("Save = %v", got)
	}

	raw, err := kv.Get(ctx, StorageKey)
	if err != nil {
		t.Fatalf("value not persisted: %v", err)
	}
	if raw != `["Tokyo"]` {
		t.Errorf("persisted %q", raw)
	}
}

func TestSaveDeduplicatesCaseInsensitively(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	for _, c := range []string{"Paris", "tokyo", "Berlin", "TOKYO"} {
		if _, err := s.Save(ctx, c); err != nil {
			t.Fatalf("Save(%q) failed: %v", c, err)
		}
	}

	got := s.Load(ctx)
	want := []string{"TOKYO", "Berlin", "Paris"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load = %v, want %v", got, want)
	}
}

func TestSaveEvictsOldest(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	cities := distinctCities(MaxEntries + 1)
	for _, c := range cities {
		if _, err := s.Save(ctx, c); err != nil {
			t.Fatalf("Save(%q) failed: %v", c, err)
		}
	}

	got := s.Load(ctx)
	if len(got) != MaxEntries {
		t.Fatalf("expected %d entries, got %d: %v", MaxEntries, len(got), got)
	}
	if got[0] != cities[len(cities)-1] {
		t.Errorf("newest entry = %q, want %q", got[0], cities[len(cities)-1])
	}
	for _, e := range got {
		if e == cities[0] {
			t.Errorf("oldest city %q should have been evicted: %v", cities[0], got)
		}
	}
}

func TestLoadCorruptValue(t *testing.T) {
	s, kv := newStore(t)
	ctx := context.Background()
	if err := kv.Set(ctx, StorageKey, "not json"); err != nil {
		t.Fatal(err)
	}

	if got := s.Load(ctx); len(got) != 0 {
		t.Errorf("expected empty list on parse failure, got %v", got)
	}

	// a save after a corrupt read starts a fresh list
	got, err := s.Save(ctx, "Oslo")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"Oslo"}) {
		t.Errorf("Save = %v", got)
	}
}

func TestLoadNormalizesStoredList(t *testing.T) {
	s, kv := newStore(t)
	ctx := context.Background()
	raw := `["Rome","rome","","Lima","Cairo","Quito","Delhi","Seoul"]`
	if err := kv.Set(ctx, StorageKey, raw); err != nil {
		t.Fatal(err)
	}

	want := []string{"Rome", "Lima", "Cairo", "Quito", "Delhi"}
	if got := s.Load(ctx); !reflect.DeepEqual(got, want) {
		t.Errorf("Load = %v, want %v", got, want)
	}
}

type failingKV struct {
	storage.KV
}

func (failingKV) Get(context.Context, string) (string, error) { return "", errors.New("disk gone") }
func (failingKV) Set(context.Context, string, string) error  { return errors.New("disk gone") }

func TestStorageFailures(t *testing.T) {
	s := New(failingKV{}, quiet)
	ctx := context.Background()

	if got := s.Load(ctx); len(got) != 0 {
		t.Errorf("expected empty list, got %v", got)
	}

	got, err := s.Save(ctx, "Tokyo")
	if err == nil {
		t.Fatal("expected Save error")
	}
	if !reflect.DeepEqual(got, []string{"Tokyo"}) {
		t.Errorf("Save should still return the new list, got %v", got)
	}
}

func TestPrepend(t *testing.T) {
	tests := []struct {
		name    string
		entries []string
		city    string
		want    []string
	}{
		{"empty", nil, "A", []string{"A"}},
		{"moves existing to front", []string{"B", "A", "C"}, "a", []string{"a", "B", "C"}},
		{"truncates", []string{"B", "C", "D", "E", "F"}, "A", []string{"A", "B", "C", "D", "E"}},
		{"same city full list", []string{"A", "B", "C", "D", "E"}, "E", []string{"E", "A", "B", "C", "D"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Prepend(tt.entries, tt.city); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Prepend = %v, want %v", got, tt.want)
			}
		})
	}
}
