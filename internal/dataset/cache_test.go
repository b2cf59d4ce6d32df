package dataset

import (
	"testing"
	"time"
)

// countingCache wraps an in-memory map and records hits and misses
type countingCache struct {
	store map[string][]byte
	gets  int
	sets  int
}

func newCountingCache() *countingCache {
	return &countingCache{store: make(map[string][]byte)}
}

func (c *countingCache) Get(key string) ([]byte, bool) {
	c.gets++
	val, ok := c.store[key]
	return val, ok
}

func (c *countingCache) Set(key string, value []byte, ttl time.Duration) error {
	c.sets++
	c.store[key] = value
	return nil
}

func (c *countingCache) Delete(key string) error {
	delete(c.store, key)
	return nil
}

func (c *countingCache) Clear() error {
	c.store = make(map[string][]byte)
	return nil
}

func TestCachingLoader_PopulatesAndHitsCache(t *testing.T) {
	path := writeTempCSV(t, sampleCSV)
	cc := newCountingCache()
	loader := NewCachingLoader(NewLoader(""), cc, time.Hour)

	first, err := loader.Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cc.sets != 1 {
		t.Errorf("Expected 1 cache set after first load, got %d", cc.sets)
	}

	second, err := loader.Load(path)
	if err != nil {
		t.Fatalf("Expected no error on cached load, got %v", err)
	}
	if cc.sets != 1 {
		t.Errorf("Expected no additional cache set on hit, got %d sets", cc.sets)
	}

	if len(first.Incidents) != len(second.Incidents) {
		t.Errorf("Expected identical incident counts, got %d and %d",
			len(first.Incidents), len(second.Incidents))
	}
	if first.Skipped != second.Skipped {
		t.Errorf("Expected identical skip counts, got %d and %d", first.Skipped, second.Skipped)
	}
}

func TestCachingLoader_CorruptEntryReparses(t *testing.T) {
	path := writeTempCSV(t, sampleCSV)
	cc := newCountingCache()
	loader := NewCachingLoader(NewLoader(""), cc, time.Hour)

	if _, err := loader.Load(path); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Corrupt every stored entry
	for key := range cc.store {
		cc.store[key] = []byte("not json")
	}

	result, err := loader.Load(path)
	if err != nil {
		t.Fatalf("Expected reparse after corrupt entry, got %v", err)
	}
	if len(result.Incidents) != 4 {
		t.Errorf("Expected 4 incidents after reparse, got %d", len(result.Incidents))
	}
}

func TestCachingLoader_NilCache(t *testing.T) {
	path := writeTempCSV(t, sampleCSV)
	loader := NewCachingLoader(NewLoader(""), nil, time.Hour)

	result, err := loader.Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(result.Incidents) != 4 {
		t.Errorf("Expected 4 incidents, got %d", len(result.Incidents))
	}
}
