package timemap

import (
	"errors"
	"fmt"
	"sync"
)

// ErrStaleTimestamp indicates a Set whose timestamp does not advance the
// key's history. Histories must be strictly increasing so reads can rely on
// sorted order.
var ErrStaleTimestamp = errors.New("timemap: timestamp not greater than latest version")

// version is one stored revision of a key.
type version struct {
	ts    int
	value string
}

// Map is a timestamp-versioned key-value store. Use New to create one.
// Safe for concurrent use.
type Map struct {
	mu    sync.RWMutex
	store map[string][]version
}

// New returns an empty Map.
func New() *Map {
	return &Map{store: make(map[string][]version)}
}

// Set records value as the state of key at the given timestamp. Each key's
// timestamps must be strictly increasing across calls; violating that
// returns ErrStaleTimestamp and stores nothing.
func (m *Map) Set(key, value string, timestamp int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	history := m.store[key]
	if len(history) > 0 && history[len(history)-1].ts >= timestamp {
		return fmt.Errorf("%w: key %q has version at %d, got %d",
			ErrStaleTimestamp, key, history[len(history)-1].ts, timestamp)
	}
	m.store[key] = append(history, version{ts: timestamp, value: value})

	return nil
}

// Get returns the value of key as of timestamp: the version with the largest
// stored timestamp not exceeding the query. The second result is false when
// the key is unknown or its earliest version is newer than the query.
func (m *Map) Get(key string, timestamp int) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	history := m.store[key]
	// floor search: rightmost version with ts <= timestamp
	low, high := 0, len(history)-1
	best := -1
	for low <= high {
		mid := low + (high-low)/2
		if history[mid].ts <= timestamp {
			best = mid
			low = mid + 1
		} else {
			high = mid - 1
		}
	}
	if best < 0 {
		return "", false
	}

	return history[best].value, true
}

// Len returns the number of keys holding at least one version.
func (m *Map) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.store)
}
