// Package timemap implements a timestamp-versioned key-value store: every
// Set records a new version of a key, and Get answers "what was the value as
// of time t" by binary-searching the key's version history.
//
// What
//
//   - New() — construct an empty Map.
//   - Set(key, value, timestamp) — append a version; timestamps must be
//     strictly increasing per key.
//   - Get(key, timestamp) — the value with the largest stored timestamp not
//     exceeding the query, or ("", false) when no version is that old.
//   - Len() — number of keys with at least one version.
//
// Why
//
//	The strictly-increasing write rule keeps each key's history sorted for
//	free, so reads are a floor lookup in O(log v) for v stored versions —
//	no trees, no rebalancing.
//
// Concurrency
//
//	A Map guards its state with a sync.RWMutex: any number of concurrent
//	readers, single writer. Safe for use from multiple goroutines.
//
// Complexity (v = versions stored for the queried key)
//
//   - Set: O(1) amortized
//   - Get: O(log v)
//
// Errors
//
//   - ErrStaleTimestamp — Set with a timestamp not greater than the key's
//     latest version.
package timemap
