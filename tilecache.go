// tilecache.go
package qscape

import (
	"sync"
	"time"
)

type tileKey struct {
	X, Y int
}

type tileEntry struct {
	level    int
	storedAt time.Time
}

/*
TileCache remembers sampled brightness levels per world coordinate so a
one-tile camera step only pays for the newly exposed row or column
instead of the whole viewport. Brightness is a fixed function of seed and
coordinate up to sampling noise, so serving a cached level just freezes
that noise for the entry's lifetime.

Entries expire after the configured TTL; expired entries are swept
opportunistically on store, keeping the cache maintenance inside the
single render thread.
*/
type TileCache struct {
	mu     sync.RWMutex
	ttl    time.Duration
	tiles  map[tileKey]tileEntry
	stores int
}

// sweep every this many stores.
const sweepInterval = 256

// NewTileCache creates an empty cache. A non-positive ttl keeps entries
// forever.
func NewTileCache(ttl time.Duration) *TileCache {
	return &TileCache{
		ttl:   ttl,
		tiles: make(map[tileKey]tileEntry),
	}
}

// Lookup returns the cached level for a coordinate, if present and fresh.
func (tc *TileCache) Lookup(x, y int) (int, bool) {
	tc.mu.RLock()
	entry, ok := tc.tiles[tileKey{x, y}]
	tc.mu.RUnlock()

	if !ok {
		return 0, false
	}
	if tc.ttl > 0 && time.Since(entry.storedAt) > tc.ttl {
		return 0, false
	}
	return entry.level, true
}

// Store records a freshly sampled level for a coordinate.
func (tc *TileCache) Store(x, y, level int) {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	tc.tiles[tileKey{x, y}] = tileEntry{level: level, storedAt: time.Now()}

	tc.stores++
	if tc.ttl > 0 && tc.stores%sweepInterval == 0 {
		tc.sweepLocked()
	}
}

// Len reports the number of resident entries, expired or not.
func (tc *TileCache) Len() int {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	return len(tc.tiles)
}

func (tc *TileCache) sweepLocked() {
	cutoff := time.Now().Add(-tc.ttl)
	for key, entry := range tc.tiles {
		if entry.storedAt.Before(cutoff) {
			delete(tc.tiles, key)
		}
	}
}
