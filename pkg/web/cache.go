package web

import "sync"

type cacheEntry struct {
	hash  uint64
	flags uint8
	data  []byte
}

// cache is a fixed size ring of encoded snapshots keyed by their
// xxhash. Clients mirror the ring, so a repeated snapshot can be sent
// as its slot index alone.
type cache struct {
	cache   []*cacheEntry
	idx     int
	enabled bool
	size    int
	sync.RWMutex
}

func newCache(size int) *cache {
	c := &cache{
		cache:   make([]*cacheEntry, size),
		size:    size,
		enabled: true,
	}
	for i := 0; i < size; i++ {
		c.cache[i] = &cacheEntry{
			hash: 0,
			data: []byte{},
		}
	}

	return c
}

// add stores output in the next slot, evicting the oldest entry, and
// returns the slot used.
func (c *cache) add(hash uint64, flags uint8, output []byte) int {
	i := c.idx
	c.cache[i].data = output
	c.cache[i].hash = hash
	c.cache[i].flags = flags

	c.idx = (c.idx + 1) % c.size
	return i
}

// index returns the slot holding hash, or -1.
func (c *cache) index(hash uint64) int {
	if !c.enabled {
		return -1
	}
	for i, e := range c.cache {
		if len(e.data) > 0 && e.hash == hash {
			return i
		}
	}

	return -1
}
