package casing

import "sync"

// instanceCache is a thread-safe, lazily populated transformer cache
type instanceCache struct {
	m   map[string]Transformer
	mux sync.RWMutex
}

// Get returns cached transformer
func (c *instanceCache) Get(name string) (Transformer, bool) {
	c.mux.RLock()
	defer c.mux.RUnlock()
	t, ok := c.m[name]
	return t, ok
}

// GetOrCreate returns cached transformer or stores the one created by fn, fn is called at most once per name
func (c *instanceCache) GetOrCreate(name string, fn func() Transformer) Transformer {
	if t, ok := c.Get(name); ok {
		return t
	}
	c.mux.Lock()
	defer c.mux.Unlock()
	if t, ok := c.m[name]; ok {
		return t
	}
	t := fn()
	c.m[name] = t
	return t
}

// Len returns number of created instances
func (c *instanceCache) Len() int {
	c.mux.RLock()
	defer c.mux.RUnlock()
	return len(c.m)
}

func (c *instanceCache) reset() {
	c.mux.Lock()
	c.m = make(map[string]Transformer)
	c.mux.Unlock()
}

func newInstanceCache() *instanceCache {
	return &instanceCache{m: make(map[string]Transformer)}
}
