// Package cachetest provides an in-process cache.Cache for tests. It follows
// the generation semantics of the redis implementation and can hold a Set
// open so tests can interleave writers with a cache fill.
package cachetest

import (
	"context"
	"encoding/json"
	"sync"

	"digiwallet/internal/repositories/cache"
)

type Cache struct {
	mu          sync.Mutex
	entries     map[string][]byte
	generations map[string]int64
	pause       *pause
}

type pause struct {
	entered chan struct{}
	release chan struct{}
}

var _ cache.Cache = (*Cache)(nil)

func New() *Cache {
	return &Cache{
		entries:     make(map[string][]byte),
		generations: make(map[string]int64),
	}
}

// PauseNextSet makes the next Set block once it is entered until release is
// called. entered is closed when that Set starts.
func (c *Cache) PauseNextSet() (entered <-chan struct{}, release func()) {
	p := &pause{entered: make(chan struct{}), release: make(chan struct{})}
	c.mu.Lock()
	c.pause = p
	c.mu.Unlock()

	var once sync.Once
	return p.entered, func() { once.Do(func() { close(p.release) }) }
}

func (c *Cache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	c.mu.Lock()
	data, ok := c.entries[key]
	c.mu.Unlock()
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dest)
}

func (c *Cache) Set(_ context.Context, key string, value interface{}) error {
	c.mu.Lock()
	p := c.pause
	c.pause = nil
	c.mu.Unlock()
	if p != nil {
		close(p.entered)
		<-p.release
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.entries[key] = data
	c.mu.Unlock()
	return nil
}

func (c *Cache) Generation(_ context.Context, family string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[family], nil
}

func (c *Cache) Bump(_ context.Context, family string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generations[family]++
	delete(c.entries, cache.EntryKey(family, c.generations[family]-1))
	return nil
}

func (c *Cache) HealthCheck(context.Context) error {
	return nil
}

// Has reports whether key holds an entry.
func (c *Cache) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}
