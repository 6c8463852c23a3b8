package cache

import (
	"sync"
	"time"
)

// Item is a cached value with an absolute expiration.
type Item struct {
	Value      interface{}
	Expiration int64
}

// Cache is a small in-memory TTL cache. Expired entries are swept by a
// background goroutine once a minute; Get also checks expiry so a stale
// read can never be served between sweeps.
type Cache struct {
	items map[string]Item
	mu    sync.RWMutex
}

func New() *Cache {
	c := &Cache{items: make(map[string]Item)}

	go func() {
		for {
			time.Sleep(time.Minute)
			c.DeleteExpired()
		}
	}()

	return c
}

func (c *Cache) Set(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = Item{
		Value:      value,
		Expiration: time.Now().Add(ttl).UnixNano(),
	}
}

func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, found := c.items[key]
	if !found {
		return nil, false
	}
	if time.Now().UnixNano() > item.Expiration {
		return nil, false
	}
	return item.Value, true
}

func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)
}

// DeletePrefix removes every entry whose key starts with prefix. Used to
// invalidate a whole resource family after a mutation.
func (c *Cache) DeletePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for k := range c.items {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			delete(c.items, k)
		}
	}
}

func (c *Cache) DeleteExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now().UnixNano()
	for k, v := range c.items {
		if now > v.Expiration {
			delete(c.items, k)
		}
	}
}

func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]Item)
}
