package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/myform/pkg/metrics"
)

type entry struct {
	name      string
	body      []byte
	expiresAt time.Time
}

// LRUCacheTTL - потокобезопасный LRU-кэш тел фикстур с TTL.
// ttl <= 0 отключает истечение; Get и Set возвращают копии байтов.
type LRUCacheTTL struct {
	capacity int
	ttl      time.Duration

	ll    *list.List
	index map[string]*list.Element

	mu  sync.Mutex
	now func() time.Time
}

func NewLRUCacheTTL(capacity int, ttl time.Duration) *LRUCacheTTL {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRUCacheTTL{
		capacity: capacity,
		ttl:      ttl,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
		now:      time.Now,
	}
}

func (c *LRUCacheTTL) Get(_ context.Context, name string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	elem, ok := c.index[name]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	ent := elem.Value.(*entry)
	if c.isExpired(ent, now) {
		metrics.CacheOps.WithLabelValues("expired").Inc()
		c.removeElement(elem)
		metrics.CacheSize.Set(float64(len(c.index)))
		return nil, false
	}
	c.ll.MoveToFront(elem)

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return cloneBytes(ent.body), true
}

// Set - сохраняет тело фикстуры. В отличие от Get, TTL не продлевается при чтении:
// изменённый на диске файл должен подхватиться не позже чем через ttl.
func (c *LRUCacheTTL) Set(_ context.Context, name string, body []byte) error {
	if name == "" {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if elem, ok := c.index[name]; ok {
		ent := elem.Value.(*entry)
		ent.body = cloneBytes(body)
		ent.expiresAt = c.expiryFrom(now)
		c.ll.MoveToFront(elem)
		return nil
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&entry{
		name:      name,
		body:      cloneBytes(body),
		expiresAt: c.expiryFrom(now),
	})
	c.index[name] = elem
	metrics.CacheSize.Set(float64(len(c.index)))

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	return nil
}

// Len - текущее число записей.
func (c *LRUCacheTTL) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}
