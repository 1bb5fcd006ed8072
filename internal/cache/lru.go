package cache

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// LRUCache é uma cache LRU com expiração por TTL e limite de tamanho,
// apoiada em expirable.LRU. Guarda os contadores de acertos, faltas e expirações.
type LRUCache[T any] struct {
	lru     *expirable.LRU[string, entry[T]]
	maxSize int
	ttl     time.Duration
	keys    sync.Map // chaves presentes, inclusive expiradas ainda não removidas
	hits    atomic.Uint64
	misses  atomic.Uint64
	expired atomic.Int64
}

type entry[T any] struct {
	data      T
	expiresAt time.Time
}

// NewLRUCache cria uma cache LRU. ttl <= 0 desativa a expiração.
func NewLRUCache[T any](maxSize int, ttl time.Duration) *LRUCache[T] {
	if maxSize < 1 {
		maxSize = 1
	}
	if ttl < 0 {
		ttl = 0
	}

	c := &LRUCache[T]{
		maxSize: maxSize,
		ttl:     ttl,
	}
	// chamado pela lru com o lock interno adquirido: só toca em sync.Map e atômicos
	c.lru = expirable.NewLRU[string, entry[T]](maxSize, c.onEvict, ttl)
	return c
}

func (c *LRUCache[T]) onEvict(key string, e entry[T]) {
	c.keys.Delete(key)
	if !e.expiresAt.IsZero() && !time.Now().Before(e.expiresAt) {
		c.expired.Add(1)
	}
}

// Get busca um valor na cache
func (c *LRUCache[T]) Get(key string) (T, bool) {
	e, ok := c.lru.Get(key)
	if !ok {
		c.misses.Add(1)
		var zero T
		return zero, false
	}

	c.hits.Add(1)
	return e.data, true
}

// Set armazena um valor na cache
func (c *LRUCache[T]) Set(key string, data T) {
	e := entry[T]{data: data}
	if c.ttl > 0 {
		e.expiresAt = time.Now().Add(c.ttl)
	}

	c.lru.Add(key, e)
	c.keys.Store(key, struct{}{})
}

// Purge remove todas as entradas e retorna quantas foram removidas
func (c *LRUCache[T]) Purge() int {
	removed := c.lru.Len()
	c.lru.Purge()
	return removed
}

// CleanExpired remove as entradas expiradas e retorna quantas expiraram desde a última chamada,
// incluindo as já descartadas pela própria lru
func (c *LRUCache[T]) CleanExpired() int {
	c.keys.Range(func(k, _ any) bool {
		key := k.(string)
		if _, ok := c.lru.Peek(key); !ok {
			c.lru.Remove(key)
			c.keys.Delete(key)
		}
		return true
	})

	return int(c.expired.Swap(0))
}

// Stats retorna os contadores da cache
func (c *LRUCache[T]) Stats() Stats {
	return Stats{
		Size:    len(c.lru.Keys()),
		MaxSize: c.maxSize,
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		TTL:     c.ttl.String(),
	}
}
