// Package cache memoiza resultados derivados do dataset por chave de filtro
package cache

// Cache define a interface genérica de memoização
type Cache[T any] interface {
	// Get busca um valor na cache
	Get(key string) (T, bool)

	// Set armazena um valor na cache
	Set(key string, data T)

	// Purge remove todas as entradas
	Purge() int

	// CleanExpired remove as entradas expiradas e retorna quantas foram removidas
	CleanExpired() int

	// Stats retorna os contadores da cache
	Stats() Stats
}

// Stats resume o estado da cache
type Stats struct {
	Size    int    `json:"size"`
	MaxSize int    `json:"max_size"`
	Hits    uint64 `json:"hits"`
	Misses  uint64 `json:"misses"`
	TTL     string `json:"ttl"`
}
