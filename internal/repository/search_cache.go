package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/lk16/othello-agent/internal/models"
	"github.com/lk16/othello-agent/internal/services"
	"github.com/redis/go-redis/v9"
)

const (
	searchKeyPrefix = "search"
	SearchCacheTTL  = 24 * time.Hour

	// maxMemoryEntries bounds the in-process cache, it is cleared when full.
	maxMemoryEntries = 10_000
)

// SearchKey identifies a search. Results only depend on the board, the mover and the limits.
type SearchKey struct {
	Board       string
	Mover       int
	DepthLimit  int
	TimeLimitMs int64
}

// String returns the key used for storage.
func (k SearchKey) String() string {
	return fmt.Sprintf("%s:%s:%d:%d:%d", searchKeyPrefix, k.Board, k.Mover, k.DepthLimit, k.TimeLimitMs)
}

// SearchCache stores search responses.
type SearchCache interface {
	// Get returns the cached response and whether it was found.
	Get(ctx context.Context, key SearchKey) (models.SearchResponse, bool, error)

	// Set stores a response.
	Set(ctx context.Context, key SearchKey, response models.SearchResponse) error
}

// NewSearchCache returns a Redis backed cache if Redis is configured, an in-process cache otherwise.
func NewSearchCache(services *services.Services) SearchCache {
	if services != nil && services.Redis != nil {
		return NewRedisSearchCache(services.Redis, SearchCacheTTL)
	}
	return NewMemorySearchCache()
}

// RedisSearchCache stores search responses as JSON strings with a TTL.
type RedisSearchCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSearchCache(client *redis.Client, ttl time.Duration) *RedisSearchCache {
	return &RedisSearchCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *RedisSearchCache) Get(ctx context.Context, key SearchKey) (models.SearchResponse, bool, error) {
	jsonData, err := c.client.Get(ctx, key.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.SearchResponse{}, false, nil
	}

	if err != nil {
		return models.SearchResponse{}, false, fmt.Errorf("error getting search result: %w", err)
	}

	var response models.SearchResponse
	if err = json.Unmarshal(jsonData, &response); err != nil {
		return models.SearchResponse{}, false, fmt.Errorf("error unmarshaling search result: %w", err)
	}

	return response, true, nil
}

func (c *RedisSearchCache) Set(ctx context.Context, key SearchKey, response models.SearchResponse) error {
	jsonData, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("error marshaling search result: %w", err)
	}

	if err = c.client.Set(ctx, key.String(), jsonData, c.ttl).Err(); err != nil {
		return fmt.Errorf("error storing search result: %w", err)
	}

	return nil
}

// MemorySearchCache is a search cache for servers without Redis.
type MemorySearchCache struct {
	// data stores the underlying map
	data map[SearchKey]models.SearchResponse

	// dataMutex protects data
	dataMutex sync.Mutex
}

func NewMemorySearchCache() *MemorySearchCache {
	return &MemorySearchCache{
		data: make(map[SearchKey]models.SearchResponse),
	}
}

func (c *MemorySearchCache) Get(_ context.Context, key SearchKey) (models.SearchResponse, bool, error) {
	c.dataMutex.Lock()
	defer c.dataMutex.Unlock()

	response, ok := c.data[key]
	return response, ok, nil
}

func (c *MemorySearchCache) Set(_ context.Context, key SearchKey, response models.SearchResponse) error {
	c.dataMutex.Lock()
	defer c.dataMutex.Unlock()

	if len(c.data) >= maxMemoryEntries {
		clear(c.data)
	}

	c.data[key] = response
	return nil
}

// Len returns the number of items in the cache.
func (c *MemorySearchCache) Len() int {
	c.dataMutex.Lock()
	defer c.dataMutex.Unlock()

	return len(c.data)
}
