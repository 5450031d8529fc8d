// Package cache provides the optional redis-backed cache for the experience
// listing. The cache is never load-bearing: callers treat every error here as
// a miss and go to the data source.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/roamly/booking-api/internal/domain"
)

// listingKey is the single redis key holding the JSON-encoded listing.
// The listing operation takes no parameters, so one key is enough.
const listingKey = "experiences:listing"

// Listing caches the experience listing in redis with a TTL.
type Listing struct {
	client *redis.Client
	ttl    time.Duration
}

// NewListing constructs a Listing cache on the given client. Entries expire
// after ttl.
func NewListing(client *redis.Client, ttl time.Duration) *Listing {
	return &Listing{client: client, ttl: ttl}
}

// Get returns the cached listing, or (nil, nil) on a cache miss.
func (c *Listing) Get(ctx context.Context) ([]domain.Experience, error) {
	b, err := c.client.Get(ctx, listingKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache.Listing.Get: %w", err)
	}
	var exps []domain.Experience
	if err := json.Unmarshal(b, &exps); err != nil {
		return nil, fmt.Errorf("cache.Listing.Get: decode: %w", err)
	}
	return exps, nil
}

// Set stores the listing under the configured TTL.
func (c *Listing) Set(ctx context.Context, exps []domain.Experience) error {
	b, err := json.Marshal(exps)
	if err != nil {
		return fmt.Errorf("cache.Listing.Set: encode: %w", err)
	}
	if err := c.client.Set(ctx, listingKey, b, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache.Listing.Set: %w", err)
	}
	return nil
}
