// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cache holds the server's in-memory expiring caches: the response
// cache in front of the account service and the set of revoked token ids.
//
// Both wrap ttlcache. Expired entries are dropped lazily on read; the
// background eviction loop is driven by Start and Stop, which the cache
// janitor worker calls.
package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/jellydator/ttlcache/v3"
)

// ListKey is the cache key of the whole collection response.
func ListKey(collection string) string {
	return collection
}

// ItemKey is the cache key of a single record response.
func ItemKey(collection string, id int64) string {
	return collection + ":" + strconv.FormatInt(id, 10)
}

// ResponseCache is a fixed-TTL cache of service responses keyed by ListKey
// and ItemKey.
type ResponseCache[V any] struct {
	items  *ttlcache.Cache[string, V]
	logger *logger.Logger
}

// NewResponseCache builds a cache whose entries live for ttl. A zero capacity
// means unbounded.
func NewResponseCache[V any](ttl time.Duration, capacity uint64, log *logger.Logger) *ResponseCache[V] {
	opts := []ttlcache.Option[string, V]{
		ttlcache.WithTTL[string, V](ttl),
		ttlcache.WithDisableTouchOnHit[string, V](),
	}
	if capacity > 0 {
		opts = append(opts, ttlcache.WithCapacity[string, V](capacity))
	}

	items := ttlcache.New[string, V](opts...)
	items.OnEviction(func(_ context.Context, reason ttlcache.EvictionReason, item *ttlcache.Item[string, V]) {
		log.Debug().Str("key", item.Key()).Int("reason", int(reason)).Msg("response cache entry evicted")
	})

	return &ResponseCache[V]{items: items, logger: log}
}

// Get returns the cached value for key, if present and not expired.
func (c *ResponseCache[V]) Get(key string) (V, bool) {
	item := c.items.Get(key)
	if item == nil {
		var zero V
		return zero, false
	}

	return item.Value(), true
}

// Set stores value under key with the default TTL.
func (c *ResponseCache[V]) Set(key string, value V) {
	c.items.Set(key, value, ttlcache.DefaultTTL)
}

// Invalidate removes every given key.
func (c *ResponseCache[V]) Invalidate(keys ...string) {
	for _, key := range keys {
		c.items.Delete(key)
	}
}

// Len returns the number of stored entries, expired ones included until the
// eviction loop or a read removes them.
func (c *ResponseCache[V]) Len() int {
	return c.items.Len()
}

// Start runs the eviction loop and blocks until Stop is called.
func (c *ResponseCache[V]) Start() {
	c.items.Start()
}

func (c *ResponseCache[V]) Stop() {
	c.items.Stop()
}
