// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-account-keeper/internal/cache"
	"github.com/MKhiriev/go-account-keeper/models"
)

const accountsCollection = "accounts"

// ResponseCache is the part of cache.ResponseCache the decorator needs.
type ResponseCache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
	Invalidate(keys ...string)
}

// cachedAccountService serves reads from a fixed-TTL cache. Every write
// removes the list entry and the written record's entry before returning,
// whether or not the write succeeded.
type cachedAccountService struct {
	inner     AccountService
	responses ResponseCache
}

// NewCachedAccountService wraps base with the response cache.
func NewCachedAccountService(base AccountService, responses ResponseCache) AccountService {
	return &cachedAccountService{inner: base, responses: responses}
}

func (c *cachedAccountService) List(ctx context.Context) ([]models.Account, error) {
	key := cache.ListKey(accountsCollection)
	if cached, ok := c.responses.Get(key); ok {
		if accounts, ok := cached.([]models.Account); ok {
			return accounts, nil
		}
	}

	accounts, err := c.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	c.responses.Set(key, accounts)
	return accounts, nil
}

func (c *cachedAccountService) Get(ctx context.Context, id int64) (models.Account, error) {
	key := cache.ItemKey(accountsCollection, id)
	if cached, ok := c.responses.Get(key); ok {
		if account, ok := cached.(models.Account); ok {
			return account, nil
		}
	}

	account, err := c.inner.Get(ctx, id)
	if err != nil {
		return models.Account{}, err
	}

	c.responses.Set(key, account)
	return account, nil
}

func (c *cachedAccountService) Create(ctx context.Context, account models.Account) (models.Account, error) {
	created, err := c.inner.Create(ctx, account)
	// The new id is unknown on failure; only the list entry can be stale.
	c.invalidate(created.ID)
	return created, err
}

func (c *cachedAccountService) Update(ctx context.Context, account models.Account) (models.Account, error) {
	defer c.invalidate(account.ID)
	return c.inner.Update(ctx, account)
}

func (c *cachedAccountService) Delete(ctx context.Context, id int64) error {
	defer c.invalidate(id)
	return c.inner.Delete(ctx, id)
}

func (c *cachedAccountService) invalidate(id int64) {
	keys := []string{cache.ListKey(accountsCollection)}
	if id > 0 {
		keys = append(keys, cache.ItemKey(accountsCollection, id))
	}

	c.responses.Invalidate(keys...)
}
