package cache

import (
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// RevokedTokens remembers revoked token ids until the tokens would have
// expired anyway.
type RevokedTokens struct {
	ids *ttlcache.Cache[string, struct{}]
}

func NewRevokedTokens() *RevokedTokens {
	return &RevokedTokens{
		ids: ttlcache.New[string, struct{}](ttlcache.WithDisableTouchOnHit[string, struct{}]()),
	}
}

// Revoke marks jti as revoked until expiresAt. A token that has already
// expired is not recorded.
func (r *RevokedTokens) Revoke(jti string, expiresAt time.Time) {
	ttl := time.Until(expiresAt)
	if jti == "" || ttl <= 0 {
		return
	}

	r.ids.Set(jti, struct{}{}, ttl)
}

// IsRevoked reports whether jti was revoked and has not expired yet.
func (r *RevokedTokens) IsRevoked(jti string) bool {
	return r.ids.Get(jti) != nil
}

func (r *RevokedTokens) Start() {
	r.ids.Start()
}

func (r *RevokedTokens) Stop() {
	r.ids.Stop()
}
