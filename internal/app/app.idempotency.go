package app

import (
	"github.com/aldisptr/backoffice-api/internal/shared/config"
	sharedidempotency "github.com/aldisptr/backoffice-api/internal/shared/idempotency"
)

func provideAdminIdempotencyStore(cfg config.ConfigProvider) *sharedidempotency.MemoryStore {
	return sharedidempotency.NewMemoryStore(sharedidempotency.MemoryStoreOptions{
		TTL:           cfg.GetDuration("idempotency.ttl"),
		MaxEntries:    cfg.GetInt("idempotency.max_entries"),
		LockTTL:       cfg.GetDuration("idempotency.lock_ttl"),
		SweepInterval: cfg.GetDuration("idempotency.sweep_interval"),
	})
}
