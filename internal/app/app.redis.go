package app

import (
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/aldisptr/backoffice-api/internal/shared/config"
	sharedrevocation "github.com/aldisptr/backoffice-api/internal/shared/revocation"
)

func provideRedisClient(cfg config.ConfigProvider) *redis.Client {
	host := strings.TrimSpace(cfg.GetString("redis.host"))
	if host == "" {
		host = "localhost"
	}

	port := cfg.GetInt("redis.port")
	if port == 0 {
		port = 6379
	}

	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: cfg.GetString("redis.password"),
		DB:       cfg.GetInt("redis.db"),
	})
}

func provideTokenRevocationStore(cfg config.ConfigProvider, redisClient *redis.Client) sharedrevocation.Store {
	prefix := strings.TrimSpace(cfg.GetString("security.revocation.prefix"))
	if prefix == "" {
		prefix = "backoffice-api:revoked"
	}

	return sharedrevocation.NewRedisStore(redisClient, prefix)
}
