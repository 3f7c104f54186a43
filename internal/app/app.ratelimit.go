package app

import (
	"fmt"
	"strings"

	"github.com/aldisptr/backoffice-api/internal/shared/config"
	sharedratelimit "github.com/aldisptr/backoffice-api/internal/shared/ratelimit"
)

func provideRateLimitStore(cfg config.ConfigProvider) sharedratelimit.Store {
	return sharedratelimit.NewMemoryStore(sharedratelimit.MemoryStoreOptions{
		DefaultWindow:   cfg.GetDuration("rate_limit.default_window"),
		MaxKeysPerRoute: cfg.GetInt("rate_limit.max_keys_per_route"),
		SweepInterval:   cfg.GetDuration("rate_limit.sweep_interval"),
	})
}

// resolveRatePolicy overlays rate_limit.<route>.{max,window,key_by} from
// configuration onto the route's built-in fallback policy.
func resolveRatePolicy(cfg config.ConfigProvider, route string, fallback sharedratelimit.Policy) sharedratelimit.Policy {
	policy := fallback

	if max := cfg.GetInt(fmt.Sprintf("rate_limit.%s.max", route)); max > 0 {
		policy.Max = int64(max)
	}

	if window := cfg.GetDuration(fmt.Sprintf("rate_limit.%s.window", route)); window > 0 {
		policy.Window = window
	}

	policy.KeyBy = parseRateLimitKeyBy(cfg.GetString(fmt.Sprintf("rate_limit.%s.key_by", route)), policy.KeyBy)

	return policy
}

func parseRateLimitKeyBy(value string, fallback sharedratelimit.KeyBy) sharedratelimit.KeyBy {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "ip":
		return sharedratelimit.KeyByIP
	case "subject", "user":
		return sharedratelimit.KeyBySubject
	default:
		return fallback
	}
}
