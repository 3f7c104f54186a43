package app

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aldisptr/backoffice-api/internal/shared/breaker"
	"github.com/aldisptr/backoffice-api/internal/shared/config"
	"github.com/aldisptr/backoffice-api/internal/shared/directory"
	sharedmetrics "github.com/aldisptr/backoffice-api/internal/shared/metrics"
)

func provideDirectoryClient(
	cfg config.ConfigProvider,
	logger *slog.Logger,
	recorder *sharedmetrics.Recorder,
) (*directory.Client, error) {
	url := strings.TrimSpace(cfg.GetString("directory.url"))
	if url == "" {
		url = "ldap://localhost:389"
	}

	timeout := cfg.GetDuration("directory.timeout")
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	maxRetries := cfg.GetInt("directory.retry.max_retries")
	if maxRetries <= 0 {
		maxRetries = 3
	}

	baseDelay := cfg.GetDuration("directory.retry.base_delay")
	if baseDelay <= 0 {
		baseDelay = 100 * time.Millisecond
	}

	delayCap := cfg.GetDuration("directory.retry.delay_cap")
	if delayCap <= 0 {
		delayCap = 2 * time.Second
	}

	failureThreshold := cfg.GetInt("directory.breaker.failure_threshold")
	if failureThreshold <= 0 {
		failureThreshold = 5
	}

	cooldown := cfg.GetDuration("directory.breaker.cooldown")
	if cooldown <= 0 {
		cooldown = 30 * time.Second
	}

	halfOpenMaxAttempts := cfg.GetInt("directory.breaker.half_open_max_attempts")
	if halfOpenMaxAttempts <= 0 {
		halfOpenMaxAttempts = 1
	}

	client, err := directory.New(directory.Config{
		URL:                 url,
		BindDN:              cfg.GetString("directory.bind_dn"),
		BindPassword:        cfg.GetString("directory.bind_password"),
		BaseDN:              cfg.GetString("directory.base_dn"),
		Timeout:             timeout,
		MaxRetries:          maxRetries,
		BaseDelay:           baseDelay,
		DelayCap:            delayCap,
		FailureThreshold:    failureThreshold,
		Cooldown:            cooldown,
		HalfOpenMaxAttempts: halfOpenMaxAttempts,
		Observe: func(op string, err error) {
			recorder.ObserveDirectoryEvent(op, err)
			if err != nil {
				logger.Warn("directory operation failed", "op", op, "error", err)
			}
		},
		OnStateChange: func(from, to breaker.State) {
			recorder.ObserveBreakerTransition(from.String(), to.String())
			logger.Warn("directory breaker state changed", "from", from.String(), "to", to.String())
		},
	})
	if err != nil {
		return nil, fmt.Errorf("app: failed to init directory client: %w", err)
	}

	return client, nil
}
