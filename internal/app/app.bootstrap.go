package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"

	"github.com/aldisptr/backoffice-api/internal/shared/config"
	sharedhash "github.com/aldisptr/backoffice-api/internal/shared/hash"
	sharedjwt "github.com/aldisptr/backoffice-api/internal/shared/jwt"
	sharedlog "github.com/aldisptr/backoffice-api/internal/shared/log"
	sharedmetrics "github.com/aldisptr/backoffice-api/internal/shared/metrics"
	shareduid "github.com/aldisptr/backoffice-api/internal/shared/uid"
)

type configBinIn struct {
	fx.In
	Bin string `name:"bin"`
}

func New(bin string, modules ...fx.Option) *fx.App {
	normalizedBin := strings.TrimSpace(strings.ToLower(bin))
	opts := []fx.Option{
		fx.Supply(
			fx.Annotate(
				normalizedBin,
				fx.ResultTags(`name:"bin"`),
			),
		),
		CoreModule(),
	}
	opts = append(opts, modules...)
	opts = append(opts, fx.Invoke(registerLifecycle))
	return fx.New(opts...)
}

func CoreModule() fx.Option {
	return fx.Module("core",
		fx.Provide(
			provideConfig,
			sharedlog.NewJSONLogger,
			provideMetricsRecorder,
			provideRedisClient,
			fx.Annotate(
				provideAdminPostgresSQLX,
				fx.ResultTags(`name:"db_admin"`),
			),
			fx.Annotate(
				provideUUIDGenerator,
				fx.ResultTags(`name:"uid_uuid"`),
			),
			fx.Annotate(
				provideSnowflakeGenerator,
				fx.ResultTags(`name:"uid_snowflake"`),
			),
			provideFiberApp,
			providePasswordHasher,
			provideJWTTokenManager,
			provideDirectoryClient,
			provideTokenRevocationStore,
			provideRateLimitStore,
			provideRouterGroups,
		),
	)
}

func provideConfig(in configBinIn) (config.ConfigProvider, error) {
	bin := strings.TrimSpace(strings.ToLower(in.Bin))
	if bin == "users" {
		bin = "admin"
	}

	loadOrder := make([]config.Options, 0, 4)
	if bin == "auth" || bin == "admin" {
		loadOrder = append(loadOrder,
			config.Options{
				YAMLPath: fmt.Sprintf("config.%s.yaml", bin),
				EnvPath:  fmt.Sprintf(".env.%s", bin),
			},
			config.Options{
				YAMLPath: fmt.Sprintf("config.%s.yaml.example", bin),
				EnvPath:  fmt.Sprintf(".env.%s.example", bin),
			},
		)
	}

	loadOrder = append(loadOrder,
		config.Options{
			YAMLPath: "config.yaml",
			EnvPath:  ".env",
		},
		config.Options{
			YAMLPath: "config.yaml.example",
			EnvPath:  ".env.example",
		},
	)

	var lastErr error
	for _, opts := range loadOrder {
		provider, err := config.Init(opts)
		if err == nil {
			return provider, nil
		}
		lastErr = err
	}

	return nil, lastErr
}

func provideFiberApp(cfg config.ConfigProvider) *fiber.App {
	readTimeout := cfg.GetDuration("server.read_timeout")
	if readTimeout <= 0 {
		readTimeout = 30 * time.Second
	}

	writeTimeout := cfg.GetDuration("server.write_timeout")
	if writeTimeout <= 0 {
		writeTimeout = 30 * time.Second
	}

	return fiber.New(fiber.Config{
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	})
}

func provideMetricsRecorder() *sharedmetrics.Recorder {
	return sharedmetrics.NewRecorder(nil)
}

func providePasswordHasher() (sharedhash.Hasher, error) {
	return sharedhash.New(sharedhash.Options{Strategy: sharedhash.StrategyBcrypt})
}

func provideUUIDGenerator() (shareduid.UIDGenerator, error) {
	return shareduid.New(shareduid.Options{Strategy: shareduid.StrategyUUIDv7})
}

func provideSnowflakeGenerator(cfg config.ConfigProvider) (shareduid.UIDGenerator, error) {
	return shareduid.New(shareduid.Options{
		Strategy: shareduid.StrategySnowflake,
		NodeID:   int64(cfg.GetInt("uid.node_id")),
	})
}

func provideJWTTokenManager(cfg config.ConfigProvider) (sharedjwt.TokenManager, error) {
	secret := cfg.GetString("security.jwt.secret")
	if secret == "" {
		secret = cfg.GetString("jwt.secret")
	}
	if secret == "" {
		secret = "change-me-please-use-strong-secret-in-production"
	}

	if len(secret) < 32 {
		secret = secret + strings.Repeat("x", 32-len(secret))
	}

	ttl := cfg.GetDuration("security.jwt.ttl")
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}

	tokenManager, err := sharedjwt.New(sharedjwt.Options{
		Strategy:  sharedjwt.StrategyHMAC,
		Secret:    []byte(secret),
		Algorithm: "HS256",
		TTL:       ttl,
		Issuer:    cfg.GetString("security.jwt.issuer"),
	})
	if err != nil {
		return nil, fmt.Errorf("app: failed to init JWT manager: %w", err)
	}

	return tokenManager, nil
}
