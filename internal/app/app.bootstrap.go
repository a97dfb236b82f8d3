package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"

	"github.com/joshuarp/settlement-engine/internal/shared/config"
	sharedjwt "github.com/joshuarp/settlement-engine/internal/shared/jwt"
	sharedlog "github.com/joshuarp/settlement-engine/internal/shared/log"
)

const (
	BinWorker = "worker"
	BinOps    = "ops"
	BinAll    = "all"
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
			provideRedisClient,
			provideSettlementPostgresSQLX,
			fx.Annotate(
				provideMetricsRegistry,
				fx.As(new(prometheus.Registerer)),
				fx.As(new(prometheus.Gatherer)),
			),
			provideFiberApp,
			provideJWTTokenManager,
			provideRouterGroups,
		),
		fx.Invoke(watchConfig),
	)
}

func provideConfig(in configBinIn) (config.ConfigProvider, error) {
	bin := strings.TrimSpace(strings.ToLower(in.Bin))

	loadOrder := make([]config.Options, 0, 4)
	if bin == BinWorker || bin == BinOps {
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

func watchConfig(lifecycle fx.Lifecycle, cfg config.ConfigProvider) {
	lifecycle.Append(fx.StopHook(cfg.StopWatching))
	cfg.WatchChanges()
}

func provideMetricsRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return registry
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
		AppName:      "settlement-engine",
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	})
}

// provideJWTTokenManager verifies operator tokens issued by the back office.
// There is no fallback secret: an engine without one refuses to start.
func provideJWTTokenManager(cfg config.ConfigProvider) (sharedjwt.TokenManager, error) {
	secret := cfg.GetSecret("security.jwt.secret")
	if secret == "" {
		secret = cfg.GetSecret("jwt.secret")
	}
	if len(secret) < 32 {
		return nil, errors.New("app: security.jwt.secret must be at least 32 bytes")
	}

	var audience []string
	if value := strings.TrimSpace(cfg.GetString("security.jwt.audience")); value != "" {
		audience = []string{value}
	}

	tokenManager, err := sharedjwt.New(sharedjwt.Options{
		Secret:    []byte(secret),
		Algorithm: cfg.GetString("security.jwt.algorithm"),
		Issuer:    cfg.GetString("security.jwt.issuer"),
		Audience:  audience,
		TTL:       cfg.GetDuration("security.jwt.ttl"),
		Leeway:    cfg.GetDuration("security.jwt.leeway"),
	})
	if err != nil {
		return nil, fmt.Errorf("app: failed to init JWT manager: %w", err)
	}

	return tokenManager, nil
}
