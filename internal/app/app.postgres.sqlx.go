package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/joshuarp/settlement-engine/internal/shared/config"
	"go.uber.org/fx"
)

type dbProviderIn struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    config.ConfigProvider
	Bin       string `name:"bin"`
}

// provideSettlementPostgresSQLX opens the settlement database. A split
// deployment may point each bin at its own pool settings under
// database.<bin>.*, falling back to database.*.
func provideSettlementPostgresSQLX(in dbProviderIn) (*sqlx.DB, error) {
	db, err := providePostgresSQLXForBin(in.Config, in.Bin)
	if err != nil {
		return nil, err
	}

	in.Lifecycle.Append(fx.StopHook(db.Close))
	return db, nil
}

func providePostgresSQLXForBin(cfg config.ConfigProvider, bin string) (*sqlx.DB, error) {
	module := strings.TrimSpace(strings.ToLower(bin))
	useModuleConfig := !isSingleBinaryBin(bin)

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		moduleDBString(cfg, module, "host", useModuleConfig),
		moduleDBInt(cfg, module, "port", useModuleConfig),
		moduleDBString(cfg, module, "user", useModuleConfig),
		moduleDBString(cfg, module, "password", useModuleConfig),
		moduleDBString(cfg, module, "name", useModuleConfig),
		moduleDBString(cfg, module, "ssl_mode", useModuleConfig),
	)

	db, err := sqlx.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db(%s): failed to open postgres connection: %w", module, err)
	}

	if maxOpen := moduleDBInt(cfg, module, "max_open_conns", useModuleConfig); maxOpen > 0 {
		db.SetMaxOpenConns(maxOpen)
	}
	if maxIdle := moduleDBInt(cfg, module, "max_idle_conns", useModuleConfig); maxIdle > 0 {
		db.SetMaxIdleConns(maxIdle)
	}
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("db(%s): failed to ping postgres: %w", module, err)
	}

	return db, nil
}

func moduleDBString(cfg config.ConfigProvider, module, key string, useModuleConfig bool) string {
	if useModuleConfig {
		moduleKey := fmt.Sprintf("database.%s.%s", module, key)
		if cfg.IsSet(moduleKey) {
			return cfg.GetSecret(moduleKey)
		}

		moduleEnvKey := moduleDBEnvKey(module, key)
		if cfg.IsSet(moduleEnvKey) {
			return cfg.GetSecret(moduleEnvKey)
		}
	}

	globalKey := fmt.Sprintf("database.%s", key)
	if cfg.IsSet(globalKey) {
		return cfg.GetSecret(globalKey)
	}

	return cfg.GetSecret(globalDBEnvKey(key))
}

func moduleDBInt(cfg config.ConfigProvider, module, key string, useModuleConfig bool) int {
	if useModuleConfig {
		moduleKey := fmt.Sprintf("database.%s.%s", module, key)
		if cfg.IsSet(moduleKey) {
			return cfg.GetInt(moduleKey)
		}

		moduleEnvKey := moduleDBEnvKey(module, key)
		if cfg.IsSet(moduleEnvKey) {
			return cfg.GetInt(moduleEnvKey)
		}
	}

	globalKey := fmt.Sprintf("database.%s", key)
	if cfg.IsSet(globalKey) {
		return cfg.GetInt(globalKey)
	}

	return cfg.GetInt(globalDBEnvKey(key))
}

func isSingleBinaryBin(bin string) bool {
	normalized := strings.TrimSpace(strings.ToLower(bin))
	return normalized == "" || normalized == BinAll
}

func moduleDBEnvKey(module, key string) string {
	normalizedKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	return fmt.Sprintf("DATABASE_%s_%s", strings.ToUpper(module), normalizedKey)
}

func globalDBEnvKey(key string) string {
	normalizedKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	return fmt.Sprintf("DATABASE_%s", normalizedKey)
}
