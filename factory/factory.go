package factory

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"nft-ticketing-backend/config"
	"nft-ticketing-backend/event"
	"nft-ticketing-backend/logger"
	"nft-ticketing-backend/redemption"
	"nft-ticketing-backend/storage/memory"
	"nft-ticketing-backend/storage/mysql"
	"nft-ticketing-backend/storage/postgres"
	redisstore "nft-ticketing-backend/storage/redis"
	"nft-ticketing-backend/vault"

	goredis "github.com/go-redis/redis"
	_ "github.com/go-sql-driver/mysql"
	"github.com/spf13/viper"
)

const connectTimeout = 30 * time.Second

// Factory hands out process-wide connections, created on first use. Handles
// are passed explicitly to the services that need them.
type Factory interface {
	DB(ctx context.Context) *sql.DB
	Postgres(ctx context.Context) *postgres.Store
	Redis(ctx context.Context) *goredis.Client
	Vault(ctx context.Context) *vault.Vault
	Stores(ctx context.Context) (redemption.Store, event.Store)
	Secret(ctx context.Context, field, fallbackKey string) string
}

type factory struct {
	dbOnce, pgOnce, redisOnce, vaultOnce, storesOnce sync.Once

	db      *sql.DB
	pg      *postgres.Store
	redis   *goredis.Client
	vault   *vault.Vault
	tickets redemption.Store
	events  event.Store
}

func NewFactory() Factory {
	return &factory{}
}

func (f *factory) DB(ctx context.Context) *sql.DB {
	f.dbOnce.Do(func() {
		sqlDB, err := sql.Open("mysql", viper.GetString(config.DBURL))
		if err != nil {
			logger.Fatalf(ctx, "Error creating connection pool: %+v", err)
		}
		pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
		defer cancel()
		if err := sqlDB.PingContext(pingCtx); err != nil {
			logger.Fatalf(ctx, "Could not establish connection to the DB: %+v", err)
		}
		f.db = sqlDB
	})
	return f.db
}

func (f *factory) Postgres(ctx context.Context) *postgres.Store {
	f.pgOnce.Do(func() {
		connCtx, cancel := context.WithTimeout(ctx, connectTimeout)
		defer cancel()
		store, err := postgres.Connect(connCtx, viper.GetString(config.PostgresDSN))
		if err != nil {
			logger.Fatalf(ctx, "Could not establish connection to postgres: %+v", err)
		}
		f.pg = store
	})
	return f.pg
}

func (f *factory) Redis(ctx context.Context) *goredis.Client {
	f.redisOnce.Do(func() {
		client := goredis.NewClient(&goredis.Options{
			Addr:     viper.GetString(config.RedisAddress),
			Password: viper.GetString(config.RedisPassword),
			DB:       viper.GetInt(config.RedisDB),
		})
		if err := client.Ping().Err(); err != nil {
			logger.Fatalf(ctx, "Could not establish connection to redis: %+v", err)
		}
		f.redis = client
	})
	return f.redis
}

// Vault returns nil when no vault address is configured.
func (f *factory) Vault(ctx context.Context) *vault.Vault {
	f.vaultOnce.Do(func() {
		address := viper.GetString(config.VaultAddress)
		if address == "" {
			return
		}
		v, err := vault.New(viper.GetString(config.VaultToken), address, viper.GetString(config.VaultSecretPath))
		if err != nil {
			logger.Fatalf(ctx, "vault: error creating vault client: %+v", err)
		}
		f.vault = v
	})
	return f.vault
}

// Secret reads field from vault when it is configured, otherwise the config
// value under fallbackKey.
func (f *factory) Secret(ctx context.Context, field, fallbackKey string) string {
	if v := f.Vault(ctx); v != nil {
		secret, err := v.Secret(field)
		if err != nil {
			logger.Fatalf(ctx, "secret: unable to read %s from vault: %+v", field, err)
		}
		return secret
	}
	return viper.GetString(fallbackKey)
}

// Stores selects the record stores from storage.backend. Events live in mysql
// when it is configured and in memory otherwise.
func (f *factory) Stores(ctx context.Context) (redemption.Store, event.Store) {
	f.storesOnce.Do(func() {
		backend := viper.GetString(config.StorageBackend)
		switch backend {
		case config.BackendMemory:
			m := memory.New()
			f.tickets, f.events = m, m
			return
		case config.BackendMySQL:
			s := f.mysql(ctx)
			f.tickets, f.events = s, s
			return
		case config.BackendPostgres:
			pg := f.Postgres(ctx)
			if err := pg.Migrate(ctx); err != nil {
				logger.Fatalf(ctx, "stores: %+v", err)
			}
			f.tickets = pg
		case config.BackendRedis:
			f.tickets = redisstore.New(f.Redis(ctx))
		default:
			logger.Fatalf(ctx, "stores: unknown storage backend %q", backend)
		}

		if viper.GetString(config.DBURL) != "" {
			f.events = f.mysql(ctx)
		} else {
			f.events = memory.New()
		}
	})
	return f.tickets, f.events
}

func (f *factory) mysql(ctx context.Context) *mysql.Store {
	s := mysql.New(f.DB(ctx))
	if err := s.Migrate(ctx); err != nil {
		logger.Fatalf(ctx, "stores: %+v", err)
	}
	return s
}
