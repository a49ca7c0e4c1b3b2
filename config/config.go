package config

import (
	"time"

	"github.com/spf13/viper"
)

const (
	Port     = "server.port"
	LogLevel = "server.log_level"

	StorageBackend = "storage.backend"
	DBURL          = "database.mysql"
	PostgresDSN    = "database.postgres"

	RedisAddress  = "redis.address"
	RedisPassword = "redis.password"
	RedisDB       = "redis.db"

	VaultAddress    = "vault.address"
	VaultToken      = "vault.token"
	VaultSecretPath = "vault.secret_path"

	LocatorScheme  = "locator.scheme"
	LocatorBaseURL = "locator.base_url"
	LocatorSecret  = "locator.secret"
	LocatorTTL     = "locator.ttl"
	QRSize         = "locator.qr_size"

	CatalogPath    = "sale.catalog_path"
	CurrencyPolicy = "sale.currency_policy"

	StaffSessionSecret = "staff.session_secret"
	StaffSessionTTL    = "staff.session_ttl"
	StaffTOTPSecrets   = "staff.totp_secrets"

	ValidateRPS   = "ratelimit.validate_rps"
	ValidateBurst = "ratelimit.validate_burst"
)

// Storage backends accepted by StorageBackend.
const (
	BackendMemory   = "memory"
	BackendMySQL    = "mysql"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Vault field names holding the signing keys under VaultSecretPath.
const (
	VaultLocatorKey = "locator_secret"
	VaultStaffKey   = "staff_session_secret"
)

func init() {
	viper.AutomaticEnv()
	viper.SetDefault(Port, ":9000")
	viper.SetDefault(LogLevel, "info")
	viper.SetDefault(StorageBackend, BackendMemory)
	viper.SetDefault(RedisDB, 0)
	viper.SetDefault(VaultSecretPath, "secret/ticketing")
	viper.SetDefault(LocatorScheme, "plain")
	viper.SetDefault(LocatorBaseURL, "https://localhost:9000/v1/validate")
	viper.SetDefault(LocatorTTL, time.Duration(0))
	viper.SetDefault(QRSize, 256)
	viper.SetDefault(CatalogPath, "./currencies.yaml")
	viper.SetDefault(CurrencyPolicy, "permissive")
	viper.SetDefault(StaffSessionTTL, 12*time.Hour)
	viper.SetDefault(ValidateRPS, 20)
	viper.SetDefault(ValidateBurst, 40)
}
