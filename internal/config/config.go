package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultContractAddress is used when CAPY_CONTRACT_ADDRESS is unset.
const DefaultContractAddress = "0x36c37bf5fa363357720f8b231afc1d736d361832d61ff6bee66718001b7c6ede"

// Config holds all configuration values
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Chain    ChainConfig
	Wallet   WalletConfig
	Security SecurityConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds database configuration. Driver is "sqlite" or
// "postgres"; SQLitePath is used only for the sqlite driver.
type DatabaseConfig struct {
	Driver     string
	SQLitePath string
	Host       string
	Port       int
	User       string
	Password   string
	DBName     string
	SSLMode    string
}

// URL returns the postgres connection URL
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string
	PASSWORD string
}

// JWTConfig holds session token configuration
type JWTConfig struct {
	Secret        string
	SessionExpiry time.Duration
}

// ChainConfig holds fullnode and contract configuration
type ChainConfig struct {
	NodeURL         string
	ContractAddress string
	TxWaitTimeout   time.Duration
	TxPollInterval  time.Duration
	CatalogSyncTick time.Duration
}

// ContractDeployed reports whether the configured address looks like a real
// deployment rather than a placeholder.
func (c ChainConfig) ContractDeployed() bool {
	addr := strings.TrimSpace(c.ContractAddress)
	return addr != "" && addr != "0x123" && len(addr) >= 60
}

// ContractModule returns the fully qualified module id, e.g. "0x36c3...::capy".
func (c ChainConfig) ContractModule() string {
	return c.ContractAddress + "::capy"
}

// WalletConfig holds the wallet bridge endpoint. An empty URL means no wallet
// is reachable, the equivalent of a missing browser extension.
type WalletConfig struct {
	BridgeURL string
	Timeout   time.Duration
}

// SecurityConfig holds encryption keys
type SecurityConfig struct {
	SessionEncryptionKey string
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("SERVER_ENV", "development"),
		},
		Database: DatabaseConfig{
			Driver:     getEnv("DB_DRIVER", "sqlite"),
			SQLitePath: getEnv("DB_SQLITE_PATH", "capy.db"),
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnvAsInt("DB_PORT", 5432),
			User:       getEnv("DB_USER", "postgres"),
			Password:   getEnv("DB_PASSWORD", "postgres"),
			DBName:     getEnv("DB_NAME", "capy"),
			SSLMode:    getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			PASSWORD: getEnv("REDIS_PASSWORD", ""),
		},
		JWT: JWTConfig{
			Secret:        getEnv("JWT_SECRET", "change-this-in-production"),
			SessionExpiry: getEnvAsDuration("SESSION_EXPIRY", 24*time.Hour),
		},
		Chain: ChainConfig{
			NodeURL:         getEnv("APTOS_NODE_URL", "https://fullnode.testnet.aptoslabs.com"),
			ContractAddress: getEnv("CAPY_CONTRACT_ADDRESS", DefaultContractAddress),
			TxWaitTimeout:   getEnvAsDuration("TX_WAIT_TIMEOUT", 60*time.Second),
			TxPollInterval:  getEnvAsDuration("TX_POLL_INTERVAL", time.Second),
			CatalogSyncTick: getEnvAsDuration("CATALOG_SYNC_INTERVAL", 5*time.Minute),
		},
		Wallet: WalletConfig{
			BridgeURL: getEnv("WALLET_BRIDGE_URL", ""),
			Timeout:   getEnvAsDuration("WALLET_BRIDGE_TIMEOUT", 2*time.Minute),
		},
		Security: SecurityConfig{
			SessionEncryptionKey: getEnv("SESSION_ENCRYPTION_KEY", "0000000000000000000000000000000000000000000000000000000000000000"), // 32-bytes hex string
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
