package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/feral-file/ff-referral/internal/domain"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL             string        `mapstructure:"url"`
	StreamName      string        `mapstructure:"stream_name"`
	ConsumerName    string        `mapstructure:"consumer_name"`
	MaxReconnects   int           `mapstructure:"max_reconnects"`
	ReconnectWait   time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName  string        `mapstructure:"connection_name"`
	AckWait         time.Duration `mapstructure:"ack_wait"`
	MaxDeliver      int           `mapstructure:"max_deliver"`
	DuplicateWindow time.Duration `mapstructure:"duplicate_window"`
	Concurrency     int           `mapstructure:"concurrency"`
}

// TemporalConfig holds Temporal configuration
type TemporalConfig struct {
	HostPort                           string  `mapstructure:"host_port"`
	Namespace                          string  `mapstructure:"namespace"`
	TaskQueue                          string  `mapstructure:"task_queue"`
	MaxConcurrentActivityExecutionSize int     `mapstructure:"max_concurrent_activity_execution_size"`
	WorkerActivitiesPerSecond          float64 `mapstructure:"worker_activities_per_second"`
	MaxConcurrentActivityTaskPollers   int     `mapstructure:"max_concurrent_activity_task_pollers"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	IdleTimeout    time.Duration `mapstructure:"idle_timeout"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	JWTIssuer    string   `mapstructure:"jwt_issuer"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// RateLimitConfig holds API rate limiting configuration
type RateLimitConfig struct {
	// RequestsPerMinute per user or client IP, 0 disables limiting
	RequestsPerMinute   int    `mapstructure:"requests_per_minute"`
	Burst               int    `mapstructure:"burst"`
	RedisAddr           string `mapstructure:"redis_addr"`
	RedisPassword       string `mapstructure:"redis_password"`
	RedisDB             int    `mapstructure:"redis_db"`
	RedisKeyPrefix      string `mapstructure:"redis_key_prefix"`
	EnableLocalFallback bool   `mapstructure:"enable_local_fallback"`
}

// CommissionConfig holds the commission rate table
type CommissionConfig struct {
	// UplineRates are the level 1..3 rates, nearest referrer first
	UplineRates []float64 `mapstructure:"upline_rates"`
	// DefaultCashbackRate is assigned to users created on demand
	DefaultCashbackRate string `mapstructure:"default_cashback_rate"`
}

// CashbackRate parses the default cashback rate
func (c *CommissionConfig) CashbackRate() (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(c.DefaultCashbackRate)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid commission.default_cashback_rate %q: %w", c.DefaultCashbackRate, err)
	}
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.Zero, fmt.Errorf("%w: %s", domain.ErrInvalidCashbackRate, rate)
	}
	return rate, nil
}

// EVMConfig holds the EVM distributor contract configuration
type EVMConfig struct {
	RPCURL          string `mapstructure:"rpc_url"`
	ChainID         int64  `mapstructure:"chain_id"`
	ContractAddress string `mapstructure:"contract_address"`
	// PrivateKey signs root updates; empty disables publishing on EVM
	PrivateKey string `mapstructure:"private_key"`
}

// SVMConfig holds the SVM distributor program configuration
type SVMConfig struct {
	RPCURL string `mapstructure:"rpc_url"`
	// RootAccount is the account holding the committed root
	RootAccount string `mapstructure:"root_account"`
}

// OnchainConfig holds the on-chain collaborator configuration
type OnchainConfig struct {
	EVM           EVMConfig     `mapstructure:"evm"`
	SVM           SVMConfig     `mapstructure:"svm"`
	VerifyTimeout time.Duration `mapstructure:"verify_timeout"`
}

// Contracts maps every configured chain to its contract address or root account
func (c *OnchainConfig) Contracts() map[domain.Chain]string {
	contracts := make(map[domain.Chain]string)
	if c.EVM.ContractAddress != "" {
		contracts[domain.ChainEVM] = c.EVM.ContractAddress
	}
	if c.SVM.RootAccount != "" {
		contracts[domain.ChainSVM] = c.SVM.RootAccount
	}
	return contracts
}

// RootSweeperConfig holds configuration for the root sweeper
type RootSweeperConfig struct {
	// Markets are "chain:token" pairs, e.g. "evm:USDT"
	Markets         []string      `mapstructure:"markets"`
	Interval        time.Duration `mapstructure:"interval"`
	WorkerPoolSize  int           `mapstructure:"worker_pool_size"`
	WorkflowTimeout time.Duration `mapstructure:"workflow_timeout"`
}

// ParseMarkets parses the configured markets
func (c *RootSweeperConfig) ParseMarkets() ([]domain.Market, error) {
	markets := make([]domain.Market, 0, len(c.Markets))
	for _, raw := range c.Markets {
		chainPart, token, ok := strings.Cut(strings.TrimSpace(raw), ":")
		if !ok || token == "" {
			return nil, fmt.Errorf("invalid market %q, expected chain:token", raw)
		}
		chain, err := domain.ParseChain(chainPart)
		if err != nil {
			return nil, fmt.Errorf("invalid market %q: %w", raw, err)
		}
		markets = append(markets, domain.Market{Chain: chain, Token: token})
	}
	return markets, nil
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Temporal   TemporalConfig   `mapstructure:"temporal"`
	NATS       NATSConfig       `mapstructure:"nats"`
	Auth       AuthConfig       `mapstructure:"auth"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`
	Commission CommissionConfig `mapstructure:"commission"`
	Onchain    OnchainConfig    `mapstructure:"onchain"`
}

// WorkerCoreConfig holds configuration for worker-core
type WorkerCoreConfig struct {
	BaseConfig       `mapstructure:",squash"`
	Database         DatabaseConfig   `mapstructure:"database"`
	Temporal         TemporalConfig   `mapstructure:"temporal"`
	Commission       CommissionConfig `mapstructure:"commission"`
	Onchain          OnchainConfig    `mapstructure:"onchain"`
	PublishRoots     bool             `mapstructure:"publish_roots"`
	TradeMaxAttempts int32            `mapstructure:"trade_max_attempts"`
}

// TradeBridgeConfig holds configuration for trade-bridge
type TradeBridgeConfig struct {
	BaseConfig         `mapstructure:",squash"`
	Database           DatabaseConfig `mapstructure:"database"`
	NATS               NATSConfig     `mapstructure:"nats"`
	Temporal           TemporalConfig `mapstructure:"temporal"`
	WorkflowRunTimeout time.Duration  `mapstructure:"workflow_run_timeout"`
}

// RootSweeperServiceConfig holds configuration for root-sweeper
type RootSweeperServiceConfig struct {
	BaseConfig  `mapstructure:",squash"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Temporal    TemporalConfig    `mapstructure:"temporal"`
	RootSweeper RootSweeperConfig `mapstructure:"root_sweeper"`
}

// setDatabaseDefaults sets the defaults every service shares
func setDatabaseDefaults(v *viper.Viper) {
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 20)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
}

func setTemporalDefaults(v *viper.Viper) {
	v.SetDefault("temporal.host_port", "localhost:7233")
	v.SetDefault("temporal.namespace", "default")
	v.SetDefault("temporal.task_queue", "referral-core")
}

func setCommissionDefaults(v *viper.Viper) {
	v.SetDefault("commission.upline_rates", []float64{0.30, 0.03, 0.02})
	v.SetDefault("commission.default_cashback_rate", "0")
	v.SetDefault("onchain.verify_timeout", "10s")
}

func setNATSDefaults(v *viper.Viper) {
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "REFERRAL_EVENTS")
	v.SetDefault("nats.duplicate_window", "2m")
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.idle_timeout", "120s")
	v.SetDefault("nats.connection_name", "referral-api")
	v.SetDefault("rate_limit.requests_per_minute", 60)
	v.SetDefault("rate_limit.enable_local_fallback", true)
	setDatabaseDefaults(v)
	setTemporalDefaults(v)
	setCommissionDefaults(v)
	setNATSDefaults(v)

	var cfg APIConfig
	if err := load(v, &cfg); err != nil {
		return nil, err
	}

	if err := validateDatabase(&cfg.Database); err != nil {
		return nil, err
	}
	if _, err := cfg.Commission.CashbackRate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadWorkerCoreConfig loads configuration for worker-core
func LoadWorkerCoreConfig(configFile string, envPath string) (*WorkerCoreConfig, error) {
	v := configureViper("worker-core", configFile, envPath)

	setDatabaseDefaults(v)
	setTemporalDefaults(v)
	setCommissionDefaults(v)
	v.SetDefault("temporal.max_concurrent_activity_execution_size", 50)
	v.SetDefault("temporal.worker_activities_per_second", 50)
	v.SetDefault("temporal.max_concurrent_activity_task_pollers", 10)
	v.SetDefault("publish_roots", false)
	v.SetDefault("trade_max_attempts", 5)

	var cfg WorkerCoreConfig
	if err := load(v, &cfg); err != nil {
		return nil, err
	}

	if err := validateDatabase(&cfg.Database); err != nil {
		return nil, err
	}
	if _, err := cfg.Commission.CashbackRate(); err != nil {
		return nil, err
	}
	if cfg.PublishRoots && cfg.Onchain.EVM.RPCURL == "" && cfg.Onchain.SVM.RPCURL == "" {
		return nil, errors.New("publish_roots requires onchain.evm.rpc_url or onchain.svm.rpc_url")
	}

	return &cfg, nil
}

// LoadTradeBridgeConfig loads configuration for trade-bridge
func LoadTradeBridgeConfig(configFile string, envPath string) (*TradeBridgeConfig, error) {
	v := configureViper("trade-bridge", configFile, envPath)

	setDatabaseDefaults(v)
	setTemporalDefaults(v)
	setNATSDefaults(v)
	v.SetDefault("nats.consumer_name", "trade-bridge")
	v.SetDefault("nats.connection_name", "trade-bridge")
	v.SetDefault("nats.ack_wait", "30s")
	v.SetDefault("nats.max_deliver", 5)
	v.SetDefault("nats.concurrency", 16)
	v.SetDefault("workflow_run_timeout", "10m")

	var cfg TradeBridgeConfig
	if err := load(v, &cfg); err != nil {
		return nil, err
	}

	if err := validateDatabase(&cfg.Database); err != nil {
		return nil, err
	}
	if cfg.NATS.URL == "" {
		return nil, errors.New("nats.url is required")
	}

	return &cfg, nil
}

// LoadRootSweeperConfig loads configuration for root-sweeper
func LoadRootSweeperConfig(configFile string, envPath string) (*RootSweeperServiceConfig, error) {
	v := configureViper("root-sweeper", configFile, envPath)

	setDatabaseDefaults(v)
	setTemporalDefaults(v)
	v.SetDefault("database.max_open_conns", 5)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("root_sweeper.interval", "5m")
	v.SetDefault("root_sweeper.worker_pool_size", 4)
	v.SetDefault("root_sweeper.workflow_timeout", "10m")

	var cfg RootSweeperServiceConfig
	if err := load(v, &cfg); err != nil {
		return nil, err
	}

	if err := validateDatabase(&cfg.Database); err != nil {
		return nil, err
	}
	if len(cfg.RootSweeper.Markets) == 0 {
		return nil, errors.New("root_sweeper.markets is required")
	}
	if _, err := cfg.RootSweeper.ParseMarkets(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// load reads the optional config file and unmarshals it over the defaults and environment
func load(v *viper.Viper, cfg interface{}) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// no config file, rely on environment variables
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return nil
}

func validateDatabase(db *DatabaseConfig) error {
	if db.Host == "" {
		return errors.New("database.host is required")
	}
	if db.DBName == "" {
		return errors.New("database.dbname is required")
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix("FF_REFERRAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.consumer_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		"nats.ack_wait",
		"nats.max_deliver",
		"nats.duplicate_window",
		"nats.concurrency",
		// Temporal
		"temporal.host_port",
		"temporal.namespace",
		"temporal.task_queue",
		"temporal.max_concurrent_activity_execution_size",
		"temporal.worker_activities_per_second",
		"temporal.max_concurrent_activity_task_pollers",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.allowed_origins",
		// Auth
		"auth.jwt_public_key",
		"auth.jwt_issuer",
		"auth.api_keys",
		// Rate limit
		"rate_limit.requests_per_minute",
		"rate_limit.burst",
		"rate_limit.redis_addr",
		"rate_limit.redis_password",
		"rate_limit.redis_db",
		"rate_limit.redis_key_prefix",
		"rate_limit.enable_local_fallback",
		// Commission
		"commission.upline_rates",
		"commission.default_cashback_rate",
		// On-chain
		"onchain.evm.rpc_url",
		"onchain.evm.chain_id",
		"onchain.evm.contract_address",
		"onchain.evm.private_key",
		"onchain.svm.rpc_url",
		"onchain.svm.root_account",
		"onchain.verify_timeout",
		// Worker specific
		"publish_roots",
		"trade_max_attempts",
		// Bridge specific
		"workflow_run_timeout",
		// Root sweeper
		"root_sweeper.markets",
		"root_sweeper.interval",
		"root_sweeper.worker_pool_size",
		"root_sweeper.workflow_timeout",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Shared base first, then local, then the optional per-service local file
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		_ = godotenv.Overload(filepath.Join(envPath, envFile))
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// MerkleToolConfig holds configuration for the merkle-tool snapshot commands
type MerkleToolConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
	Onchain    OnchainConfig  `mapstructure:"onchain"`
}

// LoadMerkleToolConfig loads configuration for merkle-tool
func LoadMerkleToolConfig(configFile string, envPath string) (*MerkleToolConfig, error) {
	v := configureViper("merkle-tool", configFile, envPath)

	setDatabaseDefaults(v)
	v.SetDefault("database.max_open_conns", 2)
	v.SetDefault("database.max_idle_conns", 1)
	v.SetDefault("onchain.verify_timeout", "10s")

	var cfg MerkleToolConfig
	if err := load(v, &cfg); err != nil {
		return nil, err
	}

	if err := validateDatabase(&cfg.Database); err != nil {
		return nil, err
	}

	return &cfg, nil
}
