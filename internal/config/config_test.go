package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-referral/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	if content == "" {
		return filepath.Join(tmpDir, "nonexistent.yaml")
	}
	configFile := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0600))
	return configFile
}

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
server:
  host: 127.0.0.1
  port: 9090
  read_timeout: 5s
  allowed_origins:
    - https://app.example
rate_limit:
  requests_per_minute: 10
  redis_addr: localhost:6379
auth:
  jwt_issuer: auth.example
  api_keys:
    - key-1
    - key-2
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
nats:
  url: "nats://localhost:4222"
commission:
  upline_rates: [0.2, 0.05]
  default_cashback_rate: "0.1"
onchain:
  evm:
    rpc_url: http://localhost:8545
    chain_id: 8453
    contract_address: "0x0000000000000000000000000000000000000001"
  svm:
    rpc_url: http://localhost:8899
    root_account: 11111111111111111111111111111111
`,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
				assert.Equal(t, []string{"https://app.example"}, cfg.Server.AllowedOrigins)
				assert.Equal(t, "auth.example", cfg.Auth.JWTIssuer)
				assert.Equal(t, 10, cfg.RateLimit.RequestsPerMinute)
				assert.Equal(t, "localhost:6379", cfg.RateLimit.RedisAddr)
				assert.Equal(t, []string{"key-1", "key-2"}, cfg.Auth.APIKeys)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
				assert.Equal(t, "REFERRAL_EVENTS", cfg.NATS.StreamName)
				assert.Equal(t, []float64{0.2, 0.05}, cfg.Commission.UplineRates)
				assert.Equal(t, int64(8453), cfg.Onchain.EVM.ChainID)
				assert.Equal(t, 10*time.Second, cfg.Onchain.VerifyTimeout)

				contracts := cfg.Onchain.Contracts()
				assert.Len(t, contracts, 2)
				assert.Equal(t, "11111111111111111111111111111111", contracts[domain.ChainSVM])
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  dbname: testdb
`,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.False(t, cfg.Debug)
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 120*time.Second, cfg.Server.IdleTimeout)
				assert.Equal(t, "localhost:7233", cfg.Temporal.HostPort)
				assert.Equal(t, "referral-core", cfg.Temporal.TaskQueue)
				assert.Equal(t, []float64{0.30, 0.03, 0.02}, cfg.Commission.UplineRates)
				assert.Empty(t, cfg.Onchain.Contracts())
				assert.Equal(t, 60, cfg.RateLimit.RequestsPerMinute)
				assert.True(t, cfg.RateLimit.EnableLocalFallback)
				assert.Empty(t, cfg.RateLimit.RedisAddr)

				rate, err := cfg.Commission.CashbackRate()
				require.NoError(t, err)
				assert.True(t, rate.IsZero())
			},
		},
		{
			name: "missing database host",
			configFile: `
database:
  dbname: testdb
`,
			expectError: true,
		},
		{
			name: "cashback rate above one",
			configFile: `
database:
  host: localhost
  dbname: testdb
commission:
  default_cashback_rate: "1.5"
`,
			expectError: true,
		},
		{
			name: "cashback rate not a number",
			configFile: `
database:
  host: localhost
  dbname: testdb
commission:
  default_cashback_rate: "ten percent"
`,
			expectError: true,
		},
		{
			name: "invalid port",
			configFile: `
database:
  host: localhost
  dbname: testdb
  port: invalid
`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadAPIConfig(writeConfig(t, tt.configFile), "")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadWorkerCoreConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *WorkerCoreConfig)
	}{
		{
			name: "valid config file",
			configFile: `
database:
  host: localhost
  dbname: testdb
temporal:
  host_port: temporal:7233
  namespace: referral
  task_queue: core
  max_concurrent_activity_execution_size: 20
publish_roots: true
trade_max_attempts: 3
onchain:
  evm:
    rpc_url: http://localhost:8545
    chain_id: 1
    contract_address: "0x0000000000000000000000000000000000000001"
    private_key: "abc"
`,
			validate: func(t *testing.T, cfg *WorkerCoreConfig) {
				assert.Equal(t, "temporal:7233", cfg.Temporal.HostPort)
				assert.Equal(t, "referral", cfg.Temporal.Namespace)
				assert.Equal(t, "core", cfg.Temporal.TaskQueue)
				assert.Equal(t, 20, cfg.Temporal.MaxConcurrentActivityExecutionSize)
				assert.Equal(t, 10, cfg.Temporal.MaxConcurrentActivityTaskPollers)
				assert.True(t, cfg.PublishRoots)
				assert.Equal(t, int32(3), cfg.TradeMaxAttempts)
				assert.Equal(t, "abc", cfg.Onchain.EVM.PrivateKey)
			},
		},
		{
			name: "defaults",
			configFile: `
database:
  host: localhost
  dbname: testdb
`,
			validate: func(t *testing.T, cfg *WorkerCoreConfig) {
				assert.False(t, cfg.PublishRoots)
				assert.Equal(t, int32(5), cfg.TradeMaxAttempts)
				assert.Equal(t, float64(50), cfg.Temporal.WorkerActivitiesPerSecond)
			},
		},
		{
			name: "publishing without any rpc",
			configFile: `
database:
  host: localhost
  dbname: testdb
publish_roots: true
`,
			expectError: true,
		},
		{
			name:        "no config file and no environment",
			configFile:  "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadWorkerCoreConfig(writeConfig(t, tt.configFile), "")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadTradeBridgeConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *TradeBridgeConfig)
	}{
		{
			name: "defaults",
			configFile: `
database:
  host: localhost
  dbname: testdb
nats:
  url: nats://localhost:4222
`,
			validate: func(t *testing.T, cfg *TradeBridgeConfig) {
				assert.Equal(t, "trade-bridge", cfg.NATS.ConsumerName)
				assert.Equal(t, "trade-bridge", cfg.NATS.ConnectionName)
				assert.Equal(t, 30*time.Second, cfg.NATS.AckWait)
				assert.Equal(t, 5, cfg.NATS.MaxDeliver)
				assert.Equal(t, 16, cfg.NATS.Concurrency)
				assert.Equal(t, 2*time.Second, cfg.NATS.ReconnectWait)
				assert.Equal(t, 10*time.Minute, cfg.WorkflowRunTimeout)
			},
		},
		{
			name: "overrides",
			configFile: `
database:
  host: localhost
  dbname: testdb
nats:
  url: nats://nats:4222
  consumer_name: custom
  max_deliver: 10
workflow_run_timeout: 1m
`,
			validate: func(t *testing.T, cfg *TradeBridgeConfig) {
				assert.Equal(t, "custom", cfg.NATS.ConsumerName)
				assert.Equal(t, 10, cfg.NATS.MaxDeliver)
				assert.Equal(t, time.Minute, cfg.WorkflowRunTimeout)
			},
		},
		{
			name: "missing nats url",
			configFile: `
database:
  host: localhost
  dbname: testdb
`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadTradeBridgeConfig(writeConfig(t, tt.configFile), "")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadRootSweeperConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *RootSweeperServiceConfig)
	}{
		{
			name: "valid markets",
			configFile: `
database:
  host: localhost
  dbname: testdb
root_sweeper:
  markets:
    - evm:USDT
    - SVM:USDC
  interval: 30s
`,
			validate: func(t *testing.T, cfg *RootSweeperServiceConfig) {
				assert.Equal(t, 30*time.Second, cfg.RootSweeper.Interval)
				assert.Equal(t, 4, cfg.RootSweeper.WorkerPoolSize)
				assert.Equal(t, 10*time.Minute, cfg.RootSweeper.WorkflowTimeout)
				assert.Equal(t, 5, cfg.Database.MaxOpenConns)

				markets, err := cfg.RootSweeper.ParseMarkets()
				require.NoError(t, err)
				assert.Equal(t, []domain.Market{
					{Chain: domain.ChainEVM, Token: "USDT"},
					{Chain: domain.ChainSVM, Token: "USDC"},
				}, markets)
			},
		},
		{
			name: "no markets",
			configFile: `
database:
  host: localhost
  dbname: testdb
`,
			expectError: true,
		},
		{
			name: "unknown chain",
			configFile: `
database:
  host: localhost
  dbname: testdb
root_sweeper:
  markets: ["tron:USDT"]
`,
			expectError: true,
		},
		{
			name: "market without token",
			configFile: `
database:
  host: localhost
  dbname: testdb
root_sweeper:
  markets: ["evm"]
`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadRootSweeperConfig(writeConfig(t, tt.configFile), "")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestCommissionConfig_CashbackRate(t *testing.T) {
	tests := []struct {
		rate      string
		expectErr error
	}{
		{rate: "0"},
		{rate: "0.25"},
		{rate: "1"},
		{rate: "-0.1", expectErr: domain.ErrInvalidCashbackRate},
		{rate: "1.01", expectErr: domain.ErrInvalidCashbackRate},
	}

	for _, tt := range tests {
		t.Run(tt.rate, func(t *testing.T) {
			cfg := CommissionConfig{DefaultCashbackRate: tt.rate}
			rate, err := cfg.CashbackRate()
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.rate).Equal(rate))
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "testuser",
		Password: "p@ssw0rd!",
		DBName:   "testdb",
		SSLMode:  "require",
	}
	assert.Equal(t, "host=localhost port=5432 user=testuser password=p@ssw0rd! dbname=testdb sslmode=require", cfg.DSN())
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	// godotenv writes to the process environment; t.Setenv restores it afterwards
	for _, key := range []string{
		"FF_REFERRAL_DEBUG",
		"FF_REFERRAL_DATABASE_HOST",
		"FF_REFERRAL_DATABASE_PORT",
		"FF_REFERRAL_DATABASE_DBNAME",
		"FF_REFERRAL_ROOT_SWEEPER_MARKETS",
	} {
		t.Setenv(key, "")
	}

	tmpDir := t.TempDir()
	envDir := filepath.Join(tmpDir, "env")
	require.NoError(t, os.MkdirAll(envDir, 0750))

	envContent := `FF_REFERRAL_DEBUG=true
FF_REFERRAL_DATABASE_HOST=env-host
FF_REFERRAL_DATABASE_PORT=3306
FF_REFERRAL_DATABASE_DBNAME=env-db
`
	require.NoError(t, os.WriteFile(filepath.Join(envDir, ".env"), []byte(envContent), 0600))

	// Service-local file is loaded last
	serviceContent := `FF_REFERRAL_ROOT_SWEEPER_MARKETS=evm:USDT,svm:USDC
`
	require.NoError(t, os.WriteFile(filepath.Join(envDir, ".env.root-sweeper.local"), []byte(serviceContent), 0600))

	configPath := writeConfig(t, `
debug: false
database:
  host: file-host
  port: 5432
  dbname: file-db
root_sweeper:
  markets: ["evm:DAI"]
`)

	cfg, err := LoadRootSweeperConfig(configPath, envDir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.True(t, cfg.Debug)
	assert.Equal(t, "env-host", cfg.Database.Host)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "env-db", cfg.Database.DBName)

	markets, err := cfg.RootSweeper.ParseMarkets()
	require.NoError(t, err)
	assert.Len(t, markets, 2)
}

func TestLoadMerkleToolConfig(t *testing.T) {
	cfg, err := LoadMerkleToolConfig(writeConfig(t, `
database:
  host: localhost
  dbname: testdb
onchain:
  evm:
    rpc_url: http://localhost:8545
    contract_address: "0x0000000000000000000000000000000000000001"
`), "")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Database.MaxOpenConns)
	assert.Equal(t, "http://localhost:8545", cfg.Onchain.EVM.RPCURL)
	assert.Contains(t, cfg.Onchain.Contracts(), domain.ChainEVM)

	_, err = LoadMerkleToolConfig(writeConfig(t, `debug: true`), "")
	assert.Error(t, err)
}
