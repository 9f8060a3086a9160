package store

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var testDB *gorm.DB

// TestMain connects to TEST_DB_HOST when set, otherwise to a throwaway PostgreSQL container
func TestMain(m *testing.M) {
	ctx := context.Background()

	dsn, terminate, err := testDSN(ctx)
	if err != nil {
		log.Fatalf("test database: %v", err)
	}

	code := 1
	if err := openTestDB(dsn); err != nil {
		log.Printf("test database: %v", err)
	} else {
		code = m.Run()
	}

	terminate()
	os.Exit(code)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDSN returns the connection string and a func that releases the database
func testDSN(ctx context.Context) (string, func(), error) {
	if host := os.Getenv("TEST_DB_HOST"); host != "" {
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			host,
			envOr("TEST_DB_PORT", "5432"),
			envOr("TEST_DB_USER", "postgres"),
			envOr("TEST_DB_PASSWORD", "postgres"),
			envOr("TEST_DB_NAME", "referral_test"))
		log.Printf("using external database %s", host)
		return dsn, func() {}, nil
	}

	container, err := postgres.Run(ctx,
		"postgres:18-alpine",
		postgres.WithDatabase("referral_test"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return "", nil, fmt.Errorf("start container: %w", err)
	}
	terminate := func() {
		if err := container.Terminate(ctx); err != nil {
			log.Printf("terminate container: %v", err)
		}
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		terminate()
		return "", nil, fmt.Errorf("connection string: %w", err)
	}
	return dsn, terminate, nil
}

// openTestDB connects and applies db/init_pg_db.sql
func openTestDB(dsn string) error {
	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}

	schemaSQL, err := os.ReadFile(filepath.Join("..", "..", "db", "init_pg_db.sql")) //nolint:gosec,G304
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}
	if err := db.Exec(string(schemaSQL)).Error; err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}

	testDB = db
	return nil
}

// initPGTestDB wraps every test in a transaction that is rolled back on cleanup.
// Store methods that open their own transaction run as savepoints inside it.
func initPGTestDB(t *testing.T) Store {
	tx := testDB.Begin()
	require.NoError(t, tx.Error)

	t.Cleanup(func() {
		tx.Rollback()
	})

	return NewPGStore(tx)
}

func TestPostgreSQLStore(t *testing.T) {
	require.NotNil(t, testDB, "test database not initialized")

	RunStoreTests(t, initPGTestDB, func(*testing.T) {})
}
