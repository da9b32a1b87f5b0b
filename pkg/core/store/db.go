package store

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	pool *pgxpool.Pool
	once sync.Once
)

// InitDB initializes the connection pool backing the ratio_reports table
// from the DATABASE_URL environment variable. FINRATIO_DB_MAX_CONNS
// optionally caps the pool size; report traffic is bursty and a small cap
// keeps the analyzer from crowding a shared database. Safe to call more
// than once.
func InitDB(ctx context.Context) error {
	var err error
	once.Do(func() {
		config, cfgErr := buildPoolConfig(os.Getenv("DATABASE_URL"), os.Getenv("FINRATIO_DB_MAX_CONNS"))
		if cfgErr != nil {
			err = cfgErr
			return
		}
		pool, err = pgxpool.NewWithConfig(ctx, config)
	})
	return err
}

func buildPoolConfig(dbURL, maxConns string) (*pgxpool.Config, error) {
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable not set")
	}

	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	if maxConns != "" {
		n, err := strconv.ParseInt(maxConns, 10, 32)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid FINRATIO_DB_MAX_CONNS %q", maxConns)
		}
		config.MaxConns = int32(n)
	}

	return config, nil
}

// GetPool returns the database connection pool, nil when InitDB was never
// called or failed. Callers fall back to the file tier on nil.
func GetPool() *pgxpool.Pool {
	return pool
}

// Close closes the database connection pool.
func Close() {
	if pool != nil {
		pool.Close()
	}
}
