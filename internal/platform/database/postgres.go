package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"
)

type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

const (
	maxRetries   = 10
	retryBackoff = 2 * time.Second
	pingTimeout  = 3 * time.Second
)

// Connect opens a pooled connection to postgres, retrying while the
// database container comes up.
func Connect(ctx context.Context, cfg Config) (*sql.DB, error) {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	for i := 1; i <= maxRetries; i++ {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		err = db.PingContext(pingCtx)
		cancel()

		if err == nil {
			log.Println("Database connected successfully!")
			return db, nil
		}

		log.Printf("Database not ready (attempt %d/%d): %v", i, maxRetries, err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryBackoff):
		}
	}

	return nil, fmt.Errorf("failed to connect to database: %w", err)
}
