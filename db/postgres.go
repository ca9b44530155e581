package db

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

var DB *sql.DB

var ErrNoDatabaseURL = errors.New("database url is not set")

//go:embed schema.sql
var schema string

func Connect(connStr string) error {
	if connStr == "" {
		return ErrNoDatabaseURL
	}

	var err error
	DB, err = sql.Open("postgres", connStr)
	if err != nil {
		return err
	}

	DB.SetMaxOpenConns(25)
	DB.SetMaxIdleConns(25)
	DB.SetConnMaxLifetime(5 * time.Minute)

	return DB.Ping()
}

// Migrate creates the tables if they do not exist yet.
func Migrate(ctx context.Context) error {
	if _, err := DB.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

func Close() {
	if DB != nil {
		DB.Close()
	}
}
