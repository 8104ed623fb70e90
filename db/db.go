package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
)

// DB holds the database connection
var DB *sql.DB

// Schema creates the tables the postgres catalog and booking repositories read.
const Schema = `
CREATE TABLE IF NOT EXISTS catalog_items (
	kind     TEXT    NOT NULL,
	id       TEXT    NOT NULL,
	position INTEGER NOT NULL DEFAULT 0,
	payload  JSONB   NOT NULL,
	PRIMARY KEY (kind, id)
);

CREATE TABLE IF NOT EXISTS bookings (
	id               TEXT PRIMARY KEY,
	patient_id       TEXT NOT NULL DEFAULT '',
	doctor_id        TEXT NOT NULL DEFAULT '',
	patient_name     TEXT NOT NULL DEFAULT '',
	doctor_name      TEXT NOT NULL DEFAULT '',
	date             TEXT NOT NULL,
	time             TEXT NOT NULL,
	status           TEXT NOT NULL DEFAULT 'upcoming',
	speciality       TEXT NOT NULL DEFAULT '',
	appointment_type TEXT NOT NULL DEFAULT '',
	location         TEXT NOT NULL DEFAULT '',
	contact_number   TEXT NOT NULL DEFAULT '',
	created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// InitDB opens the connection pool for connStr, verifies it and applies Schema
func InitDB(ctx context.Context, connStr string, logger *zap.Logger) error {
	conn, err := sql.Open("pgx", connStr)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}
	conn.SetMaxOpenConns(10)
	conn.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		conn.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := conn.ExecContext(ctx, Schema); err != nil {
		conn.Close()
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	DB = conn
	logger.Info("database connection established")
	return nil
}

// CloseDB closes the database connection
func CloseDB() error {
	if DB == nil {
		return nil
	}
	err := DB.Close()
	DB = nil
	return err
}
