package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"go.uber.org/zap"
)

// PostgresCatalog reads one catalog kind from the catalog_items table.
// Each row stores the item as a JSONB payload; position keeps source order.
type PostgresCatalog[T any] struct {
	db     *sql.DB
	kind   string
	logger *zap.Logger
}

// NewPostgresCatalog creates a PostgresCatalog for kind
func NewPostgresCatalog[T any](db *sql.DB, kind string, logger *zap.Logger) *PostgresCatalog[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PostgresCatalog[T]{db: db, kind: kind, logger: logger}
}

// Fetch returns the rows of the catalog in position order. A non-blank query
// narrows the rows with ILIKE over the payload text, which can only return a
// superset of the predicate matches.
func (c *PostgresCatalog[T]) Fetch(ctx context.Context, query string) ([]T, error) {
	stmt, args := buildCatalogQuery(c.kind, query)

	rows, err := c.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		c.logger.Error("failed to query catalog", zap.String("kind", c.kind), zap.Error(err))
		return nil, fmt.Errorf("failed to query catalog %s: %w", c.kind, err)
	}
	defer rows.Close()

	var items []T
	for rows.Next() {
		var id string
		var payload []byte
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, fmt.Errorf("failed to scan catalog row: %w", err)
		}
		var item T
		if err := json.Unmarshal(payload, &item); err != nil {
			return nil, fmt.Errorf("malformed payload for %s/%s: %w", c.kind, id, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate catalog rows: %w", err)
	}

	c.logger.Debug("catalog fetched", zap.String("kind", c.kind), zap.Int("count", len(items)))
	return items, nil
}

func (c *PostgresCatalog[T]) Source() string {
	return "postgres:" + c.kind
}

// Replace overwrites every row of the catalog kind with items, in order
func (c *PostgresCatalog[T]) Replace(ctx context.Context, items []T, idOf func(T) string) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM catalog_items WHERE kind = $1`, c.kind); err != nil {
		return fmt.Errorf("failed to clear catalog %s: %w", c.kind, err)
	}
	for i, item := range items {
		payload, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("failed to encode item: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO catalog_items (kind, id, position, payload) VALUES ($1, $2, $3, $4)`,
			c.kind, idOf(item), i, payload,
		); err != nil {
			return fmt.Errorf("failed to insert %s/%s: %w", c.kind, idOf(item), err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	c.logger.Info("catalog replaced", zap.String("kind", c.kind), zap.Int("count", len(items)))
	return nil
}

// buildCatalogQuery builds the select for kind. Only plain ASCII queries narrow
// the rows: JSON escapes quotes, backslashes and control characters in the
// payload text, and ILIKE folds non-ASCII case by the database collation.
// Other queries fall back to the full list.
func buildCatalogQuery(kind, query string) (string, []interface{}) {
	stmt := `SELECT id, payload FROM catalog_items WHERE kind = $1`
	args := []interface{}{kind}

	q := strings.TrimSpace(query)
	if q != "" && narrowable(q) {
		stmt += ` AND payload::text ILIKE $2`
		args = append(args, "%"+escapeLike(q)+"%")
	}
	stmt += ` ORDER BY position ASC, id ASC`
	return stmt, args
}

func narrowable(q string) bool {
	return !strings.ContainsAny(q, "\"\\") && !strings.ContainsFunc(q, func(r rune) bool {
		return unicode.IsControl(r) || r > unicode.MaxASCII
	})
}

func escapeLike(s string) string {
	return strings.NewReplacer(`%`, `\%`, `_`, `\_`).Replace(s)
}
