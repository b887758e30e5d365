// Package store implements normalize.Repository on Postgres.
package store

import (
	"context"
	"database/sql"
	"fmt"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListSources(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT purchase_source
		FROM items
		ORDER BY purchase_source ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying purchase sources: %w", err)
	}
	defer rows.Close()

	var sources []string

	for rows.Next() {
		var source string
		if err := rows.Scan(&source); err != nil {
			return nil, fmt.Errorf("scanning purchase source: %w", err)
		}

		sources = append(sources, source)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating purchase sources: %w", err)
	}

	return sources, nil
}

func (s *Store) UpdateSource(ctx context.Context, from, to string) (int64, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE items
		SET purchase_source = $1, updated_at = now()
		WHERE purchase_source = $2`, to, from)
	if err != nil {
		return 0, fmt.Errorf("updating purchase source: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting updated items: %w", err)
	}

	return n, nil
}
