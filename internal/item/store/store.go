package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/padraigob/resold/internal/item"
	"github.com/padraigob/resold/internal/money"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectItemColumns = `
	i.id, i.name, i.sku, i.description, i.purchase_price, i.purchase_date, i.purchase_source,
	i.status, i.listed_date, i.sale_price, i.sale_date, i.sold_marketplace, i.notes,
	i.lot_id, i.created_at, i.updated_at
`

// scanItem reads an item row in selectItemColumns order.
func scanItem(s scanner) (*item.Item, error) {
	var it item.Item

	var (
		sku, description, notes sql.NullString
		statusStr               string
		soldMarketplace         sql.NullString
		salePrice               sql.NullInt64
	)

	if err := s.Scan(
		&it.ID, &it.Name, &sku, &description, &it.PurchasePrice, &it.PurchaseDate, &it.PurchaseSource,
		&statusStr, &it.ListedDate, &salePrice, &it.SaleDate, &soldMarketplace, &notes,
		&it.LotID, &it.CreatedAt, &it.UpdatedAt,
	); err != nil {
		return nil, err
	}

	it.SKU = sku.String
	it.Description = description.String
	it.Notes = notes.String
	it.Status = item.Status(statusStr)

	if salePrice.Valid {
		sp := money.Amount(salePrice.Int64)
		it.SalePrice = &sp
	}

	if soldMarketplace.Valid {
		mp := item.Marketplace(soldMarketplace.String)
		it.SoldMarketplace = &mp
	}

	return &it, nil
}

func (s *Store) CreateItem(ctx context.Context, it *item.Item) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertItem(ctx, tx, it); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing item: %w", err)
	}

	return nil
}

func (s *Store) CreateItems(ctx context.Context, items []*item.Item) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, it := range items {
		if err := insertItem(ctx, tx, it); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing items: %w", err)
	}

	return nil
}

func insertItem(ctx context.Context, tx *sql.Tx, it *item.Item) error {
	query := `
		INSERT INTO items
			(name, sku, description, purchase_price, purchase_date, purchase_source, status,
			 listed_date, sale_price, sale_date, sold_marketplace, notes, lot_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := tx.QueryRowContext(ctx, query,
		it.Name, nullString(it.SKU), nullString(it.Description),
		it.PurchasePrice, it.PurchaseDate, it.PurchaseSource, it.Status,
		it.ListedDate, nullAmount(it.SalePrice), it.SaleDate, nullMarketplace(it.SoldMarketplace),
		nullString(it.Notes), it.LotID,
	).Scan(&it.ID, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating item: %w", err)
	}

	return insertListings(ctx, tx, it)
}

func insertListings(ctx context.Context, tx *sql.Tx, it *item.Item) error {
	query := `
		INSERT INTO listings (item_id, marketplace, listing_url, listing_date, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	for i := range it.Listings {
		l := &it.Listings[i]
		l.ItemID = it.ID

		err := tx.QueryRowContext(ctx, query, l.ItemID, l.Marketplace, l.URL, l.ListingDate).
			Scan(&l.ID, &l.CreatedAt)
		if err != nil {
			return fmt.Errorf("creating listing: %w", err)
		}
	}

	return nil
}

func (s *Store) GetItem(ctx context.Context, id uuid.UUID) (*item.Item, error) {
	query := `SELECT ` + selectItemColumns + ` FROM items i WHERE i.id = $1`

	it, err := scanItem(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("item %s: %w", id, item.ErrNotFound)
		}

		return nil, fmt.Errorf("getting item: %w", err)
	}

	if err := s.loadListings(ctx, []*item.Item{it}); err != nil {
		return nil, err
	}

	return it, nil
}

func (s *Store) ListItems(ctx context.Context, filter item.ListFilter) ([]*item.Item, error) {
	query := `SELECT DISTINCT ` + selectItemColumns + `
		FROM items i
		LEFT JOIN listings l ON l.item_id = i.id`

	var (
		clauses []string
		args    []any
	)

	argIdx := 1

	if filter.Status != nil {
		clauses = append(clauses, fmt.Sprintf("i.status = $%d", argIdx))

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.Marketplace != nil {
		clauses = append(clauses, fmt.Sprintf("l.marketplace = $%d", argIdx))

		args = append(args, *filter.Marketplace)
		argIdx++
	}

	if filter.ListingURL != nil {
		clauses = append(clauses, fmt.Sprintf("l.listing_url ILIKE $%d", argIdx))

		args = append(args, "%"+*filter.ListingURL+"%")
		argIdx++
	}

	if filter.Search != nil {
		clauses = append(clauses, fmt.Sprintf("(i.name ILIKE $%d OR l.listing_url ILIKE $%d)", argIdx, argIdx+1))

		args = append(args, "%"+*filter.Search+"%", "%"+*filter.Search+"%")
		argIdx += 2
	}

	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	query += " ORDER BY i.created_at DESC, i.id DESC"

	if filter.Limit != nil {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)

		args = append(args, *filter.Limit)
		argIdx++
	}

	if filter.Offset != nil {
		query += fmt.Sprintf(" OFFSET $%d", argIdx)

		args = append(args, *filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []*item.Item

	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}

		items = append(items, it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating item rows: %w", err)
	}

	if err := s.loadListings(ctx, items); err != nil {
		return nil, err
	}

	return items, nil
}

func (s *Store) loadListings(ctx context.Context, items []*item.Item) error {
	if len(items) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*item.Item, len(items))
	placeholders := make([]string, len(items))
	args := make([]any, len(items))

	for i, it := range items {
		byID[it.ID] = it
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = it.ID
	}

	query := `
		SELECT id, item_id, marketplace, listing_url, listing_date, created_at
		FROM listings
		WHERE item_id IN (` + strings.Join(placeholders, ", ") + `)
		ORDER BY created_at ASC, id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("loading listings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var l item.Listing

		var marketplace string

		if err := rows.Scan(&l.ID, &l.ItemID, &marketplace, &l.URL, &l.ListingDate, &l.CreatedAt); err != nil {
			return fmt.Errorf("scanning listing: %w", err)
		}

		l.Marketplace = item.Marketplace(marketplace)

		if it, ok := byID[l.ItemID]; ok {
			it.Listings = append(it.Listings, l)
		}
	}

	return rows.Err()
}

// UpdateItem persists the item and rewrites its listing set in one
// transaction, so the status and listings can never drift apart.
func (s *Store) UpdateItem(ctx context.Context, it *item.Item) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE items
		SET name = $1, sku = $2, description = $3, purchase_price = $4, purchase_date = $5,
		    purchase_source = $6, status = $7, listed_date = $8, sale_price = $9, sale_date = $10,
		    sold_marketplace = $11, notes = $12, lot_id = $13, updated_at = NOW()
		WHERE id = $14
	`

	res, err := tx.ExecContext(ctx, query,
		it.Name, nullString(it.SKU), nullString(it.Description), it.PurchasePrice, it.PurchaseDate,
		it.PurchaseSource, it.Status, it.ListedDate, nullAmount(it.SalePrice), it.SaleDate,
		nullMarketplace(it.SoldMarketplace), nullString(it.Notes), it.LotID, it.ID,
	)
	if err != nil {
		return fmt.Errorf("updating item: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("item %s: %w", it.ID, item.ErrNotFound)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM listings WHERE item_id = $1", it.ID); err != nil {
		return fmt.Errorf("clearing listings: %w", err)
	}

	if err := insertListings(ctx, tx, it); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing item update: %w", err)
	}

	return nil
}

func (s *Store) DeleteItem(ctx context.Context, id uuid.UUID) error {
	// Listings go with the item via ON DELETE CASCADE.
	res, err := s.db.ExecContext(ctx, "DELETE FROM items WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("item %s: %w", id, item.ErrNotFound)
	}

	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullAmount(a *money.Amount) sql.NullInt64 {
	if a == nil {
		return sql.NullInt64{}
	}

	return sql.NullInt64{Int64: int64(*a), Valid: true}
}

func nullMarketplace(m *item.Marketplace) sql.NullString {
	if m == nil {
		return sql.NullString{}
	}

	return sql.NullString{String: string(*m), Valid: true}
}
