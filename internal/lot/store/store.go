package store

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/google/uuid"

	"github.com/padraigob/resold/internal/item"
	"github.com/padraigob/resold/internal/lot"
	"github.com/padraigob/resold/internal/money"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetLot(ctx context.Context, id uuid.UUID) (*lot.Lot, error) {
	var l lot.Lot

	err := s.db.QueryRowContext(ctx,
		"SELECT id, total_cost, created_at FROM lots WHERE id = $1", id,
	).Scan(&l.ID, &l.TotalCost, &l.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("lot %s: %w", id, lot.ErrNotFound)
		}

		return nil, fmt.Errorf("getting lot: %w", err)
	}

	return &l, nil
}

const selectMemberColumns = `
	id, name, sku, description, purchase_price, purchase_date, purchase_source,
	status, listed_date, sale_price, sale_date, sold_marketplace, notes,
	lot_id, created_at, updated_at
`

// scanMember reads an item row without its listings; allocation only
// touches prices and membership, listings stay where they are.
func scanMember(rows *sql.Rows) (*item.Item, error) {
	var it item.Item

	var (
		sku, description, notes sql.NullString
		statusStr               string
		soldMarketplace         sql.NullString
		salePrice               sql.NullInt64
	)

	if err := rows.Scan(
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

func (s *Store) GetMembers(ctx context.Context, lotID uuid.UUID) ([]*item.Item, error) {
	query := `SELECT ` + selectMemberColumns + `
		FROM items
		WHERE lot_id = $1
		ORDER BY created_at ASC, id ASC`

	rows, err := s.db.QueryContext(ctx, query, lotID)
	if err != nil {
		return nil, fmt.Errorf("listing lot members: %w", err)
	}
	defer rows.Close()

	return collectMembers(rows)
}

func (s *Store) GetItems(ctx context.Context, ids []uuid.UUID) ([]*item.Item, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))

	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := `SELECT ` + selectMemberColumns + `
		FROM items
		WHERE id IN (` + strings.Join(placeholders, ", ") + `)`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("getting items: %w", err)
	}
	defer rows.Close()

	items, err := collectMembers(rows)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*item.Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}

	// Preserve the requested order and surface missing ids.
	ordered := make([]*item.Item, 0, len(ids))

	for _, id := range ids {
		it, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("item %s: %w", id, item.ErrNotFound)
		}

		ordered = append(ordered, it)
	}

	return ordered, nil
}

func collectMembers(rows *sql.Rows) ([]*item.Item, error) {
	var items []*item.Item

	for rows.Next() {
		it, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}

		items = append(items, it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating item rows: %w", err)
	}

	return items, nil
}

func allocationLockKey(lotID uuid.UUID) int64 {
	h := fnv.New64a()
	h.Write(lotID[:])

	return int64(h.Sum64())
}

type allocationTx struct {
	tx *sql.Tx
}

// BeginAllocation opens the transaction a re-split runs inside. An
// advisory lock keyed on the lot id keeps two allocations of the same lot
// from interleaving.
func (s *Store) BeginAllocation(ctx context.Context, lotID uuid.UUID) (lot.AllocationTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning allocation tx: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", allocationLockKey(lotID)); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("acquiring allocation lock: %w", err)
	}

	return &allocationTx{tx: tx}, nil
}

func (atx *allocationTx) Commit() error   { return atx.tx.Commit() }
func (atx *allocationTx) Rollback() error { return atx.tx.Rollback() }

func (atx *allocationTx) SaveLot(ctx context.Context, l *lot.Lot) error {
	query := `
		INSERT INTO lots (id, total_cost, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (id) DO UPDATE SET total_cost = EXCLUDED.total_cost
		RETURNING created_at
	`

	if err := atx.tx.QueryRowContext(ctx, query, l.ID, l.TotalCost).Scan(&l.CreatedAt); err != nil {
		return fmt.Errorf("saving lot: %w", err)
	}

	return nil
}

// SaveItems upserts every member's row. Existing members only change
// price and lot reference; brand-new items from a lot wizard are inserted
// whole, listings included.
func (atx *allocationTx) SaveItems(ctx context.Context, items []*item.Item) error {
	itemQuery := `
		INSERT INTO items
			(id, name, sku, description, purchase_price, purchase_date, purchase_source, status,
			 listed_date, sale_price, sale_date, sold_marketplace, notes, lot_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE
		SET purchase_price = EXCLUDED.purchase_price, lot_id = EXCLUDED.lot_id, updated_at = NOW()
		RETURNING created_at, updated_at
	`

	listingQuery := `
		INSERT INTO listings (item_id, marketplace, listing_url, listing_date, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (item_id, marketplace) DO UPDATE
		SET listing_url = EXCLUDED.listing_url, listing_date = EXCLUDED.listing_date
		RETURNING id, created_at
	`

	for _, it := range items {
		err := atx.tx.QueryRowContext(ctx, itemQuery,
			it.ID, it.Name, nullString(it.SKU), nullString(it.Description),
			it.PurchasePrice, it.PurchaseDate, it.PurchaseSource, it.Status,
			it.ListedDate, nullAmount(it.SalePrice), it.SaleDate, nullMarketplace(it.SoldMarketplace),
			nullString(it.Notes), it.LotID,
		).Scan(&it.CreatedAt, &it.UpdatedAt)
		if err != nil {
			return fmt.Errorf("saving item %s: %w", it.ID, err)
		}

		for i := range it.Listings {
			l := &it.Listings[i]
			l.ItemID = it.ID

			err := atx.tx.QueryRowContext(ctx, listingQuery, l.ItemID, l.Marketplace, l.URL, l.ListingDate).
				Scan(&l.ID, &l.CreatedAt)
			if err != nil {
				return fmt.Errorf("saving listing: %w", err)
			}
		}
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
