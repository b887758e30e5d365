package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/padraigob/resold/internal/item"
	"github.com/padraigob/resold/internal/money"
)

const dateFormat = "02/01/2006"

// header matches the import format, so an export round-trips.
var header = []string{
	"name", "sku", "description", "purchase_price", "purchase_date", "purchase_source",
	"status", "listed_date", "ebay_url", "vinted_url", "adverts_url",
	"sale_price", "sale_date", "sold_marketplace", "notes",
}

type Service struct {
	items *item.Service
}

func NewService(items *item.Service) *Service {
	return &Service{items: items}
}

// WriteCSV streams the matching items as CSV to w.
func (s *Service) WriteCSV(ctx context.Context, w io.Writer, filter item.ListFilter) error {
	items, err := s.items.List(ctx, filter)
	if err != nil {
		return fmt.Errorf("listing items: %w", err)
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, it := range items {
		if err := cw.Write(toRow(it)); err != nil {
			return fmt.Errorf("writing item %s: %w", it.ID, err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}

	return nil
}

func toRow(it *item.Item) []string {
	urls := map[item.Marketplace]string{}
	for _, l := range it.Listings {
		urls[l.Marketplace] = l.URL
	}

	return []string{
		it.Name,
		it.SKU,
		it.Description,
		it.PurchasePrice.String(),
		it.PurchaseDate.Format(dateFormat),
		it.PurchaseSource,
		string(it.Status),
		formatDate(it.ListedDate),
		urls[item.MarketplaceEbay],
		urls[item.MarketplaceVinted],
		urls[item.MarketplaceAdverts],
		formatAmount(it.SalePrice),
		formatDate(it.SaleDate),
		formatMarketplace(it.SoldMarketplace),
		it.Notes,
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}

	return t.Format(dateFormat)
}

func formatAmount(a *money.Amount) string {
	if a == nil {
		return ""
	}

	return a.String()
}

func formatMarketplace(m *item.Marketplace) string {
	if m == nil {
		return ""
	}

	return string(*m)
}
