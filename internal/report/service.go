// Package report derives profit and ROI views from the item graph. All
// values are computed on read; nothing here is stored.
package report

import (
	"context"
	"fmt"
	"sort"

	"github.com/padraigob/resold/internal/item"
	"github.com/padraigob/resold/internal/money"
)

type Service struct {
	items *item.Service
}

func NewService(items *item.Service) *Service {
	return &Service{items: items}
}

// Summary is the headline money view: what went out, what came in, and
// the return on it.
type Summary struct {
	TotalPurchase money.Amount
	TotalSale     money.Amount
	Profit        money.Amount
	ROI           float64 // percent
}

func (s *Service) Summary(ctx context.Context, filter item.ListFilter) (Summary, error) {
	items, err := s.items.List(ctx, filter)
	if err != nil {
		return Summary{}, fmt.Errorf("listing items: %w", err)
	}

	return summarize(items), nil
}

func summarize(items []*item.Item) Summary {
	var out Summary

	for _, it := range items {
		out.TotalPurchase = out.TotalPurchase.Add(it.PurchasePrice)
		if it.SalePrice != nil {
			out.TotalSale = out.TotalSale.Add(*it.SalePrice)
		}
	}

	out.Profit = out.TotalSale.Sub(out.TotalPurchase)

	if out.TotalPurchase != 0 {
		out.ROI = float64(out.Profit) / float64(out.TotalPurchase) * 100.0
	}

	return out
}

// MarketplaceRow is the sales tally for one marketplace. Items never sold
// anywhere are grouped under "Unsold".
type MarketplaceRow struct {
	Marketplace string
	Count       int
	TotalSales  money.Amount
}

func (s *Service) ByMarketplace(ctx context.Context) ([]MarketplaceRow, error) {
	items, err := s.items.List(ctx, item.ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}

	byName := map[string]*MarketplaceRow{}

	for _, it := range items {
		name := "Unsold"
		if it.SoldMarketplace != nil {
			name = string(*it.SoldMarketplace)
		}

		row, ok := byName[name]
		if !ok {
			row = &MarketplaceRow{Marketplace: name}
			byName[name] = row
		}

		row.Count++

		if it.SalePrice != nil {
			row.TotalSales = row.TotalSales.Add(*it.SalePrice)
		}
	}

	rows := make([]MarketplaceRow, 0, len(byName))
	for _, row := range byName {
		rows = append(rows, *row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalSales != rows[j].TotalSales {
			return rows[i].TotalSales > rows[j].TotalSales
		}

		return rows[i].Marketplace < rows[j].Marketplace
	})

	return rows, nil
}

// MonthlyRow summarizes sales completed within one month.
type MonthlyRow struct {
	Month      string // YYYY-MM
	Count      int
	TotalSales money.Amount
	TotalCost  money.Amount
	Profit     money.Amount
}

// Monthly groups sold items by sale month, most recent first.
func (s *Service) Monthly(ctx context.Context) ([]MonthlyRow, error) {
	sold := item.StatusSold

	items, err := s.items.List(ctx, item.ListFilter{Status: &sold})
	if err != nil {
		return nil, fmt.Errorf("listing sold items: %w", err)
	}

	byMonth := map[string]*MonthlyRow{}

	for _, it := range items {
		if it.SalePrice == nil || it.SaleDate == nil {
			continue
		}

		month := it.SaleDate.Format("2006-01")

		row, ok := byMonth[month]
		if !ok {
			row = &MonthlyRow{Month: month}
			byMonth[month] = row
		}

		row.Count++
		row.TotalSales = row.TotalSales.Add(*it.SalePrice)
		row.TotalCost = row.TotalCost.Add(it.PurchasePrice)
		row.Profit = row.TotalSales.Sub(row.TotalCost)
	}

	rows := make([]MonthlyRow, 0, len(byMonth))
	for _, row := range byMonth {
		rows = append(rows, *row)
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Month > rows[j].Month })

	return rows, nil
}
