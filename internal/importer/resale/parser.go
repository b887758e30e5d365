// Package resale reads the reseller spreadsheet CSV format: one item per
// row, purchase details required, optional per-marketplace listing URL
// columns and sale fields.
package resale

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	enc "github.com/padraigob/resold/internal/encoding"
	"github.com/padraigob/resold/internal/item"
	"github.com/padraigob/resold/internal/money"
)

// Required columns; rows missing any of these values are skipped the way
// the spreadsheet tools skip blank lines.
const (
	colName   = "name"
	colPrice  = "purchase_price"
	colDate   = "purchase_date"
	colSource = "purchase_source"
)

// urlCols maps a listing URL column to its marketplace.
var urlCols = []struct {
	col         string
	marketplace item.Marketplace
}{
	{"ebay_url", item.MarketplaceEbay},
	{"vinted_url", item.MarketplaceVinted},
	{"adverts_url", item.MarketplaceAdverts},
}

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

type colIndex map[string]int

func (p *Parser) Parse(r io.Reader) ([]item.CreateParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("csv is empty")
	}

	cols := make(colIndex)

	for i, cell := range rows[0] {
		name := strings.ToLower(strings.TrimSpace(cell))
		if name != "" {
			cols[name] = i
		}
	}

	for _, required := range []string{colName, colPrice, colDate, colSource} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("csv missing required column %q", required)
		}
	}

	var drafts []item.CreateParams

	for i, row := range rows[1:] {
		rowNum := i + 2 // 1-based, after the header

		draft, ok, err := parseRow(cols, row, rowNum)
		if err != nil {
			return nil, err
		}

		if !ok {
			continue
		}

		drafts = append(drafts, draft)
	}

	return drafts, nil
}

// parseRow builds a draft from one data row. The second return value is
// false for rows to skip silently: blank names or unparseable purchase
// fields, matching how the spreadsheet always had stray half-filled rows.
func parseRow(cols colIndex, row []string, rowNum int) (item.CreateParams, bool, error) {
	name := cellValue(row, cols, colName)
	if name == "" {
		return item.CreateParams{}, false, nil
	}

	price, err := money.Parse(cellValue(row, cols, colPrice))
	if err != nil {
		return item.CreateParams{}, false, nil
	}

	purchaseDate, ok := parseDate(cellValue(row, cols, colDate))
	if !ok {
		return item.CreateParams{}, false, nil
	}

	source := cellValue(row, cols, colSource)
	if source == "" {
		return item.CreateParams{}, false, nil
	}

	draft := item.CreateParams{
		Name:           name,
		SKU:            cellValue(row, cols, "sku"),
		Description:    cellValue(row, cols, "description"),
		PurchasePrice:  price,
		PurchaseDate:   purchaseDate,
		PurchaseSource: source,
		Status:         item.StatusUnlisted,
		Notes:          cellValue(row, cols, "notes"),
	}

	if s := cellValue(row, cols, "status"); s != "" {
		switch status := item.Status(s); status {
		case item.StatusUnlisted, item.StatusListed, item.StatusSold:
			draft.Status = status
		}
	}

	listedDate, hasListedDate := parseDate(cellValue(row, cols, "listed_date"))

	for _, uc := range urlCols {
		url := cellValue(row, cols, uc.col)
		if url == "" {
			continue
		}

		lp := item.ListingParams{Marketplace: uc.marketplace, URL: url}
		if hasListedDate {
			lp.ListingDate = &listedDate
		} else {
			// Listings imported without a date fall back to the purchase date.
			lp.ListingDate = &purchaseDate
		}

		draft.Listings = append(draft.Listings, lp)
	}

	if len(draft.Listings) > 0 {
		if draft.Status == item.StatusUnlisted {
			draft.Status = item.StatusListed
		}

		if hasListedDate {
			draft.ListedDate = &listedDate
		} else {
			draft.ListedDate = &purchaseDate
		}
	} else if draft.Status == item.StatusListed {
		return item.CreateParams{}, false, fmt.Errorf("row %d: status Listed but no listing url", rowNum)
	}

	salePriceRaw := cellValue(row, cols, "sale_price")
	saleDateRaw := cellValue(row, cols, "sale_date")
	soldMarketplaceRaw := cellValue(row, cols, "sold_marketplace")

	hasSale := salePriceRaw != "" || saleDateRaw != "" || soldMarketplaceRaw != ""
	if !hasSale {
		if draft.Status == item.StatusSold {
			return item.CreateParams{}, false, fmt.Errorf("row %d: status Sold but no sale fields", rowNum)
		}

		return draft, true, nil
	}

	salePrice, err := money.Parse(salePriceRaw)
	if err != nil {
		return item.CreateParams{}, false, fmt.Errorf("row %d: bad sale price %q", rowNum, salePriceRaw)
	}

	saleDate, ok := parseDate(saleDateRaw)
	if !ok {
		return item.CreateParams{}, false, fmt.Errorf("row %d: bad sale date %q", rowNum, saleDateRaw)
	}

	soldMarketplace := item.Marketplace(soldMarketplaceRaw)
	if !soldMarketplace.Valid() {
		return item.CreateParams{}, false, fmt.Errorf("row %d: bad sold marketplace %q", rowNum, soldMarketplaceRaw)
	}

	draft.Status = item.StatusSold
	draft.SalePrice = &salePrice
	draft.SaleDate = &saleDate
	draft.SoldMarketplace = &soldMarketplace

	return draft, true, nil
}

// parseDate accepts DD/MM/YYYY with an ISO fallback.
func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	if t, err := time.Parse("02/01/2006", s); err == nil {
		return t, true
	}

	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, true
	}

	return time.Time{}, false
}

func cellValue(row []string, cols colIndex, name string) string {
	idx, ok := cols[name]
	if !ok || idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
