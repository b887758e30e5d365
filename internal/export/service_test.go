package export_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/padraigob/resold/internal/export"
	"github.com/padraigob/resold/internal/item"
	"github.com/padraigob/resold/internal/money"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T {
	return &v
}

func TestWriteCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := item.NewMockRepository(ctrl)

	soldID := uuid.New()
	items := []*item.Item{
		{
			ID:              soldID,
			Name:            "Vintage Lamp",
			SKU:             "LMP-1",
			PurchasePrice:   1250,
			PurchaseDate:    date(2024, 1, 10),
			PurchaseSource:  "Car Boot - Naas",
			Status:          item.StatusSold,
			ListedDate:      ptr(date(2024, 1, 12)),
			SalePrice:       ptr(money.Amount(2500)),
			SaleDate:        ptr(date(2024, 3, 1)),
			SoldMarketplace: ptr(item.MarketplaceEbay),
			Listings: []item.Listing{
				{ItemID: soldID, Marketplace: item.MarketplaceEbay, URL: "https://ebay.com/itm/1"},
				{ItemID: soldID, Marketplace: item.MarketplaceVinted, URL: "https://vinted.ie/2"},
			},
		},
		{
			ID:             uuid.New(),
			Name:           "Retro Radio",
			PurchasePrice:  2000,
			PurchaseDate:   date(2024, 2, 1),
			PurchaseSource: "Home",
			Status:         item.StatusUnlisted,
		},
	}

	repo.EXPECT().ListItems(gomock.Any(), item.ListFilter{}).Return(items, nil)

	svc := export.NewService(item.NewService(repo, true))

	var buf bytes.Buffer
	require.NoError(t, svc.WriteCSV(context.Background(), &buf, item.ListFilter{}))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{
		"name", "sku", "description", "purchase_price", "purchase_date", "purchase_source",
		"status", "listed_date", "ebay_url", "vinted_url", "adverts_url",
		"sale_price", "sale_date", "sold_marketplace", "notes",
	}, rows[0])

	assert.Equal(t, []string{
		"Vintage Lamp", "LMP-1", "", "12.50", "10/01/2024", "Car Boot - Naas",
		"Sold", "12/01/2024", "https://ebay.com/itm/1", "https://vinted.ie/2", "",
		"25.00", "01/03/2024", "eBay", "",
	}, rows[1])

	assert.Equal(t, []string{
		"Retro Radio", "", "", "20.00", "01/02/2024", "Home",
		"Unlisted", "", "", "", "", "", "", "", "",
	}, rows[2])
}
