package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/padraigob/resold/internal/item"
	"github.com/padraigob/resold/internal/money"
	"github.com/padraigob/resold/internal/report"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func soldItem(purchase, sale money.Amount, saleDate time.Time, m item.Marketplace) *item.Item {
	return &item.Item{
		ID:              uuid.New(),
		PurchasePrice:   purchase,
		PurchaseDate:    saleDate.AddDate(0, -1, 0),
		Status:          item.StatusSold,
		SalePrice:       &sale,
		SaleDate:        &saleDate,
		SoldMarketplace: &m,
	}
}

func TestSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := item.NewMockRepository(ctrl)
	svc := report.NewService(item.NewService(repo, true))

	repo.EXPECT().ListItems(gomock.Any(), item.ListFilter{}).Return([]*item.Item{
		soldItem(1000, 2500, date(2024, 3, 1), item.MarketplaceEbay),
		{ID: uuid.New(), PurchasePrice: 1000, Status: item.StatusUnlisted},
	}, nil)

	got, err := svc.Summary(context.Background(), item.ListFilter{})
	require.NoError(t, err)

	assert.Equal(t, money.Amount(2000), got.TotalPurchase)
	assert.Equal(t, money.Amount(2500), got.TotalSale)
	assert.Equal(t, money.Amount(500), got.Profit)
	assert.InDelta(t, 25.0, got.ROI, 0.001)
}

func TestSummary_NoItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := item.NewMockRepository(ctrl)
	svc := report.NewService(item.NewService(repo, true))

	repo.EXPECT().ListItems(gomock.Any(), item.ListFilter{}).Return(nil, nil)

	got, err := svc.Summary(context.Background(), item.ListFilter{})
	require.NoError(t, err)
	assert.Zero(t, got.ROI)
	assert.Zero(t, got.Profit)
}

func TestByMarketplace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := item.NewMockRepository(ctrl)
	svc := report.NewService(item.NewService(repo, true))

	repo.EXPECT().ListItems(gomock.Any(), item.ListFilter{}).Return([]*item.Item{
		soldItem(1000, 2500, date(2024, 3, 1), item.MarketplaceEbay),
		soldItem(500, 4000, date(2024, 3, 5), item.MarketplaceVinted),
		soldItem(500, 1000, date(2024, 4, 2), item.MarketplaceVinted),
		{ID: uuid.New(), PurchasePrice: 100, Status: item.StatusUnlisted},
	}, nil)

	rows, err := svc.ByMarketplace(context.Background())
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, report.MarketplaceRow{Marketplace: "Vinted", Count: 2, TotalSales: 5000}, rows[0])
	assert.Equal(t, report.MarketplaceRow{Marketplace: "eBay", Count: 1, TotalSales: 2500}, rows[1])
	assert.Equal(t, report.MarketplaceRow{Marketplace: "Unsold", Count: 1, TotalSales: 0}, rows[2])
}

func TestMonthly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := item.NewMockRepository(ctrl)
	svc := report.NewService(item.NewService(repo, true))

	sold := item.StatusSold
	repo.EXPECT().ListItems(gomock.Any(), item.ListFilter{Status: &sold}).Return([]*item.Item{
		soldItem(1000, 2500, date(2024, 3, 1), item.MarketplaceEbay),
		soldItem(500, 1500, date(2024, 3, 20), item.MarketplaceVinted),
		soldItem(2000, 2200, date(2024, 4, 2), item.MarketplaceEbay),
	}, nil)

	rows, err := svc.Monthly(context.Background())
	require.NoError(t, err)

	require.Len(t, rows, 2)

	assert.Equal(t, report.MonthlyRow{
		Month: "2024-04", Count: 1, TotalSales: 2200, TotalCost: 2000, Profit: 200,
	}, rows[0])
	assert.Equal(t, report.MonthlyRow{
		Month: "2024-03", Count: 2, TotalSales: 4000, TotalCost: 1500, Profit: 2500,
	}, rows[1])
}
