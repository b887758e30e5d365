package item_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/padraigob/resold/internal/item"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    item.CreateParams
		setupMock func(m *item.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			params: item.CreateParams{
				Name:           "Retro Radio",
				PurchasePrice:  2000,
				PurchaseDate:   date(2024, 1, 5),
				PurchaseSource: "SVP - Bray",
			},
			setupMock: func(m *item.MockRepository) {
				m.EXPECT().
					CreateItem(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, it *item.Item) error {
						it.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name: "ListedWithoutListingRejected",
			params: item.CreateParams{
				Name:           "Retro Radio",
				PurchasePrice:  2000,
				PurchaseDate:   date(2024, 1, 5),
				PurchaseSource: "SVP - Bray",
				Status:         item.StatusListed,
			},
			wantErr: item.ErrNoListingProvided,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := item.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := item.NewService(repo, true)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
		})
	}
}

func TestService_AttachListing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := item.NewMockRepository(ctrl)
	svc := item.NewService(repo, true)

	id := uuid.New()
	stored := &item.Item{
		ID:            id,
		Name:          "Lamp",
		PurchasePrice: 1000,
		PurchaseDate:  date(2024, 1, 1),
		Status:        item.StatusUnlisted,
	}

	repo.EXPECT().GetItem(gomock.Any(), id).Return(stored, nil)
	repo.EXPECT().UpdateItem(gomock.Any(), stored).Return(nil)

	it, err := svc.AttachListing(context.Background(), id, item.MarketplaceEbay, "https://ebay.com/itm/1", nil)
	require.NoError(t, err)
	assert.Equal(t, item.StatusListed, it.Status)
}

func TestService_AttachListing_InvalidNotPersisted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := item.NewMockRepository(ctrl)
	svc := item.NewService(repo, true)

	id := uuid.New()
	repo.EXPECT().GetItem(gomock.Any(), id).Return(&item.Item{ID: id, Status: item.StatusUnlisted}, nil)

	// No UpdateItem expectation: a validation failure must not write.
	_, err := svc.AttachListing(context.Background(), id, item.MarketplaceEbay, "", nil)
	assert.ErrorIs(t, err, item.ErrEmptyURL)
}

func TestService_MarkSold(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := item.NewMockRepository(ctrl)
	svc := item.NewService(repo, true)

	id := uuid.New()
	stored := &item.Item{
		ID:            id,
		Name:          "Lamp",
		PurchasePrice: 1000,
		PurchaseDate:  date(2024, 1, 1),
		Status:        item.StatusListed,
		Listings: []item.Listing{
			{ItemID: id, Marketplace: item.MarketplaceEbay, URL: "https://ebay.com/itm/1"},
			{ItemID: id, Marketplace: item.MarketplaceVinted, URL: "https://vinted.ie/2"},
		},
	}

	repo.EXPECT().GetItem(gomock.Any(), id).Return(stored, nil)
	repo.EXPECT().UpdateItem(gomock.Any(), stored).Return(nil)

	it, stale, err := svc.MarkSold(context.Background(), id, 5000, date(2024, 3, 1), item.MarketplaceEbay)
	require.NoError(t, err)
	assert.Equal(t, item.StatusSold, it.Status)
	assert.Equal(t, []item.Marketplace{item.MarketplaceVinted}, stale)
}

func TestService_MarkSold_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := item.NewMockRepository(ctrl)
	svc := item.NewService(repo, true)

	id := uuid.New()
	repo.EXPECT().GetItem(gomock.Any(), id).Return(nil, errors.New("db error"))

	_, _, err := svc.MarkSold(context.Background(), id, 5000, date(2024, 3, 1), item.MarketplaceEbay)
	assert.Error(t, err)
}

func TestService_CreateBatch_InvalidDraftFailsWholeBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := item.NewMockRepository(ctrl)
	svc := item.NewService(repo, true)

	params := []item.CreateParams{
		{Name: "Good", PurchasePrice: 100, PurchaseDate: date(2024, 1, 1), PurchaseSource: "Home"},
		{Name: "Bad", PurchasePrice: 100, PurchaseDate: date(2024, 1, 1), PurchaseSource: "Home", Status: item.StatusListed},
	}

	// No CreateItems expectation: nothing may reach the store.
	_, err := svc.CreateBatch(context.Background(), params)
	assert.ErrorIs(t, err, item.ErrNoListingProvided)
}
