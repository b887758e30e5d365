package item

import (
	"time"

	"github.com/google/uuid"

	"github.com/padraigob/resold/internal/item"
	"github.com/padraigob/resold/internal/money"
)

type itemResponse struct {
	ID              uuid.UUID         `json:"id"`
	Name            string            `json:"name"`
	SKU             string            `json:"sku,omitempty"`
	Description     string            `json:"description,omitempty"`
	PurchasePrice   money.Amount      `json:"purchase_price"`
	PurchaseDate    time.Time         `json:"purchase_date"`
	PurchaseSource  string            `json:"purchase_source"`
	Status          item.Status       `json:"status"`
	ListedDate      *time.Time        `json:"listed_date,omitempty"`
	SalePrice       *money.Amount     `json:"sale_price,omitempty"`
	SaleDate        *time.Time        `json:"sale_date,omitempty"`
	SoldMarketplace *item.Marketplace `json:"sold_marketplace,omitempty"`
	Notes           string            `json:"notes,omitempty"`
	LotID           *uuid.UUID        `json:"lot_id,omitempty"`
	Listings        []listingResponse `json:"listings"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       *time.Time        `json:"updated_at,omitempty"`
}

type listingResponse struct {
	Marketplace item.Marketplace `json:"marketplace"`
	URL         string           `json:"url"`
	ListingDate *time.Time       `json:"listing_date,omitempty"`
}

func toResponse(it *item.Item) itemResponse {
	listings := make([]listingResponse, 0, len(it.Listings))
	for _, l := range it.Listings {
		listings = append(listings, listingResponse{
			Marketplace: l.Marketplace,
			URL:         l.URL,
			ListingDate: l.ListingDate,
		})
	}

	return itemResponse{
		ID:              it.ID,
		Name:            it.Name,
		SKU:             it.SKU,
		Description:     it.Description,
		PurchasePrice:   it.PurchasePrice,
		PurchaseDate:    it.PurchaseDate,
		PurchaseSource:  it.PurchaseSource,
		Status:          it.Status,
		ListedDate:      it.ListedDate,
		SalePrice:       it.SalePrice,
		SaleDate:        it.SaleDate,
		SoldMarketplace: it.SoldMarketplace,
		Notes:           it.Notes,
		LotID:           it.LotID,
		Listings:        listings,
		CreatedAt:       it.CreatedAt,
		UpdatedAt:       it.UpdatedAt,
	}
}

func toResponseList(items []*item.Item) []itemResponse {
	resp := make([]itemResponse, len(items))
	for i, it := range items {
		resp[i] = toResponse(it)
	}

	return resp
}
