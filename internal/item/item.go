package item

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/padraigob/resold/internal/money"
)

// Status represents the lifecycle state of an item.
type Status string

const (
	StatusUnlisted Status = "Unlisted"
	StatusListed   Status = "Listed"
	StatusSold     Status = "Sold"
)

// Marketplace is one of the supported selling platforms.
type Marketplace string

const (
	MarketplaceEbay    Marketplace = "eBay"
	MarketplaceVinted  Marketplace = "Vinted"
	MarketplaceAdverts Marketplace = "Adverts.ie"
)

// Marketplaces returns the supported marketplaces in display order.
func Marketplaces() []Marketplace {
	return []Marketplace{MarketplaceEbay, MarketplaceVinted, MarketplaceAdverts}
}

func (m Marketplace) Valid() bool {
	switch m {
	case MarketplaceEbay, MarketplaceVinted, MarketplaceAdverts:
		return true
	}

	return false
}

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrNoListingProvided  = errors.New("no listing provided")
	ErrEmptyURL           = errors.New("listing url is required")
	ErrInvalidMarketplace = errors.New("invalid marketplace")
)

// Item is something bought for resale. Purchase fields are always set;
// sale fields are set together when the item is sold, never piecemeal.
type Item struct {
	ID              uuid.UUID
	Name            string
	SKU             string
	Description     string
	PurchasePrice   money.Amount
	PurchaseDate    time.Time
	PurchaseSource  string
	Status          Status
	ListedDate      *time.Time
	SalePrice       *money.Amount
	SaleDate        *time.Time
	SoldMarketplace *Marketplace
	Notes           string
	LotID           *uuid.UUID // set while the item belongs to a lot
	Listings        []Listing
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

// Listing is a marketplace-specific advertisement of an item. An item
// carries at most one listing per marketplace.
type Listing struct {
	ID          uuid.UUID
	ItemID      uuid.UUID
	Marketplace Marketplace
	URL         string
	ListingDate *time.Time
	CreatedAt   time.Time
}

// ListingParams describes a listing to create alongside an item.
type ListingParams struct {
	Marketplace Marketplace
	URL         string
	ListingDate *time.Time
}

// CreateParams holds everything needed to construct a new item.
type CreateParams struct {
	Name            string
	SKU             string
	Description     string
	PurchasePrice   money.Amount
	PurchaseDate    time.Time
	PurchaseSource  string
	Status          Status
	ListedDate      *time.Time
	SalePrice       *money.Amount
	SaleDate        *time.Time
	SoldMarketplace *Marketplace
	Notes           string
	Listings        []ListingParams
}

// New builds an item from params and checks the status invariants: Listed
// needs at least one listing, Sold needs the full sale triple on top of
// that, and Unlisted must carry neither.
func New(p CreateParams) (*Item, error) {
	status := p.Status
	if status == "" {
		status = StatusUnlisted
	}

	if p.PurchasePrice < 0 {
		return nil, money.ErrInvalidAmount
	}

	it := &Item{
		Name:           p.Name,
		SKU:            p.SKU,
		Description:    p.Description,
		PurchasePrice:  p.PurchasePrice,
		PurchaseDate:   p.PurchaseDate,
		PurchaseSource: p.PurchaseSource,
		Status:         StatusUnlisted,
		Notes:          p.Notes,
	}

	for _, lp := range p.Listings {
		if err := it.AttachListing(lp.Marketplace, lp.URL, lp.ListingDate); err != nil {
			return nil, err
		}
	}

	if p.ListedDate != nil {
		it.ListedDate = p.ListedDate
	}

	switch status {
	case StatusUnlisted:
		if len(it.Listings) > 0 {
			// First listing already drove the transition.
			break
		}
	case StatusListed:
		if len(it.Listings) == 0 {
			return nil, ErrNoListingProvided
		}
	case StatusSold:
		// Historical records are allowed in sold with no surviving
		// listings, so the sale is validated directly rather than walking
		// the item through the Listed transition.
		if p.SalePrice == nil || p.SaleDate == nil || p.SoldMarketplace == nil {
			return nil, ErrInvalidTransition
		}

		if *p.SalePrice < 0 {
			return nil, money.ErrInvalidAmount
		}

		if !p.SoldMarketplace.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidMarketplace, *p.SoldMarketplace)
		}

		if p.SaleDate.Before(it.PurchaseDate) {
			return nil, fmt.Errorf("%w: sale date precedes purchase date", ErrInvalidTransition)
		}

		it.Status = StatusSold
		it.SalePrice = p.SalePrice
		it.SaleDate = p.SaleDate
		it.SoldMarketplace = p.SoldMarketplace
	default:
		return nil, ErrInvalidTransition
	}

	return it, nil
}
