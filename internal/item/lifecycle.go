package item

import (
	"fmt"
	"strings"
	"time"

	"github.com/padraigob/resold/internal/money"
)

// AttachListing adds or replaces the listing for a marketplace. The first
// listing on an unlisted item moves it to Listed. Re-listing on the same
// marketplace overwrites the URL and date instead of duplicating.
func (it *Item) AttachListing(m Marketplace, url string, date *time.Time) error {
	if !m.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidMarketplace, m)
	}

	if strings.TrimSpace(url) == "" {
		return ErrEmptyURL
	}

	if it.Status == StatusSold {
		return fmt.Errorf("%w: cannot change listings on a sold item", ErrInvalidTransition)
	}

	for i := range it.Listings {
		if it.Listings[i].Marketplace == m {
			it.Listings[i].URL = url
			it.Listings[i].ListingDate = date

			return nil
		}
	}

	it.Listings = append(it.Listings, Listing{
		ItemID:      it.ID,
		Marketplace: m,
		URL:         url,
		ListingDate: date,
	})

	if it.Status == StatusUnlisted {
		it.Status = StatusListed
		it.ListedDate = date
	}

	return nil
}

// DetachListing removes the listing for a marketplace. When the last
// listing goes, a Listed item reverts to Unlisted.
func (it *Item) DetachListing(m Marketplace) error {
	if it.Status == StatusSold {
		return fmt.Errorf("%w: cannot change listings on a sold item", ErrInvalidTransition)
	}

	idx := -1

	for i := range it.Listings {
		if it.Listings[i].Marketplace == m {
			idx = i
			break
		}
	}

	if idx < 0 {
		return fmt.Errorf("listing %s: %w", m, ErrNotFound)
	}

	it.Listings = append(it.Listings[:idx], it.Listings[idx+1:]...)

	if len(it.Listings) == 0 && it.Status == StatusListed {
		it.Status = StatusUnlisted
		it.ListedDate = nil
	}

	return nil
}

// MarkSold records the sale and moves the item to Sold. The item must be
// Listed; the sale date may not precede the purchase date. When
// requireListed is set the sold marketplace must be one the item is
// actually listed on. Returns the other marketplaces the caller should
// close out (the sold-on listing is kept as history).
//
// Validation runs fully before any field changes, so a failed call leaves
// the item untouched.
func (it *Item) MarkSold(price money.Amount, date time.Time, m Marketplace, requireListed bool) ([]Marketplace, error) {
	switch it.Status {
	case StatusUnlisted:
		return nil, fmt.Errorf("%w: item must be listed before it can be sold", ErrInvalidTransition)
	case StatusSold:
		return nil, fmt.Errorf("%w: item is already sold", ErrInvalidTransition)
	}

	if price < 0 {
		return nil, money.ErrInvalidAmount
	}

	if !m.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMarketplace, m)
	}

	if date.Before(it.PurchaseDate) {
		return nil, fmt.Errorf("%w: sale date precedes purchase date", ErrInvalidTransition)
	}

	if requireListed && !it.listedOn(m) {
		return nil, fmt.Errorf("%w: item is not listed on %s", ErrInvalidMarketplace, m)
	}

	it.Status = StatusSold
	it.SalePrice = &price
	it.SaleDate = &date
	it.SoldMarketplace = &m

	return it.ResolveOnSale(m), nil
}

// Unsell is the correction path out of Sold: it clears the sale fields and
// reverts to Listed if listings remain, Unlisted otherwise.
func (it *Item) Unsell() error {
	if it.Status != StatusSold {
		return fmt.Errorf("%w: item is not sold", ErrInvalidTransition)
	}

	it.SalePrice = nil
	it.SaleDate = nil
	it.SoldMarketplace = nil

	if len(it.Listings) > 0 {
		it.Status = StatusListed
	} else {
		it.Status = StatusUnlisted
	}

	return nil
}

// ResolveOnSale reports which other marketplaces still carry a listing for
// the item, i.e. the ones the seller should go and close. It deletes
// nothing: closing a live external listing is outside this system's hands.
func (it *Item) ResolveOnSale(sold Marketplace) []Marketplace {
	stale := []Marketplace{}

	for _, m := range Marketplaces() {
		if m != sold && it.listedOn(m) {
			stale = append(stale, m)
		}
	}

	return stale
}

func (it *Item) listedOn(m Marketplace) bool {
	for i := range it.Listings {
		if it.Listings[i].Marketplace == m {
			return true
		}
	}

	return false
}
