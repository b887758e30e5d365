// Package lot splits a bulk purchase cost evenly across its member items.
// A lot is a provenance record: it keeps its total cost for good, while
// membership changes re-run the split over whoever is left.
package lot

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/padraigob/resold/internal/item"
	"github.com/padraigob/resold/internal/money"
)

var (
	ErrNotFound         = errors.New("lot not found")
	ErrItemAlreadyInLot = errors.New("item already belongs to a lot")
	ErrMemberNotFound   = errors.New("item is not a member of the lot")
	ErrDuplicateItem    = errors.New("item listed more than once")
)

// Lot is a single bulk purchase. Membership lives on the items themselves
// (Item.LotID); member order is creation order.
type Lot struct {
	ID        uuid.UUID
	TotalCost money.Amount
	CreatedAt time.Time
}

// Summary is the running cost view of a lot. AllocatedCost is derived from
// the members' purchase prices; after any successful split over at least
// one member, RemainingCost is zero.
type Summary struct {
	TotalCost     money.Amount
	AllocatedCost money.Amount
	RemainingCost money.Amount
}

// Summarize derives the cost summary from the current members.
func (l *Lot) Summarize(members []*item.Item) Summary {
	var allocated money.Amount
	for _, m := range members {
		allocated = allocated.Add(m.PurchasePrice)
	}

	return Summary{
		TotalCost:     l.TotalCost,
		AllocatedCost: allocated,
		RemainingCost: l.TotalCost.Sub(allocated),
	}
}

// reallocate splits the lot's total cost over the members in order,
// assigning every member its share and the lot back-reference. The split
// is computed before anything is assigned, so a failure leaves the
// members untouched.
func (l *Lot) reallocate(members []*item.Item) error {
	shares, err := money.Split(l.TotalCost, len(members))
	if err != nil {
		return err
	}

	for i, m := range members {
		m.PurchasePrice = shares[i]
		m.LotID = &l.ID
	}

	return nil
}
