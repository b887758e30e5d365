package lot

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/padraigob/resold/internal/item"
	"github.com/padraigob/resold/internal/money"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=lot
type Repository interface {
	GetLot(ctx context.Context, id uuid.UUID) (*Lot, error)
	// GetMembers returns the lot's items in membership order.
	GetMembers(ctx context.Context, lotID uuid.UUID) ([]*item.Item, error)
	// GetItems returns the items for the given ids, in the requested order.
	GetItems(ctx context.Context, ids []uuid.UUID) ([]*item.Item, error)

	BeginAllocation(ctx context.Context, lotID uuid.UUID) (AllocationTx, error)
}

// AllocationTx writes a lot and its members' recomputed prices as one
// unit: everything lands together or the whole allocation rolls back.
type AllocationTx interface {
	SaveLot(ctx context.Context, l *Lot) error
	SaveItems(ctx context.Context, items []*item.Item) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateWithNewItems creates a lot and one item per draft, splitting
// totalCost evenly across them. Draft purchase prices are ignored; the
// split decides every member's price.
func (s *Service) CreateWithNewItems(ctx context.Context, totalCost money.Amount, drafts []item.CreateParams) (*Lot, []*item.Item, error) {
	shares, err := money.Split(totalCost, len(drafts))
	if err != nil {
		return nil, nil, err
	}

	l := &Lot{ID: uuid.New(), TotalCost: totalCost}

	members := make([]*item.Item, len(drafts))

	for i, d := range drafts {
		d.PurchasePrice = shares[i]

		it, err := item.New(d)
		if err != nil {
			return nil, nil, fmt.Errorf("draft %d (%s): %w", i+1, d.Name, err)
		}

		it.ID = uuid.New()
		it.LotID = &l.ID
		members[i] = it
	}

	if err := s.save(ctx, l, members); err != nil {
		return nil, nil, err
	}

	return l, members, nil
}

// CreateFromExisting creates a lot from items that already exist,
// overwriting each one's purchase price with its share. Items already in
// a lot are rejected before anything changes.
func (s *Service) CreateFromExisting(ctx context.Context, totalCost money.Amount, itemIDs []uuid.UUID) (*Lot, []*item.Item, error) {
	if err := uniqueIDs(itemIDs); err != nil {
		return nil, nil, err
	}

	members, err := s.repo.GetItems(ctx, itemIDs)
	if err != nil {
		return nil, nil, err
	}

	for _, m := range members {
		if m.LotID != nil {
			return nil, nil, fmt.Errorf("item %s: %w", m.ID, ErrItemAlreadyInLot)
		}
	}

	l := &Lot{ID: uuid.New(), TotalCost: totalCost}

	if err := l.reallocate(members); err != nil {
		return nil, nil, err
	}

	if err := s.save(ctx, l, members); err != nil {
		return nil, nil, err
	}

	return l, members, nil
}

// AddMembers attaches existing items and/or new drafts to the lot and
// re-splits the total over the whole membership, old and new alike. That
// whole-lot re-split is the point: a 2-way 15.00/15.00 split of a 30.00
// lot becomes 10.00/10.00/10.00 when a third member joins.
func (s *Service) AddMembers(ctx context.Context, lotID uuid.UUID, itemIDs []uuid.UUID, drafts []item.CreateParams) (*Lot, []*item.Item, error) {
	if err := uniqueIDs(itemIDs); err != nil {
		return nil, nil, err
	}

	l, err := s.repo.GetLot(ctx, lotID)
	if err != nil {
		return nil, nil, err
	}

	members, err := s.repo.GetMembers(ctx, lotID)
	if err != nil {
		return nil, nil, err
	}

	var joining []*item.Item

	if len(itemIDs) > 0 {
		joining, err = s.repo.GetItems(ctx, itemIDs)
		if err != nil {
			return nil, nil, err
		}

		for _, it := range joining {
			if it.LotID != nil {
				return nil, nil, fmt.Errorf("item %s: %w", it.ID, ErrItemAlreadyInLot)
			}
		}
	}

	for i, d := range drafts {
		it, err := item.New(d)
		if err != nil {
			return nil, nil, fmt.Errorf("draft %d (%s): %w", i+1, d.Name, err)
		}

		it.ID = uuid.New()
		joining = append(joining, it)
	}

	members = append(members, joining...)

	if err := l.reallocate(members); err != nil {
		return nil, nil, err
	}

	if err := s.save(ctx, l, members); err != nil {
		return nil, nil, err
	}

	return l, members, nil
}

// RemoveMember drops an item from the lot and re-splits over the rest.
// The removed item keeps its last allocated price but loses the lot
// back-reference. A lot emptied this way keeps its total cost and reports
// everything as unallocated; it is the caller's to resolve, not ours to
// delete.
func (s *Service) RemoveMember(ctx context.Context, lotID, itemID uuid.UUID) (*Lot, []*item.Item, error) {
	l, err := s.repo.GetLot(ctx, lotID)
	if err != nil {
		return nil, nil, err
	}

	members, err := s.repo.GetMembers(ctx, lotID)
	if err != nil {
		return nil, nil, err
	}

	var removed *item.Item

	remaining := make([]*item.Item, 0, len(members))

	for _, m := range members {
		if m.ID == itemID {
			removed = m
			continue
		}

		remaining = append(remaining, m)
	}

	if removed == nil {
		return nil, nil, fmt.Errorf("item %s: %w", itemID, ErrMemberNotFound)
	}

	removed.LotID = nil

	if len(remaining) > 0 {
		if err := l.reallocate(remaining); err != nil {
			return nil, nil, err
		}
	}

	if err := s.save(ctx, l, append(remaining, removed)); err != nil {
		return nil, nil, err
	}

	return l, remaining, nil
}

// Summary returns the lot's derived cost view.
func (s *Service) Summary(ctx context.Context, lotID uuid.UUID) (Summary, error) {
	l, err := s.repo.GetLot(ctx, lotID)
	if err != nil {
		return Summary{}, err
	}

	members, err := s.repo.GetMembers(ctx, lotID)
	if err != nil {
		return Summary{}, err
	}

	return l.Summarize(members), nil
}

// Get returns the lot together with its members.
func (s *Service) Get(ctx context.Context, lotID uuid.UUID) (*Lot, []*item.Item, error) {
	l, err := s.repo.GetLot(ctx, lotID)
	if err != nil {
		return nil, nil, err
	}

	members, err := s.repo.GetMembers(ctx, lotID)
	if err != nil {
		return nil, nil, err
	}

	return l, members, nil
}

// uniqueIDs rejects requests naming the same item twice. The repository
// returns one row per requested occurrence, so a duplicate would be
// handed two shares of the split and only keep the last one.
func uniqueIDs(ids []uuid.UUID) error {
	seen := make(map[uuid.UUID]struct{}, len(ids))

	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return fmt.Errorf("item %s: %w", id, ErrDuplicateItem)
		}

		seen[id] = struct{}{}
	}

	return nil
}

func (s *Service) save(ctx context.Context, l *Lot, items []*item.Item) error {
	atx, err := s.repo.BeginAllocation(ctx, l.ID)
	if err != nil {
		return fmt.Errorf("begin allocation: %w", err)
	}
	defer atx.Rollback()

	if err := atx.SaveLot(ctx, l); err != nil {
		return fmt.Errorf("save lot: %w", err)
	}

	if err := atx.SaveItems(ctx, items); err != nil {
		return fmt.Errorf("save members: %w", err)
	}

	if err := atx.Commit(); err != nil {
		return fmt.Errorf("commit allocation: %w", err)
	}

	return nil
}
