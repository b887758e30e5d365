package item

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/padraigob/resold/internal/money"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=item
type Repository interface {
	CreateItem(ctx context.Context, it *Item) error
	CreateItems(ctx context.Context, items []*Item) error
	GetItem(ctx context.Context, id uuid.UUID) (*Item, error)
	ListItems(ctx context.Context, filter ListFilter) ([]*Item, error)
	UpdateItem(ctx context.Context, it *Item) error
	DeleteItem(ctx context.Context, id uuid.UUID) error
}

type ListFilter struct {
	Status      *Status
	Marketplace *Marketplace
	ListingURL  *string
	Search      *string
	Limit       *int
	Offset      *int
}

type Service struct {
	repo Repository

	// requireListedSale controls whether a sale must name a marketplace
	// the item is actually listed on, or any supported marketplace.
	requireListedSale bool
}

func NewService(repo Repository, requireListedSale bool) *Service {
	return &Service{repo: repo, requireListedSale: requireListedSale}
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Item, error) {
	it, err := New(params)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateItem(ctx, it); err != nil {
		return nil, err
	}

	return it, nil
}

// CreateBatch constructs and persists a batch of items in one unit of
// work. Any invalid draft fails the whole batch before anything is written.
func (s *Service) CreateBatch(ctx context.Context, params []CreateParams) ([]*Item, error) {
	if len(params) == 0 {
		return nil, nil
	}

	items := make([]*Item, len(params))

	for i, p := range params {
		it, err := New(p)
		if err != nil {
			return nil, fmt.Errorf("item %d (%s): %w", i+1, p.Name, err)
		}

		items[i] = it
	}

	if err := s.repo.CreateItems(ctx, items); err != nil {
		return nil, err
	}

	return items, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Item, error) {
	return s.repo.GetItem(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Item, error) {
	return s.repo.ListItems(ctx, filter)
}

func (s *Service) Update(ctx context.Context, it *Item) error {
	return s.repo.UpdateItem(ctx, it)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteItem(ctx, id)
}

func (s *Service) AttachListing(ctx context.Context, id uuid.UUID, m Marketplace, url string, date *time.Time) (*Item, error) {
	it, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := it.AttachListing(m, url, date); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateItem(ctx, it); err != nil {
		return nil, err
	}

	return it, nil
}

func (s *Service) DetachListing(ctx context.Context, id uuid.UUID, m Marketplace) (*Item, error) {
	it, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := it.DetachListing(m); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateItem(ctx, it); err != nil {
		return nil, err
	}

	return it, nil
}

// MarkSold records a sale. The second return value lists the marketplaces
// whose listings the caller should prompt the user to close out.
func (s *Service) MarkSold(ctx context.Context, id uuid.UUID, price money.Amount, date time.Time, m Marketplace) (*Item, []Marketplace, error) {
	it, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	stale, err := it.MarkSold(price, date, m, s.requireListedSale)
	if err != nil {
		return nil, nil, err
	}

	if err := s.repo.UpdateItem(ctx, it); err != nil {
		return nil, nil, err
	}

	return it, stale, nil
}

func (s *Service) Unsell(ctx context.Context, id uuid.UUID) (*Item, error) {
	it, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := it.Unsell(); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateItem(ctx, it); err != nil {
		return nil, err
	}

	return it, nil
}
