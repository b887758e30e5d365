package normalize

import (
	"context"
	"fmt"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=normalize

// Repository gives the service access to the distinct purchase sources in
// use and a way to rewrite one across all items that carry it.
type Repository interface {
	ListSources(ctx context.Context) ([]string, error)
	UpdateSource(ctx context.Context, from, to string) (int64, error)
}

// Change records one source rewrite, proposed or applied.
type Change struct {
	From  string
	To    string
	Items int64
}

// Result summarizes a normalization run.
type Result struct {
	Changes []Change
	Applied bool
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Run computes the rewrites the rules would make. With apply false it only
// reports them; with apply true it also performs the updates and fills in
// the affected item counts.
func (s *Service) Run(ctx context.Context, apply bool) (*Result, error) {
	sources, err := s.repo.ListSources(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing purchase sources: %w", err)
	}

	result := &Result{Applied: apply}

	for _, from := range sources {
		to := Source(from)
		if to == from {
			continue
		}

		change := Change{From: from, To: to}

		if apply {
			n, err := s.repo.UpdateSource(ctx, from, to)
			if err != nil {
				return nil, fmt.Errorf("updating source %q: %w", from, err)
			}

			change.Items = n
		}

		result.Changes = append(result.Changes, change)
	}

	return result, nil
}
