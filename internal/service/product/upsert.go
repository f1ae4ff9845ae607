package product

import (
	"context"
	"errors"
	"fmt"

	"quickcheck/internal/domain"
	productrepo "quickcheck/internal/repository/product"
)

// UpsertResult reports which branch an upsert took.
type UpsertResult struct {
	Product *domain.Product
	Created bool
}

// Upsert creates the product when the code is unseen and updates its status
// otherwise. Stores offering an atomic upsert are used directly; others go
// through update-then-create.
func (s *Service) Upsert(ctx context.Context, code, status string) (*UpsertResult, error) {
	st, err := validateWrite(code, status)
	if err != nil {
		return nil, err
	}

	if atomic, ok := s.repo.(productrepo.Upserter); ok {
		p, created, err := atomic.Upsert(ctx, code, st)
		if err != nil {
			return nil, err
		}
		return &UpsertResult{Product: p, Created: created}, nil
	}
	return s.updateThenCreate(ctx, code, st)
}

func (s *Service) updateThenCreate(ctx context.Context, code string, st domain.Status) (*UpsertResult, error) {
	p, err := s.repo.Update(ctx, code, st)
	if err == nil {
		return &UpsertResult{Product: p}, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	p, err = s.repo.Create(ctx, code, st)
	if err == nil {
		return &UpsertResult{Product: p, Created: true}, nil
	}
	if !errors.Is(err, domain.ErrConflict) {
		return nil, err
	}

	// A concurrent writer created the code between our update and create.
	p, err = s.repo.Update(ctx, code, st)
	if err == nil {
		return &UpsertResult{Product: p}, nil
	}
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("product %q changed concurrently, retry the write: %w", code, domain.ErrConflict)
	}
	return nil, err
}
