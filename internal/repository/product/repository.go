package product

import (
	"context"

	"quickcheck/internal/domain"
)

// Repository is the sole owner of persisted product records.
type Repository interface {
	GetByCode(ctx context.Context, code string) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Create(ctx context.Context, code string, status domain.Status) (*domain.Product, error)
	Update(ctx context.Context, code string, status domain.Status) (*domain.Product, error)
	Delete(ctx context.Context, code string) error
}

// Upserter is implemented by stores that can insert-or-update a product in a
// single atomic statement. The returned bool is true when a row was inserted.
type Upserter interface {
	Upsert(ctx context.Context, code string, status domain.Status) (*domain.Product, bool, error)
}
