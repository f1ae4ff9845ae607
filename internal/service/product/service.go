package product

import (
	"context"

	"quickcheck/internal/domain"
	productrepo "quickcheck/internal/repository/product"
)

// Service exposes the administrative product operations.
type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, code string) (*domain.Product, error) {
	return s.repo.GetByCode(ctx, code)
}

// Create adds a product. Input is validated before the store is touched.
func (s *Service) Create(ctx context.Context, code, status string) (*domain.Product, error) {
	st, err := validateWrite(code, status)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, code, st)
}

// Update changes the status of an existing product.
func (s *Service) Update(ctx context.Context, code, status string) (*domain.Product, error) {
	st, err := validateWrite(code, status)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, code, st)
}

// Delete removes a product. Issued QR links keep resolving but report not found.
func (s *Service) Delete(ctx context.Context, code string) error {
	return s.repo.Delete(ctx, code)
}

func validateWrite(code, status string) (domain.Status, error) {
	if err := domain.ValidateCode(code); err != nil {
		return "", err
	}
	return domain.ValidateStatus(status)
}
