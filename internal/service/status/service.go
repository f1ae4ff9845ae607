package status

import (
	"context"
	"time"

	"quickcheck/internal/domain"
)

type productReader interface {
	GetByCode(ctx context.Context, code string) (*domain.Product, error)
}

// Service is the read-only lookup behind the public "check status" flow.
// It is kept apart from the admin service so the public route can carry its
// own rate limiting.
type Service struct {
	repo productReader
}

func New(repo productReader) *Service {
	return &Service{repo: repo}
}

// View is a product together with the presentation metadata of its status.
type View struct {
	Code        string        `json:"code"`
	Status      domain.Status `json:"status"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Color       string        `json:"color"`
	Icon        string        `json:"icon"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// Query returns the current record for code, read live from the store.
func (s *Service) Query(ctx context.Context, code string) (*domain.Product, error) {
	return s.repo.GetByCode(ctx, code)
}

// Lookup is Query plus the workflow metadata for the product's status.
func (s *Service) Lookup(ctx context.Context, code string) (*View, error) {
	p, err := s.Query(ctx, code)
	if err != nil {
		return nil, err
	}
	info := p.Status.Info()
	return &View{
		Code:        p.Code,
		Status:      p.Status,
		Description: info.Description,
		Category:    info.Category,
		Color:       info.Color,
		Icon:        info.Icon,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}, nil
}
