package status

import (
	"context"
	"errors"
	"testing"

	"quickcheck/internal/domain"
)

type stubReader struct {
	products map[string]domain.Product
	calls    int
	err      error
}

func (s *stubReader) GetByCode(_ context.Context, code string) (*domain.Product, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	p, ok := s.products[code]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func TestQuery_ReadsThroughEveryTime(t *testing.T) {
	repo := &stubReader{products: map[string]domain.Product{"BC001": {Code: "BC001", Status: domain.StatusProcessing}}}
	svc := New(repo)

	p, err := svc.Query(context.Background(), "BC001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Status != domain.StatusProcessing {
		t.Fatalf("unexpected product %+v", p)
	}

	repo.products["BC001"] = domain.Product{Code: "BC001", Status: domain.StatusDelivered}
	p, err = svc.Query(context.Background(), "BC001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Status != domain.StatusDelivered || repo.calls != 2 {
		t.Fatalf("expected live read, got %+v after %d calls", p, repo.calls)
	}
}

func TestQuery_NotFound(t *testing.T) {
	svc := New(&stubReader{products: map[string]domain.Product{}})
	if _, err := svc.Query(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestLookup_AddsWorkflowMetadata(t *testing.T) {
	repo := &stubReader{products: map[string]domain.Product{"BC002": {Code: "BC002", Status: domain.StatusOutForDelivery}}}
	view, err := New(repo).Lookup(context.Background(), "BC002")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Description != "Your product is out for delivery today" || view.Category != domain.CategoryDelivery || view.Icon != "truck" {
		t.Fatalf("unexpected view %+v", view)
	}
}

func TestLookup_StoreError(t *testing.T) {
	svc := New(&stubReader{err: errors.New("boom")})
	if _, err := svc.Lookup(context.Background(), "BC001"); err == nil || err.Error() != "boom" {
		t.Fatalf("expected store error, got %v", err)
	}
}
