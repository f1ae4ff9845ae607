package seed

import (
	"context"
	"fmt"

	"quickcheck/internal/domain"
	productsvc "quickcheck/internal/service/product"
)

// Demo is one seeded product.
type Demo struct {
	Code   string
	Status domain.Status
}

// Products are the demo records, one per workflow state.
var Products = []Demo{
	{Code: "BC001", Status: domain.StatusInWarehouse},
	{Code: "BC002", Status: domain.StatusProcessing},
	{Code: "BC003", Status: domain.StatusShipped},
	{Code: "BC004", Status: domain.StatusOutForDelivery},
	{Code: "BC005", Status: domain.StatusDelivered},
	{Code: "BC12345", Status: domain.StatusShipped},
}

type upserter interface {
	Upsert(ctx context.Context, code, status string) (*productsvc.UpsertResult, error)
}

// Apply writes the demo products through the upsert resolver, so running it
// again resets their statuses without duplicating rows. It returns how many
// products were newly created.
func Apply(ctx context.Context, svc upserter) (int, error) {
	created := 0
	for _, p := range Products {
		res, err := svc.Upsert(ctx, p.Code, string(p.Status))
		if err != nil {
			return created, fmt.Errorf("upsert product %s: %w", p.Code, err)
		}
		if res.Created {
			created++
		}
	}
	return created, nil
}
