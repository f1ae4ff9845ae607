package product

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quickcheck/internal/db"
	"quickcheck/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const productColumns = `code, status, created_at, updated_at`

type postgresRepo struct {
	db  db.DB
	now func() time.Time
}

// PostgresRepository is the Postgres-backed Repository. It also implements Upserter.
type PostgresRepository interface {
	Repository
	Upserter
}

func NewPostgres(store db.DB) PostgresRepository {
	return &postgresRepo{db: store, now: time.Now}
}

func (r *postgresRepo) GetByCode(ctx context.Context, code string) (*domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE code = $1
`
	p, err := scanProduct(r.db.QueryRow(ctx, q, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("product %q: %w", code, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("product repo: get code=%s: %w", code, err)
	}
	return p, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
ORDER BY created_at DESC
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("product repo: list: %w", err)
	}
	defer rows.Close()

	result := []domain.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("product repo: list: %w", err)
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("product repo: list rows: %w", err)
	}
	return result, nil
}

func (r *postgresRepo) Create(ctx context.Context, code string, status domain.Status) (*domain.Product, error) {
	if err := validate(code, status); err != nil {
		return nil, err
	}
	const q = `
INSERT INTO products (code, status, created_at, updated_at)
VALUES ($1, $2, $3, $3)
RETURNING ` + productColumns

	now := r.now().UTC()
	p, err := scanProduct(r.db.QueryRow(ctx, q, code, string(status), now))
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, fmt.Errorf("product %q already exists: %w", code, domain.ErrConflict)
		}
		return nil, fmt.Errorf("product repo: create code=%s: %w", code, err)
	}
	return p, nil
}

func (r *postgresRepo) Update(ctx context.Context, code string, status domain.Status) (*domain.Product, error) {
	if err := validate(code, status); err != nil {
		return nil, err
	}
	const q = `
UPDATE products
SET status = $2, updated_at = $3
WHERE code = $1
RETURNING ` + productColumns

	p, err := scanProduct(r.db.QueryRow(ctx, q, code, string(status), r.now().UTC()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("product %q: %w", code, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("product repo: update code=%s: %w", code, err)
	}
	return p, nil
}

func (r *postgresRepo) Delete(ctx context.Context, code string) error {
	const q = `DELETE FROM products WHERE code = $1`
	tag, err := r.db.Exec(ctx, q, code)
	if err != nil {
		return fmt.Errorf("product repo: delete code=%s: %w", code, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product %q: %w", code, domain.ErrNotFound)
	}
	return nil
}

// Upsert relies on xmax being zero only for freshly inserted tuples.
func (r *postgresRepo) Upsert(ctx context.Context, code string, status domain.Status) (*domain.Product, bool, error) {
	if err := validate(code, status); err != nil {
		return nil, false, err
	}
	const q = `
INSERT INTO products (code, status, created_at, updated_at)
VALUES ($1, $2, $3, $3)
ON CONFLICT (code) DO UPDATE SET
    status = EXCLUDED.status,
    updated_at = EXCLUDED.updated_at
RETURNING ` + productColumns + `, (xmax = 0) AS inserted`

	var inserted bool
	p, err := scanProduct(r.db.QueryRow(ctx, q, code, string(status), r.now().UTC()), &inserted)
	if err != nil {
		return nil, false, fmt.Errorf("product repo: upsert code=%s: %w", code, err)
	}
	return p, inserted, nil
}

func validate(code string, status domain.Status) error {
	if err := domain.ValidateCode(code); err != nil {
		return err
	}
	_, err := domain.ValidateStatus(string(status))
	return err
}

// scanProduct reads a products row into nullable types first so that a
// missing column or an unknown status is reported as a corrupt record.
func scanProduct(row pgx.Row, extra ...any) (*domain.Product, error) {
	var (
		code      pgtype.Text
		status    pgtype.Text
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	dest := append([]any{&code, &status, &createdAt, &updatedAt}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	if !code.Valid || code.String == "" || !status.Valid || !createdAt.Valid || !updatedAt.Valid {
		return nil, fmt.Errorf("%w: products row is missing required fields (code=%q)", domain.ErrCorruptRecord, code.String)
	}
	s := domain.Status(status.String)
	if !s.Valid() {
		return nil, fmt.Errorf("%w: product %q has unknown status %q", domain.ErrCorruptRecord, code.String, status.String)
	}
	return &domain.Product{
		Code:      code.String,
		Status:    s,
		CreatedAt: createdAt.Time,
		UpdatedAt: updatedAt.Time,
	}, nil
}
