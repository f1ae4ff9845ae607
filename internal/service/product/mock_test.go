package product

import (
	"context"
	"sync"
	"time"

	"quickcheck/internal/domain"

	"github.com/stretchr/testify/mock"
)

// mockRepo implements productrepo.Repository only, forcing the two-phase upsert.
type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetByCode(ctx context.Context, code string) (*domain.Product, error) {
	args := m.Called(ctx, code)
	return productArg(args, 0), args.Error(1)
}

func (m *mockRepo) List(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *mockRepo) Create(ctx context.Context, code string, status domain.Status) (*domain.Product, error) {
	args := m.Called(ctx, code, status)
	return productArg(args, 0), args.Error(1)
}

func (m *mockRepo) Update(ctx context.Context, code string, status domain.Status) (*domain.Product, error) {
	args := m.Called(ctx, code, status)
	return productArg(args, 0), args.Error(1)
}

func (m *mockRepo) Delete(ctx context.Context, code string) error {
	return m.Called(ctx, code).Error(0)
}

// mockAtomicRepo additionally offers a single-statement upsert.
type mockAtomicRepo struct {
	mockRepo
}

func (m *mockAtomicRepo) Upsert(ctx context.Context, code string, status domain.Status) (*domain.Product, bool, error) {
	args := m.Called(ctx, code, status)
	return productArg(args, 0), args.Bool(1), args.Error(2)
}

func productArg(args mock.Arguments, i int) *domain.Product {
	if args.Get(i) == nil {
		return nil
	}
	return args.Get(i).(*domain.Product)
}

// memoryRepo is an in-process store with the same not-found and conflict
// semantics as the Postgres repository.
type memoryRepo struct {
	mu    sync.Mutex
	items map[string]domain.Product
	clock time.Time
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{items: map[string]domain.Product{}, clock: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (r *memoryRepo) tick() time.Time {
	r.clock = r.clock.Add(time.Second)
	return r.clock
}

func (r *memoryRepo) GetByCode(_ context.Context, code string) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[code]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (r *memoryRepo) List(_ context.Context) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Product, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, p)
	}
	return out, nil
}

func (r *memoryRepo) Create(_ context.Context, code string, status domain.Status) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[code]; ok {
		return nil, domain.ErrConflict
	}
	now := r.tick()
	p := domain.Product{Code: code, Status: status, CreatedAt: now, UpdatedAt: now}
	r.items[code] = p
	return &p, nil
}

func (r *memoryRepo) Update(_ context.Context, code string, status domain.Status) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[code]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p.Status = status
	p.UpdatedAt = r.tick()
	r.items[code] = p
	return &p, nil
}

func (r *memoryRepo) Delete(_ context.Context, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[code]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, code)
	return nil
}
