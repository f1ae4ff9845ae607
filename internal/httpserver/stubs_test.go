package httpserver

import (
	"context"
	"errors"
	"sync"
	"time"

	"quickcheck/internal/domain"
	"quickcheck/internal/ratelimit"

	"github.com/rs/zerolog"
)

func logDiscard() zerolog.Logger {
	return zerolog.Nop()
}

// memoryRepo is a product store with repository semantics, used to drive
// the real services through the router.
type memoryRepo struct {
	mu    sync.Mutex
	items map[string]domain.Product
	order []string
	clock time.Time
	err   error
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
	if r.err != nil {
		return nil, r.err
	}
	p, ok := r.items[code]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (r *memoryRepo) List(_ context.Context) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := []domain.Product{}
	for _, code := range r.order {
		if p, ok := r.items[code]; ok {
			out = append(out, p)
		}
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
	r.order = append(r.order, code)
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

type stubLimiter struct {
	decision ratelimit.Decision
	err      error
	keys     []string
}

func (s *stubLimiter) Allow(_ context.Context, key string) (ratelimit.Decision, error) {
	s.keys = append(s.keys, key)
	return s.decision, s.err
}

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(context.Context) error {
	return s.err
}

var errBoom = errors.New("boom")
