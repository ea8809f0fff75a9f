package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"child-growth-tracker/internal/domain/children"
)

var (
	ErrNotFound = errors.New("not found")
)

type childrenRepo struct {
	mu   sync.RWMutex
	byID map[string]children.Child
}

func NewChildrenRepo() children.Repository {
	return &childrenRepo{
		byID: make(map[string]children.Child),
	}
}

func (r *childrenRepo) Create(ctx context.Context, c children.Child) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("child id required")
	}
	if _, exists := r.byID[c.ID]; exists {
		return errors.New("child already exists")
	}
	for _, existing := range r.byID {
		if existing.NIK == c.NIK {
			return errors.New("nik already registered")
		}
	}
	r.byID[c.ID] = c
	return nil
}

func (r *childrenRepo) GetByID(ctx context.Context, id string) (children.Child, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return children.Child{}, ErrNotFound
	}
	return c, nil
}

func (r *childrenRepo) GetByNIK(ctx context.Context, nik string) (children.Child, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.byID {
		if c.NIK == nik {
			return c, nil
		}
	}
	return children.Child{}, ErrNotFound
}

func (r *childrenRepo) List(ctx context.Context) ([]children.Child, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]children.Child, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	sortChildren(out)
	return out, nil
}

func (r *childrenRepo) ListByParent(ctx context.Context, parentUserID string) ([]children.Child, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]children.Child, 0)
	for _, c := range r.byID {
		if c.ParentUserID == parentUserID {
			out = append(out, c)
		}
	}
	sortChildren(out)
	return out, nil
}

// Stable order by created_at asc (consistency in dev, map iteration is random).
func sortChildren(out []children.Child) {
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
}
