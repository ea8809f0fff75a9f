package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"child-growth-tracker/internal/domain/growth"
)

type growthRepo struct {
	mu      sync.RWMutex
	byChild map[string][]growth.Record
}

func NewGrowthRepo() growth.Repository {
	return &growthRepo{
		byChild: make(map[string][]growth.Record),
	}
}

func (r *growthRepo) Create(ctx context.Context, rec growth.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rec.ID == "" {
		return errors.New("record id required")
	}
	for _, existing := range r.byChild[rec.ChildID] {
		if existing.ID == rec.ID {
			return errors.New("record already exists")
		}
	}

	r.byChild[rec.ChildID] = append(r.byChild[rec.ChildID], rec)
	return nil
}

func (r *growthRepo) ListByChild(ctx context.Context, childID string) ([]growth.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := r.byChild[childID]
	out := make([]growth.Record, len(records))
	copy(out, records)

	// Ascending by measurement date, recording time as tie-break.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].Date.Before(out[j].Date)
	})

	return out, nil
}
