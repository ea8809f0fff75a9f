package localstore

import (
	"context"
	"errors"

	"child-growth-tracker/internal/domain/children"
	"child-growth-tracker/internal/domain/growth"
)

// ChildRepo exposes the snapshot as a children repository.
func (s *Store) ChildRepo() children.Repository {
	return &childRepo{store: s}
}

// RecordRepo exposes the snapshot as a growth repository. Records appended
// here (the offline add path) are retained until a future full resync
// overwrites the child's cached set with remote truth.
func (s *Store) RecordRepo() growth.Repository {
	return &recordRepo{store: s}
}

type childRepo struct {
	store *Store
}

func (r *childRepo) Create(ctx context.Context, c children.Child) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	snap, err := r.store.load()
	if err != nil {
		return err
	}
	for _, existing := range snap.Children {
		if existing.ID == c.ID {
			return errors.New("child already exists")
		}
		if existing.NIK == c.NIK {
			return errors.New("nik already registered")
		}
	}
	snap.Children = append(snap.Children, c)
	return r.store.save(snap)
}

func (r *childRepo) GetByID(ctx context.Context, id string) (children.Child, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	snap, err := r.store.load()
	if err != nil {
		return children.Child{}, err
	}
	for _, c := range snap.Children {
		if c.ID == id {
			return c, nil
		}
	}
	return children.Child{}, ErrNotFound
}

func (r *childRepo) GetByNIK(ctx context.Context, nik string) (children.Child, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	snap, err := r.store.load()
	if err != nil {
		return children.Child{}, err
	}
	for _, c := range snap.Children {
		if c.NIK == nik {
			return c, nil
		}
	}
	return children.Child{}, ErrNotFound
}

func (r *childRepo) List(ctx context.Context) ([]children.Child, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	snap, err := r.store.load()
	if err != nil {
		return nil, err
	}
	out := make([]children.Child, len(snap.Children))
	copy(out, snap.Children)
	return out, nil
}

func (r *childRepo) ListByParent(ctx context.Context, parentUserID string) ([]children.Child, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	snap, err := r.store.load()
	if err != nil {
		return nil, err
	}
	out := make([]children.Child, 0)
	for _, c := range snap.Children {
		if c.ParentUserID == parentUserID {
			out = append(out, c)
		}
	}
	return out, nil
}

type recordRepo struct {
	store *Store
}

func (r *recordRepo) Create(ctx context.Context, rec growth.Record) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	snap, err := r.store.load()
	if err != nil {
		return err
	}
	for _, existing := range snap.GrowthRecords[rec.ChildID] {
		if existing.ID == rec.ID {
			return errors.New("record already exists")
		}
	}
	snap.GrowthRecords[rec.ChildID] = sortedRecords(append(snap.GrowthRecords[rec.ChildID], rec))
	return r.store.save(snap)
}

func (r *recordRepo) ListByChild(ctx context.Context, childID string) ([]growth.Record, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	snap, err := r.store.load()
	if err != nil {
		return nil, err
	}
	records := snap.GrowthRecords[childID]
	out := make([]growth.Record, len(records))
	copy(out, records)
	return out, nil
}
