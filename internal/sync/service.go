// Package sync orchestrates "try remote, fall back to local" for every
// operation of the API. Handlers talk to this service exactly as they would
// to the direct storage services; they never see a remote failure unless the
// local path fails too, and records coming out of either path carry the same
// shape and semantics.
package sync

import (
	"context"
	stdsync "sync"
	"time"

	"child-growth-tracker/internal/adapters/storage/localstore"
	"child-growth-tracker/internal/domain/children"
	"child-growth-tracker/internal/domain/growth"
	"child-growth-tracker/internal/platform/logger"
	"child-growth-tracker/internal/ports/upstream"
)

type Service struct {
	api   upstream.GrowthAPI
	store *localstore.Store
	log   logger.Logger
	now   func() time.Time

	// Local recomputation path: the same domain services used in direct
	// storage mode, bound to the snapshot store. Whatever the remote would
	// have computed (age, Z-score, status), these compute locally with
	// identical semantics.
	children *children.Service
	growth   *growth.Service

	// Per-child request generations. A remote read that resolves after a
	// newer request for the same child was issued must not overwrite the
	// cache; the caller still gets its own response.
	mu   stdsync.Mutex
	gens map[string]uint64
}

func New(api upstream.GrowthAPI, store *localstore.Store, log logger.Logger) *Service {
	childrenSvc := children.NewService(store.ChildRepo())
	growthSvc := growth.NewService(store.RecordRepo(), childrenSvc)

	return &Service{
		api:      api,
		store:    store,
		log:      log,
		now:      time.Now,
		children: childrenSvc,
		growth:   growthSvc,
		gens:     make(map[string]uint64),
	}
}

// ---- children side ----

func (s *Service) List(ctx context.Context) ([]children.Child, error) {
	items, err := s.api.FetchChildren(ctx)
	if err != nil {
		if !upstream.IsRemote(err) {
			return nil, err
		}
		s.fellBack("fetch children", err)
		return s.children.List(ctx)
	}

	// Read-path resync: overwrite, never merge.
	if err := s.store.ReplaceChildren(items, s.now()); err != nil {
		s.cacheWriteFailed("children", err)
	}
	return items, nil
}

func (s *Service) ListByParent(ctx context.Context, parentUserID string) ([]children.Child, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]children.Child, 0)
	for _, c := range items {
		if c.ParentUserID == parentUserID {
			out = append(out, c)
		}
	}
	return out, nil
}

// GetByID serves from the snapshot, refreshing it from the remote once when
// the child is not cached yet.
func (s *Service) GetByID(ctx context.Context, id string) (children.Child, error) {
	c, err := s.children.GetByID(ctx, id)
	if err == nil {
		return c, nil
	}

	items, ferr := s.api.FetchChildren(ctx)
	if ferr != nil {
		return children.Child{}, err
	}
	if serr := s.store.ReplaceChildren(items, s.now()); serr != nil {
		s.cacheWriteFailed("children", serr)
	}

	for _, c := range items {
		if c.ID == id {
			return c, nil
		}
	}
	return children.Child{}, children.ErrNotFound
}

func (s *Service) Create(ctx context.Context, in children.CreateInput) (children.Child, error) {
	c, err := s.api.CreateChild(ctx, in)
	if err != nil {
		if !upstream.IsRemote(err) {
			return children.Child{}, err
		}
		s.fellBack("create child", err)
		// Offline add: full local validation and creation. The child is
		// retained in the snapshot until a future full resync.
		return s.children.Create(ctx, in)
	}

	if serr := s.store.UpsertChild(c); serr != nil {
		s.cacheWriteFailed("child", serr)
	}
	return c, nil
}

// ValidateNIK answers malformed NIKs locally, without any remote call.
func (s *Service) ValidateNIK(ctx context.Context, nik string) (children.NIKValidation, error) {
	if !children.ValidNIKFormat(nik) {
		return s.children.ValidateNIK(ctx, nik)
	}

	v, err := s.api.ValidateNIK(ctx, nik)
	if err != nil {
		if !upstream.IsRemote(err) {
			return children.NIKValidation{}, err
		}
		s.fellBack("validate nik", err)
		return s.children.ValidateNIK(ctx, nik)
	}
	return v, nil
}

// ---- growth side ----

func (s *Service) Records(ctx context.Context, childID string) ([]growth.Record, error) {
	gen := s.nextGen(childID)

	records, err := s.api.FetchRecords(ctx, childID)
	if err != nil {
		if !upstream.IsRemote(err) {
			return nil, err
		}
		s.fellBack("fetch records", err)
		return s.growth.Records(ctx, childID)
	}

	s.cacheRecords(childID, gen, records)
	return records, nil
}

func (s *Service) Stats(ctx context.Context, childID string) (growth.Stats, error) {
	st, err := s.api.FetchStats(ctx, childID)
	if err != nil {
		if !upstream.IsRemote(err) {
			return growth.Stats{}, err
		}
		s.fellBack("fetch stats", err)
		// Full local recomputation over the snapshot, never a partial mix.
		return s.growth.Stats(ctx, childID)
	}
	return st, nil
}

func (s *Service) Chart(ctx context.Context, childID string) (growth.Chart, error) {
	gen := s.nextGen(childID)

	chart, err := s.api.FetchChart(ctx, childID)
	if err != nil {
		if !upstream.IsRemote(err) {
			return growth.Chart{}, err
		}
		s.fellBack("fetch chart", err)
		return s.growth.Chart(ctx, childID)
	}

	s.cacheRecords(childID, gen, chart.Records)
	return chart, nil
}

func (s *Service) AddRecord(ctx context.Context, childID string, in growth.AddRecordInput) (growth.Record, error) {
	rec, err := s.api.CreateRecord(ctx, childID, in)
	if err != nil {
		if !upstream.IsRemote(err) {
			return growth.Record{}, err
		}
		s.fellBack("create record", err)
		// Offline add: age, Z-score and status are computed locally so the
		// record is indistinguishable from a remote-computed one. It stays
		// in the snapshot until a future full resync overwrites the child's
		// cached set.
		return s.growth.AddRecord(ctx, childID, in)
	}

	if serr := s.store.RecordRepo().Create(ctx, rec); serr != nil {
		s.cacheWriteFailed("record", serr)
	}
	return rec, nil
}

// LastSync exposes the snapshot's last successful remote refresh.
func (s *Service) LastSync() (time.Time, error) {
	return s.store.LastSync()
}

// ---- internals ----

func (s *Service) nextGen(childID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gens[childID]++
	return s.gens[childID]
}

// cacheRecords overwrites the child's cached records unless a newer request
// for the same child has been issued since; a stale resolution is discarded.
func (s *Service) cacheRecords(childID string, gen uint64, records []growth.Record) {
	s.mu.Lock()
	current := s.gens[childID]
	s.mu.Unlock()

	if current != gen {
		s.log.Debug("discarding stale remote response", map[string]any{
			"child_id": childID,
			"gen":      gen,
			"current":  current,
		})
		return
	}

	if err := s.store.ReplaceRecords(childID, records, s.now()); err != nil {
		s.cacheWriteFailed("records", err)
	}
}

// Remote failures are logged, not alarmed; the caller gets the local result.
func (s *Service) fellBack(op string, err error) {
	s.log.Warn("remote unavailable, serving local fallback", map[string]any{
		"op":    op,
		"error": err.Error(),
	})
}

func (s *Service) cacheWriteFailed(what string, err error) {
	s.log.Error("local cache write failed", map[string]any{
		"what":  what,
		"error": err.Error(),
	})
}
