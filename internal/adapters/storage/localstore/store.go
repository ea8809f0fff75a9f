// Package localstore keeps the offline snapshot: one versioned JSON document
// behind an injected key-value capability. It backs the sync layer's local
// fallback path and doubles as a children/growth repository so the domain
// services can run against it unchanged.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"child-growth-tracker/internal/domain/children"
	"child-growth-tracker/internal/domain/growth"
	"child-growth-tracker/internal/ports/kv"
)

const (
	// Namespace is the single key the snapshot lives under.
	Namespace = "growth_tracker_local"

	// SnapshotVersion guards the document layout. A version mismatch on
	// read discards all local data and starts fresh; there is no migration.
	SnapshotVersion = 1
)

var (
	ErrNotFound = errors.New("not found")
)

// Snapshot is the full local document. Every write replaces it wholesale;
// last writer wins.
type Snapshot struct {
	Children      []children.Child           `json:"children"`
	GrowthRecords map[string][]growth.Record `json:"growthRecords"`
	Parents       []string                   `json:"parents"`
	LastSync      time.Time                  `json:"lastSync"`
	Version       int                        `json:"version"`
}

type Store struct {
	mu sync.Mutex
	kv kv.Store
}

func New(store kv.Store) *Store {
	return &Store{kv: store}
}

// load reads the snapshot, returning a fresh one when the key is absent,
// the document does not parse, or the version does not match.
func (s *Store) load() (Snapshot, error) {
	raw, ok, err := s.kv.Get(Namespace)
	if err != nil {
		return Snapshot{}, fmt.Errorf("localstore: read: %w", err)
	}
	if !ok {
		return freshSnapshot(), nil
	}

	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return freshSnapshot(), nil
	}
	if snap.Version != SnapshotVersion {
		return freshSnapshot(), nil
	}
	if snap.GrowthRecords == nil {
		snap.GrowthRecords = make(map[string][]growth.Record)
	}
	return snap, nil
}

func (s *Store) save(snap Snapshot) error {
	snap.Version = SnapshotVersion
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("localstore: encode: %w", err)
	}
	if err := s.kv.Set(Namespace, raw); err != nil {
		return fmt.Errorf("localstore: write: %w", err)
	}
	return nil
}

func freshSnapshot() Snapshot {
	return Snapshot{
		GrowthRecords: make(map[string][]growth.Record),
		Version:       SnapshotVersion,
	}
}

// ReplaceChildren overwrites the cached children with remote truth and
// stamps the sync time.
func (s *Store) ReplaceChildren(items []children.Child, syncedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load()
	if err != nil {
		return err
	}
	snap.Children = items
	snap.LastSync = syncedAt
	return s.save(snap)
}

// UpsertChild inserts or replaces a single child.
func (s *Store) UpsertChild(c children.Child) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load()
	if err != nil {
		return err
	}
	replaced := false
	for i, existing := range snap.Children {
		if existing.ID == c.ID {
			snap.Children[i] = c
			replaced = true
			break
		}
	}
	if !replaced {
		snap.Children = append(snap.Children, c)
	}
	return s.save(snap)
}

// ReplaceRecords overwrites (never merges) the cached records of one child
// with remote truth and stamps the sync time.
func (s *Store) ReplaceRecords(childID string, records []growth.Record, syncedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load()
	if err != nil {
		return err
	}
	snap.GrowthRecords[childID] = sortedRecords(records)
	snap.LastSync = syncedAt
	return s.save(snap)
}

// Export writes the full snapshot document for backup.
func (s *Store) Export(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load()
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}

// Import replaces the snapshot with a previously exported document. The
// document's version must match; restoring across versions is not supported.
func (s *Store) Import(r io.Reader) error {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return fmt.Errorf("localstore: decode import: %w", err)
	}
	if snap.Version != SnapshotVersion {
		return fmt.Errorf("localstore: import version %d does not match %d", snap.Version, SnapshotVersion)
	}
	if snap.GrowthRecords == nil {
		snap.GrowthRecords = make(map[string][]growth.Record)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(snap)
}

// Reset discards all local data.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Remove(Namespace); err != nil {
		return fmt.Errorf("localstore: remove: %w", err)
	}
	return nil
}

// LastSync returns the time of the last successful remote refresh.
func (s *Store) LastSync() (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load()
	if err != nil {
		return time.Time{}, err
	}
	return snap.LastSync, nil
}

func sortedRecords(records []growth.Record) []growth.Record {
	out := make([]growth.Record, len(records))
	copy(out, records)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].Date.Before(out[j].Date)
	})
	return out
}
