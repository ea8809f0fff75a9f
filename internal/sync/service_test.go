package sync

import (
	"context"
	"errors"
	"testing"
	"time"

	"child-growth-tracker/internal/adapters/kvstore"
	"child-growth-tracker/internal/adapters/storage/localstore"
	"child-growth-tracker/internal/domain/children"
	"child-growth-tracker/internal/domain/growth"
	"child-growth-tracker/internal/domain/growth/who"
	"child-growth-tracker/internal/platform/logger"
	"child-growth-tracker/internal/ports/upstream"
)

// -------------------------
// Fake remote backend
// -------------------------

type fakeAPI struct {
	children []children.Child
	records  map[string][]growth.Record

	// down makes every call fail with a RemoteError.
	down bool
	// failWith, when set, makes every call fail with this exact error.
	failWith error

	validateNIKCalls int
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{records: map[string][]growth.Record{}}
}

func (f *fakeAPI) err(op string) error {
	if f.failWith != nil {
		return f.failWith
	}
	if f.down {
		return &upstream.RemoteError{Op: op, Err: errors.New("connection refused")}
	}
	return nil
}

func (f *fakeAPI) FetchChildren(ctx context.Context) ([]children.Child, error) {
	if err := f.err("fetch children"); err != nil {
		return nil, err
	}
	out := make([]children.Child, len(f.children))
	copy(out, f.children)
	return out, nil
}

func (f *fakeAPI) CreateChild(ctx context.Context, in children.CreateInput) (children.Child, error) {
	if err := f.err("create child"); err != nil {
		return children.Child{}, err
	}
	c := children.Child{
		ID:           "remote-" + in.NIK,
		Name:         in.Name,
		BirthDate:    in.BirthDate,
		Sex:          in.Sex,
		NIK:          in.NIK,
		ParentUserID: in.ParentUserID,
		CreatedAt:    time.Now(),
	}
	f.children = append(f.children, c)
	return c, nil
}

func (f *fakeAPI) ValidateNIK(ctx context.Context, nik string) (children.NIKValidation, error) {
	f.validateNIKCalls++
	if err := f.err("validate nik"); err != nil {
		return children.NIKValidation{}, err
	}
	for _, c := range f.children {
		if c.NIK == nik {
			return children.NIKValidation{Available: false, Message: "NIK is already registered"}, nil
		}
	}
	return children.NIKValidation{Available: true, Message: "NIK is available"}, nil
}

func (f *fakeAPI) FetchRecords(ctx context.Context, childID string) ([]growth.Record, error) {
	if err := f.err("fetch records"); err != nil {
		return nil, err
	}
	out := make([]growth.Record, len(f.records[childID]))
	copy(out, f.records[childID])
	return out, nil
}

func (f *fakeAPI) CreateRecord(ctx context.Context, childID string, in growth.AddRecordInput) (growth.Record, error) {
	if err := f.err("create record"); err != nil {
		return growth.Record{}, err
	}
	rec := growth.Record{
		ID:        "remote-rec",
		ChildID:   childID,
		Date:      in.Date,
		Height:    in.Height,
		Weight:    in.Weight,
		CreatedAt: time.Now(),
	}
	f.records[childID] = append(f.records[childID], rec)
	return rec, nil
}

func (f *fakeAPI) FetchStats(ctx context.Context, childID string) (growth.Stats, error) {
	if err := f.err("fetch stats"); err != nil {
		return growth.Stats{}, err
	}
	return growth.Aggregate(f.records[childID]), nil
}

func (f *fakeAPI) FetchChart(ctx context.Context, childID string) (growth.Chart, error) {
	if err := f.err("fetch chart"); err != nil {
		return growth.Chart{}, err
	}
	out := make([]growth.Record, len(f.records[childID]))
	copy(out, f.records[childID])
	return growth.Chart{Records: out}, nil
}

// -------------------------
// Fixtures
// -------------------------

func quietLogger() logger.Logger {
	return logger.New(logger.Options{Level: logger.Error})
}

func remoteChild(id, nik string) children.Child {
	return children.Child{
		ID:           id,
		Name:         "Child " + id,
		BirthDate:    time.Date(2023, 6, 10, 0, 0, 0, 0, time.UTC),
		Sex:          children.SexMale,
		NIK:          nik,
		ParentUserID: "parent-1",
		CreatedAt:    time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC),
	}
}

func remoteRecord(id, childID, date string) growth.Record {
	d, _ := time.Parse("2006-01-02", date)
	return growth.Record{
		ID:        id,
		ChildID:   childID,
		Date:      d,
		Height:    72.0,
		Weight:    8.8,
		CreatedAt: d,
	}
}

// -------------------------
// Tests
// -------------------------

func TestService_List_CachesThenFallsBack(t *testing.T) {
	api := newFakeAPI()
	api.children = []children.Child{remoteChild("c1", "1111222233334444")}
	store := localstore.New(kvstore.NewMemory())
	svc := New(api, store, quietLogger())

	items, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(items) != 1 || items[0].ID != "c1" {
		t.Fatalf("expected remote children, got %+v", items)
	}

	// Remote goes away; the cached snapshot serves the same answer.
	api.down = true
	items, err = svc.List(context.Background())
	if err != nil {
		t.Fatalf("List fallback error: %v", err)
	}
	if len(items) != 1 || items[0].ID != "c1" {
		t.Fatalf("expected cached children, got %+v", items)
	}
}

func TestService_List_NonRemoteError_Propagates(t *testing.T) {
	api := newFakeAPI()
	api.failWith = errors.New("some non-remote failure")
	store := localstore.New(kvstore.NewMemory())
	svc := New(api, store, quietLogger())

	if _, err := svc.List(context.Background()); err == nil || upstream.IsRemote(err) {
		t.Fatalf("expected non-remote error to propagate, got %v", err)
	}
}

func TestService_Create_Offline_RetainedLocally(t *testing.T) {
	api := newFakeAPI()
	api.down = true
	store := localstore.New(kvstore.NewMemory())
	svc := New(api, store, quietLogger())

	c, err := svc.Create(context.Background(), children.CreateInput{
		Name:         "Siti",
		BirthDate:    time.Date(2023, 6, 10, 0, 0, 0, 0, time.UTC),
		Sex:          children.SexFemale,
		NIK:          "3174012345678901",
		ParentUserID: "parent-1",
	})
	if err != nil {
		t.Fatalf("offline Create error: %v", err)
	}
	if c.ID == "" {
		t.Fatalf("expected locally generated ID")
	}

	// Still offline: the child is served from the snapshot.
	items, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(items) != 1 || items[0].NIK != "3174012345678901" {
		t.Fatalf("expected offline child retained, got %+v", items)
	}
}

func TestService_Create_Offline_ValidatesLocally(t *testing.T) {
	api := newFakeAPI()
	api.down = true
	store := localstore.New(kvstore.NewMemory())
	svc := New(api, store, quietLogger())

	_, err := svc.Create(context.Background(), children.CreateInput{
		Name:      "Siti",
		BirthDate: time.Date(2023, 6, 10, 0, 0, 0, 0, time.UTC),
		Sex:       children.SexFemale,
		NIK:       "short",
	})
	if !errors.Is(err, children.ErrInvalidInput) {
		t.Fatalf("expected local validation failure, got %v", err)
	}
}

func TestService_AddRecord_Offline_ComputesAnnotations(t *testing.T) {
	api := newFakeAPI()
	store := localstore.New(kvstore.NewMemory())
	svc := New(api, store, quietLogger())

	child := remoteChild("c1", "1111222233334444")
	if err := store.ReplaceChildren([]children.Child{child}, time.Now()); err != nil {
		t.Fatalf("seed children: %v", err)
	}

	api.down = true
	rec, err := svc.AddRecord(context.Background(), child.ID, growth.AddRecordInput{
		Date:   time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC),
		Height: 75.0,
		Weight: 9.1,
	})
	if err != nil {
		t.Fatalf("offline AddRecord error: %v", err)
	}

	// Annotations are computed locally, indistinguishable from the remote's.
	if rec.AgeInMonths != 12 {
		t.Fatalf("expected age 12 months, got %d", rec.AgeInMonths)
	}
	if rec.HeightZScore == nil || who.Round2(*rec.HeightZScore) != -0.29 {
		t.Fatalf("expected locally computed z -0.29, got %+v", rec.HeightZScore)
	}
	if rec.HeightStatus != who.StatusNormal {
		t.Fatalf("expected normal, got %s", rec.HeightStatus)
	}

	records, err := svc.Records(context.Background(), child.ID)
	if err != nil {
		t.Fatalf("Records error: %v", err)
	}
	if len(records) != 1 || records[0].ID != rec.ID {
		t.Fatalf("expected offline record retained, got %+v", records)
	}
}

func TestService_Records_Resync_Overwrites(t *testing.T) {
	api := newFakeAPI()
	store := localstore.New(kvstore.NewMemory())
	svc := New(api, store, quietLogger())

	child := remoteChild("c1", "1111222233334444")
	if err := store.ReplaceChildren([]children.Child{child}, time.Now()); err != nil {
		t.Fatalf("seed children: %v", err)
	}
	// A leftover local record from an offline session.
	if err := store.RecordRepo().Create(context.Background(), remoteRecord("local-1", "c1", "2024-01-15")); err != nil {
		t.Fatalf("seed record: %v", err)
	}

	api.records["c1"] = []growth.Record{remoteRecord("remote-1", "c1", "2024-02-20")}

	records, err := svc.Records(context.Background(), "c1")
	if err != nil {
		t.Fatalf("Records error: %v", err)
	}
	if len(records) != 1 || records[0].ID != "remote-1" {
		t.Fatalf("expected remote truth, got %+v", records)
	}

	// The cache was overwritten, not merged.
	cached, err := store.RecordRepo().ListByChild(context.Background(), "c1")
	if err != nil {
		t.Fatalf("ListByChild error: %v", err)
	}
	if len(cached) != 1 || cached[0].ID != "remote-1" {
		t.Fatalf("expected cache overwritten, got %+v", cached)
	}
}

func TestService_ValidateNIK_Malformed_NoRemoteCall(t *testing.T) {
	api := newFakeAPI()
	store := localstore.New(kvstore.NewMemory())
	svc := New(api, store, quietLogger())

	v, err := svc.ValidateNIK(context.Background(), "123")
	if err != nil {
		t.Fatalf("ValidateNIK error: %v", err)
	}
	if v.Available {
		t.Fatalf("expected malformed NIK unavailable")
	}
	if api.validateNIKCalls != 0 {
		t.Fatalf("expected no remote call for malformed NIK, got %d", api.validateNIKCalls)
	}
}

func TestService_CacheRecords_DiscardsStaleGeneration(t *testing.T) {
	api := newFakeAPI()
	store := localstore.New(kvstore.NewMemory())
	svc := New(api, store, quietLogger())

	gen1 := svc.nextGen("c1")
	gen2 := svc.nextGen("c1")

	// The older request resolves last; its write must be discarded.
	svc.cacheRecords("c1", gen2, []growth.Record{remoteRecord("newer", "c1", "2024-02-20")})
	svc.cacheRecords("c1", gen1, []growth.Record{remoteRecord("older", "c1", "2024-01-15")})

	cached, err := store.RecordRepo().ListByChild(context.Background(), "c1")
	if err != nil {
		t.Fatalf("ListByChild error: %v", err)
	}
	if len(cached) != 1 || cached[0].ID != "newer" {
		t.Fatalf("expected stale write discarded, got %+v", cached)
	}
}

func TestService_Stats_FallsBackToLocalRecomputation(t *testing.T) {
	api := newFakeAPI()
	store := localstore.New(kvstore.NewMemory())
	svc := New(api, store, quietLogger())

	child := remoteChild("c1", "1111222233334444")
	if err := store.ReplaceChildren([]children.Child{child}, time.Now()); err != nil {
		t.Fatalf("seed children: %v", err)
	}
	if err := store.ReplaceRecords("c1", []growth.Record{
		remoteRecord("r1", "c1", "2024-01-15"),
		remoteRecord("r2", "c1", "2024-02-20"),
	}, time.Now()); err != nil {
		t.Fatalf("seed records: %v", err)
	}

	api.down = true
	st, err := svc.Stats(context.Background(), "c1")
	if err != nil {
		t.Fatalf("Stats fallback error: %v", err)
	}
	if st.Count != 2 {
		t.Fatalf("expected local aggregate over 2 records, got %+v", st)
	}
	if st.MinDate != "2024-01-15" || st.MaxDate != "2024-02-20" {
		t.Fatalf("unexpected date range %q..%q", st.MinDate, st.MaxDate)
	}
}
