package growth

import (
	"context"
	"errors"
	"strings"
	"time"

	"child-growth-tracker/internal/domain/children"
	"child-growth-tracker/internal/domain/growth/who"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrChildNotFound = errors.New("child not found")
)

// maxRecordAgeYears caps how far after the birth date a measurement may lie.
const maxRecordAgeYears = 100

// ChildSource resolves a child for annotation and permission checks.
// Satisfied by *children.Service; kept as an interface so the sync layer can
// hand in its snapshot-backed directory.
type ChildSource interface {
	GetByID(ctx context.Context, id string) (children.Child, error)
}

type Service struct {
	repo     Repository
	children ChildSource
	now      func() time.Time
}

func NewService(repo Repository, childSource ChildSource) *Service {
	return &Service{
		repo:     repo,
		children: childSource,
		now:      time.Now,
	}
}

type AddRecordInput struct {
	Date              time.Time
	Height            float64 // cm
	Weight            float64 // kg
	HeadCircumference *float64
}

// AddRecord validates and annotates a raw measurement, then appends it to
// the child's history. Age in months and height-for-age Z-score are always
// recomputed here from (child.BirthDate, input.Date); a non-computable
// Z-score does not block the write.
func (s *Service) AddRecord(ctx context.Context, childID string, in AddRecordInput) (Record, error) {
	childID = strings.TrimSpace(childID)
	if childID == "" {
		return Record{}, ErrInvalidInput
	}

	child, err := s.children.GetByID(ctx, childID)
	if err != nil {
		return Record{}, ErrChildNotFound
	}

	if in.Date.IsZero() {
		return Record{}, ErrInvalidInput
	}
	if in.Height <= 0 || in.Weight <= 0 {
		return Record{}, ErrInvalidInput
	}
	if in.HeadCircumference != nil && *in.HeadCircumference <= 0 {
		return Record{}, ErrInvalidInput
	}

	now := s.now()
	if in.Date.After(now) {
		return Record{}, ErrInvalidInput
	}
	if in.Date.After(child.BirthDate.AddDate(maxRecordAgeYears, 0, 0)) {
		return Record{}, ErrInvalidInput
	}

	ageMonths, err := who.AgeInMonths(child.BirthDate, in.Date)
	if err != nil {
		return Record{}, ErrInvalidInput
	}

	z := who.ZScore(who.HeightForAge, child.Sex.WHO(), ageMonths, in.Height)

	rec := Record{
		ID:                uuid.NewString(),
		ChildID:           childID,
		Date:              in.Date,
		Height:            in.Height,
		Weight:            in.Weight,
		HeadCircumference: in.HeadCircumference,
		AgeInMonths:       ageMonths,
		HeightZScore:      z,
		HeightStatus:      who.Classify(who.HeightForAge, z),
		CreatedAt:         now,
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Records returns the child's history, oldest first.
func (s *Service) Records(ctx context.Context, childID string) ([]Record, error) {
	childID = strings.TrimSpace(childID)
	if childID == "" {
		return nil, ErrInvalidInput
	}
	if _, err := s.children.GetByID(ctx, childID); err != nil {
		return nil, ErrChildNotFound
	}
	return s.repo.ListByChild(ctx, childID)
}

// Stats aggregates the child's history on demand.
func (s *Service) Stats(ctx context.Context, childID string) (Stats, error) {
	records, err := s.Records(ctx, childID)
	if err != nil {
		return Stats{}, err
	}
	return Aggregate(records), nil
}

// Chart returns the child's records together with the WHO reference bands
// for both indicators at the child's sex.
func (s *Service) Chart(ctx context.Context, childID string) (Chart, error) {
	childID = strings.TrimSpace(childID)
	if childID == "" {
		return Chart{}, ErrInvalidInput
	}
	child, err := s.children.GetByID(ctx, childID)
	if err != nil {
		return Chart{}, ErrChildNotFound
	}

	records, err := s.repo.ListByChild(ctx, childID)
	if err != nil {
		return Chart{}, err
	}

	curves := who.Curves(who.HeightForAge, child.Sex.WHO())
	curves = append(curves, who.Curves(who.WeightForAge, child.Sex.WHO())...)

	return Chart{
		Records: records,
		Curves:  curves,
	}, nil
}
