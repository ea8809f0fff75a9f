package children

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("child not found")
	ErrNIKTaken     = errors.New("nik already registered")
)

const (
	nikLength = 16

	// maxAgeYears caps how far in the past a birth date may lie.
	maxAgeYears = 100
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name         string
	BirthDate    time.Time
	Sex          Sex
	NIK          string
	ParentUserID string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Child, error) {
	name := strings.TrimSpace(in.Name)
	nik := strings.TrimSpace(in.NIK)

	if name == "" {
		return Child{}, ErrInvalidInput
	}
	if in.Sex != SexMale && in.Sex != SexFemale {
		return Child{}, ErrInvalidInput
	}
	if !ValidNIKFormat(nik) {
		return Child{}, ErrInvalidInput
	}

	now := s.now()
	if in.BirthDate.IsZero() || in.BirthDate.After(now) {
		return Child{}, ErrInvalidInput
	}
	if in.BirthDate.Before(now.AddDate(-maxAgeYears, 0, 0)) {
		return Child{}, ErrInvalidInput
	}

	// NIK uniqueness is enforced at creation.
	if _, err := s.repo.GetByNIK(ctx, nik); err == nil {
		return Child{}, ErrNIKTaken
	}

	c := Child{
		ID:           uuid.NewString(),
		Name:         name,
		BirthDate:    in.BirthDate,
		Sex:          in.Sex,
		NIK:          nik,
		ParentUserID: strings.TrimSpace(in.ParentUserID),
		CreatedAt:    now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return Child{}, err
	}
	return c, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Child, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Child{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Child, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByParent(ctx context.Context, parentUserID string) ([]Child, error) {
	return s.repo.ListByParent(ctx, parentUserID)
}

// ValidateNIK answers an availability check. Format failures are answered
// without touching the repository so callers can short-circuit before any
// network or storage round trip.
func (s *Service) ValidateNIK(ctx context.Context, nik string) (NIKValidation, error) {
	nik = strings.TrimSpace(nik)
	if !ValidNIKFormat(nik) {
		return NIKValidation{
			Available: false,
			Message:   "NIK must be exactly 16 numeric digits",
		}, nil
	}

	if _, err := s.repo.GetByNIK(ctx, nik); err == nil {
		return NIKValidation{
			Available: false,
			Message:   "NIK is already registered",
		}, nil
	}

	return NIKValidation{
		Available: true,
		Message:   "NIK is available",
	}, nil
}

// ValidNIKFormat reports whether nik is exactly 16 numeric digits.
func ValidNIKFormat(nik string) bool {
	if len(nik) != nikLength {
		return false
	}
	for _, r := range nik {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
