package babies

import (
	"context"
	"strings"
	"time"

	"baby-tracker/internal/contract"
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
	Name      string
	Gender    string
	BirthDate *time.Time
}

// OptionalTime distingue "campo no enviado" de "campo enviado como null".
// Se usa para el PUT parcial: null limpia la fecha, ausente la deja igual.
type OptionalTime struct {
	Present bool
	Value   *time.Time
}

type UpdateInput struct {
	Name      *string
	Gender    *string
	BirthDate OptionalTime
}

func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (Baby, error) {
	if strings.TrimSpace(userID) == "" {
		return Baby{}, contract.Required("userId")
	}
	if strings.TrimSpace(in.Name) == "" {
		return Baby{}, contract.Required("name")
	}
	gender := strings.TrimSpace(in.Gender)
	if gender != "" && !ValidGender(gender) {
		return Baby{}, contract.Invalid("gender", "gender must be one of boy, girl, other")
	}

	b := Baby{
		UserID:    userID,
		Name:      strings.TrimSpace(in.Name),
		Gender:    Gender(gender),
		BirthDate: in.BirthDate,
		CreatedAt: s.now(),
	}

	return s.repo.Create(ctx, b)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Baby, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]Baby, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Update aplica un PUT parcial sobre el perfil: solo name, gender y birthDate
// son mutables. UserID y CreatedAt nunca se tocan.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Baby, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Baby{}, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return Baby{}, contract.Required("name")
		}
		current.Name = name
	}
	if in.Gender != nil {
		gender := strings.TrimSpace(*in.Gender)
		if gender != "" && !ValidGender(gender) {
			return Baby{}, contract.Invalid("gender", "gender must be one of boy, girl, other")
		}
		current.Gender = Gender(gender)
	}
	if in.BirthDate.Present {
		current.BirthDate = in.BirthDate.Value
	}

	if err := s.repo.Update(ctx, current); err != nil {
		return Baby{}, err
	}
	return current, nil
}

// Delete borra el perfil con todos sus logs. Idempotente.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
