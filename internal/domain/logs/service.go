package logs

import (
	"context"
	"math"
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

type FeedingInput struct {
	Type     string
	Amount   *int
	Duration *int
	Side     string
	Time     *time.Time // nil = ahora
}

type SleepInput struct {
	StartTime time.Time
	EndTime   *time.Time
}

type DiaperInput struct {
	Type  string
	Time  *time.Time
	Notes string
}

type GrowthInput struct {
	Height            *float64
	Weight            *float64
	HeadCircumference *float64
	Date              *time.Time
}

type MemoryInput struct {
	Title       string
	Description string
	Date        *time.Time
	Emoji       string
}

func (s *Service) CreateFeeding(ctx context.Context, babyID int64, in FeedingInput) (Feeding, error) {
	if !ValidFeedingType(in.Type) {
		return Feeding{}, contract.Invalid("type", "type must be one of breast, bottle, formula, solids")
	}
	if in.Side != "" && !ValidSide(in.Side) {
		return Feeding{}, contract.Invalid("side", "side must be one of left, right, both")
	}

	return s.repo.CreateFeeding(ctx, Feeding{
		BabyID:   babyID,
		Type:     FeedingType(in.Type),
		Amount:   in.Amount,
		Duration: in.Duration,
		Side:     Side(in.Side),
		Time:     s.orNow(in.Time),
	})
}

// CreateSleepLog deriva la duración en el servidor:
// round((end - start) en segundos / 60). Sin endTime la sesión queda abierta
// y la duración es null. El cliente nunca puede fijar duration directamente.
func (s *Service) CreateSleepLog(ctx context.Context, babyID int64, in SleepInput) (SleepLog, error) {
	if in.StartTime.IsZero() {
		return SleepLog{}, contract.Required("startTime")
	}

	var duration *int
	if in.EndTime != nil {
		d := int(math.Round(in.EndTime.Sub(in.StartTime).Seconds() / 60))
		duration = &d
	}

	return s.repo.CreateSleepLog(ctx, SleepLog{
		BabyID:    babyID,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Duration:  duration,
	})
}

func (s *Service) CreateDiaperLog(ctx context.Context, babyID int64, in DiaperInput) (DiaperLog, error) {
	if !ValidDiaperType(in.Type) {
		return DiaperLog{}, contract.Invalid("type", "type must be one of wet, dirty, both")
	}

	return s.repo.CreateDiaperLog(ctx, DiaperLog{
		BabyID: babyID,
		Type:   DiaperType(in.Type),
		Time:   s.orNow(in.Time),
		Notes:  strings.TrimSpace(in.Notes),
	})
}

func (s *Service) CreateGrowthLog(ctx context.Context, babyID int64, in GrowthInput) (GrowthLog, error) {
	return s.repo.CreateGrowthLog(ctx, GrowthLog{
		BabyID:            babyID,
		Height:            in.Height,
		Weight:            in.Weight,
		HeadCircumference: in.HeadCircumference,
		Date:              s.orNow(in.Date),
	})
}

func (s *Service) CreateMemory(ctx context.Context, babyID int64, in MemoryInput) (Memory, error) {
	if strings.TrimSpace(in.Title) == "" {
		return Memory{}, contract.Required("title")
	}

	return s.repo.CreateMemory(ctx, Memory{
		BabyID:      babyID,
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Date:        s.orNow(in.Date),
		Emoji:       strings.TrimSpace(in.Emoji),
	})
}

func (s *Service) ListFeedings(ctx context.Context, babyID int64) ([]Feeding, error) {
	return s.repo.ListFeedings(ctx, babyID)
}

func (s *Service) ListSleepLogs(ctx context.Context, babyID int64) ([]SleepLog, error) {
	return s.repo.ListSleepLogs(ctx, babyID)
}

func (s *Service) ListDiaperLogs(ctx context.Context, babyID int64) ([]DiaperLog, error) {
	return s.repo.ListDiaperLogs(ctx, babyID)
}

func (s *Service) ListGrowthLogs(ctx context.Context, babyID int64) ([]GrowthLog, error) {
	return s.repo.ListGrowthLogs(ctx, babyID)
}

func (s *Service) ListMemories(ctx context.Context, babyID int64) ([]Memory, error) {
	return s.repo.ListMemories(ctx, babyID)
}

func (s *Service) DeleteFeeding(ctx context.Context, id int64) error {
	return s.repo.DeleteFeeding(ctx, id)
}

func (s *Service) DeleteSleepLog(ctx context.Context, id int64) error {
	return s.repo.DeleteSleepLog(ctx, id)
}

func (s *Service) DeleteDiaperLog(ctx context.Context, id int64) error {
	return s.repo.DeleteDiaperLog(ctx, id)
}

func (s *Service) DeleteGrowthLog(ctx context.Context, id int64) error {
	return s.repo.DeleteGrowthLog(ctx, id)
}

func (s *Service) DeleteMemory(ctx context.Context, id int64) error {
	return s.repo.DeleteMemory(ctx, id)
}

func (s *Service) orNow(t *time.Time) time.Time {
	if t == nil {
		return s.now()
	}
	return *t
}
