package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/vitaalplan/vitaal-api/internal/logger"
	"github.com/vitaalplan/vitaal-api/internal/models"
)

var (
	// ErrInvalidRating is returned for ratings outside the 1-10 range.
	ErrInvalidRating = errors.New("ratings must be between 1 and 10")
	// ErrInvalidSteps is returned for negative step counts.
	ErrInvalidSteps = errors.New("steps must not be negative")
)

// CheckInStore defines the daily check-in record store.
type CheckInStore interface {
	List(ctx context.Context, accountID uuid.UUID) ([]models.DailyCheckIn, error)
	Append(ctx context.Context, accountID uuid.UUID, entry models.DailyCheckIn) error
}

// CheckInInput carries one day's ratings.
type CheckInInput struct {
	Energy   int
	Strength int
	Hunger   int
	Mood     int
	Stress   int
	Sleep    int
	Steps    *int
}

// CheckInService manages an account's daily check-ins.
type CheckInService struct {
	store    CheckInStore
	progress ProgressRecorder
}

// NewCheckInService creates a new CheckInService.
func NewCheckInService(store CheckInStore, progress ProgressRecorder) *CheckInService {
	return &CheckInService{store: store, progress: progress}
}

// List returns the account's check-ins in insertion order.
func (svc *CheckInService) List(ctx context.Context, accountID uuid.UUID) ([]models.DailyCheckIn, error) {
	return svc.store.List(ctx, accountID)
}

// Add appends a check-in dated today and runs the progress aggregator.
func (svc *CheckInService) Add(ctx context.Context, accountID uuid.UUID, in CheckInInput) (*models.DailyCheckIn, []models.Notification, error) {
	for _, rating := range []int{in.Energy, in.Strength, in.Hunger, in.Mood, in.Stress, in.Sleep} {
		if rating < 1 || rating > 10 {
			return nil, nil, ErrInvalidRating
		}
	}
	if in.Steps != nil && *in.Steps < 0 {
		return nil, nil, ErrInvalidSteps
	}

	entry := models.DailyCheckIn{
		EntryID:  uuid.New(),
		Date:     time.Now().Format(models.DateLayout),
		Energy:   in.Energy,
		Strength: in.Strength,
		Hunger:   in.Hunger,
		Mood:     in.Mood,
		Stress:   in.Stress,
		Sleep:    in.Sleep,
		Steps:    in.Steps,
	}

	if err := svc.store.Append(ctx, accountID, entry); err != nil {
		logger.Log.Errorw("failed to append check-in", "account_id", accountID, "err", err)
		return nil, nil, err
	}

	notifications, err := svc.progress.RecordAction(ctx, accountID, models.ActionCheckIn)
	if err != nil {
		return nil, nil, err
	}

	return &entry, notifications, nil
}
