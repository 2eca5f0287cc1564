package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vitaalplan/vitaal-api/internal/logger"
	"github.com/vitaalplan/vitaal-api/internal/models"
)

var (
	// ErrEmptyMealName is returned when a meal has no name.
	ErrEmptyMealName = errors.New("meal name must not be empty")
	// ErrNegativeCalories is returned for negative calorie counts.
	ErrNegativeCalories = errors.New("calories must not be negative")
)

// MealStore defines the meal entry record store.
type MealStore interface {
	List(ctx context.Context, accountID uuid.UUID) ([]models.MealEntry, error)
	Append(ctx context.Context, accountID uuid.UUID, entry models.MealEntry) error
	Remove(ctx context.Context, accountID, entryID uuid.UUID) error
}

// MealInput carries a meal to be logged.
type MealInput struct {
	Name        string
	Description string
	Calories    int
}

// MealService manages an account's meal log.
type MealService struct {
	store    MealStore
	progress ProgressRecorder
}

// NewMealService creates a new MealService.
func NewMealService(store MealStore, progress ProgressRecorder) *MealService {
	return &MealService{store: store, progress: progress}
}

// List returns the account's meal entries in insertion order.
func (svc *MealService) List(ctx context.Context, accountID uuid.UUID) ([]models.MealEntry, error) {
	return svc.store.List(ctx, accountID)
}

// Add appends a meal entry dated today and runs the progress aggregator.
func (svc *MealService) Add(ctx context.Context, accountID uuid.UUID, in MealInput) (*models.MealEntry, []models.Notification, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, nil, ErrEmptyMealName
	}
	if in.Calories < 0 {
		return nil, nil, ErrNegativeCalories
	}

	entry := models.MealEntry{
		EntryID:     uuid.New(),
		Date:        time.Now().Format(models.DateLayout),
		Name:        in.Name,
		Description: in.Description,
		Calories:    in.Calories,
	}

	if err := svc.store.Append(ctx, accountID, entry); err != nil {
		logger.Log.Errorw("failed to append meal entry", "account_id", accountID, "err", err)
		return nil, nil, err
	}

	notifications, err := svc.progress.RecordAction(ctx, accountID, models.ActionMeal)
	if err != nil {
		return nil, nil, err
	}

	return &entry, notifications, nil
}

// Delete removes the meal with the given id. Missing ids are a no-op.
func (svc *MealService) Delete(ctx context.Context, accountID, entryID uuid.UUID) error {
	return svc.store.Remove(ctx, accountID, entryID)
}
