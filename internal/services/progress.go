package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/vitaalplan/vitaal-api/internal/logger"
	"github.com/vitaalplan/vitaal-api/internal/models"
)

// ProgressRecorder is invoked after every loggable action to update
// points, badges, and level.
type ProgressRecorder interface {
	RecordAction(ctx context.Context, accountID uuid.UUID, kind models.ActionKind) ([]models.Notification, error)
}

// ProfileUpdater persists profile changes (AuthService.UpdateProfile).
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, accountID uuid.UUID, patch models.ProfilePatch) (*models.Account, error)
}

// WeightLister counts an account's weight entries.
type WeightLister interface {
	List(ctx context.Context, accountID uuid.UUID) ([]models.WeightEntry, error)
}

// CheckInLister counts an account's check-ins.
type CheckInLister interface {
	List(ctx context.Context, accountID uuid.UUID) ([]models.DailyCheckIn, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ProgressService derives gamification state after each loggable action and
// persists it through the profile updater as a single update.
type ProgressService struct {
	accounts    AccountReader
	profiles    ProfileUpdater
	weights     WeightLister
	checkins    CheckInLister
	kafkaWriter KafkaWriter
}

// NewProgressService creates a new ProgressService.
func NewProgressService(
	accounts AccountReader,
	profiles ProfileUpdater,
	weights WeightLister,
	checkins CheckInLister,
	kafkaWriter KafkaWriter,
) *ProgressService {
	return &ProgressService{
		accounts:    accounts,
		profiles:    profiles,
		weights:     weights,
		checkins:    checkins,
		kafkaWriter: kafkaWriter,
	}
}

// progressEvent is the message shape published per notification.
type progressEvent struct {
	AccountID string `json:"account_id"`
	Kind      string `json:"kind"`
	Message   string `json:"message"`
	Points    int    `json:"points"`
}

// publishNotification publishes a notification to Kafka.
func (s *ProgressService) publishNotification(ctx context.Context, accountID uuid.UUID, kind models.ActionKind, n models.Notification) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "account_id", accountID)
		return
	}

	data, err := json.Marshal(progressEvent{
		AccountID: accountID.String(),
		Kind:      string(kind),
		Message:   n.Message,
		Points:    n.Points,
	})
	if err != nil {
		logger.Log.Errorw("failed to marshal notification for Kafka", "account_id", accountID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(accountID.String()),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish notification to Kafka", "account_id", accountID, "error", err)
	} else {
		logger.Log.Infow("notification published to Kafka", "account_id", accountID, "message", n.Message)
	}
}

// RecordAction evaluates badge thresholds and point totals for the action
// that was just persisted, stores the resulting profile change in one update,
// and returns the queued notifications: the routine point award, one per
// badge earned, and a level-up when the label changes.
func (s *ProgressService) RecordAction(ctx context.Context, accountID uuid.UUID, kind models.ActionKind) ([]models.Notification, error) {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		logger.Log.Errorw("failed to get account", "account_id", accountID, "error", err)
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	weightEntries, err := s.weights.List(ctx, accountID)
	if err != nil {
		return nil, err
	}
	checkIns, err := s.checkins.List(ctx, accountID)
	if err != nil {
		return nil, err
	}

	// The triggering record is already stored, so the partition lengths are
	// the prospective counts including the action in flight.
	counts := map[models.BadgeCondition]int{
		models.ConditionWeightEntries: len(weightEntries),
		models.ConditionCheckIns:      len(checkIns),
		models.ConditionStreak:        len(checkIns),
	}

	earnedSet := make(map[string]bool, len(account.Profile.Badges))
	for _, id := range account.Profile.Badges {
		earnedSet[id] = true
	}

	var earned []models.BadgeDef
	for _, badge := range models.Badges {
		if earnedSet[badge.ID] {
			continue
		}
		if counts[badge.Condition] >= badge.Threshold {
			earned = append(earned, badge)
		}
	}

	points := account.Profile.Points + models.PointsForAction(kind) + len(earned)*models.PointsPerBadge
	level := models.LevelForPoints(points)

	badges := make([]string, 0, len(account.Profile.Badges)+len(earned))
	badges = append(badges, account.Profile.Badges...)
	for _, badge := range earned {
		badges = append(badges, badge.ID)
	}

	patch := models.ProfilePatch{
		Points: &points,
		Level:  &level,
		Badges: &badges,
	}
	if _, err := s.profiles.UpdateProfile(ctx, accountID, patch); err != nil {
		logger.Log.Errorw("failed to persist progress", "account_id", accountID, "error", err)
		return nil, err
	}

	notifications := []models.Notification{
		{Message: actionMessage(kind), Points: models.PointsForAction(kind)},
	}
	for _, badge := range earned {
		notifications = append(notifications, models.Notification{
			Message: fmt.Sprintf("Badge earned: %s", badge.Name),
			Points:  models.PointsPerBadge,
		})
	}
	if level != account.Profile.Level {
		notifications = append(notifications, models.Notification{
			Message: fmt.Sprintf("Level up: %s", level),
		})
	}

	for _, n := range notifications {
		s.publishNotification(ctx, accountID, kind, n)
	}

	return notifications, nil
}

func actionMessage(kind models.ActionKind) string {
	switch kind {
	case models.ActionCheckIn:
		return "Check-in logged"
	case models.ActionWeight:
		return "Weight logged"
	case models.ActionMeal:
		return "Meal logged"
	case models.ActionReaction:
		return "Reaction added"
	default:
		return "Points earned"
	}
}
