package services_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/vitaalplan/vitaal-api/internal/models"
	"github.com/vitaalplan/vitaal-api/internal/services"
)

func newProgressFixture(t *testing.T) (*services.ProgressService, *services.MockAccountReader, *services.MockProfileUpdater, *services.MockWeightLister, *services.MockCheckInLister) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockAccounts := services.NewMockAccountReader(ctrl)
	mockProfiles := services.NewMockProfileUpdater(ctrl)
	mockWeights := services.NewMockWeightLister(ctrl)
	mockCheckIns := services.NewMockCheckInLister(ctrl)

	// nil Kafka writer: publishing is skipped with a warning
	svc := services.NewProgressService(mockAccounts, mockProfiles, mockWeights, mockCheckIns, nil)
	return svc, mockAccounts, mockProfiles, mockWeights, mockCheckIns
}

func TestProgressService_FirstWeightEntry(t *testing.T) {
	svc, mockAccounts, mockProfiles, mockWeights, mockCheckIns := newProgressFixture(t)

	accountID := uuid.New()
	account := &models.Account{
		AccountID: accountID,
		Profile: models.Profile{
			Points: 0,
			Level:  models.StarterLevel,
			Badges: []string{},
		},
	}

	mockAccounts.EXPECT().GetByID(gomock.Any(), accountID).Return(account, nil)
	// the entry is already stored when the aggregator runs
	mockWeights.EXPECT().List(gomock.Any(), accountID).Return([]models.WeightEntry{{EntryID: uuid.New()}}, nil)
	mockCheckIns.EXPECT().List(gomock.Any(), accountID).Return([]models.DailyCheckIn{}, nil)

	var patch models.ProfilePatch
	mockProfiles.EXPECT().
		UpdateProfile(gomock.Any(), accountID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, p models.ProfilePatch) (*models.Account, error) {
			patch = p
			return account, nil
		})

	notifications, err := svc.RecordAction(context.Background(), accountID, models.ActionWeight)
	assert.NoError(t, err)

	// 25 routine points plus 75 for De Eerste Stap
	assert.Equal(t, 100, *patch.Points)
	assert.Equal(t, models.StarterLevel, *patch.Level)
	assert.Equal(t, []string{"first-step"}, *patch.Badges)

	assert.Len(t, notifications, 2)
	assert.Equal(t, "Weight logged", notifications[0].Message)
	assert.Equal(t, models.PointsWeight, notifications[0].Points)
	assert.Equal(t, "Badge earned: De Eerste Stap", notifications[1].Message)
	assert.Equal(t, models.PointsPerBadge, notifications[1].Points)
}

func TestProgressService_BadgeNotReawarded(t *testing.T) {
	svc, mockAccounts, mockProfiles, mockWeights, mockCheckIns := newProgressFixture(t)

	accountID := uuid.New()
	account := &models.Account{
		AccountID: accountID,
		Profile: models.Profile{
			Points: 100,
			Level:  models.StarterLevel,
			Badges: []string{"first-step"},
		},
	}

	mockAccounts.EXPECT().GetByID(gomock.Any(), accountID).Return(account, nil)
	mockWeights.EXPECT().List(gomock.Any(), accountID).Return([]models.WeightEntry{
		{EntryID: uuid.New()}, {EntryID: uuid.New()},
	}, nil)
	mockCheckIns.EXPECT().List(gomock.Any(), accountID).Return([]models.DailyCheckIn{}, nil)

	var patch models.ProfilePatch
	mockProfiles.EXPECT().
		UpdateProfile(gomock.Any(), accountID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, p models.ProfilePatch) (*models.Account, error) {
			patch = p
			return account, nil
		})

	notifications, err := svc.RecordAction(context.Background(), accountID, models.ActionWeight)
	assert.NoError(t, err)

	// threshold still met, but the badge was already earned: routine points only
	assert.Equal(t, 125, *patch.Points)
	assert.Equal(t, []string{"first-step"}, *patch.Badges)
	assert.Len(t, notifications, 1)
	assert.Equal(t, "Weight logged", notifications[0].Message)
}

func TestProgressService_LevelUp(t *testing.T) {
	svc, mockAccounts, mockProfiles, mockWeights, mockCheckIns := newProgressFixture(t)

	accountID := uuid.New()
	account := &models.Account{
		AccountID: accountID,
		Profile: models.Profile{
			Points: 240,
			Level:  models.StarterLevel,
			Badges: []string{"first-step", "first-checkin"},
		},
	}

	mockAccounts.EXPECT().GetByID(gomock.Any(), accountID).Return(account, nil)
	mockWeights.EXPECT().List(gomock.Any(), accountID).Return([]models.WeightEntry{{EntryID: uuid.New()}}, nil)
	mockCheckIns.EXPECT().List(gomock.Any(), accountID).Return([]models.DailyCheckIn{{EntryID: uuid.New()}}, nil)

	var patch models.ProfilePatch
	mockProfiles.EXPECT().
		UpdateProfile(gomock.Any(), accountID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, p models.ProfilePatch) (*models.Account, error) {
			patch = p
			return account, nil
		})

	notifications, err := svc.RecordAction(context.Background(), accountID, models.ActionCheckIn)
	assert.NoError(t, err)

	// 240 + 10 crosses the 250 boundary into Brons
	assert.Equal(t, 250, *patch.Points)
	assert.Equal(t, "Brons", *patch.Level)

	assert.Len(t, notifications, 2)
	assert.Equal(t, "Check-in logged", notifications[0].Message)
	assert.Equal(t, "Level up: Brons", notifications[1].Message)
	assert.Equal(t, 0, notifications[1].Points)
}

func TestProgressService_StreakBadges(t *testing.T) {
	svc, mockAccounts, mockProfiles, mockWeights, mockCheckIns := newProgressFixture(t)

	accountID := uuid.New()
	account := &models.Account{
		AccountID: accountID,
		Profile: models.Profile{
			Points: 60,
			Level:  models.StarterLevel,
			Badges: []string{"first-checkin"},
		},
	}

	checkIns := make([]models.DailyCheckIn, 7)
	for i := range checkIns {
		checkIns[i] = models.DailyCheckIn{EntryID: uuid.New()}
	}

	mockAccounts.EXPECT().GetByID(gomock.Any(), accountID).Return(account, nil)
	mockWeights.EXPECT().List(gomock.Any(), accountID).Return([]models.WeightEntry{}, nil)
	mockCheckIns.EXPECT().List(gomock.Any(), accountID).Return(checkIns, nil)

	var patch models.ProfilePatch
	mockProfiles.EXPECT().
		UpdateProfile(gomock.Any(), accountID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, p models.ProfilePatch) (*models.Account, error) {
			patch = p
			return account, nil
		})

	notifications, err := svc.RecordAction(context.Background(), accountID, models.ActionCheckIn)
	assert.NoError(t, err)

	// 7 check-ins unlock the week streak badge
	assert.Equal(t, []string{"first-checkin", "week-streak"}, *patch.Badges)
	assert.Equal(t, 60+models.PointsCheckIn+models.PointsPerBadge, *patch.Points)
	assert.Len(t, notifications, 2)
	assert.Equal(t, "Badge earned: Week Streak", notifications[1].Message)
}

func TestProgressService_AccountNotFound(t *testing.T) {
	svc, mockAccounts, _, _, _ := newProgressFixture(t)

	accountID := uuid.New()
	mockAccounts.EXPECT().GetByID(gomock.Any(), accountID).Return(nil, nil)

	notifications, err := svc.RecordAction(context.Background(), accountID, models.ActionCheckIn)
	assert.ErrorIs(t, err, services.ErrAccountNotFound)
	assert.Nil(t, notifications)
}

func TestProgressService_PublishesToKafka(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccounts := services.NewMockAccountReader(ctrl)
	mockProfiles := services.NewMockProfileUpdater(ctrl)
	mockWeights := services.NewMockWeightLister(ctrl)
	mockCheckIns := services.NewMockCheckInLister(ctrl)
	mockWriter := services.NewMockKafkaWriter(ctrl)

	svc := services.NewProgressService(mockAccounts, mockProfiles, mockWeights, mockCheckIns, mockWriter)

	accountID := uuid.New()
	account := &models.Account{
		AccountID: accountID,
		Profile: models.Profile{
			Points: 500,
			Level:  "Brons",
			Badges: []string{"first-step", "first-checkin"},
		},
	}

	mockAccounts.EXPECT().GetByID(gomock.Any(), accountID).Return(account, nil)
	mockWeights.EXPECT().List(gomock.Any(), accountID).Return([]models.WeightEntry{{EntryID: uuid.New()}}, nil)
	mockCheckIns.EXPECT().List(gomock.Any(), accountID).Return([]models.DailyCheckIn{{EntryID: uuid.New()}}, nil)
	mockProfiles.EXPECT().UpdateProfile(gomock.Any(), accountID, gomock.Any()).Return(account, nil)

	// one message per notification; only the routine award fires here
	mockWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	notifications, err := svc.RecordAction(context.Background(), accountID, models.ActionMeal)
	assert.NoError(t, err)
	assert.Len(t, notifications, 1)
}

func TestLevelForPoints(t *testing.T) {
	tests := []struct {
		points int
		want   string
	}{
		{0, "Starter"},
		{249, "Starter"},
		{250, "Brons"},
		{999, "Brons"},
		{1000, "Zilver"},
		{2499, "Zilver"},
		{2500, "Goud"},
		{4999, "Goud"},
		{5000, "Platina"},
		{100000, "Platina"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, models.LevelForPoints(tt.points), "points=%d", tt.points)
	}
}
