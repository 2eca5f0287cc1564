package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/vitaalplan/vitaal-api/internal/models"
	"github.com/vitaalplan/vitaal-api/internal/services"
)

func TestCheckInService_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := services.NewMockCheckInStore(ctrl)
	mockProgress := services.NewMockProgressRecorder(ctrl)

	svc := services.NewCheckInService(mockStore, mockProgress)

	accountID := uuid.New()
	steps := 8500
	in := services.CheckInInput{
		Energy:   7,
		Strength: 6,
		Hunger:   4,
		Mood:     8,
		Stress:   3,
		Sleep:    7,
		Steps:    &steps,
	}

	mockStore.EXPECT().Append(gomock.Any(), accountID, gomock.Any()).Return(nil)
	mockProgress.EXPECT().
		RecordAction(gomock.Any(), accountID, models.ActionCheckIn).
		Return([]models.Notification{{Message: "Check-in logged", Points: models.PointsCheckIn}}, nil)

	entry, notifications, err := svc.Add(context.Background(), accountID, in)
	assert.NoError(t, err)
	assert.Equal(t, time.Now().Format(models.DateLayout), entry.Date)
	assert.Equal(t, 7, entry.Energy)
	assert.Equal(t, 3, entry.Stress)
	assert.Equal(t, &steps, entry.Steps)
	assert.Len(t, notifications, 1)
}

func TestCheckInService_Add_InvalidRating(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := services.NewMockCheckInStore(ctrl)
	mockProgress := services.NewMockProgressRecorder(ctrl)

	svc := services.NewCheckInService(mockStore, mockProgress)

	tests := []struct {
		name string
		in   services.CheckInInput
	}{
		{name: "rating below range", in: services.CheckInInput{Energy: 0, Strength: 5, Hunger: 5, Mood: 5, Stress: 5, Sleep: 5}},
		{name: "rating above range", in: services.CheckInInput{Energy: 5, Strength: 5, Hunger: 5, Mood: 11, Stress: 5, Sleep: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, notifications, err := svc.Add(context.Background(), uuid.New(), tt.in)
			assert.ErrorIs(t, err, services.ErrInvalidRating)
			assert.Nil(t, entry)
			assert.Nil(t, notifications)
		})
	}
}

func TestCheckInService_Add_NegativeSteps(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := services.NewMockCheckInStore(ctrl)
	mockProgress := services.NewMockProgressRecorder(ctrl)

	svc := services.NewCheckInService(mockStore, mockProgress)

	steps := -1
	in := services.CheckInInput{Energy: 5, Strength: 5, Hunger: 5, Mood: 5, Stress: 5, Sleep: 5, Steps: &steps}

	entry, _, err := svc.Add(context.Background(), uuid.New(), in)
	assert.ErrorIs(t, err, services.ErrInvalidSteps)
	assert.Nil(t, entry)
}

func TestCheckInService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := services.NewMockCheckInStore(ctrl)
	mockProgress := services.NewMockProgressRecorder(ctrl)

	svc := services.NewCheckInService(mockStore, mockProgress)

	accountID := uuid.New()
	entries := []models.DailyCheckIn{{EntryID: uuid.New(), Date: "2026-08-30", Energy: 7}}
	mockStore.EXPECT().List(gomock.Any(), accountID).Return(entries, nil)

	got, err := svc.List(context.Background(), accountID)
	assert.NoError(t, err)
	assert.Equal(t, entries, got)
}
