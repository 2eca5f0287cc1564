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

func TestWeightService_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := services.NewMockWeightStore(ctrl)
	mockProgress := services.NewMockProgressRecorder(ctrl)

	svc := services.NewWeightService(mockStore, mockProgress)

	accountID := uuid.New()
	wantNotifications := []models.Notification{{Message: "Weight logged", Points: models.PointsWeight}}

	var appended models.WeightEntry
	mockStore.EXPECT().
		Append(gomock.Any(), accountID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, entry models.WeightEntry) error {
			appended = entry
			return nil
		})
	// the aggregator runs after the record is persisted
	mockProgress.EXPECT().
		RecordAction(gomock.Any(), accountID, models.ActionWeight).
		Return(wantNotifications, nil)

	entry, notifications, err := svc.Add(context.Background(), accountID, 92.5)
	assert.NoError(t, err)
	assert.Equal(t, 92.5, entry.Weight)
	assert.Equal(t, time.Now().Format(models.DateLayout), entry.Date)
	assert.NotEqual(t, uuid.Nil, entry.EntryID)
	assert.Equal(t, appended, *entry)
	assert.Equal(t, wantNotifications, notifications)
}

func TestWeightService_Add_InvalidWeight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := services.NewMockWeightStore(ctrl)
	mockProgress := services.NewMockProgressRecorder(ctrl)

	svc := services.NewWeightService(mockStore, mockProgress)

	for _, weight := range []float64{0, -5} {
		entry, notifications, err := svc.Add(context.Background(), uuid.New(), weight)
		assert.ErrorIs(t, err, services.ErrInvalidWeight)
		assert.Nil(t, entry)
		assert.Nil(t, notifications)
	}
}

func TestWeightService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := services.NewMockWeightStore(ctrl)
	mockProgress := services.NewMockProgressRecorder(ctrl)

	svc := services.NewWeightService(mockStore, mockProgress)

	accountID := uuid.New()
	entries := []models.WeightEntry{
		{EntryID: uuid.New(), Date: "2026-08-29", Weight: 93},
		{EntryID: uuid.New(), Date: "2026-08-30", Weight: 92.5},
	}
	mockStore.EXPECT().List(gomock.Any(), accountID).Return(entries, nil)

	got, err := svc.List(context.Background(), accountID)
	assert.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestWeightService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := services.NewMockWeightStore(ctrl)
	mockProgress := services.NewMockProgressRecorder(ctrl)

	svc := services.NewWeightService(mockStore, mockProgress)

	accountID := uuid.New()
	entryID := uuid.New()
	mockStore.EXPECT().Remove(gomock.Any(), accountID, entryID).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), accountID, entryID))
}
