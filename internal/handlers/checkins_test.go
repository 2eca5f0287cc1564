package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/vitaalplan/vitaal-api/internal/models"
	"github.com/vitaalplan/vitaal-api/internal/services"
)

func TestCheckInAddHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountID := uuid.New()

	tests := []struct {
		name       string
		body       string
		mockSetup  func(svc *MockCheckInManager)
		wantStatus int
	}{
		{
			name: "success",
			body: `{"energy":7,"strength":6,"hunger":4,"mood":8,"stress":3,"sleep":7,"steps":8500}`,
			mockSetup: func(svc *MockCheckInManager) {
				svc.EXPECT().
					Add(gomock.Any(), accountID, gomock.Any()).
					Return(
						&models.DailyCheckIn{EntryID: uuid.New(), Date: "2026-08-30", Energy: 7},
						[]models.Notification{{Message: "Check-in logged", Points: 10}},
						nil,
					)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "rating out of range",
			body: `{"energy":0,"strength":6,"hunger":4,"mood":8,"stress":3,"sleep":7}`,
			mockSetup: func(svc *MockCheckInManager) {
				svc.EXPECT().
					Add(gomock.Any(), accountID, gomock.Any()).
					Return(nil, nil, services.ErrInvalidRating)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid json",
			body:       `{broken`,
			mockSetup:  func(svc *MockCheckInManager) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockCheckInManager(ctrl)
			tt.mockSetup(mockSvc)

			req := authed(httptest.NewRequest(http.MethodPost, "/checkins", bytes.NewBufferString(tt.body)), accountID)
			rec := httptest.NewRecorder()

			NewCheckInAddHandler(mockSvc)(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCheckInListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCheckInManager(ctrl)
	accountID := uuid.New()

	entries := []models.DailyCheckIn{{EntryID: uuid.New(), Date: "2026-08-30", Energy: 7, Mood: 8}}
	mockSvc.EXPECT().List(gomock.Any(), accountID).Return(entries, nil)

	req := authed(httptest.NewRequest(http.MethodGet, "/checkins", nil), accountID)
	rec := httptest.NewRecorder()

	NewCheckInListHandler(mockSvc)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var got []models.DailyCheckIn
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, entries, got)
}
