package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/vitaalplan/vitaal-api/internal/models"
)

func TestSessionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountID := uuid.New()

	t.Run("live session", func(t *testing.T) {
		mockSvc := NewMockSessionReader(ctrl)
		account := &models.Account{AccountID: accountID, Email: "anna@example.com"}
		mockSvc.EXPECT().CurrentSession(gomock.Any(), accountID).Return(account, nil)

		req := authed(httptest.NewRequest(http.MethodGet, "/me", nil), accountID)
		rec := httptest.NewRecorder()

		NewSessionHandler(mockSvc)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got models.Account
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, "anna@example.com", got.Email)
	})

	t.Run("expired session", func(t *testing.T) {
		mockSvc := NewMockSessionReader(ctrl)
		mockSvc.EXPECT().CurrentSession(gomock.Any(), accountID).Return(nil, nil)

		req := authed(httptest.NewRequest(http.MethodGet, "/me", nil), accountID)
		rec := httptest.NewRecorder()

		NewSessionHandler(mockSvc)(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestLogoutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountID := uuid.New()

	mockSvc := NewMockLogouter(ctrl)
	mockSvc.EXPECT().Logout(gomock.Any(), accountID).Return(nil)

	req := authed(httptest.NewRequest(http.MethodPost, "/logout", nil), accountID)
	rec := httptest.NewRecorder()

	NewLogoutHandler(mockSvc)(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
