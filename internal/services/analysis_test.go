package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/vitaalplan/vitaal-api/internal/models"
	"github.com/vitaalplan/vitaal-api/internal/services"
)

func TestAnalysisService_Analyze(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVision := services.NewMockVisionAnalyzer(ctrl)
	svc := services.NewAnalysisService(mockVision)

	want := &models.MealAnalysis{Name: "Pasta pesto", Calories: 650, Description: "met pijnboompitten"}
	mockVision.EXPECT().Analyze(gomock.Any(), "base64data", "image/jpeg").Return(want, nil)

	got, err := svc.Analyze(context.Background(), "base64data", "image/jpeg")
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestAnalysisService_Analyze_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVision := services.NewMockVisionAnalyzer(ctrl)
	svc := services.NewAnalysisService(mockVision)

	// upstream errors are collapsed into the one generic error
	mockVision.EXPECT().Analyze(gomock.Any(), "base64data", "image/jpeg").Return(nil, errors.New("timeout"))

	got, err := svc.Analyze(context.Background(), "base64data", "image/jpeg")
	assert.ErrorIs(t, err, services.ErrAnalysisFailed)
	assert.Nil(t, got)
}

func TestAnalysisService_Analyze_EmptyInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVision := services.NewMockVisionAnalyzer(ctrl)
	svc := services.NewAnalysisService(mockVision)

	tests := []struct {
		name      string
		image     string
		mediaType string
	}{
		{name: "no image", image: "", mediaType: "image/jpeg"},
		{name: "no media type", image: "base64data", mediaType: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Analyze(context.Background(), tt.image, tt.mediaType)
			assert.ErrorIs(t, err, services.ErrAnalysisFailed)
			assert.Nil(t, got)
		})
	}
}
