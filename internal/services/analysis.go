package services

import (
	"context"
	"errors"

	"github.com/vitaalplan/vitaal-api/internal/logger"
	"github.com/vitaalplan/vitaal-api/internal/models"
)

// ErrAnalysisFailed covers every failure of the external analysis call.
// Callers surface it as one generic message; no retry is attempted.
var ErrAnalysisFailed = errors.New("meal analysis failed")

// VisionAnalyzer classifies a meal photo via the external AI service.
type VisionAnalyzer interface {
	Analyze(ctx context.Context, imageBase64, mediaType string) (*models.MealAnalysis, error)
}

// AnalysisService wraps the external meal photo analyzer.
type AnalysisService struct {
	vision VisionAnalyzer
}

// NewAnalysisService creates a new AnalysisService.
func NewAnalysisService(vision VisionAnalyzer) *AnalysisService {
	return &AnalysisService{vision: vision}
}

// Analyze classifies the photo and returns the estimated meal.
func (svc *AnalysisService) Analyze(ctx context.Context, imageBase64, mediaType string) (*models.MealAnalysis, error) {
	if imageBase64 == "" || mediaType == "" {
		return nil, ErrAnalysisFailed
	}

	analysis, err := svc.vision.Analyze(ctx, imageBase64, mediaType)
	if err != nil {
		logger.Log.Errorw("meal analysis failed", "err", err)
		return nil, ErrAnalysisFailed
	}

	return analysis, nil
}
