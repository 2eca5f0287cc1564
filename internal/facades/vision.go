// Package facades holds clients for external collaborators.
package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/vitaalplan/vitaal-api/internal/logger"
	"github.com/vitaalplan/vitaal-api/internal/models"
)

// mealInstruction is the fixed classification prompt sent with every photo.
const mealInstruction = "Classify the meal in this photo. Respond with a JSON object " +
	"containing exactly three fields: name (text), calories (number), description (text)."

// VisionFacade calls the external generative-AI image classification service.
type VisionFacade struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// NewVisionFacade creates a facade for the service at baseURL.
func NewVisionFacade(baseURL, apiKey string) *VisionFacade {
	return &VisionFacade{BaseURL: baseURL, APIKey: apiKey}
}

type analyzeRequest struct {
	Image       string `json:"image"`
	MediaType   string `json:"media_type"`
	Instruction string `json:"instruction"`
}

type analyzeResponse struct {
	Name        string   `json:"name"`
	Calories    *float64 `json:"calories"`
	Description string   `json:"description"`
}

// Analyze sends the base64-encoded photo and returns the classified meal.
// Any transport failure, non-2xx status, or malformed response is an error;
// the caller decides how to surface it.
func (f *VisionFacade) Analyze(ctx context.Context, imageBase64, mediaType string) (*models.MealAnalysis, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(f.BaseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("missing vision service URL")
	}

	httpClient := f.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	payload, err := json.Marshal(analyzeRequest{
		Image:       imageBase64,
		MediaType:   mediaType,
		Instruction: mealInstruction,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal analyze payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/v1/analyze", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create analyze request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute analyze request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read analyze response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Log.Errorw("vision service returned error", "status", resp.StatusCode)
		return nil, fmt.Errorf("analyze request failed with status %d", resp.StatusCode)
	}

	var parsed analyzeResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode analyze response: %w", err)
	}
	if strings.TrimSpace(parsed.Name) == "" || parsed.Calories == nil {
		return nil, fmt.Errorf("incomplete analyze response")
	}

	return &models.MealAnalysis{
		Name:        parsed.Name,
		Calories:    int(*parsed.Calories),
		Description: parsed.Description,
	}, nil
}
