package facades

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitaalplan/vitaal-api/internal/logger"
)

func TestVisionFacade_Analyze_Success(t *testing.T) {
	err := logger.Initialize("info")
	require.NoError(t, err)

	var gotAuth string
	var gotReq analyzeRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/analyze", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		gotAuth = r.Header.Get("Authorization")

		err := json.NewDecoder(r.Body).Decode(&gotReq)
		assert.NoError(t, err)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name":"Pasta pesto","calories":540.4,"description":"A bowl of pasta with green pesto."}`))
	}))
	defer srv.Close()

	facade := NewVisionFacade(srv.URL, "test-key")

	analysis, err := facade.Analyze(context.Background(), "aGVsbG8=", "image/jpeg")
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "aGVsbG8=", gotReq.Image)
	assert.Equal(t, "image/jpeg", gotReq.MediaType)
	assert.NotEmpty(t, gotReq.Instruction)

	assert.Equal(t, "Pasta pesto", analysis.Name)
	assert.Equal(t, 540, analysis.Calories)
	assert.Equal(t, "A bowl of pasta with green pesto.", analysis.Description)
}

func TestVisionFacade_Analyze_NoAPIKey(t *testing.T) {
	err := logger.Initialize("info")
	require.NoError(t, err)

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"name":"Soup","calories":120,"description":""}`))
	}))
	defer srv.Close()

	facade := NewVisionFacade(srv.URL, "")

	_, err = facade.Analyze(context.Background(), "aGVsbG8=", "image/png")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestVisionFacade_Analyze_Errors(t *testing.T) {
	err := logger.Initialize("info")
	require.NoError(t, err)

	tests := []struct {
		name   string
		status int
		body   string
	}{
		{
			name:   "upstream error status",
			status: http.StatusInternalServerError,
			body:   `{"error":"model unavailable"}`,
		},
		{
			name:   "malformed json",
			status: http.StatusOK,
			body:   `{"name":`,
		},
		{
			name:   "missing name",
			status: http.StatusOK,
			body:   `{"name":"  ","calories":300,"description":"x"}`,
		},
		{
			name:   "missing calories",
			status: http.StatusOK,
			body:   `{"name":"Salad","description":"x"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			facade := NewVisionFacade(srv.URL, "test-key")

			analysis, err := facade.Analyze(context.Background(), "aGVsbG8=", "image/jpeg")
			assert.Error(t, err)
			assert.Nil(t, analysis)
		})
	}
}

func TestVisionFacade_Analyze_MissingURL(t *testing.T) {
	facade := NewVisionFacade("   ", "test-key")

	analysis, err := facade.Analyze(context.Background(), "aGVsbG8=", "image/jpeg")
	assert.Error(t, err)
	assert.Nil(t, analysis)
}
