package apperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	notFound := New(http.StatusNotFound, "error.deck_not_found")

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantKey     string
		wantDetails map[string]any
	}{
		{
			name:        "application error",
			err:         notFound,
			wantStatus:  http.StatusNotFound,
			wantKey:     "error.deck_not_found",
			wantDetails: map[string]any{},
		},
		{
			name:        "wrapped application error with details",
			err:         fmt.Errorf("lookup: %w", notFound.WithDetails(map[string]any{"deck_id": float64(7)})),
			wantStatus:  http.StatusNotFound,
			wantKey:     "error.deck_not_found",
			wantDetails: map[string]any{"deck_id": float64(7)},
		},
		{
			name:        "unknown error",
			err:         errors.New("connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantKey:     KeyInternal,
			wantDetails: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			Write(rr, tt.err)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var resp Response
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantKey, resp.LocalizationKey)
			assert.Equal(t, tt.wantDetails, resp.Details)
		})
	}
}

func TestError_Is(t *testing.T) {
	conflict := New(http.StatusConflict, "error.deck_name_exist")

	assert.ErrorIs(t, conflict.WithDetails(map[string]any{"name": "x"}), conflict)
	assert.NotErrorIs(t, New(http.StatusConflict, "error.user_email_exist"), conflict)
	assert.NotErrorIs(t, errors.New("error.deck_name_exist"), conflict)
}

func TestWithDetails_DoesNotMutateSentinel(t *testing.T) {
	sentinel := New(http.StatusBadRequest, "error.excel_columns")
	details := map[string]any{"missing": []string{"value"}}

	withDetails := sentinel.WithDetails(details)
	details["extra"] = true

	assert.Nil(t, sentinel.Details)
	assert.NotContains(t, withDetails.Details, "extra")
}
