package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/flashcards-api/internal/models"
	"github.com/sbilibin2017/flashcards-api/internal/services"
)

func TestRefreshHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRefresher(ctrl)

	tests := []struct {
		name           string
		inputBody      any
		mockSetup      func()
		expectedStatus int
		expectedKey    string
	}{
		{
			name:      "success",
			inputBody: models.RefreshRequest{Refresh: "REFRESH"},
			mockSetup: func() {
				mockSvc.EXPECT().Refresh(gomock.Any(), "REFRESH").Return("ACCESS", nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:      "missing token",
			inputBody: map[string]any{},
			mockSetup: func() {
				mockSvc.EXPECT().Refresh(gomock.Any(), "").Return("", services.ErrRefreshRequired)
			},
			expectedStatus: http.StatusBadRequest,
			expectedKey:    "error.refresh_required",
		},
		{
			name:      "invalid token",
			inputBody: models.RefreshRequest{Refresh: "garbage"},
			mockSetup: func() {
				mockSvc.EXPECT().Refresh(gomock.Any(), "garbage").Return("", services.ErrInvalidRefreshToken)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedKey:    "error.invalid_refresh_token",
		},
		{
			name:           "invalid JSON",
			inputBody:      "not json",
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedKey:    "error.invalid_request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := newRequest(http.MethodPost, "/auth/refresh", tt.inputBody, "", nil)
			rr := httptest.NewRecorder()

			NewRefreshHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedKey != "" {
				assert.Equal(t, tt.expectedKey, decodeError(t, rr).LocalizationKey)
				return
			}
			var resp models.RefreshResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, "ACCESS", resp.Access)
		})
	}
}
