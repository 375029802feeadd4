package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/flashcards-api/internal/models"
	"github.com/sbilibin2017/flashcards-api/internal/services"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRegisterer(ctrl)

	valid := models.RegisterRequest{
		Username: "john_doe",
		Email:    "john@example.com",
		Password: "secret123",
	}

	tests := []struct {
		name           string
		inputBody      any
		mockSetup      func()
		expectedStatus int
		expectedKey    string
		expectedID     int64
	}{
		{
			name:      "success",
			inputBody: valid,
			mockSetup: func() {
				mockSvc.EXPECT().Register(gomock.Any(), valid).Return(int64(7), nil)
			},
			expectedStatus: http.StatusOK,
			expectedID:     7,
		},
		{
			name:           "invalid JSON",
			inputBody:      "{invalid json}",
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedKey:    "error.invalid_request",
		},
		{
			name: "short username",
			inputBody: models.RegisterRequest{
				Username: "jo",
				Email:    "john@example.com",
				Password: "secret123",
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedKey:    "error.validation",
		},
		{
			name: "unknown color",
			inputBody: models.RegisterRequest{
				Username: "john_doe",
				Email:    "john@example.com",
				Password: "secret123",
				Color:    "purple",
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedKey:    "error.validation",
		},
		{
			name:      "username taken",
			inputBody: valid,
			mockSetup: func() {
				mockSvc.EXPECT().Register(gomock.Any(), valid).Return(int64(0), services.ErrUsernameExists)
			},
			expectedStatus: http.StatusConflict,
			expectedKey:    "error.user_username_exist",
		},
		{
			name:      "email taken",
			inputBody: valid,
			mockSetup: func() {
				mockSvc.EXPECT().Register(gomock.Any(), valid).Return(int64(0), services.ErrEmailExists)
			},
			expectedStatus: http.StatusConflict,
			expectedKey:    "error.user_email_exist",
		},
		{
			name:      "internal error",
			inputBody: valid,
			mockSetup: func() {
				mockSvc.EXPECT().Register(gomock.Any(), valid).Return(int64(0), errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedKey:    "error.internal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := newRequest(http.MethodPost, "/auth/register", tt.inputBody, "", nil)
			rr := httptest.NewRecorder()

			NewRegisterHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedKey != "" {
				assert.Equal(t, tt.expectedKey, decodeError(t, rr).LocalizationKey)
				return
			}
			var resp models.RegisterResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.expectedID, resp.UserID)
		})
	}
}

func TestRegisterHandler_ValidationDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := newRequest(http.MethodPost, "/auth/register", models.RegisterRequest{Username: "john_doe"}, "", nil)
	rr := httptest.NewRecorder()

	NewRegisterHandler(NewMockRegisterer(ctrl))(rr, req)

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	resp := decodeError(t, rr)
	assert.Equal(t, "required", resp.Details["email"])
	assert.Equal(t, "required", resp.Details["password"])
	assert.NotContains(t, resp.Details, "username")
}
