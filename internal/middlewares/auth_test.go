package middlewares

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/flashcards-api/internal/jwt"
	"github.com/sbilibin2017/flashcards-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alice := &models.UserDB{UserID: 1, Username: "alice"}

	tests := []struct {
		name             string
		mockSetup        func(m *MockTokener, u *MockUserGetter)
		expectedStatus   int
		expectedKey      string
		expectNextCalled bool
	}{
		{
			name: "NoToken",
			mockSetup: func(m *MockTokener, u *MockUserGetter) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no token"))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedKey:    "error.unauthorized",
		},
		{
			name: "InvalidToken",
			mockSetup: func(m *MockTokener, u *MockUserGetter) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("sometoken", nil)
				m.EXPECT().GetClaims(gomock.Any(), "sometoken").
					Return(nil, errors.New("invalid token"))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedKey:    "error.unauthorized",
		},
		{
			name: "UnknownUser",
			mockSetup: func(m *MockTokener, u *MockUserGetter) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				m.EXPECT().GetClaims(gomock.Any(), "validtoken").
					Return(&jwt.Claims{Username: "ghost"}, nil)
				u.EXPECT().GetByUsernameOrEmail(gomock.Any(), gomock.Any(), nil).
					Return(nil, nil)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedKey:    "error.unauthorized",
		},
		{
			name: "LookupError",
			mockSetup: func(m *MockTokener, u *MockUserGetter) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				m.EXPECT().GetClaims(gomock.Any(), "validtoken").
					Return(&jwt.Claims{Username: "alice"}, nil)
				u.EXPECT().GetByUsernameOrEmail(gomock.Any(), gomock.Any(), nil).
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedKey:    "error.internal",
		},
		{
			name: "ValidToken",
			mockSetup: func(m *MockTokener, u *MockUserGetter) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				m.EXPECT().GetClaims(gomock.Any(), "validtoken").
					Return(&jwt.Claims{Username: "alice"}, nil)
				u.EXPECT().GetByUsernameOrEmail(gomock.Any(), gomock.Any(), nil).
					Return(alice, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokener := NewMockTokener(ctrl)
			mockUsers := NewMockUserGetter(ctrl)
			tt.mockSetup(mockTokener, mockUsers)

			// Wrap a next handler to check if it was called
			nextCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				assert.Equal(t, alice, GetUserFromContext(r.Context()))
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(mockTokener, mockUsers)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)

			if tt.expectedKey != "" {
				var body map[string]any
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedKey, body["localization_key"])
			}
			if tt.expectedStatus == http.StatusUnauthorized {
				assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

func TestOptionalAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alice := &models.UserDB{UserID: 1, Username: "alice"}

	tests := []struct {
		name     string
		setup    func(m *MockTokener, u *MockUserGetter)
		wantUser *models.UserDB
	}{
		{
			name: "Guest",
			setup: func(m *MockTokener, u *MockUserGetter) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("no token"))
			},
		},
		{
			name: "ExpiredTokenFallsBackToGuest",
			setup: func(m *MockTokener, u *MockUserGetter) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("old", nil)
				m.EXPECT().GetClaims(gomock.Any(), "old").Return(nil, errors.New("expired"))
			},
		},
		{
			name: "User",
			setup: func(m *MockTokener, u *MockUserGetter) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("good", nil)
				m.EXPECT().GetClaims(gomock.Any(), "good").Return(&jwt.Claims{Username: "alice"}, nil)
				u.EXPECT().GetByUsernameOrEmail(gomock.Any(), gomock.Any(), nil).Return(alice, nil)
			},
			wantUser: alice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokener := NewMockTokener(ctrl)
			mockUsers := NewMockUserGetter(ctrl)
			tt.setup(mockTokener, mockUsers)

			var gotUser *models.UserDB
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser = GetUserFromContext(r.Context())
				w.WriteHeader(http.StatusNoContent)
			})

			rr := httptest.NewRecorder()
			OptionalAuthMiddleware(mockTokener, mockUsers)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, http.StatusNoContent, rr.Code)
			assert.Equal(t, tt.wantUser, gotUser)
		})
	}
}
