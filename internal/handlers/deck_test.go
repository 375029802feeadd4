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

func TestListDecksHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockDeckLister(ctrl)
	uid := alice.UserID

	tests := []struct {
		name           string
		target         string
		user           *models.UserDB
		mockSetup      func()
		expectedStatus int
		expectedBody   []models.DeckResponse
	}{
		{
			name:   "guest",
			target: "/decks",
			mockSetup: func() {
				mockSvc.EXPECT().ListDecks(gomock.Any(), nil, false).
					Return([]models.DeckResponse{{DeckID: 1, Name: "shared"}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   []models.DeckResponse{{DeckID: 1, Name: "shared"}},
		},
		{
			name:   "user with show_all",
			target: "/decks?show_all=true",
			user:   alice,
			mockSetup: func() {
				mockSvc.EXPECT().ListDecks(gomock.Any(), &uid, true).
					Return([]models.DeckResponse{{DeckID: 1, Name: "shared"}, {DeckID: 2, Name: "mine"}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   []models.DeckResponse{{DeckID: 1, Name: "shared"}, {DeckID: 2, Name: "mine"}},
		},
		{
			name:   "no decks",
			target: "/decks?show_all=0",
			user:   alice,
			mockSetup: func() {
				mockSvc.EXPECT().ListDecks(gomock.Any(), &uid, false).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   []models.DeckResponse{},
		},
		{
			name:           "bad show_all",
			target:         "/decks?show_all=maybe",
			mockSetup:      func() {},
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			rr := httptest.NewRecorder()
			NewListDecksHandler(mockSvc)(rr, newRequest(http.MethodGet, tt.target, nil, "", tt.user))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody == nil {
				return
			}
			var resp []models.DeckResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}

func TestCreateDeckHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockDeckManager(ctrl)

	tests := []struct {
		name           string
		inputBody      any
		user           *models.UserDB
		mockSetup      func()
		expectedStatus int
		expectedKey    string
	}{
		{
			name:      "success",
			inputBody: models.DeckRequest{Name: "Spanish"},
			user:      alice,
			mockSetup: func() {
				mockSvc.EXPECT().CreateDeck(gomock.Any(), int64(1), "Spanish").
					Return(models.DeckResponse{DeckID: 3, Name: "Spanish"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:      "duplicate name",
			inputBody: models.DeckRequest{Name: "Spanish"},
			user:      alice,
			mockSetup: func() {
				mockSvc.EXPECT().CreateDeck(gomock.Any(), int64(1), "Spanish").
					Return(models.DeckResponse{}, services.ErrDeckNameExists)
			},
			expectedStatus: http.StatusConflict,
			expectedKey:    "error.deck_name_exist",
		},
		{
			name:           "empty name",
			inputBody:      models.DeckRequest{},
			user:           alice,
			mockSetup:      func() {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedKey:    "error.validation",
		},
		{
			name:           "anonymous",
			inputBody:      models.DeckRequest{Name: "Spanish"},
			mockSetup:      func() {},
			expectedStatus: http.StatusUnauthorized,
			expectedKey:    "error.unauthorized",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			rr := httptest.NewRecorder()
			NewCreateDeckHandler(mockSvc)(rr, newRequest(http.MethodPost, "/decks", tt.inputBody, "", tt.user))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedKey != "" {
				assert.Equal(t, tt.expectedKey, decodeError(t, rr).LocalizationKey)
				return
			}
			var resp models.DeckResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, models.DeckResponse{DeckID: 3, Name: "Spanish"}, resp)
		})
	}
}

func TestUpdateDeckHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockDeckManager(ctrl)

	tests := []struct {
		name           string
		deckID         string
		mockSetup      func()
		expectedStatus int
		expectedKey    string
	}{
		{
			name:   "success",
			deckID: "3",
			mockSetup: func() {
				mockSvc.EXPECT().UpdateDeck(gomock.Any(), int64(1), int64(3), "French").
					Return(models.DeckResponse{DeckID: 3, Name: "French"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "not owned",
			deckID: "4",
			mockSetup: func() {
				mockSvc.EXPECT().UpdateDeck(gomock.Any(), int64(1), int64(4), "French").
					Return(models.DeckResponse{}, services.ErrDeckNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedKey:    "error.deck_not_found",
		},
		{
			name:           "malformed id",
			deckID:         "abc",
			mockSetup:      func() {},
			expectedStatus: http.StatusNotFound,
			expectedKey:    "error.deck_not_found",
		},
		{
			name:           "id beyond integer column",
			deckID:         "3000000000",
			mockSetup:      func() {},
			expectedStatus: http.StatusNotFound,
			expectedKey:    "error.deck_not_found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := newRequest(http.MethodPut, "/decks/"+tt.deckID, models.DeckRequest{Name: "French"}, tt.deckID, alice)
			rr := httptest.NewRecorder()
			NewUpdateDeckHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedKey != "" {
				assert.Equal(t, tt.expectedKey, decodeError(t, rr).LocalizationKey)
			}
		})
	}
}

func TestDeleteDeckHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockDeckManager(ctrl)

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().DeleteDeck(gomock.Any(), int64(1), int64(3)).Return(nil)

		rr := httptest.NewRecorder()
		NewDeleteDeckHandler(mockSvc)(rr, newRequest(http.MethodDelete, "/decks/3", nil, "3", alice))

		require.Equal(t, http.StatusOK, rr.Code)
		var resp models.StatusResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.True(t, resp.Status)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.EXPECT().DeleteDeck(gomock.Any(), int64(1), int64(9)).Return(services.ErrDeckNotFound)

		rr := httptest.NewRecorder()
		NewDeleteDeckHandler(mockSvc)(rr, newRequest(http.MethodDelete, "/decks/9", nil, "9", alice))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
