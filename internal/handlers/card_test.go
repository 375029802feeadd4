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

func TestGetCardsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCardManager(ctrl)

	t.Run("success", func(t *testing.T) {
		cards := []models.CardInput{{Entry: "hola", Value: "hello"}}
		mockSvc.EXPECT().GetCards(gomock.Any(), int64(1), int64(3)).Return(cards, nil)

		rr := httptest.NewRecorder()
		NewGetCardsHandler(mockSvc)(rr, newRequest(http.MethodGet, "/decks/3/cards", nil, "3", alice))

		require.Equal(t, http.StatusOK, rr.Code)
		var resp models.CardsResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, cards, resp.Cards)
	})

	t.Run("empty deck renders empty list", func(t *testing.T) {
		mockSvc.EXPECT().GetCards(gomock.Any(), int64(1), int64(3)).Return(nil, nil)

		rr := httptest.NewRecorder()
		NewGetCardsHandler(mockSvc)(rr, newRequest(http.MethodGet, "/decks/3/cards", nil, "3", alice))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"cards":[]}`, rr.Body.String())
	})

	t.Run("not owned", func(t *testing.T) {
		mockSvc.EXPECT().GetCards(gomock.Any(), int64(1), int64(4)).Return(nil, services.ErrDeckNotFound)

		rr := httptest.NewRecorder()
		NewGetCardsHandler(mockSvc)(rr, newRequest(http.MethodGet, "/decks/4/cards", nil, "4", alice))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "error.deck_not_found", decodeError(t, rr).LocalizationKey)
	})
}

func TestReplaceCardsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCardManager(ctrl)

	tests := []struct {
		name           string
		inputBody      any
		mockSetup      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success",
			inputBody: models.CardsRequest{Cards: []models.CardInput{
				{Entry: "hola", Value: "hello"},
				{Entry: "adios", Value: "bye"},
			}},
			mockSetup: func() {
				mockSvc.EXPECT().
					ReplaceCards(gomock.Any(), int64(1), int64(3), []models.CardInput{
						{Entry: "hola", Value: "hello"},
						{Entry: "adios", Value: "bye"},
					}).
					Return([]models.CardInput{{Entry: "hola", Value: "hello"}, {Entry: "adios", Value: "bye"}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"cards":[{"entry":"hola","value":"hello"},{"entry":"adios","value":"bye"}]}`,
		},
		{
			name:      "empty list clears deck",
			inputBody: `{"cards":[]}`,
			mockSetup: func() {
				mockSvc.EXPECT().ReplaceCards(gomock.Any(), int64(1), int64(3), []models.CardInput{}).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"cards":[]}`,
		},
		{
			name:           "cards missing",
			inputBody:      `{}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			rr := httptest.NewRecorder()
			NewReplaceCardsHandler(mockSvc)(rr, newRequest(http.MethodPut, "/decks/3/cards", tt.inputBody, "3", alice))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}
