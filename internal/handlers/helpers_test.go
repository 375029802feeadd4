package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/flashcards-api/internal/apperr"
	"github.com/sbilibin2017/flashcards-api/internal/middlewares"
	"github.com/sbilibin2017/flashcards-api/internal/models"
)

var alice = &models.UserDB{UserID: 1, Username: "alice", Email: "alice@example.com"}

// newRequest builds a request with an optional JSON body, deck id and user.
func newRequest(method, target string, body any, deckID string, user *models.UserDB) *http.Request {
	var reader io.Reader
	switch v := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(v)
	default:
		b, _ := json.Marshal(v)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, target, reader)
	ctx := req.Context()
	if deckID != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("deckID", deckID)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	if user != nil {
		ctx = middlewares.WithUser(ctx, user)
	}
	return req.WithContext(ctx)
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) apperr.Response {
	t.Helper()
	var resp apperr.Response
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp
}
