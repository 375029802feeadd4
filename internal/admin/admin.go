// Package admin serves a small HTML panel for browsing and deleting rows.
//
// Access is guarded by a single configured credential pair. A successful
// login opens a session kept in Redis and referenced by the admin_session
// cookie.
package admin

import (
	"context"
	"crypto/subtle"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/flashcards-api/internal/config"
	"github.com/sbilibin2017/flashcards-api/internal/logger"
	"github.com/sbilibin2017/flashcards-api/internal/models"
)

// SessionCookie is the name of the cookie carrying the session id.
const SessionCookie = "admin_session"

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Store defines the queries behind the panel views.
type Store interface {
	ListUsers(ctx context.Context, search string) ([]models.UserDB, error)
	ListDecks(ctx context.Context, search string) ([]models.DeckDB, error)
	ListCards(ctx context.Context, search string) ([]models.CardDB, error)
	ListProgress(ctx context.Context, userID *int64) ([]models.UserProgressDB, error)
	Delete(ctx context.Context, table string, id int64) (bool, error)
}

// SessionStore keeps panel sessions.
type SessionStore interface {
	Create(ctx context.Context, username string) (string, error)
	Get(ctx context.Context, sessionID string) (string, error)
	Delete(ctx context.Context, sessionID string) error
}

// Panel is the admin HTTP application.
type Panel struct {
	store    Store
	sessions SessionStore
	cfg      config.AdminConfig
	base     string
}

// NewPanel creates a panel mounted under base, e.g. "/admin".
func NewPanel(store Store, sessions SessionStore, cfg config.AdminConfig, base string) *Panel {
	return &Panel{
		store:    store,
		sessions: sessions,
		cfg:      cfg,
		base:     strings.TrimRight(base, "/"),
	}
}

// Routes returns the panel router. Mount it at the base given to NewPanel.
func (p *Panel) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/login", p.loginForm)
	r.Post("/login", p.login)
	r.Post("/logout", p.logout)

	r.Group(func(r chi.Router) {
		r.Use(p.requireSession)
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, p.base+"/users", http.StatusSeeOther)
		})
		r.Get("/{view}", p.list)
		r.Post("/{view}/{id}/delete", p.delete)
	})

	return r
}

type loginPage struct {
	Title    string
	Base     string
	Username string
	Error    string
}

func (p *Panel) loginForm(w http.ResponseWriter, r *http.Request) {
	p.render(w, http.StatusOK, "login", loginPage{Title: "Login", Base: p.base})
}

func (p *Panel) login(w http.ResponseWriter, r *http.Request) {
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	if !p.validCredentials(username, password) {
		logger.Log.Infow("admin login rejected", "username", username)
		p.render(w, http.StatusBadRequest, "login", loginPage{
			Title:    "Login",
			Base:     p.base,
			Username: username,
			Error:    "Invalid username or password",
		})
		return
	}

	sessionID, err := p.sessions.Create(r.Context(), username)
	if err != nil {
		logger.Log.Errorw("failed to create admin session", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    sessionID,
		Path:     p.cookiePath(),
		MaxAge:   int(p.cfg.SessionTTL / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	logger.Log.Infow("admin logged in", "username", username)
	http.Redirect(w, r, p.base+"/users", http.StatusSeeOther)
}

// validCredentials compares both fields in constant time and evaluates both
// comparisons regardless of the first result.
func (p *Panel) validCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(p.cfg.Username))
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(p.cfg.Password))
	return userOK&passOK == 1 && p.cfg.Enabled()
}

func (p *Panel) logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(SessionCookie); err == nil {
		if err := p.sessions.Delete(r.Context(), c.Value); err != nil {
			logger.Log.Errorw("failed to delete admin session", "error", err)
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     p.cookiePath(),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, p.base+"/login", http.StatusSeeOther)
}

func (p *Panel) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(SessionCookie)
		if err != nil || c.Value == "" {
			http.Redirect(w, r, p.base+"/login", http.StatusSeeOther)
			return
		}

		username, err := p.sessions.Get(r.Context(), c.Value)
		if err != nil {
			logger.Log.Errorw("failed to read admin session", "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		if username == "" {
			http.Redirect(w, r, p.base+"/login", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (p *Panel) list(w http.ResponseWriter, r *http.Request) {
	v, ok := viewByName(chi.URLParam(r, "view"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	search := strings.TrimSpace(r.URL.Query().Get(v.searchParam))
	rows, err := v.rows(r.Context(), p.store, search)
	if err != nil {
		if errors.Is(err, errBadFilter) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		logger.Log.Errorw("failed to list admin rows", "view", v.name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	p.render(w, http.StatusOK, "list", listPage{
		Title:       v.title,
		Base:        p.base,
		View:        v.name,
		Views:       viewNames(),
		SearchParam: v.searchParam,
		SearchHint:  v.searchHint,
		Search:      search,
		Columns:     v.columns,
		Rows:        rows,
	})
}

func (p *Panel) delete(w http.ResponseWriter, r *http.Request) {
	v, ok := viewByName(chi.URLParam(r, "view"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	deleted, err := p.store.Delete(r.Context(), v.table, id)
	if err != nil {
		logger.Log.Errorw("failed to delete admin row", "table", v.table, "id", id, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	logger.Log.Infow("admin row deleted", "table", v.table, "id", id, "deleted", deleted)

	http.Redirect(w, r, p.base+"/"+v.name, http.StatusSeeOther)
}

func (p *Panel) render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		logger.Log.Errorw("failed to render admin page", "template", name, "error", err)
	}
}

func (p *Panel) cookiePath() string {
	if p.base == "" {
		return "/"
	}
	return p.base
}
