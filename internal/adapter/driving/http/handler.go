// Package httphandler is the HTTP driving adapter that serves the admin and
// public REST API.
package httphandler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/tashu/studio/internal/application"
	"github.com/tashu/studio/internal/domain/model"
	"github.com/tashu/studio/internal/domain/port/driven"
)

// sessionCookie carries the admin session token. HttpOnly; the browser never
// scripts against it.
const sessionCookie = "studio_session"

// Stores groups the content stores the handler serves.
type Stores struct {
	Portfolio driven.CollectionStore[model.PortfolioItem]
	Services  driven.CollectionStore[model.ServiceItem]
	Skills    driven.CollectionStore[model.SkillItem]
	Stories   driven.CollectionStore[model.StoryItem]
	Messages  driven.CollectionStore[model.Message]
	About     driven.DocumentStore[model.AboutDocument]
	Settings  driven.DocumentStore[model.SettingsDocument]
}

// Handler serves the REST API over the content stores and services.
type Handler struct {
	auth         *application.AuthService
	restore      *application.RestoreService
	stores       Stores
	assets       driven.AssetStore
	interactions driven.InteractionStore
	sessionTTL   time.Duration
	logger       *slog.Logger
}

// NewHandler creates a Handler with all required dependencies. sessionTTL
// bounds the session cookie lifetime; the server-side session store enforces
// the same TTL.
func NewHandler(
	auth *application.AuthService,
	restore *application.RestoreService,
	stores Stores,
	assets driven.AssetStore,
	interactions driven.InteractionStore,
	sessionTTL time.Duration,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		auth:         auth,
		restore:      restore,
		stores:       stores,
		assets:       assets,
		interactions: interactions,
		sessionTTL:   sessionTTL,
		logger:       logger,
	}
}

// sessionToken extracts the session token from the request cookie. Missing
// cookie means anonymous.
func sessionToken(r *http.Request) string {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		return ""
	}
	return c.Value
}

// requireSession gates a handler behind a live admin session.
func (h *Handler) requireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := h.auth.Require(sessionToken(r)); err != nil {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next(w, r)
	}
}

// writeDomainError maps a domain error onto its HTTP status. Unrecognized
// errors are logged and answered with a 500.
func (h *Handler) writeDomainError(w http.ResponseWriter, err error) {
	var verr *model.ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, model.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, model.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, model.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	default:
		h.logger.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
