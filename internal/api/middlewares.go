package api

import (
	"context"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/crm/internal/entity"
	"github.com/samandr77/crm/pkg/logger"
)

const (
	sessionCookie = "session"
	langCookie    = "lang"
)

var skipLogging = map[string]struct{}{
	"/api/health": {},
}

type AuthService interface {
	UserFromToken(ctx context.Context, token string) (entity.User, error)
	SessionTTL() time.Duration
}

type LangBundle interface {
	Supported(lang string) bool
}

type Middleware struct {
	auth        AuthService
	langs       LangBundle
	defaultLang string
}

func NewMiddleware(auth AuthService, langs LangBundle, defaultLang string) *Middleware {
	return &Middleware{
		auth:        auth,
		langs:       langs,
		defaultLang: defaultLang,
	}
}

func (m *Middleware) Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.Must(uuid.NewV4()).String()
		}

		ctx = logger.WithRequestID(ctx, requestID)
		w.Header().Set("X-Request-Id", requestID)

		if _, ok := skipLogging[r.URL.Path]; !ok {
			slog.InfoContext(ctx, "incoming request",
				"method", r.Method,
				"path", r.URL.Redacted(),
			)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			err := recover()
			if err != nil {
				slog.ErrorContext(ctx, "recovered from panic", "error", err, "stack", string(debug.Stack()))
				SendJSON(ctx, w, http.StatusInternalServerError, ErrorResponse{Message: "internal error"})
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// SessionAuth resolves the session cookie to a user. Browser pages
// redirect anonymous visitors to /login, matching the original flow.
func (m *Middleware) SessionAuth(next http.Handler) http.Handler {
	return m.sessionAuth(next, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/login", http.StatusFound)
	})
}

// APISessionAuth is SessionAuth for the JSON endpoints: a plain 401
// instead of a redirect.
func (m *Middleware) APISessionAuth(next http.Handler) http.Handler {
	return m.sessionAuth(next, func(w http.ResponseWriter, r *http.Request) {
		SendJSONErr(r.Context(), w, http.StatusUnauthorized, entity.ErrUnauthenticated, "authentication required")
	})
}

func (m *Middleware) sessionAuth(next http.Handler, reject http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		cookie, err := r.Cookie(sessionCookie)
		if err != nil {
			reject(w, r)
			return
		}

		user, err := m.auth.UserFromToken(ctx, cookie.Value)
		if err != nil {
			reject(w, r)
			return
		}

		ctx = entity.CtxWithUser(ctx, user)
		ctx = logger.WithUserID(ctx, user.ID)
		ctx = entity.CtxWithLang(ctx, m.resolveLang(r, user.Language))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Lang resolves the locale for pages that render without a session, from
// the lang cookie alone.
func (m *Middleware) Lang(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := entity.CtxWithLang(r.Context(), m.resolveLang(r, ""))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// resolveLang prefers the user's saved language, then the lang cookie,
// then the configured default. Unsupported values fall through.
func (m *Middleware) resolveLang(r *http.Request, userLang string) string {
	if userLang != "" && m.langs.Supported(userLang) {
		return userLang
	}

	cookie, err := r.Cookie(langCookie)
	if err == nil && m.langs.Supported(cookie.Value) {
		return cookie.Value
	}

	return m.defaultLang
}
