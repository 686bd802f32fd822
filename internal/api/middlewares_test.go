package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/crm/internal/api"
	"github.com/samandr77/crm/internal/entity"
	"github.com/samandr77/crm/pkg/i18n"
)

type fakeAuth struct {
	user  entity.User
	token string
}

func (a *fakeAuth) UserFromToken(_ context.Context, token string) (entity.User, error) {
	if token != a.token {
		return entity.User{}, entity.ErrUnauthenticated
	}

	return a.user, nil
}

func (a *fakeAuth) SessionTTL() time.Duration {
	return time.Hour
}

func newMiddleware(t *testing.T, auth *fakeAuth) *api.Middleware {
	t.Helper()

	langs, err := i18n.New("en")
	require.NoError(t, err)

	return api.NewMiddleware(auth, langs, "en")
}

func TestSessionAuth_RedirectsAnonymous(t *testing.T) {
	t.Parallel()

	mw := newMiddleware(t, &fakeAuth{})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	})

	rec := httptest.NewRecorder()
	mw.SessionAuth(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leads", nil))

	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestAPISessionAuth_RejectsAnonymous(t *testing.T) {
	t.Parallel()

	mw := newMiddleware(t, &fakeAuth{})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	})

	rec := httptest.NewRecorder()
	mw.APISessionAuth(next).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/update_status", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionAuth_PutsUserAndLangInCtx(t *testing.T) {
	t.Parallel()

	user := entity.User{
		ID:       uuid.Must(uuid.NewV4()),
		Username: "alice",
		Language: "de",
	}

	mw := newMiddleware(t, &fakeAuth{user: user, token: "good-token"})

	var gotUser entity.User
	var gotLang string

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		gotUser, err = entity.UserFromCtx(r.Context())
		require.NoError(t, err)

		gotLang = entity.LangFromCtx(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/leads", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: "good-token"})

	rec := httptest.NewRecorder()
	mw.SessionAuth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, user.ID, gotUser.ID)
	require.Equal(t, "de", gotLang)
}

func TestSessionAuth_BadToken(t *testing.T) {
	t.Parallel()

	mw := newMiddleware(t, &fakeAuth{token: "good-token"})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/leads", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: "stale-token"})

	rec := httptest.NewRecorder()
	mw.SessionAuth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
}

func TestLang_CookieFallback(t *testing.T) {
	t.Parallel()

	mw := newMiddleware(t, &fakeAuth{})

	var gotLang string

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLang = entity.LangFromCtx(r.Context())
	})

	// Supported cookie wins.
	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(&http.Cookie{Name: "lang", Value: "de"})

	mw.Lang(next).ServeHTTP(httptest.NewRecorder(), req)
	require.Equal(t, "de", gotLang)

	// Unsupported cookie falls back to the default.
	req = httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(&http.Cookie{Name: "lang", Value: "xx"})

	mw.Lang(next).ServeHTTP(httptest.NewRecorder(), req)
	require.Equal(t, "en", gotLang)
}

func TestLog_SetsRequestID(t *testing.T) {
	t.Parallel()

	mw := newMiddleware(t, &fakeAuth{})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	mw.Log(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leads", nil))

	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	// A caller-supplied id is echoed back.
	req := httptest.NewRequest(http.MethodGet, "/leads", nil)
	req.Header.Set("X-Request-Id", "req-42")

	rec = httptest.NewRecorder()
	mw.Log(next).ServeHTTP(rec, req)

	require.Equal(t, "req-42", rec.Header().Get("X-Request-Id"))
}
