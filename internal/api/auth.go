package api

import (
	"net/http"
	"time"

	"github.com/samandr77/crm/internal/entity"
)

func (h *Handler) GetLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	SendJSON(ctx, w, http.StatusOK, map[string]string{
		"title": h.s.Translate(ctx, "login"),
	})
}

func (h *Handler) PostLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, token, err := h.s.Login(ctx, r.FormValue("username"), r.FormValue("password"))
	if err != nil {
		SendDomainErr(ctx, w, err, "login failed")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.s.SessionTTL()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	settings, err := h.s.Settings(ctx)
	if err != nil {
		SendDomainErr(ctx, w, err, "load settings")
		return
	}

	SendJSON(ctx, w, http.StatusOK, settings)
}

func (h *Handler) PostSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	settings := entity.UserSettings{
		Language: r.FormValue("language"),
		Timezone: r.FormValue("timezone"),
		Country:  r.FormValue("country"),
		Currency: r.FormValue("currency"),
	}

	err := h.s.UpdateSettings(ctx, settings)
	if err != nil {
		SendDomainErr(ctx, w, err, "update settings")
		return
	}

	// The lang cookie keeps the chosen locale visible on the login page
	// after logout.
	http.SetCookie(w, &http.Cookie{
		Name:    langCookie,
		Value:   settings.Language,
		Path:    "/",
		Expires: time.Now().Add(365 * 24 * time.Hour),
	})

	http.Redirect(w, r, "/settings", http.StatusSeeOther)
}
