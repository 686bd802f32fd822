package api

import (
	"net/http"

	"github.com/samandr77/crm/internal/entity"
)

func (h *Handler) Accounts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accounts, err := h.s.Accounts(ctx, r.URL.Query().Get("q"))
	if err != nil {
		SendDomainErr(ctx, w, err, "list accounts")
		return
	}

	SendJSON(ctx, w, http.StatusOK, accounts)
}

func (h *Handler) NewAccount(w http.ResponseWriter, r *http.Request) {
	SendJSON(r.Context(), w, http.StatusOK, map[string]any{})
}

func (h *Handler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	account := entity.Account{
		Name:     r.FormValue("name"),
		Industry: r.FormValue("industry"),
		Email:    r.FormValue("email"),
		Phone:    r.FormValue("phone"),
		Address:  r.FormValue("address"),
		Notes:    r.FormValue("notes"),
	}

	_, err := h.s.CreateAccount(ctx, account)
	if err != nil {
		SendDomainErr(ctx, w, err, "create account")
		return
	}

	http.Redirect(w, r, "/accounts", http.StatusSeeOther)
}

func (h *Handler) Account(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendDomainErr(ctx, w, err, "parse account id")
		return
	}

	detail, err := h.s.AccountDetail(ctx, id)
	if err != nil {
		SendDomainErr(ctx, w, err, "load account")
		return
	}

	SendJSON(ctx, w, http.StatusOK, detail)
}

func (h *Handler) EditAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendDomainErr(ctx, w, err, "parse account id")
		return
	}

	account, err := h.s.Account(ctx, id)
	if err != nil {
		SendDomainErr(ctx, w, err, "load account")
		return
	}

	SendJSON(ctx, w, http.StatusOK, map[string]any{"account": account})
}

func (h *Handler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendDomainErr(ctx, w, err, "parse account id")
		return
	}

	account := entity.Account{
		ID:       id,
		Name:     r.FormValue("name"),
		Industry: r.FormValue("industry"),
		Email:    r.FormValue("email"),
		Phone:    r.FormValue("phone"),
		Address:  r.FormValue("address"),
		Notes:    r.FormValue("notes"),
	}

	err = h.s.UpdateAccount(ctx, account)
	if err != nil {
		SendDomainErr(ctx, w, err, "update account")
		return
	}

	http.Redirect(w, r, "/accounts/"+id.String(), http.StatusSeeOther)
}
