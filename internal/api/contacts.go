package api

import (
	"net/http"

	"github.com/samandr77/crm/internal/entity"
)

func (h *Handler) Contacts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	contacts, err := h.s.Contacts(ctx, r.URL.Query().Get("q"))
	if err != nil {
		SendDomainErr(ctx, w, err, "list contacts")
		return
	}

	SendJSON(ctx, w, http.StatusOK, contacts)
}

func (h *Handler) NewContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accounts, err := h.s.Accounts(ctx, "")
	if err != nil {
		SendDomainErr(ctx, w, err, "load accounts")
		return
	}

	SendJSON(ctx, w, http.StatusOK, map[string]any{"accounts": accounts})
}

func (h *Handler) CreateContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accountID, err := formUUID(r, "account_id")
	if err != nil {
		SendDomainErr(ctx, w, err, "parse account id")
		return
	}

	contact := entity.Contact{
		Name:      r.FormValue("name"),
		Email:     r.FormValue("email"),
		Phone:     r.FormValue("phone"),
		Title:     r.FormValue("title"),
		AccountID: accountID,
	}

	_, err = h.s.CreateContact(ctx, contact)
	if err != nil {
		SendDomainErr(ctx, w, err, "create contact")
		return
	}

	http.Redirect(w, r, "/contacts", http.StatusSeeOther)
}

func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendDomainErr(ctx, w, err, "parse contact id")
		return
	}

	detail, err := h.s.ContactDetail(ctx, id)
	if err != nil {
		SendDomainErr(ctx, w, err, "load contact")
		return
	}

	SendJSON(ctx, w, http.StatusOK, detail)
}

func (h *Handler) EditContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendDomainErr(ctx, w, err, "parse contact id")
		return
	}

	contact, err := h.s.Contact(ctx, id)
	if err != nil {
		SendDomainErr(ctx, w, err, "load contact")
		return
	}

	accounts, err := h.s.Accounts(ctx, "")
	if err != nil {
		SendDomainErr(ctx, w, err, "load accounts")
		return
	}

	SendJSON(ctx, w, http.StatusOK, map[string]any{"contact": contact, "accounts": accounts})
}

func (h *Handler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendDomainErr(ctx, w, err, "parse contact id")
		return
	}

	accountID, err := formUUID(r, "account_id")
	if err != nil {
		SendDomainErr(ctx, w, err, "parse account id")
		return
	}

	contact := entity.Contact{
		ID:        id,
		Name:      r.FormValue("name"),
		Email:     r.FormValue("email"),
		Phone:     r.FormValue("phone"),
		Title:     r.FormValue("title"),
		AccountID: accountID,
	}

	err = h.s.UpdateContact(ctx, contact)
	if err != nil {
		SendDomainErr(ctx, w, err, "update contact")
		return
	}

	http.Redirect(w, r, "/contacts/"+id.String(), http.StatusSeeOther)
}
