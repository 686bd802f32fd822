package api

import (
	"net/http"

	"github.com/samandr77/crm/internal/entity"
)

func (h *Handler) Leads(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	leads, err := h.s.Leads(ctx, r.URL.Query().Get("q"))
	if err != nil {
		SendDomainErr(ctx, w, err, "list leads")
		return
	}

	SendJSON(ctx, w, http.StatusOK, leads)
}

func (h *Handler) NewLead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	statuses, err := h.s.StatusOptions(ctx, entity.ModelLead)
	if err != nil {
		SendDomainErr(ctx, w, err, "load lead statuses")
		return
	}

	SendJSON(ctx, w, http.StatusOK, map[string]any{"statuses": statuses})
}

func (h *Handler) CreateLead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	lead := entity.Lead{
		Name:    r.FormValue("name"),
		Email:   r.FormValue("email"),
		Phone:   r.FormValue("phone"),
		Company: r.FormValue("company"),
		Notes:   r.FormValue("notes"),
		Status:  r.FormValue("status"),
	}

	_, err := h.s.CreateLead(ctx, lead)
	if err != nil {
		SendDomainErr(ctx, w, err, "create lead")
		return
	}

	http.Redirect(w, r, "/leads", http.StatusSeeOther)
}

func (h *Handler) Lead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendDomainErr(ctx, w, err, "parse lead id")
		return
	}

	detail, err := h.s.LeadDetail(ctx, id)
	if err != nil {
		SendDomainErr(ctx, w, err, "load lead")
		return
	}

	SendJSON(ctx, w, http.StatusOK, detail)
}

func (h *Handler) EditLead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendDomainErr(ctx, w, err, "parse lead id")
		return
	}

	lead, err := h.s.Lead(ctx, id)
	if err != nil {
		SendDomainErr(ctx, w, err, "load lead")
		return
	}

	statuses, err := h.s.StatusOptions(ctx, entity.ModelLead)
	if err != nil {
		SendDomainErr(ctx, w, err, "load lead statuses")
		return
	}

	SendJSON(ctx, w, http.StatusOK, map[string]any{"lead": lead, "statuses": statuses})
}

func (h *Handler) UpdateLead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendDomainErr(ctx, w, err, "parse lead id")
		return
	}

	lead := entity.Lead{
		ID:      id,
		Name:    r.FormValue("name"),
		Email:   r.FormValue("email"),
		Phone:   r.FormValue("phone"),
		Company: r.FormValue("company"),
		Notes:   r.FormValue("notes"),
		Status:  r.FormValue("status"),
	}

	err = h.s.UpdateLead(ctx, lead)
	if err != nil {
		SendDomainErr(ctx, w, err, "update lead")
		return
	}

	http.Redirect(w, r, "/leads/"+id.String(), http.StatusSeeOther)
}

func (h *Handler) ConvertLead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendDomainErr(ctx, w, err, "parse lead id")
		return
	}

	accountID, err := h.s.ConvertLead(ctx, id)
	if err != nil {
		SendDomainErr(ctx, w, err, "convert lead")
		return
	}

	http.Redirect(w, r, "/accounts/"+accountID.String(), http.StatusSeeOther)
}

func (h *Handler) LeadsKanban(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	board, err := h.s.Kanban(ctx, entity.ModelLead)
	if err != nil {
		SendDomainErr(ctx, w, err, "load lead board")
		return
	}

	SendJSON(ctx, w, http.StatusOK, board)
}
