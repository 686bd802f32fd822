package api

import (
	"net/http"

	"github.com/samandr77/crm/internal/entity"
)

func (h *Handler) Deals(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	deals, err := h.s.Deals(ctx, r.URL.Query().Get("q"))
	if err != nil {
		SendDomainErr(ctx, w, err, "list deals")
		return
	}

	SendJSON(ctx, w, http.StatusOK, deals)
}

func (h *Handler) NewDeal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accounts, err := h.s.Accounts(ctx, "")
	if err != nil {
		SendDomainErr(ctx, w, err, "load accounts")
		return
	}

	stages, err := h.s.StatusOptions(ctx, entity.ModelDeal)
	if err != nil {
		SendDomainErr(ctx, w, err, "load deal stages")
		return
	}

	SendJSON(ctx, w, http.StatusOK, map[string]any{"accounts": accounts, "stages": stages})
}

func (h *Handler) CreateDeal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	amount, err := formDecimal(r, "amount")
	if err != nil {
		SendDomainErr(ctx, w, err, "parse amount")
		return
	}

	accountID, err := formUUID(r, "account_id")
	if err != nil {
		SendDomainErr(ctx, w, err, "parse account id")
		return
	}

	deal := entity.Deal{
		Name:      r.FormValue("name"),
		Amount:    amount,
		Stage:     r.FormValue("stage"),
		CloseDate: r.FormValue("close_date"),
		AccountID: accountID,
	}

	_, err = h.s.CreateDeal(ctx, deal)
	if err != nil {
		SendDomainErr(ctx, w, err, "create deal")
		return
	}

	http.Redirect(w, r, "/deals", http.StatusSeeOther)
}

func (h *Handler) Deal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendDomainErr(ctx, w, err, "parse deal id")
		return
	}

	detail, err := h.s.DealDetail(ctx, id)
	if err != nil {
		SendDomainErr(ctx, w, err, "load deal")
		return
	}

	SendJSON(ctx, w, http.StatusOK, detail)
}

func (h *Handler) EditDeal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendDomainErr(ctx, w, err, "parse deal id")
		return
	}

	deal, err := h.s.Deal(ctx, id)
	if err != nil {
		SendDomainErr(ctx, w, err, "load deal")
		return
	}

	accounts, err := h.s.Accounts(ctx, "")
	if err != nil {
		SendDomainErr(ctx, w, err, "load accounts")
		return
	}

	stages, err := h.s.StatusOptions(ctx, entity.ModelDeal)
	if err != nil {
		SendDomainErr(ctx, w, err, "load deal stages")
		return
	}

	SendJSON(ctx, w, http.StatusOK, map[string]any{
		"deal":     deal,
		"accounts": accounts,
		"stages":   stages,
	})
}

func (h *Handler) UpdateDeal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendDomainErr(ctx, w, err, "parse deal id")
		return
	}

	amount, err := formDecimal(r, "amount")
	if err != nil {
		SendDomainErr(ctx, w, err, "parse amount")
		return
	}

	accountID, err := formUUID(r, "account_id")
	if err != nil {
		SendDomainErr(ctx, w, err, "parse account id")
		return
	}

	deal := entity.Deal{
		ID:        id,
		Name:      r.FormValue("name"),
		Amount:    amount,
		Stage:     r.FormValue("stage"),
		CloseDate: r.FormValue("close_date"),
		AccountID: accountID,
	}

	err = h.s.UpdateDeal(ctx, deal)
	if err != nil {
		SendDomainErr(ctx, w, err, "update deal")
		return
	}

	http.Redirect(w, r, "/deals/"+id.String(), http.StatusSeeOther)
}

func (h *Handler) DealsKanban(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	board, err := h.s.Kanban(ctx, entity.ModelDeal)
	if err != nil {
		SendDomainErr(ctx, w, err, "load deal board")
		return
	}

	SendJSON(ctx, w, http.StatusOK, board)
}
