package api

import (
	"net/http"

	"github.com/samandr77/crm/internal/entity"
)

func (h *Handler) Pricebooks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	pricebooks, err := h.s.Pricebooks(ctx, r.URL.Query().Get("q"))
	if err != nil {
		SendDomainErr(ctx, w, err, "list pricebooks")
		return
	}

	SendJSON(ctx, w, http.StatusOK, pricebooks)
}

func (h *Handler) NewPricebook(w http.ResponseWriter, r *http.Request) {
	SendJSON(r.Context(), w, http.StatusOK, map[string]any{})
}

func (h *Handler) CreatePricebook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	pricebook := entity.Pricebook{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
	}

	_, err := h.s.CreatePricebook(ctx, pricebook)
	if err != nil {
		SendDomainErr(ctx, w, err, "create pricebook")
		return
	}

	http.Redirect(w, r, "/pricebooks", http.StatusSeeOther)
}

func (h *Handler) Pricebook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendDomainErr(ctx, w, err, "parse pricebook id")
		return
	}

	detail, err := h.s.PricebookDetail(ctx, id)
	if err != nil {
		SendDomainErr(ctx, w, err, "load pricebook")
		return
	}

	SendJSON(ctx, w, http.StatusOK, detail)
}

func (h *Handler) EditPricebook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendDomainErr(ctx, w, err, "parse pricebook id")
		return
	}

	pricebook, err := h.s.Pricebook(ctx, id)
	if err != nil {
		SendDomainErr(ctx, w, err, "load pricebook")
		return
	}

	SendJSON(ctx, w, http.StatusOK, map[string]any{"pricebook": pricebook})
}

func (h *Handler) UpdatePricebook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendDomainErr(ctx, w, err, "parse pricebook id")
		return
	}

	pricebook := entity.Pricebook{
		ID:          id,
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
	}

	err = h.s.UpdatePricebook(ctx, pricebook)
	if err != nil {
		SendDomainErr(ctx, w, err, "update pricebook")
		return
	}

	http.Redirect(w, r, "/pricebooks/"+id.String(), http.StatusSeeOther)
}

func (h *Handler) PricebookEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entries, err := h.s.PricebookEntries(ctx, r.URL.Query().Get("q"))
	if err != nil {
		SendDomainErr(ctx, w, err, "list pricebook entries")
		return
	}

	SendJSON(ctx, w, http.StatusOK, entries)
}

func (h *Handler) NewPricebookEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.s.Products(ctx, "")
	if err != nil {
		SendDomainErr(ctx, w, err, "load products")
		return
	}

	pricebooks, err := h.s.Pricebooks(ctx, "")
	if err != nil {
		SendDomainErr(ctx, w, err, "load pricebooks")
		return
	}

	SendJSON(ctx, w, http.StatusOK, map[string]any{"products": products, "pricebooks": pricebooks})
}

func (h *Handler) CreatePricebookEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID, err := formUUID(r, "product_id")
	if err != nil {
		SendDomainErr(ctx, w, err, "parse product id")
		return
	}

	pricebookID, err := formUUID(r, "pricebook_id")
	if err != nil {
		SendDomainErr(ctx, w, err, "parse pricebook id")
		return
	}

	unitPrice, err := formDecimal(r, "unit_price")
	if err != nil {
		SendDomainErr(ctx, w, err, "parse unit price")
		return
	}

	entry := entity.PricebookEntry{
		ProductID:   productID,
		PricebookID: pricebookID,
		UnitPrice:   unitPrice,
	}

	_, err = h.s.CreatePricebookEntry(ctx, entry)
	if err != nil {
		SendDomainErr(ctx, w, err, "create pricebook entry")
		return
	}

	http.Redirect(w, r, "/pricebook_entries", http.StatusSeeOther)
}

func (h *Handler) PricebookEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendDomainErr(ctx, w, err, "parse entry id")
		return
	}

	detail, err := h.s.PricebookEntryDetail(ctx, id)
	if err != nil {
		SendDomainErr(ctx, w, err, "load pricebook entry")
		return
	}

	SendJSON(ctx, w, http.StatusOK, detail)
}

func (h *Handler) EditPricebookEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendDomainErr(ctx, w, err, "parse entry id")
		return
	}

	entry, err := h.s.PricebookEntry(ctx, id)
	if err != nil {
		SendDomainErr(ctx, w, err, "load pricebook entry")
		return
	}

	products, err := h.s.Products(ctx, "")
	if err != nil {
		SendDomainErr(ctx, w, err, "load products")
		return
	}

	pricebooks, err := h.s.Pricebooks(ctx, "")
	if err != nil {
		SendDomainErr(ctx, w, err, "load pricebooks")
		return
	}

	SendJSON(ctx, w, http.StatusOK, map[string]any{
		"entry":      entry,
		"products":   products,
		"pricebooks": pricebooks,
	})
}

func (h *Handler) UpdatePricebookEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendDomainErr(ctx, w, err, "parse entry id")
		return
	}

	productID, err := formUUID(r, "product_id")
	if err != nil {
		SendDomainErr(ctx, w, err, "parse product id")
		return
	}

	pricebookID, err := formUUID(r, "pricebook_id")
	if err != nil {
		SendDomainErr(ctx, w, err, "parse pricebook id")
		return
	}

	unitPrice, err := formDecimal(r, "unit_price")
	if err != nil {
		SendDomainErr(ctx, w, err, "parse unit price")
		return
	}

	entry := entity.PricebookEntry{
		ID:          id,
		ProductID:   productID,
		PricebookID: pricebookID,
		UnitPrice:   unitPrice,
	}

	err = h.s.UpdatePricebookEntry(ctx, entry)
	if err != nil {
		SendDomainErr(ctx, w, err, "update pricebook entry")
		return
	}

	http.Redirect(w, r, "/pricebook_entries/"+id.String(), http.StatusSeeOther)
}
