package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/samandr77/crm/internal/entity"
)

func (h *Handler) Quotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	quotes, err := h.s.Quotes(ctx, r.URL.Query().Get("q"))
	if err != nil {
		SendDomainErr(ctx, w, err, "list quotes")
		return
	}

	SendJSON(ctx, w, http.StatusOK, quotes)
}

func (h *Handler) NewQuote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	deals, err := h.s.Deals(ctx, "")
	if err != nil {
		SendDomainErr(ctx, w, err, "load deals")
		return
	}

	SendJSON(ctx, w, http.StatusOK, map[string]any{"deals": deals})
}

func (h *Handler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	dealID, err := formUUID(r, "deal_id")
	if err != nil {
		SendDomainErr(ctx, w, err, "parse deal id")
		return
	}

	total, err := formDecimal(r, "total")
	if err != nil {
		SendDomainErr(ctx, w, err, "parse total")
		return
	}

	quote := entity.Quote{
		DealID:         dealID,
		Total:          total,
		ExpirationDate: r.FormValue("expiration_date"),
	}

	_, err = h.s.CreateQuote(ctx, quote)
	if err != nil {
		SendDomainErr(ctx, w, err, "create quote")
		return
	}

	http.Redirect(w, r, "/quotes", http.StatusSeeOther)
}

func (h *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendDomainErr(ctx, w, err, "parse quote id")
		return
	}

	detail, err := h.s.QuoteDetail(ctx, id)
	if err != nil {
		SendDomainErr(ctx, w, err, "load quote")
		return
	}

	SendJSON(ctx, w, http.StatusOK, detail)
}

func (h *Handler) EditQuote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendDomainErr(ctx, w, err, "parse quote id")
		return
	}

	quote, err := h.s.Quote(ctx, id)
	if err != nil {
		SendDomainErr(ctx, w, err, "load quote")
		return
	}

	deals, err := h.s.Deals(ctx, "")
	if err != nil {
		SendDomainErr(ctx, w, err, "load deals")
		return
	}

	SendJSON(ctx, w, http.StatusOK, map[string]any{"quote": quote, "deals": deals})
}

func (h *Handler) UpdateQuote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendDomainErr(ctx, w, err, "parse quote id")
		return
	}

	dealID, err := formUUID(r, "deal_id")
	if err != nil {
		SendDomainErr(ctx, w, err, "parse deal id")
		return
	}

	total, err := formDecimal(r, "total")
	if err != nil {
		SendDomainErr(ctx, w, err, "parse total")
		return
	}

	quote := entity.Quote{
		ID:             id,
		DealID:         dealID,
		Total:          total,
		ExpirationDate: r.FormValue("expiration_date"),
	}

	err = h.s.UpdateQuote(ctx, quote)
	if err != nil {
		SendDomainErr(ctx, w, err, "update quote")
		return
	}

	http.Redirect(w, r, "/quotes/"+id.String(), http.StatusSeeOther)
}

func (h *Handler) QuoteLineItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	items, err := h.s.QuoteLineItems(ctx, r.URL.Query().Get("q"))
	if err != nil {
		SendDomainErr(ctx, w, err, "list quote line items")
		return
	}

	SendJSON(ctx, w, http.StatusOK, items)
}

func (h *Handler) NewQuoteLineItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	quotes, err := h.s.Quotes(ctx, "")
	if err != nil {
		SendDomainErr(ctx, w, err, "load quotes")
		return
	}

	products, err := h.s.Products(ctx, "")
	if err != nil {
		SendDomainErr(ctx, w, err, "load products")
		return
	}

	SendJSON(ctx, w, http.StatusOK, map[string]any{"quotes": quotes, "products": products})
}

func (h *Handler) CreateQuoteLineItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	item, err := quoteLineItemForm(r)
	if err != nil {
		SendDomainErr(ctx, w, err, "parse quote line item")
		return
	}

	_, err = h.s.CreateQuoteLineItem(ctx, item)
	if err != nil {
		SendDomainErr(ctx, w, err, "create quote line item")
		return
	}

	http.Redirect(w, r, "/quote_line_items", http.StatusSeeOther)
}

func (h *Handler) QuoteLineItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendDomainErr(ctx, w, err, "parse item id")
		return
	}

	detail, err := h.s.QuoteLineItemDetail(ctx, id)
	if err != nil {
		SendDomainErr(ctx, w, err, "load quote line item")
		return
	}

	SendJSON(ctx, w, http.StatusOK, detail)
}

func (h *Handler) EditQuoteLineItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendDomainErr(ctx, w, err, "parse item id")
		return
	}

	item, err := h.s.QuoteLineItem(ctx, id)
	if err != nil {
		SendDomainErr(ctx, w, err, "load quote line item")
		return
	}

	quotes, err := h.s.Quotes(ctx, "")
	if err != nil {
		SendDomainErr(ctx, w, err, "load quotes")
		return
	}

	products, err := h.s.Products(ctx, "")
	if err != nil {
		SendDomainErr(ctx, w, err, "load products")
		return
	}

	SendJSON(ctx, w, http.StatusOK, map[string]any{
		"item":     item,
		"quotes":   quotes,
		"products": products,
	})
}

func (h *Handler) UpdateQuoteLineItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendDomainErr(ctx, w, err, "parse item id")
		return
	}

	item, err := quoteLineItemForm(r)
	if err != nil {
		SendDomainErr(ctx, w, err, "parse quote line item")
		return
	}

	item.ID = id

	err = h.s.UpdateQuoteLineItem(ctx, item)
	if err != nil {
		SendDomainErr(ctx, w, err, "update quote line item")
		return
	}

	http.Redirect(w, r, "/quote_line_items/"+id.String(), http.StatusSeeOther)
}

func quoteLineItemForm(r *http.Request) (entity.QuoteLineItem, error) {
	quoteID, err := formUUID(r, "quote_id")
	if err != nil {
		return entity.QuoteLineItem{}, err
	}

	productID, err := formUUID(r, "product_id")
	if err != nil {
		return entity.QuoteLineItem{}, err
	}

	price, err := formDecimal(r, "price")
	if err != nil {
		return entity.QuoteLineItem{}, err
	}

	quantity := 0

	if raw := r.FormValue("quantity"); raw != "" {
		quantity, err = strconv.Atoi(raw)
		if err != nil {
			return entity.QuoteLineItem{}, fmt.Errorf("%w: bad quantity %q", entity.ErrInvalidArgument, raw)
		}
	}

	return entity.QuoteLineItem{
		QuoteID:   quoteID,
		ProductID: productID,
		Quantity:  quantity,
		Price:     price,
	}, nil
}
