package api

import (
	"net/http"

	"github.com/samandr77/crm/internal/entity"
)

func (h *Handler) Products(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.s.Products(ctx, r.URL.Query().Get("q"))
	if err != nil {
		SendDomainErr(ctx, w, err, "list products")
		return
	}

	SendJSON(ctx, w, http.StatusOK, products)
}

func (h *Handler) NewProduct(w http.ResponseWriter, r *http.Request) {
	SendJSON(r.Context(), w, http.StatusOK, map[string]any{})
}

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	price, err := formDecimal(r, "price")
	if err != nil {
		SendDomainErr(ctx, w, err, "parse price")
		return
	}

	product := entity.Product{
		Name:        r.FormValue("name"),
		Price:       price,
		Description: r.FormValue("description"),
	}

	_, err = h.s.CreateProduct(ctx, product)
	if err != nil {
		SendDomainErr(ctx, w, err, "create product")
		return
	}

	http.Redirect(w, r, "/products", http.StatusSeeOther)
}

func (h *Handler) Product(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendDomainErr(ctx, w, err, "parse product id")
		return
	}

	detail, err := h.s.ProductDetail(ctx, id)
	if err != nil {
		SendDomainErr(ctx, w, err, "load product")
		return
	}

	SendJSON(ctx, w, http.StatusOK, detail)
}

func (h *Handler) EditProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendDomainErr(ctx, w, err, "parse product id")
		return
	}

	product, err := h.s.Product(ctx, id)
	if err != nil {
		SendDomainErr(ctx, w, err, "load product")
		return
	}

	SendJSON(ctx, w, http.StatusOK, map[string]any{"product": product})
}

func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendDomainErr(ctx, w, err, "parse product id")
		return
	}

	price, err := formDecimal(r, "price")
	if err != nil {
		SendDomainErr(ctx, w, err, "parse price")
		return
	}

	product := entity.Product{
		ID:          id,
		Name:        r.FormValue("name"),
		Price:       price,
		Description: r.FormValue("description"),
	}

	err = h.s.UpdateProduct(ctx, product)
	if err != nil {
		SendDomainErr(ctx, w, err, "update product")
		return
	}

	http.Redirect(w, r, "/products/"+id.String(), http.StatusSeeOther)
}
