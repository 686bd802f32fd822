package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/samandr77/crm/internal/entity"
	"github.com/samandr77/crm/internal/service"
)

type Handler struct {
	s *service.Service
}

func NewHandler(s *service.Service) *Handler {
	return &Handler{s: s}
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	SendJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

// idParam parses the {id} URL segment.
func idParam(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "id")

	id, err := uuid.FromString(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: bad id %q", entity.ErrInvalidArgument, raw)
	}

	return id, nil
}

// modelParam parses the {model} URL segment against the closed enum.
func modelParam(r *http.Request) (entity.Model, error) {
	return entity.ParseModel(chi.URLParam(r, "model"))
}

// formUUID parses an optional uuid form field; empty means unset.
func formUUID(r *http.Request, field string) (uuid.NullUUID, error) {
	raw := r.FormValue(field)
	if raw == "" {
		return uuid.NullUUID{}, nil
	}

	id, err := uuid.FromString(raw)
	if err != nil {
		return uuid.NullUUID{}, fmt.Errorf("%w: bad %s %q", entity.ErrInvalidArgument, field, raw)
	}

	return uuid.NullUUID{UUID: id, Valid: true}, nil
}

// formDecimal parses a money form field; empty means zero.
func formDecimal(r *http.Request, field string) (decimal.Decimal, error) {
	raw := r.FormValue(field)
	if raw == "" {
		return decimal.Zero, nil
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: bad %s %q", entity.ErrInvalidArgument, field, raw)
	}

	return d, nil
}

func formBool(r *http.Request, field string) bool {
	switch r.FormValue(field) {
	case "on", "true", "1":
		return true
	default:
		return false
	}
}
