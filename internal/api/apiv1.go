package api

import (
	"encoding/json"
	"net/http"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/crm/internal/entity"
)

type UpdateStatusRequest struct {
	Model  string    `json:"model"`
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

type UpdateStatusResponse struct {
	Success bool `json:"success"`
}

// UpdateStatus is the drag-and-drop endpoint behind the kanban boards.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req UpdateStatusRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid JSON")
		return
	}

	model, err := entity.ParseModel(req.Model)
	if err != nil {
		SendDomainErr(ctx, w, err, "parse model")
		return
	}

	err = h.s.UpdateRecordStatus(ctx, model, req.ID, req.Status)
	if err != nil {
		SendDomainErr(ctx, w, err, "update status")
		return
	}

	SendJSON(ctx, w, http.StatusOK, UpdateStatusResponse{Success: true})
}

// Record returns a record's columns as a flat JSON object.
func (h *Handler) Record(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	model, err := modelParam(r)
	if err != nil {
		// Unknown model is 404 here: the path segment names a
		// collection that does not exist.
		SendJSONErr(ctx, w, http.StatusNotFound, err, "unknown model")
		return
	}

	id, err := idParam(r)
	if err != nil {
		SendDomainErr(ctx, w, err, "parse record id")
		return
	}

	fields, err := h.s.RecordFields(ctx, model, id)
	if err != nil {
		SendDomainErr(ctx, w, err, "load record")
		return
	}

	SendJSON(ctx, w, http.StatusOK, fields)
}
