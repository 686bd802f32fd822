package api

import (
	"fmt"
	"net/http"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/crm/internal/entity"
)

// requiredRecordID parses the record_id form field, which unlike the
// optional foreign keys must be present.
func requiredRecordID(r *http.Request) (uuid.UUID, error) {
	recordID, err := formUUID(r, "record_id")
	if err != nil {
		return uuid.Nil, err
	}

	if !recordID.Valid {
		return uuid.Nil, fmt.Errorf("%w: record_id is required", entity.ErrInvalidArgument)
	}

	return recordID.UUID, nil
}

func (h *Handler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	model, err := entity.ParseModel(r.FormValue("model"))
	if err != nil {
		SendDomainErr(ctx, w, err, "parse model")
		return
	}

	recordID, err := requiredRecordID(r)
	if err != nil {
		SendDomainErr(ctx, w, err, "parse record id")
		return
	}

	redirect, err := h.s.CreateMessage(ctx, model, recordID, r.FormValue("content"))
	if err != nil {
		SendDomainErr(ctx, w, err, "create message")
		return
	}

	http.Redirect(w, r, redirect, http.StatusSeeOther)
}

func (h *Handler) Notifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	notifications, err := h.s.Notifications(ctx)
	if err != nil {
		SendDomainErr(ctx, w, err, "list notifications")
		return
	}

	SendJSON(ctx, w, http.StatusOK, notifications)
}

// OpenNotification marks the notification read and forwards to the
// record it points at.
func (h *Handler) OpenNotification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendDomainErr(ctx, w, err, "parse notification id")
		return
	}

	redirect, err := h.s.OpenNotification(ctx, id)
	if err != nil {
		SendDomainErr(ctx, w, err, "open notification")
		return
	}

	http.Redirect(w, r, redirect, http.StatusSeeOther)
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	results, err := h.s.Search(ctx, r.URL.Query().Get("q"))
	if err != nil {
		SendDomainErr(ctx, w, err, "search")
		return
	}

	SendJSON(ctx, w, http.StatusOK, results)
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	dashboard, err := h.s.Dashboard(ctx, r.URL.Query().Get("q"))
	if err != nil {
		SendDomainErr(ctx, w, err, "load dashboard")
		return
	}

	SendJSON(ctx, w, http.StatusOK, dashboard)
}

func (h *Handler) ShareRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	model, err := entity.ParseModel(r.FormValue("model"))
	if err != nil {
		SendDomainErr(ctx, w, err, "parse model")
		return
	}

	recordID, err := requiredRecordID(r)
	if err != nil {
		SendDomainErr(ctx, w, err, "parse record id")
		return
	}

	_, err = h.s.ShareRecord(ctx, model, recordID,
		r.FormValue("username"), formBool(r, "can_read"), formBool(r, "can_write"))
	if err != nil {
		SendDomainErr(ctx, w, err, "share record")
		return
	}

	redirect, err := model.RoutePath(recordID)
	if err != nil {
		SendDomainErr(ctx, w, err, "build record path")
		return
	}

	http.Redirect(w, r, redirect, http.StatusSeeOther)
}
