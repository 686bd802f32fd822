package api

import (
	"net/http"

	"github.com/samandr77/crm/internal/entity"
)

func (h *Handler) AdminUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.s.Users(ctx)
	if err != nil {
		SendDomainErr(ctx, w, err, "list users")
		return
	}

	roles, err := h.s.Roles(ctx)
	if err != nil {
		SendDomainErr(ctx, w, err, "list roles")
		return
	}

	profiles, err := h.s.SecurityProfiles(ctx)
	if err != nil {
		SendDomainErr(ctx, w, err, "list security profiles")
		return
	}

	type userRow struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		IsAdmin  bool   `json:"is_admin"`
	}

	rows := make([]userRow, 0, len(users))
	for _, u := range users {
		rows = append(rows, userRow{ID: u.ID.String(), Username: u.Username, IsAdmin: u.IsAdmin})
	}

	SendJSON(ctx, w, http.StatusOK, map[string]any{
		"users":    rows,
		"roles":    roles,
		"profiles": profiles,
	})
}

func (h *Handler) AdminCreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	roleID, err := formUUID(r, "role_id")
	if err != nil {
		SendDomainErr(ctx, w, err, "parse role id")
		return
	}

	profileID, err := formUUID(r, "security_profile_id")
	if err != nil {
		SendDomainErr(ctx, w, err, "parse security profile id")
		return
	}

	_, err = h.s.CreateUser(ctx,
		r.FormValue("username"), r.FormValue("password"),
		formBool(r, "is_admin"), roleID, profileID)
	if err != nil {
		SendDomainErr(ctx, w, err, "create user")
		return
	}

	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}

func (h *Handler) AdminDeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendDomainErr(ctx, w, err, "parse user id")
		return
	}

	err = h.s.DeleteUser(ctx, id)
	if err != nil {
		SendDomainErr(ctx, w, err, "delete user")
		return
	}

	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}

func (h *Handler) AdminRoles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	roles, err := h.s.Roles(ctx)
	if err != nil {
		SendDomainErr(ctx, w, err, "list roles")
		return
	}

	SendJSON(ctx, w, http.StatusOK, roles)
}

func (h *Handler) AdminCreateRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	parentID, err := formUUID(r, "parent_id")
	if err != nil {
		SendDomainErr(ctx, w, err, "parse parent id")
		return
	}

	_, err = h.s.CreateRole(ctx, r.FormValue("name"), parentID)
	if err != nil {
		SendDomainErr(ctx, w, err, "create role")
		return
	}

	http.Redirect(w, r, "/admin/roles", http.StatusSeeOther)
}

func (h *Handler) AdminDeleteRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendDomainErr(ctx, w, err, "parse role id")
		return
	}

	err = h.s.DeleteRole(ctx, id)
	if err != nil {
		SendDomainErr(ctx, w, err, "delete role")
		return
	}

	http.Redirect(w, r, "/admin/roles", http.StatusSeeOther)
}

func (h *Handler) AdminProfiles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	profiles, err := h.s.SecurityProfiles(ctx)
	if err != nil {
		SendDomainErr(ctx, w, err, "list security profiles")
		return
	}

	SendJSON(ctx, w, http.StatusOK, profiles)
}

func (h *Handler) AdminCreateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := h.s.CreateSecurityProfile(ctx, r.FormValue("name"))
	if err != nil {
		SendDomainErr(ctx, w, err, "create security profile")
		return
	}

	http.Redirect(w, r, "/admin/profiles", http.StatusSeeOther)
}

func (h *Handler) AdminProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendDomainErr(ctx, w, err, "parse profile id")
		return
	}

	detail, err := h.s.SecurityProfileDetail(ctx, id)
	if err != nil {
		SendDomainErr(ctx, w, err, "load security profile")
		return
	}

	SendJSON(ctx, w, http.StatusOK, detail)
}

func (h *Handler) AdminCreateObjectPermission(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	profileID, err := idParam(r)
	if err != nil {
		SendDomainErr(ctx, w, err, "parse profile id")
		return
	}

	perm := entity.ObjectPermission{
		ProfileID: profileID,
		Model:     entity.Model(r.FormValue("model")),
		CanCreate: formBool(r, "can_create"),
		CanRead:   formBool(r, "can_read"),
		CanUpdate: formBool(r, "can_update"),
		CanDelete: formBool(r, "can_delete"),
	}

	_, err = h.s.CreateObjectPermission(ctx, perm)
	if err != nil {
		SendDomainErr(ctx, w, err, "create object permission")
		return
	}

	http.Redirect(w, r, "/admin/profiles/"+profileID.String(), http.StatusSeeOther)
}

func (h *Handler) AdminCreateFieldPermission(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	profileID, err := idParam(r)
	if err != nil {
		SendDomainErr(ctx, w, err, "parse profile id")
		return
	}

	perm := entity.FieldPermission{
		ProfileID: profileID,
		Model:     entity.Model(r.FormValue("model")),
		Field:     r.FormValue("field"),
		CanRead:   formBool(r, "can_read"),
		CanEdit:   formBool(r, "can_edit"),
	}

	_, err = h.s.CreateFieldPermission(ctx, perm)
	if err != nil {
		SendDomainErr(ctx, w, err, "create field permission")
		return
	}

	http.Redirect(w, r, "/admin/profiles/"+profileID.String(), http.StatusSeeOther)
}

func (h *Handler) AdminStatusOptions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	options, err := h.s.AllStatusOptions(ctx)
	if err != nil {
		SendDomainErr(ctx, w, err, "list status options")
		return
	}

	SendJSON(ctx, w, http.StatusOK, options)
}

func (h *Handler) AdminCreateStatusOption(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	model, err := entity.ParseModel(r.FormValue("model"))
	if err != nil {
		SendDomainErr(ctx, w, err, "parse model")
		return
	}

	_, err = h.s.CreateStatusOption(ctx, model, r.FormValue("value"))
	if err != nil {
		SendDomainErr(ctx, w, err, "create status option")
		return
	}

	http.Redirect(w, r, "/admin/statuses", http.StatusSeeOther)
}

func (h *Handler) AdminUpdateStatusOption(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendDomainErr(ctx, w, err, "parse status option id")
		return
	}

	err = h.s.UpdateStatusOption(ctx, id, r.FormValue("value"))
	if err != nil {
		SendDomainErr(ctx, w, err, "update status option")
		return
	}

	http.Redirect(w, r, "/admin/statuses", http.StatusSeeOther)
}

func (h *Handler) AdminDeleteStatusOption(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendDomainErr(ctx, w, err, "parse status option id")
		return
	}

	err = h.s.DeleteStatusOption(ctx, id)
	if err != nil {
		SendDomainErr(ctx, w, err, "delete status option")
		return
	}

	http.Redirect(w, r, "/admin/statuses", http.StatusSeeOther)
}
