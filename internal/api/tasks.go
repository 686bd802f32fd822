package api

import (
	"net/http"

	"github.com/samandr77/crm/internal/entity"
)

func (h *Handler) Tasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tasks, err := h.s.Tasks(ctx, r.URL.Query().Get("q"))
	if err != nil {
		SendDomainErr(ctx, w, err, "list tasks")
		return
	}

	SendJSON(ctx, w, http.StatusOK, tasks)
}

func (h *Handler) NewTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	statuses, err := h.s.StatusOptions(ctx, entity.ModelTask)
	if err != nil {
		SendDomainErr(ctx, w, err, "load task statuses")
		return
	}

	SendJSON(ctx, w, http.StatusOK, map[string]any{"statuses": statuses})
}

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	task, err := taskForm(r)
	if err != nil {
		SendDomainErr(ctx, w, err, "parse task")
		return
	}

	_, err = h.s.CreateTask(ctx, task)
	if err != nil {
		SendDomainErr(ctx, w, err, "create task")
		return
	}

	http.Redirect(w, r, "/tasks", http.StatusSeeOther)
}

func (h *Handler) Task(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendDomainErr(ctx, w, err, "parse task id")
		return
	}

	detail, err := h.s.TaskDetail(ctx, id)
	if err != nil {
		SendDomainErr(ctx, w, err, "load task")
		return
	}

	SendJSON(ctx, w, http.StatusOK, detail)
}

func (h *Handler) EditTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendDomainErr(ctx, w, err, "parse task id")
		return
	}

	task, err := h.s.Task(ctx, id)
	if err != nil {
		SendDomainErr(ctx, w, err, "load task")
		return
	}

	statuses, err := h.s.StatusOptions(ctx, entity.ModelTask)
	if err != nil {
		SendDomainErr(ctx, w, err, "load task statuses")
		return
	}

	SendJSON(ctx, w, http.StatusOK, map[string]any{"task": task, "statuses": statuses})
}

func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendDomainErr(ctx, w, err, "parse task id")
		return
	}

	task, err := taskForm(r)
	if err != nil {
		SendDomainErr(ctx, w, err, "parse task")
		return
	}

	task.ID = id

	err = h.s.UpdateTask(ctx, task)
	if err != nil {
		SendDomainErr(ctx, w, err, "update task")
		return
	}

	http.Redirect(w, r, "/tasks/"+id.String(), http.StatusSeeOther)
}

func (h *Handler) TasksKanban(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	board, err := h.s.Kanban(ctx, entity.ModelTask)
	if err != nil {
		SendDomainErr(ctx, w, err, "load task board")
		return
	}

	SendJSON(ctx, w, http.StatusOK, board)
}

func taskForm(r *http.Request) (entity.Task, error) {
	recordID, err := formUUID(r, "record_id")
	if err != nil {
		return entity.Task{}, err
	}

	task := entity.Task{
		Description: r.FormValue("description"),
		DueDate:     r.FormValue("due_date"),
		Status:      r.FormValue("status"),
		RecordID:    recordID,
	}

	if recordID.Valid {
		model, err := entity.ParseModel(r.FormValue("model"))
		if err != nil {
			return entity.Task{}, err
		}

		task.Model = model
	}

	return task, nil
}
