package task

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/koinonia/koinonia/internal/rest"
	"github.com/koinonia/koinonia/pkg/season"
	"github.com/koinonia/koinonia/pkg/user"
	log "github.com/sirupsen/logrus"
)

// TaskDTO serializes the date as the calendar day the user picked, not the
// shifted storage instant; the shift stays an internal concern.
type TaskDTO struct {
	ID          string `json:"id"`
	OwnerUid    string `json:"ownerUid"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	CreatedAt   string `json:"createdAt"`
}

type DraftDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) GetVisibleTasks(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	tasks, err := h.service.ListVisibleTasks(r.Context())
	if err != nil {
		writeError(w, "listTasks", err)
		return
	}

	dtos := make([]TaskDTO, 0, len(tasks))
	for _, t := range tasks {
		dtos = append(dtos, taskToDTO(t))
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Trace("Creating new task")

	draft, ok := decodeDraft(w, r)
	if !ok {
		return
	}

	created, err := h.service.CreateTask(r.Context(), draft)
	if err != nil {
		writeError(w, "createTask", err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(taskToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, ok := taskIdFromPath(w, r)
	if !ok {
		return
	}
	draft, ok := decodeDraft(w, r)
	if !ok {
		return
	}

	updated, err := h.service.UpdateTask(r.Context(), id, draft)
	if err != nil {
		writeError(w, "updateTask", err)
		return
	}

	if err := json.NewEncoder(w).Encode(taskToDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, ok := taskIdFromPath(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteTask(r.Context(), id); err != nil {
		writeError(w, "deleteTask", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeDraft(w http.ResponseWriter, r *http.Request) (Draft, bool) {
	var dto DraftDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Invalid request body format",
		})
		return Draft{}, false
	}
	return Draft{Title: dto.Title, Description: dto.Description, Date: dto.Date}, true
}

func taskIdFromPath(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["taskId"])
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid task id",
			Details: "Task id must be a UUID",
		})
		return uuid.Nil, false
	}
	return id, true
}

func writeError(w http.ResponseWriter, operation string, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Validation failed",
			Details: err.Error(),
		})
	case errors.Is(err, ErrTaskNotFound):
		w.WriteHeader(http.StatusNotFound)
	case errors.Is(err, ErrNotOwner):
		w.WriteHeader(http.StatusForbidden)
	case errors.Is(err, user.ErrNoUser):
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Not authenticated",
		})
	default:
		log.Errorf("%s failed: %v", operation, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func taskToDTO(t Task) TaskDTO {
	return TaskDTO{
		ID:          t.ID.String(),
		OwnerUid:    t.OwnerUid,
		Title:       t.Title,
		Description: t.Description,
		Date:        season.FromStorageDate(t.Date).Format(season.PickedDateLayout),
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
}
