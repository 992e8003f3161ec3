package connection

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/koinonia/koinonia/internal/rest"
	"github.com/koinonia/koinonia/pkg/user"
	log "github.com/sirupsen/logrus"
)

type ConnectionDTO struct {
	ID           string `json:"id"`
	RequesterUid string `json:"requesterUid"`
	AddresseeUid string `json:"addresseeUid"`
	Status       string `json:"status"`
	CreatedAt    string `json:"createdAt"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) ListConnections(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	connections, err := h.service.ListConnections(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	dtos := make([]ConnectionDTO, 0, len(connections))
	for _, c := range connections {
		dtos = append(dtos, connectionToDTO(c))
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) RequestConnection(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Trace("Requesting new connection")

	var request struct {
		AddresseeUid string `json:"addresseeUid"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Invalid request body format",
		})
		return
	}
	if request.AddresseeUid == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "addresseeUid is required",
		})
		return
	}

	connection, err := h.service.RequestConnection(r.Context(), request.AddresseeUid)
	if err != nil {
		if errors.Is(err, ErrSelfConnection) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error: "Cannot create a connection to yourself",
			})
			return
		}
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(connectionToDTO(connection)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) AcceptConnection(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, ok := connectionIdFromPath(w, r)
	if !ok {
		return
	}

	connection, err := h.service.AcceptConnection(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrConnectionNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, ErrNotAddressee):
			w.WriteHeader(http.StatusForbidden)
		default:
			writeServiceError(w, err)
		}
		return
	}

	if err := json.NewEncoder(w).Encode(connectionToDTO(connection)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) RemoveConnection(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, ok := connectionIdFromPath(w, r)
	if !ok {
		return
	}

	if err := h.service.RemoveConnection(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrConnectionNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, ErrNotParticipant):
			w.WriteHeader(http.StatusForbidden)
		default:
			writeServiceError(w, err)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func connectionIdFromPath(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["connectionId"])
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid connection id",
			Details: "Connection id must be a UUID",
		})
		return uuid.Nil, false
	}
	return id, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, user.ErrNoUser) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Not authenticated",
		})
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func connectionToDTO(c Connection) ConnectionDTO {
	return ConnectionDTO{
		ID:           c.ID.String(),
		RequesterUid: c.RequesterUid,
		AddresseeUid: c.AddresseeUid,
		Status:       string(c.Status),
		CreatedAt:    c.CreatedAt.Format(time.RFC3339),
	}
}
