package calendar_view

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/koinonia/koinonia/internal/rest"
	"github.com/koinonia/koinonia/internal/utils"
	"github.com/koinonia/koinonia/pkg/season"
	"github.com/koinonia/koinonia/pkg/task"
	"github.com/koinonia/koinonia/pkg/user"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	tasks    task.Service
	clock    utils.Clock
	geometry Geometry
}

func NewHandler(tasks task.Service, clock utils.Clock, geometry Geometry) *Handler {
	return &Handler{tasks: tasks, clock: clock, geometry: geometry}
}

type TaskDTO struct {
	ID          string `json:"id"`
	OwnerUid    string `json:"ownerUid"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

type PeerTaskDTO struct {
	TaskDTO
	Color string `json:"color"`
}

type GuideEventDTO struct {
	MonthDay    string `json:"monthDay"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type DayCellDTO struct {
	Empty       bool            `json:"empty"`
	Date        string          `json:"date,omitempty"`
	IsToday     bool            `json:"isToday"`
	OwnTasks    []TaskDTO       `json:"ownTasks"`
	PeerTasks   []PeerTaskDTO   `json:"peerTasks"`
	GuideEvents []GuideEventDTO `json:"guideEvents"`
}

type ViewModelDTO struct {
	Mode         string        `json:"mode"`
	Columns      int           `json:"columns,omitempty"`
	Cells        []DayCellDTO  `json:"cells,omitempty"`
	OwnTasks     []TaskDTO     `json:"ownTasks"`
	PeerTasks    []PeerTaskDTO `json:"peerTasks"`
	ScrollTarget *float64      `json:"scrollTarget,omitempty"`
}

// GetCalendar renders the month view for the current user. A mutation on the
// client is followed by a fresh call here; there is no incremental update
// path.
func (h *Handler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userId, err := user.CurrentId(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Not authenticated",
		})
		return
	}

	month, year, ok := monthYearFromQuery(w, r)
	if !ok {
		return
	}

	viewport := season.ViewportWide
	if r.URL.Query().Get("viewport") == string(season.ViewportNarrow) {
		viewport = season.ViewportNarrow
	}
	mode := ModeGrid
	if r.URL.Query().Get("mode") == string(ModeList) {
		mode = ModeList
	}

	visibleTasks, err := h.tasks.ListVisibleTasks(r.Context())
	if err != nil {
		log.Errorf("getCalendar failed: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	model := Render(month, year, viewport, mode, userId, visibleTasks, h.clock.Now(), h.geometry)

	if err := json.NewEncoder(w).Encode(viewModelToDTO(model)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// GetGuideEvents lists the guide prompts falling inside the requested month.
func (h *Handler) GetGuideEvents(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	month, year, ok := monthYearFromQuery(w, r)
	if !ok {
		return
	}

	type datedGuideEvent struct {
		Date string `json:"date"`
		GuideEventDTO
	}

	result := make([]datedGuideEvent, 0)
	for _, cell := range season.BuildGrid(month, year, season.ViewportNarrow) {
		for _, event := range season.LookupGuideEvents(cell.Date) {
			result = append(result, datedGuideEvent{
				Date:          cell.Date.Format(season.PickedDateLayout),
				GuideEventDTO: guideEventToDTO(event),
			})
		}
	}

	if err := json.NewEncoder(w).Encode(result); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func monthYearFromQuery(w http.ResponseWriter, r *http.Request) (time.Month, int, bool) {
	monthNumber, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || monthNumber < 1 || monthNumber > 12 {
		writeBadRequest(w, "Invalid month", "'month' must be a number between 1 and 12")
		return 0, 0, false
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 1 {
		writeBadRequest(w, "Invalid year", "'year' must be a positive number")
		return 0, 0, false
	}
	return time.Month(monthNumber), year, true
}

func writeBadRequest(w http.ResponseWriter, message, details string) {
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
		Error:   message,
		Details: details,
	})
}

func viewModelToDTO(model ViewModel) ViewModelDTO {
	dto := ViewModelDTO{
		Mode:         string(model.Mode),
		Columns:      model.Columns,
		OwnTasks:     tasksToDTO(model.OwnTasks),
		PeerTasks:    peerTasksToDTO(model.PeerTasks),
		ScrollTarget: model.ScrollTarget,
	}
	if model.Mode == ModeList {
		return dto
	}

	dto.Cells = make([]DayCellDTO, 0, len(model.Cells))
	for _, cell := range model.Cells {
		cellDTO := DayCellDTO{
			Empty:       cell.Empty,
			IsToday:     cell.IsToday,
			OwnTasks:    tasksToDTO(cell.OwnTasks),
			PeerTasks:   peerTasksToDTO(cell.PeerTasks),
			GuideEvents: guideEventsToDTO(cell.GuideEvents),
		}
		if !cell.Empty {
			cellDTO.Date = cell.Date.Format(season.PickedDateLayout)
		}
		dto.Cells = append(dto.Cells, cellDTO)
	}
	return dto
}

func tasksToDTO(tasks []task.Task) []TaskDTO {
	dtos := make([]TaskDTO, 0, len(tasks))
	for _, t := range tasks {
		dtos = append(dtos, taskToDTO(t))
	}
	return dtos
}

func peerTasksToDTO(peerTasks []PeerTask) []PeerTaskDTO {
	dtos := make([]PeerTaskDTO, 0, len(peerTasks))
	for _, pt := range peerTasks {
		dtos = append(dtos, PeerTaskDTO{TaskDTO: taskToDTO(pt.Task), Color: pt.Color})
	}
	return dtos
}

func guideEventsToDTO(events []season.GuideEvent) []GuideEventDTO {
	dtos := make([]GuideEventDTO, 0, len(events))
	for _, e := range events {
		dtos = append(dtos, guideEventToDTO(e))
	}
	return dtos
}

func guideEventToDTO(e season.GuideEvent) GuideEventDTO {
	return GuideEventDTO{
		MonthDay:    e.MonthDay,
		Title:       e.Title,
		Description: e.Description,
	}
}

func taskToDTO(t task.Task) TaskDTO {
	return TaskDTO{
		ID:          t.ID.String(),
		OwnerUid:    t.OwnerUid,
		Title:       t.Title,
		Description: t.Description,
		Date:        season.FromStorageDate(t.Date).Format(season.PickedDateLayout),
	}
}
