package calendar_view

import (
	"encoding/json"
	"net/http"

	ical "github.com/arran4/golang-ical"
	"github.com/koinonia/koinonia/internal/rest"
	"github.com/koinonia/koinonia/pkg/season"
	"github.com/koinonia/koinonia/pkg/task"
	"github.com/koinonia/koinonia/pkg/user"
	log "github.com/sirupsen/logrus"
)

// ExportICS serves the current user's own commitments as an iCalendar feed of
// all-day events, so the season can be subscribed to from any calendar app.
// Peer tasks are read-only context on the grid and are not exported.
func (h *Handler) ExportICS(w http.ResponseWriter, r *http.Request) {
	userId, err := user.CurrentId(r.Context())
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Not authenticated",
		})
		return
	}

	visibleTasks, err := h.tasks.ListVisibleTasks(r.Context())
	if err != nil {
		log.Errorf("exportICS failed: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	aggregation := task.Aggregate(userId, visibleTasks)

	calendar := ical.NewCalendar()
	calendar.SetMethod(ical.MethodPublish)
	calendar.SetProductId("-//Koinonia//Season Calendar//EN")

	for _, t := range aggregation.OwnTasks {
		day := season.FromStorageDate(t.Date)

		event := calendar.AddEvent(t.ID.String())
		event.SetCreatedTime(t.CreatedAt)
		event.SetDtStampTime(t.CreatedAt)
		event.SetAllDayStartAt(day)
		event.SetAllDayEndAt(day.AddDate(0, 0, 1))
		event.SetSummary(t.Title)
		event.SetDescription(t.Description)
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="season.ics"`)
	if _, err := w.Write([]byte(calendar.Serialize())); err != nil {
		log.Errorf("failed to write ics response: %v", err)
	}
}
