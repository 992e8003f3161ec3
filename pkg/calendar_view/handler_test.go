package calendar_view

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/koinonia/koinonia/internal/event_bus"
	"github.com/koinonia/koinonia/internal/utils"
	"github.com/koinonia/koinonia/pkg/connection"
	"github.com/koinonia/koinonia/pkg/task"
	"github.com/koinonia/koinonia/pkg/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contextWithUser(uid string) context.Context {
	return user.WithUser(context.Background(), user.User{Uid: uid, Username: uid})
}

func setupHandlerTest(t *testing.T, now time.Time) (*Handler, task.Service) {
	t.Helper()

	clock := &utils.MockClock{FixedNow: now}
	directory := connection.NewService(&connection.StubRepository{})
	taskService := task.NewService(&task.StubRepository{}, directory, event_bus.NewBus())
	handler := NewHandler(taskService, clock, Geometry{CellHeight: 120, RowMargin: 8})
	return handler, taskService
}

func TestGetCalendar(t *testing.T) {
	now := time.Date(2025, time.March, 10, 15, 0, 0, 0, time.UTC)

	t.Run("requires authentication", func(t *testing.T) {
		handler, _ := setupHandlerTest(t, now)
		req := httptest.NewRequest(http.MethodGet, "/api/season/calendar?month=3&year=2025", nil)
		w := httptest.NewRecorder()

		handler.GetCalendar(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects invalid month", func(t *testing.T) {
		handler, _ := setupHandlerTest(t, now)
		req := httptest.NewRequest(http.MethodGet, "/api/season/calendar?month=13&year=2025", nil)
		w := httptest.NewRecorder()

		handler.GetCalendar(w, req.WithContext(contextWithUser("me")))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("renders the month with own tasks placed", func(t *testing.T) {
		handler, taskService := setupHandlerTest(t, now)
		ctx := contextWithUser("me")

		_, err := taskService.CreateTask(ctx, task.Draft{
			Title:       "Fast from sweets",
			Description: "No dessert",
			Date:        "2025-03-10",
		})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/season/calendar?month=3&year=2025", nil)
		w := httptest.NewRecorder()
		handler.GetCalendar(w, req.WithContext(ctx))

		require.Equal(t, http.StatusOK, w.Code)
		var dto ViewModelDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&dto))

		assert.Equal(t, string(ModeGrid), dto.Mode)
		assert.Equal(t, 7, dto.Columns)
		require.NotNil(t, dto.ScrollTarget)

		var march10 *DayCellDTO
		for i := range dto.Cells {
			if dto.Cells[i].Date == "2025-03-10" {
				march10 = &dto.Cells[i]
			}
		}
		require.NotNil(t, march10)
		assert.True(t, march10.IsToday)
		require.Len(t, march10.OwnTasks, 1)
		assert.Equal(t, "2025-03-10", march10.OwnTasks[0].Date)
		assert.Empty(t, march10.PeerTasks)
	})

	t.Run("list mode omits cells", func(t *testing.T) {
		handler, _ := setupHandlerTest(t, now)
		req := httptest.NewRequest(http.MethodGet, "/api/season/calendar?month=3&year=2025&mode=list", nil)
		w := httptest.NewRecorder()

		handler.GetCalendar(w, req.WithContext(contextWithUser("me")))

		require.Equal(t, http.StatusOK, w.Code)
		var dto ViewModelDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&dto))
		assert.Equal(t, string(ModeList), dto.Mode)
		assert.Empty(t, dto.Cells)
		assert.Nil(t, dto.ScrollTarget)
	})
}

func TestGetGuideEvents(t *testing.T) {
	now := time.Date(2025, time.March, 10, 15, 0, 0, 0, time.UTC)
	handler, _ := setupHandlerTest(t, now)

	req := httptest.NewRequest(http.MethodGet, "/api/season/guide?month=3&year=2025", nil)
	w := httptest.NewRecorder()
	handler.GetGuideEvents(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var entries []struct {
		Date  string `json:"date"`
		Title string `json:"title"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&entries))
	require.NotEmpty(t, entries)
	assert.Equal(t, "2025-03-05", entries[0].Date)
	assert.Equal(t, "Ash Wednesday", entries[0].Title)
}

func TestExportICS(t *testing.T) {
	now := time.Date(2025, time.March, 10, 15, 0, 0, 0, time.UTC)

	t.Run("requires authentication", func(t *testing.T) {
		handler, _ := setupHandlerTest(t, now)
		req := httptest.NewRequest(http.MethodGet, "/api/season/export.ics", nil)
		w := httptest.NewRecorder()

		handler.ExportICS(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("exports own tasks as all-day events", func(t *testing.T) {
		handler, taskService := setupHandlerTest(t, now)
		ctx := contextWithUser("me")

		_, err := taskService.CreateTask(ctx, task.Draft{
			Title:       "Fast from sweets",
			Description: "No dessert",
			Date:        "2025-03-10",
		})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/season/export.ics", nil)
		w := httptest.NewRecorder()
		handler.ExportICS(w, req.WithContext(ctx))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/calendar")

		body := w.Body.String()
		assert.True(t, strings.HasPrefix(body, "BEGIN:VCALENDAR"))
		assert.Contains(t, body, "SUMMARY:Fast from sweets")
		assert.Contains(t, body, "DTSTART;VALUE=DATE:20250310")
	})
}
