package task

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/koinonia/koinonia/internal/event_bus"
	"github.com/koinonia/koinonia/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHandlerTest(now time.Time) (*Handler, *StubRepository) {
	repo := &StubRepository{}
	service := &ServiceImpl{
		repo:      repo,
		directory: &stubDirectory{},
		clock:     &utils.MockClock{FixedNow: now},
		bus:       event_bus.NewBus(),
	}
	return NewHandler(service), repo
}

func postTask(handler *Handler, ctx context.Context, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/api/task", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.CreateTask(w, req.WithContext(ctx))
	return w
}

func TestHandler_CreateTask(t *testing.T) {
	now := time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)

	t.Run("creates and returns the picked date", func(t *testing.T) {
		handler, repo := setupHandlerTest(now)

		w := postTask(handler, contextWithUser("me"), DraftDTO{
			Title:       "Fast from sweets",
			Description: "No dessert",
			Date:        "2025-03-10",
		})

		require.Equal(t, http.StatusCreated, w.Code)
		var dto TaskDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&dto))
		// Wire format carries the picked day, not the shifted storage instant.
		assert.Equal(t, "2025-03-10", dto.Date)
		assert.Equal(t, "me", dto.OwnerUid)
		require.Len(t, repo.Tasks, 1)
		assert.Equal(t, time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC), repo.Tasks[0].Date)
	})

	t.Run("missing fields are a 400", func(t *testing.T) {
		handler, repo := setupHandlerTest(now)

		w := postTask(handler, contextWithUser("me"), DraftDTO{Title: "t"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, repo.Tasks)
	})

	t.Run("unparseable date is a 400", func(t *testing.T) {
		handler, repo := setupHandlerTest(now)

		w := postTask(handler, contextWithUser("me"), DraftDTO{
			Title: "t", Description: "d", Date: "10/03/2025",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, repo.Tasks)
	})

	t.Run("missing identity is a 401", func(t *testing.T) {
		handler, _ := setupHandlerTest(now)

		w := postTask(handler, context.Background(), DraftDTO{
			Title: "t", Description: "d", Date: "2025-03-10",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHandler_DeleteTask(t *testing.T) {
	now := time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)
	handler, repo := setupHandlerTest(now)

	created := postTask(handler, contextWithUser("me"), DraftDTO{
		Title: "t", Description: "d", Date: "2025-03-10",
	})
	require.Equal(t, http.StatusCreated, created.Code)
	taskId := repo.Tasks[0].ID

	t.Run("invalid uuid is a 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/task/nope", nil)
		req = req.WithContext(contextWithUser("me"))
		req = mux.SetURLVars(req, map[string]string{"taskId": "nope"})
		w := httptest.NewRecorder()

		handler.DeleteTask(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("non-owner gets a 403", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/task/"+taskId.String(), nil)
		req = req.WithContext(contextWithUser("someone-else"))
		req = mux.SetURLVars(req, map[string]string{"taskId": taskId.String()})
		w := httptest.NewRecorder()

		handler.DeleteTask(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Len(t, repo.Tasks, 1)
	})

	t.Run("owner deletes with a 204", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/task/"+taskId.String(), nil)
		req = req.WithContext(contextWithUser("me"))
		req = mux.SetURLVars(req, map[string]string{"taskId": taskId.String()})
		w := httptest.NewRecorder()

		handler.DeleteTask(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, repo.Tasks)
	})
}
