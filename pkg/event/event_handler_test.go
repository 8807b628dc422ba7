package event

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eventsync/eventsync/internal/test_utils"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(service SchedulingService) *mux.Router {
	handler := NewEventHandler(service)
	router := mux.NewRouter()
	router.HandleFunc("/api/event", handler.SubmitEvent).Methods(http.MethodPost)
	router.HandleFunc("/api/event", handler.ListEvents).Methods(http.MethodGet)
	router.HandleFunc("/api/event/force", handler.ForceSubmitEvent).Methods(http.MethodPost)
	router.HandleFunc("/api/event/{eventId}", handler.GetEvent).Methods(http.MethodGet)
	router.HandleFunc("/api/event/{eventId}", handler.UpdateEvent).Methods(http.MethodPut)
	router.HandleFunc("/api/event/{eventId}", handler.DeleteEvent).Methods(http.MethodDelete)
	router.HandleFunc("/api/event/{eventId}/conflicts", handler.GetEventConflicts).Methods(http.MethodGet)
	return router
}

func doRequest(t *testing.T, router *mux.Router, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req = req.WithContext(test_utils.ContextWithUser(test_utils.StaffUser()))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func draftDTO() EventDTO {
	return EventDTO{
		Time:      "12:00-14:00",
		Function:  "Product Launch Lunch",
		Room:      "208",
		Capacity:  30,
		EventType: string(TypeLunchBuffet),
	}
}

func TestSubmitEventEndpoint(t *testing.T) {
	t.Run("free slot returns 201 with the committed event", func(t *testing.T) {
		router := newTestRouter(newTestService(NewStubRepository()))

		recorder := doRequest(t, router, http.MethodPost, "/api/event", draftDTO())

		require.Equal(t, http.StatusCreated, recorder.Code)
		var dto EventDTO
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&dto))
		assert.NotEmpty(t, dto.ID)
		assert.Equal(t, string(StatusScheduled), dto.Status)
		assert.Equal(t, "staff@example.com", dto.CreatedBy)
	})

	t.Run("occupied slot returns 409 with the conflicts", func(t *testing.T) {
		router := newTestRouter(newTestService(NewStubRepository()))

		first := doRequest(t, router, http.MethodPost, "/api/event", draftDTO())
		require.Equal(t, http.StatusCreated, first.Code)

		second := doRequest(t, router, http.MethodPost, "/api/event", draftDTO())
		require.Equal(t, http.StatusConflict, second.Code)

		var response ConflictResponse
		require.NoError(t, json.NewDecoder(second.Body).Decode(&response))
		assert.Equal(t, "208", response.Room)
		assert.Len(t, response.Conflicts, 1)
	})

	t.Run("unknown status value returns 400", func(t *testing.T) {
		router := newTestRouter(newTestService(NewStubRepository()))

		dto := draftDTO()
		dto.Status = "Pencilled In"
		recorder := doRequest(t, router, http.MethodPost, "/api/event", dto)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("missing fields return 400", func(t *testing.T) {
		router := newTestRouter(newTestService(NewStubRepository()))

		dto := draftDTO()
		dto.Function = ""
		recorder := doRequest(t, router, http.MethodPost, "/api/event", dto)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestForceSubmitEventEndpoint(t *testing.T) {
	repo := NewStubRepository()
	router := newTestRouter(newTestService(repo))

	first := doRequest(t, router, http.MethodPost, "/api/event", draftDTO())
	require.Equal(t, http.StatusCreated, first.Code)

	forced := doRequest(t, router, http.MethodPost, "/api/event/force", draftDTO())
	require.Equal(t, http.StatusCreated, forced.Code)
	assert.Len(t, repo.Events, 2)
}

func TestGetEventEndpoint(t *testing.T) {
	router := newTestRouter(newTestService(NewStubRepository()))

	created := doRequest(t, router, http.MethodPost, "/api/event", draftDTO())
	require.Equal(t, http.StatusCreated, created.Code)
	var dto EventDTO
	require.NoError(t, json.NewDecoder(created.Body).Decode(&dto))

	found := doRequest(t, router, http.MethodGet, "/api/event/"+dto.ID, nil)
	assert.Equal(t, http.StatusOK, found.Code)

	missing := doRequest(t, router, http.MethodGet, "/api/event/nope", nil)
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestUpdateEventEndpoint(t *testing.T) {
	t.Run("conflict-free update returns the stored event", func(t *testing.T) {
		router := newTestRouter(newTestService(NewStubRepository()))

		created := doRequest(t, router, http.MethodPost, "/api/event", draftDTO())
		require.Equal(t, http.StatusCreated, created.Code)
		var dto EventDTO
		require.NoError(t, json.NewDecoder(created.Body).Decode(&dto))

		dto.Time = "15:00-17:00"
		updated := doRequest(t, router, http.MethodPut, "/api/event/"+dto.ID, dto)

		require.Equal(t, http.StatusOK, updated.Code)
		var result EventDTO
		require.NoError(t, json.NewDecoder(updated.Body).Decode(&result))
		assert.Equal(t, "15:00-17:00", result.Time)
		assert.Equal(t, dto.ID, result.ID)
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		router := newTestRouter(newTestService(NewStubRepository()))

		recorder := doRequest(t, router, http.MethodPut, "/api/event/missing", draftDTO())
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestDeleteEventEndpoint(t *testing.T) {
	repo := NewStubRepository()
	router := newTestRouter(newTestService(repo))

	created := doRequest(t, router, http.MethodPost, "/api/event", draftDTO())
	require.Equal(t, http.StatusCreated, created.Code)
	var dto EventDTO
	require.NoError(t, json.NewDecoder(created.Body).Decode(&dto))

	deleted := doRequest(t, router, http.MethodDelete, "/api/event/"+dto.ID, nil)
	assert.Equal(t, http.StatusNoContent, deleted.Code)
	assert.Empty(t, repo.Events)
}

func TestListEventsEndpoint(t *testing.T) {
	router := newTestRouter(newTestService(NewStubRepository()))

	lunch := draftDTO()
	require.Equal(t, http.StatusCreated, doRequest(t, router, http.MethodPost, "/api/event", lunch).Code)

	meeting := EventDTO{
		Time:      "09:00-10:00",
		Function:  "Quarterly Review",
		Room:      "216",
		EventType: string(TypeMeeting),
		Status:    string(StatusCompleted),
	}
	require.Equal(t, http.StatusCreated, doRequest(t, router, http.MethodPost, "/api/event", meeting).Code)

	t.Run("without filters returns everything", func(t *testing.T) {
		recorder := doRequest(t, router, http.MethodGet, "/api/event", nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		var dtos []EventDTO
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&dtos))
		assert.Len(t, dtos, 2)
	})

	t.Run("status filter narrows the list", func(t *testing.T) {
		recorder := doRequest(t, router, http.MethodGet, "/api/event?status=Completed", nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		var dtos []EventDTO
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&dtos))
		require.Len(t, dtos, 1)
		assert.Equal(t, "Quarterly Review", dtos[0].Function)
	})

	t.Run("unknown filter value returns 400", func(t *testing.T) {
		recorder := doRequest(t, router, http.MethodGet, "/api/event?status=Tentative", nil)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestGetEventConflictsEndpoint(t *testing.T) {
	repo := NewStubRepository()
	router := newTestRouter(newTestService(repo))

	created := doRequest(t, router, http.MethodPost, "/api/event", draftDTO())
	require.Equal(t, http.StatusCreated, created.Code)
	var dto EventDTO
	require.NoError(t, json.NewDecoder(created.Body).Decode(&dto))

	forced := doRequest(t, router, http.MethodPost, "/api/event/force", draftDTO())
	require.Equal(t, http.StatusCreated, forced.Code)

	recorder := doRequest(t, router, http.MethodGet, "/api/event/"+dto.ID+"/conflicts", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var conflicts []EventDTO
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&conflicts))
	assert.Len(t, conflicts, 1)
}
