package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberbook/reservation-api/internal/audit"
	domain "github.com/barberbook/reservation-api/internal/domain/reservation"
	"github.com/barberbook/reservation-api/internal/handlers"
	"github.com/barberbook/reservation-api/internal/httperr"
	"github.com/barberbook/reservation-api/internal/models"
	"github.com/barberbook/reservation-api/internal/notification"
	ucReservation "github.com/barberbook/reservation-api/internal/usecase/reservation"
)

// ======================================================
// FAKES + ROUTER
// ======================================================

type memRepo struct {
	mu           sync.Mutex
	reservations map[string]models.Reservation
}

func (m *memRepo) Create(ctx context.Context, r *models.Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reservations[r.ID] = *r
	return nil
}

func (m *memRepo) FindByID(ctx context.Context, id string) (*models.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.reservations[id]
	if !ok {
		return nil, httperr.NotFoundErr("reservation", id)
	}
	return &r, nil
}

func (m *memRepo) FindAll(ctx context.Context, filter domain.ListFilter) ([]models.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []models.Reservation{}
	for _, r := range m.reservations {
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		if filter.Date != "" && r.AppointmentDate != filter.Date {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AppointmentDate != out[j].AppointmentDate {
			return out[i].AppointmentDate > out[j].AppointmentDate
		}
		return out[i].AppointmentTime > out[j].AppointmentTime
	})
	return out, nil
}

func (m *memRepo) Update(ctx context.Context, r *models.Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reservations[r.ID] = *r
	return nil
}

func (m *memRepo) ListBookedTimes(ctx context.Context, barberID, date string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var times []string
	for _, r := range m.reservations {
		if r.BarberID == barberID && r.AppointmentDate == date &&
			domain.BlocksSlot(domain.Status(r.Status)) {
			times = append(times, r.AppointmentTime)
		}
	}
	sort.Strings(times)
	return times, nil
}

var _ domain.Repository = (*memRepo)(nil)

type noopNotifier struct{}

func (noopNotifier) Send(ctx context.Context, msg notification.Message) (notification.Result, error) {
	return notification.Result{MessageID: "noop"}, nil
}

type noopSink struct{}

func (noopSink) Log(action, entity, entityID string, metadata any) error { return nil }

func setupRouter(t *testing.T) (*gin.Engine, *memRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := &memRepo{reservations: make(map[string]models.Reservation)}

	notifierDispatcher := notification.NewDispatcher(map[string]notification.Notifier{
		notification.ChannelEmail: noopNotifier{},
	})
	auditDispatcher := audit.NewDispatcher(noopSink{})
	t.Cleanup(func() {
		notifierDispatcher.Close()
		auditDispatcher.Close()
	})

	reservationHandler := handlers.NewReservationHandler(
		ucReservation.NewCreateReservation(repo, notifierDispatcher, auditDispatcher),
		ucReservation.NewCancelReservation(repo, notifierDispatcher, auditDispatcher),
		ucReservation.NewUpdateReservation(repo, auditDispatcher),
		ucReservation.NewGetReservation(repo),
		ucReservation.NewListReservations(repo),
	)
	availabilityHandler := handlers.NewAvailabilityHandler(
		ucReservation.NewGetAvailability(repo),
	)
	barberHandler := handlers.NewBarberHandler()

	r := gin.New()
	api := r.Group("/api")
	{
		api.POST("/reservations", reservationHandler.Create)
		api.GET("/reservations", reservationHandler.List)
		api.GET("/reservations/:id", reservationHandler.Get)
		api.PUT("/reservations/:id", reservationHandler.Update)
		api.DELETE("/reservations/:id", reservationHandler.Cancel)
		api.GET("/available-slots", availabilityHandler.Get)
		api.GET("/barbers", barberHandler.List)
	}
	return r, repo
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	return w, parsed
}

func validRequestBody() map[string]any {
	return map[string]any{
		"customerName":    "John Doe",
		"customerEmail":   "john@example.com",
		"customerPhone":   "+1234567890",
		"barberId":        "1",
		"serviceType":     "haircut",
		"appointmentDate": "2025-12-25",
		"appointmentTime": "10:00:00",
	}
}

func createReservation(t *testing.T, r *gin.Engine) map[string]any {
	t.Helper()
	w, resp := doJSON(t, r, http.MethodPost, "/api/reservations", validRequestBody())
	require.Equal(t, http.StatusCreated, w.Code)
	return resp["data"].(map[string]any)
}

// ======================================================
// RESERVATIONS
// ======================================================

func TestCreateReservationEndpoint(t *testing.T) {
	t.Run("valid booking returns 201 pending", func(t *testing.T) {
		r, _ := setupRouter(t)

		w, resp := doJSON(t, r, http.MethodPost, "/api/reservations", validRequestBody())

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, true, resp["success"])

		data := resp["data"].(map[string]any)
		assert.Equal(t, "pending", data["status"])
		assert.Equal(t, 25.0, data["price"])
		assert.NotEmpty(t, data["id"])
	})

	t.Run("invalid email returns 400 with field errors", func(t *testing.T) {
		r, _ := setupRouter(t)

		body := validRequestBody()
		body["customerEmail"] = "invalid-email"
		w, resp := doJSON(t, r, http.MethodPost, "/api/reservations", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, false, resp["success"])

		errs := resp["errors"].([]any)
		require.Len(t, errs, 1)
		assert.Equal(t, "customerEmail", errs[0].(map[string]any)["field"])
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		r, _ := setupRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewBufferString("{not json"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetReservationEndpoint(t *testing.T) {
	r, _ := setupRouter(t)
	created := createReservation(t, r)

	t.Run("known id", func(t *testing.T) {
		w, resp := doJSON(t, r, http.MethodGet, "/api/reservations/"+created["id"].(string), nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, created["id"], resp["data"].(map[string]any)["id"])
	})

	t.Run("unknown id", func(t *testing.T) {
		w, resp := doJSON(t, r, http.MethodGet, "/api/reservations/nope", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, false, resp["success"])
	})
}

func TestListReservationsEndpoint(t *testing.T) {
	r, _ := setupRouter(t)
	created := createReservation(t, r)

	other := validRequestBody()
	other["appointmentTime"] = "11:00:00"
	w, _ := doJSON(t, r, http.MethodPost, "/api/reservations", other)
	require.Equal(t, http.StatusCreated, w.Code)

	status := "confirmed"
	w, _ = doJSON(t, r, http.MethodPut, "/api/reservations/"+created["id"].(string), map[string]any{"status": status})
	require.Equal(t, http.StatusOK, w.Code)

	t.Run("unfiltered list with count", func(t *testing.T) {
		w, resp := doJSON(t, r, http.MethodGet, "/api/reservations", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		data := resp["data"].(map[string]any)
		assert.Equal(t, 2.0, data["count"])
		assert.Len(t, data["reservations"].([]any), 2)
	})

	t.Run("status filter returns only matches", func(t *testing.T) {
		w, resp := doJSON(t, r, http.MethodGet, "/api/reservations?status=confirmed", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		data := resp["data"].(map[string]any)
		list := data["reservations"].([]any)
		require.Len(t, list, 1)
		assert.Equal(t, "confirmed", list[0].(map[string]any)["status"])
	})
}

func TestUpdateReservationEndpoint(t *testing.T) {
	r, _ := setupRouter(t)
	created := createReservation(t, r)

	t.Run("service change re-derives price", func(t *testing.T) {
		w, resp := doJSON(t, r, http.MethodPut, "/api/reservations/"+created["id"].(string),
			map[string]any{"serviceType": "full-service"})

		assert.Equal(t, http.StatusOK, w.Code)
		data := resp["data"].(map[string]any)
		assert.Equal(t, 45.0, data["price"])
		assert.Equal(t, 60.0, data["duration"])
	})

	t.Run("unknown id", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodPut, "/api/reservations/nope", map[string]any{"notes": "x"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCancelReservationEndpoint(t *testing.T) {
	r, _ := setupRouter(t)
	created := createReservation(t, r)

	t.Run("cancel sets status", func(t *testing.T) {
		w, resp := doJSON(t, r, http.MethodDelete, "/api/reservations/"+created["id"].(string), nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, resp["success"])
		assert.Equal(t, "cancelled", resp["data"].(map[string]any)["status"])
	})

	t.Run("unknown id", func(t *testing.T) {
		w, resp := doJSON(t, r, http.MethodDelete, "/api/reservations/nope", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, false, resp["success"])
	})
}

// ======================================================
// AVAILABILITY + BARBERS
// ======================================================

func TestAvailableSlotsEndpoint(t *testing.T) {
	t.Run("missing params return 400", func(t *testing.T) {
		r, _ := setupRouter(t)

		w, resp := doJSON(t, r, http.MethodGet, "/api/available-slots?barberId=1", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, false, resp["success"])

		w, _ = doJSON(t, r, http.MethodGet, "/api/available-slots?date=2025-12-25", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w, _ = doJSON(t, r, http.MethodGet, "/api/available-slots", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("free day returns the full grid", func(t *testing.T) {
		r, _ := setupRouter(t)

		w, resp := doJSON(t, r, http.MethodGet, "/api/available-slots?barberId=1&date=2025-12-25", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		data := resp["data"].(map[string]any)
		assert.Equal(t, "2025-12-25", data["date"])
		assert.Equal(t, "1", data["barberId"])

		slots := data["availableSlots"].([]any)
		assert.Len(t, slots, 18)
		assert.Equal(t, "09:00:00", slots[0])
		assert.Equal(t, "17:30:00", slots[17])
	})

	t.Run("booked slot disappears", func(t *testing.T) {
		r, _ := setupRouter(t)
		createReservation(t, r)

		w, resp := doJSON(t, r, http.MethodGet, "/api/available-slots?barberId=1&date=2025-12-25", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		slots := resp["data"].(map[string]any)["availableSlots"].([]any)
		assert.Len(t, slots, 17)
		assert.NotContains(t, slots, "10:00:00")
	})
}

func TestBarbersEndpoint(t *testing.T) {
	r, _ := setupRouter(t)

	w, resp := doJSON(t, r, http.MethodGet, "/api/barbers", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["success"])

	list := resp["data"].([]any)
	require.NotEmpty(t, list)

	first := list[0].(map[string]any)
	assert.NotEmpty(t, first["id"])
	assert.NotEmpty(t, first["name"])
	assert.NotEmpty(t, first["specialties"])
	assert.NotNil(t, first["rating"])
}
