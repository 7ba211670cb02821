package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"whites-admin-backend/internal/domain"
	"whites-admin-backend/internal/repository/csvstore"
	"whites-admin-backend/internal/security"
	"whites-admin-backend/internal/service"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	store, err := csvstore.NewStore(t.TempDir())
	require.NoError(t, err)

	creds, err := security.NewStaticCredentials("admin", "", "secret-pw")
	require.NoError(t, err)
	sessions := security.NewSessionManager("test-secret-test-secret-test-secret!", 24*time.Hour)

	h := NewHandlers(
		service.NewAuthService(creds, sessions),
		service.NewVehicleService(store.Vehicles, store.Maintenance),
		service.NewMachineService(store.Machines, store.Maintenance),
		service.NewMaintenanceService(store.Maintenance),
		service.NewEquipmentService(store.Equipment, store.Rentals),
		service.NewRentalService(store.Rentals, store.Equipment),
		store,
	)
	return h.Router()
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func loginAs(t *testing.T, router http.Handler) string {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/login", "",
		map[string]string{"username": "admin", "password": "secret-pw"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestLogin(t *testing.T) {
	router := newTestRouter(t)

	t.Run("correct credentials issue a token", func(t *testing.T) {
		loginAs(t, router)
	})

	t.Run("wrong password is 401", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/login", "",
			map[string]string{"username": "admin", "password": "wrong"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/vehicles", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/vehicles", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token := loginAs(t, router)
	rec = doJSON(t, router, http.MethodGet, "/api/vehicles", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogoutRevokesSession(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/logout", token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/vehicles", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVehicleCRUDOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router)

	vehicle := map[string]any{
		"whites_id":     "WH-100",
		"make":          "Ford",
		"model":         "Transit",
		"year":          2021,
		"weight":        3500.0,
		"license_plate": "AB12CDE",
		"vehicle_type":  "Van",
		"status":        "Off Hire",
		"mileage":       12000.0,
		"defects":       "",
		"notes":         "",
	}

	rec := doJSON(t, router, http.MethodPost, "/api/vehicles", token, vehicle)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	id := created["id"]
	require.NotEmpty(t, id)

	rec = doJSON(t, router, http.MethodGet, "/api/vehicles/"+id, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var fetched domain.Vehicle
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&fetched))
	assert.Equal(t, "WH-100", fetched.WhitesID)

	rec = doJSON(t, router, http.MethodPatch, "/api/vehicles/"+id+"/mileage", token,
		map[string]float64{"mileage": 12500})
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/api/vehicles/"+id, token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/vehicles/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestValidationFailureIs400WithReasons(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/vehicles", token,
		map[string]any{"make": "Ford"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Error   string   `json:"error"`
		Reasons []string `json:"reasons"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp.Reasons)
}

func TestExportEndpoints(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router)

	t.Run("csv", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/export/vehicles.csv", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Body.String(), "whites_id")
	})

	t.Run("unknown table", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/export/nonsense.csv", token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("zip bundle", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/export/bundle.zip", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/zip", rec.Header().Get("Content-Type"))
	})
}

func TestReportEndpoints(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router)

	rec := doJSON(t, router, http.MethodGet, "/api/reports/fleet-summary", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var summary struct {
		TotalVehicles   int     `json:"total_vehicles"`
		UtilizationRate float64 `json:"utilization_rate"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&summary))
	assert.Equal(t, 0, summary.TotalVehicles)
	assert.Equal(t, 0.0, summary.UtilizationRate)

	rec = doJSON(t, router, http.MethodGet, "/api/reports/monthly/nonsense", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
