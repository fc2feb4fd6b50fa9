package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/freightline/tms-backend/internal/core/service"
	"github.com/freightline/tms-backend/internal/infrastructure/memory"
	"github.com/freightline/tms-backend/internal/infrastructure/seed"
)

// newTestRouter wires the full stack — seeded stores, real services, real
// middleware — so these tests cover routing, identity resolution, guards,
// and error mapping end to end.
func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()

	users, err := seed.Users()
	if err != nil {
		t.Fatalf("seed users: %v", err)
	}
	userStore := memory.NewUserStore(users)

	shipmentStore := memory.NewShipmentStore()
	if err := seed.Shipments(context.Background(), shipmentStore); err != nil {
		t.Fatalf("seed shipments: %v", err)
	}

	authService := service.NewAuthService(userStore, "test-secret", 0, zerolog.Nop())
	shipmentService := service.NewShipmentService(shipmentStore, zerolog.Nop())

	return NewRouter(RouterConfig{Metrics: prometheus.NewRegistry()}, authService, shipmentService, zerolog.Nop())
}

func doJSON(t *testing.T, e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, e *echo.Echo, username, password string) string {
	t.Helper()
	rec := doJSON(t, e, http.MethodPost, "/auth/login", "",
		`{"username":"`+username+`","password":"`+password+`"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d: %s", username, rec.Code, rec.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("login %s: empty token", username)
	}
	return resp.Token
}

func TestRouter_Health(t *testing.T) {
	e := newTestRouter(t)
	rec := doJSON(t, e, http.MethodGet, "/health", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRouter_LoginAndPermissions(t *testing.T) {
	e := newTestRouter(t)

	rec := doJSON(t, e, http.MethodPost, "/auth/login", "",
		`{"username":"admin","password":"admin123"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Role        string `json:"role"`
		Permissions struct {
			AddShipment bool `json:"addShipment"`
		} `json:"permissions"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Role != "ADMIN" || !resp.Permissions.AddShipment {
		t.Fatalf("unexpected login payload: %s", rec.Body.String())
	}
}

func TestRouter_LoginInvalidCredentials(t *testing.T) {
	e := newTestRouter(t)
	rec := doJSON(t, e, http.MethodPost, "/auth/login", "",
		`{"username":"admin","password":"wrong"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_ListShipmentsDefaults(t *testing.T) {
	e := newTestRouter(t)
	rec := doJSON(t, e, http.MethodGet, "/v1/shipments", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Items      []json.RawMessage `json:"items"`
		TotalCount int               `json:"totalCount"`
		TotalPages int               `json:"totalPages"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.TotalCount != 30 || resp.TotalPages != 3 || len(resp.Items) != 10 {
		t.Fatalf("unexpected page: count=%d pages=%d items=%d", resp.TotalCount, resp.TotalPages, len(resp.Items))
	}
}

func TestRouter_ListShipmentsFlaggedFilter(t *testing.T) {
	e := newTestRouter(t)
	rec := doJSON(t, e, http.MethodGet, "/v1/shipments?is_flagged=true&page_size=30", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		TotalCount int `json:"totalCount"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.TotalCount != 6 {
		t.Fatalf("expected 6 flagged shipments, got %d", resp.TotalCount)
	}
}

func TestRouter_ListShipmentsBadBoolIs400(t *testing.T) {
	e := newTestRouter(t)
	rec := doJSON(t, e, http.MethodGet, "/v1/shipments?is_flagged=banana", "", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRouter_GetShipment(t *testing.T) {
	e := newTestRouter(t)

	rec := doJSON(t, e, http.MethodGet, "/v1/shipments/1", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, e, http.MethodGet, "/v1/shipments/999", "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_CreateShipmentGuards(t *testing.T) {
	e := newTestRouter(t)
	payload := `{
		"reference": "REF-9001",
		"shipperName": "Acme Corp",
		"carrierName": "FastTrack",
		"pickupLocation": {"city": "Dallas", "state": "TX", "country": "USA"},
		"deliveryLocation": {"city": "Atlanta", "state": "GA", "country": "USA"},
		"pickupDate": "2026-03-01",
		"deliveryDate": "2026-03-05",
		"status": "In Transit",
		"rate": 1500,
		"currency": "USD",
		"serviceLevel": "Express"
	}`

	rec := doJSON(t, e, http.MethodPost, "/v1/shipments", "", payload)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous create: expected 401, got %d", rec.Code)
	}

	employeeToken := login(t, e, "employee", "employee123")
	rec = doJSON(t, e, http.MethodPost, "/v1/shipments", employeeToken, payload)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("employee create: expected 403, got %d", rec.Code)
	}

	adminToken := login(t, e, "admin", "admin123")
	rec = doJSON(t, e, http.MethodPost, "/v1/shipments", adminToken, payload)
	if rec.Code != http.StatusCreated {
		t.Fatalf("admin create: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var created struct {
		ID        string `json:"id"`
		IsFlagged bool   `json:"isFlagged"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID != "31" || created.IsFlagged {
		t.Fatalf("unexpected created shipment: %+v", created)
	}
}

func TestRouter_CreateShipmentValidation(t *testing.T) {
	e := newTestRouter(t)
	adminToken := login(t, e, "admin", "admin123")

	rec := doJSON(t, e, http.MethodPost, "/v1/shipments", adminToken, `{"reference": ""}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on invalid payload, got %d", rec.Code)
	}
}

func TestRouter_UpdateShipmentPartialMerge(t *testing.T) {
	e := newTestRouter(t)
	employeeToken := login(t, e, "employee", "employee123")

	rec := doJSON(t, e, http.MethodPatch, "/v1/shipments/1", employeeToken, `{"status":"Delivered"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("employee update: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, e, http.MethodGet, "/v1/shipments/1", "", "")
	var got struct {
		Reference string `json:"reference"`
		Status    string `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Status != "Delivered" || got.Reference != "REF-1001" {
		t.Fatalf("partial merge broken: %+v", got)
	}

	rec = doJSON(t, e, http.MethodPatch, "/v1/shipments/999", employeeToken, `{"status":"Delivered"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("update missing: expected 404, got %d", rec.Code)
	}
}

func TestRouter_DeleteShipment(t *testing.T) {
	e := newTestRouter(t)
	adminToken := login(t, e, "admin", "admin123")
	employeeToken := login(t, e, "employee", "employee123")

	rec := doJSON(t, e, http.MethodDelete, "/v1/shipments/2", employeeToken, "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("employee delete: expected 403, got %d", rec.Code)
	}

	rec = doJSON(t, e, http.MethodDelete, "/v1/shipments/999", adminToken, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete missing: expected 200, got %d", rec.Code)
	}
	var resp deleteShipmentJSON
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Deleted {
		t.Fatalf("delete missing must report deleted=false")
	}

	rec = doJSON(t, e, http.MethodDelete, "/v1/shipments/2", adminToken, "")
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec.Code != http.StatusOK || !resp.Deleted {
		t.Fatalf("delete existing: code=%d deleted=%v", rec.Code, resp.Deleted)
	}

	rec = doJSON(t, e, http.MethodGet, "/v1/shipments/2", "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("deleted shipment still readable: %d", rec.Code)
	}
}

type deleteShipmentJSON struct {
	Deleted bool `json:"deleted"`
}

func TestRouter_ToggleFlag(t *testing.T) {
	e := newTestRouter(t)
	employeeToken := login(t, e, "employee", "employee123")

	// Seed id 5 is flagged; the first toggle clears it.
	rec := doJSON(t, e, http.MethodPost, "/v1/shipments/5/flag", employeeToken, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("toggle: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var got struct {
		IsFlagged bool `json:"isFlagged"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.IsFlagged {
		t.Fatalf("expected flag cleared on seed id 5")
	}

	rec = doJSON(t, e, http.MethodPost, "/v1/shipments/5/flag", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous toggle: expected 401, got %d", rec.Code)
	}
}

func TestRouter_MeAndRolePermissions(t *testing.T) {
	e := newTestRouter(t)

	rec := doJSON(t, e, http.MethodGet, "/me", "", "")
	if rec.Code != http.StatusOK || strings.TrimSpace(rec.Body.String()) != "null" {
		t.Fatalf("anonymous /me: expected null, got %d %q", rec.Code, rec.Body.String())
	}

	token := login(t, e, "employee", "employee123")
	rec = doJSON(t, e, http.MethodGet, "/me", token, "")
	var me struct {
		Username    string `json:"username"`
		Role        string `json:"role"`
		Permissions struct {
			DeleteShipment bool `json:"deleteShipment"`
			FlagShipment   bool `json:"flagShipment"`
		} `json:"permissions"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &me); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if me.Username != "employee" || me.Role != "EMPLOYEE" ||
		me.Permissions.DeleteShipment || !me.Permissions.FlagShipment {
		t.Fatalf("unexpected /me payload: %s", rec.Body.String())
	}

	rec = doJSON(t, e, http.MethodGet, "/v1/permissions/UNKNOWN", "", "")
	var perms map[string]bool
	if err := json.Unmarshal(rec.Body.Bytes(), &perms); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for name, granted := range perms {
		if granted {
			t.Fatalf("unknown role must have no capabilities, %s was true", name)
		}
	}
}

func TestRouter_MalformedTokenDegradesToAnonymous(t *testing.T) {
	e := newTestRouter(t)

	rec := doJSON(t, e, http.MethodPost, "/v1/shipments/1/flag", "not-a-real-token", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad token on gated route: expected 401, got %d", rec.Code)
	}
}
