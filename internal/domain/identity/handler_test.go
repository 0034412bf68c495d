package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hospitalops/hospitalops/internal/platform/validate"
	"github.com/hospitalops/hospitalops/internal/platform/web"
)

func newTestServer(svc *Service) *echo.Echo {
	e := echo.New()
	e.Validator = validate.New()
	e.HTTPErrorHandler = web.HTTPErrorHandler(zerolog.Nop())
	NewHandler(svc).RegisterRoutes(e.Group("/api"), func(next echo.HandlerFunc) echo.HandlerFunc { return next })
	return e
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreatePatientHandler(t *testing.T) {
	e := newTestServer(NewService(newMockPatientRepo(), newMockDoctorRepo()))

	rec := doJSON(e, http.MethodPost, "/api/patients", `{"first_name":"Lina","last_name":"Mansouri"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(e, http.MethodPost, "/api/patients", `{"first_name":"Lina"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var body map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body["error"] != "first_name and last_name are required" {
		t.Errorf("error = %q", body["error"])
	}

	rec = doJSON(e, http.MethodPost, "/api/patients", `{"first_name":"Lina","last_name":"Mansouri","email":"not-an-email"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad email: status = %d, want 400", rec.Code)
	}
}

// limit=500 must be clamped to 100, absent limit uses the default page size.
func TestListPatientsLimitClamp(t *testing.T) {
	repo := newMockPatientRepo()
	svc := NewService(repo, newMockDoctorRepo())
	e := newTestServer(svc)

	for i := 0; i < 150; i++ {
		_, err := svc.CreatePatient(context.Background(), CreatePatientInput{
			FirstName: fmt.Sprintf("P%d", i), LastName: "Test",
		})
		if err != nil {
			t.Fatalf("CreatePatient() error = %v", err)
		}
	}

	tests := []struct {
		target  string
		wantLen int
		wantTot int
	}{
		{"/api/patients?limit=500", 100, 150},
		{"/api/patients", 20, 150},
		{"/api/patients?limit=0", 20, 150},
		{"/api/patients?limit=7", 7, 150},
	}
	for _, tt := range tests {
		rec := doJSON(e, http.MethodGet, tt.target, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status = %d, want 200", tt.target, rec.Code)
		}
		var resp struct {
			Data  []*Patient `json:"data"`
			Total int        `json:"total"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%s: unmarshal: %v", tt.target, err)
		}
		if len(resp.Data) != tt.wantLen || resp.Total != tt.wantTot {
			t.Errorf("%s: got %d items, total %d; want %d/%d", tt.target, len(resp.Data), resp.Total, tt.wantLen, tt.wantTot)
		}
	}
}

func TestCreateDoctorHandler(t *testing.T) {
	e := newTestServer(NewService(newMockPatientRepo(), newMockDoctorRepo()))

	rec := doJSON(e, http.MethodPost, "/api/doctors", `{"first_name":"Karim","last_name":"Haddad","specialty":"Cardiology"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body.String())
	}
	var d Doctor
	if err := json.Unmarshal(rec.Body.Bytes(), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if d.Specialty != "Cardiology" {
		t.Errorf("specialty = %q", d.Specialty)
	}

	rec = doJSON(e, http.MethodPost, "/api/doctors", `{"first_name":"Karim","last_name":"Haddad"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing specialty: status = %d, want 400", rec.Code)
	}
}
