package endpoints

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/safetynet/alerts/pkg/alerts"
	"github.com/safetynet/alerts/pkg/audit"
	"github.com/safetynet/alerts/pkg/config"
	"github.com/safetynet/alerts/pkg/model"
	"github.com/safetynet/alerts/pkg/records"
	"github.com/safetynet/alerts/pkg/server"
)

func newTestServer(t *testing.T, data model.Dataset) (*server.Server, *bytes.Buffer) {
	t.Helper()
	cfg := config.Default()
	cfg.AccessLog = false

	rs := records.New(data)
	engine := alerts.NewEngine(rs, alerts.WithClock(func() time.Time {
		return time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	}))
	auditLog := &bytes.Buffer{}
	srv := server.NewServer(cfg, server.NewStores(rs, engine), zap.NewNop(), audit.NewLogger(auditLog))
	RegisterAll(srv)
	return srv, auditLog
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func doeFamily() model.Dataset {
	return model.Dataset{
		Persons: []model.Resident{
			{FirstName: "John", LastName: "Doe", Address: "123 Main St", City: "Springfield", Phone: "555-0100", Email: "john@doe.com"},
			{FirstName: "Jane", LastName: "Doe", Address: "123 Main St", City: "Springfield", Phone: "555-0100", Email: "jane@doe.com"},
		},
		Firestations: []model.StationAssignment{{Address: "123 Main St", Station: "1"}},
		MedicalRecords: []model.MedicalRecord{
			{FirstName: "John", LastName: "Doe", Birthdate: "01/01/1980", Medications: []string{"aspirin:100mg"}, Allergies: []string{}},
			{FirstName: "Jane", LastName: "Doe", Birthdate: "06/15/2010", Medications: []string{}, Allergies: []string{"nuts"}},
		},
	}
}

func TestRoutes(t *testing.T) {
	srv, _ := newTestServer(t, doeFamily())
	h := srv.Handler()

	tests := []struct {
		method, target string
		wantCode       int
	}{
		{"GET", "/", http.StatusOK},
		{"GET", "/metrics", http.StatusOK},
		{"GET", "/communityEmail?city=springfield", http.StatusOK},
		{"GET", "/phoneAlert?firestation=1", http.StatusOK},
		{"GET", "/childAlert?address=123%20Main%20St", http.StatusOK},
		{"GET", "/firestation?stationNumber=1", http.StatusOK},
		{"GET", "/fire?address=123%20Main%20St", http.StatusOK},
		{"GET", "/flood/stations?stations=1,2", http.StatusOK},
		{"GET", "/personInfo?lastName=Doe", http.StatusOK},
		{"GET", "/persons", http.StatusOK},
		{"GET", "/firestations", http.StatusOK},
		{"GET", "/medicalRecords", http.StatusOK},
		{"GET", "/firestation", http.StatusBadRequest},
		{"PATCH", "/person", http.StatusMethodNotAllowed},
		{"GET", "/nope", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			w := do(t, h, tt.method, tt.target, "")
			assert.Equal(t, tt.wantCode, w.Code, w.Body.String())
		})
	}
}

func TestMetricsDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.AccessLog = false
	cfg.MetricsEnabled = false
	rs := records.New(model.Dataset{})
	srv := server.NewServer(cfg, server.NewStores(rs, alerts.NewEngine(rs)), nil, nil)
	RegisterAll(srv)

	w := do(t, srv.Handler(), "GET", "/metrics", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChildAlertScenario(t *testing.T) {
	srv, _ := newTestServer(t, doeFamily())

	w := do(t, srv.Handler(), "GET", "/childAlert?address=123%20main%20st", "")

	assert.JSONEq(t, `{
		"children": [{"firstName": "Jane", "lastName": "Doe", "age": 14}],
		"householdMembers": [{"firstName": "John", "lastName": "Doe", "age": 44}]
	}`, w.Body.String())
}

func TestFloodScenario(t *testing.T) {
	srv, _ := newTestServer(t, doeFamily())

	w := do(t, srv.Handler(), "GET", "/flood/stations?stations=1&stations=2", "")

	var body map[string][]ResidentHealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Len(t, body["123 Main St"], 2)
}

func TestMutationRoundTrip(t *testing.T) {
	srv, auditLog := newTestServer(t, doeFamily())
	h := srv.Handler()

	w := do(t, h, "POST", "/person", `{"firstName":"Zed","lastName":"Roe","address":"9 Elm St","city":"Springfield","email":"zed@roe.com"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, h, "GET", "/personInfo?lastName=roe", "")
	assert.JSONEq(t, `[{"firstName":"Zed","lastName":"Roe","address":"9 Elm St","email":"zed@roe.com","age":-1}]`, w.Body.String())

	w = do(t, h, "DELETE", "/person?firstName=zed&lastName=ROE", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, h, "GET", "/personInfo?lastName=Roe", "")
	assert.JSONEq(t, `[]`, w.Body.String())

	w = do(t, h, "DELETE", "/person?firstName=zed&lastName=ROE", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	lines := strings.Split(strings.TrimSpace(auditLog.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "person-add")
	assert.Contains(t, lines[1], "person-delete")
	assert.Contains(t, lines[2], `result="not-found"`)
	assert.Contains(t, lines[0], `request_id=`)
}

func TestStationCoverageScenario(t *testing.T) {
	srv, _ := newTestServer(t, doeFamily())

	w := do(t, srv.Handler(), "GET", "/firestation?stationNumber=1", "")

	var body StationCoverageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Persons, 2)
	assert.Equal(t, 2, body.AdultCount+body.ChildCount)
	assert.Equal(t, 1, body.ChildCount)
}
