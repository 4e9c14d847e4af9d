package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/stretchr/testify/assert"

	"github.com/safetynet/alerts/pkg/model"
)

// StepsContext holds state shared between step definitions
type StepsContext struct {
	data         model.Dataset
	today        time.Time
	instance     *ServerInstance
	response     *http.Response
	responseBody []byte
}

// NewStepsContext creates a new steps context
func NewStepsContext() *StepsContext {
	return &StepsContext{today: time.Now()}
}

// RegisterSteps registers all step definitions
func (s *StepsContext) RegisterSteps(sc *godog.ScenarioContext) {
	sc.After(func(ctx context.Context, _ *godog.Scenario, err error) (context.Context, error) {
		if s.instance != nil {
			s.instance.Stop()
		}
		return ctx, err
	})

	// Fixture steps
	sc.Step(`^today is "([^"]*)"$`, s.todayIs)
	sc.Step(`^the following persons:$`, s.theFollowingPersons)
	sc.Step(`^the following fire stations:$`, s.theFollowingFireStations)
	sc.Step(`^the following medical records:$`, s.theFollowingMedicalRecords)
	sc.Step(`^the SafetyNet server is running$`, s.theServerIsRunning)

	// Request steps
	sc.Step(`^I send a (GET|DELETE) request to "([^"]*)"$`, s.iSendARequestTo)
	sc.Step(`^I send a (POST|PUT) request to "([^"]*)" with body:$`, s.iSendARequestWithBody)

	// Response steps
	sc.Step(`^the response status should be (\d+)$`, s.theResponseStatusShouldBe)
	sc.Step(`^the response should match json:$`, s.theResponseShouldMatchJSON)
	sc.Step(`^the response message should be "([^"]*)"$`, s.theResponseMessageShouldBe)
	sc.Step(`^the response error should contain "([^"]*)"$`, s.theResponseErrorShouldContain)

	// Audit steps
	sc.Step(`^the audit log should contain "([^"]*)"$`, s.theAuditLogShouldContain)
}

// Fixture steps

func (s *StepsContext) todayIs(date string) error {
	today, err := time.Parse("2006-01-02", date)
	if err != nil {
		return err
	}
	s.today = today
	return nil
}

func (s *StepsContext) theFollowingPersons(table *godog.Table) error {
	rows, err := tableRows(table)
	if err != nil {
		return err
	}
	for _, row := range rows {
		s.data.Persons = append(s.data.Persons, model.Resident{
			FirstName: row["firstName"],
			LastName:  row["lastName"],
			Address:   row["address"],
			City:      row["city"],
			Zip:       row["zip"],
			Phone:     row["phone"],
			Email:     row["email"],
		})
	}
	return nil
}

func (s *StepsContext) theFollowingFireStations(table *godog.Table) error {
	rows, err := tableRows(table)
	if err != nil {
		return err
	}
	for _, row := range rows {
		s.data.Firestations = append(s.data.Firestations, model.StationAssignment{
			Address: row["address"],
			Station: row["station"],
		})
	}
	return nil
}

func (s *StepsContext) theFollowingMedicalRecords(table *godog.Table) error {
	rows, err := tableRows(table)
	if err != nil {
		return err
	}
	for _, row := range rows {
		s.data.MedicalRecords = append(s.data.MedicalRecords, model.MedicalRecord{
			FirstName:   row["firstName"],
			LastName:    row["lastName"],
			Birthdate:   row["birthdate"],
			Medications: splitCell(row["medications"]),
			Allergies:   splitCell(row["allergies"]),
		})
	}
	return nil
}

func (s *StepsContext) theServerIsRunning() error {
	instance, err := StartServer(s.data, s.today)
	if err != nil {
		return err
	}
	s.instance = instance
	return nil
}

// Request steps

func (s *StepsContext) iSendARequestTo(method, path string) error {
	return s.do(method, path, "")
}

func (s *StepsContext) iSendARequestWithBody(method, path string, body *godog.DocString) error {
	return s.do(method, path, body.Content)
}

func (s *StepsContext) do(method, path, body string) error {
	if s.instance == nil {
		return fmt.Errorf("the server is not running")
	}

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, s.instance.ServerURL+path, reader)
	if err != nil {
		return err
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	s.response = resp
	s.responseBody, err = io.ReadAll(resp.Body)
	return err
}

// Response steps

func (s *StepsContext) theResponseStatusShouldBe(code int) error {
	if s.response == nil {
		return fmt.Errorf("no response received")
	}
	if s.response.StatusCode != code {
		return fmt.Errorf("expected status %d, got %d: %s", code, s.response.StatusCode, string(s.responseBody))
	}
	return nil
}

func (s *StepsContext) theResponseShouldMatchJSON(expected *godog.DocString) error {
	var t asserter
	assert.JSONEq(&t, expected.Content, string(s.responseBody))
	return t.err
}

func (s *StepsContext) theResponseMessageShouldBe(message string) error {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(s.responseBody, &body); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	if body.Message != message {
		return fmt.Errorf("expected message %q, got %q", message, body.Message)
	}
	return nil
}

func (s *StepsContext) theResponseErrorShouldContain(text string) error {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(s.responseBody, &body); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	if !strings.Contains(body.Error, text) {
		return fmt.Errorf("expected error containing %q, got %q", text, body.Error)
	}
	return nil
}

// Audit steps

func (s *StepsContext) theAuditLogShouldContain(text string) error {
	if !strings.Contains(s.instance.Audit.String(), text) {
		return fmt.Errorf("audit log does not contain %q:\n%s", text, s.instance.Audit.String())
	}
	return nil
}

// asserter collects the failure of a testify assertion so it can be
// returned from a step.
type asserter struct {
	err error
}

func (a *asserter) Errorf(format string, args ...interface{}) {
	a.err = fmt.Errorf(format, args...)
}

// tableRows maps every data row of table to its header names.
func tableRows(table *godog.Table) ([]map[string]string, error) {
	if len(table.Rows) == 0 {
		return nil, fmt.Errorf("table has no header row")
	}
	header := table.Rows[0].Cells

	rows := make([]map[string]string, 0, len(table.Rows)-1)
	for _, r := range table.Rows[1:] {
		if len(r.Cells) != len(header) {
			return nil, fmt.Errorf("row has %d cells, header has %d", len(r.Cells), len(header))
		}
		row := make(map[string]string, len(header))
		for i, cell := range r.Cells {
			row[header[i].Value] = cell.Value
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// splitCell turns a comma separated cell into a list. An empty cell is an
// empty list.
func splitCell(cell string) []string {
	out := []string{}
	for _, item := range strings.Split(cell, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
