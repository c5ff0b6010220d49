package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/nconklindev/connex/internal/importer"
	"github.com/nconklindev/connex/internal/types"

	tea "github.com/charmbracelet/bubbletea"
)

func newModel(t *testing.T) Model {
	t.Helper()
	return InitialModel(Options{StartDir: t.TempDir()})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// startParse puts m in the processing state as if a file had been picked.
func startParse(m Model, path string) (Model, parsedMsg) {
	m.selectedFile = path
	m.state = stateProcessing
	return m, parsedMsg{attempt: m.store.Begin()}
}

func sampleResult() *types.ParseResult {
	return &types.ParseResult{
		Success:   true,
		TotalRows: 3,
		ValidConnections: []types.Connection{
			{FirstName: "Jane", LastName: "Doe", Company: "Acme"},
			{FirstName: "John", LastName: "Smith", Company: "Acme"},
		},
		Errors: []string{"Row 4: Missing required fields (First Name and/or Last Name)"},
	}
}

func TestParsedSuccessShowsSummary(t *testing.T) {
	m, msg := startParse(newModel(t), "/tmp/Connections.csv")
	msg.result = sampleResult()

	m = update(t, m, msg)
	if m.state != stateSummary {
		t.Fatalf("state = %v; want stateSummary", m.state)
	}

	view := m.View()
	for _, want := range []string{
		"Analysis Summary",
		"Connections.csv",
		"Total Rows",
		"Valid Connections",
		"Parsing Errors",
		"Issues Found",
		"Row 4: Missing required fields",
		"Top Companies",
		"Acme",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestSummaryWithoutCompanies(t *testing.T) {
	m, msg := startParse(newModel(t), "Connections.csv")
	msg.result = &types.ParseResult{
		Success:          true,
		TotalRows:        1,
		ValidConnections: []types.Connection{{FirstName: "A", LastName: "B"}},
		Errors:           []string{},
	}

	m = update(t, m, msg)
	view := m.View()
	if !strings.Contains(view, "No company information available in the CSV.") {
		t.Errorf("view missing no-company notice:\n%s", view)
	}
	if strings.Contains(view, "Parsing Errors") || strings.Contains(view, "Top Companies") {
		t.Errorf("view shows sections without data:\n%s", view)
	}
}

func TestFatalImportShowsError(t *testing.T) {
	m, msg := startParse(newModel(t), "notes.txt")
	msg.result, msg.err = importer.Parse("notes.txt", strings.NewReader("x"))

	m = update(t, m, msg)
	if m.state != stateError {
		t.Fatalf("state = %v; want stateError", m.state)
	}
	if !strings.Contains(m.View(), importer.MsgInvalidFileType) {
		t.Errorf("view missing message:\n%s", m.View())
	}
}

func TestUnexpectedErrorShowsFailure(t *testing.T) {
	m, msg := startParse(newModel(t), "Connections.csv")
	msg.err = errors.New("permission denied")

	m = update(t, m, msg)
	if m.state != stateError {
		t.Fatalf("state = %v; want stateError", m.state)
	}
	if !strings.Contains(m.View(), "Failed to parse file: permission denied") {
		t.Errorf("view missing failure:\n%s", m.View())
	}
	if m.store.Current().TotalRows != 0 {
		t.Errorf("store not cleared: %+v", m.store.Current())
	}
}

func TestCancelDropsLateResult(t *testing.T) {
	m, msg := startParse(newModel(t), "Connections.csv")
	msg.result = sampleResult()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.state != stateFilePicker {
		t.Fatalf("state after esc = %v; want stateFilePicker", m.state)
	}

	m = update(t, m, msg)
	if m.state != stateFilePicker {
		t.Errorf("stale result changed state to %v", m.state)
	}
	if got := m.store.Current(); got.TotalRows != 0 {
		t.Errorf("stale result stored: %+v", got)
	}
}

func TestNewerAttemptWins(t *testing.T) {
	m, first := startParse(newModel(t), "old.csv")
	first.result = sampleResult()
	m, second := startParse(m, "new.csv")
	second.result = &types.ParseResult{
		Success:          true,
		TotalRows:        1,
		ValidConnections: []types.Connection{{FirstName: "A", LastName: "B", Company: "Globex"}},
	}

	m = update(t, m, second)
	m = update(t, m, first)

	if m.summary.TotalRows != 1 || m.summary.TopCompanies[0].Company != "Globex" {
		t.Errorf("summary = %+v; want result of newer attempt", m.summary)
	}
}

func TestResetFromSummary(t *testing.T) {
	m, msg := startParse(newModel(t), "Connections.csv")
	msg.result = sampleResult()
	m = update(t, m, msg)

	m = update(t, m, runes("r"))
	if m.state != stateFilePicker {
		t.Fatalf("state = %v; want stateFilePicker", m.state)
	}
	if got := m.store.Current(); got.TotalRows != 0 || len(got.ValidConnections) != 0 || len(got.Errors) != 0 {
		t.Errorf("store after reset = %+v", got)
	}
	if m.summary.TotalRows != 0 || m.messages != nil {
		t.Errorf("model kept old summary: %+v", m.summary)
	}
}

func TestQuitFromSummary(t *testing.T) {
	m, msg := startParse(newModel(t), "Connections.csv")
	msg.result = sampleResult()
	m = update(t, m, msg)

	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestCompanyTablePlaceholder(t *testing.T) {
	tbl := companyTable([]types.CompanyCount{{Company: "", Count: 2}, {Company: "Acme", Count: 1}})

	rows := tbl.Rows()
	if len(rows) != 2 {
		t.Fatalf("rows = %d; want 2", len(rows))
	}
	if rows[0][0] != "1" || rows[0][1] != "Not specified" || rows[0][2] != "2" {
		t.Errorf("row 0 = %v", rows[0])
	}
	if rows[1][0] != "2" || rows[1][1] != "Acme" {
		t.Errorf("row 1 = %v", rows[1])
	}
}
