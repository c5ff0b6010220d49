package ui

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nconklindev/connex/internal/importer"
	"github.com/nconklindev/connex/internal/report"
	"github.com/nconklindev/connex/internal/session"
	"github.com/nconklindev/connex/internal/types"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const maxCompanyWidth = 40

type state int

const (
	stateFilePicker state = iota
	stateProcessing
	stateSummary
	stateError
)

// Options configures the initial model.
type Options struct {
	StartDir     string
	ShowHidden   bool
	TopCompanies int
}

type Model struct {
	state        state
	filepicker   filepicker.Model
	spinner      spinner.Model
	companies    table.Model
	help         help.Model
	store        *session.Store
	selectedFile string
	summary      types.Summary
	messages     []string
	width        int
	height       int
}

type parsedMsg struct {
	attempt session.Attempt
	result  *types.ParseResult
	err     error
}

func InitialModel(opts Options) Model {
	fp := filepicker.New()
	fp.CurrentDirectory = opts.StartDir
	fp.ShowHidden = opts.ShowHidden

	// Set filepicker colors to match theme
	fp.Styles.Cursor = lipgloss.NewStyle().Foreground(accent)
	fp.Styles.Symlink = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB84D"))
	fp.Styles.Directory = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB84D"))
	fp.Styles.File = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))
	fp.Styles.Permission = lipgloss.NewStyle().Foreground(muted)
	fp.Styles.Selected = lipgloss.NewStyle().Foreground(accent).Bold(true)
	fp.Styles.FileSize = lipgloss.NewStyle().Foreground(muted)

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(accent)),
	)

	return Model{
		state:      stateFilePicker,
		filepicker: fp,
		spinner:    sp,
		help:       help.New(),
		store:      session.New(opts.TopCompanies),
	}
}

func (m Model) Init() tea.Cmd {
	return m.filepicker.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Leave room for title, subtitle, help text and padding
		height := msg.Height - 14
		if height < 5 {
			height = 5
		}

		m.filepicker.SetHeight(height)
		m.help.Width = msg.Width

		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case stateFilePicker:
			if key.Matches(msg, keys.Quit) {
				return m, tea.Quit
			}

		case stateProcessing:
			switch {
			case msg.String() == "ctrl+c":
				return m, tea.Quit
			case key.Matches(msg, keys.Cancel):
				// The in-flight parse keeps running; its result is dropped.
				return m.reset(), nil
			}
			return m, nil

		case stateSummary, stateError:
			switch {
			case key.Matches(msg, keys.Quit):
				return m, tea.Quit
			case key.Matches(msg, keys.Reset):
				return m.reset(), nil
			}
			return m, nil
		}

	case parsedMsg:
		if !m.store.Record(msg.attempt, msg.result, msg.err) {
			return m, nil
		}
		return m.showResult(), nil

	case spinner.TickMsg:
		if m.state != stateProcessing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// Handle filepicker updates
	if m.state == stateFilePicker {
		var cmd tea.Cmd
		m.filepicker, cmd = m.filepicker.Update(msg)

		if didSelect, path := m.filepicker.DidSelectFile(msg); didSelect {
			m.selectedFile = path
			m.state = stateProcessing
			attempt := m.store.Begin()
			return m, tea.Batch(m.spinner.Tick, parseFile(attempt, path))
		}

		return m, cmd
	}

	return m, nil
}

func parseFile(attempt session.Attempt, path string) tea.Cmd {
	return func() tea.Msg {
		result, err := importer.ParseFile(path)
		return parsedMsg{attempt: attempt, result: result, err: err}
	}
}

// showResult moves to the summary or error view for the stored result.
func (m Model) showResult() Model {
	current := m.store.Current()
	m.summary = m.store.Summary()
	m.messages = current.Errors

	if !current.Success {
		m.state = stateError
		return m
	}

	m.companies = companyTable(m.summary.TopCompanies)
	m.state = stateSummary
	return m
}

func (m Model) reset() Model {
	m.store.Reset()
	m.summary = types.Summary{}
	m.messages = nil
	m.selectedFile = ""
	m.state = stateFilePicker
	return m
}

func companyTable(companies []types.CompanyCount) table.Model {
	nameWidth := len("Company")
	rows := make([]table.Row, 0, len(companies))
	for i, c := range companies {
		label := report.CompanyLabel(c.Company)
		if w := lipgloss.Width(label); w > nameWidth {
			nameWidth = w
		}
		rows = append(rows, table.Row{strconv.Itoa(i + 1), label, strconv.Itoa(c.Count)})
	}
	if nameWidth > maxCompanyWidth {
		nameWidth = maxCompanyWidth
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 3},
			{Title: "Company", Width: nameWidth},
			{Title: "Connections", Width: 11},
		}),
		table.WithRows(rows),
		table.WithHeight(len(rows)+2),
		table.WithFocused(false),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(muted).
		BorderBottom(true).
		Foreground(accent).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}

func (m Model) View() string {
	switch m.state {
	case stateFilePicker:
		return m.viewFilePicker()
	case stateProcessing:
		return m.viewProcessing()
	case stateSummary:
		return m.viewSummary()
	case stateError:
		return m.viewError()
	}
	return ""
}

func (m Model) viewFilePicker() string {
	var s strings.Builder

	title := TitleStyle.Render("🔗 connex - LinkedIn Connections Analyzer")

	authorSpan := SubtitleStyle.Render("Privacy-first analysis of your network • ")
	githubSpan := LinkStyle.Render("https://github.com/nconklindev/connex")
	byLine := lipgloss.JoinHorizontal(lipgloss.Top, authorSpan, githubSpan)

	s.WriteString(lipgloss.JoinVertical(lipgloss.Left, title, byLine))
	s.WriteString("\n")
	s.WriteString(SubtitleStyle.Render("Select the Connections.csv file from your LinkedIn data export"))
	s.WriteString("\n\n")
	s.WriteString(m.filepicker.View())
	s.WriteString("\n\n")
	s.WriteString(HelpStyle.Render(m.help.ShortHelpView([]key.Binding{keys.Quit})))

	return s.String()
}

func (m Model) viewProcessing() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("🔗 Processing..."))
	s.WriteString("\n\n")
	s.WriteString(fmt.Sprintf("%s Parsing %s", m.spinner.View(), filepath.Base(m.selectedFile)))
	s.WriteString("\n\n")
	s.WriteString(HelpStyle.Render(m.help.ShortHelpView([]key.Binding{keys.Cancel})))

	return BoxStyle.Render(s.String())
}

func metric(label string, value int, style lipgloss.Style) string {
	return MetricStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		MetricLabelStyle.Render(label),
		style.Render(strconv.Itoa(value)),
	))
}

func (m Model) viewSummary() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("✓ Analysis Summary"))
	s.WriteString("\n")
	s.WriteString(SubtitleStyle.Render(fmt.Sprintf("Results from %s", filepath.Base(m.selectedFile))))
	s.WriteString("\n")

	metrics := []string{
		metric("Total Rows", m.summary.TotalRows, MetricValueStyle),
		metric("Valid Connections", m.summary.ValidCount, SuccessStyle),
	}
	if m.summary.ErrorCount > 0 {
		metrics = append(metrics, metric("Parsing Errors", m.summary.ErrorCount, ErrorStyle))
	}
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, metrics...))
	s.WriteString("\n")

	if len(m.messages) > 0 {
		s.WriteString(m.viewIssues())
	}

	switch {
	case m.summary.HasCompanyData():
		s.WriteString(SectionStyle.Render("Top Companies"))
		s.WriteString("\n")
		s.WriteString(m.companies.View())
		s.WriteString("\n")
	case m.summary.ValidCount > 0:
		s.WriteString("\n")
		s.WriteString(SubtitleStyle.Render("No company information available in the CSV."))
		s.WriteString("\n")
	}

	s.WriteString(HelpStyle.Render(m.help.ShortHelpView([]key.Binding{keys.Reset, keys.Quit})))

	return BoxStyle.Render(s.String())
}

func (m Model) viewIssues() string {
	var s strings.Builder

	s.WriteString(SectionStyle.Render("Issues Found"))
	s.WriteString("\n")
	for _, msg := range m.messages {
		s.WriteString(ErrorStyle.Render("! "))
		s.WriteString(msg)
		s.WriteString("\n")
	}
	return s.String()
}

func (m Model) viewError() string {
	var s strings.Builder

	s.WriteString(ErrorStyle.Render("✗ Error"))
	s.WriteString("\n")
	s.WriteString(m.viewIssues())
	s.WriteString("\n")
	s.WriteString(HelpStyle.Render(m.help.ShortHelpView([]key.Binding{keys.Reset, keys.Quit})))

	return BoxStyle.Render(s.String())
}
