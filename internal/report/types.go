package report

import (
	"io"
	"time"

	"github.com/nconklindev/connex/internal/types"
)

// NotSpecified is displayed in place of an empty company name.
const NotSpecified = "Not specified"

// Reporter is the interface for output formatters.
type Reporter interface {
	Generate(data Data) error
}

// Data holds all information needed to generate a report.
type Data struct {
	Tool      string        `json:"tool"`
	Version   string        `json:"version"`
	Timestamp time.Time     `json:"timestamp"`
	File      string        `json:"file"`
	Success   bool          `json:"success"`
	Summary   types.Summary `json:"summary"`
}

// TextReporter generates human-readable terminal output.
type TextReporter struct {
	Writer io.Writer
}

// JSONReporter generates an indented JSON document.
type JSONReporter struct {
	Writer io.Writer
}

// CompanyLabel returns the display name for a ranked company.
func CompanyLabel(company string) string {
	if company == "" {
		return NotSpecified
	}
	return company
}
