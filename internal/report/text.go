package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Generate writes human-readable terminal output.
func (r *TextReporter) Generate(data Data) error {
	w := &errWriter{w: r.Writer}

	w.println("connex: LinkedIn Connections Summary")
	w.println(strings.Repeat("=", 36))
	if data.File != "" {
		w.printf("File: %s\n", data.File)
	}
	w.println("")

	s := data.Summary
	if s.TotalRows > 0 {
		w.printf("Total rows:         %d\n", s.TotalRows)
		w.printf("Valid connections:  %d\n", s.ValidCount)
		if s.ErrorCount > 0 {
			w.printf("Parsing errors:     %d\n", s.ErrorCount)
		}
		w.println("")
	}

	switch {
	case s.HasCompanyData():
		w.println("Top Companies")
		w.println("-------------")
		if w.err != nil {
			return w.err
		}

		tw := tabwriter.NewWriter(r.Writer, 0, 4, 2, ' ', 0)
		tw2 := &errWriter{w: tw}
		tw2.printf("RANK\tCOMPANY\tCONNECTIONS\n")
		for i, c := range s.TopCompanies {
			tw2.printf("%d\t%s\t%d\n", i+1, CompanyLabel(c.Company), c.Count)
		}
		if tw2.err != nil {
			return tw2.err
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		w.println("")
	case s.ValidCount > 0:
		w.println("No company information available in the CSV.")
		w.println("")
	}

	if len(s.Errors) > 0 {
		w.printf("Issues found (%d):\n", len(s.Errors))
		for _, e := range s.Errors {
			w.printf("  ! %s\n", e)
		}
	}
	return w.err
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
