package report

import (
	"encoding/json"
	"fmt"
)

// Generate writes data as indented JSON.
func (r *JSONReporter) Generate(data Data) error {
	enc := json.NewEncoder(r.Writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encode json report: %w", err)
	}
	return nil
}
