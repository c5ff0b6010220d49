package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nconklindev/connex/internal/types"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// MaxRowErrors caps the row messages kept in a ParseResult. Rows beyond the
// cap are still validated and excluded, just not reported individually.
const MaxRowErrors = 5

// Parse reads a LinkedIn Connections export and validates every data row.
//
// Fatal failures (wrong extension, no data rows, malformed CSV) return the
// empty failed result carrying the user-facing message together with an
// *ImportError. Any other error comes from the source itself and is returned
// with a nil result.
func Parse(name string, r io.Reader) (*types.ParseResult, error) {
	if !strings.HasSuffix(strings.ToLower(name), ".csv") {
		return fail(invalidFileType())
	}

	reader := csv.NewReader(transform.NewReader(r, unicode.UTF8BOM.NewDecoder()))
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err == io.EOF {
		return fail(emptyFile())
	}
	if err != nil {
		return readFailure(err)
	}

	cols := mapColumns(headers)
	result := &types.ParseResult{
		ValidConnections: []types.Connection{},
		Errors:           []string{},
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return readFailure(err)
		}

		result.TotalRows++
		conn, err := Validate(normalizeRow(cols, record))
		if err != nil {
			if len(result.Errors) < MaxRowErrors {
				result.Errors = append(result.Errors, RowError(result.TotalRows+1))
			}
			continue
		}
		result.ValidConnections = append(result.ValidConnections, conn)
	}

	if result.TotalRows == 0 {
		return fail(emptyFile())
	}

	result.Success = len(result.ValidConnections) > 0
	return result, nil
}

// ParseFile opens path and parses it under its base name.
func ParseFile(path string) (*types.ParseResult, error) {
	if !strings.HasSuffix(strings.ToLower(path), ".csv") {
		return fail(invalidFileType())
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Parse(filepath.Base(path), file)
}

func fail(err *ImportError) (*types.ParseResult, error) {
	return types.Failed(err.Message), err
}

// readFailure separates structural CSV errors from failures of the source.
func readFailure(err error) (*types.ParseResult, error) {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return fail(malformed(err))
	}
	return nil, fmt.Errorf("read csv: %w", err)
}
