package importer

import (
	"errors"
	"strings"

	"github.com/nconklindev/connex/internal/types"
)

var (
	ErrMissingFirstName = errors.New("first name is required")
	ErrMissingLastName  = errors.New("last name is required")
)

func required(value string, missing error) error {
	if strings.TrimSpace(value) == "" {
		return missing
	}
	return nil
}

// Validate checks a normalized row against the Connection schema. Optional
// fields pass through unchanged; the returned error joins every failure.
func Validate(row map[Field]string) (types.Connection, error) {
	err := errors.Join(
		required(row[FieldFirstName], ErrMissingFirstName),
		required(row[FieldLastName], ErrMissingLastName),
	)
	if err != nil {
		return types.Connection{}, err
	}

	return types.Connection{
		FirstName:   row[FieldFirstName],
		LastName:    row[FieldLastName],
		Company:     row[FieldCompany],
		Position:    row[FieldPosition],
		ConnectedOn: row[FieldConnectedOn],
	}, nil
}
