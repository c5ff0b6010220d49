package importer

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		row     map[Field]string
		wantErr []error
	}{
		{
			name: "Complete row",
			row: map[Field]string{
				FieldFirstName: "Jane", FieldLastName: "Doe",
				FieldCompany: "Acme", FieldPosition: "CTO", FieldConnectedOn: "01 Jan 2020",
			},
		},
		{
			name: "Names only",
			row:  map[Field]string{FieldFirstName: "Jane", FieldLastName: "Doe"},
		},
		{
			name:    "Missing last name",
			row:     map[Field]string{FieldFirstName: "Ann", FieldLastName: ""},
			wantErr: []error{ErrMissingLastName},
		},
		{
			name:    "Whitespace first name",
			row:     map[Field]string{FieldFirstName: "   ", FieldLastName: "Doe"},
			wantErr: []error{ErrMissingFirstName},
		},
		{
			name:    "Empty row",
			row:     map[Field]string{},
			wantErr: []error{ErrMissingFirstName, ErrMissingLastName},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, err := Validate(tt.row)
			if len(tt.wantErr) == 0 {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				if conn.FirstName != tt.row[FieldFirstName] || conn.Company != tt.row[FieldCompany] {
					t.Errorf("Validate() = %+v; fields not copied from %v", conn, tt.row)
				}
				return
			}
			for _, want := range tt.wantErr {
				if !errors.Is(err, want) {
					t.Errorf("Validate() error = %v; want %v", err, want)
				}
			}
		})
	}
}
