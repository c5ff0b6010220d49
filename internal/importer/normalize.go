package importer

import "strings"

// Field is the canonical name of a Connection field.
type Field string

const (
	FieldFirstName   Field = "firstName"
	FieldLastName    Field = "lastName"
	FieldCompany     Field = "company"
	FieldPosition    Field = "position"
	FieldConnectedOn Field = "connectedOn"
)

var canonicalFields = []Field{
	FieldFirstName,
	FieldLastName,
	FieldCompany,
	FieldPosition,
	FieldConnectedOn,
}

// columnAliases maps normalized header keys to canonical fields.
var columnAliases = map[string]Field{
	"firstname":     FieldFirstName,
	"lastname":      FieldLastName,
	"company":       FieldCompany,
	"position":      FieldPosition,
	"title":         FieldPosition,
	"connectedon":   FieldConnectedOn,
	"dateconnected": FieldConnectedOn,
}

// NormalizeColumnName lowercases and trims a header cell and drops every
// character that is not a lowercase ASCII letter or digit.
func NormalizeColumnName(col string) string {
	col = strings.TrimSpace(strings.ToLower(col))
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, col)
}

// CanonicalField resolves a raw header cell to the field it feeds.
// Unrecognized headers return false and their column is dropped.
func CanonicalField(header string) (Field, bool) {
	key := NormalizeColumnName(header)

	candidate := key
	if alias, ok := columnAliases[key]; ok {
		candidate = string(alias)
	}

	for _, f := range canonicalFields {
		if strings.EqualFold(candidate, string(f)) {
			return f, true
		}
	}
	return "", false
}

// mapColumns resolves every header cell once. Unrecognized columns map to "".
func mapColumns(headers []string) []Field {
	cols := make([]Field, len(headers))
	for i, h := range headers {
		if f, ok := CanonicalField(h); ok {
			cols[i] = f
		}
	}
	return cols
}

// normalizeRow projects a raw record onto the canonical fields. When two
// columns resolve to the same field the later one wins.
func normalizeRow(cols []Field, record []string) map[Field]string {
	row := make(map[Field]string, len(canonicalFields))
	for i, f := range cols {
		if f == "" || i >= len(record) {
			continue
		}
		row[f] = strings.TrimSpace(record[i])
	}
	return row
}
