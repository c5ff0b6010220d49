package types

// Connection is one validated row of a LinkedIn Connections export.
type Connection struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Company     string `json:"company,omitempty"`
	Position    string `json:"position,omitempty"`
	ConnectedOn string `json:"connectedOn,omitempty"`
}

type ParseResult struct {
	Success          bool         `json:"success"`
	TotalRows        int          `json:"totalRows"`
	ValidConnections []Connection `json:"validConnections"`
	Errors           []string     `json:"errors"`
}

// Failed builds the empty result returned for a fatal ingestion error.
func Failed(message string) *ParseResult {
	return &ParseResult{
		ValidConnections: []Connection{},
		Errors:           []string{message},
	}
}

type CompanyCount struct {
	Company string `json:"company"`
	Count   int    `json:"count"`
}

// Summary holds the metrics displayed for one parse result.
type Summary struct {
	TotalRows    int            `json:"totalRows"`
	ValidCount   int            `json:"validConnections"`
	ErrorCount   int            `json:"errorCount"`
	TopCompanies []CompanyCount `json:"topCompanies"`
	Errors       []string       `json:"errors,omitempty"`
}

// HasCompanyData reports whether any valid connection had a company set.
func (s Summary) HasCompanyData() bool {
	return len(s.TopCompanies) > 0
}
