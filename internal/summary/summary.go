package summary

import (
	"sort"

	"github.com/nconklindev/connex/internal/types"
)

// DefaultTopCompanies is the number of companies ranked when no limit is given.
const DefaultTopCompanies = 10

// TopCompanies counts connections per exact company string and returns the
// most frequent ones. Empty companies are not counted. Ties keep the order in
// which each company first appeared.
func TopCompanies(conns []types.Connection, limit int) []types.CompanyCount {
	if limit <= 0 {
		limit = DefaultTopCompanies
	}

	index := make(map[string]int)
	counts := []types.CompanyCount{}
	for _, c := range conns {
		if c.Company == "" {
			continue
		}
		if i, ok := index[c.Company]; ok {
			counts[i].Count++
			continue
		}
		index[c.Company] = len(counts)
		counts = append(counts, types.CompanyCount{Company: c.Company, Count: 1})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	if len(counts) > limit {
		counts = counts[:limit]
	}
	return counts
}

// Summarize derives the displayed metrics from a parse result. The error
// count is always TotalRows minus the valid connections, independent of how
// many row messages were kept.
func Summarize(result *types.ParseResult, limit int) types.Summary {
	if result == nil {
		return types.Summary{TopCompanies: []types.CompanyCount{}}
	}

	return types.Summary{
		TotalRows:    result.TotalRows,
		ValidCount:   len(result.ValidConnections),
		ErrorCount:   result.TotalRows - len(result.ValidConnections),
		TopCompanies: TopCompanies(result.ValidConnections, limit),
		Errors:       result.Errors,
	}
}
