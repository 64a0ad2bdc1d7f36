package gtdb

import (
	"regexp"

	"github.com/Ebedthan/xgt-sub000/internal/api"
)

// SearchRow is one genome entry of a free-text search response.
type SearchRow struct {
	Gid                string `json:"gid"`
	Accession          string `json:"accession"`
	NCBIOrgName        string `json:"ncbiOrgName"`
	NCBITaxonomy       string `json:"ncbiTaxonomy"`
	GTDBTaxonomy       string `json:"gtdbTaxonomy"`
	IsGTDBSpeciesRep   bool   `json:"isGtdbSpeciesRep"`
	IsNCBITypeMaterial bool   `json:"isNcbiTypeMaterial"`
}

// SearchResult is the JSON body of /search/gtdb.
type SearchResult struct {
	Rows      []SearchRow `json:"rows"`
	TotalRows int         `json:"totalRows"`
}

// FieldValue returns the column a search field matched against.
func (r SearchRow) FieldValue(field api.SearchField) string {
	switch field {
	case api.FieldNCBIID:
		return r.Accession
	case api.FieldNCBIOrgName:
		return r.NCBIOrgName
	case api.FieldNCBITaxonomy:
		return r.NCBITaxonomy
	case api.FieldGTDBTaxonomy:
		return r.GTDBTaxonomy
	default:
		return r.NCBIOrgName + " " + r.NCBITaxonomy + " " + r.GTDBTaxonomy + " " + r.Accession
	}
}

// FilterWholeWord retains rows whose searched field contains needle as a
// whole word. The server matches substrings; this is the client-side
// tightening applied unless partial matching was requested.
func (res SearchResult) FilterWholeWord(field api.SearchField, needle string) []SearchRow {
	var kept []SearchRow
	for _, row := range res.Rows {
		if MatchWholeWord(row.FieldValue(field), needle) {
			kept = append(kept, row)
		}
	}
	return kept
}

// MatchWholeWord reports whether needle occurs in s delimited by word
// boundaries, so "abc" matches "abc" but not "abcd".
func MatchWholeWord(s, needle string) bool {
	if needle == "" {
		return false
	}
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(needle) + `\b`)
	return re.MatchString(s)
}
