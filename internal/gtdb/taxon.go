// Package gtdb holds the GTDB API response schema and a thin HTTP client.
//
// All records are passive values populated by a single JSON deserialization;
// unknown fields in the payload are ignored, and optional string fields use
// NullString tolerance as described there.
package gtdb

// Taxon is one entry of a /taxon/{name} response.
type Taxon struct {
	Taxon         string     `json:"taxon"`
	Total         *float64   `json:"total,omitempty"`
	NDescChildren NullString `json:"nDescChildren"`
	IsGenome      *bool      `json:"isGenome,omitempty"`
	IsRep         *bool      `json:"isRep,omitempty"`
	TypeMaterial  NullString `json:"typeMaterial"`
	BergeysURL    NullString `json:"bergeysUrl"`
	SeqCodeURL    NullString `json:"seqcodeUrl"`
	LPSNURL       NullString `json:"lpsnUrl"`
	NCBITaxID     *int32     `json:"ncbiTaxId,omitempty"`
}

// TaxonSearchResult is the /taxon/search/{name} response, for the current
// release and the all-releases variants alike.
type TaxonSearchResult struct {
	Matches []string `json:"matches"`
}

// FilterWholeWord retains only matches containing needle as a whole word.
func (r TaxonSearchResult) FilterWholeWord(needle string) []string {
	var kept []string
	for _, m := range r.Matches {
		if MatchWholeWord(m, needle) {
			kept = append(kept, m)
		}
	}
	return kept
}
