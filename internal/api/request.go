// Package api builds request URLs against the GTDB public REST API.
//
// Builders are pure and never fail. Names and accessions are interpolated
// verbatim, without percent-encoding, mirroring what the GTDB web UI sends.
package api

import (
	"fmt"
	"strings"
)

// Host is the fixed GTDB API host.
const Host = "https://api.gtdb.ecogenomic.org"

const (
	// DefaultTaxonLimit caps taxon search results server-side.
	DefaultTaxonLimit = 1000

	// DefaultItemsPerPage caps free-text search results server-side.
	DefaultItemsPerPage = 1000
)

// Request is a logical GTDB API request that knows its own URL.
type Request interface {
	URL() string
}

// TaxonKind selects the taxon endpoint family.
type TaxonKind int

const (
	// TaxonName requests the taxon record list.
	TaxonName TaxonKind = iota
	// TaxonSearch searches the current release.
	TaxonSearch
	// TaxonSearchAllReleases searches across all releases.
	TaxonSearchAllReleases
	// TaxonGenomes lists genomes under a taxon.
	TaxonGenomes
)

// TaxonRequest addresses the /taxon endpoints.
type TaxonRequest struct {
	Name     string
	Kind     TaxonKind
	Limit    int  // 0 means DefaultTaxonLimit
	RepsOnly bool // only meaningful for TaxonGenomes
}

func (r TaxonRequest) URL() string {
	limit := r.Limit
	if limit == 0 {
		limit = DefaultTaxonLimit
	}
	switch r.Kind {
	case TaxonSearch:
		return fmt.Sprintf("%s/taxon/search/%s?limit=%d", Host, r.Name, limit)
	case TaxonSearchAllReleases:
		return fmt.Sprintf("%s/taxon/search/%s/all-releases?limit=%d", Host, r.Name, limit)
	case TaxonGenomes:
		return fmt.Sprintf("%s/taxon/%s/genomes?sp_reps_only=%t", Host, r.Name, r.RepsOnly)
	default:
		return fmt.Sprintf("%s/taxon/%s", Host, r.Name)
	}
}

// GenomeResource is a genome sub-resource path segment.
type GenomeResource string

const (
	ResourceMetadata     GenomeResource = "metadata"
	ResourceTaxonHistory GenomeResource = "taxon-history"
	ResourceCard         GenomeResource = "card"
)

// GenomeRequest addresses /genome/{accession}/{resource}.
type GenomeRequest struct {
	Accession string
	Resource  GenomeResource
}

func (r GenomeRequest) URL() string {
	return fmt.Sprintf("%s/genome/%s/%s", Host, r.Accession, r.Resource)
}

// SearchRequest addresses the free-text /search/gtdb endpoint.
type SearchRequest struct {
	Query                string
	Page                 int
	ItemsPerPage         int
	SortBy               string
	SortDesc             bool
	SearchField          SearchField
	FilterText           string
	GTDBSpeciesRepOnly   bool
	NCBITypeMaterialOnly bool
	Format               OutputFormat
}

// NewSearchRequest returns a request with the server-side defaults filled in.
func NewSearchRequest(query string) SearchRequest {
	return SearchRequest{
		Query:        query,
		Page:         1,
		ItemsPerPage: DefaultItemsPerPage,
		SearchField:  FieldAll,
		Format:       FormatJSON,
	}
}

// URL formats the request with parameters in the order the GTDB web UI uses.
// Optional parameters are present only when non-default: their absence means
// "use the server default", never an explicit false or empty value.
func (r SearchRequest) URL() string {
	segment := ""
	if r.Format != FormatJSON {
		segment = "/" + string(r.Format)
	}

	params := []string{
		"search=" + r.Query,
		fmt.Sprintf("page=%d", r.Page),
		fmt.Sprintf("itemsPerPage=%d", r.ItemsPerPage),
		"searchField=" + string(r.SearchField),
	}
	if r.SortBy != "" {
		params = append(params, "sortBy="+r.SortBy)
	}
	if r.SortDesc {
		params = append(params, "sortDesc=true")
	}
	if r.FilterText != "" {
		params = append(params, "filterText="+r.FilterText)
	}
	if r.GTDBSpeciesRepOnly {
		params = append(params, "gtdbSpeciesRepOnly=true")
	}
	if r.NCBITypeMaterialOnly {
		params = append(params, "ncbiTypeMaterialOnly=true")
	}

	return Host + "/search/gtdb" + segment + "?" + strings.Join(params, "&")
}
