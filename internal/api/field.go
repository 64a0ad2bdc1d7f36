package api

import "fmt"

// SearchField is the searchField query value understood by the API.
type SearchField string

const (
	FieldAll          SearchField = "all"
	FieldNCBIID       SearchField = "ncbi_id"
	FieldNCBIOrgName  SearchField = "ncbi_org"
	FieldGTDBTaxonomy SearchField = "gtdb_tax"
	FieldNCBITaxonomy SearchField = "ncbi_tax"
)

// ParseSearchField maps the CLI field names to their API query values.
func ParseSearchField(s string) (SearchField, error) {
	switch s {
	case "all":
		return FieldAll, nil
	case "acc":
		return FieldNCBIID, nil
	case "org":
		return FieldNCBIOrgName, nil
	case "gtdb":
		return FieldGTDBTaxonomy, nil
	case "ncbi":
		return FieldNCBITaxonomy, nil
	default:
		return "", fmt.Errorf("invalid search field %q (expected all, acc, org, gtdb or ncbi)", s)
	}
}

// IsTaxonomy reports whether the field holds a semicolon-delimited lineage.
func (f SearchField) IsTaxonomy() bool {
	return f == FieldGTDBTaxonomy || f == FieldNCBITaxonomy
}

// OutputFormat selects the representation of free-text search results.
type OutputFormat string

const (
	FormatCSV     OutputFormat = "csv"
	FormatJSON    OutputFormat = "json"
	FormatTSV     OutputFormat = "tsv"
	FormatParquet OutputFormat = "parquet"
)

func ParseOutputFormat(s string) (OutputFormat, error) {
	switch s {
	case "csv", "json", "tsv", "parquet":
		return OutputFormat(s), nil
	default:
		return "", fmt.Errorf("invalid output format %q (expected csv, json, tsv or parquet)", s)
	}
}
