package cmd

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/Ebedthan/xgt-sub000/internal/api"
	"github.com/Ebedthan/xgt-sub000/internal/gtdb"
)

type searchOptions struct {
	field   api.SearchField
	partial bool
	rep     bool
	typeMat bool
	id      bool
	count   bool
	format  api.OutputFormat
}

func runSearch(args []string) {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	field := fs.String("field", "all", "Search field (all, acc, org, gtdb, ncbi)")
	partial := fs.Bool("partial", false, "Perform partial matching instead of whole-word matching")
	rep := fs.Bool("rep", false, "Search GTDB representative species only")
	typeMat := fs.Bool("type", false, "Search NCBI type material only")
	id := fs.Bool("id", false, "Only print matched genome IDs")
	count := fs.Bool("count", false, "Only print a count of matched genomes")
	file := fs.String("file", "", "Take queries from FILE, one per line")
	out := fs.String("out", "", "Output to FILE (must not already exist)")
	outfmt := fs.String("outfmt", "csv", "Output format (csv, json, tsv, parquet)")
	insecure := fs.Bool("insecure", false, "Disable TLS certificate verification")
	if err := fs.Parse(args); err != nil {
		fatalf("parse args failed: %v", err)
	}

	queries, err := loadInputs(fs.Arg(0), *file)
	if err != nil {
		fatalf("search: %v", err)
	}
	searchField, err := api.ParseSearchField(*field)
	if err != nil {
		fatalf("search: %v", err)
	}
	format, err := api.ParseOutputFormat(*outfmt)
	if err != nil {
		fatalf("search: %v", err)
	}
	if *count || *id {
		// CSV/TSV bodies for big taxa are too large to hold as one string;
		// counting and ID listing always go through the JSON endpoint.
		format = api.FormatJSON
	}
	if format == api.FormatParquet && *out == "" {
		fatalf("search: --outfmt parquet requires --out")
	}
	if err := ensureNewOutput(*out); err != nil {
		fatalf("search: %v", err)
	}

	opts := searchOptions{
		field:   searchField,
		partial: *partial,
		rep:     *rep,
		typeMat: *typeMat,
		id:      *id,
		count:   *count,
		format:  format,
	}

	client := gtdb.NewClient(*insecure)
	preflight(client)

	if format == api.FormatParquet {
		runSearchParquet(client, queries, opts, *out)
		return
	}

	w, err := newOutputWriter(*out)
	if err != nil {
		fatalf("search: %v", err)
	}

	bar := newProgress(len(queries))
	var runErr error
	for _, query := range queries {
		if runErr = searchOne(client, w, query, opts); runErr != nil {
			break
		}
		bar.increment()
	}
	bar.finish()
	if cerr := w.Close(); runErr == nil {
		runErr = cerr
	}
	if runErr != nil {
		fatalf("search: %v", runErr)
	}
}

func runSearchParquet(client *gtdb.Client, queries []string, opts searchOptions, out string) {
	var rows []gtdb.SearchRow
	bar := newProgress(len(queries))
	for _, query := range queries {
		matched, err := fetchSearchRows(client, query, opts)
		if err != nil {
			fatalf("search: %v", err)
		}
		rows = append(rows, matched...)
		bar.increment()
	}
	bar.finish()

	if err := writeParquet(out, rows); err != nil {
		fatalf("search: %v", err)
	}
}

func searchOne(client *gtdb.Client, w io.Writer, query string, opts searchOptions) error {
	// Whole-word filtering, counting and ID listing need typed rows; only a
	// partial CSV/TSV search can stream the server bytes through untouched.
	needRows := opts.count || opts.id || !opts.partial || opts.format == api.FormatJSON
	if !needRows {
		req := newSearchRequest(query, opts)
		req.Format = opts.format
		body, err := client.Get(req.URL(), notFoundMsg(query))
		if err != nil {
			return err
		}
		_, err = w.Write(body)
		return err
	}

	rows, err := fetchSearchRows(client, query, opts)
	if err != nil {
		return err
	}

	switch {
	case opts.count:
		_, err := fmt.Fprintf(w, "%d\n", len(rows))
		return err
	case opts.id:
		for _, row := range rows {
			if _, err := fmt.Fprintln(w, row.Gid); err != nil {
				return err
			}
		}
		return nil
	case opts.format == api.FormatJSON:
		return writeJSON(w, rows, false)
	default:
		comma := ','
		if opts.format == api.FormatTSV {
			comma = '\t'
		}
		return writeRowsDelimited(w, rows, comma)
	}
}

func fetchSearchRows(client *gtdb.Client, query string, opts searchOptions) ([]gtdb.SearchRow, error) {
	req := newSearchRequest(query, opts)

	var result gtdb.SearchResult
	if err := client.GetJSON(req.URL(), notFoundMsg(query), &result); err != nil {
		return nil, err
	}

	rows := result.Rows
	if !opts.partial {
		rows = result.FilterWholeWord(opts.field, query)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no match found for %q in GTDB", query)
	}
	return rows, nil
}

func newSearchRequest(query string, opts searchOptions) api.SearchRequest {
	req := api.NewSearchRequest(query)
	req.SearchField = opts.field
	req.GTDBSpeciesRepOnly = opts.rep
	req.NCBITypeMaterialOnly = opts.typeMat
	return req
}

func notFoundMsg(query string) string {
	return fmt.Sprintf("no result found for %q in GTDB", query)
}

var searchColumns = []string{
	"gid",
	"accession",
	"ncbi_org_name",
	"ncbi_taxonomy",
	"gtdb_taxonomy",
	"is_gtdb_species_rep",
	"is_ncbi_type_material",
}

func writeRowsDelimited(w io.Writer, rows []gtdb.SearchRow, comma rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma
	if err := cw.Write(searchColumns); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.Gid,
			row.Accession,
			row.NCBIOrgName,
			row.NCBITaxonomy,
			row.GTDBTaxonomy,
			strconv.FormatBool(row.IsGTDBSpeciesRep),
			strconv.FormatBool(row.IsNCBITypeMaterial),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
