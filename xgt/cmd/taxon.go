package cmd

import (
	"flag"
	"fmt"
	"io"

	"github.com/Ebedthan/xgt-sub000/internal/api"
	"github.com/Ebedthan/xgt-sub000/internal/gtdb"
)

func runTaxon(args []string) {
	fs := flag.NewFlagSet("taxon", flag.ExitOnError)
	file := fs.String("file", "", "Take taxon names from FILE, one per line")
	out := fs.String("out", "", "Output to FILE (must not already exist)")
	partial := fs.Bool("partial", false, "Perform partial matching instead of whole-word matching")
	search := fs.Bool("search", false, "Search for the taxon in the current release")
	all := fs.Bool("all", false, "Search for the taxon across all releases")
	genomes := fs.Bool("genomes", false, "Get the taxon genomes")
	reps := fs.Bool("reps", false, "Restrict taxon genomes to species representatives")
	insecure := fs.Bool("insecure", false, "Disable TLS certificate verification")
	if err := fs.Parse(args); err != nil {
		fatalf("parse args failed: %v", err)
	}

	names, err := loadInputs(fs.Arg(0), *file)
	if err != nil {
		fatalf("taxon: %v", err)
	}
	// Names are validated before anything touches the network.
	for _, name := range names {
		if !isValidTaxon(name) {
			fatalf("taxon: name %q must be in greengenes format, e.g. g__Foo", name)
		}
	}
	if err := ensureNewOutput(*out); err != nil {
		fatalf("taxon: %v", err)
	}

	client := gtdb.NewClient(*insecure)
	preflight(client)

	w, err := newOutputWriter(*out)
	if err != nil {
		fatalf("taxon: %v", err)
	}

	bar := newProgress(len(names))
	var runErr error
	for _, name := range names {
		switch {
		case *search || *all:
			runErr = taxonSearch(client, w, name, *all, *partial)
		case *genomes:
			runErr = taxonGenomes(client, w, name, *reps)
		default:
			runErr = taxonName(client, w, name)
		}
		if runErr != nil {
			break
		}
		bar.increment()
	}
	bar.finish()
	if cerr := w.Close(); runErr == nil {
		runErr = cerr
	}
	if runErr != nil {
		fatalf("taxon: %v", runErr)
	}
}

func taxonName(client *gtdb.Client, w io.Writer, name string) error {
	req := api.TaxonRequest{Name: name, Kind: api.TaxonName}

	var taxa []gtdb.Taxon
	if err := client.GetJSON(req.URL(), taxonNotFound(name), &taxa); err != nil {
		return err
	}
	return writeJSON(w, taxa, false)
}

func taxonSearch(client *gtdb.Client, w io.Writer, name string, allReleases, partial bool) error {
	kind := api.TaxonSearch
	if allReleases {
		kind = api.TaxonSearchAllReleases
	}
	req := api.TaxonRequest{Name: name, Kind: kind}

	var result gtdb.TaxonSearchResult
	if err := client.GetJSON(req.URL(), taxonNotFound(name), &result); err != nil {
		return err
	}

	if !partial {
		result.Matches = result.FilterWholeWord(name)
	}
	if len(result.Matches) == 0 {
		return fmt.Errorf("no match found for %q in GTDB", name)
	}
	return writeJSON(w, result, false)
}

func taxonGenomes(client *gtdb.Client, w io.Writer, name string, repsOnly bool) error {
	req := api.TaxonRequest{Name: name, Kind: api.TaxonGenomes, RepsOnly: repsOnly}

	var accessions []string
	if err := client.GetJSON(req.URL(), taxonNotFound(name), &accessions); err != nil {
		return err
	}
	return writeJSON(w, accessions, false)
}

func taxonNotFound(name string) string {
	return fmt.Sprintf("taxon %s not found", name)
}
