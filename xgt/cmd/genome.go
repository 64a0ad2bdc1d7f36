package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Ebedthan/xgt-sub000/internal/api"
	"github.com/Ebedthan/xgt-sub000/internal/gtdb"
)

func runGenome(args []string) {
	fs := flag.NewFlagSet("genome", flag.ExitOnError)
	file := fs.String("file", "", "Take accessions from FILE, one per line")
	history := fs.Bool("history", false, "Get genome taxon history")
	metadata := fs.Bool("metadata", false, "Get genome metadata instead of the full card")
	raw := fs.Bool("raw", false, "Output compact instead of pretty JSON")
	out := fs.String("out", "", "Output to FILE (must not already exist)")
	insecure := fs.Bool("insecure", false, "Disable TLS certificate verification")
	if err := fs.Parse(args); err != nil {
		fatalf("parse args failed: %v", err)
	}

	if *history && *metadata {
		fatalf("genome: --history and --metadata are mutually exclusive")
	}

	accessions, err := loadInputs(fs.Arg(0), *file)
	if err != nil {
		fatalf("genome: %v", err)
	}
	if err := ensureNewOutput(*out); err != nil {
		fatalf("genome: %v", err)
	}

	client := gtdb.NewClient(*insecure)
	preflight(client)

	w, err := newOutputWriter(*out)
	if err != nil {
		fatalf("genome: %v", err)
	}

	bar := newProgress(len(accessions))
	var runErr error
	for _, accession := range accessions {
		switch {
		case *history:
			runErr = genomeHistory(client, w, accession, *out != "")
		case *metadata:
			runErr = genomeResource(client, w, accession, api.ResourceMetadata, *raw)
		default:
			runErr = genomeResource(client, w, accession, api.ResourceCard, *raw)
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
		fatalf("genome: %v", runErr)
	}
}

func genomeResource(client *gtdb.Client, w io.Writer, accession string, resource api.GenomeResource, raw bool) error {
	req := api.GenomeRequest{Accession: accession, Resource: resource}
	notFound := fmt.Sprintf("genome %s not found", accession)

	switch resource {
	case api.ResourceMetadata:
		var meta gtdb.GenomeMetadata
		if err := client.GetJSON(req.URL(), notFound, &meta); err != nil {
			return err
		}
		return writeJSON(w, meta, raw)
	default:
		var card gtdb.GenomeCard
		if err := client.GetJSON(req.URL(), notFound, &card); err != nil {
			return err
		}
		return writeJSON(w, card, raw)
	}
}

// genomeHistory fetches the taxon history and summarizes per-release
// classification changes: CSV rows when writing to a file, a Markdown
// timeline on stdout.
func genomeHistory(client *gtdb.Client, w io.Writer, accession string, toFile bool) error {
	req := api.GenomeRequest{Accession: accession, Resource: api.ResourceTaxonHistory}

	var records []gtdb.TaxonHistory
	if err := client.GetJSON(req.URL(), fmt.Sprintf("genome %s not found", accession), &records); err != nil {
		return err
	}

	changes := gtdb.ComputeChanges(records)
	if toFile {
		return gtdb.WriteHistoryCSV(w, records, changes)
	}
	return gtdb.WriteHistoryTimeline(os.Stdout, accession, records, changes)
}
