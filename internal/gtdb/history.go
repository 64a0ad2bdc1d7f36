package gtdb

import (
	"fmt"
	"io"
	"strings"
)

// ComputeChanges walks a taxon history oldest-to-newest and records, per
// release, which of the tracked ranks changed relative to the previous
// release. Releases with no change are absent from the map.
func ComputeChanges(records []TaxonHistory) map[string][]string {
	changes := make(map[string][]string)
	var prev *TaxonHistory

	for i := len(records) - 1; i >= 0; i-- {
		rec := &records[i]
		if prev != nil {
			var notes []string
			notes = compareRank(notes, "Domain", prev.Domain, rec.Domain)
			notes = compareRank(notes, "Phylum", prev.Phylum, rec.Phylum)
			notes = compareRank(notes, "Family", prev.Family, rec.Family)
			notes = compareRank(notes, "Species", prev.Species, rec.Species)
			if len(notes) > 0 && rec.Release.IsSet() {
				changes[string(rec.Release)] = notes
			}
		}
		prev = rec
	}

	return changes
}

func compareRank(notes []string, rank string, prev, cur NullString) []string {
	switch {
	case prev.IsSet() && cur.IsSet() && prev != cur:
		return append(notes, fmt.Sprintf("%s: %s -> %s", rank, prev, cur))
	case prev.IsSet() && !cur.IsSet():
		return append(notes, fmt.Sprintf("%s removed (was %s)", rank, prev))
	case !prev.IsSet() && cur.IsSet():
		return append(notes, fmt.Sprintf("%s added: %s", rank, cur))
	default:
		return notes
	}
}

// WriteHistoryCSV renders the history with per-release change notes. Records
// arrive newest first; the last record is the initial classification.
func WriteHistoryCSV(w io.Writer, records []TaxonHistory, changes map[string][]string) error {
	if _, err := fmt.Fprintln(w, "release,domain,phylum,family,species,changes"); err != nil {
		return err
	}

	for i, rec := range records {
		isFirst := i == len(records)-1
		rel := rankValue(rec.Release)
		note := ""
		if notes, ok := changes[rel]; ok {
			note = strings.Join(notes, "; ")
		} else if isFirst {
			note = "initial classification"
		}

		_, err := fmt.Fprintf(w, "%s,%s,%s,%s,%s,%s\n",
			rel,
			rankValue(rec.Domain),
			rankValue(rec.Phylum),
			rankValue(rec.Family),
			rankValue(rec.Species),
			note,
		)
		if err != nil {
			return err
		}
	}

	return nil
}

// WriteHistoryTimeline prints a Markdown classification timeline, newest
// release first, showing only the initial classification and the releases
// where something changed.
func WriteHistoryTimeline(w io.Writer, accession string, records []TaxonHistory, changes map[string][]string) error {
	if _, err := fmt.Fprintf(w, "## Genome %s Classification Timeline (Newest -> Oldest)\n\n", accession); err != nil {
		return err
	}

	for i, rec := range records {
		isFirst := i == len(records)-1
		rel := rankValue(rec.Release)
		notes, hasChanges := changes[rel]
		if !isFirst && !hasChanges {
			continue
		}

		fmt.Fprintf(w, "### %s\n", rel)
		fmt.Fprintln(w, "- **Taxonomy**:")
		printRank(w, "Domain", rec.Domain)
		printRank(w, "Phylum", rec.Phylum)
		printRank(w, "Family", rec.Family)
		printRank(w, "Species", rec.Species)

		if hasChanges {
			fmt.Fprintln(w, "- **Changes**:")
			for _, note := range notes {
				fmt.Fprintf(w, "  - %s\n", note)
			}
		} else if isFirst {
			fmt.Fprintln(w, "- Initial classification.")
		}

		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	return nil
}

func printRank(w io.Writer, rank string, v NullString) {
	if v.IsSet() {
		fmt.Fprintf(w, "  - %s: %s\n", rank, v)
	}
}

func rankValue(v NullString) string {
	if !v.IsSet() {
		return ""
	}
	return string(v)
}
