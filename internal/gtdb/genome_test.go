package gtdb

import (
	"encoding/json"
	"testing"
)

const genomeCardFixture = `{
	"genome": {"accession": "GCF_000005845.2", "name": "GCF_000005845.2"},
	"metadata_nucleotide": {
		"contig_count": 1,
		"genome_size": 4641652,
		"gc_percentage": 50.79,
		"longest_scaffold": null
	},
	"metadata_gene": {
		"checkm_completeness": "99.98",
		"checkm_contamination": null,
		"protein_count": "4242"
	},
	"metadata_ncbi": {
		"ncbi_genbank_assembly_accession": "GCA_000005845.2",
		"ncbi_assembly_level": "Complete Genome",
		"ncbi_isolate": null
	},
	"metadata_type_material": {
		"gtdbTypeDesignation": "none",
		"lpsnPriorityYear": 1919,
		"gtdbTypeSpeciesOfGenus": false
	},
	"metadataTaxonomy": {
		"ncbi_taxonomy": "d__Bacteria; s__Escherichia coli",
		"gtdb_representative": true,
		"gtdbDomain": "d__Bacteria",
		"gtdbSpecies": "s__Escherichia coli"
	},
	"speciesRepName": "GCF_000005845.2",
	"speciesClusterCount": 32710,
	"lpsnUrl": null,
	"ncbiTaxonomyFiltered": [
		{"taxon": "d__Bacteria", "taxonId": "2"}
	]
}`

func TestGenomeCardDecode(t *testing.T) {
	var card GenomeCard
	if err := json.Unmarshal([]byte(genomeCardFixture), &card); err != nil {
		t.Fatalf("unmarshal card: %v", err)
	}

	if card.Genome.Accession != "GCF_000005845.2" {
		t.Errorf("accession = %q", card.Genome.Accession)
	}
	if card.MetadataNucleotide.GenomeSize == nil || *card.MetadataNucleotide.GenomeSize != 4641652 {
		t.Errorf("genome_size = %v", card.MetadataNucleotide.GenomeSize)
	}
	if card.MetadataNucleotide.LongestScaffold != nil {
		t.Errorf("null longest_scaffold should stay nil, got %v", *card.MetadataNucleotide.LongestScaffold)
	}
	if got := card.MetadataGene.CheckMCompleteness; got != "99.98" {
		t.Errorf("checkm_completeness = %q", got)
	}
	if got := card.MetadataGene.CheckMContamination; got != "null" {
		t.Errorf("null checkm_contamination should decode to the sentinel, got %q", got)
	}
	if card.MetadataGene.LSU5SCount.IsSet() {
		t.Error("absent lsu_5s_count should report unset")
	}
	if !card.MetadataTaxonomy.GTDBRepresentative {
		t.Error("gtdb_representative should be true")
	}
	if card.MetadataTypeMaterial.LPSNPriorityYear == nil || *card.MetadataTypeMaterial.LPSNPriorityYear != 1919 {
		t.Errorf("lpsnPriorityYear = %v", card.MetadataTypeMaterial.LPSNPriorityYear)
	}
	if card.SpeciesClusterCount == nil || *card.SpeciesClusterCount != 32710 {
		t.Errorf("speciesClusterCount = %v", card.SpeciesClusterCount)
	}
	if len(card.NCBITaxonomyFiltered) != 1 || card.NCBITaxonomyFiltered[0].TaxonID != "2" {
		t.Errorf("ncbiTaxonomyFiltered = %v", card.NCBITaxonomyFiltered)
	}
}

func TestGenomeCardRoundTrip(t *testing.T) {
	var card GenomeCard
	if err := json.Unmarshal([]byte(genomeCardFixture), &card); err != nil {
		t.Fatalf("unmarshal card: %v", err)
	}

	out, err := json.Marshal(card)
	if err != nil {
		t.Fatalf("marshal card: %v", err)
	}

	var again GenomeCard
	if err := json.Unmarshal(out, &again); err != nil {
		t.Fatalf("unmarshal re-serialized card: %v", err)
	}
	if again.MetadataGene.CheckMContamination != "null" {
		t.Errorf("sentinel lost in round trip: %q", again.MetadataGene.CheckMContamination)
	}
	if again.Genome.Accession != card.Genome.Accession {
		t.Errorf("accession changed in round trip: %q", again.Genome.Accession)
	}
}

func TestTaxonHistoryDecode(t *testing.T) {
	fixture := `[
		{"release": "R220", "d": "d__Bacteria", "p": "p__Pseudomonadota", "s": "s__Escherichia coli"},
		{"release": "R89", "d": "d__Bacteria", "p": "p__Proteobacteria", "s": null}
	]`

	var records []TaxonHistory
	if err := json.Unmarshal([]byte(fixture), &records); err != nil {
		t.Fatalf("unmarshal history: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records", len(records))
	}
	if records[0].Phylum != "p__Pseudomonadota" {
		t.Errorf("phylum = %q", records[0].Phylum)
	}
	if records[1].Species != "null" {
		t.Errorf("null species should decode to the sentinel, got %q", records[1].Species)
	}
	if records[1].Class.IsSet() {
		t.Error("absent class should report unset")
	}
}
