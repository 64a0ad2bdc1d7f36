package gtdb

import (
	"encoding/json"
	"testing"
)

func TestTaxonDecode(t *testing.T) {
	fixture := `[
		{
			"taxon": "g__Escherichia",
			"total": 12.0,
			"nDescChildren": "8",
			"isGenome": false,
			"isRep": false,
			"typeMaterial": null,
			"bergeysUrl": null,
			"seqcodeUrl": null,
			"lpsnUrl": "https://lpsn.dsmz.de/genus/escherichia",
			"ncbiTaxId": 561
		}
	]`

	var taxa []Taxon
	if err := json.Unmarshal([]byte(fixture), &taxa); err != nil {
		t.Fatalf("unmarshal taxa: %v", err)
	}
	if len(taxa) != 1 {
		t.Fatalf("got %d taxa", len(taxa))
	}

	tax := taxa[0]
	if tax.Taxon != "g__Escherichia" {
		t.Errorf("taxon = %q", tax.Taxon)
	}
	if tax.Total == nil || *tax.Total != 12.0 {
		t.Errorf("total = %v", tax.Total)
	}
	if tax.NDescChildren != "8" {
		t.Errorf("nDescChildren = %q", tax.NDescChildren)
	}
	if tax.TypeMaterial != "null" {
		t.Errorf("null typeMaterial should decode to the sentinel, got %q", tax.TypeMaterial)
	}
	if !tax.LPSNURL.IsSet() {
		t.Error("lpsnUrl should report set")
	}
	if tax.NCBITaxID == nil || *tax.NCBITaxID != 561 {
		t.Errorf("ncbiTaxId = %v", tax.NCBITaxID)
	}
	if tax.IsGenome == nil || *tax.IsGenome {
		t.Errorf("isGenome = %v", tax.IsGenome)
	}
}

func TestTaxonMarshalSentinel(t *testing.T) {
	out, err := json.Marshal(Taxon{Taxon: "s__Escherichia coli"})
	if err != nil {
		t.Fatalf("marshal taxon: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("unmarshal marshaled taxon: %v", err)
	}
	if decoded["typeMaterial"] != "null" {
		t.Errorf("absent typeMaterial should serialize to the sentinel, got %v", decoded["typeMaterial"])
	}
	if _, ok := decoded["total"]; ok {
		t.Error("nil total should be omitted")
	}
}
