package gtdb

// GenomeSummary identifies the assembly a card belongs to.
type GenomeSummary struct {
	Accession string `json:"accession"`
	Name      string `json:"name"`
}

// MetadataNucleotide groups assembly-level nucleotide statistics.
type MetadataNucleotide struct {
	TRNAAACount     *int32   `json:"trna_aa_count"`
	ContigCount     *int32   `json:"contig_count"`
	N50Contigs      *int32   `json:"n50_contigs"`
	LongestContig   *int32   `json:"longest_contig"`
	ScaffoldCount   *int32   `json:"scaffold_count"`
	N50Scaffolds    *int32   `json:"n50_scaffolds"`
	LongestScaffold *int64   `json:"longest_scaffold"`
	GenomeSize      *int64   `json:"genome_size"`
	GCPercentage    *float64 `json:"gc_percentage"`
	AmbiguousBases  *int32   `json:"ambiguous_bases"`
}

// MetadataGene groups gene-calling and completeness statistics. The API
// serves these as strings.
type MetadataGene struct {
	CheckMCompleteness        NullString `json:"checkm_completeness"`
	CheckMContamination       NullString `json:"checkm_contamination"`
	CheckMStrainHeterogeneity NullString `json:"checkm_strain_heterogeneity"`
	LSU5SCount                NullString `json:"lsu_5s_count"`
	SSUCount                  NullString `json:"ssu_count"`
	LSU23SCount               NullString `json:"lsu_23s_count"`
	ProteinCount              NullString `json:"protein_count"`
	CodingDensity             NullString `json:"coding_density"`
}

// MetadataNCBI mirrors the NCBI assembly report fields.
type MetadataNCBI struct {
	GenbankAssemblyAccession NullString `json:"ncbi_genbank_assembly_accession"`
	StrainIdentifiers        NullString `json:"ncbi_strain_identifiers"`
	AssemblyLevel            NullString `json:"ncbi_assembly_level"`
	AssemblyName             NullString `json:"ncbi_assembly_name"`
	AssemblyType             NullString `json:"ncbi_assembly_type"`
	Bioproject               NullString `json:"ncbi_bioproject"`
	Biosample                NullString `json:"ncbi_biosample"`
	Country                  NullString `json:"ncbi_country"`
	Date                     NullString `json:"ncbi_date"`
	GenomeCategory           NullString `json:"ncbi_genome_category"`
	Isolate                  NullString `json:"ncbi_isolate"`
	IsolationSource          NullString `json:"ncbi_isolation_source"`
	LatLon                   NullString `json:"ncbi_lat_lon"`
	MoleculeCount            NullString `json:"ncbi_molecule_count"`
	CDSCount                 NullString `json:"ncbi_cds_count"`
	RefseqCategory           NullString `json:"ncbi_refseq_category"`
	SeqRelDate               NullString `json:"ncbi_seq_rel_date"`
	SpannedGaps              NullString `json:"ncbi_spanned_gaps"`
	SpeciesTaxID             NullString `json:"ncbi_species_taxid"`
	SSUCount                 NullString `json:"ncbi_ssu_count"`
	Submitter                NullString `json:"ncbi_submitter"`
	TaxID                    NullString `json:"ncbi_taxid"`
	TotalGapLength           NullString `json:"ncbi_total_gap_length"`
	TranslationTable         NullString `json:"ncbi_translation_table"`
	TRNACount                NullString `json:"ncbi_trna_count"`
	UnspannedGaps            NullString `json:"ncbi_unspanned_gaps"`
	VersionStatus            NullString `json:"ncbi_version_status"`
	WGSMaster                NullString `json:"ncbi_wgs_master"`
}

// MetadataTypeMaterial groups type-material designations.
type MetadataTypeMaterial struct {
	GTDBTypeDesignation        NullString `json:"gtdbTypeDesignation"`
	GTDBTypeDesignationSources NullString `json:"gtdbTypeDesignationSources"`
	LPSNTypeDesignation        NullString `json:"lpsnTypeDesignation"`
	DSMZTypeDesignation        NullString `json:"dsmzTypeDesignation"`
	LPSNPriorityYear           *int32     `json:"lpsnPriorityYear"`
	GTDBTypeSpeciesOfGenus     *bool      `json:"gtdbTypeSpeciesOfGenus"`
}

// MetadataTaxonomy groups NCBI and GTDB lineage assignments.
type MetadataTaxonomy struct {
	NCBITaxonomy                NullString `json:"ncbi_taxonomy"`
	NCBITaxonomyUnfiltered      NullString `json:"ncbi_taxonomy_unfiltered"`
	GTDBRepresentative          bool       `json:"gtdb_representative"`
	GTDBGenomeRepresentative    NullString `json:"gtdb_genome_representative"`
	NCBITypeMaterialDesignation NullString `json:"ncbi_type_material_designation"`
	GTDBDomain                  NullString `json:"gtdbDomain"`
	GTDBPhylum                  NullString `json:"gtdbPhylum"`
	GTDBClass                   NullString `json:"gtdbClass"`
	GTDBOrder                   NullString `json:"gtdbOrder"`
	GTDBFamily                  NullString `json:"gtdbFamily"`
	GTDBGenus                   NullString `json:"gtdbGenus"`
	GTDBSpecies                 NullString `json:"gtdbSpecies"`
}

// TaxonLink is one entry of a parsed NCBI lineage.
type TaxonLink struct {
	Taxon   NullString `json:"taxon"`
	TaxonID NullString `json:"taxonId"`
}

// GenomeCard is the /genome/{accession}/card response.
type GenomeCard struct {
	Genome                     GenomeSummary        `json:"genome"`
	MetadataNucleotide         MetadataNucleotide   `json:"metadata_nucleotide"`
	MetadataGene               MetadataGene         `json:"metadata_gene"`
	MetadataNCBI               MetadataNCBI         `json:"metadata_ncbi"`
	MetadataTypeMaterial       MetadataTypeMaterial `json:"metadata_type_material"`
	MetadataTaxonomy           MetadataTaxonomy     `json:"metadataTaxonomy"`
	GTDBTypeDesignation        NullString           `json:"gtdbTypeDesignation"`
	SubunitSummary             NullString           `json:"subunit_summary"`
	SpeciesRepName             NullString           `json:"speciesRepName"`
	SpeciesClusterCount        *int32               `json:"speciesClusterCount"`
	LPSNURL                    NullString           `json:"lpsnUrl"`
	LinkNCBITaxonomy           NullString           `json:"link_ncbi_taxonomy"`
	LinkNCBITaxonomyUnfiltered NullString           `json:"link_ncbi_taxonomy_unfiltered"`
	NCBITaxonomyFiltered       []TaxonLink          `json:"ncbiTaxonomyFiltered"`
	NCBITaxonomyUnfiltered     []TaxonLink          `json:"ncbiTaxonomyUnfiltered"`
}

// GenomeMetadata is the /genome/{accession}/metadata response.
type GenomeMetadata struct {
	Accession          NullString `json:"accession"`
	IsNCBISurveillance *bool      `json:"isNcbiSurveillance"`
}

// TaxonHistory is one release entry of /genome/{accession}/taxon-history.
// The endpoint returns a bare array, newest release first.
type TaxonHistory struct {
	Release NullString `json:"release"`
	Domain  NullString `json:"d"`
	Phylum  NullString `json:"p"`
	Class   NullString `json:"c"`
	Order   NullString `json:"o"`
	Family  NullString `json:"f"`
	Genus   NullString `json:"g"`
	Species NullString `json:"s"`
}
