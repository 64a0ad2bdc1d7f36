package cmd

import (
	"fmt"
	"os"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/apache/arrow/go/v17/parquet"
	"github.com/apache/arrow/go/v17/parquet/pqarrow"

	"github.com/Ebedthan/xgt-sub000/internal/gtdb"
)

var searchSchema = arrow.NewSchema([]arrow.Field{
	{Name: "gid", Type: arrow.BinaryTypes.String},
	{Name: "accession", Type: arrow.BinaryTypes.String},
	{Name: "ncbi_org_name", Type: arrow.BinaryTypes.String},
	{Name: "ncbi_taxonomy", Type: arrow.BinaryTypes.String},
	{Name: "gtdb_taxonomy", Type: arrow.BinaryTypes.String},
	{Name: "is_gtdb_species_rep", Type: arrow.FixedWidthTypes.Boolean},
	{Name: "is_ncbi_type_material", Type: arrow.FixedWidthTypes.Boolean},
}, nil)

// writeParquet renders search rows as a single-record Parquet file.
func writeParquet(path string, rows []gtdb.SearchRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output %s: %w", path, err)
	}

	builder := array.NewRecordBuilder(memory.DefaultAllocator, searchSchema)
	defer builder.Release()

	for _, row := range rows {
		builder.Field(0).(*array.StringBuilder).Append(row.Gid)
		builder.Field(1).(*array.StringBuilder).Append(row.Accession)
		builder.Field(2).(*array.StringBuilder).Append(row.NCBIOrgName)
		builder.Field(3).(*array.StringBuilder).Append(row.NCBITaxonomy)
		builder.Field(4).(*array.StringBuilder).Append(row.GTDBTaxonomy)
		builder.Field(5).(*array.BooleanBuilder).Append(row.IsGTDBSpeciesRep)
		builder.Field(6).(*array.BooleanBuilder).Append(row.IsNCBITypeMaterial)
	}

	record := builder.NewRecord()
	defer record.Release()

	writer, err := pqarrow.NewFileWriter(searchSchema, f, parquet.NewWriterProperties(), pqarrow.DefaultWriterProps())
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("create parquet writer: %w", err)
	}
	if err := writer.Write(record); err != nil {
		_ = writer.Close()
		_ = f.Close()
		return fmt.Errorf("write parquet: %w", err)
	}
	if err := writer.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("close parquet writer: %w", err)
	}
	return f.Close()
}
