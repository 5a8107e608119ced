// Package parquetwrite exports parsed remittances as flat Parquet datasets
// for downstream analytics tooling.
package parquetwrite

import (
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/remitstats/internal/model"
	"github.com/gyeh/remitstats/internal/normalize"
	"github.com/gyeh/remitstats/internal/x12"
)

// Export writes one row per service line to a Parquet file at path,
// returning the number of rows written.
func Export(path string, remit *x12.Remittance) (int, error) {
	rows := normalize.ToParquetRows(remit)

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create parquet file: %w", err)
	}

	writer := parquet.NewGenericWriter[model.RemitLineRow](f)
	n, err := writer.Write(rows)
	if err != nil {
		f.Close()
		return n, fmt.Errorf("write parquet rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		f.Close()
		return n, fmt.Errorf("close parquet writer: %w", err)
	}
	if err := f.Close(); err != nil {
		return n, fmt.Errorf("close parquet file: %w", err)
	}
	return n, nil
}

// ReadAll reads every exported row back, used by tests and spot checks.
func ReadAll(path string) ([]model.RemitLineRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open parquet file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat parquet file: %w", err)
	}
	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("open parquet: %w", err)
	}

	reader := parquet.NewGenericReader[model.RemitLineRow](pf)
	defer reader.Close()

	rows := make([]model.RemitLineRow, reader.NumRows())
	if len(rows) == 0 {
		return nil, nil
	}
	if _, err := reader.Read(rows); err != nil && err != io.EOF {
		return nil, fmt.Errorf("read parquet rows: %w", err)
	}
	return rows, nil
}
