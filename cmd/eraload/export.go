package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/remitstats/internal/exitcode"
	"github.com/gyeh/remitstats/internal/logging"
	"github.com/gyeh/remitstats/internal/parquetwrite"
	"github.com/gyeh/remitstats/internal/x12"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Parse an 835 file and export flattened lines to Parquet",
	RunE:  runExport,
}

func init() {
	f := exportCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to 835 remittance file (required)")
	f.StringVar(&cfg.OutputPath, "out", "", "Output Parquet path (required)")
	_ = exportCmd.MarkFlagRequired("file")
	_ = exportCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)

	content, err := os.ReadFile(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to read file")
		os.Exit(exitcode.UsageError)
	}

	remit, err := x12.Parse(string(content))
	if err != nil {
		log.Error().Err(err).Msg("parse failed")
		os.Exit(exitcode.ParseError)
	}

	n, err := parquetwrite.Export(cfg.OutputPath, remit)
	if err != nil {
		log.Error().Err(err).Msg("export failed")
		os.Exit(exitcode.ExportError)
	}

	fmt.Printf("Export complete: %d rows written to %s\n", n, cfg.OutputPath)
	return nil
}
