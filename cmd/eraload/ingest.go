package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/remitstats/internal/db"
	"github.com/gyeh/remitstats/internal/exitcode"
	"github.com/gyeh/remitstats/internal/ingest"
	"github.com/gyeh/remitstats/internal/logging"
)

var configPath string

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Parse an 835 file and stage it into the database",
	RunE:  runIngest,
}

func init() {
	f := ingestCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to 835 remittance file (required)")
	f.StringVar(&configPath, "config", "", "YAML config file (adjustment group filter)")
	f.BoolVar(&cfg.Force, "force", false, "Re-import even if file SHA already exists")
	f.StringSliceVar(&cfg.AdjustmentGroups, "groups", nil, "Adjustment groups to keep (CO, PR, OA, PI, CR); empty keeps all")
	_ = ingestCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := context.Background()

	// Flag-provided groups win over the config file.
	if configPath != "" && len(cfg.AdjustmentGroups) == 0 {
		if err := cfg.LoadFromFile(configPath); err != nil {
			log.Error().Err(err).Msg("config file load failed")
			os.Exit(exitcode.UsageError)
		}
	}

	if err := cfg.ValidateWithDSN(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	pool, err := db.NewPool(ctx, cfg.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	defer pool.Close()

	summary, err := ingest.Run(ctx, pool, log, &cfg)
	if err != nil {
		if pe, ok := err.(*ingest.PipelineError); ok {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("ingest failed")
			switch pe.Phase {
			case "preflight":
				os.Exit(exitcode.ValidationError)
			case "stage":
				os.Exit(exitcode.CopyError)
			default:
				os.Exit(exitcode.ParseError)
			}
		}
		log.Error().Err(err).Msg("ingest failed")
		os.Exit(exitcode.ParseError)
	}

	fmt.Printf("Ingest complete: %d claims, %d service lines, %d adjustments staged (%.1fs)\n",
		summary.ClaimsStaged, summary.LinesStaged, summary.AdjustmentsStaged,
		summary.DurationTotal.Seconds())
	return nil
}
