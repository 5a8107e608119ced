package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/remitstats/internal/exitcode"
	"github.com/gyeh/remitstats/internal/logging"
	"github.com/gyeh/remitstats/internal/x12"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check an 835 file for structural problems",
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&cfg.FilePath, "file", "", "Path to 835 remittance file (required)")
	_ = validateCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)

	content, err := os.ReadFile(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to read file")
		os.Exit(exitcode.UsageError)
	}

	problems := x12.Validate835(string(content))
	if len(problems) == 0 {
		fmt.Println("OK: no structural problems found")
		return nil
	}

	for _, p := range problems {
		fmt.Printf("problem: %s\n", p)
	}
	os.Exit(exitcode.ValidationError)
	return nil
}
