package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/remitstats/internal/exitcode"
	"github.com/gyeh/remitstats/internal/logging"
	"github.com/gyeh/remitstats/internal/normalize"
	"github.com/gyeh/remitstats/internal/x12"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse an 835 file and print a payment report (no writes)",
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringVar(&cfg.FilePath, "file", "", "Path to 835 remittance file (required)")
	_ = parseCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
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

	fmt.Println("=== eraload parse ===")
	fmt.Printf("File:           %s\n", cfg.FilePath)
	fmt.Printf("Payer:          %s\n", remit.Payer.Name)
	fmt.Printf("Payee:          %s\n", remit.Payee.Name)
	fmt.Printf("Trace number:   %s\n", remit.Trace.Number)
	fmt.Printf("Payment method: %s\n", remit.Financial.PaymentMethod)
	fmt.Printf("Payment date:   %s\n", remit.Financial.PaymentDate)
	fmt.Printf("Total paid:     %s\n", normalize.FormatCents(remit.Financial.TotalPaidCents))
	fmt.Println()
	fmt.Printf("Claims:         %d (%d denied, %d paid in full, %d partial)\n",
		remit.Summary.TotalClaims, remit.Summary.ClaimsDenied,
		remit.Summary.ClaimsPaidInFull, remit.Summary.ClaimsPartiallyPaid)
	fmt.Printf("Billed:         %s\n", normalize.FormatCents(remit.Summary.BilledCents))
	fmt.Printf("Paid:           %s\n", normalize.FormatCents(remit.Summary.PaidCents))
	fmt.Printf("Patient resp:   %s\n", normalize.FormatCents(remit.Summary.PatientRespCents))
	fmt.Printf("Contractual:    %s\n", normalize.FormatCents(remit.Summary.ContractualAdjCents))
	fmt.Printf("Other adj:      %s\n", normalize.FormatCents(remit.Summary.OtherAdjCents))
	fmt.Printf("Provider adj:   %s\n", normalize.FormatCents(remit.Summary.ProviderAdjCents))

	for _, claim := range remit.Claims {
		fmt.Printf("\n  %s  status=%s  billed=%s paid=%s  lines=%d\n",
			claim.ClaimNumber, claim.Status,
			normalize.FormatCents(claim.BilledCents),
			normalize.FormatCents(claim.PaidCents),
			len(claim.Services))
	}

	return nil
}
