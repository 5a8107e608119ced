package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/remitstats/internal/config"
	"github.com/gyeh/remitstats/internal/exitcode"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "eraload",
	Short: "835 remittance advice parser and Postgres loader",
	Long:  "Parses ANSI X12 005010X221 835 remittance files and stages claim payment detail into Postgres via the COPY protocol.",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.DSN, "dsn", os.Getenv("REMIT_DB_URL"), "Postgres connection string (or set REMIT_DB_URL)")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitcode.UsageError)
	}
}
