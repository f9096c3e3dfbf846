package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "salesops",
	Short: "SalesOps payments ledger",
	Long: `salesops records invoices, receipts and credit memos into an idempotent
payments ledger and summarizes them per sales order or root appointment.

Configuration is read from the environment (and a .env file when present).
An empty PGSQL_URL selects the in-memory ledger store.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}
