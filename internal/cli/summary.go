package cli

import (
	"encoding/json"

	"github.com/hpvvs/salesops_backend/internal/dto"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the payments summary of a sales order or root appointment",
	Example: `  salesops summary --so-number SO-1001
  salesops summary --root-appt-id HP-ROOT-1 --so-number SO-1001`,
	RunE: runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)

	summaryCmd.Flags().String("root-appt-id", "", "Root appointment ID")
	summaryCmd.Flags().String("so-number", "", "Sales order number")
}

func runSummary(cmd *cobra.Command, args []string) error {
	rootApptID, _ := cmd.Flags().GetString("root-appt-id")
	soNumber, _ := cmd.Flags().GetString("so-number")

	app, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}
	defer app.close()

	summary, err := app.services.Payments.SummarizePayments(cmd.Context(), rootApptID, soNumber)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(dto.ToPaymentsSummaryResponse(*summary, app.timeUtil))
}
