package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hpvvs/salesops_backend/internal/dto"
	"github.com/spf13/cobra"
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record one document submission from a JSON file",
	Example: `  salesops record --file receipt.json
  cat receipt.json | salesops record --file -`,
	RunE: runRecord,
}

func init() {
	rootCmd.AddCommand(recordCmd)

	recordCmd.Flags().StringP("file", "f", "", "Path to the JSON submission, or - for stdin")
}

func runRecord(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("file")
	if path == "" {
		return errors.New("--file is required")
	}

	req, err := readSubmission(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}

	app, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}
	defer app.close()

	result, err := app.services.Payments.RecordPayment(cmd.Context(), req)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(dto.ToRecordPaymentResponse(*result, app.timeUtil))
}

func readSubmission(stdin io.Reader, path string) (dto.RecordPaymentRequest, error) {
	var req dto.RecordPaymentRequest

	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return req, fmt.Errorf("failed to open submission: %w", err)
		}
		defer f.Close()
		r = f
	}

	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return req, fmt.Errorf("failed to decode submission: %w", err)
	}
	return req, nil
}
