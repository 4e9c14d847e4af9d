package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/safetynet/alerts/pkg/loader"
)

// dataValidateCmd represents the data validate command
var dataValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a data fixture for problems",
	Long: `Parse a data fixture and report what the server would load.

Duplicate natural keys, missing names or addresses, unparseable birthdates
and residents without a medical record are reported as warnings. Warnings do
not make the command fail; only an unreadable or malformed file does.

Example:
  safetynetctl data validate data/safetynet.json`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := validateData(os.Stdout, args[0], time.Now()); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid data fixture: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	dataCmd.AddCommand(dataValidateCmd)
}

func validateData(w io.Writer, path string, today time.Time) error {
	data, err := loader.Load(path)
	if err != nil {
		return err
	}

	report := loader.Inspect(data, today)
	printCounts(w, report)

	if len(report.Warnings) == 0 {
		fmt.Fprintln(w, "No problems found.")
		return nil
	}

	fmt.Fprintf(w, "%d warning(s):\n", len(report.Warnings))
	for _, warning := range report.Warnings {
		fmt.Fprintf(w, "  - %s\n", warning)
	}
	return nil
}
