package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/safetynet/alerts/pkg/loader"
)

// dataShowCmd represents the data show command
var dataShowCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print the number of records per collection",
	Long: `Print the number of persons, fire-station mappings and medical records
in a data fixture.

Example:
  safetynetctl data show data/safetynet.json`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := showData(os.Stdout, args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read data fixture: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	dataCmd.AddCommand(dataShowCmd)
}

func showData(w io.Writer, path string) error {
	data, err := loader.Load(path)
	if err != nil {
		return err
	}
	printCounts(w, loader.Inspect(data, time.Now()))
	return nil
}

func printCounts(w io.Writer, report loader.Report) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "persons\t%d\n", report.Persons)
	fmt.Fprintf(tw, "firestations\t%d\n", report.Firestations)
	fmt.Fprintf(tw, "medicalrecords\t%d\n", report.MedicalRecords)
	_ = tw.Flush()
}
