package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "safetynetctl",
	Short: "SafetyNet alerts server and tooling",
	Long: `Run the SafetyNet alerts server and inspect its data fixtures and
configuration.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
