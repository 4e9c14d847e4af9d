package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// dataCmd represents the data command
var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Inspect data fixtures",
	Long:  `Inspect the JSON data fixtures the server loads at startup.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'data' requires a subcommand validate or show")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(dataCmd)
}
