package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

func defaultPort() int {
	if port := os.Getenv("SAFETYNET_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			return p
		}
	}
	return 8080
}

// waitCmd represents the wait command
var waitCmd = &cobra.Command{
	Use:   "wait",
	Short: "Wait for the SafetyNet server to be ready",
	Long: `Wait for the SafetyNet server to be ready by polling the status endpoint.

The status endpoint is requested once per second until it answers with a
2xx status or the retries are used up.

Example:
  safetynetctl wait
  safetynetctl wait --port 3000 --retries 60`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetInt("port")
		retries, _ := cmd.Flags().GetInt("retries")

		url := fmt.Sprintf("http://localhost:%d/", port)
		if err := waitForServer(os.Stdout, url, retries, time.Second); err != nil {
			fmt.Fprintf(os.Stderr, "Server did not become ready: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(waitCmd)
	waitCmd.Flags().IntP("port", "p", defaultPort(), "Server port to check")
	waitCmd.Flags().IntP("retries", "r", 90, "Number of retries")
}

func waitForServer(w io.Writer, url string, retries int, interval time.Duration) error {
	client := &http.Client{Timeout: 2 * time.Second}

	fmt.Fprintln(w, "Waiting for SafetyNet to be ready...")

	for i := 0; i < retries; i++ {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				fmt.Fprintln(w)
				fmt.Fprintln(w, "SafetyNet is ready!")
				return nil
			}
		}

		fmt.Fprint(w, ".")
		time.Sleep(interval)
	}

	fmt.Fprintln(w)
	return fmt.Errorf("SafetyNet is not ready after %d attempts", retries)
}
