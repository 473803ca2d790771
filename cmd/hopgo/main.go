package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hopgo",
		Short: "Hopfield associative memory toolkit",
		Long: `hopgo trains Hopfield networks on bipolar patterns, relaxes noisy
probes back to stored patterns, and manages weight-matrix snapshots.

Pattern sets are described in YAML files; trained weights are stored as
binary snapshots.`,
	}

	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")

	rootCmd.AddCommand(
		newVersionCmd(),
		newGenerateCmd(),
		newTrainCmd(),
		newRecallCmd(),
		newEnergyCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				json.NewEncoder(os.Stdout).Encode(map[string]string{
					"version": version,
					"commit":  commit,
					"date":    date,
				})
			} else {
				fmt.Printf("hopgo version %s (commit: %s, built: %s)\n", version, commit, date)
			}
		},
	}
}
