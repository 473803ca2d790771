package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/hopgo"
)

func newEnergyCmd() *cobra.Command {
	var (
		weights string
		state   string
	)

	cmd := &cobra.Command{
		Use:   "energy",
		Short: "Compute the energy of a state under a trained snapshot",
		Long: `Energy evaluates the Hopfield energy function for a state. Lower is
more stable; stored patterns sit in local minima.

Example:
  hopgo energy -w weights.hop -s "1,-1,1,-1"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, name, err := snapshotStore(weights)
			if err != nil {
				return err
			}

			net, err := hopgo.NewFromSnapshot(ctx, store, name)
			if err != nil {
				return fmt.Errorf("snapshot load failed: %w", err)
			}
			defer net.Close()

			probe, err := parseState(state)
			if err != nil {
				return err
			}

			e, err := net.Energy(probe)
			if err != nil {
				return err
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return json.NewEncoder(os.Stdout).Encode(map[string]any{"energy": e})
			}

			fmt.Printf("energy: %g\n", e)

			return nil
		},
	}

	cmd.Flags().StringVarP(&weights, "weights", "w", "weights.hop", "Weight snapshot path")
	cmd.Flags().StringVarP(&state, "state", "s", "", "State, comma-separated (required)")

	_ = cmd.MarkFlagRequired("state")

	return cmd
}
