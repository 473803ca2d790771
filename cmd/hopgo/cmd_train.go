package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/hopgo"
	"github.com/hupe1980/hopgo/persistence"
)

func newTrainCmd() *cobra.Command {
	var (
		input       string
		output      string
		workers     int
		normalize   bool
		compression string
	)

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train a network and save its weight snapshot",
		Long: `Train builds a weight matrix from the patterns in a YAML pattern
file with the Hebbian rule and writes it as a binary snapshot.

Examples:
  hopgo train -f patterns.yaml -o weights.hop
  hopgo train -f patterns.yaml -o weights.hop --compression zstd --normalize`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			pf, err := loadPatternFile(input)
			if err != nil {
				return err
			}

			comp, err := parseCompression(compression)
			if err != nil {
				return err
			}

			net, err := hopgo.NewBuilder(pf.Dimension).
				Workers(workers).
				Normalize(normalize).
				Build()
			if err != nil {
				return err
			}
			defer net.Close()

			if err := net.Train(ctx, pf.Patterns...); err != nil {
				return fmt.Errorf("training failed: %w", err)
			}

			store, name, err := snapshotStore(output)
			if err != nil {
				return err
			}

			if err := net.SaveSnapshot(ctx, store, name,
				persistence.WithCompression(comp)); err != nil {
				return fmt.Errorf("snapshot save failed: %w", err)
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return json.NewEncoder(os.Stdout).Encode(map[string]any{
					"dimension": pf.Dimension,
					"patterns":  len(pf.Patterns),
					"snapshot":  output,
				})
			}

			fmt.Printf("trained %d patterns of dimension %d, snapshot saved to %s\n",
				len(pf.Patterns), pf.Dimension, output)

			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "file", "f", "", "Input pattern file (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "weights.hop", "Output snapshot path")
	cmd.Flags().IntVar(&workers, "workers", 0, "Worker count (0 uses all CPUs)")
	cmd.Flags().BoolVar(&normalize, "normalize", false, "Divide weights by the dimension")
	cmd.Flags().StringVar(&compression, "compression", "none", "Snapshot compression (none, zstd, lz4)")

	_ = cmd.MarkFlagRequired("file")

	return cmd
}
