package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/hopgo"
)

func newRecallCmd() *cobra.Command {
	var (
		weights  string
		state    string
		file     string
		mode     string
		order    string
		maxIter  int
		seed     int64
		workers  int
		trace bool
	)

	cmd := &cobra.Command{
		Use:   "recall",
		Short: "Relax probe states against a trained snapshot",
		Long: `Recall loads a weight snapshot and relaxes one or more probe states
to their nearest stored pattern. A single probe is given with --state; a
whole pattern file of probes with --file.

Examples:
  hopgo recall -w weights.hop -s "1,-1,1,-1"
  hopgo recall -w weights.hop -f probes.yaml --mode async --order random --seed 42
  hopgo recall -w weights.hop -s "1,-1,1,-1" --trace --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if (state == "") == (file == "") {
				return errors.New("exactly one of --state and --file is required")
			}

			store, name, err := snapshotStore(weights)
			if err != nil {
				return err
			}

			net, err := hopgo.NewFromSnapshot(ctx, store, name, hopgo.WithWorkers(workers))
			if err != nil {
				return fmt.Errorf("snapshot load failed: %w", err)
			}
			defer net.Close()

			jsonOut, _ := cmd.Flags().GetBool("json")

			if state != "" {
				probe, err := parseState(state)
				if err != nil {
					return err
				}

				rb := net.Recall(probe).MaxIterations(maxIter).Seed(seed)
				if err := applyMode(rb, mode, order); err != nil {
					return err
				}
				if trace {
					rb = rb.Trace()
				}

				result, err := rb.Execute(ctx)
				if err != nil {
					return err
				}

				return printResult(jsonOut, result)
			}

			pf, err := loadPatternFile(file)
			if err != nil {
				return err
			}
			if pf.Dimension != net.Dimension() {
				return fmt.Errorf("probe dimension %d does not match snapshot dimension %d",
					pf.Dimension, net.Dimension())
			}

			bb := net.BatchRecall(pf.Patterns).MaxIterations(maxIter).Seed(seed)
			if err := applyBatchMode(bb, mode, order); err != nil {
				return err
			}

			result := bb.Execute(ctx)

			return printBatchResult(jsonOut, result)
		},
	}

	cmd.Flags().StringVarP(&weights, "weights", "w", "weights.hop", "Weight snapshot path")
	cmd.Flags().StringVarP(&state, "state", "s", "", "Probe state, comma-separated (e.g. \"1,-1,1,-1\")")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Pattern file with probe states")
	cmd.Flags().StringVar(&mode, "mode", "sync", "Update mode (sync, async, async-blocked)")
	cmd.Flags().StringVar(&order, "order", "sequential", "Async sweep order (sequential, random)")
	cmd.Flags().IntVar(&maxIter, "max-iterations", 0, "Iteration cap (0 uses the default)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Sweep seed (0 picks a random seed)")
	cmd.Flags().IntVar(&workers, "workers", 0, "Worker count (0 uses all CPUs)")
	cmd.Flags().BoolVar(&trace, "trace", false, "Record per-step energies")

	return cmd
}

func applyMode(rb *hopgo.RecallBuilder, mode, order string) error {
	switch mode {
	case "sync":
		rb.Sync()
	case "async":
		rb.Async()
	case "async-blocked":
		rb.AsyncBlocked()
	default:
		return fmt.Errorf("unknown mode %q (want sync, async or async-blocked)", mode)
	}

	switch order {
	case "sequential":
		rb.Sequential()
	case "random":
		rb.RandomPerSweep()
	default:
		return fmt.Errorf("unknown order %q (want sequential or random)", order)
	}

	return nil
}

func applyBatchMode(bb *hopgo.BatchRecallBuilder, mode, order string) error {
	switch mode {
	case "sync":
		bb.Sync()
	case "async":
		bb.Async()
	case "async-blocked":
		bb.AsyncBlocked()
	default:
		return fmt.Errorf("unknown mode %q (want sync, async or async-blocked)", mode)
	}

	switch order {
	case "sequential":
		bb.Sequential()
	case "random":
		bb.RandomPerSweep()
	default:
		return fmt.Errorf("unknown order %q (want sequential or random)", order)
	}

	return nil
}

func printResult(jsonOut bool, result *hopgo.RecallResult) error {
	if jsonOut {
		out := map[string]any{
			"state":     result.State,
			"steps":     result.Steps,
			"converged": result.Converged,
			"energy":    result.Energy,
		}
		if result.Trace != nil {
			energies := make([]float64, len(result.Trace))
			flips := make([]int, len(result.Trace))
			for i, st := range result.Trace {
				energies[i] = st.Energy
				flips[i] = st.FlipCount()
			}
			out["trace_energies"] = energies
			out["trace_flips"] = flips
		}

		return json.NewEncoder(os.Stdout).Encode(out)
	}

	fmt.Printf("state:     %v\n", result.State)
	fmt.Printf("steps:     %d\n", result.Steps)
	fmt.Printf("converged: %t\n", result.Converged)
	fmt.Printf("energy:    %g\n", result.Energy)

	for _, st := range result.Trace {
		fmt.Printf("  step %d: energy=%g flips=%d\n", st.Step, st.Energy, st.FlipCount())
	}

	return nil
}

func printBatchResult(jsonOut bool, result *hopgo.BatchRecallResult) error {
	if jsonOut {
		items := make([]map[string]any, len(result.Results))
		for i, r := range result.Results {
			if result.Errors[i] != nil {
				items[i] = map[string]any{"error": result.Errors[i].Error()}
				continue
			}
			items[i] = map[string]any{
				"state":     r.State,
				"steps":     r.Steps,
				"converged": r.Converged,
				"energy":    r.Energy,
			}
		}

		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"results": items,
			"failed":  result.Failed(),
		})
	}

	for i, r := range result.Results {
		if result.Errors[i] != nil {
			fmt.Printf("probe %d: error: %v\n", i, result.Errors[i])
			continue
		}
		fmt.Printf("probe %d: %v (steps=%d converged=%t energy=%g)\n",
			i, r.State, r.Steps, r.Converged, r.Energy)
	}

	if failed := result.Failed(); failed > 0 {
		fmt.Printf("%d of %d probes failed\n", failed, len(result.Results))
	}

	return nil
}
