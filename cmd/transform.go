package cmd

import (
	"github.com/jsphweid/triadex/engine"
	"github.com/jsphweid/triadex/neo"
	"github.com/spf13/cobra"
)

var (
	transformOp    string
	transformIndex int
)

func init() {
	transformCmd.Flags().StringVar(&transformOp, "op", "", "operator: P, L or R")
	transformCmd.Flags().IntVar(&transformIndex, "index", -1, "operator by index: 0 (P), 1 (L) or 2 (R)")
	rootCmd.AddCommand(transformCmd)
}

var transformCmd = &cobra.Command{
	Use:     "transform <note> <note> <note>",
	Short:   "Applies P, L or R to a major or minor triad",
	Example: "  triadex transform --op L 60 64 67",
	Args:    cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := selectOperator(cmd, transformOp, transformIndex); err != nil {
			return err
		}
		out := eng.TransformTriad(engine.ParseNotes(args))
		if err := checkOutput(out); err != nil {
			return err
		}
		printNotes(cmd.OutOrStdout(), out.Notes)
		return nil
	},
}

// selectOperator applies --index if it was given, then --op.
func selectOperator(cmd *cobra.Command, op string, index int) error {
	if cmd.Flags().Changed("index") {
		if err := checkOutput(eng.SelectOperator(index)); err != nil {
			return err
		}
	}
	if op == "" {
		return nil
	}
	parsed, err := neo.ParseOperator(op)
	if err != nil {
		return err
	}
	return checkOutput(eng.SelectOperator(int(parsed)))
}
