package cmd

import (
	"github.com/jsphweid/triadex/constants"
	"github.com/jsphweid/triadex/engine"
	"github.com/jsphweid/triadex/model"
	"github.com/jsphweid/triadex/sample"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	progressionOps string
	progressionOut string
	progressionBPM float64
)

func init() {
	progressionCmd.Flags().StringVar(&progressionOps, "ops", "", "operators to apply in order, e.g. PLR")
	progressionCmd.Flags().StringVarP(&progressionOut, "out", "o", "", "write the progression to this .mid file")
	progressionCmd.Flags().Float64Var(&progressionBPM, "bpm", constants.DefaultBPM, "tempo of the written file")
	progressionCmd.MarkFlagRequired("ops")
	rootCmd.AddCommand(progressionCmd)
}

var progressionCmd = &cobra.Command{
	Use:     "progression <note> <note> <note>",
	Short:   "Chains operators starting from a triad",
	Example: "  triadex progression --ops PLR -o plr.mid 60 64 67",
	Args:    cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		start := engine.ParseNotes(args)
		out := eng.Progression(start, progressionOps)
		if err := checkOutput(out); err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		for _, step := range out.Progression {
			printNotes(w, step)
		}

		if progressionOut == "" {
			return nil
		}
		chords := append([]model.Notes{start}, out.Progression...)
		s, err := sample.Create(chords, progressionBPM)
		if err != nil {
			return err
		}
		if err := s.WriteFile(progressionOut); err != nil {
			return errors.Wrapf(err, "writing %s", progressionOut)
		}
		logger.Info("wrote progression", "path", progressionOut, "chords", len(chords))
		return nil
	},
}
