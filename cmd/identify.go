package cmd

import (
	"github.com/jsphweid/triadex/engine"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(identifyCmd)
}

var identifyCmd = &cobra.Command{
	Use:   "identify <note> <note> <note> [note...]",
	Short: "Names the triad in a list of MIDI notes",
	Long: `Names the first recognized triad (major, minor, diminished, augmented
or sus4) among the notes and reports its inversion, or "unknown".`,
	Example: "  triadex identify 64 67 72",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := eng.IdentifyChord(engine.ParseNotes(args))
		if err := checkOutput(out); err != nil {
			return err
		}
		printChord(cmd.OutOrStdout(), out)
		return nil
	},
}
