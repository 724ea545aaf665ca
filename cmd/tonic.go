package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(tonicCmd)
}

var tonicCmd = &cobra.Command{
	Use:     "tonic <chord symbol>",
	Short:   "Prints the MIDI note (C1 octave) of a chord symbol's root",
	Example: "  triadex tonic F#dim",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := eng.Tonic(strings.Join(args, " "))
		if err := checkOutput(out); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), *out.Tonic)
		return nil
	},
}
