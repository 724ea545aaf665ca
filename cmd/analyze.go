package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/jsphweid/triadex/chord"
	"github.com/jsphweid/triadex/constants"
	"github.com/jsphweid/triadex/midi"
	"github.com/jsphweid/triadex/util"
	"github.com/spf13/cobra"
)

var (
	analyzeAll bool
	analyzeMax int
)

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeAll, "all", false, "also print chords that could not be named")
	analyzeCmd.Flags().IntVar(&analyzeMax, "max", 0, "maximum number of files to read from a directory (0 for all)")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file.mid|dir>",
	Short: "Names the triads in MIDI files",
	Long: `Reads standard MIDI files, collects every moment where three or more
notes sound together and names it. Directories are searched for .mid and
.midi files.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := util.GatherAllMidiPaths(args[0], analyzeMax)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		for i, path := range paths {
			if len(paths) > 1 {
				fmt.Fprintln(w, nameStyle.Render(path))
			}
			if err := analyzeFile(w, path); err != nil {
				logger.Warn("skipping file", "path", path, "n", i+1, "of", len(paths), "err", err)
			}
		}
		return nil
	},
}

func analyzeFile(w io.Writer, path string) error {
	chords, err := midi.ReadChords(path, constants.TriadSize)
	if err != nil {
		return err
	}

	var prevKey string
	var named int
	for _, c := range chords {
		key := chord.CreateChordKey(c.Notes)
		if key == prevKey {
			continue
		}
		prevKey = key

		out := eng.IdentifyChord(c.Notes)
		if out.Failed() || (out.Chord == nil && !analyzeAll) {
			continue
		}
		if out.Chord != nil {
			named++
		}
		at := time.Duration(c.Offset) * time.Microsecond
		fmt.Fprintf(w, "%s  ", faintStyle.Render(fmt.Sprintf("%10s", at.Round(time.Millisecond))))
		printChord(w, out)
	}
	logger.Info("analyzed", "path", path, "simultaneities", len(chords), "named", named)
	return nil
}
