package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jsphweid/triadex/constants"
	"github.com/jsphweid/triadex/midi"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

var (
	listenIn       string
	listenOut      string
	listenOp       string
	listenIndex    int
	listenDebounce int
)

func init() {
	listenCmd.Flags().StringVar(&listenIn, "in", constants.GetMidiIn(), "input port name (first port when empty)")
	listenCmd.Flags().StringVar(&listenOut, "out", constants.GetMidiOut(), "output port name (log only when empty)")
	listenCmd.Flags().StringVar(&listenOp, "op", "", "starting operator: P, L or R")
	listenCmd.Flags().IntVar(&listenIndex, "index", -1, "starting operator by index")
	listenCmd.Flags().IntVar(&listenDebounce, "debounce", constants.GetDebounceMillis(), "milliseconds a triad must be held before it is transformed")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Transforms triads played on a MIDI input",
	Long: `Listens to a MIDI input. Whenever exactly three keys are held the triad
is transformed with the selected operator and sent to the output port.
Program change 0, 1 or 2 on the input selects P, L or R.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		defer gomidi.CloseDriver()

		if err := selectOperator(cmd, listenOp, listenIndex); err != nil {
			return err
		}

		in, err := midi.FindInPort(listenIn)
		if err != nil {
			return err
		}

		var send func(gomidi.Message) error
		if listenOut != "" {
			out, err := midi.FindOutPort(listenOut)
			if err != nil {
				return err
			}
			send, err = gomidi.SendTo(out)
			if err != nil {
				return errors.Wrapf(err, "opening %s", out.String())
			}
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		l := midi.NewListener(eng, logger, time.Duration(listenDebounce)*time.Millisecond, send)
		return midi.Run(ctx, in, l)
	},
}
