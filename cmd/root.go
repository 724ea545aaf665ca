package cmd

import (
	"log/slog"
	"os"

	"github.com/jsphweid/triadex/constants"
	"github.com/jsphweid/triadex/engine"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	logger   *slog.Logger
	eng      *engine.Engine
)

var rootCmd = &cobra.Command{
	Use:   "triadex",
	Short: "Triad identification and Neo-Riemannian transforms",
	Long: `triadex names three-note chords (root, quality, inversion) and moves
them around with the Neo-Riemannian P, L and R operators, keeping the
voices as close to where they were as possible.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(logLevel)
		if err != nil {
			return err
		}
		logger = l
		eng = engine.New(logger)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", constants.GetLogLevel(), "debug, info, warn or error")
}

func newLogger(level string) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrapf(err, "bad log level %q", level)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})), nil
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
