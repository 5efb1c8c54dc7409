// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ik5/audtap"
	"github.com/ik5/audtap/playback"
)

var (
	// Global flags
	configFile      string
	hostName        string
	framesPerBuffer int
	waitMode        string
	verbose         bool
)

var rootCmd = &cobra.Command{
	Use:   "audtap",
	Short: "Record from and play to the default audio devices",
	Long: `audtap - capture the default input to WAV and play files on the default output.

The device configuration is negotiated automatically: the first
configuration the device reports, at its highest sample rate.

Examples:
  # Record until Enter is pressed
  audtap record take.wav

  # Play it back, waiting for the buffer to drain
  audtap --wait drained play take.wav

  # Run without audio hardware
  audtap --host sim record /tmp/sine.wav`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&hostName, "host", audtap.HostPortAudio, "audio host: pa or sim")
	rootCmd.PersistentFlags().IntVar(&framesPerBuffer, "frames-per-buffer", 0, "frames per callback (0 lets the host choose)")
	rootCmd.PersistentFlags().StringVar(&waitMode, "wait", "estimate", "playback wait policy: estimate or drained")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(recordCmd, playCmd)
}

// settings merges the config file with the flags. Flags set on the
// command line win.
func settings(cmd *cobra.Command) (audtap.Config, error) {
	var file Config
	if configFile != "" {
		loaded, err := LoadConfig(configFile)
		if err != nil {
			return audtap.Config{}, err
		}
		file = *loaded
	}

	flags := cmd.Flags()
	pick := func(name, flagVal, fileVal string) string {
		if !flags.Changed(name) && fileVal != "" {
			return fileVal
		}
		return flagVal
	}

	host := pick("host", hostName, file.Host)
	wait := pick("wait", waitMode, file.Wait)

	fpb := framesPerBuffer
	if !flags.Changed("frames-per-buffer") && file.FramesPerBuffer > 0 {
		fpb = file.FramesPerBuffer
	}

	mode, err := playback.ParseWaitMode(wait)
	if err != nil {
		return audtap.Config{}, err
	}

	level := slog.LevelInfo
	if verbose || (!flags.Changed("verbose") && file.Verbose) {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	return audtap.Config{
		Host:            host,
		FramesPerBuffer: fpb,
		Wait:            mode,
		Logger:          logger,
	}, nil
}
