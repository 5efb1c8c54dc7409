// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play <file>",
	Short: "Play an audio file on the default output device",
	Long: `Play a WAV, AIFF, MP3 or Ogg Vorbis file on the default output device.

The decoder is chosen by file extension; files without one are read as
WAV. Samples are sent unconverted, so the file should match the device
rate and channel count.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := settings(cmd)
		if err != nil {
			return err
		}
		return cfg.Play(args[0])
	},
}
