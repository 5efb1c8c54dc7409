// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"github.com/spf13/cobra"
)

var recordCmd = &cobra.Command{
	Use:   "record <file.wav>",
	Short: "Record the default input device until Enter is pressed",
	Long: `Record the default input device into a WAV file.

The file uses the negotiated device format: 32-bit float for float
devices, 16-bit PCM for integer devices. Press Enter to stop.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := settings(cmd)
		if err != nil {
			return err
		}
		cfg.Prompt = cmd.ErrOrStderr()
		return cfg.Record(args[0])
	},
}
