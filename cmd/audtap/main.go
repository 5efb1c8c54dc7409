// SPDX-License-Identifier: EPL-2.0

// Command audtap records the default audio input to a WAV file and plays
// audio files on the default output.
//
// Usage:
//
//	audtap [flags] record <file.wav>
//	audtap [flags] play <file>
//
// Flags may also be given in a YAML file passed with --config.
package main

import (
	"fmt"
	"os"

	"github.com/ik5/audtap/cmd/audtap/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
