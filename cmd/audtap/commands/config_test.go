// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/ik5/audtap/playback"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "audtap.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		want    Config
		wantErr bool
	}{
		{
			name: "all keys",
			body: "host: sim\nframes_per_buffer: 512\nwait: drained\nverbose: true\n",
			want: Config{Host: "sim", FramesPerBuffer: 512, Wait: "drained", Verbose: true},
		},
		{
			name: "partial",
			body: "wait: estimate\n",
			want: Config{Wait: "estimate"},
		},
		{
			name: "empty",
			body: "",
		},
		{
			name:    "unknown key",
			body:    "hots: sim\n",
			wantErr: true,
		},
		{
			name:    "wrong type",
			body:    "frames_per_buffer: lots\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := LoadConfig(writeConfig(t, tt.body))
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && *got != tt.want {
				t.Errorf("LoadConfig() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	t.Parallel()

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "none.yaml")); err == nil {
		t.Error("LoadConfig() of a missing file succeeded")
	}
}

// newFlagCmd mirrors the persistent flags of rootCmd on a throwaway command.
func newFlagCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringVar(&hostName, "host", "pa", "")
	cmd.Flags().IntVar(&framesPerBuffer, "frames-per-buffer", 0, "")
	cmd.Flags().StringVar(&waitMode, "wait", "estimate", "")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "")
	return cmd
}

// The settings tests share the package-level flag variables, so they do
// not run in parallel.
func TestSettings_FileFillsUnsetFlags(t *testing.T) {
	configFile = writeConfig(t, "host: sim\nframes_per_buffer: 128\nwait: drained\n")
	defer func() { configFile = "" }()

	cmd := newFlagCmd()
	if err := cmd.ParseFlags(nil); err != nil {
		t.Fatal(err)
	}

	cfg, err := settings(cmd)
	if err != nil {
		t.Fatalf("settings() error = %v", err)
	}
	if cfg.Host != "sim" || cfg.FramesPerBuffer != 128 || cfg.Wait != playback.WaitDrained {
		t.Errorf("settings() = %+v, want file values", cfg)
	}
}

func TestSettings_FlagsWin(t *testing.T) {
	configFile = writeConfig(t, "host: sim\nframes_per_buffer: 128\nwait: drained\n")
	defer func() { configFile = "" }()

	cmd := newFlagCmd()
	if err := cmd.ParseFlags([]string{"--host", "pa", "--frames-per-buffer", "64", "--wait", "estimate"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := settings(cmd)
	if err != nil {
		t.Fatalf("settings() error = %v", err)
	}
	if cfg.Host != "pa" || cfg.FramesPerBuffer != 64 || cfg.Wait != playback.WaitEstimate {
		t.Errorf("settings() = %+v, want flag values", cfg)
	}
}

func TestSettings_BadWait(t *testing.T) {
	cmd := newFlagCmd()
	if err := cmd.ParseFlags([]string{"--wait", "never"}); err != nil {
		t.Fatal(err)
	}

	if _, err := settings(cmd); err == nil {
		t.Error("settings() accepted an unknown wait mode")
	}
}
