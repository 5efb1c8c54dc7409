// SPDX-License-Identifier: EPL-2.0

package audtap

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/ik5/audtap/capture"
	"github.com/ik5/audtap/device"
	"github.com/ik5/audtap/device/pahost"
	"github.com/ik5/audtap/device/simhost"
	"github.com/ik5/audtap/playback"
)

// Host names accepted by OpenHost.
const (
	HostPortAudio = "pa"
	HostSimulated = "sim"
)

// OpenHost opens the named host. An empty name selects PortAudio.
func OpenHost(name string, framesPerBuffer int) (device.Host, error) {
	switch name {
	case "", HostPortAudio:
		h, err := pahost.New(pahost.Options{FramesPerBuffer: framesPerBuffer})
		if err != nil {
			return nil, err
		}
		return h, nil
	case HostSimulated:
		return simhost.New(simhost.Options{FramesPerBuffer: framesPerBuffer}), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownHost, name)
}

// Config holds the settings of Record and Play. The zero value uses
// PortAudio, stdin and stderr.
type Config struct {
	Host            string
	FramesPerBuffer int
	Wait            playback.WaitMode

	Logger  *slog.Logger
	Console io.Reader // stdin
	Prompt  io.Writer // stderr
}

// Record captures the default input into path until Enter is pressed.
func Record(path string) error { return Config{}.Record(path) }

// Play plays path on the default output.
func Play(path string) error { return Config{}.Play(path) }

// Record captures the default input into path until the console yields
// the stop byte.
func (c Config) Record(path string) error {
	host, err := OpenHost(c.Host, c.FramesPerBuffer)
	if err != nil {
		return err
	}
	defer closeHost(host, c.Logger)

	console := c.Console
	if console == nil {
		console = os.Stdin
	}
	prompt := c.Prompt
	if prompt == nil {
		prompt = os.Stderr
	}

	restore, raw, err := rawConsole(console)
	if err != nil {
		return err
	}
	defer restore()

	rec := &capture.Recorder{
		Host:    host,
		Console: console,
		Logger:  c.Logger,
		Prompt:  promptWriter(prompt, raw),
	}
	return rec.Record(path)
}

// Play plays path on the default output device.
func (c Config) Play(path string) error {
	host, err := OpenHost(c.Host, c.FramesPerBuffer)
	if err != nil {
		return err
	}
	defer closeHost(host, c.Logger)

	p := &playback.Player{
		Host:   host,
		Logger: c.Logger,
		Wait:   c.Wait,
	}
	return p.Play(path)
}

func closeHost(host device.Host, log *slog.Logger) {
	if err := host.Close(); err != nil {
		if log == nil {
			log = slog.Default()
		}
		log.Warn("closing audio host", "err", err)
	}
}

// rawConsole switches console to raw mode when it is a terminal. It
// returns the function restoring it and whether raw mode was entered.
func rawConsole(console io.Reader) (func(), bool, error) {
	f, ok := console.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		return func() {}, false, nil
	}

	fd := int(f.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, false, fmt.Errorf("switching console to raw mode: %w", err)
	}
	return func() { _ = term.Restore(fd, state) }, true, nil
}

func promptWriter(w io.Writer, raw bool) io.Writer {
	if raw {
		return newlineWriter{w}
	}
	return w
}

// newlineWriter turns "\n" into "\r\n" so prompts stay aligned while the
// terminal is in raw mode.
type newlineWriter struct{ w io.Writer }

func (n newlineWriter) Write(p []byte) (int, error) {
	out := make([]byte, 0, len(p)+1)
	for _, b := range p {
		if b == '\n' {
			out = append(out, '\r')
		}
		out = append(out, b)
	}
	if _, err := n.w.Write(out); err != nil {
		return 0, err
	}
	return len(p), nil
}
