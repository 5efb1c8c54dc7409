// SPDX-License-Identifier: EPL-2.0

package capture

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/ik5/audtap/audio"
	"github.com/ik5/audtap/device"
	"github.com/ik5/audtap/formats/wav"
)

// CreateFunc opens the destination file for a negotiated configuration.
type CreateFunc func(path string, cfg audio.StreamConfig) (SampleWriter, error)

// CreateWAV is the default CreateFunc.
func CreateWAV(path string, cfg audio.StreamConfig) (SampleWriter, error) {
	w, err := wav.Create(path, cfg)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// Stats counts what happened to captured frames.
type Stats struct {
	Frames        int64
	DroppedFrames int64
	WriteErrors   int64
}

// Recorder captures the default input device into a file until the stop
// byte is read from Console. A Recorder must not be copied after first use.
type Recorder struct {
	Host device.Host
	// Console defaults to os.Stdin.
	Console io.Reader

	// Logger defaults to slog.Default.
	Logger *slog.Logger
	// Prompt receives the start and stop messages. Nil disables them.
	Prompt io.Writer
	// Create defaults to CreateWAV.
	Create CreateFunc

	frames  atomic.Int64
	dropped atomic.Int64
	errs    atomic.Int64
}

// Stats returns the counters of the last Record call.
func (r *Recorder) Stats() Stats {
	return Stats{
		Frames:        r.frames.Load(),
		DroppedFrames: r.dropped.Load(),
		WriteErrors:   r.errs.Load(),
	}
}

func (r *Recorder) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}

func (r *Recorder) console() io.Reader {
	if r.Console != nil {
		return r.Console
	}
	return os.Stdin
}

func (r *Recorder) prompt(msg string) {
	if r.Prompt != nil {
		fmt.Fprintln(r.Prompt, msg)
	}
}

// Record captures into path. It returns once the stop byte was read and
// the file is finalized, or with the first fatal error.
func (r *Recorder) Record(path string) error {
	log := r.logger()
	r.frames.Store(0)
	r.dropped.Store(0)
	r.errs.Store(0)

	sess, err := device.OpenInput(r.Host)
	if err != nil {
		return err
	}
	log.Info("input negotiated", "device", sess.Device.Name(), "config", sess.Config.String())

	create := r.Create
	if create == nil {
		create = CreateWAV
	}
	w, err := create(path, sess.Config)
	if err != nil {
		return fmt.Errorf("creating recording: %w", err)
	}

	sink := NewSink(w)

	stream, err := sess.Open(r.onFrame(sink), func(err error) {
		log.Warn("input stream error", "err", err)
	})
	if err != nil {
		return joinFinalize(err, sink)
	}

	if err := stream.Start(); err != nil {
		_ = stream.Close()
		return joinFinalize(fmt.Errorf("starting input stream: %w", err), sink)
	}

	r.prompt("recording... press Enter to stop.")
	waitErr := WaitForStop(r.console())

	// the callback must be gone before the writer is taken
	closeErr := stream.Close()
	if closeErr != nil {
		closeErr = fmt.Errorf("closing input stream: %w", closeErr)
	}

	finErr := finalize(sink)
	r.prompt("recording stopped.")

	st := r.Stats()
	log.Debug("capture finished",
		"path", path,
		"frames", st.Frames,
		"dropped", st.DroppedFrames,
		"write_errors", st.WriteErrors,
	)

	for _, err := range []error{waitErr, finErr, closeErr} {
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Recorder) onFrame(sink *Sink) device.FrameFunc {
	return func(frame audio.Frame) {
		r.frames.Add(1)

		ok, errs := sink.TryWrite(frame)
		if !ok {
			r.dropped.Add(1)
			return
		}
		if errs > 0 {
			r.errs.Add(int64(errs))
		}
	}
}

func finalize(sink *Sink) error {
	w, err := sink.Take()
	if err != nil {
		return fmt.Errorf("finalizing recording: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalizing recording: %w", err)
	}
	return nil
}

// joinFinalize closes the writer after a setup failure and keeps err as
// the reported cause.
func joinFinalize(err error, sink *Sink) error {
	_ = finalize(sink)
	return err
}
