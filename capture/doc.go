// SPDX-License-Identifier: EPL-2.0

// Package capture records the default input device into a file.
//
// A Recorder negotiates the device configuration, creates a writer whose
// header matches it, and hands captured frames from the device callback
// to the writer through a Sink. The callback never blocks: if the sink is
// busy or already emptied the frame is dropped and counted. Recording
// ends when WaitForStop reads StopByte from the console, after which the
// stream is closed before the writer is taken out of the sink and
// finalized.
//
//	rec := &capture.Recorder{Host: host, Console: os.Stdin, Prompt: os.Stderr}
//	if err := rec.Record("take.wav"); err != nil {
//	    // ...
//	}
//	fmt.Println(rec.Stats().DroppedFrames)
package capture
