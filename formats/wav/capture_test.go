// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	gowav "github.com/go-audio/wav"
)

func TestCaptureWriterRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "capture.wav")
	w := NewCaptureWriter()

	if err := w.Start(path, 48000); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	first := []int16{100, -100, 200, -200}
	second := []int16{300, -300}
	if err := w.AddStereoSamples(first); err != nil {
		t.Fatalf("AddStereoSamples() error = %v", err)
	}
	if err := w.AddStereoSamples(second); err != nil {
		t.Fatalf("AddStereoSamples() error = %v", err)
	}

	if err := w.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening capture: %v", err)
	}
	defer f.Close()

	dec := gowav.NewDecoder(f)
	if !dec.IsValidFile() {
		t.Fatalf("capture is not a valid WAV file: %v", dec.Err())
	}
	if dec.SampleRate != 48000 {
		t.Errorf("sample rate = %d, want 48000", dec.SampleRate)
	}
	if dec.NumChans != 2 {
		t.Errorf("channels = %d, want 2", dec.NumChans)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("FullPCMBuffer() error = %v", err)
	}
	want := append(append([]int16{}, first...), second...)
	if len(buf.Data) != len(want) {
		t.Fatalf("decoded %d samples, want %d", len(buf.Data), len(want))
	}
	for i, s := range want {
		if buf.Data[i] != int(s) {
			t.Errorf("sample %d = %d, want %d", i, buf.Data[i], s)
		}
	}
}

func TestCaptureWriterSkipSilence(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "capture.wav")
	w := NewCaptureWriter()

	if err := w.Start(path, 32000); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	w.SetSkipSilence(true)

	if err := w.AddStereoSamples([]int16{0, 0, 0, 0}); err != nil {
		t.Fatalf("AddStereoSamples(silence) error = %v", err)
	}
	if err := w.AddStereoSamples([]int16{10, -10}); err != nil {
		t.Fatalf("AddStereoSamples() error = %v", err)
	}
	if err := w.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	dec := gowav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("FullPCMBuffer() error = %v", err)
	}
	if len(buf.Data) != 2 {
		t.Errorf("decoded %d samples, want 2 (silent buffer skipped)", len(buf.Data))
	}
}

func TestCaptureWriterLifecycleErrors(t *testing.T) {
	t.Parallel()

	w := NewCaptureWriter()

	if err := w.Stop(); !errors.Is(err, ErrNotStarted) {
		t.Errorf("Stop() before Start error = %v, want ErrNotStarted", err)
	}
	if err := w.AddStereoSamples([]int16{1, 2}); !errors.Is(err, ErrNotStarted) {
		t.Errorf("AddStereoSamples() before Start error = %v, want ErrNotStarted", err)
	}

	path := filepath.Join(t.TempDir(), "capture.wav")
	if err := w.Start(path, 48000); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := w.Start(path, 48000); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("second Start() error = %v, want ErrAlreadyStarted", err)
	}
	if err := w.AddStereoSamples([]int16{1, 2, 3}); !errors.Is(err, ErrPartialFrame) {
		t.Errorf("odd sample count error = %v, want ErrPartialFrame", err)
	}
	if err := w.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
}
