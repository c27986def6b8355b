// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"os"
	"sync"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// CaptureWriter streams 16-bit stereo PCM into a WAV file. It implements
// the mixing engine's capture sink contract: Start opens the file, every
// AddStereoSamples call appends one mixed buffer, Stop finalizes the RIFF
// header. With skip-silence enabled, all-zero buffers are not written.
//
// It uses the github.com/go-audio/wav encoder, which patches the header
// sizes on Close.
type CaptureWriter struct {
	mu sync.Mutex

	file        *os.File
	enc         *gowav.Encoder
	skipSilence bool

	// Reused int conversion buffer for the encoder.
	ints []int
}

// NewCaptureWriter returns a writer with no file open yet.
func NewCaptureWriter() *CaptureWriter {
	return &CaptureWriter{}
}

// Start creates path and prepares a stereo 16-bit encoder at sampleRate.
func (w *CaptureWriter) Start(path string, sampleRate int) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.enc != nil {
		return ErrAlreadyStarted
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	w.file = f
	w.enc = gowav.NewEncoder(f, sampleRate, 16, 2, 1)
	return nil
}

// Stop finalizes the WAV header and closes the file.
func (w *CaptureWriter) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.enc == nil {
		return ErrNotStarted
	}

	encErr := w.enc.Close()
	closeErr := w.file.Close()
	w.enc = nil
	w.file = nil

	if encErr != nil {
		return fmt.Errorf("%w", encErr)
	}
	if closeErr != nil {
		return fmt.Errorf("%w", closeErr)
	}
	return nil
}

// SetSkipSilence controls whether all-zero buffers are dropped.
func (w *CaptureWriter) SetSkipSilence(skip bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.skipSilence = skip
}

// AddStereoSamples appends one buffer of interleaved stereo int16 PCM.
func (w *CaptureWriter) AddStereoSamples(samples []int16) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.enc == nil {
		return ErrNotStarted
	}
	if len(samples)%2 != 0 {
		return ErrPartialFrame
	}
	if len(samples) == 0 {
		return nil
	}
	if w.skipSilence && allZero(samples) {
		return nil
	}

	if cap(w.ints) < len(samples) {
		w.ints = make([]int, len(samples))
	}
	w.ints = w.ints[:len(samples)]
	for i, s := range samples {
		w.ints[i] = int(s)
	}

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: 2,
			SampleRate:  w.enc.SampleRate,
		},
		Data:           w.ints,
		SourceBitDepth: 16,
	}
	if err := w.enc.Write(buf); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func allZero(samples []int16) bool {
	for _, s := range samples {
		if s != 0 {
			return false
		}
	}
	return true
}
