// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"testing"
)

func TestToPCM16(t *testing.T) {
	t.Parallel()

	in := []float32{0, 1, -1, 0.5, -0.5, 2, -2}
	want := []int16{0, 32767, -32767, 16383, -16383, 32767, -32767}

	got := toPCM16(in)
	if len(got) != len(want) {
		t.Fatalf("toPCM16() returned %d samples, want %d", len(got), len(want))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("toPCM16()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestDecode_InvalidInput(t *testing.T) {
	t.Parallel()

	invalidData := []byte("This is not an Ogg Vorbis stream")

	_, _, _, err := Decode(bytes.NewReader(invalidData))
	if err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}

func TestDecode_EmptyInput(t *testing.T) {
	t.Parallel()

	_, _, _, err := Decode(bytes.NewReader(nil))
	if err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}
