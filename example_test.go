// SPDX-License-Identifier: EPL-2.0

package audmixer_test

import (
	"fmt"

	audmixer "github.com/ik5/audmixer"
	"github.com/ik5/audmixer/internal/audiotest"
)

// Render two sources recorded at different rates into a single
// 48 kHz stereo stream.
func ExampleMixDown() {
	dma := &audmixer.Track{
		Samples: audiotest.SinePCM16(32000, 3200, 440.0, 0.25),
		Rate:    32000,
	}
	streaming := &audmixer.Track{
		Samples: audiotest.SinePCM16(48000, 4800, 880.0, 0.25),
		Rate:    48000,
	}

	out, err := audmixer.MixDown(48000, dma, streaming, 4800)
	if err != nil {
		fmt.Println("mix down failed:", err)
		return
	}

	fmt.Println("frames:", len(out)/2)
	// Output:
	// frames: 4800
}
