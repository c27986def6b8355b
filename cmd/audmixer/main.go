// SPDX-License-Identifier: EPL-2.0

// Command audmixer plays an audio file through the mixing engine: the
// file is decoded to PCM, streamed into the engine's streaming source at
// its native rate, resampled with rate control to the configured output
// rate, and pulled by the platform audio device. The mixed stream can
// simultaneously be captured to a WAV file.
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/ik5/audmixer/formats/wav"
	"github.com/ik5/audmixer/mixer"
	"github.com/ik5/audmixer/playback"
)

func main() {
	configPath := flag.String("config", "", "path to a viper config file")
	flag.Parse()

	loadConfig(*configPath)
	configureLogging()

	if flag.NArg() != 1 {
		slog.Error("usage: audmixer [-config file] <audio file (.wav/.mp3/.ogg/.aiff)>")
		os.Exit(2)
	}
	input := flag.Arg(0)

	pcm, rate, err := loadPCM(input)
	if err != nil {
		slog.Error("could not load input", "file", input, "err", err)
		os.Exit(1)
	}
	frames := len(pcm) / 2
	slog.Info("loaded input", "file", input, "rate", rate, "frames", frames)

	outputRate := viper.GetInt("outputrate")
	m, err := mixer.New(outputRate,
		mixer.WithCaptureSink(mixer.CaptureDiscTrack, wav.NewCaptureWriter(), outputRate),
	)
	if err != nil {
		slog.Error("could not create mixer", "outputRate", outputRate, "err", err)
		os.Exit(1)
	}
	if err := m.SetStreamingInputSampleRate(rate); err != nil {
		slog.Error("input rate rejected", "rate", rate, "err", err)
		os.Exit(1)
	}
	vol := uint8(viper.GetUint16("streamvolume"))
	m.SetStreamingVolume(vol, vol)

	if capturePath := viper.GetString("capturepath"); capturePath != "" {
		if err := m.StartCapture(mixer.CaptureDiscTrack, capturePath); err != nil {
			slog.Error("could not start capture", "path", capturePath, "err", err)
			os.Exit(1)
		}
		defer func() {
			if err := m.StopCapture(mixer.CaptureDiscTrack); err != nil {
				slog.Warn("could not stop capture", "err", err)
			}
		}()
	}

	player, err := playback.NewPlayer(outputRate)
	if err != nil {
		slog.Error("could not open audio device", "err", err)
		os.Exit(1)
	}
	defer player.Close()

	player.Attach(m)
	player.Start()
	slog.Info("playing", "outputRate", outputRate)

	// Feed the streaming source in real-time sized chunks; the engine's
	// rate control absorbs the pacing jitter.
	chunk := viper.GetInt("chunkframes")
	chunkDuration := time.Duration(chunk) * time.Second / time.Duration(rate)
	for pos := 0; pos < frames; pos += chunk {
		end := min(pos+chunk, frames)
		m.PushStreamingSamples(pcm[pos*2 : end*2])
		time.Sleep(chunkDuration)
	}

	// Drain what is still buffered before tearing the device down.
	for m.AvailableOutputFrames() > 0 {
		time.Sleep(10 * time.Millisecond)
	}
	time.Sleep(100 * time.Millisecond)
	player.Stop()
	slog.Info("done")
}
