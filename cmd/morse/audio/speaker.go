//go:build (linux && cgo) || windows || darwin

package audio

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// SpeakerAvailable reports whether this build can drive a real device.
const SpeakerAvailable = true

var (
	speakerMu          sync.Mutex
	speakerInitialized bool
	speakerRate        beep.SampleRate
)

// OpenSpeaker acquires the default output device. The speaker can only be
// initialized once per process, so later sessions at a different rate are
// resampled to the rate it was first opened with.
func OpenSpeaker(sampleRate int) (Output, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate %d", sampleRate)
	}

	speakerMu.Lock()
	defer speakerMu.Unlock()

	rate := beep.SampleRate(sampleRate)
	if !speakerInitialized {
		if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
			return nil, err
		}
		speakerInitialized = true
		speakerRate = rate
		slog.Debug("speaker initialized", "sample_rate", sampleRate)
	}

	return &speakerOutput{rate: rate, deviceRate: speakerRate}, nil
}

type speakerOutput struct {
	rate       beep.SampleRate
	deviceRate beep.SampleRate
}

func (o *speakerOutput) Play(samples []float64) error {
	if len(samples) == 0 {
		return nil
	}

	var s beep.Streamer = newSampleStreamer(samples)
	if o.rate != o.deviceRate {
		s = beep.Resample(4, o.rate, o.deviceRate, s)
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(s, beep.Callback(func() {
		close(done)
	})))
	<-done
	return nil
}

func (o *speakerOutput) Close() error {
	speaker.Clear()
	return nil
}
