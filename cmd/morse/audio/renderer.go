package audio

import (
	"log/slog"
	"time"

	"github.com/gigurra/morseus/cmd/morse/tone"
)

// DefaultPause is the wait between symbols during playback.
const DefaultPause = 500 * time.Millisecond

// Renderer turns Morse strings into sound. Each symbol maps to a tone:
// '.' to a dot, '-' to a dash and anything else to silence.
type Renderer struct {
	tones *tone.Generator
	pause time.Duration
	open  OpenFunc
	sleep func(time.Duration)
}

// NewRenderer returns a renderer over tones that plays through the default
// speaker. A nil generator gets the default tones.
func NewRenderer(tones *tone.Generator) *Renderer {
	if tones == nil {
		tones = tone.NewGenerator()
	}
	return &Renderer{
		tones: tones,
		pause: DefaultPause,
		open:  OpenSpeaker,
		sleep: time.Sleep,
	}
}

// Tones returns the generator the renderer reads tone settings from.
func (r *Renderer) Tones() *tone.Generator {
	return r.tones
}

// SetPause sets the wait inserted after each played symbol.
func (r *Renderer) SetPause(d time.Duration) {
	r.pause = d
}

// Pause returns the wait inserted after each played symbol.
func (r *Renderer) Pause() time.Duration {
	return r.pause
}

// SetSampleRate sets the rate used for both playback and files.
func (r *Renderer) SetSampleRate(rate int) {
	r.tones.SetSampleRate(rate)
}

// SampleRate returns the configured rate.
func (r *Renderer) SampleRate() int {
	return r.tones.SampleRate()
}

// SetOutput replaces the device used by Play.
func (r *Renderer) SetOutput(open OpenFunc) {
	r.open = open
}

// Play sounds morse one symbol at a time, blocking until each tone has
// finished and then for the configured pause. One device session is held
// for the whole call.
func (r *Renderer) Play(morse string) (err error) {
	rate := r.tones.SampleRate()
	out, err := r.open(rate)
	if err != nil {
		return &DeviceError{Op: "open", Err: err}
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = &DeviceError{Op: "close", Err: cerr}
		}
	}()

	slog.Debug("playing morse", "symbols", len(morse), "sample_rate", rate, "pause", r.pause)
	for _, symbol := range morse {
		if err := out.Play(r.tones.Render(tone.KindFor(symbol))); err != nil {
			return &DeviceError{Op: "play", Err: err}
		}
		r.sleep(r.pause)
	}
	return nil
}

// Render concatenates the tone of every symbol in morse. No pause is
// inserted; gaps come only from symbols that map to silence.
func (r *Renderer) Render(morse string) []float64 {
	var samples []float64
	for _, symbol := range morse {
		samples = append(samples, r.tones.Render(tone.KindFor(symbol))...)
	}
	return samples
}

// SampleCount returns len(Render(morse)) without synthesizing any tone.
func (r *Renderer) SampleCount(morse string) int {
	n := 0
	for _, symbol := range morse {
		n += r.tones.Length(tone.KindFor(symbol))
	}
	return n
}

// RenderToFile renders morse and writes it to path as a mono 16-bit WAV
// at the configured sample rate.
func (r *Renderer) RenderToFile(morse, path string) error {
	samples := r.Render(morse)
	slog.Debug("rendering morse to file", "path", path, "samples", len(samples), "sample_rate", r.tones.SampleRate())
	return WriteWAV(path, samples, r.tones.SampleRate())
}
