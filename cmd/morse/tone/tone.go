// Package tone synthesizes the sample buffers used to sound out Morse code.
package tone

import (
	"fmt"
	"math"
	"time"
)

// DefaultSampleRate is the rate used when none is configured.
const DefaultSampleRate = 44100

// Kind is one of the three synthesizable signals.
type Kind int

const (
	Dot Kind = iota
	Dash
	Silence
)

func (k Kind) String() string {
	switch k {
	case Dot:
		return "dot"
	case Dash:
		return "dash"
	case Silence:
		return "silence"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// KindFor maps a Morse symbol to the tone that sounds it.
// Anything other than '.' or '-' is silence, including '/' and ' '.
func KindFor(symbol rune) Kind {
	switch symbol {
	case '.':
		return Dot
	case '-':
		return Dash
	default:
		return Silence
	}
}

// Spec describes one tone.
type Spec struct {
	Frequency float64       // Hz
	Duration  time.Duration // length of the tone
	Amplitude float64       // 0.0 to 1.0
}

// Defaults for each kind. Silence is a 0 Hz sine, which still goes through
// amplitude scaling like the other tones.
var (
	DefaultDot     = Spec{Frequency: 329.63, Duration: 500 * time.Millisecond, Amplitude: 0.20}
	DefaultDash    = Spec{Frequency: 392.0, Duration: time.Second, Amplitude: 0.20}
	DefaultSilence = Spec{Frequency: 0, Duration: time.Second, Amplitude: 0.20}
)

// Generator holds the tone configuration and renders sample buffers from it.
// Buffers are computed on every call; nothing is cached between calls.
type Generator struct {
	specs      [3]Spec
	sampleRate int
}

// NewGenerator returns a generator with the default tones at DefaultSampleRate.
func NewGenerator() *Generator {
	return &Generator{
		specs:      [3]Spec{DefaultDot, DefaultDash, DefaultSilence},
		sampleRate: DefaultSampleRate,
	}
}

// SetTone replaces the configuration for kind.
func (g *Generator) SetTone(kind Kind, spec Spec) {
	g.specs[g.index(kind)] = spec
}

// Tone returns the configuration for kind.
func (g *Generator) Tone(kind Kind) Spec {
	return g.specs[g.index(kind)]
}

// SetDot, SetDash and SetSilence are shorthands for SetTone.
func (g *Generator) SetDot(frequency float64, duration time.Duration, amplitude float64) {
	g.SetTone(Dot, Spec{Frequency: frequency, Duration: duration, Amplitude: amplitude})
}

func (g *Generator) SetDash(frequency float64, duration time.Duration, amplitude float64) {
	g.SetTone(Dash, Spec{Frequency: frequency, Duration: duration, Amplitude: amplitude})
}

func (g *Generator) SetSilence(frequency float64, duration time.Duration, amplitude float64) {
	g.SetTone(Silence, Spec{Frequency: frequency, Duration: duration, Amplitude: amplitude})
}

// SetSampleRate changes the rate used by subsequent renders.
func (g *Generator) SetSampleRate(rate int) {
	g.sampleRate = rate
}

// SampleRate returns the configured rate in Hz.
func (g *Generator) SampleRate() int {
	return g.sampleRate
}

// Render synthesizes the buffer for kind.
func (g *Generator) Render(kind Kind) []float64 {
	return Synthesize(g.Tone(kind), g.sampleRate)
}

// Length returns how many samples Render(kind) produces, without synthesizing them.
func (g *Generator) Length(kind Kind) int {
	return SampleCount(g.Tone(kind).Duration, g.sampleRate)
}

// SampleCount returns how many samples a tone of duration d spans at rate.
// The count is computed in integer nanoseconds so exact durations such as
// 700ms give exactly duration*rate samples.
func SampleCount(d time.Duration, rate int) int {
	if d <= 0 || rate <= 0 {
		return 0
	}
	return int(int64(d) * int64(rate) / int64(time.Second))
}

// Synthesize renders amplitude * sin(2*pi*f*t) for t in [0, duration).
func Synthesize(spec Spec, rate int) []float64 {
	n := SampleCount(spec.Duration, rate)
	samples := make([]float64, n)
	for i := range samples {
		t := float64(i) / float64(rate)
		samples[i] = spec.Amplitude * math.Sin(2*math.Pi*spec.Frequency*t)
	}
	return samples
}

func (g *Generator) index(kind Kind) int {
	if kind < Dot || kind > Silence {
		panic(fmt.Sprintf("tone: unknown kind %d", int(kind)))
	}
	return int(kind)
}
