// Package audio renders Morse code as sound, either live through an output
// device or into a 16-bit mono WAV file.
package audio

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/samber/lo"
)

// ErrNoDevice is returned by OpenSpeaker in builds without audio support.
var ErrNoDevice = errors.New("no audio output device available")

// DeviceError reports a failure to acquire or use an output device.
type DeviceError struct {
	Op  string
	Err error
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("audio device %s: %v", e.Op, e.Err)
}

func (e *DeviceError) Unwrap() error {
	return e.Err
}

// Output plays finite sample buffers. Play blocks until the buffer is done.
type Output interface {
	Play(samples []float64) error
	Close() error
}

// OpenFunc acquires an Output running at sampleRate.
type OpenFunc func(sampleRate int) (Output, error)

// NewBellOutput returns an OpenFunc that rings the terminal bell on w for
// every buffer holding a non-zero sample, then waits out the buffer's length.
func NewBellOutput(w io.Writer) OpenFunc {
	return func(sampleRate int) (Output, error) {
		if sampleRate <= 0 {
			return nil, fmt.Errorf("invalid sample rate %d", sampleRate)
		}
		return &bellOutput{w: w, sampleRate: sampleRate, sleep: time.Sleep}, nil
	}
}

type bellOutput struct {
	w          io.Writer
	sampleRate int
	sleep      func(time.Duration)
}

func (b *bellOutput) Play(samples []float64) error {
	audible := lo.SomeBy(samples, func(s float64) bool { return s != 0 })
	if audible {
		if _, err := io.WriteString(b.w, "\a"); err != nil {
			return err
		}
	}
	b.sleep(time.Duration(len(samples)) * time.Second / time.Duration(b.sampleRate))
	return nil
}

func (b *bellOutput) Close() error {
	return nil
}
