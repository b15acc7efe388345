package audio

import (
	"fmt"
	"io"
	"math"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/samber/lo"
)

const (
	bitDepth  = 16
	channels  = 1
	formatPCM = 1
)

// PCM16 converts a float sample to a 16-bit value by truncating s*32767
// toward zero. Values outside the int16 range saturate; NaN becomes 0.
func PCM16(s float64) int {
	v := math.Trunc(s * math.MaxInt16)
	switch {
	case math.IsNaN(v):
		return 0
	case v > math.MaxInt16:
		return math.MaxInt16
	case v < math.MinInt16:
		return math.MinInt16
	}
	return int(v)
}

// WriteWAV writes samples to path as a mono 16-bit PCM WAV file.
// A partially written file is left in place on failure.
func WriteWAV(path string, samples []float64, sampleRate int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	if err := EncodeWAV(f, samples, sampleRate); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// EncodeWAV writes a complete WAV stream to w, fixing up the header sizes
// once all samples are written.
func EncodeWAV(w io.WriteSeeker, samples []float64, sampleRate int) error {
	enc := wav.NewEncoder(w, sampleRate, bitDepth, channels, formatPCM)

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           lo.Map(samples, func(s float64, _ int) int { return PCM16(s) }),
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("write wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("close wav encoder: %w", err)
	}
	return nil
}
