package audio

import "github.com/gopxl/beep/v2"

// sampleStreamer feeds a mono buffer to beep, duplicating it on both channels.
type sampleStreamer struct {
	samples  []float64
	position int
}

var _ beep.Streamer = (*sampleStreamer)(nil)

func newSampleStreamer(samples []float64) *sampleStreamer {
	return &sampleStreamer{samples: samples}
}

func (s *sampleStreamer) Stream(buf [][2]float64) (n int, ok bool) {
	if s.position >= len(s.samples) {
		return 0, false
	}
	for n < len(buf) && s.position < len(s.samples) {
		v := s.samples[s.position]
		buf[n][0] = v
		buf[n][1] = v
		n++
		s.position++
	}
	return n, true
}

func (s *sampleStreamer) Err() error {
	return nil
}
