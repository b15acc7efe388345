package audio

import "testing"

func TestSampleStreamer(t *testing.T) {
	s := newSampleStreamer([]float64{0.1, 0.2, 0.3})
	buf := make([][2]float64, 2)

	n, ok := s.Stream(buf)
	if n != 2 || !ok {
		t.Fatalf("First Stream = (%d, %v), want (2, true)", n, ok)
	}
	if buf[0] != [2]float64{0.1, 0.1} || buf[1] != [2]float64{0.2, 0.2} {
		t.Errorf("Unexpected frames: %v", buf)
	}

	n, ok = s.Stream(buf)
	if n != 1 || !ok {
		t.Fatalf("Second Stream = (%d, %v), want (1, true)", n, ok)
	}
	if buf[0] != [2]float64{0.3, 0.3} {
		t.Errorf("Unexpected frame: %v", buf[0])
	}

	n, ok = s.Stream(buf)
	if n != 0 || ok {
		t.Errorf("Drained Stream = (%d, %v), want (0, false)", n, ok)
	}
	if s.Err() != nil {
		t.Errorf("Unexpected error: %v", s.Err())
	}
}

func TestSampleStreamer_Empty(t *testing.T) {
	s := newSampleStreamer(nil)
	buf := make([][2]float64, 4)
	if n, ok := s.Stream(buf); n != 0 || ok {
		t.Errorf("Stream = (%d, %v), want (0, false)", n, ok)
	}
}
