//go:build !((linux && cgo) || windows || darwin)

package audio

// SpeakerAvailable reports whether this build can drive a real device.
// Audio on Linux requires CGO for the native sound libraries.
const SpeakerAvailable = false

// OpenSpeaker always fails with ErrNoDevice in this build.
func OpenSpeaker(sampleRate int) (Output, error) {
	return nil, ErrNoDevice
}
