package frontend

import (
	"encoding/binary"
	"sync/atomic"
)

// SampleRate of the beeper audio stream.
const SampleRate = 44100

const (
	bytesPerSample = 4 // 16 bit stereo
	amplitude      = 0x1800
)

// Tone is an endless 16 bit little endian stereo square-wave stream that is
// silent while disabled. Read is called from the audio goroutine.
type Tone struct {
	enabled  atomic.Bool
	period   int
	position int
}

// NewTone returns a disabled tone of the given frequency.
func NewTone(sampleRate, frequency int) *Tone {
	return &Tone{
		period: max(sampleRate/max(frequency, 1), 2),
	}
}

// SetEnabled switches the tone on or off.
func (t *Tone) SetEnabled(enabled bool) {
	t.enabled.Store(enabled)
}

// Enabled returns whether the tone is audible.
func (t *Tone) Enabled() bool {
	return t.enabled.Load()
}

// Read implements io.Reader for the audio player.
func (t *Tone) Read(p []byte) (int, error) {
	samples := len(p) / bytesPerSample
	enabled := t.enabled.Load()

	for i := range samples {
		var value int16
		if enabled {
			value = amplitude
			if t.position >= t.period/2 {
				value = -amplitude
			}
		}
		t.position = (t.position + 1) % t.period

		offset := i * bytesPerSample
		binary.LittleEndian.PutUint16(p[offset:], uint16(value))
		binary.LittleEndian.PutUint16(p[offset+2:], uint16(value))
	}

	return samples * bytesPerSample, nil
}
