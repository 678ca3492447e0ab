// SPDX-License-Identifier: EPL-2.0

package audio

// Buffer holds a fully decoded audio clip as planar float32 samples,
// one slice per channel, all of identical length. Samples are nominally
// in [-1.0, 1.0] but are not clamped on input; clamping happens only on
// PCM export.
//
// A Buffer is a read-only value once constructed. Consumers must not
// mutate the channel slices.
type Buffer struct {
	sampleRate int
	channels   [][]float32
}

// NewBuffer builds a Buffer from planar channel data. All channels must
// have the same length.
func NewBuffer(sampleRate int, channels [][]float32) (*Buffer, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if len(channels) == 0 {
		return nil, ErrNoChannels
	}

	frames := len(channels[0])
	for _, ch := range channels[1:] {
		if len(ch) != frames {
			return nil, ErrChannelLengthMismatch
		}
	}

	return &Buffer{
		sampleRate: sampleRate,
		channels:   channels,
	}, nil
}

// SampleRate of the clip in Hz.
func (b *Buffer) SampleRate() int { return b.sampleRate }

// Channels count (e.g., 1=mono, 2=stereo).
func (b *Buffer) Channels() int { return len(b.channels) }

// Frames is the number of sample instants per channel.
func (b *Buffer) Frames() int {
	if len(b.channels) == 0 {
		return 0
	}
	return len(b.channels[0])
}

// Channel returns the samples of channel ch. The returned slice is the
// buffer's backing storage and must be treated as read-only.
func (b *Buffer) Channel(ch int) []float32 { return b.channels[ch] }

// Duration of the clip in seconds.
func (b *Buffer) Duration() float64 {
	return float64(b.Frames()) / float64(b.sampleRate)
}
