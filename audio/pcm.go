// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"

	"github.com/dothao2954-creator/minimaxvocx/utils"
)

// DecodePCM16 interprets data as interleaved 16-bit signed little-endian
// PCM and returns a planar Buffer at the declared sample rate.
//
// Sample frame*channels+ch of the input becomes Channel(ch)[frame]. Each
// 16-bit value v maps to float32(v)/32768. A trailing incomplete frame is
// silently dropped; TTS providers do not always emit exact channel
// multiples.
func DecodePCM16(data []byte, sampleRate, channels int) (*Buffer, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if channels <= 0 {
		return nil, ErrNoChannels
	}
	if len(data)%2 != 0 {
		return nil, ErrOddByteCount
	}

	samples := len(data) / 2
	frames := samples / channels

	planar := make([][]float32, channels)
	for ch := range planar {
		planar[ch] = make([]float32, frames)
	}

	for frame := range frames {
		base := frame * channels * 2
		for ch := range channels {
			v := int16(binary.LittleEndian.Uint16(data[base+ch*2 : base+ch*2+2]))
			planar[ch][frame] = utils.Int16ToFloat32(v)
		}
	}

	return &Buffer{
		sampleRate: sampleRate,
		channels:   planar,
	}, nil
}
