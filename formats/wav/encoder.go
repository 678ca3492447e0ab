// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/dothao2954-creator/minimaxvocx/audio"
	"github.com/dothao2954-creator/minimaxvocx/utils"
)

const headerSize = 44

// encoder writes little-endian fields into a preallocated byte slice,
// advancing a cursor. Keeping the position explicit here instead of in
// closures keeps the header layout auditable against the canonical
// 44-byte table.
type encoder struct {
	out []byte
	pos int
}

func (e *encoder) writeString(s string) {
	copy(e.out[e.pos:], s)
	e.pos += len(s)
}

func (e *encoder) writeU16(v uint16) {
	binary.LittleEndian.PutUint16(e.out[e.pos:e.pos+2], v)
	e.pos += 2
}

func (e *encoder) writeU32(v uint32) {
	binary.LittleEndian.PutUint32(e.out[e.pos:e.pos+4], v)
	e.pos += 4
}

// Encode serializes the first frameLimit frames of buf into a canonical
// RIFF/WAVE byte stream: 44-byte header, PCM 16-bit little-endian data,
// channels interleaved per frame.
//
// Samples are clamped to [-1, 1] and quantized with the asymmetric scale
// of utils.Float32ToInt16, mirroring audio.DecodePCM16 so that a
// round-trip stays within one quantization step.
//
// frameLimit must be in [0, buf.Frames()].
func Encode(buf *audio.Buffer, frameLimit int) ([]byte, error) {
	if frameLimit < 0 || frameLimit > buf.Frames() {
		return nil, ErrFrameLimitOutOfRange
	}

	channels := buf.Channels()
	sampleRate := buf.SampleRate()
	dataSize := frameLimit * channels * 2
	total := headerSize + dataSize

	e := &encoder{out: make([]byte, total)}

	// RIFF header
	e.writeString("RIFF")
	e.writeU32(uint32(total - 8))
	e.writeString("WAVE")

	// fmt chunk
	e.writeString("fmt ")
	e.writeU32(16) // PCM fmt chunk size
	e.writeU16(1)  // PCM format
	e.writeU16(uint16(channels))
	e.writeU32(uint32(sampleRate))
	e.writeU32(uint32(sampleRate * 2 * channels)) // byte rate
	e.writeU16(uint16(channels * 2))              // block align
	e.writeU16(16)                                // bits per sample

	// data chunk
	e.writeString("data")
	e.writeU32(uint32(dataSize))

	for frame := range frameLimit {
		for ch := range channels {
			s := utils.Float32ToInt16(buf.Channel(ch)[frame])
			e.writeU16(uint16(s))
		}
	}

	return e.out, nil
}

// Write encodes buf as a canonical WAV stream and writes it to w.
func Write(w io.Writer, buf *audio.Buffer, frameLimit int) error {
	data, err := Encode(buf, frameLimit)
	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
