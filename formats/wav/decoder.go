package wav

import (
	"bytes"
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/dothao2954-creator/minimaxvocx/audio"
	"github.com/dothao2954-creator/minimaxvocx/utils"
)

type Decoder struct{}

// Decode parses a canonical PCM 16-bit WAV stream into a planar buffer.
// Parsing is delegated to github.com/go-audio/wav, which tolerates extra
// chunks between "fmt " and "data".
func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		// go-audio requires io.ReadSeeker
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != 1 || dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("reading PCM data: %w", err)
	}

	format := pcm.Format
	if format == nil || format.NumChannels <= 0 || format.SampleRate <= 0 {
		return nil, ErrUnsupportedWavLayout
	}

	channels := format.NumChannels
	frames := len(pcm.Data) / channels

	planar := make([][]float32, channels)
	for ch := range planar {
		planar[ch] = make([]float32, frames)
	}

	for frame := range frames {
		for ch := range channels {
			v := int16(pcm.Data[frame*channels+ch])
			planar[ch][frame] = utils.Int16ToFloat32(v)
		}
	}

	return audio.NewBuffer(format.SampleRate, planar)
}
