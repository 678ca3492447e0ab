// SPDX-License-Identifier: EPL-2.0

package minimaxvocx

import (
	"github.com/dothao2954-creator/minimaxvocx/analysis"
	"github.com/dothao2954-creator/minimaxvocx/audio"
	"github.com/dothao2954-creator/minimaxvocx/formats/wav"
	"github.com/dothao2954-creator/minimaxvocx/utils"
)

// Default transport format for synthesized and reference audio payloads.
const (
	DefaultSampleRate = 24000
	DefaultChannels   = 1
)

// DecodeReference decodes a base64-encoded 16-bit PCM payload into an
// audio buffer.
//
// The payload must be plain base64 with no "data:...;base64," prefix;
// callers strip any data-URL framing before this boundary. Pass
// DefaultSampleRate and DefaultChannels unless the provider declares
// otherwise.
func DecodeReference(base64PCM string, sampleRate, channels int) (*audio.Buffer, error) {
	raw, err := utils.DecodeBase64(base64PCM)
	if err != nil {
		return nil, err
	}

	return audio.DecodePCM16(raw, sampleRate, channels)
}

// CheckReference decodes a base64 PCM payload and classifies it as a
// voice-cloning reference in one call.
//
// The error is non-nil only for malformed input (bad base64, odd PCM
// byte count). A rejected recording is not an error: inspect the
// report's Valid and Reason fields.
func CheckReference(base64PCM string, sampleRate, channels int) (analysis.Report, error) {
	buf, err := DecodeReference(base64PCM, sampleRate, channels)
	if err != nil {
		return analysis.Report{}, err
	}

	return analysis.Classify(buf), nil
}

// ExportWAV serializes the whole buffer as a canonical WAV byte stream,
// suitable for upload or storage with MIME type "audio/wav".
func ExportWAV(buf *audio.Buffer) ([]byte, error) {
	return wav.Encode(buf, buf.Frames())
}
