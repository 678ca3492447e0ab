// SPDX-License-Identifier: EPL-2.0

// Package minimaxvocx converts between transport representations of
// 16-bit PCM audio and judges whether a short voice recording is usable
// as a voice-cloning reference.
//
// # Quick Start
//
// The most common flow takes a base64 PCM payload straight to a verdict:
//
//	report, err := minimaxvocx.CheckReference(payload,
//	    minimaxvocx.DefaultSampleRate, minimaxvocx.DefaultChannels)
//	if err != nil {
//	    // malformed payload
//	}
//	if !report.Valid {
//	    fmt.Println(report.Reason) // e.g. "audio is too quiet"
//	}
//
// # Pipeline
//
// The building blocks compose left to right:
//
//	base64 text --> raw PCM bytes --> audio.Buffer --> analysis.Report
//	                                       |
//	                                       +--> canonical WAV bytes
//
//   - utils.DecodeBase64 maps transport text to raw bytes
//   - audio.DecodePCM16 maps interleaved s16le PCM to a planar
//     float32 buffer
//   - analysis.Classify scores the buffer and produces the verdict
//   - formats/wav.Encode exports the buffer as a canonical RIFF/WAVE
//     stream; the wav.Decoder reads one back
//
// All components are synchronous pure functions over in-memory buffers:
// no I/O, no shared state, no retained references. Rejection is a normal
// classification outcome, not an error; only malformed input (invalid
// base64, odd PCM byte length, non-positive channel count) fails.
//
// # Sample Format
//
// PCM decoding divides 16-bit values by 32768; WAV encoding clamps to
// [-1, 1] and multiplies by 32768 for non-positive samples and 32767 for
// positive ones. The pairing is asymmetric on purpose: it keeps encode to
// decode round trips within one quantization step of the original and
// matches the scaling used by the transport peers.
//
// # Other Containers
//
// Reference uploads arrive in arbitrary containers. The module decodes
// only raw PCM and canonical WAV; applications plug further decoders
// into an audio.Registry keyed by MIME type and hand the resulting
// buffer to the classifier.
package minimaxvocx
