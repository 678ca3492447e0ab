// SPDX-License-Identifier: EPL-2.0

// Package audio provides the in-memory audio buffer model and the raw PCM
// codec used throughout the module.
//
// # Buffer
//
// Buffer is the unit of exchange between decoders, the WAV encoder, and
// the analysis packages: planar float32 samples, one slice per channel,
// at a declared sample rate.
//
//	buf, err := audio.DecodePCM16(raw, 24000, 1)
//	if err != nil {
//	    // Handle error
//	}
//	signal := buf.Channel(0)
//
// Buffers are read-only values. Every component that receives one keeps
// no reference to it after returning, and none mutates it.
//
// # Sample Format
//
// Samples are float32 in the nominal range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// Decoding divides each 16-bit value by 32768, so -32768 maps to exactly
// -1.0 while 32767 maps to slightly under +1.0. The asymmetry is part of
// the transport contract; see utils.Int16ToFloat32.
//
// # PCM Decoding
//
// DecodePCM16 consumes interleaved 16-bit signed little-endian PCM, the
// wire format used by TTS providers. A trailing partial frame is dropped
// rather than rejected, because providers do not always emit exact
// channel multiples. Malformed input (odd byte count, non-positive
// channel count) fails with a sentinel error.
//
// # Decoder Registry
//
// The Registry allows dynamic decoder registration keyed by MIME type:
//
//	registry := audio.NewRegistry()
//	registry.Register("audio/wav", wav.Decoder{})
//	decoder, _ := registry.Get("audio/wav")
//
// The module itself ships only the canonical WAV decoder; applications
// that accept other containers register their own.
package audio
