// SPDX-License-Identifier: EPL-2.0

// Package wav provides canonical RIFF/WAVE encoding and decoding for
// PCM 16-bit audio.
//
// # Encoding
//
// Encode serializes an audio.Buffer into a byte-exact canonical WAV
// stream: a 44-byte header followed by interleaved little-endian 16-bit
// samples.
//
//	data, err := wav.Encode(buf, buf.Frames())
//	// data is ready to upload as "audio/wav"
//
// The header layout is fixed:
//   - RIFF header (12 bytes): "RIFF", chunk size, "WAVE"
//   - fmt chunk (24 bytes): PCM format tag, channels, sample rate,
//     byte rate, block align, 16 bits per sample
//   - data chunk (8 bytes + samples)
//
// Float samples are clamped to [-1, 1] and quantized asymmetrically
// (non-positive x32768, positive x32767) to mirror the PCM decoder's
// divide-by-32768 scaling.
//
// Write is an io.Writer convenience around Encode for saving files.
//
// # Decoding
//
// The Decoder parses a WAV stream back into a planar audio.Buffer. It
// uses github.com/go-audio/wav for robust chunk handling and accepts
// only PCM 16-bit content:
//
//	decoder := wav.Decoder{}
//	buf, err := decoder.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    // not a WAV stream
//	}
//
// # Errors
//
//   - ErrNotWavFile: the input is not a valid WAV stream
//   - ErrOnlyPCM16bitSupported: format tag or bit depth mismatch
//   - ErrUnsupportedWavLayout: missing or inconsistent format metadata
//   - ErrFrameLimitOutOfRange: Encode called with a frame limit outside
//     [0, buf.Frames()]
package wav
