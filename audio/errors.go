// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidSampleRate     = errors.New("sample rate must be positive")
	ErrNoChannels            = errors.New("channel count must be positive")
	ErrOddByteCount          = errors.New("PCM byte length must be a multiple of 2")
	ErrChannelLengthMismatch = errors.New("all channels must have the same length")
)
