// SPDX-License-Identifier: EPL-2.0

// Package audiotest generates deterministic audio signals for tests.
package audiotest

import (
	"encoding/binary"
	"math"

	"github.com/dothao2954-creator/minimaxvocx/audio"
	"github.com/dothao2954-creator/minimaxvocx/utils"
)

// Silence returns frames zero samples.
func Silence(frames int) []float32 {
	return make([]float32, frames)
}

// Constant returns frames samples of the given value.
func Constant(frames int, value float32) []float32 {
	s := make([]float32, frames)
	for i := range s {
		s[i] = value
	}
	return s
}

// Sine returns a sine wave of the given frequency and peak amplitude.
func Sine(sampleRate, frames int, freq, amp float64) []float32 {
	s := make([]float32, frames)
	for i := range s {
		t := float64(i) / float64(sampleRate)
		s[i] = float32(amp * math.Sin(2*math.Pi*freq*t))
	}
	return s
}

// Square returns a square wave of the given frequency and peak amplitude.
func Square(sampleRate, frames int, freq, amp float64) []float32 {
	s := make([]float32, frames)
	for i := range s {
		t := float64(i) / float64(sampleRate)
		if math.Sin(2*math.Pi*freq*t) >= 0 {
			s[i] = float32(amp)
		} else {
			s[i] = float32(-amp)
		}
	}
	return s
}

// Tone describes the content of one 50 ms analysis window.
type Tone struct {
	Freq float64
	Amp  float64
}

// Windows synthesizes one 50 ms window per tone, with the sine phase
// restarting at each window boundary. Windows with equal tones are
// sample-identical, which gives tests exact control over the loudness
// envelope the classifier sees.
func Windows(sampleRate int, tones []Tone) []float32 {
	windowSize := sampleRate / 20
	s := make([]float32, 0, len(tones)*windowSize)

	for _, tone := range tones {
		for i := range windowSize {
			t := float64(i) / float64(sampleRate)
			s = append(s, float32(tone.Amp*math.Sin(2*math.Pi*tone.Freq*t)))
		}
	}

	return s
}

// Speech synthesizes a speech-like signal: syllable bursts of four per
// second, each a rise-peak-fall envelope followed by a pause, with the
// carrier frequency and loudness changing from syllable to syllable.
// It reliably passes the reference-quality classifier.
func Speech(sampleRate int, seconds float64) []float32 {
	freqs := []float64{130, 210, 330, 170}
	amps := []float64{0.32, 0.38, 0.44}

	n := int(seconds * 20)
	tones := make([]Tone, n)
	for w := range n {
		syllable := w / 5
		f := freqs[syllable%len(freqs)]
		a := amps[syllable%len(amps)]

		switch w % 5 {
		case 0, 2: // rise and fall
			tones[w] = Tone{Freq: f, Amp: a * 0.5}
		case 1: // peak
			tones[w] = Tone{Freq: f, Amp: a}
		default: // pause
			tones[w] = Tone{}
		}
	}

	return Windows(sampleRate, tones)
}

// Buffer wraps planar channel data in an audio.Buffer, panicking on
// invalid shapes. Test helper only.
func Buffer(sampleRate int, channels ...[]float32) *audio.Buffer {
	buf, err := audio.NewBuffer(sampleRate, channels)
	if err != nil {
		panic(err)
	}
	return buf
}

// PCM16Interleaved encodes planar channels as interleaved 16-bit signed
// little-endian PCM, the transport wire format.
func PCM16Interleaved(channels ...[]float32) []byte {
	if len(channels) == 0 {
		return nil
	}

	frames := len(channels[0])
	out := make([]byte, 0, frames*len(channels)*2)

	for frame := range frames {
		for _, ch := range channels {
			v := utils.Float32ToInt16(ch[frame])
			out = binary.LittleEndian.AppendUint16(out, uint16(v))
		}
	}

	return out
}
