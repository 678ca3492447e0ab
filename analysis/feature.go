// SPDX-License-Identifier: EPL-2.0

package analysis

import "math"

// windowSeconds is the fixed analysis window length. 50 ms is short
// enough to resolve individual syllables and long enough for a stable
// RMS estimate.
const windowSeconds = 0.05

// Feature holds the statistics of one analysis window.
type Feature struct {
	// RMS is the root-mean-square amplitude, a loudness proxy.
	RMS float64
	// ZCR is the zero-crossing rate in [0, 1], a coarse proxy for
	// pitch and frequency content.
	ZCR float64
}

// ExtractFeatures slices a single-channel signal into non-overlapping
// windows of floor(sampleRate*0.05) samples and computes per-window RMS
// and zero-crossing rate. A trailing partial window is discarded, not
// padded. The second return value is the peak absolute sample over the
// whole signal, including any discarded tail.
//
// A signal shorter than one window yields no features; callers gate on
// duration before interpreting the result.
func ExtractFeatures(signal []float32, sampleRate int) ([]Feature, float64) {
	var peak float64
	for _, s := range signal {
		if a := math.Abs(float64(s)); a > peak {
			peak = a
		}
	}

	windowSize := int(float64(sampleRate) * windowSeconds)
	if windowSize <= 0 {
		return nil, peak
	}

	count := len(signal) / windowSize
	features := make([]Feature, 0, count)

	for w := range count {
		win := signal[w*windowSize : (w+1)*windowSize]

		var sumSquares float64
		crossings := 0
		// Zero counts as non-negative for crossing detection.
		prevNegative := win[0] < 0

		for i, s := range win {
			f := float64(s)
			sumSquares += f * f

			negative := s < 0
			if i > 0 && negative != prevNegative {
				crossings++
			}
			prevNegative = negative
		}

		features = append(features, Feature{
			RMS: math.Sqrt(sumSquares / float64(windowSize)),
			ZCR: float64(crossings) / float64(windowSize),
		})
	}

	return features, peak
}
