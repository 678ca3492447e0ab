// SPDX-License-Identifier: EPL-2.0

package analysis

import "math"

// clipStats is the immutable summary of a window-feature series that the
// classifier gates consume. It is produced in one place so the correlated
// running quantities (quiet windows, peak counting, active-window ZCR)
// cannot drift apart.
type clipStats struct {
	avgRMS float64
	// quietRatio is the fraction of windows whose RMS falls below the
	// dynamic silence threshold max(avgRMS*0.4, 0.02).
	quietRatio float64
	// variation is the coefficient of variation of window RMS
	// (stddev/mean), an expressiveness proxy.
	variation float64
	// peaksPerSecond counts local RMS maxima above avgRMS*0.8 among
	// active windows, divided by active duration. Approximates
	// syllable rate.
	peaksPerSecond float64
	// zcrStdDev is the standard deviation of ZCR over active windows
	// only, a pitch-variation proxy.
	zcrStdDev     float64
	activeSeconds float64
}

// quietFloor is the absolute lower bound of the dynamic silence
// threshold, so near-silent clips do not classify their noise floor as
// speech.
const quietFloor = 0.02

func summarize(features []Feature, windowDuration float64) clipStats {
	n := len(features)
	if n == 0 {
		return clipStats{}
	}

	var sum float64
	for _, f := range features {
		sum += f.RMS
	}
	avg := sum / float64(n)

	var sumSqDev float64
	for _, f := range features {
		d := f.RMS - avg
		sumSqDev += d * d
	}
	stdDev := math.Sqrt(sumSqDev / float64(n))

	threshold := math.Max(avg*0.4, quietFloor)

	quiet := 0
	var zcrSum float64
	for _, f := range features {
		if f.RMS < threshold {
			quiet++
		} else {
			zcrSum += f.ZCR
		}
	}
	active := n - quiet

	var zcrStdDev float64
	if active > 0 {
		zcrMean := zcrSum / float64(active)
		var zcrSqDev float64
		for _, f := range features {
			if f.RMS >= threshold {
				d := f.ZCR - zcrMean
				zcrSqDev += d * d
			}
		}
		zcrStdDev = math.Sqrt(zcrSqDev / float64(active))
	}

	peakBar := avg * 0.8
	peaks := 0
	for i := 1; i < n-1; i++ {
		f := features[i]
		if f.RMS >= threshold && f.RMS > peakBar &&
			f.RMS > features[i-1].RMS && f.RMS > features[i+1].RMS {
			peaks++
		}
	}

	activeSeconds := float64(active) * windowDuration

	var variation float64
	if avg > 0 {
		variation = stdDev / avg
	}

	var peaksPerSecond float64
	if activeSeconds > 0 {
		peaksPerSecond = float64(peaks) / activeSeconds
	}

	return clipStats{
		avgRMS:         avg,
		quietRatio:     float64(quiet) / float64(n),
		variation:      variation,
		peaksPerSecond: peaksPerSecond,
		zcrStdDev:      zcrStdDev,
		activeSeconds:  activeSeconds,
	}
}
