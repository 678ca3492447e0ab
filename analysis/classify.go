// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"log/slog"

	"github.com/dothao2954-creator/minimaxvocx/audio"
)

// Report is the outcome of classifying a voice-reference clip. A
// rejected clip is a normal result, not an error: callers branch on
// Valid and surface Reason to the user.
type Report struct {
	Valid bool
	// Reason is a user-facing rejection explanation, set only when
	// Valid is false.
	Reason string
	// Score grades the clip from 0 (unusable) to 100 (excellent).
	Score int
}

// Rejection reasons returned in Report.Reason.
const (
	ReasonTooShort  = "audio is too short: at least 3 seconds required"
	ReasonTooLong   = "audio is too long: keep it under 5 minutes"
	ReasonTooQuiet  = "audio is too quiet"
	ReasonClipping  = "audio is distorted or clipping"
	ReasonNoise     = "continuous background noise or music detected"
	ReasonMonotone  = "audio sounds monotone or over-processed"
	ReasonSilence   = "audio is mostly silence"
	ReasonTooSlow   = "speech rate is too slow"
	ReasonTooFast   = "speech rate is too fast"
	ReasonFlatPitch = "voice lacks pitch variation"
)

// Classification thresholds. These are tuned contract values shared with
// the transport peers; adjusting one changes which user recordings are
// accepted, so treat them as fixed.
const (
	minDuration = 3.0
	maxDuration = 300.0

	quietAvgRMS = 0.01

	clipPeak = 0.99
	clipRMS  = 0.5

	softLowRMS     = 0.05
	softMidRMS     = 0.1
	softHighPeak   = 0.95
	softQuietRatio = 0.15
	softVariation  = 0.25
	softZCRStdDev  = 0.005
	softMinRate    = 1.5
	softMaxRate    = 8.0

	noiseQuietRatio   = 0.02
	noiseVariation    = 0.5
	monotoneVariation = 0.15
	silenceQuietRatio = 0.95
	slowRate          = 0.5
	fastRate          = 15.0
	flatZCRStdDev     = 0.001
)

// Classifier judges whether a clip is usable as a voice-cloning
// reference. The zero value is ready to use.
type Classifier struct {
	// Log, when non-nil, receives the computed clip statistics at
	// debug level. Classification itself stays pure.
	Log *slog.Logger
}

// Classify evaluates channel 0 of buf through an ordered sequence of
// gates. Hard disqualifiers (length, silence, clipping) short-circuit;
// softer heuristics first degrade the score, then reject only on extreme
// values. Deterministic: the same buffer always yields the same Report.
func (c *Classifier) Classify(buf *audio.Buffer) Report {
	duration := buf.Duration()
	if duration < minDuration {
		return rejected(ReasonTooShort, 0)
	}
	if duration > maxDuration {
		return rejected(ReasonTooLong, 0)
	}

	sampleRate := buf.SampleRate()
	features, peak := ExtractFeatures(buf.Channel(0), sampleRate)

	windowSize := int(float64(sampleRate) * windowSeconds)
	windowDuration := float64(windowSize) / float64(sampleRate)
	st := summarize(features, windowDuration)

	if c.Log != nil {
		c.Log.Debug("voice reference statistics",
			slog.Float64("duration", duration),
			slog.Float64("avg_rms", st.avgRMS),
			slog.Float64("peak", peak),
			slog.Float64("quiet_ratio", st.quietRatio),
			slog.Float64("variation", st.variation),
			slog.Float64("peaks_per_second", st.peaksPerSecond),
			slog.Float64("zcr_std_dev", st.zcrStdDev),
			slog.Float64("active_seconds", st.activeSeconds),
		)
	}

	if st.avgRMS < quietAvgRMS {
		return rejected(ReasonTooQuiet, 20)
	}
	if peak > clipPeak && st.avgRMS > clipRMS {
		return rejected(ReasonClipping, 30)
	}

	score := 100
	switch {
	case st.avgRMS < softLowRMS:
		score -= 15
	case st.avgRMS < softMidRMS:
		score -= 5
	}
	if peak > softHighPeak {
		score -= 10
	}
	if st.quietRatio < softQuietRatio {
		score -= 20
	}
	if st.variation < softVariation {
		score -= 15
	}
	if st.zcrStdDev < softZCRStdDev {
		score -= 10
	}
	if st.peaksPerSecond < softMinRate || st.peaksPerSecond > softMaxRate {
		score -= 10
	}
	score = max(0, min(100, score))

	switch {
	case st.quietRatio < noiseQuietRatio && st.variation < noiseVariation:
		return rejected(ReasonNoise, min(score, 40))
	case st.variation < monotoneVariation:
		return rejected(ReasonMonotone, min(score, 45))
	case st.quietRatio > silenceQuietRatio:
		return rejected(ReasonSilence, min(score, 30))
	case st.peaksPerSecond < slowRate && st.activeSeconds > 2:
		return rejected(ReasonTooSlow, min(score, 50))
	case st.peaksPerSecond > fastRate:
		return rejected(ReasonTooFast, min(score, 50))
	case st.zcrStdDev < flatZCRStdDev && st.activeSeconds > 3:
		return rejected(ReasonFlatPitch, min(score, 55))
	}

	return Report{Valid: true, Score: score}
}

// Classify runs the zero-value Classifier on buf.
func Classify(buf *audio.Buffer) Report {
	var c Classifier
	return c.Classify(buf)
}

func rejected(reason string, score int) Report {
	return Report{Valid: false, Reason: reason, Score: score}
}
