// SPDX-License-Identifier: EPL-2.0

// Package analysis judges whether a short voice recording is usable as a
// voice-cloning reference.
//
// # Pipeline
//
// Classification runs over channel 0 of a decoded audio.Buffer:
//
//	report := analysis.Classify(buf)
//	if !report.Valid {
//	    fmt.Println(report.Reason) // user-facing
//	}
//
// The signal is sliced into 50 ms windows; each window contributes an RMS
// amplitude (loudness envelope) and a zero-crossing rate (coarse pitch
// content). From the window series the classifier derives the quiet-window
// ratio against a dynamic silence threshold, the coefficient of variation
// of the loudness envelope, the rate of envelope peaks (a syllable-rate
// proxy) and the spread of ZCR across active windows.
//
// # Gates
//
// Hard disqualifiers reject immediately: clips shorter than 3 seconds or
// longer than 5 minutes, near-silent clips, and loud clips that clip the
// sample range. The remaining heuristics first deduct from a 0-100 score
// and reject only on extreme values: continuous pause-free audio (music
// beds, steady noise), monotone or heavily processed voices, mostly-silent
// clips, implausibly slow or fast speech, and speech with no pitch
// movement. The layering keeps false rejection of legitimate recordings
// low while catching obviously unusable input.
//
// A rejected clip is a normal outcome, encoded in Report.Valid, never an
// error. Classification is a pure function of the buffer contents;
// classifying the same clip twice yields identical reports.
//
// # Diagnostics
//
// A Classifier with a non-nil Log emits the computed statistics through
// log/slog at debug level. The zero value stays silent.
package analysis
