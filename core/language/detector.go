// ABOUTME: Confidence-thresholded language identification over item text
// ABOUTME: Wraps lingua's statistical detector; any internal failure degrades to undetermined

package language

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

// DefaultThreshold is the minimum confidence for a detection to count.
const DefaultThreshold = 0.8

// Detector tags text with its most probable language. It is stateless after
// construction and safe for concurrent use.
type Detector struct {
	detector  lingua.LanguageDetector
	threshold float64
}

var (
	buildOnce sync.Once
	shared    lingua.LanguageDetector
)

// sharedDetector builds the lingua model once per process; model
// construction is expensive and the detector is immutable.
func sharedDetector() lingua.LanguageDetector {
	buildOnce.Do(func() {
		shared = lingua.NewLanguageDetectorBuilder().
			FromAllLanguages().
			Build()
	})
	return shared
}

// NewDetector creates a detector with the given confidence threshold.
// A threshold <= 0 falls back to DefaultThreshold.
func NewDetector(threshold float64) *Detector {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Detector{
		detector:  sharedDetector(),
		threshold: threshold,
	}
}

// Detect returns the lowercase ISO-639-1 code of the text's language when
// the top-ranked candidate clears the confidence threshold, and "" otherwise.
// Short or ambiguous text is undetermined, never an error.
func (d *Detector) Detect(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	confidences := d.detector.ComputeLanguageConfidenceValues(text)
	if len(confidences) == 0 {
		return ""
	}

	best := confidences[0]
	if best.Value() < d.threshold {
		return ""
	}

	return strings.ToLower(best.Language().IsoCode639_1().String())
}
