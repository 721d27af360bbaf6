// Package validator checks that a text is written in an expected language.
// The translator uses it for advisory warnings only: that the source looks
// English and that a translation looks like its target language.
package validator

import (
	"fmt"
	"strings"

	"github.com/valpere/rapidtran/internal/detector"
)

// minValidationLength is the minimum rune count required to attempt language detection.
// Shorter texts produce unreliable results and are accepted without validation.
const minValidationLength = 20

// Validator checks that a text is written in an expected language.
// The underlying language detector is expensive to build; reuse the instance.
type Validator struct {
	det *detector.Detector
}

// New creates a Validator backed by the lingua-go language detector.
func New() *Validator {
	return &Validator{det: detector.New()}
}

// IsValid returns true when text appears to be written in lang.
//
// Short texts, languages the detector has no model for, and texts whose
// language cannot be determined pass without error. When the detected
// language differs from lang the returned error names both codes.
func (v *Validator) IsValid(text, lang string) (bool, error) {
	lang = strings.ToLower(lang)
	if lang == "" || !detector.Supports(lang) {
		return true, nil
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return false, fmt.Errorf("text is empty")
	}

	// Detector is unreliable for very short texts; skip validation.
	if len([]rune(text)) < minValidationLength {
		return true, nil
	}

	detected, ok := v.det.DetectCode(text)
	if !ok {
		// Ambiguous language; nothing to check against.
		return true, nil
	}

	if detected != lang {
		return false, fmt.Errorf("expected %s but detected %s", lang, detected)
	}

	return true, nil
}
