// Package detector guesses the language of a text among English and the
// catalog's target languages.
package detector

import (
	lingua "github.com/pemistahl/lingua-go"
)

// codes maps every language the detector is built with to its catalog code.
// Kannada and Malayalam have no lingua model and are left out.
var codes = map[lingua.Language]string{
	lingua.English:  "en",
	lingua.Hindi:    "hi",
	lingua.Marathi:  "mr",
	lingua.Bengali:  "bn",
	lingua.Tamil:    "ta",
	lingua.Telugu:   "te",
	lingua.Gujarati: "gu",
	lingua.French:   "fr",
	lingua.Spanish:  "es",
	lingua.German:   "de",
}

type Detector struct {
	detector lingua.LanguageDetector
}

func New() *Detector {
	langs := make([]lingua.Language, 0, len(codes))
	for l := range codes {
		langs = append(langs, l)
	}

	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(langs...).
		Build()

	return &Detector{detector: detector}
}

func (d *Detector) Detect(text string) (lingua.Language, bool) {
	if text == "" {
		return lingua.Unknown, false
	}
	return d.detector.DetectLanguageOf(text)
}

// DetectCode returns the lower-case catalog code of the detected language.
func (d *Detector) DetectCode(text string) (string, bool) {
	lang, ok := d.Detect(text)
	if !ok {
		return "", false
	}
	code, known := codes[lang]
	return code, known
}

// Supports reports whether code can be detected at all.
func Supports(code string) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}
