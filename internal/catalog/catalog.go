// Package catalog holds the static data the translator offers: the target
// languages and the suggested example sentences.
package catalog

import (
	"slices"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

const (
	// SourceLanguage is the only supported source language.
	SourceLanguage = "en"
	// DefaultTarget is selected when a view is created.
	DefaultTarget = "hi"
)

// LanguageOption is a selectable target language.
type LanguageOption struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

var languages = []LanguageOption{
	{Code: "hi", Label: "Hindi"},
	{Code: "mr", Label: "Marathi"},
	{Code: "bn", Label: "Bengali"},
	{Code: "ta", Label: "Tamil"},
	{Code: "te", Label: "Telugu"},
	{Code: "gu", Label: "Gujarati"},
	{Code: "kn", Label: "Kannada"},
	{Code: "ml", Label: "Malayalam"},
	{Code: "fr", Label: "French"},
	{Code: "es", Label: "Spanish"},
	{Code: "de", Label: "German"},
}

var suggestions = []string{
	"Hello, how are you?",
	"Thank you for your help.",
	"Where is the nearest railway station?",
	"I am learning programming.",
	"Have a great day!",
}

// Languages returns the target languages in display order.
func Languages() []LanguageOption {
	return slices.Clone(languages)
}

// Codes returns the target language codes in display order.
func Codes() []string {
	codes := make([]string, len(languages))
	for i, l := range languages {
		codes[i] = l.Code
	}
	return codes
}

// Lookup finds a language by code.
func Lookup(code string) (LanguageOption, bool) {
	i := slices.IndexFunc(languages, func(l LanguageOption) bool { return l.Code == code })
	if i < 0 {
		return LanguageOption{}, false
	}
	return languages[i], true
}

// Label returns the display label for code. Codes missing from the catalog
// render as the upper-cased code so history entries never show a blank label.
func Label(code string) string {
	if l, ok := Lookup(code); ok {
		return l.Label
	}
	return strings.ToUpper(code)
}

// NativeName returns the name of the language written in that language,
// e.g. "हिन्दी" for hi. It returns "" when the code is not a valid tag.
func NativeName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return ""
	}
	return display.Self.Name(tag)
}

// Suggestions returns the example sentences.
func Suggestions() []string {
	return slices.Clone(suggestions)
}

// Suggestion returns the sentence at index i.
func Suggestion(i int) (string, bool) {
	if i < 0 || i >= len(suggestions) {
		return "", false
	}
	return suggestions[i], true
}
