// Package i18n provides localized headings for problem sheets.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys.
const (
	Problems = "Problems"
	Answers  = "Answers"
	Problem  = "Problem %d"
)

var supportedTags = []language.Tag{
	language.English,
	language.Russian,
}

var tagMatcher = language.NewMatcher(supportedTags)

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// Default returns the default language tag.
func Default() language.Tag {
	return language.English
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// Match returns the supported tag closest to the language named by s,
// or [Default] if s is empty or malformed.
func Match(s string) language.Tag {
	s = strings.TrimSpace(s)
	if s == "" {
		return Default()
	}
	tag, err := language.Parse(s)
	if err != nil {
		return Default()
	}
	_, i, _ := tagMatcher.Match(tag)
	return supportedTags[i]
}
