// Package feedback turns Garmin feedback codes into sentences a coach can read.
package feedback

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var sleepFeedback = map[string]string{
	"POSITIVE_LONG_AND_DEEP":            "Long and deep sleep, great for recovery.",
	"POSITIVE_DEEP":                     "Plenty of deep sleep.",
	"POSITIVE_LONG_AND_CONTINUOUS":      "Long, uninterrupted sleep.",
	"POSITIVE_CONTINUOUS":               "Sleep was continuous with few interruptions.",
	"POSITIVE_RECOVERING":               "Sleep supported recovery well.",
	"POSITIVE_RESTFUL_EVENING":          "A restful evening led into good sleep.",
	"POSITIVE_OPTIMAL_STRUCTURE":        "Sleep stages were well balanced.",
	"NEGATIVE_SHORT_AND_POOR_QUALITY":   "Sleep was short and of poor quality.",
	"NEGATIVE_SHORT":                    "Sleep was shorter than needed.",
	"NEGATIVE_LONG_BUT_NOT_RESTORATIVE": "Sleep was long but not restorative.",
	"NEGATIVE_NOT_RESTORATIVE":          "Sleep was not restorative.",
	"NEGATIVE_LONG_BUT_DISCONTINUOUS":   "Sleep was long but frequently interrupted.",
	"NEGATIVE_DISCONTINUOUS":            "Sleep was frequently interrupted.",
	"NEGATIVE_POOR_QUALITY":             "Sleep quality was poor.",
	"NEGATIVE_LACK_OF_DEEP":             "Not enough deep sleep.",
	"NEGATIVE_LACK_OF_REM":              "Not enough REM sleep.",
}

// Humanize maps a feedback code to a sentence. Codes outside the table become
// sentence-cased words. An empty code yields nil.
func Humanize(code string) *string {
	if code == "" {
		return nil
	}

	if text, ok := sleepFeedback[code]; ok {
		return &text
	}

	text := capitalize(strings.ToLower(strings.ReplaceAll(code, "_", " ")))

	return &text
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}
