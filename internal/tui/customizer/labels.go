package customizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// fieldLabel turns a camelCase field name into a title-cased label.
// Runs of capitals such as BFECC stay together.
func fieldLabel(field string) string {
	runes := []rune(field)
	var words []string
	start := 0
	for i := 1; i < len(runes); i++ {
		boundary := unicode.IsUpper(runes[i]) && !unicode.IsUpper(runes[i-1])
		if unicode.IsDigit(runes[i]) && !unicode.IsDigit(runes[i-1]) {
			boundary = true
		}
		if boundary {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	words = append(words, string(runes[start:]))

	for i, w := range words {
		if strings.ToUpper(w) == w {
			continue
		}
		words[i] = titleCaser.String(w)
	}
	return strings.Join(words, " ")
}
