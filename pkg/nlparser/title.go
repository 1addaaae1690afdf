package nlparser

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	datePhrasePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)next \w+day`),
		regexp.MustCompile(`(?i)this \w+day`),
		regexp.MustCompile(`(?i)tomorrow`),
		regexp.MustCompile(`(?i)today`),
		regexp.MustCompile(`(?i)yesterday`),
		regexp.MustCompile(`(?i)on \w+day`),
		regexp.MustCompile(`(?i)\w+day`),
	}

	whitespaceRun = regexp.MustCompile(`\s+`)
)

// extractTitle strips day phrases and the detected time and place from text.
// The original text is returned when nothing is left.
func extractTitle(text, datePhrase string, clock, location *string) string {
	title := text
	for _, re := range datePhrasePatterns {
		title = re.ReplaceAllLiteralString(title, "")
	}
	if datePhrase != "" {
		title = removeFold(title, datePhrase)
	}

	if clock != nil {
		title = removeFold(title, "at "+*clock)
	}
	if location != nil {
		title = removeFold(title, "at "+*location)
		title = removeFold(title, "in "+*location)
	}

	title = whitespaceRun.ReplaceAllLiteralString(title, " ")
	title = strings.TrimSpace(title)
	title = capitalizeFirst(title)

	if title == "" {
		return text
	}
	return title
}

// removeFold deletes every case-insensitive occurrence of needle.
func removeFold(s, needle string) string {
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(needle))
	return re.ReplaceAllLiteralString(s, "")
}

func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
