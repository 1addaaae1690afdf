package nlparser

import (
	"regexp"
	"strings"
)

// locationPattern is case-sensitive: a place starts with a capital letter
// and runs until a date keyword or the end of the line.
var locationPattern = regexp.MustCompile(`(?:at|in)\s+([A-Z][a-zA-Z\s]+?)(?:\s+(?:next|this|tomorrow|today|yesterday|on)|\.?$)`)

func detectLocation(text string) *string {
	m := locationPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	place := strings.TrimSpace(m[1])
	if place == "" {
		return nil
	}
	return &place
}
