package nlparser

import "strings"

func classifyIntent(text string) Intent {
	lowered := strings.ToLower(text)

	eventScore := countContained(lowered, eventKeywords)
	taskScore := countContained(lowered, taskKeywords)

	// The `at \d` check is a literal string, not a pattern.
	if strings.Contains(lowered, `at \d`) || strings.Contains(lowered, "pm") || strings.Contains(lowered, "am") {
		eventScore += timeCueBonus
	}

	for _, kw := range taskKeywords {
		if strings.HasPrefix(lowered, kw) {
			taskScore += actionVerbBonus
			break
		}
	}

	switch {
	case eventScore > taskScore:
		return IntentEvent
	case taskScore > eventScore:
		return IntentTask
	default:
		return IntentUnknown
	}
}

func countContained(text string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			n++
		}
	}
	return n
}
