package nlparser

// Keyword tables are matched by substring against the lower-cased line.
var (
	eventKeywords = []string{
		"dinner", "lunch", "breakfast", "meeting", "appointment", "call",
		"party", "date", "event", "conference", "interview", "class",
	}

	taskKeywords = []string{
		"buy", "finish", "complete", "send", "email", "write", "read",
		"call", "review", "submit", "pay", "book", "schedule", "prepare",
	}
)

const (
	timeCueBonus    = 2
	actionVerbBonus = 2
)

// Confidence weights per detected signal.
const (
	dateWeight     = 0.3
	timeWeight     = 0.2
	locationWeight = 0.1
	intentWeight   = 0.4
	maxConfidence  = 1.0
)

// EventKeywords returns a copy of the event keyword table.
func EventKeywords() []string {
	return append([]string(nil), eventKeywords...)
}

// TaskKeywords returns a copy of the task keyword table.
func TaskKeywords() []string {
	return append([]string(nil), taskKeywords...)
}
