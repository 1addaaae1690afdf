package usecase

import (
	"context"

	"task-capture/internal/task"
)

// Parse previews a line. Like the parser itself it never fails on content;
// an empty line comes back as an unknown item with no fields.
func (uc *implUseCase) Parse(ctx context.Context, input task.ParseInput) (task.ParseOutput, error) {
	now := input.Now
	if now.IsZero() {
		now = uc.parser.Now()
	}

	parsed := uc.parser.ParseAt(input.Text, now)
	observeParse(parsed)

	day := uc.parser.Dates().StartOfDay(now)
	if parsed.Date != nil {
		day = *parsed.Date
	}

	uc.l.Debugf(ctx, "Parse: intent=%s confidence=%.2f", parsed.Intent, parsed.Confidence)

	return task.ParseOutput{
		Parsed:       parsed,
		Notification: task.NewNotification(parsed, day),
	}, nil
}
