package telegram

import (
	"context"
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"task-capture/internal/model"
	"task-capture/internal/task"
	pkgErrors "task-capture/pkg/errors"
	pkgLog "task-capture/pkg/log"
	pkgResponse "task-capture/pkg/response"
	pkgTelegram "task-capture/pkg/telegram"
)

const (
	startText = "Welcome to Task Capture!\n\n" +
		"Send me one line per message and I will file it on the right day:\n" +
		"• \"Dinner with Ana at 7pm tomorrow\"\n" +
		"• \"Buy milk\"\n" +
		"• \"Dentist on March 5 at the clinic\"\n\n" +
		"Use /today to see what is filed for today."
	helpText = "Commands:\n" +
		"/today lists today's lines\n" +
		"/help shows this message\n\n" +
		"Anything else is captured as a new line. Dates like \"tomorrow\", \"next friday\" or \"3/14\" " +
		"and times like \"at 6pm\" are picked up automatically."
)

type handler struct {
	l           pkgLog.Logger
	uc          task.UseCase
	bot         *pkgTelegram.Bot
	secretToken string
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a background goroutine.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if !h.validSecret(c.GetHeader(pkgTelegram.SecretTokenHeader)) {
		h.l.Warnf(ctx, "telegram handler: rejected update: %v", errWrongSecret)
		pkgResponse.Error(c, pkgErrors.NewHTTPError(http.StatusUnauthorized, errWrongSecret.Error()), nil)
		return
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (edited messages, channel posts, ...)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message

	go func() {
		// Detach from the request context, which is cancelled once we reply.
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

func (h *handler) validSecret(got string) bool {
	if h.secretToken == "" {
		return true
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(h.secretToken)) == 1
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	sc := scopeOf(msg)

	switch command(text) {
	case "/start":
		return h.bot.SendMessage(ctx, msg.Chat.ID, startText)
	case "/help":
		return h.bot.SendMessage(ctx, msg.Chat.ID, helpText)
	case "/today":
		return h.sendToday(ctx, sc, msg.Chat.ID)
	}

	out, err := h.uc.Submit(ctx, sc, task.SubmitInput{Text: text})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: Submit failed: %v", err)
		return h.bot.SendMessage(ctx, msg.Chat.ID, errorMessage(err))
	}

	reply := out.Notification.String()
	if out.Task.CalendarLink != "" {
		reply += "\n" + out.Task.CalendarLink
	}
	return h.bot.SendMessage(ctx, msg.Chat.ID, reply)
}

func (h *handler) sendToday(ctx context.Context, sc model.Scope, chatID int64) error {
	out, err := h.uc.ListDay(ctx, sc, task.ListDayInput{})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: ListDay failed: %v", err)
		return h.bot.SendMessage(ctx, chatID, errorMessage(err))
	}

	header := out.Day.Format(task.NotificationDateLayout)
	if len(out.Tasks) == 0 {
		return h.bot.SendMessage(ctx, chatID, header+"\nNothing filed yet.")
	}

	var b strings.Builder
	b.WriteString(header)
	for i, line := range out.Tasks {
		fmt.Fprintf(&b, "\n%d. %s", i+1, line.Text)
	}
	return h.bot.SendMessage(ctx, chatID, b.String())
}

// command returns the leading /command of text without a @botname suffix,
// or "" when text is not a command.
func command(text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	cmd, _, _ := strings.Cut(strings.Fields(text)[0], "@")
	return strings.ToLower(cmd)
}

func scopeOf(msg *pkgTelegram.Message) model.Scope {
	if msg.From == nil {
		return model.Scope{UserID: fmt.Sprintf("telegram_chat_%d", msg.Chat.ID)}
	}
	return model.Scope{
		UserID:   fmt.Sprintf("telegram_%d", msg.From.ID),
		Username: msg.From.Username,
	}
}
