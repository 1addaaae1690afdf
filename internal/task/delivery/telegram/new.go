package telegram

import (
	"github.com/gin-gonic/gin"

	"task-capture/internal/task"
	pkgLog "task-capture/pkg/log"
	pkgTelegram "task-capture/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// New creates a new Telegram delivery handler. An empty secretToken accepts
// updates without checking the secret header.
func New(l pkgLog.Logger, uc task.UseCase, bot *pkgTelegram.Bot, secretToken string) Handler {
	return &handler{
		l:           l,
		uc:          uc,
		bot:         bot,
		secretToken: secretToken,
	}
}
