package handler

import (
	"context"
	"fmt"
	"html"
	"strings"

	"relaybot/internal/domain"
	"relaybot/internal/repository"
	"relaybot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot      *tele.Bot
	dialog   *service.Dialog
	sessions repository.SessionRepository
	prompts  service.Prompts
	logger   *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	dialog *service.Dialog,
	sessions repository.SessionRepository,
	prompts service.Prompts,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:      bot,
		dialog:   dialog,
		sessions: sessions,
		prompts:  prompts,
		logger:   logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/help", h.handleHelp)
	h.bot.Handle("/languages", h.handleLanguages)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// All inline buttons carry raw callback data
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// requestContext bounds work done for one update
func requestContext(c tele.Context) context.Context {
	return context.Background()
}

// userOf converts the update sender into a dialog user
func userOf(c tele.Context) domain.User {
	sender := c.Sender()
	name := strings.TrimSpace(sender.FirstName + " " + sender.LastName)
	if name == "" {
		name = sender.Username
	}
	return domain.User{
		ID:      sender.ID,
		Mention: fmt.Sprintf(`<a href="tg://user?id=%d">%s</a>`, sender.ID, html.EscapeString(name)),
	}
}
