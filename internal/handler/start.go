package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	h.logger.Info("User started bot",
		zap.Int64("user_id", c.Sender().ID),
		zap.String("username", c.Sender().Username),
	)
	return h.reply(c, h.dialog.Start(requestContext(c), userOf(c)))
}

// handleHelp handles /help command
func (h *Handler) handleHelp(c tele.Context) error {
	return h.reply(c, h.dialog.Help(requestContext(c), userOf(c)))
}

// handleLanguages handles /languages command
func (h *Handler) handleLanguages(c tele.Context) error {
	return h.reply(c, h.dialog.Languages(requestContext(c), userOf(c)))
}
