package handler

import (
	"strings"
	"unicode"

	"relaybot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleCallback handles ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	// Acknowledge first so the client stops its spinner during slow translations
	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}

	data := cleanCallbackData(callback.Data)
	action, err := domain.ParseAction(data)
	if err != nil {
		h.logger.Debug("Ignoring callback",
			zap.String("data", data),
			zap.Int64("user_id", c.Sender().ID),
			zap.Error(err),
		)
		return nil
	}

	h.logger.Debug("Processing callback",
		zap.String("data", data),
		zap.Int64("user_id", c.Sender().ID),
	)

	return h.reply(c, h.dialog.Button(requestContext(c), userOf(c), action))
}

// handleEditError handles errors from c.Edit(). A message that is already in the
// requested state is fine; any other failure is returned so the caller sends a new message.
func (h *Handler) handleEditError(err error, c tele.Context) error {
	if err == nil {
		return nil
	}

	// If message is not modified, the same button was pressed twice
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already up to date",
			zap.Int64("user_id", c.Sender().ID),
		)
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", c.Sender().ID),
	)
	return err
}
