package handler

import (
	"strings"

	tele "gopkg.in/telebot.v3"
)

// handleText handles free-text messages
func (h *Handler) handleText(c tele.Context) error {
	text := c.Text()

	// Unknown commands are not text to translate
	if strings.HasPrefix(strings.TrimSpace(text), "/") {
		return nil
	}

	return h.reply(c, h.dialog.Text(requestContext(c), userOf(c), text))
}
