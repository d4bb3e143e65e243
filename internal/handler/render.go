package handler

import (
	"relaybot/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// reply delivers replies in order, editing the pressed message where asked
func (h *Handler) reply(c tele.Context, replies []domain.Reply) error {
	for _, r := range replies {
		opts := sendOptions(r)

		if r.Edit && c.Callback() != nil {
			if err := h.handleEditError(c.Edit(r.Text, opts...), c); err == nil {
				continue
			}
		}
		if err := c.Send(r.Text, opts...); err != nil {
			return err
		}
	}
	return nil
}

// sendOptions converts reply flags into telebot send options
func sendOptions(r domain.Reply) []interface{} {
	opts := make([]interface{}, 0, 2)
	if r.HTML {
		opts = append(opts, tele.ModeHTML)
	}
	if len(r.Keyboard) > 0 {
		opts = append(opts, renderMarkup(r.Keyboard))
	}
	return opts
}

// renderMarkup builds an inline keyboard; action buttons carry their token as callback data
func renderMarkup(keyboard [][]domain.Button) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := make([][]tele.InlineButton, 0, len(keyboard))
	for _, row := range keyboard {
		r := make([]tele.InlineButton, 0, len(row))
		for _, b := range row {
			btn := tele.InlineButton{Text: b.Text}
			if b.URL != "" {
				btn.URL = b.URL
			} else {
				btn.Data = b.Action.Token()
			}
			r = append(r, btn)
		}
		rows = append(rows, r)
	}
	markup.InlineKeyboard = rows
	return markup
}
