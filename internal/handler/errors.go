package handler

import (
	"fmt"
	"strconv"

	"relaybot/internal/domain"
	"relaybot/internal/i18n"
	"relaybot/internal/middleware"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// OnError is the bot-wide error hook. It logs, reports to Sentry, and answers
// the originating chat with the generic error. It never panics.
func (h *Handler) OnError(err error, c tele.Context) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("Error hook panicked", zap.Any("panic", r), zap.NamedError("original", err))
		}
	}()

	if c == nil {
		h.logger.Error("Bot error", zap.Error(err))
		sentry.CaptureException(err)
		return
	}

	fields := []zap.Field{zap.Error(err)}
	traceID, _ := c.Get(middleware.TraceIDKey).(string)
	if traceID != "" {
		fields = append(fields, zap.String("trace_id", traceID))
	}

	lang := domain.DefaultInterfaceLanguage
	var userID int64
	if sender := c.Sender(); sender != nil {
		userID = sender.ID
		lang = h.sessions.Get(userID).InterfaceLanguage.OrDefault()
		fields = append(fields, zap.Int64("user_id", userID))
	}

	h.logger.Error("Failed to process update", fields...)

	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("trace_id", traceID)
		if userID != 0 {
			scope.SetUser(sentry.User{ID: strconv.FormatInt(userID, 10)})
		}
		sentry.CaptureException(fmt.Errorf("handle update: %w", err))
	})

	if c.Chat() == nil {
		return
	}
	if sendErr := c.Send(h.prompts.Get(lang, i18n.KeyTranslationError, nil)); sendErr != nil {
		h.logger.Warn("Failed to send error reply", zap.Error(sendErr), zap.Int64("user_id", userID))
	}
}
