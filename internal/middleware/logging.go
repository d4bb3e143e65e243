package middleware

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// TraceIDKey is the context key holding the update trace id
const TraceIDKey = "trace_id"

// Logging tags every update with a trace id and logs its outcome
func Logging(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			traceID := uuid.NewString()
			c.Set(TraceIDKey, traceID)

			start := time.Now()
			err := next(c)

			fields := []zap.Field{
				zap.String("trace_id", traceID),
				zap.String("kind", updateKind(c)),
				zap.Duration("duration", time.Since(start)),
			}
			if sender := c.Sender(); sender != nil {
				fields = append(fields, zap.Int64("user_id", sender.ID))
			}
			if err != nil {
				logger.Warn("Update failed", append(fields, zap.Error(err))...)
				return err
			}
			logger.Debug("Update handled", fields...)
			return nil
		}
	}
}

func updateKind(c tele.Context) string {
	switch {
	case c.Callback() != nil:
		return "callback"
	case strings.HasPrefix(c.Text(), "/"):
		return "command"
	default:
		return "text"
	}
}
