package service

import (
	"context"
	"fmt"
	"time"

	"relaybot/internal/domain"
	"relaybot/internal/retry"

	"go.uber.org/zap"
)

// SourceAuto asks the backend to detect the source language
const SourceAuto = "auto"

// translationAttempts is the first call plus one retry
const translationAttempts = 2

// Translator is the external text translation backend
type Translator interface {
	Translate(ctx context.Context, source, target, text string) (string, error)
}

// TranslationService relays text to the backend with a single retry
type TranslationService struct {
	translator Translator
	backoff    time.Duration
	timeout    time.Duration
	logger     *zap.Logger
}

// NewTranslationService creates a new translation service.
// timeout bounds each attempt; zero disables it.
func NewTranslationService(
	translator Translator,
	backoff time.Duration,
	timeout time.Duration,
	logger *zap.Logger,
) *TranslationService {
	return &TranslationService{
		translator: translator,
		backoff:    backoff,
		timeout:    timeout,
		logger:     logger,
	}
}

// Translate translates text into targetCode. After the retry also fails
// the returned error wraps domain.ErrTranslationFailed.
func (s *TranslationService) Translate(ctx context.Context, text, targetCode string) (string, error) {
	attempt := 0
	result, err := retry.Value(ctx, translationAttempts, s.backoff, func(ctx context.Context) (string, error) {
		attempt++
		if s.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.timeout)
			defer cancel()
		}

		out, err := s.translator.Translate(ctx, SourceAuto, targetCode, text)
		if err != nil {
			s.logger.Warn("Translation attempt failed",
				zap.Int("attempt", attempt),
				zap.String("target", targetCode),
				zap.Error(err),
			)
		}
		return out, err
	})
	if err != nil {
		s.logger.Error("Translation failed",
			zap.String("target", targetCode),
			zap.Error(err),
		)
		return "", fmt.Errorf("%w: %w", domain.ErrTranslationFailed, err)
	}

	return result, nil
}
