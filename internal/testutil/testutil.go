package testutil

import (
	"relaybot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user with a plain mention
func NewTestUser(userID int64) domain.User {
	return domain.User{
		ID:      userID,
		Mention: "Tester",
	}
}

// NewTestSession creates a session in the given interface language
func NewTestSession(userID int64, lang domain.InterfaceLanguage) domain.Session {
	return domain.Session{
		UserID:            userID,
		InterfaceLanguage: lang,
	}
}

// NewPendingSession creates a session awaiting a target language for text
func NewPendingSession(userID int64, lang domain.InterfaceLanguage, text string) domain.Session {
	return domain.Session{
		UserID:            userID,
		InterfaceLanguage: lang,
		PendingText:       text,
		HasPending:        true,
	}
}
