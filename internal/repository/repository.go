package repository

import (
	"relaybot/internal/domain"
)

// SessionRepository defines per-user dialog session operations
type SessionRepository interface {
	// Get returns the stored session or a fresh one; it never fails
	Get(userID int64) domain.Session
	SetInterfaceLanguage(userID int64, lang domain.InterfaceLanguage)
	SetPendingText(userID int64, text string)
	ClearPendingText(userID int64)
}
