package domain

import "errors"

var (
	// ErrTranslationFailed is returned when the translation backend failed after retrying
	ErrTranslationFailed = errors.New("translation failed")
	// ErrMembershipCheck marks a failed channel membership lookup
	ErrMembershipCheck = errors.New("membership check failed")
	// ErrUnknownAction marks callback data the bot does not understand
	ErrUnknownAction = errors.New("unknown button action")
)
