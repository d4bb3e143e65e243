package domain

// User identifies the person behind an inbound event
type User struct {
	ID int64
	// Mention is an HTML link to the user, rendered inside welcome prompts
	Mention string
}

// InterfaceLanguage is the language bot prompts are shown in
type InterfaceLanguage string

const (
	LangUnset   InterfaceLanguage = ""
	LangEnglish InterfaceLanguage = "en"
	LangArabic  InterfaceLanguage = "ar"
)

// DefaultInterfaceLanguage is used for lookups before the user has chosen
const DefaultInterfaceLanguage = LangEnglish

// InterfaceLanguages lists supported interface languages in picker order
var InterfaceLanguages = []InterfaceLanguage{LangEnglish, LangArabic}

// IsSupported reports whether l is a selectable interface language
func (l InterfaceLanguage) IsSupported() bool {
	for _, supported := range InterfaceLanguages {
		if l == supported {
			return true
		}
	}
	return false
}

// OrDefault returns l, or the default language when l is unset
func (l InterfaceLanguage) OrDefault() InterfaceLanguage {
	if l == LangUnset {
		return DefaultInterfaceLanguage
	}
	return l
}

// DialogState represents user's current interaction state
type DialogState string

const (
	StateNew            DialogState = "new"
	StateReady          DialogState = "ready"
	StateAwaitingTarget DialogState = "awaiting_target"
)

// Session holds the per-user dialog data
type Session struct {
	UserID            int64
	InterfaceLanguage InterfaceLanguage
	PendingText       string
	HasPending        bool
}

// State derives the dialog state from the session fields
func (s Session) State() DialogState {
	switch {
	case s.InterfaceLanguage == LangUnset:
		return StateNew
	case s.HasPending:
		return StateAwaitingTarget
	default:
		return StateReady
	}
}
