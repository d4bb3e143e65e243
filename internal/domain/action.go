package domain

import (
	"fmt"
	"strings"
)

// ActionKind tags the command a keyboard button carries
type ActionKind int

const (
	ActionSetInterfaceLanguage ActionKind = iota + 1
	ActionCheckSubscription
	ActionShowMoreLanguages
	ActionBackToMain
	ActionTranslateTo
)

// Callback data tokens understood by the bot
const (
	tokenSetLangPrefix     = "set_lang_"
	tokenTranslatePrefix   = "translate_to_"
	tokenCheckSubscription = "check_subscription"
	tokenShowMore          = "show_more_languages"
	tokenBackToMain        = "back_to_main_languages"
)

// Action is a decoded button press
type Action struct {
	Kind ActionKind
	// Language is set for ActionSetInterfaceLanguage
	Language InterfaceLanguage
	// TargetCode is set for ActionTranslateTo
	TargetCode string
}

// SetInterfaceLanguageAction builds the button action selecting lang
func SetInterfaceLanguageAction(lang InterfaceLanguage) Action {
	return Action{Kind: ActionSetInterfaceLanguage, Language: lang}
}

// TranslateToAction builds the button action translating into code
func TranslateToAction(code string) Action {
	return Action{Kind: ActionTranslateTo, TargetCode: code}
}

// Token encodes the action as callback data
func (a Action) Token() string {
	switch a.Kind {
	case ActionSetInterfaceLanguage:
		return tokenSetLangPrefix + string(a.Language)
	case ActionCheckSubscription:
		return tokenCheckSubscription
	case ActionShowMoreLanguages:
		return tokenShowMore
	case ActionBackToMain:
		return tokenBackToMain
	case ActionTranslateTo:
		return tokenTranslatePrefix + a.TargetCode
	}
	return ""
}

// ParseAction decodes callback data into an Action.
// Unknown tokens and parameters outside the catalogs yield ErrUnknownAction.
func ParseAction(token string) (Action, error) {
	switch token {
	case tokenCheckSubscription:
		return Action{Kind: ActionCheckSubscription}, nil
	case tokenShowMore:
		return Action{Kind: ActionShowMoreLanguages}, nil
	case tokenBackToMain:
		return Action{Kind: ActionBackToMain}, nil
	}

	switch {
	case strings.HasPrefix(token, tokenSetLangPrefix):
		lang := InterfaceLanguage(strings.TrimPrefix(token, tokenSetLangPrefix))
		if !lang.IsSupported() {
			return Action{}, fmt.Errorf("%w: interface language %q", ErrUnknownAction, lang)
		}
		return SetInterfaceLanguageAction(lang), nil
	case strings.HasPrefix(token, tokenTranslatePrefix):
		code := strings.TrimPrefix(token, tokenTranslatePrefix)
		if _, ok := LanguageByCode(code); !ok {
			return Action{}, fmt.Errorf("%w: target language %q", ErrUnknownAction, code)
		}
		return TranslateToAction(code), nil
	}

	return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, token)
}
