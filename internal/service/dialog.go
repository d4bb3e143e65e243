package service

import (
	"context"
	"errors"
	"fmt"

	"relaybot/internal/domain"
	"relaybot/internal/i18n"
	"relaybot/internal/repository"

	"go.uber.org/zap"
)

// Prompts resolves localized prompt text
type Prompts interface {
	Get(lang domain.InterfaceLanguage, key string, data map[string]any) string
	Picker() string
}

// Dialog is the per-user state machine behind the bot. It decides which
// replies an inbound event produces and updates the session accordingly.
type Dialog struct {
	sessions      repository.SessionRepository
	prompts       Prompts
	subscriptions *SubscriptionService
	translations  *TranslationService
	logger        *zap.Logger
}

// NewDialog creates a new dialog controller
func NewDialog(
	sessions repository.SessionRepository,
	prompts Prompts,
	subscriptions *SubscriptionService,
	translations *TranslationService,
	logger *zap.Logger,
) *Dialog {
	return &Dialog{
		sessions:      sessions,
		prompts:       prompts,
		subscriptions: subscriptions,
		translations:  translations,
		logger:        logger,
	}
}

// Start handles the /start command
func (d *Dialog) Start(ctx context.Context, user domain.User) []domain.Reply {
	session := d.sessions.Get(user.ID)
	if session.State() == domain.StateNew {
		return d.picker(false)
	}
	return []domain.Reply{d.welcome(ctx, user, session.InterfaceLanguage)}
}

// Help handles the /help command
func (d *Dialog) Help(ctx context.Context, user domain.User) []domain.Reply {
	session := d.sessions.Get(user.ID)
	if session.State() == domain.StateNew {
		return d.picker(false)
	}
	return []domain.Reply{{Text: d.prompt(session.InterfaceLanguage, i18n.KeyHelpMessage)}}
}

// Languages handles the /languages command by listing every secondary target
func (d *Dialog) Languages(ctx context.Context, user domain.User) []domain.Reply {
	session := d.sessions.Get(user.ID)
	if session.State() == domain.StateNew {
		return d.picker(false)
	}
	lang := session.InterfaceLanguage
	return []domain.Reply{{
		Text:     d.prompt(lang, i18n.KeyChooseTargetLanguage),
		Keyboard: d.secondaryKeyboard(lang),
	}}
}

// Text handles a free-text message: store it and ask for a target language
func (d *Dialog) Text(ctx context.Context, user domain.User, text string) []domain.Reply {
	session := d.sessions.Get(user.ID)
	if session.State() == domain.StateNew {
		return d.picker(false)
	}
	lang := session.InterfaceLanguage

	if !d.subscriptions.IsSubscribed(ctx, user.ID) {
		return []domain.Reply{{
			Text:     d.promptData(lang, i18n.KeyPleaseSubscribe, d.channelData()),
			Keyboard: d.subscribeKeyboard(lang),
			HTML:     true,
		}}
	}

	d.sessions.SetPendingText(user.ID, text)
	d.logger.Debug("Text pending translation",
		zap.Int64("user_id", user.ID),
		zap.Int("length", len(text)),
	)

	return []domain.Reply{{
		Text:     d.prompt(lang, i18n.KeyChooseTargetLanguage),
		Keyboard: d.mainKeyboard(lang),
	}}
}

// Button handles a decoded inline button press
func (d *Dialog) Button(ctx context.Context, user domain.User, action domain.Action) []domain.Reply {
	// Language selection and subscription checks work before a language is chosen
	switch action.Kind {
	case domain.ActionSetInterfaceLanguage:
		return d.setInterfaceLanguage(ctx, user, action.Language)
	case domain.ActionCheckSubscription:
		return d.checkSubscription(ctx, user)
	}

	session := d.sessions.Get(user.ID)
	if session.State() == domain.StateNew {
		return d.picker(true)
	}
	lang := session.InterfaceLanguage

	switch action.Kind {
	case domain.ActionShowMoreLanguages:
		return []domain.Reply{{
			Text:     d.prompt(lang, i18n.KeyChooseTargetLanguage),
			Keyboard: d.secondaryKeyboard(lang),
			Edit:     true,
		}}

	case domain.ActionBackToMain:
		if !session.HasPending {
			return []domain.Reply{{Text: d.prompt(lang, i18n.KeyWelcomeBackNoText), Edit: true}}
		}
		return []domain.Reply{{
			Text:     d.prompt(lang, i18n.KeyChooseTargetLanguage),
			Keyboard: d.mainKeyboard(lang),
			Edit:     true,
		}}

	case domain.ActionTranslateTo:
		return d.translate(ctx, user, session, action.TargetCode)
	}

	d.logger.Warn("Unhandled button action",
		zap.Int64("user_id", user.ID),
		zap.Int("kind", int(action.Kind)),
	)
	return nil
}

func (d *Dialog) setInterfaceLanguage(ctx context.Context, user domain.User, lang domain.InterfaceLanguage) []domain.Reply {
	d.sessions.SetInterfaceLanguage(user.ID, lang)
	d.logger.Info("Interface language selected",
		zap.Int64("user_id", user.ID),
		zap.String("lang", string(lang)),
	)

	confirmation := d.prompt(lang, i18n.KeyChooseInterfaceLang) + "\n\n" + d.prompt(lang, i18n.KeyLanguageSelected)
	return []domain.Reply{
		{Text: confirmation, Edit: true},
		d.welcome(ctx, user, lang),
	}
}

func (d *Dialog) checkSubscription(ctx context.Context, user domain.User) []domain.Reply {
	lang := d.sessions.Get(user.ID).InterfaceLanguage.OrDefault()

	if d.subscriptions.IsSubscribed(ctx, user.ID) {
		return []domain.Reply{{Text: d.prompt(lang, i18n.KeySubscriptionConfirmed), Edit: true}}
	}
	return []domain.Reply{{
		Text:     d.prompt(lang, i18n.KeyNotSubscribed),
		Keyboard: d.subscribeKeyboard(lang),
		Edit:     true,
	}}
}

func (d *Dialog) translate(ctx context.Context, user domain.User, session domain.Session, code string) []domain.Reply {
	lang := session.InterfaceLanguage
	if !session.HasPending {
		return []domain.Reply{{Text: d.prompt(lang, i18n.KeyNoTextFound), Edit: true}}
	}

	target, ok := domain.LanguageByCode(code)
	if !ok {
		target = domain.Language{Name: code, Code: code}
	}

	translated, err := d.translations.Translate(ctx, session.PendingText, code)
	if err != nil {
		if !errors.Is(err, domain.ErrTranslationFailed) {
			d.logger.Error("Unexpected translation error", zap.Error(err))
		}
		// Pending text stays so the user can pick another language
		return []domain.Reply{{Text: d.prompt(lang, i18n.KeyTranslationError), Edit: true}}
	}

	d.sessions.ClearPendingText(user.ID)
	d.logger.Info("Text translated",
		zap.Int64("user_id", user.ID),
		zap.String("target", code),
	)

	text := fmt.Sprintf("%s %s\n%s %s\n\n%s",
		d.prompt(lang, i18n.KeyOriginalText), session.PendingText,
		d.promptData(lang, i18n.KeyTranslatedText, map[string]any{"LanguageName": target.Name}), translated,
		d.prompt(lang, i18n.KeySendAnotherText),
	)
	return []domain.Reply{{Text: text, Edit: true}}
}

// welcome greets the user and either invites text or asks them to subscribe
func (d *Dialog) welcome(ctx context.Context, user domain.User, lang domain.InterfaceLanguage) domain.Reply {
	greeting := d.promptData(lang, i18n.KeyWelcome, map[string]any{"UserMention": user.Mention})

	if !d.subscriptions.IsSubscribed(ctx, user.ID) {
		return domain.Reply{
			Text:     greeting + "\n\n" + d.promptData(lang, i18n.KeySubscribePrompt, d.channelData()),
			Keyboard: d.subscribeKeyboard(lang),
			HTML:     true,
		}
	}
	return domain.Reply{
		Text: greeting + "\n\n" + d.prompt(lang, i18n.KeySendTextToTranslate),
		HTML: true,
	}
}

// picker asks a user without an interface language to choose one
func (d *Dialog) picker(edit bool) []domain.Reply {
	return []domain.Reply{{
		Text:     d.prompts.Picker(),
		Keyboard: pickerKeyboard(),
		Edit:     edit,
	}}
}

func (d *Dialog) channelData() map[string]any {
	return map[string]any{"Channel": d.subscriptions.Channel()}
}

func (d *Dialog) prompt(lang domain.InterfaceLanguage, key string) string {
	return d.prompts.Get(lang, key, nil)
}

func (d *Dialog) promptData(lang domain.InterfaceLanguage, key string, data map[string]any) string {
	return d.prompts.Get(lang, key, data)
}
