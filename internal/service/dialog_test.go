package service

import (
	"context"
	"fmt"
	"testing"

	"relaybot/internal/domain"
	"relaybot/internal/i18n"
	"relaybot/internal/repository/memory"
	"relaybot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testChannel = "Traveler_01"

const picker = "Please select the language you want me to speak:\n\nالرجاء اختيار اللغة التي تريدني أن أتحدث بها:"

type dialogFixture struct {
	dialog     *Dialog
	sessions   *memory.SessionRepo
	checker    *testutil.MockMembershipChecker
	translator *testutil.MockTranslator
	user       domain.User
}

func newDialogFixture(t *testing.T) *dialogFixture {
	t.Helper()

	logger := testutil.NewTestLogger()
	catalog, err := i18n.NewCatalog(logger)
	require.NoError(t, err)

	f := &dialogFixture{
		sessions:   memory.NewSessionRepo(),
		checker:    new(testutil.MockMembershipChecker),
		translator: new(testutil.MockTranslator),
		user:       testutil.NewTestUser(42),
	}
	f.dialog = NewDialog(
		f.sessions,
		catalog,
		NewSubscriptionService(f.checker, testChannel, 0, logger),
		NewTranslationService(f.translator, 0, 0, logger),
		logger,
	)
	return f
}

func (f *dialogFixture) subscribed(status string) {
	f.checker.On("MemberStatus", mock.Anything, testChannel, f.user.ID).Return(status, nil)
}

func (f *dialogFixture) withLanguage(lang domain.InterfaceLanguage) {
	f.sessions.SetInterfaceLanguage(f.user.ID, lang)
}

func assertPicker(t *testing.T, replies []domain.Reply, edit bool) {
	t.Helper()
	require.Len(t, replies, 1)
	assert.Equal(t, picker, replies[0].Text)
	assert.Equal(t, edit, replies[0].Edit)
	require.Len(t, replies[0].Keyboard, 2)
	assert.Equal(t, domain.SetInterfaceLanguageAction(domain.LangEnglish), replies[0].Keyboard[0][0].Action)
	assert.Equal(t, domain.SetInterfaceLanguageAction(domain.LangArabic), replies[0].Keyboard[1][0].Action)
}

func TestDialog_NewUserAlwaysGetsPicker(t *testing.T) {
	ctx := context.Background()

	events := []struct {
		name string
		edit bool
		run  func(f *dialogFixture) []domain.Reply
	}{
		{name: "start", run: func(f *dialogFixture) []domain.Reply { return f.dialog.Start(ctx, f.user) }},
		{name: "help", run: func(f *dialogFixture) []domain.Reply { return f.dialog.Help(ctx, f.user) }},
		{name: "languages", run: func(f *dialogFixture) []domain.Reply { return f.dialog.Languages(ctx, f.user) }},
		{name: "text", run: func(f *dialogFixture) []domain.Reply { return f.dialog.Text(ctx, f.user, "Hello") }},
		{name: "more languages", edit: true, run: func(f *dialogFixture) []domain.Reply {
			return f.dialog.Button(ctx, f.user, domain.Action{Kind: domain.ActionShowMoreLanguages})
		}},
		{name: "back", edit: true, run: func(f *dialogFixture) []domain.Reply {
			return f.dialog.Button(ctx, f.user, domain.Action{Kind: domain.ActionBackToMain})
		}},
		{name: "translate", edit: true, run: func(f *dialogFixture) []domain.Reply {
			return f.dialog.Button(ctx, f.user, domain.TranslateToAction("fr"))
		}},
	}

	for _, tt := range events {
		t.Run(tt.name, func(t *testing.T) {
			f := newDialogFixture(t)

			assertPicker(t, tt.run(f), tt.edit)
			// Repeating the event yields the same prompt
			assertPicker(t, tt.run(f), tt.edit)

			assert.Equal(t, domain.StateNew, f.sessions.Get(f.user.ID).State())
			f.checker.AssertNotCalled(t, "MemberStatus", mock.Anything, mock.Anything, mock.Anything)
			f.translator.AssertNotCalled(t, "Translate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestDialog_SelectLanguageSubscribed(t *testing.T) {
	f := newDialogFixture(t)
	f.subscribed("member")

	replies := f.dialog.Button(context.Background(), f.user, domain.SetInterfaceLanguageAction(domain.LangEnglish))

	require.Len(t, replies, 2)
	assert.Equal(t, "Please select the language you want me to speak:\n\n✅ English selected.", replies[0].Text)
	assert.True(t, replies[0].Edit)

	assert.Equal(t, "Welcome Tester! 🌍\n\n📝 Send a text to translate it!", replies[1].Text)
	assert.True(t, replies[1].HTML)
	assert.False(t, replies[1].Edit)
	assert.Empty(t, replies[1].Keyboard)

	assert.Equal(t, domain.StateReady, f.sessions.Get(f.user.ID).State())
	f.checker.AssertExpectations(t)
}

func TestDialog_SelectLanguageNotSubscribed(t *testing.T) {
	f := newDialogFixture(t)
	f.subscribed("left")

	replies := f.dialog.Button(context.Background(), f.user, domain.SetInterfaceLanguageAction(domain.LangEnglish))

	require.Len(t, replies, 2)
	welcome := replies[1]
	assert.Equal(t,
		"Welcome Tester! 🌍\n\nTo use this bot, please subscribe to our channel first:\n@Traveler_01\n\nAfter subscribing, click 'Check Subscription' below.",
		welcome.Text,
	)
	assertSubscribeKeyboard(t, welcome.Keyboard, "Subscribe to Channel", "Check Subscription")
	assert.Equal(t, domain.LangEnglish, f.sessions.Get(f.user.ID).InterfaceLanguage)
}

func TestDialog_SelectArabic(t *testing.T) {
	f := newDialogFixture(t)
	f.subscribed("member")

	replies := f.dialog.Button(context.Background(), f.user, domain.SetInterfaceLanguageAction(domain.LangArabic))

	require.Len(t, replies, 2)
	assert.Equal(t, "الرجاء اختيار اللغة التي تريدني أن أتحدث بها:\n\n✅ تم اختيار العربية.", replies[0].Text)
	assert.Equal(t, "مرحبًا Tester! 🌍\n\n📝 أرسل نصًا لترجمته!", replies[1].Text)

	replies = f.dialog.Help(context.Background(), f.user)
	require.Len(t, replies, 1)
	assert.Equal(t, "📝 أرسل أي نص. ثم اختر لغة لترجمته إليها.", replies[0].Text)
}

func TestDialog_StartKnownUser(t *testing.T) {
	f := newDialogFixture(t)
	f.withLanguage(domain.LangEnglish)
	f.subscribed("administrator")

	replies := f.dialog.Start(context.Background(), f.user)

	require.Len(t, replies, 1)
	assert.Equal(t, "Welcome Tester! 🌍\n\n📝 Send a text to translate it!", replies[0].Text)
	f.checker.AssertNumberOfCalls(t, "MemberStatus", 1)
}

func TestDialog_TextSubscribed(t *testing.T) {
	f := newDialogFixture(t)
	f.withLanguage(domain.LangEnglish)
	f.subscribed("member")

	replies := f.dialog.Text(context.Background(), f.user, "Hello")

	require.Len(t, replies, 1)
	assert.Equal(t, "Please choose the target language for your text:", replies[0].Text)
	assertMainKeyboard(t, replies[0].Keyboard)

	session := f.sessions.Get(f.user.ID)
	assert.Equal(t, domain.StateAwaitingTarget, session.State())
	assert.Equal(t, "Hello", session.PendingText)
}

func TestDialog_TextNotSubscribed(t *testing.T) {
	tests := []struct {
		name   string
		status string
		err    error
	}{
		{name: "left the channel", status: "left"},
		{name: "membership lookup fails", err: fmt.Errorf("chat not found")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDialogFixture(t)
			f.withLanguage(domain.LangEnglish)
			f.checker.On("MemberStatus", mock.Anything, testChannel, f.user.ID).Return(tt.status, tt.err)

			replies := f.dialog.Text(context.Background(), f.user, "Hello")

			require.Len(t, replies, 1)
			assert.Equal(t,
				"Please subscribe to our channel @Traveler_01 to use the bot. Click 'Check Subscription' after subscribing.",
				replies[0].Text,
			)
			assertSubscribeKeyboard(t, replies[0].Keyboard, "Subscribe to Channel", "Check Subscription")
			assert.False(t, f.sessions.Get(f.user.ID).HasPending)
		})
	}
}

func TestDialog_TextGateKeepsPreviousPending(t *testing.T) {
	f := newDialogFixture(t)
	f.withLanguage(domain.LangEnglish)
	f.checker.On("MemberStatus", mock.Anything, testChannel, f.user.ID).Return("member", nil).Once()
	f.checker.On("MemberStatus", mock.Anything, testChannel, f.user.ID).Return("kicked", nil).Once()

	f.dialog.Text(context.Background(), f.user, "first")
	f.dialog.Text(context.Background(), f.user, "second")

	session := f.sessions.Get(f.user.ID)
	assert.True(t, session.HasPending)
	assert.Equal(t, "first", session.PendingText)
	f.checker.AssertExpectations(t)
}

func TestDialog_TranslateScenario(t *testing.T) {
	f := newDialogFixture(t)
	f.withLanguage(domain.LangEnglish)
	f.subscribed("member")
	f.translator.On("Translate", mock.Anything, "auto", "fr", "Hello").Return("Bonjour", nil).Once()

	f.dialog.Text(context.Background(), f.user, "Hello")
	replies := f.dialog.Button(context.Background(), f.user, domain.TranslateToAction("fr"))

	require.Len(t, replies, 1)
	assert.True(t, replies[0].Edit)
	assert.Equal(t,
		"📝 Original: Hello\n🌍 Translated (French): Bonjour\n\nSend another text to translate again.",
		replies[0].Text,
	)
	assert.False(t, f.sessions.Get(f.user.ID).HasPending)
	assert.Equal(t, domain.StateReady, f.sessions.Get(f.user.ID).State())

	// A second press without new text finds nothing to translate
	replies = f.dialog.Button(context.Background(), f.user, domain.TranslateToAction("fr"))
	require.Len(t, replies, 1)
	assert.Equal(t, "❗ No text found to translate. Please send a text message first.", replies[0].Text)

	f.translator.AssertNumberOfCalls(t, "Translate", 1)
}

func TestDialog_TranslateFailurePreservesPending(t *testing.T) {
	f := newDialogFixture(t)
	f.withLanguage(domain.LangEnglish)
	f.sessions.SetPendingText(f.user.ID, "Hello")
	f.translator.On("Translate", mock.Anything, "auto", "de", "Hello").Return("", fmt.Errorf("503"))

	replies := f.dialog.Button(context.Background(), f.user, domain.TranslateToAction("de"))

	require.Len(t, replies, 1)
	assert.Equal(t, "An error occurred during translation. Please try again or send a different text.", replies[0].Text)
	f.translator.AssertNumberOfCalls(t, "Translate", 2)

	session := f.sessions.Get(f.user.ID)
	assert.Equal(t, domain.StateAwaitingTarget, session.State())
	assert.Equal(t, "Hello", session.PendingText)

	// Another target can still be picked
	f.translator.On("Translate", mock.Anything, "auto", "es", "Hello").Return("Hola", nil)
	replies = f.dialog.Button(context.Background(), f.user, domain.TranslateToAction("es"))
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Text, "Hola")
	assert.False(t, f.sessions.Get(f.user.ID).HasPending)
}

func TestDialog_ShowMoreLanguages(t *testing.T) {
	f := newDialogFixture(t)
	f.withLanguage(domain.LangEnglish)
	f.sessions.SetPendingText(f.user.ID, "Hello")

	replies := f.dialog.Button(context.Background(), f.user, domain.Action{Kind: domain.ActionShowMoreLanguages})

	require.Len(t, replies, 1)
	reply := replies[0]
	assert.True(t, reply.Edit)
	assert.Equal(t, "Please choose the target language for your text:", reply.Text)

	// 41 languages two per row, then the back row
	require.Len(t, reply.Keyboard, 22)
	assert.Equal(t, "Afrikaans", reply.Keyboard[0][0].Text)
	assert.Equal(t, domain.TranslateToAction("af"), reply.Keyboard[0][0].Action)
	assert.Equal(t, "Azerbaijani", reply.Keyboard[0][1].Text)
	require.Len(t, reply.Keyboard[20], 1)
	assert.Equal(t, "Vietnamese", reply.Keyboard[20][0].Text)

	back := reply.Keyboard[21]
	require.Len(t, back, 1)
	assert.Equal(t, "⬅️ Back", back[0].Text)
	assert.Equal(t, domain.ActionBackToMain, back[0].Action.Kind)

	for _, row := range reply.Keyboard[:21] {
		for _, btn := range row {
			assert.False(t, domain.IsPrimary(btn.Action.TargetCode))
		}
	}
	assert.Equal(t, domain.StateAwaitingTarget, f.sessions.Get(f.user.ID).State())
}

func TestDialog_Back(t *testing.T) {
	t.Run("with pending text", func(t *testing.T) {
		f := newDialogFixture(t)
		f.withLanguage(domain.LangEnglish)
		f.sessions.SetPendingText(f.user.ID, "Hello")

		replies := f.dialog.Button(context.Background(), f.user, domain.Action{Kind: domain.ActionBackToMain})

		require.Len(t, replies, 1)
		assert.Equal(t, "Please choose the target language for your text:", replies[0].Text)
		assertMainKeyboard(t, replies[0].Keyboard)
	})

	t.Run("without pending text", func(t *testing.T) {
		f := newDialogFixture(t)
		f.withLanguage(domain.LangEnglish)

		replies := f.dialog.Button(context.Background(), f.user, domain.Action{Kind: domain.ActionBackToMain})

		require.Len(t, replies, 1)
		assert.Equal(t, "Welcome back! Send a text to translate.", replies[0].Text)
		assert.Empty(t, replies[0].Keyboard)
	})
}

func TestDialog_CheckSubscription(t *testing.T) {
	t.Run("subscribed", func(t *testing.T) {
		f := newDialogFixture(t)
		f.withLanguage(domain.LangEnglish)
		f.subscribed("creator")

		replies := f.dialog.Button(context.Background(), f.user, domain.Action{Kind: domain.ActionCheckSubscription})

		require.Len(t, replies, 1)
		assert.Equal(t, "✅ Subscription confirmed! Now send the text you want to translate.", replies[0].Text)
		assert.True(t, replies[0].Edit)
	})

	t.Run("not subscribed", func(t *testing.T) {
		f := newDialogFixture(t)
		f.withLanguage(domain.LangArabic)
		f.subscribed("left")

		replies := f.dialog.Button(context.Background(), f.user, domain.Action{Kind: domain.ActionCheckSubscription})

		require.Len(t, replies, 1)
		assert.Equal(t, "❌ أنت لم تشترك بعد. يرجى الاشتراك ثم النقر على 'التحقق من الاشتراك' مرة أخرى.", replies[0].Text)
		assertSubscribeKeyboard(t, replies[0].Keyboard, "اشترك في القناة", "التحقق من الاشتراك")
	})

	t.Run("before choosing a language", func(t *testing.T) {
		f := newDialogFixture(t)
		f.subscribed("member")

		replies := f.dialog.Button(context.Background(), f.user, domain.Action{Kind: domain.ActionCheckSubscription})

		require.Len(t, replies, 1)
		assert.Equal(t, "✅ Subscription confirmed! Now send the text you want to translate.", replies[0].Text)
		assert.Equal(t, domain.StateNew, f.sessions.Get(f.user.ID).State())
	})
}

func TestDialog_Languages(t *testing.T) {
	f := newDialogFixture(t)
	f.withLanguage(domain.LangEnglish)

	replies := f.dialog.Languages(context.Background(), f.user)

	require.Len(t, replies, 1)
	assert.False(t, replies[0].Edit)
	assert.Len(t, replies[0].Keyboard, 22)
}

func TestDialog_UnknownActionIgnored(t *testing.T) {
	f := newDialogFixture(t)
	f.withLanguage(domain.LangEnglish)
	f.sessions.SetPendingText(f.user.ID, "Hello")

	replies := f.dialog.Button(context.Background(), f.user, domain.Action{})

	assert.Nil(t, replies)
	assert.Equal(t, "Hello", f.sessions.Get(f.user.ID).PendingText)
}

func assertMainKeyboard(t *testing.T, keyboard [][]domain.Button) {
	t.Helper()
	require.Len(t, keyboard, 2)
	require.Len(t, keyboard[0], 2)
	assert.Equal(t, "Translate to Arabic 🇸🇦", keyboard[0][0].Text)
	assert.Equal(t, domain.TranslateToAction("ar"), keyboard[0][0].Action)
	assert.Equal(t, "Translate to English 🇬🇧", keyboard[0][1].Text)
	assert.Equal(t, domain.TranslateToAction("en"), keyboard[0][1].Action)
	require.Len(t, keyboard[1], 1)
	assert.Equal(t, "More Languages 🌐", keyboard[1][0].Text)
	assert.Equal(t, domain.ActionShowMoreLanguages, keyboard[1][0].Action.Kind)
}

func assertSubscribeKeyboard(t *testing.T, keyboard [][]domain.Button, subscribeText, checkText string) {
	t.Helper()
	require.Len(t, keyboard, 2)
	assert.Equal(t, subscribeText, keyboard[0][0].Text)
	assert.Equal(t, "https://t.me/Traveler_01", keyboard[0][0].URL)
	assert.Equal(t, checkText, keyboard[1][0].Text)
	assert.Equal(t, domain.ActionCheckSubscription, keyboard[1][0].Action.Kind)
}
