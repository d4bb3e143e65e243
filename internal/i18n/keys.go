package i18n

// Message keys of the prompt catalog
const (
	KeyChooseInterfaceLang     = "choose_interface_lang"
	KeyLanguageSelected        = "language_selected"
	KeyWelcome                 = "welcome"
	KeySendTextToTranslate     = "send_text_to_translate"
	KeySubscribePrompt         = "subscribe_prompt"
	KeySubscribeButton         = "subscribe_button"
	KeyCheckSubscriptionButton = "check_subscription_button"
	KeySubscriptionConfirmed   = "subscription_confirmed"
	KeyNotSubscribed           = "not_subscribed"
	KeyPleaseSubscribe         = "please_subscribe"
	KeyChooseTargetLanguage    = "choose_target_language"
	KeyTranslateToArabic       = "translate_to_arabic"
	KeyTranslateToEnglish      = "translate_to_english"
	KeyMoreLanguages           = "more_languages"
	KeyBackButton              = "back_button"
	KeyNoTextFound             = "no_text_found"
	KeyTranslationError        = "translation_error"
	KeySendAnotherText         = "send_another_text"
	KeyHelpMessage             = "help_message"
	KeyOriginalText            = "original_text"
	KeyTranslatedText          = "translated_text"
	KeyWelcomeBackNoText       = "welcome_back_no_text"
)

// AllKeys lists every key the bot renders
var AllKeys = []string{
	KeyChooseInterfaceLang, KeyLanguageSelected, KeyWelcome, KeySendTextToTranslate,
	KeySubscribePrompt, KeySubscribeButton, KeyCheckSubscriptionButton,
	KeySubscriptionConfirmed, KeyNotSubscribed, KeyPleaseSubscribe,
	KeyChooseTargetLanguage, KeyTranslateToArabic, KeyTranslateToEnglish,
	KeyMoreLanguages, KeyBackButton, KeyNoTextFound, KeyTranslationError,
	KeySendAnotherText, KeyHelpMessage, KeyOriginalText, KeyTranslatedText,
	KeyWelcomeBackNoText,
}
