package service

import (
	"relaybot/internal/domain"
	"relaybot/internal/i18n"
)

// secondaryPerRow is the number of language buttons per row in the full list
const secondaryPerRow = 2

// interfaceLanguageLabels are shown in their own language, so they are not localized
var interfaceLanguageLabels = map[domain.InterfaceLanguage]string{
	domain.LangEnglish: "English 🇬🇧",
	domain.LangArabic:  "العربية 🇸🇦",
}

// pickerKeyboard offers one button per interface language
func pickerKeyboard() [][]domain.Button {
	rows := make([][]domain.Button, 0, len(domain.InterfaceLanguages))
	for _, lang := range domain.InterfaceLanguages {
		label, ok := interfaceLanguageLabels[lang]
		if !ok {
			label = string(lang)
		}
		rows = append(rows, []domain.Button{{
			Text:   label,
			Action: domain.SetInterfaceLanguageAction(lang),
		}})
	}
	return rows
}

// mainKeyboard offers the primary targets and the overflow button
func (d *Dialog) mainKeyboard(lang domain.InterfaceLanguage) [][]domain.Button {
	return [][]domain.Button{
		{
			{Text: d.prompt(lang, i18n.KeyTranslateToArabic), Action: domain.TranslateToAction(domain.CodeArabic)},
			{Text: d.prompt(lang, i18n.KeyTranslateToEnglish), Action: domain.TranslateToAction(domain.CodeEnglish)},
		},
		{
			{Text: d.prompt(lang, i18n.KeyMoreLanguages), Action: domain.Action{Kind: domain.ActionShowMoreLanguages}},
		},
	}
}

// secondaryKeyboard lists every non-primary target by name, then a back button
func (d *Dialog) secondaryKeyboard(lang domain.InterfaceLanguage) [][]domain.Button {
	languages := domain.SecondaryLanguages()

	rows := make([][]domain.Button, 0, len(languages)/secondaryPerRow+2)
	for i := 0; i < len(languages); i += secondaryPerRow {
		end := i + secondaryPerRow
		if end > len(languages) {
			end = len(languages)
		}

		row := make([]domain.Button, 0, secondaryPerRow)
		for _, l := range languages[i:end] {
			row = append(row, domain.Button{Text: l.Name, Action: domain.TranslateToAction(l.Code)})
		}
		rows = append(rows, row)
	}

	rows = append(rows, []domain.Button{
		{Text: d.prompt(lang, i18n.KeyBackButton), Action: domain.Action{Kind: domain.ActionBackToMain}},
	})
	return rows
}

// subscribeKeyboard links to the channel and offers a re-check
func (d *Dialog) subscribeKeyboard(lang domain.InterfaceLanguage) [][]domain.Button {
	return [][]domain.Button{
		{{Text: d.prompt(lang, i18n.KeySubscribeButton), URL: d.subscriptions.ChannelLink()}},
		{{Text: d.prompt(lang, i18n.KeyCheckSubscriptionButton), Action: domain.Action{Kind: domain.ActionCheckSubscription}}},
	}
}
