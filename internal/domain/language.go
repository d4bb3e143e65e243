package domain

import "sort"

// Language is a translation target offered on the keyboards
type Language struct {
	Name string
	Code string
}

// Codes of the two languages shown on the main keyboard
const (
	CodeArabic  = "ar"
	CodeEnglish = "en"
)

// translationLanguages is the fixed catalog of translation targets
var translationLanguages = []Language{
	{"Arabic", "ar"}, {"English", "en"}, {"Afrikaans", "af"}, {"Azerbaijani", "az"},
	{"Bulgarian", "bg"}, {"Chinese", "zh-CN"}, {"Czech", "cs"}, {"Danish", "da"},
	{"Dutch", "nl"}, {"Finnish", "fi"}, {"French", "fr"}, {"Georgian", "ka"},
	{"German", "de"}, {"Greek", "el"}, {"Gujarati", "gu"}, {"Hebrew", "he"},
	{"Hindi", "hi"}, {"Hungarian", "hu"}, {"Indonesian", "id"}, {"Italian", "it"},
	{"Japanese", "ja"}, {"Korean", "ko"}, {"Malay", "ms"}, {"Nepali", "ne"},
	{"Norwegian", "no"}, {"Persian", "fa"}, {"Polish", "pl"}, {"Portuguese", "pt"},
	{"Punjabi", "pa"}, {"Romanian", "ro"}, {"Russian", "ru"}, {"Slovak", "sk"},
	{"Slovenian", "sl"}, {"Spanish", "es"}, {"Swahili", "sw"}, {"Swedish", "sv"},
	{"Tamil", "ta"}, {"Telugu", "te"}, {"Thai", "th"}, {"Turkish", "tr"},
	{"Ukrainian", "uk"}, {"Urdu", "ur"}, {"Vietnamese", "vi"},
}

var languagesByCode = func() map[string]Language {
	m := make(map[string]Language, len(translationLanguages))
	for _, l := range translationLanguages {
		m[l.Code] = l
	}
	return m
}()

// AllLanguages returns a copy of the translation catalog
func AllLanguages() []Language {
	out := make([]Language, len(translationLanguages))
	copy(out, translationLanguages)
	return out
}

// LanguageByCode looks up a catalog entry by its translation service code
func LanguageByCode(code string) (Language, bool) {
	l, ok := languagesByCode[code]
	return l, ok
}

// IsPrimary reports whether code is shown on the main keyboard
func IsPrimary(code string) bool {
	return code == CodeArabic || code == CodeEnglish
}

// SecondaryLanguages returns non-primary languages sorted by name
func SecondaryLanguages() []Language {
	out := make([]Language, 0, len(translationLanguages))
	for _, l := range translationLanguages {
		if !IsPrimary(l.Code) {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
