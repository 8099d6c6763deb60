package models

// Language is a supported UI language code.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageArabic  Language = "ar"
)

// DefaultLanguage is used when nothing valid is persisted.
const DefaultLanguage = LanguageEnglish

// Languages lists the supported codes.
var Languages = []Language{LanguageEnglish, LanguageArabic}

// IsRTL reports whether the language is written right to left.
func (l Language) IsRTL() bool {
	return l == LanguageArabic
}

// Valid reports whether l is one of Languages.
func (l Language) Valid() bool {
	for _, s := range Languages {
		if s == l {
			return true
		}
	}
	return false
}
