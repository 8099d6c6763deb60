package i18n

import (
	"testing"

	"github.com/dmitrijs2005/nutrio/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		lang models.Language
		key  string
		want string
	}{
		{"english", models.LanguageEnglish, "logout", "Logout"},
		{"arabic", models.LanguageArabic, "logout", "تسجيل الخروج"},
		{"arabic falls back to english", models.LanguageArabic, "noRestaurantsFound", "No restaurants found"},
		{"unknown language falls back to english", models.Language("fr"), "retry", "Retry"},
		{"unknown key returns key", models.LanguageArabic, "doesNotExist", "doesNotExist"},
		{"empty key", models.LanguageEnglish, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Translate(tt.lang, tt.key))
		})
	}
}

func TestTranslate_FormatArgs(t *testing.T) {
	assert.Equal(t, "Welcome, Ana", Translate(models.LanguageEnglish, "welcome", "Ana"))
}

func TestEveryBaseKeyResolvesInEveryLanguage(t *testing.T) {
	all := keys()
	require.NotEmpty(t, all)

	for _, lang := range models.Languages {
		for _, k := range all {
			got := Translate(lang, k)
			assert.NotEmpty(t, got, "%s/%s", lang, k)
			assert.NotEqual(t, k, got, "%s/%s must not fall through to the key", lang, k)
		}
	}
}

func TestHas(t *testing.T) {
	assert.True(t, has(models.LanguageArabic, "home"))
	assert.False(t, has(models.LanguageArabic, "searchRestaurants"))
	assert.False(t, has(models.LanguageEnglish, "nope"))
}
