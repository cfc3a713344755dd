package i18n_test

import (
	"testing"

	"golang.org/x/text/language"
	"gotest.tools/v3/assert"

	"github.com/nikbrunner/lcl/internal/i18n"
)

func TestNew_Matching(t *testing.T) {
	tests := []struct {
		locale string
		want   language.Tag
	}{
		{"", language.English},
		{"en_US.UTF-8", language.English},
		{"de_DE.UTF-8", language.German},
		{"de-AT", language.German},
		{"fr_FR", language.English},
		{"garbage!!", language.English},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			l, err := i18n.New(tt.locale)
			assert.NilError(t, err)
			assert.Equal(t, l.Tag(), tt.want)
		})
	}
}

func TestLocalizer_T(t *testing.T) {
	en := i18n.MustNew("en")
	assert.Equal(t, en.T(i18n.TitleCommands), "Commands")
	assert.Equal(t, en.T(i18n.TitleNotFound), "Not found")
	assert.Equal(t, en.T(i18n.TitleDefault), "Linux")
	assert.Equal(t, en.T(i18n.MessageCopied, "tar"), "Copied tar")

	de := i18n.MustNew("de")
	assert.Equal(t, de.T(i18n.TitleCommands), "Befehle")
	assert.Equal(t, de.T(i18n.InfoBody, 1, 2, 3),
		"1 Befehle, 2 Grundlagen-Kategorien, 3 Tipps. Offline-Referenz für die Linux-Kommandozeile.")
}

func TestDetectLocale(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "de_DE.UTF-8")
	assert.Equal(t, i18n.DetectLocale(), "de_DE.UTF-8")

	t.Setenv("LANG", "C")
	assert.Equal(t, i18n.DetectLocale(), "")
}
