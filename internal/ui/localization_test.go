package ui

import (
	"testing"
)

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()
	english := l.texts["en"]

	for lang := range l.GetAvailableLanguages() {
		texts, ok := l.texts[lang]
		if !ok {
			t.Fatalf("Language %s has no texts", lang)
		}
		for key := range english {
			if _, found := texts[key]; !found {
				t.Errorf("Language %s is missing key %s", lang, key)
			}
		}
		if len(texts) != len(english) {
			t.Errorf("Language %s has %d texts, English has %d", lang, len(texts), len(english))
		}
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected default language en, got %s", l.GetCurrentLanguage())
	}

	l.SetLanguage("ru")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Expected language ru, got %s", l.GetCurrentLanguage())
	}
	if l.GetText(KeyInstall) != "Установить" {
		t.Errorf("Unexpected Russian text: %s", l.GetText(KeyInstall))
	}

	// Unknown languages are ignored
	l.SetLanguage("de")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Unknown language should not change current language, got %s", l.GetCurrentLanguage())
	}

	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("System language should fall back to en, got %s", l.GetCurrentLanguage())
	}
}

func TestLocalization_GetTextFallback(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("pt")

	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("Missing key should return the key itself, got %s", got)
	}

	delete(l.texts["pt"], KeyMusic)
	if got := l.GetText(KeyMusic); got != "Music" {
		t.Errorf("Missing translation should fall back to English, got %s", got)
	}
}
