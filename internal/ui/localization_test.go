package ui

import "testing"

func TestLocalization_Fallbacks(t *testing.T) {
	l := NewLocalization()

	if got := l.GetText(KeyRun); got != "Run" {
		t.Errorf("Expected 'Run', got %s", got)
	}

	l.SetLanguage("fr")
	if got := l.GetText(KeyRun); got != "Lancer" {
		t.Errorf("Expected 'Lancer', got %s", got)
	}

	// Unknown languages are ignored
	l.SetLanguage("de")
	if l.GetCurrentLanguage() != "fr" {
		t.Errorf("Expected language to stay 'fr', got %s", l.GetCurrentLanguage())
	}

	// System maps to English
	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected 'en' for system language, got %s", l.GetCurrentLanguage())
	}

	// Unknown keys come back unchanged
	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("Expected key fallback, got %s", got)
	}
}

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()
	english := l.texts["en"]

	for code := range l.GetAvailableLanguages() {
		texts, ok := l.texts[code]
		if !ok {
			t.Errorf("Language %s has no texts", code)
			continue
		}
		for key := range english {
			if _, found := texts[key]; !found {
				t.Errorf("Language %s is missing key %s", code, key)
			}
		}
	}
}
