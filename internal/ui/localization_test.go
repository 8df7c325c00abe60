package ui

import "testing"

func TestLocalization_SetLanguage(t *testing.T) {
	tests := []struct {
		lang     string
		expected string
	}{
		{"en", "en"},
		{"ko", "ko"},
		{"ru", "ru"},
		{"pt", "pt"},
		{"system", "en"},
		{"xx", "en"},
	}

	for _, tt := range tests {
		l := NewLocalization()
		l.SetLanguage(tt.lang)
		if got := l.GetCurrentLanguage(); got != tt.expected {
			t.Errorf("SetLanguage(%q) current = %q, expected %q", tt.lang, got, tt.expected)
		}
	}
}

func TestLocalization_GetText(t *testing.T) {
	l := NewLocalization()

	if got := l.GetText(KeyLoadAll); got != "Load All Images" {
		t.Errorf("GetText(KeyLoadAll) = %q, expected %q", got, "Load All Images")
	}
	if got := l.GetText("missing_key"); got != "missing_key" {
		t.Errorf("GetText(missing) = %q, expected key itself", got)
	}

	l.SetLanguage("ko")
	if got := l.GetText(KeyLoad); got != "불러오기" {
		t.Errorf("GetText(KeyLoad) in ko = %q, expected %q", got, "불러오기")
	}
}

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()
	for lang := range l.GetAvailableLanguages() {
		texts, ok := l.texts[lang]
		if !ok {
			t.Errorf("language %q has no texts", lang)
			continue
		}
		for key := range l.texts["en"] {
			if texts[key] == "" {
				t.Errorf("language %q is missing key %q", lang, key)
			}
		}
	}
}
