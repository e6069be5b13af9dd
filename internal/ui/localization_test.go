package ui

import "testing"

func TestLocalizationDefaults(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, l.GetCurrentLanguage())
	}
	if l.GetText(KeyAppTitle) != "Track Player" {
		t.Errorf("Unexpected app title %q", l.GetText(KeyAppTitle))
	}
}

func TestLocalizationSetLanguage(t *testing.T) {
	tests := []struct {
		code     string
		expected string
	}{
		{"en", "en"},
		{"ru", "ru"},
		{"pt", "pt"},
		{"de", DefaultLanguage},
		{"", DefaultLanguage},
	}

	for _, test := range tests {
		t.Run(test.code, func(t *testing.T) {
			l := NewLocalization()
			l.SetLanguage(test.code)
			if l.GetCurrentLanguage() != test.expected {
				t.Errorf("SetLanguage(%q) = %s, expected %s", test.code, l.GetCurrentLanguage(), test.expected)
			}
		})
	}
}

func TestLocalizationSystemLanguage(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("system")

	if _, ok := l.GetAvailableLanguages()[l.GetCurrentLanguage()]; !ok {
		t.Errorf("System language should resolve to an available language, got %s", l.GetCurrentLanguage())
	}
}

func TestLocalizationFallback(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("ru")

	if l.GetText(KeyNext) != "Следующий" {
		t.Errorf("Expected Russian text, got %q", l.GetText(KeyNext))
	}
	if l.GetText("missing_key") != "missing_key" {
		t.Errorf("Unknown keys should return the key itself, got %q", l.GetText("missing_key"))
	}
}

func TestLocalizationComplete(t *testing.T) {
	l := NewLocalization()
	english := l.texts[DefaultLanguage]

	for code := range l.GetAvailableLanguages() {
		texts, ok := l.texts[code]
		if !ok {
			t.Errorf("No translations for %s", code)
			continue
		}
		for key := range english {
			if texts[key] == "" {
				t.Errorf("Language %s is missing key %s", code, key)
			}
		}
	}
}
