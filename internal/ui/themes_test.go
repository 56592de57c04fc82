package ui

import "testing"

func TestInitTheme_NoColor(t *testing.T) {
	InitTheme(true)
	theme := ActiveTheme()
	if theme.Name != "none" {
		t.Errorf("theme = %q, want none", theme.Name)
	}
	if ColorPrimary() != "" || ColorReset() != "" {
		t.Error("no-color theme must emit empty escape codes")
	}
}

func TestInitTheme_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	InitTheme(false)
	if ActiveTheme().Name != "none" {
		t.Errorf("NO_COLOR env should suppress colors, got theme %q", ActiveTheme().Name)
	}
}

func TestThemesCarryEscapeCodes(t *testing.T) {
	for _, theme := range []Theme{DarkTheme, LightTheme} {
		if theme.Primary == "" || theme.Error == "" || theme.Reset == "" {
			t.Errorf("theme %q missing escape codes", theme.Name)
		}
	}
}
