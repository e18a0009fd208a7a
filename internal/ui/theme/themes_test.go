package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestAllThemesRegistered(t *testing.T) {
	expected := []string{"dracula", "nord", "tokyonight"}
	available := Available()
	if len(available) != len(expected) {
		t.Fatalf("expected themes %v, got %v", expected, available)
	}
	for i, name := range expected {
		if available[i] != name {
			t.Errorf("Available()[%d] = %q, want %q", i, available[i], name)
		}
	}
}

func TestSetTheme(t *testing.T) {
	original := CurrentName()
	t.Cleanup(func() { SetTheme(original) })

	if !SetTheme("nord") {
		t.Fatal("SetTheme(nord) should succeed")
	}
	if CurrentName() != "nord" {
		t.Errorf("CurrentName() = %q, want nord", CurrentName())
	}
	if SetTheme("does-not-exist") {
		t.Error("SetTheme should fail for an unknown theme")
	}
	if CurrentName() != "nord" {
		t.Error("failed SetTheme must not change the active theme")
	}
}

func TestCycleTheme(t *testing.T) {
	original := CurrentName()
	t.Cleanup(func() { SetTheme(original) })

	SetTheme("dracula")
	if got := CycleTheme(); got != "nord" {
		t.Errorf("CycleTheme() from dracula = %q, want nord", got)
	}
	if got := CycleTheme(); got != "tokyonight" {
		t.Errorf("CycleTheme() from nord = %q, want tokyonight", got)
	}
	if got := CycleTheme(); got != "dracula" {
		t.Errorf("CycleTheme() should wrap around, got %q", got)
	}
}

func TestThemesDefineEveryColor(t *testing.T) {
	original := CurrentName()
	t.Cleanup(func() { SetTheme(original) })

	for _, name := range Available() {
		t.Run(name, func(t *testing.T) {
			SetTheme(name)
			th := Current()
			colors := map[string]lipgloss.AdaptiveColor{
				"Primary":       th.Primary(),
				"Accent":        th.Accent(),
				"Error":         th.Error(),
				"Text":          th.Text(),
				"TextMuted":     th.TextMuted(),
				"Selection":     th.Selection(),
				"BorderNormal":  th.BorderNormal(),
				"BorderFocused": th.BorderFocused(),
			}
			for method, c := range colors {
				if c.Light == "" || c.Dark == "" {
					t.Errorf("%s.%s() has an empty variant: %+v", name, method, c)
				}
			}
		})
	}
}
