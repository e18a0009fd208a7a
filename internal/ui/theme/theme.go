// Package theme provides a semantic color system for the autocomplete widget.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the semantic colors used by the widget.
// All methods return AdaptiveColor for automatic light/dark terminal support.
type Theme interface {
	Primary() lipgloss.AdaptiveColor // Prompt, spinner, summary header
	Accent() lipgloss.AdaptiveColor  // Highlighted suggestion
	Error() lipgloss.AdaptiveColor   // Resolution failure toast

	Text() lipgloss.AdaptiveColor      // Suggestion labels
	TextMuted() lipgloss.AdaptiveColor // Hints, placeholder, footer

	Selection() lipgloss.AdaptiveColor // Highlighted row background

	BorderNormal() lipgloss.AdaptiveColor  // Unfocused input border
	BorderFocused() lipgloss.AdaptiveColor // Focused input border
}

// palette is a Theme backed by fixed light/dark pairs.
type palette struct {
	primary, accent, err     lipgloss.AdaptiveColor
	text, textMuted          lipgloss.AdaptiveColor
	selection                lipgloss.AdaptiveColor
	borderNormal, borderFocd lipgloss.AdaptiveColor
}

func (p palette) Primary() lipgloss.AdaptiveColor       { return p.primary }
func (p palette) Accent() lipgloss.AdaptiveColor        { return p.accent }
func (p palette) Error() lipgloss.AdaptiveColor         { return p.err }
func (p palette) Text() lipgloss.AdaptiveColor          { return p.text }
func (p palette) TextMuted() lipgloss.AdaptiveColor     { return p.textMuted }
func (p palette) Selection() lipgloss.AdaptiveColor     { return p.selection }
func (p palette) BorderNormal() lipgloss.AdaptiveColor  { return p.borderNormal }
func (p palette) BorderFocused() lipgloss.AdaptiveColor { return p.borderFocd }

func pair(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}
