package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"

	"autocomplete/internal/suggest"
	"autocomplete/internal/ui/theme"
)

const (
	defaultWidth = 40
	minWidth     = 10
	charLimit    = 256
	labelPrefix  = 3 // padding plus the "▸ " marker
)

// Widget is the terminal host surface: a bubbletea model pairing a text input
// with a suggestion list. It implements Surface for its Controller.
type Widget struct {
	keys       KeyMap
	input      textinput.Model
	spinner    spinner.Model
	listeners  listeners
	controller *Controller

	items       []suggest.Suggestion
	highlighted int
	mounted     bool
	spinning    bool
	width       int
}

// New builds a widget and its controller from opts.
func New(opts Options) *Widget {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = opts.Placeholder
	ti.CharLimit = charLimit

	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}
	if width < minWidth {
		width = minWidth
	}

	w := &Widget{
		keys:        DefaultKeyMap(),
		input:       ti,
		spinner:     spinner.New(spinner.WithSpinner(spinner.Dot)),
		highlighted: NoHighlight,
		width:       width,
	}
	w.input.Width = width - 4
	w.controller = NewController(w, opts)
	return w
}

// Surface implementation

// MountInput focuses the text input.
func (w *Widget) MountInput() {
	w.mounted = true
	w.input.Focus()
}

// ReplaceInputValue sets the input text without emitting EventInput.
func (w *Widget) ReplaceInputValue(v string) {
	w.input.SetValue(v)
	w.input.CursorEnd()
}

// RenderList shows items with the row at highlighted marked active.
func (w *Widget) RenderList(items []suggest.Suggestion, highlighted int) {
	w.items = append([]suggest.Suggestion(nil), items...)
	if highlighted < 0 || highlighted >= len(w.items) {
		highlighted = NoHighlight
	}
	w.highlighted = highlighted
}

// ClearList empties the visible list.
func (w *Widget) ClearList() {
	w.items = nil
	w.highlighted = NoHighlight
}

// On registers h for events named name.
func (w *Widget) On(name EventName, h Handler) Subscription {
	return w.listeners.add(name, h)
}

// Off removes a handler registered with On.
func (w *Widget) Off(name EventName, sub Subscription) {
	w.listeners.remove(name, sub)
}

// tea.Model implementation

// Init implements tea.Model.
func (w *Widget) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (w *Widget) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resolvedMsg:
		return w, w.controller.HandleResolved(msg)

	case spinner.TickMsg:
		if !w.controller.Pending() {
			w.spinning = false
			return w, nil
		}
		var cmd tea.Cmd
		w.spinner, cmd = w.spinner.Update(msg)
		return w, cmd

	case tea.WindowSizeMsg:
		if msg.Width > 0 && msg.Width < w.width {
			w.width = max(msg.Width, minWidth)
			w.input.Width = w.width - 4
		}
		return w, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if idx, ok := w.rowAt(msg.Y); ok {
				return w, w.listeners.dispatch(Event{Name: EventSelect, Index: idx})
			}
		}
		return w, nil

	case tea.KeyMsg:
		return w, w.handleKey(msg)
	}

	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return w, cmd
}

func (w *Widget) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, w.keys.Quit):
		return tea.Quit
	case key.Matches(msg, w.keys.Theme):
		theme.CycleTheme()
		return nil
	}
	if k, ok := w.keys.navigationKey(msg); ok {
		return w.listeners.dispatch(Event{Name: EventKey, Key: k})
	}

	before := w.input.Value()
	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	after := w.input.Value()
	if after == before {
		return cmd
	}
	return tea.Batch(cmd, w.listeners.dispatch(Event{Name: EventInput, Text: after}), w.startSpinner())
}

func (w *Widget) startSpinner() tea.Cmd {
	if !w.controller.Pending() || w.spinning {
		return nil
	}
	w.spinning = true
	return w.spinner.Tick
}

// rowAt maps a screen row to a rendered suggestion index.
func (w *Widget) rowAt(y int) (int, bool) {
	idx := y - lipgloss.Height(w.inputView())
	if idx < 0 || idx >= len(w.items) {
		return 0, false
	}
	return idx, true
}

// View implements tea.Model.
func (w *Widget) View() string {
	var b strings.Builder
	b.WriteString(w.inputView())

	labelWidth := uint(max(w.width-labelPrefix, 1))
	for i, s := range w.items {
		b.WriteString("\n")
		label := truncate.StringWithTail(s.Text, labelWidth, "…")
		if i == w.highlighted {
			b.WriteString(styleOptionHighlight().Render("▸ " + label))
		} else {
			b.WriteString(styleOption().Render("  " + label))
		}
	}

	if w.controller.Pending() {
		b.WriteString("\n")
		b.WriteString(stylePending().Render(w.spinner.View() + " searching…"))
	}
	if err := w.controller.LastError(); err != nil {
		b.WriteString("\n")
		b.WriteString(styleErrorToast().Render(ansi.Truncate("✗ "+err.Error(), w.width, "…")))
	}

	b.WriteString("\n")
	b.WriteString(w.footerView())
	return b.String()
}

func (w *Widget) inputView() string {
	style := styleInput()
	if w.input.Focused() {
		style = styleInputFocused()
	}
	return style.Width(w.width).Render(w.input.View())
}

func (w *Widget) footerView() string {
	bindings := w.keys.footerBindings()
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, styleHintKey().Render(h.Key)+" "+styleHint().Render(h.Desc))
	}
	return strings.Join(parts, styleHint().Render(" • "))
}

// Accessors

// Controller returns the widget's controller.
func (w *Widget) Controller() *Controller {
	return w.controller
}

// InputValue returns the current input text.
func (w *Widget) InputValue() string {
	return w.input.Value()
}

// Items returns the rendered suggestions.
func (w *Widget) Items() []suggest.Suggestion {
	return append([]suggest.Suggestion(nil), w.items...)
}

// Highlighted returns the highlighted row or NoHighlight.
func (w *Widget) Highlighted() int {
	return w.highlighted
}

// Mounted reports whether the input has been mounted.
func (w *Widget) Mounted() bool {
	return w.mounted
}
