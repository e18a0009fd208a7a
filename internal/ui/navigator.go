package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"autocomplete/internal/debug"
	"autocomplete/internal/suggest"
)

// Navigator binds keyboard navigation to one State snapshot at a time.
// It is Unarmed (no handler bound) or Armed (handlers bound to state).
type Navigator struct {
	surface  Surface
	onCommit func(suggest.Suggestion) tea.Cmd

	state   *State
	keySub  Subscription
	pickSub Subscription
}

// NewNavigator creates an unarmed navigator. onCommit runs for Enter and for
// pointer picks while armed.
func NewNavigator(surface Surface, onCommit func(suggest.Suggestion) tea.Cmd) *Navigator {
	return &Navigator{surface: surface, onCommit: onCommit}
}

// Armed reports whether a session is bound.
func (n *Navigator) Armed() bool {
	return n.state != nil
}

// Arm starts a session over state, releasing any previous session first.
// Nothing is bound when state has no suggestions.
func (n *Navigator) Arm(state *State) bool {
	n.Disarm()
	if state == nil || state.Suggestions.Empty() {
		return false
	}
	state.Selection.Reset()
	n.state = state
	n.keySub = n.surface.On(EventKey, n.handleKey)
	n.pickSub = n.surface.On(EventSelect, n.handlePick)
	state.Listening = true
	n.render()
	return true
}

// Disarm releases the bound session. Safe to call when unarmed.
func (n *Navigator) Disarm() {
	if n.state == nil {
		return
	}
	n.surface.Off(EventKey, n.keySub)
	n.surface.Off(EventSelect, n.pickSub)
	n.state.Listening = false
	n.state = nil
	n.keySub, n.pickSub = 0, 0
}

func (n *Navigator) render() {
	n.surface.RenderList(n.state.Suggestions.Items(), n.state.Selection.Current())
}

func (n *Navigator) handleKey(ev Event) tea.Cmd {
	if n.state == nil {
		return nil
	}
	switch ev.Key {
	case KeyUp:
		if n.state.Selection.MoveUp() {
			n.render()
		}
	case KeyDown:
		if n.state.Selection.MoveDown() {
			n.render()
		}
	case KeyEnter:
		s, ok := n.state.Suggestions.At(n.state.Selection.Current())
		if !ok {
			return nil
		}
		return n.onCommit(s)
	}
	return nil
}

func (n *Navigator) handlePick(ev Event) tea.Cmd {
	if n.state == nil {
		return nil
	}
	s, ok := n.state.Suggestions.At(ev.Index)
	if !ok {
		debug.Logf("ignoring pick of row %d outside %d suggestions", ev.Index, n.state.Suggestions.Len())
		return nil
	}
	return n.onCommit(s)
}
