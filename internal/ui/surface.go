package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"autocomplete/internal/suggest"
)

// NoHighlight marks a rendered list without an active row.
const NoHighlight = -1

// EventName identifies a host surface event.
type EventName string

const (
	// EventInput fires when the input text changes.
	EventInput EventName = "input"
	// EventKey fires for navigation keys.
	EventKey EventName = "keydown"
	// EventSelect fires when a rendered row is picked with the pointer.
	EventSelect EventName = "select"
)

// Key is a navigation key delivered with EventKey.
type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyEnter
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyEnter:
		return "enter"
	default:
		return "other"
	}
}

// Event is delivered to handlers registered with Surface.On.
type Event struct {
	Name  EventName
	Text  string // EventInput
	Key   Key    // EventKey
	Index int    // EventSelect
}

// Handler reacts to a surface event. The returned command, if any, is run by
// the bubbletea runtime.
type Handler func(Event) tea.Cmd

// Subscription identifies a registered handler so it can be removed again.
type Subscription uint64

// Surface is the rendering and input substrate the widget mounts into.
type Surface interface {
	MountInput()
	ReplaceInputValue(v string)
	RenderList(items []suggest.Suggestion, highlighted int)
	ClearList()
	On(name EventName, h Handler) Subscription
	Off(name EventName, sub Subscription)
}

type listener struct {
	sub Subscription
	h   Handler
}

// listeners is the handler registry shared by Surface implementations.
type listeners struct {
	next   Subscription
	byName map[EventName][]listener
}

func (l *listeners) add(name EventName, h Handler) Subscription {
	if l.byName == nil {
		l.byName = make(map[EventName][]listener)
	}
	l.next++
	l.byName[name] = append(l.byName[name], listener{sub: l.next, h: h})
	return l.next
}

func (l *listeners) remove(name EventName, sub Subscription) {
	current := l.byName[name]
	for i, ln := range current {
		if ln.sub == sub {
			l.byName[name] = append(current[:i:i], current[i+1:]...)
			return
		}
	}
}

func (l *listeners) count(name EventName) int {
	return len(l.byName[name])
}

// dispatch calls every handler bound to ev.Name. Handlers may add or remove
// listeners while running; the set is snapshotted first.
func (l *listeners) dispatch(ev Event) tea.Cmd {
	snapshot := append([]listener(nil), l.byName[ev.Name]...)
	var cmds []tea.Cmd
	for _, ln := range snapshot {
		if cmd := ln.h(ev); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}
