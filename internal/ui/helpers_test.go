package ui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"autocomplete/internal/suggest"
)

var people = []suggest.Suggestion{
	{Text: "Anna", Value: "a1"},
	{Text: "Anton", Value: "a2"},
	{Text: "Bob", Value: "b1"},
}

// fakeSurface records what the widget asked the host to do.
type fakeSurface struct {
	listeners

	mounts      int
	renders     int
	clears      int
	items       []suggest.Suggestion
	highlighted int
	replaced    []string
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{highlighted: NoHighlight}
}

func (f *fakeSurface) MountInput() { f.mounts++ }

func (f *fakeSurface) ReplaceInputValue(v string) { f.replaced = append(f.replaced, v) }

func (f *fakeSurface) RenderList(items []suggest.Suggestion, highlighted int) {
	f.renders++
	f.items = append([]suggest.Suggestion(nil), items...)
	f.highlighted = highlighted
}

func (f *fakeSurface) ClearList() {
	f.clears++
	f.items = nil
	f.highlighted = NoHighlight
}

func (f *fakeSurface) On(name EventName, h Handler) Subscription { return f.add(name, h) }

func (f *fakeSurface) Off(name EventName, sub Subscription) { f.remove(name, sub) }

func (f *fakeSurface) press(k Key) tea.Cmd {
	return f.dispatch(Event{Name: EventKey, Key: k})
}

func (f *fakeSurface) lastReplaced() string {
	if len(f.replaced) == 0 {
		return ""
	}
	return f.replaced[len(f.replaced)-1]
}

// stubResolver answers queries through fn and records every call.
type stubResolver struct {
	queries []string
	fn      func(query string) ([]suggest.Suggestion, error)
}

func (s *stubResolver) Resolve(_ context.Context, query string, data []suggest.Suggestion, limit int) ([]suggest.Suggestion, error) {
	s.queries = append(s.queries, query)
	if s.fn == nil {
		return suggest.LocalResolver{}.Resolve(context.Background(), query, data, limit)
	}
	return s.fn(query)
}

// resolve runs a query command and returns its settled message.
func resolve(t *testing.T, cmd tea.Cmd) resolvedMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a resolve command")
	}
	msg, ok := cmd().(resolvedMsg)
	if !ok {
		t.Fatalf("expected resolvedMsg from command, got %T", msg)
	}
	return msg
}

func texts(items []suggest.Suggestion) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = s.Text
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// collectMsgs runs cmd and every command batched inside it.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	var msgs []tea.Msg
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		msg := c()
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
			continue
		}
		msgs = append(msgs, msg)
	}
	return msgs
}

func hasQuit(msgs []tea.Msg) bool {
	for _, msg := range msgs {
		if _, ok := msg.(tea.QuitMsg); ok {
			return true
		}
	}
	return false
}
