package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"autocomplete/internal/debug"
	"autocomplete/internal/suggest"
)

// Options configures a widget.
type Options struct {
	// NumOfResults caps the visible suggestions. Defaults to suggest.DefaultLimit.
	NumOfResults int
	// Data is the local candidate pool. Ignored when Resolver is remote.
	Data []suggest.Suggestion
	// OnSelect receives the committed suggestion's value.
	OnSelect func(value string)
	// OnError receives resolution failures.
	OnError func(err error)
	// Resolver resolves queries. Defaults to suggest.LocalResolver.
	Resolver suggest.Resolver
	// CommitShowsText displays the suggestion label after a commit instead of
	// its value.
	CommitShowsText bool
	// ExitOnSelect quits the program after a commit.
	ExitOnSelect bool
	// Placeholder is shown in the empty input.
	Placeholder string
	// Width is the display width of the widget.
	Width int
}

// resolvedMsg carries the outcome of one resolution back to the update loop.
type resolvedMsg struct {
	seq     uint64
	query   string
	results []suggest.Suggestion
	err     error
}

// Controller turns input changes into resolutions and installs their results.
// It must only be driven from the bubbletea update loop.
type Controller struct {
	surface   Surface
	state     *State
	data      []suggest.Suggestion
	resolver  suggest.Resolver
	navigator *Navigator
	committer *Committer
	onError   func(error)
	exit      bool

	inputSub Subscription
	seq      uint64
	pending  bool
	lastErr  error
}

// NewController mounts the input on surface and subscribes to input changes.
func NewController(surface Surface, opts Options) *Controller {
	resolver := opts.Resolver
	if resolver == nil {
		resolver = suggest.LocalResolver{}
	}
	c := &Controller{
		surface:  surface,
		state:    NewState(opts.NumOfResults),
		data:     append([]suggest.Suggestion(nil), opts.Data...),
		resolver: resolver,
		onError:  opts.OnError,
		exit:     opts.ExitOnSelect,
	}
	c.navigator = NewNavigator(surface, c.commit)
	c.committer = &Committer{
		surface:   surface,
		navigator: c.navigator,
		onSelect:  opts.OnSelect,
		showText:  opts.CommitShowsText,
	}
	surface.MountInput()
	c.inputSub = surface.On(EventInput, func(ev Event) tea.Cmd {
		return c.OnInputChanged(ev.Text)
	})
	return c
}

// State returns the live state. Callers must not mutate it.
func (c *Controller) State() *State {
	return c.state
}

// Navigator returns the keyboard navigator.
func (c *Controller) Navigator() *Navigator {
	return c.navigator
}

// Pending reports whether the latest resolution has not settled yet.
func (c *Controller) Pending() bool {
	return c.pending
}

// LastError returns the most recent resolution failure, cleared by the next
// successful resolution.
func (c *Controller) LastError() error {
	return c.lastErr
}

// OnInputChanged starts a new query cycle for raw. Empty input is ignored.
// The previous session is torn down and the list cleared before the returned
// command resolves the query.
func (c *Controller) OnInputChanged(raw string) tea.Cmd {
	if raw == "" {
		return nil
	}
	c.state.Query = raw
	c.state.Suggestions.Clear()
	c.surface.ClearList()
	c.navigator.Disarm()

	c.seq++
	c.pending = true
	seq := c.seq
	resolver, data, limit := c.resolver, c.data, c.state.Suggestions.Limit()
	debug.Logf("query #%d issued: %q", seq, raw)

	return func() tea.Msg {
		results, err := resolver.Resolve(context.Background(), raw, data, limit)
		return resolvedMsg{seq: seq, query: raw, results: results, err: err}
	}
}

// HandleResolved applies a settled resolution if it belongs to the most
// recently issued query. Superseded results are dropped.
func (c *Controller) HandleResolved(msg resolvedMsg) tea.Cmd {
	if msg.seq != c.seq {
		debug.Logf("query #%d (%q) superseded by #%d, discarding %d results", msg.seq, msg.query, c.seq, len(msg.results))
		return nil
	}
	c.pending = false

	if msg.err != nil {
		c.lastErr = msg.err
		debug.Warn("resolution failed", "seq", msg.seq, "query", msg.query, "err", msg.err)
		if c.onError != nil {
			c.onError(msg.err)
		}
		return nil
	}

	c.lastErr = nil
	c.state.Suggestions.Set(msg.results)
	c.state.Selection.Reset()
	c.surface.RenderList(c.state.Suggestions.Items(), NoHighlight)
	c.navigator.Arm(c.state)
	debug.Logf("query #%d (%q) resolved: %d shown", msg.seq, msg.query, c.state.Suggestions.Len())
	return nil
}

func (c *Controller) commit(s suggest.Suggestion) tea.Cmd {
	if err := c.committer.Commit(s); err != nil {
		debug.Warn("commit rejected", "value", s.Value, "err", err)
		return nil
	}
	debug.Logf("committed %q", s.Value)
	if c.exit {
		return tea.Quit
	}
	return nil
}

// Close unsubscribes from the surface and ends any armed session.
func (c *Controller) Close() {
	c.navigator.Disarm()
	c.surface.Off(EventInput, c.inputSub)
}
