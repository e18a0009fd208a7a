package ui

import "autocomplete/internal/suggest"

// State is the widget's autocomplete state. The Controller owns it and hands
// a pointer to the Navigator for the duration of an armed session.
type State struct {
	Query       string
	Suggestions *suggest.Store
	Selection   *Selection
	// Listening is true iff a keyboard session is bound.
	Listening bool
}

// NewState creates an empty state whose store is capped at limit.
func NewState(limit int) *State {
	store := suggest.NewStore(limit)
	return &State{
		Suggestions: store,
		Selection:   NewSelection(store),
	}
}
