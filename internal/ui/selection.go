package ui

import "autocomplete/internal/suggest"

// Selection tracks the active index within the store it was created for.
// Movement clamps at both ends; there is no wraparound.
type Selection struct {
	store *suggest.Store
	index int
}

// NewSelection binds a selection to store.
func NewSelection(store *suggest.Store) *Selection {
	return &Selection{store: store}
}

// MoveUp moves one row up. Returns false when already at the top or the list
// is empty.
func (s *Selection) MoveUp() bool {
	if s.store.Empty() || s.index == 0 {
		return false
	}
	s.index--
	return true
}

// MoveDown moves one row down. Returns false when already on the last row or
// the list is empty.
func (s *Selection) MoveDown() bool {
	last := s.store.Len() - 1
	if last < 0 || s.index >= last {
		return false
	}
	s.index++
	return true
}

// Current returns the active index. Meaningless on an empty store; callers
// check non-emptiness first.
func (s *Selection) Current() int {
	return s.index
}

// Reset moves the selection back to the first row.
func (s *Selection) Reset() {
	s.index = 0
}
