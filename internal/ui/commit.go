package ui

import (
	appErrors "autocomplete/internal/errors"
	"autocomplete/internal/suggest"
)

// Committer finalizes a selection: it notifies onSelect, replaces the input
// text and ends the navigator session. The suggestion store is left as is.
type Committer struct {
	surface   Surface
	navigator *Navigator
	onSelect  func(value string)
	showText  bool
}

// Commit finalizes s. Committing without an armed session is a contract
// violation and changes nothing.
func (c *Committer) Commit(s suggest.Suggestion) error {
	if !c.navigator.Armed() {
		return appErrors.New(appErrors.CodeContractViolation, "commit without an active navigation session", nil)
	}
	if c.onSelect != nil {
		c.onSelect(s.Value)
	}
	display := s.Value
	if c.showText {
		display = s.Text
	}
	c.surface.ReplaceInputValue(display)
	c.navigator.Disarm()
	return nil
}
