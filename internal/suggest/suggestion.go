// Package suggest holds the candidate model and the query resolvers that feed
// the autocomplete widget.
package suggest

// DefaultLimit is the number of suggestions shown when no limit is configured.
const DefaultLimit = 5

// Suggestion is a single candidate: a display label plus the payload handed to
// the commit callback.
type Suggestion struct {
	Text  string `json:"text"`
	Value string `json:"value"`
}

// Store holds the current candidate list together with its truncation limit.
type Store struct {
	limit int
	items []Suggestion
}

// NewStore creates an empty store. Non-positive limits fall back to DefaultLimit.
func NewStore(limit int) *Store {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Store{limit: limit}
}

// Limit returns the configured cap.
func (s *Store) Limit() int {
	return s.limit
}

// Set replaces the stored list with at most Limit items of results.
// The input slice is copied and never retained.
func (s *Store) Set(results []Suggestion) {
	s.items = Truncate(results, s.limit)
}

// Clear drops every stored suggestion.
func (s *Store) Clear() {
	s.items = nil
}

// Len returns the number of stored suggestions.
func (s *Store) Len() int {
	return len(s.items)
}

// Empty reports whether the store holds no suggestions.
func (s *Store) Empty() bool {
	return len(s.items) == 0
}

// At returns the suggestion at index i.
func (s *Store) At(i int) (Suggestion, bool) {
	if i < 0 || i >= len(s.items) {
		return Suggestion{}, false
	}
	return s.items[i], true
}

// Items returns a copy of the stored suggestions.
func (s *Store) Items() []Suggestion {
	out := make([]Suggestion, len(s.items))
	copy(out, s.items)
	return out
}

// Truncate returns a copy of at most limit leading items.
func Truncate(results []Suggestion, limit int) []Suggestion {
	n := len(results)
	if limit >= 0 && n > limit {
		n = limit
	}
	out := make([]Suggestion, n)
	copy(out, results[:n])
	return out
}
