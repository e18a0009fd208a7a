package suggest

import (
	"context"
	"fmt"
	"strings"

	appErrors "autocomplete/internal/errors"
)

// Resolver turns a query into an ordered list of suggestions.
// Implementations must not mutate data.
type Resolver interface {
	Resolve(ctx context.Context, query string, data []Suggestion, limit int) ([]Suggestion, error)
}

// Record is one raw entry returned by a remote lookup.
type Record struct {
	Text  string
	Value string
}

// LookupFunc performs a remote lookup for query, asking for at most limit records.
type LookupFunc func(ctx context.Context, query string, limit int) ([]Record, error)

// NewResolver returns the remote resolver when remote mode is enabled and a
// lookup is available, otherwise the local filter.
func NewResolver(remoteEnabled bool, lookup LookupFunc) Resolver {
	if remoteEnabled && lookup != nil {
		return RemoteResolver{Lookup: lookup}
	}
	return LocalResolver{}
}

// LocalResolver filters the local pool by case-insensitive substring match on
// Text. Order is preserved and the result is not truncated.
type LocalResolver struct{}

// Resolve implements Resolver.
func (LocalResolver) Resolve(_ context.Context, query string, data []Suggestion, _ int) ([]Suggestion, error) {
	if query == "" {
		return []Suggestion{}, nil
	}
	needle := strings.ToLower(query)
	results := make([]Suggestion, 0, len(data))
	for _, item := range data {
		if strings.Contains(strings.ToLower(item.Text), needle) {
			results = append(results, item)
		}
	}
	return results, nil
}

// RemoteResolver delegates to an injected lookup and ignores the local pool.
type RemoteResolver struct {
	Lookup LookupFunc
}

// Resolve implements Resolver. Lookup failures come back as
// CodeResolutionFailed unless the lookup already attached a code.
func (r RemoteResolver) Resolve(ctx context.Context, query string, _ []Suggestion, limit int) ([]Suggestion, error) {
	if query == "" {
		return []Suggestion{}, nil
	}
	if r.Lookup == nil {
		return nil, appErrors.New(appErrors.CodeConfigurationError, "remote resolver has no lookup", nil)
	}
	records, err := r.Lookup(ctx, query, limit)
	if err != nil {
		if appErrors.CodeOf(err) != appErrors.CodeUnknown {
			return nil, err
		}
		return nil, appErrors.New(appErrors.CodeResolutionFailed, fmt.Sprintf("resolve %q", query), err)
	}
	results := make([]Suggestion, 0, len(records))
	for _, rec := range records {
		if rec.Text == "" {
			continue
		}
		value := rec.Value
		if value == "" {
			value = rec.Text
		}
		results = append(results, Suggestion{Text: rec.Text, Value: value})
	}
	return results, nil
}
