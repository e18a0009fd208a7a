package suggest

import (
	"context"
	"errors"
	"testing"

	appErrors "autocomplete/internal/errors"
)

var people = []Suggestion{
	{Text: "Anna", Value: "a1"},
	{Text: "Anton", Value: "a2"},
	{Text: "Bob", Value: "b1"},
}

func TestLocalResolver(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"CaseInsensitive", "an", []string{"Anna", "Anton"}},
		{"UpperQuery", "AN", []string{"Anna", "Anton"}},
		{"Middle", "nt", []string{"Anton"}},
		{"NoMatch", "zz", []string{}},
		{"Empty", "", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LocalResolver{}.Resolve(context.Background(), tt.query, people, 5)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !equalStrings(names(got), tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, names(got))
			}
		})
	}
}

func TestLocalResolverDoesNotTruncate(t *testing.T) {
	data := []Suggestion{{Text: "ab"}, {Text: "abc"}, {Text: "abcd"}}
	got, err := LocalResolver{}.Resolve(context.Background(), "ab", data, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected all 3 matches, got %d", len(got))
	}
}

func TestLocalResolverDoesNotMutateData(t *testing.T) {
	data := []Suggestion{{Text: "Bob"}, {Text: "Anna"}}
	got, _ := LocalResolver{}.Resolve(context.Background(), "a", data, 5)
	if len(got) > 0 {
		got[0].Text = "mutated"
	}
	if data[0].Text != "Bob" || data[1].Text != "Anna" {
		t.Fatalf("data was mutated: %+v", data)
	}
}

func TestRemoteResolver(t *testing.T) {
	t.Run("MapsRecords", func(t *testing.T) {
		var gotQuery string
		var gotLimit int
		r := RemoteResolver{Lookup: func(_ context.Context, q string, limit int) ([]Record, error) {
			gotQuery, gotLimit = q, limit
			return []Record{{Text: "octocat", Value: "octocat"}, {Text: "octo", Value: ""}, {Text: ""}}, nil
		}}
		got, err := r.Resolve(context.Background(), "octo", people, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotQuery != "octo" || gotLimit != 3 {
			t.Errorf("lookup called with (%q, %d)", gotQuery, gotLimit)
		}
		if !equalStrings(names(got), []string{"octocat", "octo"}) {
			t.Fatalf("expected [octocat octo], got %v", names(got))
		}
		if got[1].Value != "octo" {
			t.Errorf("expected empty value to default to text, got %q", got[1].Value)
		}
	})

	t.Run("NoRecords", func(t *testing.T) {
		r := RemoteResolver{Lookup: func(context.Context, string, int) ([]Record, error) { return nil, nil }}
		got, err := r.Resolve(context.Background(), "x", nil, 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil || len(got) != 0 {
			t.Fatalf("expected empty non-nil slice, got %v", got)
		}
	})

	t.Run("TransportFailure", func(t *testing.T) {
		cause := errors.New("connection reset")
		r := RemoteResolver{Lookup: func(context.Context, string, int) ([]Record, error) { return nil, cause }}
		_, err := r.Resolve(context.Background(), "x", nil, 5)
		if !appErrors.IsCode(err, appErrors.CodeResolutionFailed) {
			t.Fatalf("expected resolution_failed, got %v", err)
		}
		if !errors.Is(err, cause) {
			t.Fatal("expected cause to be wrapped")
		}
	})

	t.Run("KeepsLookupCode", func(t *testing.T) {
		r := RemoteResolver{Lookup: func(context.Context, string, int) ([]Record, error) {
			return nil, appErrors.New(appErrors.CodeRateLimited, "slow down", nil)
		}}
		_, err := r.Resolve(context.Background(), "x", nil, 5)
		if !appErrors.IsCode(err, appErrors.CodeRateLimited) {
			t.Fatalf("expected rate_limited, got %v", err)
		}
	})

	t.Run("MissingLookup", func(t *testing.T) {
		_, err := RemoteResolver{}.Resolve(context.Background(), "x", nil, 5)
		if !appErrors.IsCode(err, appErrors.CodeConfigurationError) {
			t.Fatalf("expected configuration_error, got %v", err)
		}
	})
}

func TestNewResolver(t *testing.T) {
	lookup := func(context.Context, string, int) ([]Record, error) { return nil, nil }
	if _, ok := NewResolver(true, lookup).(RemoteResolver); !ok {
		t.Error("expected remote resolver when enabled")
	}
	if _, ok := NewResolver(false, lookup).(LocalResolver); !ok {
		t.Error("expected local resolver when disabled")
	}
	if _, ok := NewResolver(true, nil).(LocalResolver); !ok {
		t.Error("expected local resolver without a lookup")
	}
}
