// Package dataset loads the local candidate pool used when remote mode is off.
//
// JSON files hold an array of {"text", "value"} objects. SQLite files are read
// from a suggestions(text, value, position) table in read-only mode.
package dataset

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	appErrors "autocomplete/internal/errors"
	"autocomplete/internal/suggest"
)

var sample = []suggest.Suggestion{
	{Text: "Anna", Value: "a1"},
	{Text: "Anton", Value: "a2"},
	{Text: "Barbara", Value: "b2"},
	{Text: "Bob", Value: "b1"},
	{Text: "Carlos", Value: "c1"},
	{Text: "Diana", Value: "d1"},
	{Text: "Edward", Value: "e1"},
	{Text: "Fiona", Value: "f1"},
	{Text: "Hannah", Value: "h1"},
	{Text: "Johanna", Value: "j1"},
}

// Sample returns a copy of the built-in candidate pool.
func Sample() []suggest.Suggestion {
	out := make([]suggest.Suggestion, len(sample))
	copy(out, sample)
	return out
}

// Load reads the candidate pool at path. An empty path returns Sample().
func Load(ctx context.Context, path string) ([]suggest.Suggestion, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return Sample(), nil
	}

	var (
		items []suggest.Suggestion
		err   error
	)
	switch strings.ToLower(filepath.Ext(trimmed)) {
	case ".json":
		items, err = loadJSON(trimmed)
	case ".db", ".sqlite", ".sqlite3":
		items, err = loadSQLite(ctx, trimmed)
	default:
		return nil, appErrors.New(appErrors.CodeDataLoadFailed, fmt.Sprintf("unsupported data file %s", trimmed), nil)
	}
	if err != nil {
		return nil, appErrors.New(appErrors.CodeDataLoadFailed, fmt.Sprintf("load %s", trimmed), err)
	}
	return normalize(items), nil
}

func loadJSON(path string) ([]suggest.Suggestion, error) {
	//nolint:gosec // G304: Data path is provided by the user on purpose
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	var items []suggest.Suggestion
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return items, nil
}

// buildSQLiteDSN creates a read-only DSN for the given path.
func buildSQLiteDSN(dbPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(dbPath),
	}
	q := url.Values{}
	q.Set("mode", "ro")
	q.Set("_busy_timeout", "3000")
	u.RawQuery = q.Encode()
	return u.String()
}

func loadSQLite(ctx context.Context, path string) ([]suggest.Suggestion, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat: %w", err)
	}
	db, err := sql.Open("sqlite", buildSQLiteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	defer func() {
		_ = db.Close()
	}()
	db.SetMaxOpenConns(1)

	rows, err := db.QueryContext(ctx, `
		SELECT text, COALESCE(value, '')
		FROM suggestions
		ORDER BY position, rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("query suggestions: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var items []suggest.Suggestion
	for rows.Next() {
		var s suggest.Suggestion
		if err := rows.Scan(&s.Text, &s.Value); err != nil {
			return nil, fmt.Errorf("scan suggestion: %w", err)
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

// normalize drops entries without text and defaults empty values to the text.
func normalize(items []suggest.Suggestion) []suggest.Suggestion {
	out := make([]suggest.Suggestion, 0, len(items))
	for _, s := range items {
		if strings.TrimSpace(s.Text) == "" {
			continue
		}
		if s.Value == "" {
			s.Value = s.Text
		}
		out = append(out, s)
	}
	return out
}
