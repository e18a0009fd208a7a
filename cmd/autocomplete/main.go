package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"autocomplete/internal/config"
	"autocomplete/internal/dataset"
	"autocomplete/internal/debug"
	"autocomplete/internal/remote"
	"autocomplete/internal/suggest"
	"autocomplete/internal/ui"
	"autocomplete/internal/ui/theme"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

const dataLoadTimeout = 10 * time.Second

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

func main() {
	if err := config.Initialize(); err != nil {
		fmt.Printf("Error initializing config: %v\n", err)
		os.Exit(1)
	}

	versionFlag := flag.Bool("version", false, "Print version information and exit")
	debugFlag := flag.Bool("debug", false, "Write debug logs to ~/.autocomplete/debug.log")
	dataFlag := flag.String("data", config.GetString(config.KeyDataPath), "Candidate pool file (.json or sqlite); empty uses the built-in sample")
	remoteFlag := flag.Bool("remote", config.GetBool(config.KeyRemoteEnabled), "Resolve queries against the GitHub user search API (or set AC_REMOTE_ENABLED=true)")
	numResultsFlag := flag.Int("num-results", config.NumOfResults(), "Maximum number of suggestions shown")
	themeFlag := flag.String("theme", config.GetString(config.KeyTheme), "Color theme ("+strings.Join(theme.Available(), ", ")+")")
	commitDisplayFlag := flag.String("commit-display", config.GetString(config.KeyCommitDisplay), "What the input shows after a selection (value, text)")
	copyFlag := flag.Bool("copy", false, "Copy the selected value to the clipboard")
	flag.Parse()

	if *versionFlag {
		printVersion()
		os.Exit(0)
	}

	visited := map[string]struct{}{}
	flag.CommandLine.Visit(func(f *flag.Flag) {
		visited[f.Name] = struct{}{}
	})

	overrides := computeOverrides(runtimeFlags{
		dataPath:      dataFlag,
		remote:        remoteFlag,
		numResults:    numResultsFlag,
		theme:         themeFlag,
		commitDisplay: commitDisplayFlag,
	}, visited)
	if err := config.ApplyOverrides(overrides); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := debug.Init(*debugFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: debug logging disabled: %v\n", err)
	}

	err := run(&session{copy: *copyFlag, start: time.Now()}, func(w *ui.Widget) programRunner {
		return tea.NewProgram(w, tea.WithAltScreen(), tea.WithMouseCellMotion())
	})
	debug.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type programRunner interface {
	Run() (tea.Model, error)
}

type programFactory func(*ui.Widget) programRunner

// session collects what happened during one program run.
type session struct {
	copy     bool
	start    time.Time
	selected []string
	errs     int
}

func (s *session) onSelect(value string) {
	s.selected = append(s.selected, value)
	if !s.copy {
		return
	}
	if err := writeClipboard(value); err != nil {
		debug.Warn("clipboard write failed", "err", err)
	}
}

func (s *session) onError(error) {
	s.errs++
}

func run(s *session, factory programFactory) error {
	ctx, cancel := context.WithTimeout(context.Background(), dataLoadTimeout)
	opts, err := buildOptions(ctx, s)
	cancel()
	if err != nil {
		return err
	}

	themeName := applyTheme(config.GetString(config.KeyTheme))
	if err := runProgram(opts, ui.New, factory); err != nil {
		return err
	}

	if current := theme.CurrentName(); current != themeName {
		if err := config.SaveTheme(current); err != nil {
			debug.Warn("saving theme failed", "theme", current, "err", err)
		}
	}
	printExitSummary(os.Stdout, ExitSummary{
		Version:  Version,
		Selected: s.selected,
		Failures: s.errs,
		Duration: time.Since(s.start),
	})
	return nil
}

func runProgram(opts ui.Options, builder func(ui.Options) *ui.Widget, factory programFactory) error {
	if builder == nil {
		return errors.New("widget builder is nil")
	}
	w := builder(opts)
	if factory == nil {
		return fmt.Errorf("program factory is nil")
	}
	prog := factory(w)
	if prog == nil {
		return fmt.Errorf("program is nil")
	}
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run UI: %w", err)
	}
	w.Controller().Close()
	return nil
}

// buildOptions assembles widget options from the active configuration.
func buildOptions(ctx context.Context, s *session) (ui.Options, error) {
	data, err := dataset.Load(ctx, strings.TrimSpace(config.GetString(config.KeyDataPath)))
	if err != nil {
		return ui.Options{}, err
	}
	remoteEnabled := config.GetBool(config.KeyRemoteEnabled)

	placeholder := "Type to search…"
	if remoteEnabled {
		placeholder = "Search GitHub users…"
	}
	return ui.Options{
		NumOfResults:    config.NumOfResults(),
		Data:            data,
		OnSelect:        s.onSelect,
		OnError:         s.onError,
		Resolver:        newResolver(remoteEnabled),
		CommitShowsText: config.CommitShowsText(),
		Placeholder:     placeholder,
	}, nil
}

func newResolver(remoteEnabled bool) suggest.Resolver {
	if !remoteEnabled {
		return suggest.NewResolver(false, nil)
	}
	client := remote.NewGitHubUsers(
		remote.WithBaseURL(config.GetString(config.KeyRemoteBaseURL)),
		remote.WithTimeout(config.RemoteTimeout()),
	)
	return suggest.NewResolver(true, client.Lookup())
}

// applyTheme activates name, falling back to the default theme for unknown
// names. It returns the theme that ended up active.
func applyTheme(name string) string {
	if !theme.SetTheme(name) {
		if name != "" {
			debug.Warn("unknown theme, using default", "theme", name)
		}
		theme.SetTheme(config.DefaultTheme)
	}
	return theme.CurrentName()
}

type runtimeFlags struct {
	dataPath      *string
	remote        *bool
	numResults    *int
	theme         *string
	commitDisplay *string
}

// computeOverrides returns the config keys explicitly set on the command line.
func computeOverrides(flags runtimeFlags, visited map[string]struct{}) map[string]any {
	overrides := map[string]any{}
	if flagWasExplicitlySet("data", visited) && flags.dataPath != nil {
		overrides[config.KeyDataPath] = strings.TrimSpace(*flags.dataPath)
	}
	if flagWasExplicitlySet("remote", visited) && flags.remote != nil {
		overrides[config.KeyRemoteEnabled] = *flags.remote
	}
	if flagWasExplicitlySet("num-results", visited) && flags.numResults != nil {
		overrides[config.KeyNumOfResults] = *flags.numResults
	}
	if flagWasExplicitlySet("theme", visited) && flags.theme != nil {
		overrides[config.KeyTheme] = strings.TrimSpace(*flags.theme)
	}
	if flagWasExplicitlySet("commit-display", visited) && flags.commitDisplay != nil {
		overrides[config.KeyCommitDisplay] = strings.TrimSpace(*flags.commitDisplay)
	}
	return overrides
}

func flagWasExplicitlySet(name string, visited map[string]struct{}) bool {
	_, ok := visited[name]
	return ok
}
