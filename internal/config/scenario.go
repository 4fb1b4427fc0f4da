package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/demoreel/demoreel/internal/domain/entity"
)

// scenarioFile is the on-disk scenario format.
type scenarioFile struct {
	Name            string        `yaml:"name"`
	Viewport        *viewportYAML `yaml:"viewport"`
	TerminalBaseURL string        `yaml:"terminal_base_url"`
	Grid            [][]int       `yaml:"grid"`
	Panes           []paneYAML    `yaml:"panes"`
}

type viewportYAML struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type paneYAML struct {
	Kind    string `yaml:"kind"`
	Title   string `yaml:"title"`
	URL     string `yaml:"url"`
	Cmd     string `yaml:"cmd"`
	Session string `yaml:"session"`
}

// LoadScenario reads and validates a scenario file. Fields the file omits are
// filled from the application config: the recording viewport and the terminal
// multiplexer base URL.
func LoadScenario(path string, cfg *Config) (*entity.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var file scenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}

	scenario := &entity.Scenario{
		Name:            file.Name,
		Grid:            file.Grid,
		TerminalBaseURL: file.TerminalBaseURL,
	}
	if scenario.Name == "" {
		scenario.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if scenario.TerminalBaseURL == "" && cfg != nil {
		scenario.TerminalBaseURL = cfg.Terminal.BaseURL
	}

	if file.Viewport != nil {
		scenario.Viewport = entity.Viewport{Width: file.Viewport.Width, Height: file.Viewport.Height}
	} else if cfg != nil {
		scenario.Viewport = entity.Viewport{Width: cfg.Viewport.Width, Height: cfg.Viewport.Height}
	}

	for i, p := range file.Panes {
		pane, err := buildPane(i, p)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", path, err)
		}
		scenario.Panes = append(scenario.Panes, pane)
	}

	if err := validateScenario(scenario); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return scenario, nil
}

func buildPane(index int, p paneYAML) (entity.PaneSpec, error) {
	kind := entity.PaneKind(p.Kind)
	if !kind.Valid() {
		return entity.PaneSpec{}, fmt.Errorf("pane %d: unknown kind %q", index, p.Kind)
	}

	pane := entity.PaneSpec{
		Index:     index,
		Kind:      kind,
		Title:     p.Title,
		SessionID: p.Session,
	}

	switch kind {
	case entity.PaneBrowser:
		if p.Cmd != "" {
			return entity.PaneSpec{}, fmt.Errorf("pane %d: browser panes take url, not cmd", index)
		}
		pane.ContentRef = p.URL
	case entity.PaneTerminal:
		if p.URL != "" {
			return entity.PaneSpec{}, fmt.Errorf("pane %d: terminal panes take cmd, not url", index)
		}
		pane.ContentRef = p.Cmd
	}

	return pane, nil
}

func validateScenario(s *entity.Scenario) error {
	var errs []string

	if len(s.Panes) == 0 {
		errs = append(errs, "at least one pane is required")
	}
	if s.Viewport.Width <= 0 || s.Viewport.Height <= 0 {
		errs = append(errs, "viewport must be positive")
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid scenario:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// ListScenarios returns the scenario files in dir, sorted by name. Missing
// directories list as empty, not as an error.
func ListScenarios(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list scenarios: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch filepath.Ext(entry.Name()) {
		case ".yaml", ".yml":
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
