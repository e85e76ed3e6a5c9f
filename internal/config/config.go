// ABOUTME: Settings loading with global + project config merge
// ABOUTME: YAML-based configuration decoded with gopkg.in/yaml.v3; unknown keys are rejected

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	pilog "github.com/mauromedda/hecto-go/internal/log"
)

// Defaults applied when a field is left empty.
const (
	DefaultWelcome = "Hecto editor"
	DefaultHold    = 5 * time.Second
)

// Settings holds the merged configuration.
type Settings struct {
	Welcome    string `yaml:"welcome,omitempty"`
	Hold       string `yaml:"hold,omitempty"`
	LogLevel   string `yaml:"log_level,omitempty"`
	LogFile    string `yaml:"log_file,omitempty"`
	ShowStatus *bool  `yaml:"show_status,omitempty"`
}

// Load reads and merges global and project-local settings.
// Project settings override global settings. Missing files are skipped.
func Load(projectRoot string) (*Settings, error) {
	global, err := loadFile(GlobalConfigFile())
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := merge(global, project)
	ResolveEnvVars(merged)
	return merged, nil
}

// LoadFile reads a single settings file. Unlike Load, a missing file is an
// error: it is used for paths the user named explicitly.
func LoadFile(path string) (*Settings, error) {
	s, err := loadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	ResolveEnvVars(s)
	return s, nil
}

// loadFile reads a Settings from a YAML file. Returns zero Settings if the
// file does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}

	var s Settings
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays project settings onto global settings.
// Non-zero project values override global values.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global

	if project.Welcome != "" {
		result.Welcome = project.Welcome
	}
	if project.Hold != "" {
		result.Hold = project.Hold
	}
	if project.LogLevel != "" {
		result.LogLevel = project.LogLevel
	}
	if project.LogFile != "" {
		result.LogFile = project.LogFile
	}
	if project.ShowStatus != nil {
		v := *project.ShowStatus
		result.ShowStatus = &v
	}

	return &result
}

// WelcomeText returns the banner text, falling back to DefaultWelcome.
func (s *Settings) WelcomeText() string {
	if s.Welcome == "" {
		return DefaultWelcome
	}
	return s.Welcome
}

// HoldDuration parses Hold. An empty value means DefaultHold; zero or
// negative durations are rejected because raw mode swallows Ctrl-C and the
// hold timer is then the only way out.
func (s *Settings) HoldDuration() (time.Duration, error) {
	if s.Hold == "" {
		return DefaultHold, nil
	}
	d, err := time.ParseDuration(s.Hold)
	if err != nil {
		return 0, fmt.Errorf("parsing hold: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("hold must be positive, got %s", s.Hold)
	}
	return d, nil
}

// Level parses LogLevel.
func (s *Settings) Level() (slog.Level, error) {
	return pilog.ParseLevel(s.LogLevel)
}

// StatusEnabled reports whether the status line is drawn. Default true.
func (s *Settings) StatusEnabled() bool {
	return s.ShowStatus == nil || *s.ShowStatus
}
