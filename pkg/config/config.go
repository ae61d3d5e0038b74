package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/renatogalera/coco/pkg/committypes"
)

// FileNames are the config file names looked up in a directory, in order.
var FileNames = []string{"coco.yaml", "coco.yml", ".cocorc"}

// ErrNoTypes is returned by Validate when the merged configuration offers no
// commit type to pick from.
var ErrNoTypes = errors.New("at least one commit type must be configured")

// Theme maps a colour slot (primary, scope:bg, ...) to a hex colour.
type Theme map[string]string

// Get returns the colour for key, or "" when unset.
func (t Theme) Get(key string) string {
	return t[key]
}

// Merge returns a copy of t with every key of other written over it.
func (t Theme) Merge(other Theme) Theme {
	merged := make(Theme, len(t)+len(other))
	for k, v := range t {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}

func DefaultTheme() Theme {
	return Theme{
		"primary":      "#dcff3f",
		"primary-fg":   "#000000",
		"textarea:bg":  "#050f21",
		"textarea:fg":  "#ffffff",
		"textarea:sel": "#232a38",
		"scope:bg":     "#125acc",
		"scope:fg":     "#ffffff",
		"scope:sec":    "#000000",
	}
}

// Config is the wizard configuration. It is immutable once the wizard starts.
type Config struct {
	Types             []committypes.CommitType `yaml:"types" validate:"required,min=1,dive"`
	Scopes            []string                 `yaml:"scopes"`
	UseEmoji          bool                     `yaml:"useEmoji"`
	AskScope          bool                     `yaml:"askScope"`
	AskBody           bool                     `yaml:"askBody"`
	AskFooter         bool                     `yaml:"askFooter"`
	AskBreakingChange bool                     `yaml:"askBreakingChange"`
	Theme             Theme                    `yaml:"theme,omitempty"`
	Template          string                   `yaml:"template,omitempty"`
	Locale            string                   `yaml:"locale,omitempty"`
}

// Default returns the built-in configuration every file layer is merged over.
func Default() *Config {
	return &Config{
		Types:             committypes.Default(),
		Scopes:            []string{},
		UseEmoji:          false,
		AskScope:          true,
		AskBody:           true,
		AskFooter:         true,
		AskBreakingChange: true,
		Theme:             DefaultTheme(),
	}
}

// layer is one config file. A nil field means the key was absent from the file.
type layer struct {
	Types             *[]committypes.CommitType `yaml:"types"`
	Scopes            *[]string                 `yaml:"scopes"`
	UseEmoji          *bool                     `yaml:"useEmoji"`
	AskScope          *bool                     `yaml:"askScope"`
	AskBody           *bool                     `yaml:"askBody"`
	AskFooter         *bool                     `yaml:"askFooter"`
	AskBreakingChange *bool                     `yaml:"askBreakingChange"`
	Theme             Theme                     `yaml:"theme"`
	Template          *string                   `yaml:"template"`
	Locale            *string                   `yaml:"locale"`
}

// Load builds the configuration for the repository at repoPath: defaults,
// then the home directory file, then the repository file.
func Load(repoPath string) (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine user home directory: %w", err)
	}
	return LoadFrom(homeDir, repoPath)
}

// LoadFrom is Load with an explicit home directory.
func LoadFrom(homeDir, repoPath string) (*Config, error) {
	cfg := Default()
	for _, dir := range []string{homeDir, repoPath} {
		if dir == "" {
			continue
		}
		l, path, err := loadLayer(dir)
		if err != nil {
			return nil, err
		}
		if path == "" {
			continue
		}
		cfg = cfg.merge(l)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FindFile returns the first config file present in dir, or "".
func FindFile(dir string) string {
	for _, name := range FileNames {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

func loadLayer(dir string) (layer, string, error) {
	path := FindFile(dir)
	if path == "" {
		return layer{}, "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return layer{}, "", fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var l layer
	if err := yaml.Unmarshal(data, &l); err != nil {
		return layer{}, "", fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return l, path, nil
}

// merge writes every key present in l over a copy of cfg.
func (cfg *Config) merge(l layer) *Config {
	out := *cfg
	if l.Types != nil {
		out.Types = *l.Types
	}
	if l.Scopes != nil {
		out.Scopes = *l.Scopes
	}
	if l.UseEmoji != nil {
		out.UseEmoji = *l.UseEmoji
	}
	if l.AskScope != nil {
		out.AskScope = *l.AskScope
	}
	if l.AskBody != nil {
		out.AskBody = *l.AskBody
	}
	if l.AskFooter != nil {
		out.AskFooter = *l.AskFooter
	}
	if l.AskBreakingChange != nil {
		out.AskBreakingChange = *l.AskBreakingChange
	}
	if l.Theme != nil {
		out.Theme = out.Theme.Merge(l.Theme)
	}
	if l.Template != nil {
		out.Template = *l.Template
	}
	if l.Locale != nil {
		out.Locale = *l.Locale
	}
	return &out
}

func (cfg *Config) Validate() error {
	if len(cfg.Types) == 0 {
		return ErrNoTypes
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// Marshal renders the configuration as YAML.
func (cfg *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}
