package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/renatogalera/coco/pkg/committypes"
)

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadWithoutFilesReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, committypes.Default(), cfg.Types)
	assert.Empty(t, cfg.Scopes)
	assert.False(t, cfg.UseEmoji)
	assert.True(t, cfg.AskScope)
	assert.True(t, cfg.AskBody)
	assert.True(t, cfg.AskFooter)
	assert.True(t, cfg.AskBreakingChange)
	assert.Equal(t, DefaultTheme(), cfg.Theme)
}

func TestLoadLayersRepoOverHome(t *testing.T) {
	home, repo := t.TempDir(), t.TempDir()
	writeConfig(t, home, "coco.yaml", `
useEmoji: true
askBody: false
scopes: [api, cli]
theme:
  primary: "#ff0000"
`)
	writeConfig(t, repo, ".cocorc", `
askBody: true
scopes: [web]
theme:
  scope:bg: "#00ff00"
`)

	cfg, err := LoadFrom(home, repo)
	require.NoError(t, err)

	assert.True(t, cfg.UseEmoji, "absent in repo layer, kept from home")
	assert.True(t, cfg.AskBody, "repo layer wins")
	assert.Equal(t, []string{"web"}, cfg.Scopes)
	assert.Equal(t, "#ff0000", cfg.Theme.Get("primary"))
	assert.Equal(t, "#00ff00", cfg.Theme.Get("scope:bg"))
	assert.Equal(t, "#ffffff", cfg.Theme.Get("textarea:fg"))
	assert.Equal(t, committypes.Default(), cfg.Types)
}

func TestLoadReplacesTypesWholesale(t *testing.T) {
	repo := t.TempDir()
	writeConfig(t, repo, "coco.yml", `
types:
  - name: feat
    desc: A feature
    emoji: "🎉"
  - name: fix
`)

	cfg, err := LoadFrom("", repo)
	require.NoError(t, err)
	assert.Equal(t, []committypes.CommitType{
		{Name: "feat", Desc: "A feature", Emoji: "🎉"},
		{Name: "fix"},
	}, cfg.Types)
}

func TestLoadFileNamePrecedence(t *testing.T) {
	repo := t.TempDir()
	writeConfig(t, repo, "coco.yaml", "template: from-yaml")
	writeConfig(t, repo, ".cocorc", "template: from-rc")

	assert.Equal(t, filepath.Join(repo, "coco.yaml"), FindFile(repo))
	cfg, err := LoadFrom("", repo)
	require.NoError(t, err)
	assert.Equal(t, "from-yaml", cfg.Template)
}

func TestLoadRejectsEmptyTypes(t *testing.T) {
	repo := t.TempDir()
	writeConfig(t, repo, "coco.yaml", "types: []")

	_, err := LoadFrom("", repo)
	assert.ErrorIs(t, err, ErrNoTypes)
}

func TestLoadRejectsNamelessType(t *testing.T) {
	repo := t.TempDir()
	writeConfig(t, repo, "coco.yaml", "types:\n  - emoji: x\n")

	_, err := LoadFrom("", repo)
	assert.ErrorContains(t, err, "config validation failed")
}

func TestLoadReportsParseErrors(t *testing.T) {
	repo := t.TempDir()
	writeConfig(t, repo, "coco.yaml", "askScope: [not, a, bool")

	_, err := LoadFrom("", repo)
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestConfigManagerFlagsOverrideNonZeroOnly(t *testing.T) {
	cfg := Default()
	cfg.Template = "{COMMIT_MESSAGE}"
	cfg.Locale = "es"

	cm := NewConfigManager(cfg)
	cm.RegisterFlag("useEmoji", true)
	cm.RegisterFlag("template", "")
	cm.RegisterFlag("locale", "en")
	merged := cm.MergeConfiguration()

	assert.True(t, merged.UseEmoji)
	assert.Equal(t, "{COMMIT_MESSAGE}", merged.Template)
	assert.Equal(t, "en", merged.Locale)
}

func TestConfigManagerFalseFlagKeepsFileValue(t *testing.T) {
	cfg := Default()
	cfg.UseEmoji = true

	cm := NewConfigManager(cfg)
	cm.RegisterFlag("useEmoji", false)

	assert.True(t, cm.MergeConfiguration().UseEmoji)
}

func TestMarshalRoundTripsMergedValues(t *testing.T) {
	cfg := Default()
	cfg.Scopes = []string{"core"}

	data, err := cfg.Marshal()
	require.NoError(t, err)

	var back Config
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, []string{"core"}, back.Scopes)
	assert.Equal(t, len(cfg.Types), len(back.Types))
}
