// Package cmd wires the coco command line: flags, configuration, the
// repository checks and the interactive wizard.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/renatogalera/coco/pkg/config"
	"github.com/renatogalera/coco/pkg/git"
	"github.com/renatogalera/coco/pkg/i18n"
	"github.com/renatogalera/coco/pkg/ui"
	"github.com/renatogalera/coco/pkg/wizard"
)

// DebugLogFile is written in the temp directory when --debug is set.
const DebugLogFile = "coco-debug.log"

var preconditionStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("196")).
	Bold(true)

// gitClient is the subset of git.Client the command needs.
type gitClient interface {
	RepoPath(path string) (string, error)
	ListStaged(path string) ([]string, error)
	CurrentBranch(ctx context.Context, path string) (string, error)
	Commit(ctx context.Context, path, message string) (git.CommitInfo, error)
}

type options struct {
	repo     string
	emoji    bool
	template string
	locale   string
	debug    bool
}

// startProgram runs the wizard until the user leaves it.
var startProgram = func(m ui.Model) error {
	_, err := ui.NewProgram(m).Run()
	return err
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if err := NewRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("coco failed")
		os.Exit(1)
	}
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(git.NewClient())
}

func newRootCmd(client gitClient) *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "coco",
		Short:         "An interactive cli for creating conventional commits",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			closeLog, err := setupLogging(opts.debug)
			if err != nil {
				return err
			}
			defer closeLog()
			return run(cmd.OutOrStdout(), client, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.repo, "repo", ".", "Path inside the git repository to commit to")
	flags.BoolVar(&opts.emoji, "emoji", false, "Prefix the summary with the commit type emoji (only turns emoji on; set useEmoji: false in the config file to turn it off)")
	flags.StringVar(&opts.template, "template", "", "Commit message template (e.g. \"{GIT_BRANCH}: {COMMIT_MESSAGE}\")")
	flags.StringVar(&opts.locale, "locale", "", "Language of the interface (e.g. en, es)")
	flags.BoolVar(&opts.debug, "debug", false, "Write debug logs to "+filepath.Join(os.TempDir(), DebugLogFile))

	root.AddCommand(newVersionCmd())
	root.AddCommand(newConfigCmd(client, opts))
	return root
}

// setupLogging points the global logger at stderr, or at the debug log file
// when debug is set. The returned func closes the file.
func setupLogging(debug bool) (func(), error) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if !debug {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		return func() {}, nil
	}
	path := filepath.Join(os.TempDir(), DebugLogFile)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: f, NoColor: true})
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	return func() { _ = f.Close() }, nil
}

// preflight resolves the repository root and makes sure something is staged.
func preflight(client gitClient, path string) (string, error) {
	root, err := client.RepoPath(path)
	if err != nil {
		return "", err
	}
	staged, err := client.ListStaged(root)
	if err != nil {
		return "", err
	}
	if len(staged) == 0 {
		return "", git.ErrNothingStaged
	}
	log.Debug().Str("repo", root).Strs("staged", staged).Msg("preflight passed")
	return root, nil
}

func run(out io.Writer, client gitClient, opts *options) error {
	root, err := preflight(client, opts.repo)
	if err != nil {
		tr, trErr := i18n.New(i18n.Detect(opts.locale))
		if trErr != nil {
			return trErr
		}
		switch {
		case errors.Is(err, git.ErrNotRepository):
			fmt.Fprintln(out, preconditionStyle.Render(tr.T("Not a git repository")))
			return nil
		case errors.Is(err, git.ErrNothingStaged):
			fmt.Fprintln(out, preconditionStyle.Render(tr.T("Nothing to commit! Stage your changes first ('git add .')")))
			return nil
		}
		return err
	}

	cfg, err := loadConfig(root, opts)
	if err != nil {
		return err
	}
	tr, err := i18n.New(i18n.Detect(cfg.Locale))
	if err != nil {
		return err
	}
	log.Debug().Str("locale", tr.Locale()).Int("types", len(cfg.Types)).Msg("configuration loaded")

	ctrl := wizard.NewController(cfg, newGitCommitter(client, root, cfg.Template))
	return startProgram(ui.NewModel(ctrl, tr))
}

// loadConfig layers the command line flags over the configuration files.
func loadConfig(root string, opts *options) (*config.Config, error) {
	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}
	cm := config.NewConfigManager(cfg)
	cm.RegisterFlag("useEmoji", opts.emoji)
	cm.RegisterFlag("template", opts.template)
	cm.RegisterFlag("locale", opts.locale)
	return cm.MergeConfiguration(), nil
}
