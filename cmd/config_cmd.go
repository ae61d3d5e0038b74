package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/renatogalera/coco/pkg/git"
)

// newConfigCmd prints the configuration coco would use, after layering the
// home and repository files and the command line flags.
func newConfigCmd(client gitClient, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the merged configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := client.RepoPath(opts.repo)
			if errors.Is(err, git.ErrNotRepository) {
				root = opts.repo
			} else if err != nil {
				return err
			}
			cfg, err := loadConfig(root, opts)
			if err != nil {
				return err
			}
			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
