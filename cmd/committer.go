package cmd

import (
	"context"

	"github.com/renatogalera/coco/pkg/template"
	"github.com/renatogalera/coco/pkg/wizard"
)

// newGitCommitter commits composed messages to the repository at root after
// applying the configured template.
func newGitCommitter(client gitClient, root, tmpl string) wizard.Committer {
	return wizard.CommitterFunc(func(ctx context.Context, message string) wizard.CommitResult {
		branch := func(ctx context.Context) (string, error) {
			return client.CurrentBranch(ctx, root)
		}
		final, err := template.ApplyTemplate(ctx, tmpl, message, branch)
		if err != nil {
			return wizard.CommitResult{Err: err}
		}
		info, err := client.Commit(ctx, root, final)
		if err != nil {
			return wizard.CommitResult{Err: err}
		}
		return wizard.CommitResult{
			Hash:   info.Hash,
			Branch: info.Branch,
			Author: info.Author,
			Email:  info.Email,
			When:   info.When,
		}
	})
}
