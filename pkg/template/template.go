package template

import (
	"context"
	"strings"
)

// BranchFunc returns the branch the commit is made on.
type BranchFunc func(ctx context.Context) (string, error)

// ApplyTemplate replaces well-known tokens in a commit template.
// Supported tokens:
//
//	{COMMIT_MESSAGE} - replaced with the composed commit message
//	{GIT_BRANCH}     - replaced with the current branch name
//
// An empty template returns commitMessage untouched. The branch is only
// looked up when the template uses it.
func ApplyTemplate(ctx context.Context, templateStr, commitMessage string, branch BranchFunc) (string, error) {
	if strings.TrimSpace(templateStr) == "" {
		return commitMessage, nil
	}
	result := strings.ReplaceAll(templateStr, "{COMMIT_MESSAGE}", commitMessage)
	if strings.Contains(result, "{GIT_BRANCH}") {
		name, err := branch(ctx)
		if err != nil {
			return "", err
		}
		result = strings.ReplaceAll(result, "{GIT_BRANCH}", name)
	}
	return strings.TrimSpace(result), nil
}
