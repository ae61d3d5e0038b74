package template

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticBranch(name string) BranchFunc {
	return func(context.Context) (string, error) { return name, nil }
}

func TestApplyTemplateEmptyIsIdentity(t *testing.T) {
	called := false
	branch := func(context.Context) (string, error) {
		called = true
		return "main", nil
	}
	msg := "feat: add login\n\ndetails\n"

	out, err := ApplyTemplate(context.Background(), "", msg, branch)
	require.NoError(t, err)
	assert.Equal(t, msg, out)
	assert.False(t, called)
}

func TestApplyTemplateTokens(t *testing.T) {
	out, err := ApplyTemplate(context.Background(), "{GIT_BRANCH} | {COMMIT_MESSAGE}", "fix: typo", staticBranch("dev"))
	require.NoError(t, err)
	assert.Equal(t, "dev | fix: typo", out)
}

func TestApplyTemplateWithoutBranchToken(t *testing.T) {
	branch := func(context.Context) (string, error) { return "", errors.New("must not be called") }

	out, err := ApplyTemplate(context.Background(), "{COMMIT_MESSAGE}\n\nSigned-off-by: me", "docs: x", branch)
	require.NoError(t, err)
	assert.Equal(t, "docs: x\n\nSigned-off-by: me", out)
}

func TestApplyTemplateBranchError(t *testing.T) {
	branch := func(context.Context) (string, error) { return "", errors.New("no HEAD") }

	_, err := ApplyTemplate(context.Background(), "[{GIT_BRANCH}] {COMMIT_MESSAGE}", "x", branch)
	assert.EqualError(t, err, "no HEAD")
}
