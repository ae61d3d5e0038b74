package git

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	gogitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

var (
	// ErrNotRepository is returned when a path is not inside a git work tree.
	ErrNotRepository = errors.New("not a git repository")
	// ErrNothingStaged is returned by callers that require staged changes.
	ErrNothingStaged = errors.New("nothing staged")
	// ErrMissingIdentity is returned by Commit when neither the repository nor
	// the global git config has user.name and user.email.
	ErrMissingIdentity = errors.New("git identity unknown: set user.name and user.email")
)

// CommitInfo describes a commit that was just created.
type CommitInfo struct {
	Hash   string
	Branch string
	Author string
	Email  string
	When   time.Time
}

// Client runs the git operations the wizard needs through go-git.
type Client struct {
	now func() time.Time
}

func NewClient() *Client {
	return &Client{now: time.Now}
}

func open(path string) (*gogit.Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, ErrNotRepository
		}
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}
	return repo, nil
}

// RepoPath returns the root of the work tree containing path.
func (c *Client) RepoPath(path string) (string, error) {
	repo, err := open(path)
	if err != nil {
		return "", err
	}
	wt, err := repo.Worktree()
	if err != nil {
		if errors.Is(err, gogit.ErrIsBareRepository) {
			return "", ErrNotRepository
		}
		return "", fmt.Errorf("failed to get worktree: %w", err)
	}
	return wt.Filesystem.Root(), nil
}

// ListStaged returns the sorted paths that have changes in the index.
func (c *Client) ListStaged(path string) ([]string, error) {
	repo, err := open(path)
	if err != nil {
		return nil, err
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree status: %w", err)
	}

	var staged []string
	for filePath, fileStatus := range status {
		if fileStatus.Staging == gogit.Unmodified || fileStatus.Staging == gogit.Untracked {
			continue
		}
		staged = append(staged, filePath)
	}
	sort.Strings(staged)
	return staged, nil
}

// CurrentBranch returns the short name of HEAD, or "HEAD" when detached.
func (c *Client) CurrentBranch(ctx context.Context, path string) (string, error) {
	repo, err := open(path)
	if err != nil {
		return "", err
	}
	headRef, err := repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return unbornBranch(repo)
		}
		return "", fmt.Errorf("failed to get HEAD reference: %w", err)
	}
	if !headRef.Name().IsBranch() {
		return "HEAD", nil
	}
	return headRef.Name().Short(), nil
}

// unbornBranch reads the branch HEAD points at before the first commit.
func unbornBranch(repo *gogit.Repository) (string, error) {
	ref, err := repo.Storer.Reference(plumbing.HEAD)
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD: %w", err)
	}
	return ref.Target().Short(), nil
}

// Commit records the staged changes with message and describes the result.
func (c *Client) Commit(ctx context.Context, path, message string) (CommitInfo, error) {
	if err := ctx.Err(); err != nil {
		return CommitInfo{}, err
	}
	if strings.TrimSpace(message) == "" {
		return CommitInfo{}, errors.New("commit message is empty")
	}
	repo, err := open(path)
	if err != nil {
		return CommitInfo{}, err
	}
	wt, err := repo.Worktree()
	if err != nil {
		return CommitInfo{}, fmt.Errorf("failed to get worktree: %w", err)
	}
	author, err := identity(repo)
	if err != nil {
		return CommitInfo{}, err
	}
	author.When = c.now()

	hash, err := wt.Commit(message, &gogit.CommitOptions{Author: author})
	if err != nil {
		return CommitInfo{}, fmt.Errorf("failed to commit changes: %w", err)
	}

	branch, err := c.CurrentBranch(ctx, path)
	if err != nil {
		return CommitInfo{}, err
	}
	return CommitInfo{
		Hash:   hash.String()[:7],
		Branch: branch,
		Author: author.Name,
		Email:  author.Email,
		When:   author.When,
	}, nil
}

// identity resolves the commit author from local config layered over global.
func identity(repo *gogit.Repository) (*object.Signature, error) {
	cfg, err := repo.ConfigScoped(gogitconfig.GlobalScope)
	if err != nil {
		return nil, fmt.Errorf("failed to read git config: %w", err)
	}
	name, email := cfg.Author.Name, cfg.Author.Email
	if name == "" {
		name = cfg.User.Name
	}
	if email == "" {
		email = cfg.User.Email
	}
	if name == "" || email == "" {
		return nil, ErrMissingIdentity
	}
	return &object.Signature{Name: name, Email: email}, nil
}
