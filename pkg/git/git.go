package git

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

var (
	ErrHeadNotBranch   = errors.New("HEAD is not pointing to a branch")
	ErrNoRemoteURL     = errors.New("no URLs found for remote")
	ErrNoDefaultBranch = errors.New("no default branch found")
)

const (
	defaultRemote  = "origin"
	upstreamRemote = "upstream"
)

// Probed in this order; the first existing remote-tracking ref wins.
var defaultBranchCandidates = []string{"main", "master", "develop", "trunk"}

type Repository struct {
	repo *git.Repository
}

func OpenRepository(path string) (*Repository, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository: %w", err)
	}

	return &Repository{repo: repo}, nil
}

func (r *Repository) GetCurrentBranch() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD reference: %w", err)
	}

	if !head.Name().IsBranch() {
		return "", ErrHeadNotBranch
	}

	return head.Name().Short(), nil
}

func (r *Repository) HasRemote(name string) bool {
	_, err := r.repo.Remote(name)
	return err == nil
}

// ResolveRemote picks the remote to build the PR URL against: an explicit
// override wins, then "upstream" when it exists (unless forceDefault), then
// "origin".
func (r *Repository) ResolveRemote(override string, forceDefault bool) string {
	if override != "" {
		return override
	}

	if !forceDefault && r.HasRemote(upstreamRemote) {
		return upstreamRemote
	}

	return defaultRemote
}

func (r *Repository) GetRemoteURL(remoteName string) (string, error) {
	remote, err := r.repo.Remote(remoteName)
	if err != nil {
		return "", fmt.Errorf("failed to get remote %s: %w", remoteName, err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNoRemoteURL, remoteName)
	}

	return urls[0], nil
}

// GetDefaultBranch guesses the target branch from the remote-tracking refs
// fetched for remoteName. It never contacts the remote.
func (r *Repository) GetDefaultBranch(remoteName string) (string, error) {
	for _, branch := range defaultBranchCandidates {
		refName := plumbing.NewRemoteReferenceName(remoteName, branch)
		if _, err := r.repo.Reference(refName, true); err == nil {
			return branch, nil
		}
	}

	return "", fmt.Errorf("%w: remote %s", ErrNoDefaultBranch, remoteName)
}

func (r *Repository) GetLatestCommitMessage() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD reference: %w", err)
	}

	commit, err := r.repo.CommitObject(head.Hash())
	if err != nil {
		return "", fmt.Errorf("failed to get commit object: %w", err)
	}

	return commit.Message, nil
}

// Underlying exposes the go-git repository for commit-history traversal.
func (r *Repository) Underlying() *git.Repository {
	return r.repo
}
