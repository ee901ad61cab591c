// Package commits provides commit history retrieval and message selection for open-pr.
package commits

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
	"github.com/sgaunet/bullets"
	"github.com/sgaunet/open-pr/internal/logger"
)

const (
	// MaxCommitsToRetrieve limits the number of commits to retrieve from history.
	MaxCommitsToRetrieve = 1000
	// DefaultShortHashLength is the default length for abbreviated commit hashes.
	DefaultShortHashLength = 7
)

var (
	// errStopIteration is used internally to stop commit iteration.
	errStopIteration = errors.New("stop iteration")
)

// Retriever reads commit history from a repository.
type Retriever struct {
	repo   *git.Repository
	logger *bullets.Logger
}

var _ CommitRetriever = (*Retriever)(nil)

// NewRetriever creates a new commit retriever for the given repository.
// The retriever is silent until SetLogger is called.
func NewRetriever(repo *git.Repository) *Retriever {
	return &Retriever{
		repo:   repo,
		logger: logger.NoLogger(),
	}
}

// SetLogger sets the logger for the retriever.
func (r *Retriever) SetLogger(logger *bullets.Logger) {
	r.logger = logger
}

// GetCommits retrieves the most recent commits of the specified branch, newest
// first, capped at MaxCommitsToRetrieve.
// Returns ErrNoCommits if the branch has none.
// Returns an error if the branch doesn't exist or the git operation fails.
func (r *Retriever) GetCommits(branch string) ([]Commit, error) {
	r.logger.WithField("branch", branch).Debug("retrieving commits from branch")

	ref, err := r.repo.Reference(plumbing.NewBranchReferenceName(branch), true)
	if err != nil {
		return nil, fmt.Errorf("failed to get reference for branch %s: %w", branch, err)
	}

	commitIter, err := r.repo.Log(&git.LogOptions{From: ref.Hash()})
	if err != nil {
		return nil, fmt.Errorf("failed to get commit log for branch %s: %w", branch, err)
	}

	commits := make([]Commit, 0)
	err = commitIter.ForEach(func(c *object.Commit) error {
		if len(commits) >= MaxCommitsToRetrieve {
			return storer.ErrStop
		}

		commits = append(commits, ParseCommit(c))

		return nil
	})

	if err != nil && !errors.Is(err, storer.ErrStop) {
		return nil, fmt.Errorf("failed to iterate commits for branch %s: %w", branch, err)
	}

	r.logger.WithField("branch", branch).WithField("count", len(commits)).Debug("retrieved commits")

	if len(commits) == 0 {
		return nil, ErrNoCommits
	}

	return commits, nil
}

// CommitsSince retrieves the commits of sourceBranch that are not yet on
// targetBranch, newest first. The target is resolved against the
// remote-tracking ref (refs/remotes/<remote>/<target>) when one exists, since
// that is where the pull request will land, and falls back to the local
// branch otherwise.
// Returns ErrNoCommits when the source branch has nothing of its own.
func (r *Retriever) CommitsSince(sourceBranch, targetBranch, remoteName string) ([]Commit, error) {
	r.logger.WithField("sourceBranch", sourceBranch).
		WithField("targetBranch", targetBranch).
		WithField("remote", remoteName).
		Debug("retrieving commits since divergence")

	sourceRef, err := r.repo.Reference(plumbing.NewBranchReferenceName(sourceBranch), true)
	if err != nil {
		return nil, fmt.Errorf("failed to get reference for branch %s: %w", sourceBranch, err)
	}

	targetRef, err := r.repo.Reference(plumbing.NewRemoteReferenceName(remoteName, targetBranch), true)
	if err != nil {
		targetRef, err = r.repo.Reference(plumbing.NewBranchReferenceName(targetBranch), true)
		if err != nil {
			return nil, fmt.Errorf("failed to get reference for target branch %s: %w", targetBranch, err)
		}
	}

	commitIter, err := r.repo.Log(&git.LogOptions{From: sourceRef.Hash()})
	if err != nil {
		return nil, fmt.Errorf("failed to get commit log for branch %s: %w", sourceBranch, err)
	}

	commits := make([]Commit, 0)
	err = commitIter.ForEach(func(c *object.Commit) error {
		// Stop at the target head (divergence point for linear histories).
		if c.Hash == targetRef.Hash() {
			return errStopIteration
		}

		if len(commits) >= MaxCommitsToRetrieve {
			return storer.ErrStop
		}

		commits = append(commits, ParseCommit(c))

		return nil
	})

	if err != nil && !errors.Is(err, errStopIteration) && !errors.Is(err, storer.ErrStop) {
		return nil, fmt.Errorf("failed to iterate commits for branch %s: %w", sourceBranch, err)
	}

	r.logger.WithField("sourceBranch", sourceBranch).
		WithField("targetBranch", targetBranch).
		WithField("count", len(commits)).
		Debug("retrieved commits since divergence")

	if len(commits) == 0 {
		return nil, ErrNoCommits
	}

	return commits, nil
}
