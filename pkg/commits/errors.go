package commits

import "errors"

var (
	// ErrNoCommits is returned when the branch has no commits of its own to offer.
	ErrNoCommits = errors.New("no commits found on branch")

	// ErrAllCommitsInvalid is returned when all commits are merge commits or have empty messages.
	ErrAllCommitsInvalid = errors.New("all commits have empty messages")

	// ErrSelectionCancelled is returned when the user cancels the interactive commit selection.
	ErrSelectionCancelled = errors.New("commit selection cancelled by user")
)
