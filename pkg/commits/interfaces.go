package commits

// CommitRetriever defines the interface for external git operations (retrieve commits, parse history).
type CommitRetriever interface {
	// GetCommits retrieves all commits from the specified branch.
	// Returns error if branch doesn't exist or git operation fails.
	GetCommits(branch string) ([]Commit, error)

	// CommitsSince retrieves the commits of sourceBranch not yet on targetBranch,
	// resolving the target against its remote-tracking ref when one exists.
	// Returns ErrNoCommits if the source branch has nothing of its own.
	CommitsSince(sourceBranch, targetBranch, remoteName string) ([]Commit, error)
}

// MessageSelector defines the interface for internal selection logic (auto-select, filter, validate).
type MessageSelector interface {
	// GetMessageForPR determines which commit message seeds the pull request.
	// Handles auto-selection, interactive selection, and manual override.
	// Returns ErrAllCommitsInvalid if no valid commits exist.
	// Returns ErrSelectionCancelled if user cancels interactive selection.
	GetMessageForPR(commits []Commit, manualMessage string) (MessageSelection, error)
}

// SelectionRenderer defines the interface for UI rendering (display list, handle input).
type SelectionRenderer interface {
	// DisplaySelectionPrompt shows interactive commit selection UI.
	// Returns selected commit index.
	// Returns error if user cancels (Ctrl+C).
	DisplaySelectionPrompt(commits []Commit) (int, error)
}
