package commits

import (
	"fmt"

	"github.com/sgaunet/bullets"
	"github.com/sgaunet/open-pr/internal/logger"
)

// Selector handles commit message selection logic with support for
// auto-selection, interactive prompts, and manual override.
// It delegates UI rendering to a [SelectionRenderer] implementation.
//
// Not safe for concurrent use.
type Selector struct {
	renderer SelectionRenderer
	logger   *bullets.Logger
}

var _ MessageSelector = (*Selector)(nil)

// NewSelector creates a new message selector with the given renderer.
//
// Parameters:
//   - renderer: the UI renderer for interactive selection (must not be nil)
func NewSelector(renderer SelectionRenderer) *Selector {
	return &Selector{
		renderer: renderer,
		logger:   logger.NoLogger(),
	}
}

// SetLogger sets the logger for the selector.
func (s *Selector) SetLogger(logger *bullets.Logger) {
	s.logger = logger
}

// GetMessageForPR determines which commit message seeds the pull request.
// It applies the following priority:
//  1. Manual override: if manualMessage is non-empty, it is parsed and returned.
//  2. Auto-select: if exactly one valid commit exists, it is selected automatically.
//  3. Interactive: if multiple valid commits exist, the renderer prompts the user.
//
// Parameters:
//   - commits: all commits from the branch (will be filtered internally)
//   - manualMessage: caller-provided message (empty string to skip the override)
//
// Returns [ErrAllCommitsInvalid] if no valid commits exist after filtering.
// Returns [ErrSelectionCancelled] if the user cancels interactive selection.
func (s *Selector) GetMessageForPR(commits []Commit, manualMessage string) (MessageSelection, error) {
	// Manual override (should be handled by caller, but check here for safety)
	if manualMessage != "" {
		title, body := ParseCommitMessage(manualMessage)
		return MessageSelection{
			Title:            title,
			Body:             body,
			SourceCommitHash: "",
			SelectionMethod:  SelectionManual,
			ManualOverride:   true,
		}, nil
	}

	validCommits := FilterValidCommits(commits)

	if len(validCommits) == 0 {
		return MessageSelection{}, ErrAllCommitsInvalid
	}

	// Auto-select single commit
	if len(validCommits) == 1 {
		commit := validCommits[0]
		s.logger.WithField("hash", commit.ShortHash).WithField("title", commit.Title).Debug("auto-selecting single commit")

		return MessageSelection{
			Title:            commit.Title,
			Body:             commit.Body,
			SourceCommitHash: commit.Hash,
			SelectionMethod:  SelectionAuto,
			ManualOverride:   false,
		}, nil
	}

	// Interactive selection for multiple commits
	s.logger.WithField("commit_count", len(validCommits)).Debug("displaying interactive selection")

	selectedIndex, err := s.renderer.DisplaySelectionPrompt(validCommits)
	if err != nil {
		return MessageSelection{}, fmt.Errorf("failed to display selection prompt: %w", err)
	}

	if selectedIndex < 0 || selectedIndex >= len(validCommits) {
		return MessageSelection{}, ErrSelectionCancelled
	}

	selectedCommit := validCommits[selectedIndex]
	s.logger.WithField("hash", selectedCommit.ShortHash).WithField("title", selectedCommit.Title).Debug("user selected commit")

	return MessageSelection{
		Title:            selectedCommit.Title,
		Body:             selectedCommit.Body,
		SourceCommitHash: selectedCommit.Hash,
		SelectionMethod:  SelectionInteractive,
		ManualOverride:   false,
	}, nil
}
