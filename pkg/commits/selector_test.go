package commits_test

import (
	"errors"
	"testing"

	"github.com/sgaunet/open-pr/pkg/commits"
	"github.com/sgaunet/open-pr/testing/fixtures"
	"github.com/sgaunet/open-pr/testing/mocks"
)

func TestSelector_ManualOverride(t *testing.T) {
	renderer := mocks.NewMockSelectionRenderer()
	selector := commits.NewSelector(renderer)

	selection, err := selector.GetMessageForPR(fixtures.MultipleCommits(), "Custom title\n\nCustom body text")
	if err != nil {
		t.Fatalf("GetMessageForPR() error = %v", err)
	}

	if selection.Title != "Custom title" {
		t.Errorf("Title = %q, want %q", selection.Title, "Custom title")
	}
	if selection.Body != "Custom body text" {
		t.Errorf("Body = %q, want %q", selection.Body, "Custom body text")
	}
	if selection.SelectionMethod != commits.SelectionManual {
		t.Errorf("SelectionMethod = %v, want SelectionManual", selection.SelectionMethod)
	}
	if !selection.ManualOverride {
		t.Error("ManualOverride = false, want true")
	}
	if selection.SourceCommitHash != "" {
		t.Errorf("SourceCommitHash = %q, want empty", selection.SourceCommitHash)
	}
	if renderer.GetCallCountFor("DisplaySelectionPrompt") != 0 {
		t.Error("renderer was called for manual override, want no calls")
	}
}

func TestSelector_AutoSelectSingleCommit(t *testing.T) {
	renderer := mocks.NewMockSelectionRenderer()
	selector := commits.NewSelector(renderer)

	single := fixtures.SingleCommit()
	selection, err := selector.GetMessageForPR(single, "")
	if err != nil {
		t.Fatalf("GetMessageForPR() error = %v", err)
	}

	if selection.Title != single[0].Title {
		t.Errorf("Title = %q, want %q", selection.Title, single[0].Title)
	}
	if selection.SourceCommitHash != single[0].Hash {
		t.Errorf("SourceCommitHash = %q, want %q", selection.SourceCommitHash, single[0].Hash)
	}
	if selection.SelectionMethod != commits.SelectionAuto {
		t.Errorf("SelectionMethod = %v, want SelectionAuto", selection.SelectionMethod)
	}
	if renderer.GetCallCountFor("DisplaySelectionPrompt") != 0 {
		t.Error("renderer was called for single commit, want auto-selection without prompt")
	}
}

func TestSelector_InteractiveSelection(t *testing.T) {
	renderer := mocks.NewMockSelectionRenderer()
	renderer.DisplaySelectionPromptResponse = 1
	selector := commits.NewSelector(renderer)

	multiple := fixtures.MultipleCommits()
	selection, err := selector.GetMessageForPR(multiple, "")
	if err != nil {
		t.Fatalf("GetMessageForPR() error = %v", err)
	}

	if selection.Title != multiple[1].Title {
		t.Errorf("Title = %q, want %q", selection.Title, multiple[1].Title)
	}
	if selection.SourceCommitHash != multiple[1].Hash {
		t.Errorf("SourceCommitHash = %q, want %q", selection.SourceCommitHash, multiple[1].Hash)
	}
	if selection.SelectionMethod != commits.SelectionInteractive {
		t.Errorf("SelectionMethod = %v, want SelectionInteractive", selection.SelectionMethod)
	}
	if renderer.GetCallCountFor("DisplaySelectionPrompt") != 1 {
		t.Errorf("renderer called %d times, want 1", renderer.GetCallCountFor("DisplaySelectionPrompt"))
	}
}

func TestSelector_InteractiveSelectionSkipsMergeCommits(t *testing.T) {
	renderer := mocks.NewMockSelectionRenderer()
	renderer.DisplaySelectionPromptResponse = 1
	selector := commits.NewSelector(renderer)

	// CommitsWithMerges holds three commits; the middle one is a merge
	// commit and must not be offered, so index 1 is the third commit.
	withMerges := fixtures.CommitsWithMerges()
	selection, err := selector.GetMessageForPR(withMerges, "")
	if err != nil {
		t.Fatalf("GetMessageForPR() error = %v", err)
	}

	if selection.SourceCommitHash != withMerges[2].Hash {
		t.Errorf("SourceCommitHash = %q, want %q (merge commit filtered)", selection.SourceCommitHash, withMerges[2].Hash)
	}
}

func TestSelector_SelectionCancelled(t *testing.T) {
	renderer := mocks.NewMockSelectionRenderer()
	renderer.DisplaySelectionPromptResponse = -1
	renderer.DisplaySelectionPromptError = commits.ErrSelectionCancelled
	selector := commits.NewSelector(renderer)

	_, err := selector.GetMessageForPR(fixtures.MultipleCommits(), "")
	if !errors.Is(err, commits.ErrSelectionCancelled) {
		t.Errorf("GetMessageForPR() error = %v, want ErrSelectionCancelled", err)
	}
}

func TestSelector_OutOfRangeIndexTreatedAsCancelled(t *testing.T) {
	tests := []struct {
		name  string
		index int
	}{
		{name: "negative index", index: -1},
		{name: "index past end", index: 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			renderer := mocks.NewMockSelectionRenderer()
			renderer.DisplaySelectionPromptResponse = tt.index
			selector := commits.NewSelector(renderer)

			_, err := selector.GetMessageForPR(fixtures.MultipleCommits(), "")
			if !errors.Is(err, commits.ErrSelectionCancelled) {
				t.Errorf("GetMessageForPR() error = %v, want ErrSelectionCancelled", err)
			}
		})
	}
}

func TestSelector_AllCommitsInvalid(t *testing.T) {
	renderer := mocks.NewMockSelectionRenderer()
	selector := commits.NewSelector(renderer)

	_, err := selector.GetMessageForPR(fixtures.CommitsWithEmptyMessages(), "")
	if !errors.Is(err, commits.ErrAllCommitsInvalid) {
		t.Errorf("GetMessageForPR() error = %v, want ErrAllCommitsInvalid", err)
	}
	if renderer.GetCallCountFor("DisplaySelectionPrompt") != 0 {
		t.Error("renderer was called with no valid commits, want no calls")
	}
}
