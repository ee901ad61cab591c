package commits_test

import (
	"strings"
	"testing"

	"github.com/sgaunet/open-pr/pkg/commits"
	"github.com/sgaunet/open-pr/testing/fixtures"
)

func TestCommit_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		commit   commits.Commit
		expected bool
	}{
		{
			name:     "valid commit with message",
			commit:   fixtures.SingleCommit()[0],
			expected: true,
		},
		{
			name:     "invalid commit with empty message",
			commit:   fixtures.CommitsWithEmptyMessages()[0],
			expected: false,
		},
		{
			name:     "invalid commit with whitespace-only message",
			commit:   fixtures.CommitsWithEmptyMessages()[1],
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.commit.IsValid()
			if got != tt.expected {
				t.Errorf("IsValid() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCommit_IsMergeCommit(t *testing.T) {
	tests := []struct {
		name     string
		commit   commits.Commit
		expected bool
	}{
		{
			name:     "regular commit with single parent",
			commit:   fixtures.SingleCommit()[0],
			expected: false,
		},
		{
			name:     "merge commit with two parents",
			commit:   fixtures.CommitsWithMerges()[1],
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.commit.IsMergeCommit()
			if got != tt.expected {
				t.Errorf("IsMergeCommit() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCommit_TitleTruncated(t *testing.T) {
	const shortMaxLen = 50
	const longMaxLen = 20

	tests := []struct {
		name        string
		commit      commits.Commit
		maxLen      int
		expectTrunc bool
	}{
		{
			name:        "short title not truncated",
			commit:      fixtures.SingleCommit()[0],
			maxLen:      shortMaxLen,
			expectTrunc: false,
		},
		{
			name: "long title truncated with ellipsis",
			commit: commits.Commit{
				Title: "This is a very long commit title that exceeds the maximum length",
			},
			maxLen:      longMaxLen,
			expectTrunc: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.commit.TitleTruncated(tt.maxLen)
			if tt.expectTrunc {
				if len(got) != tt.maxLen {
					t.Errorf("TitleTruncated(%d) length = %d, want %d", tt.maxLen, len(got), tt.maxLen)
				}
				if !strings.HasSuffix(got, "...") {
					t.Errorf("TitleTruncated(%d) = %q, expected to end with '...'", tt.maxLen, got)
				}
			} else {
				if got != tt.commit.Title {
					t.Errorf("TitleTruncated(%d) = %q, want %q", tt.maxLen, got, tt.commit.Title)
				}
			}
		})
	}
}

func TestCommit_FormattedForDisplay(t *testing.T) {
	const displayMaxLen = 80

	commit := fixtures.SingleCommit()[0]
	got := commit.FormattedForDisplay()

	if !strings.Contains(got, commit.ShortHash) {
		t.Errorf("FormattedForDisplay() = %q, expected to contain short hash %q", got, commit.ShortHash)
	}

	expectedPrefix := "[" + commit.ShortHash + "] "
	if !strings.HasPrefix(got, expectedPrefix) {
		t.Errorf("FormattedForDisplay() = %q, expected to start with %q", got, expectedPrefix)
	}

	maxExpectedLen := len(expectedPrefix) + displayMaxLen
	if len(got) > maxExpectedLen {
		t.Errorf("FormattedForDisplay() length = %d, should not exceed %d", len(got), maxExpectedLen)
	}
}

func TestCommitList_Count(t *testing.T) {
	const expectedValidCount = 2

	commitList := fixtures.ValidCommitList()
	got := commitList.Count()

	if got != expectedValidCount {
		t.Errorf("Count() = %d, want %d", got, expectedValidCount)
	}
}

func TestCommitList_HasSingleCommit(t *testing.T) {
	tests := []struct {
		name           string
		commitList     commits.CommitList
		expectSingle   bool
		expectMultiple bool
	}{
		{
			name: "single commit",
			commitList: commits.CommitList{
				Valid: fixtures.SingleCommit(),
			},
			expectSingle:   true,
			expectMultiple: false,
		},
		{
			name:           "multiple commits",
			commitList:     fixtures.ValidCommitList(),
			expectSingle:   false,
			expectMultiple: true,
		},
		{
			name: "no commits",
			commitList: commits.CommitList{
				Valid: []commits.Commit{},
			},
			expectSingle:   false,
			expectMultiple: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotSingle := tt.commitList.HasSingleCommit()
			gotMultiple := tt.commitList.HasMultipleCommits()

			if gotSingle != tt.expectSingle {
				t.Errorf("HasSingleCommit() = %v, want %v", gotSingle, tt.expectSingle)
			}
			if gotMultiple != tt.expectMultiple {
				t.Errorf("HasMultipleCommits() = %v, want %v", gotMultiple, tt.expectMultiple)
			}
		})
	}
}

func TestCommitList_IsEmpty(t *testing.T) {
	tests := []struct {
		name       string
		commitList commits.CommitList
		expected   bool
	}{
		{
			name: "empty list",
			commitList: commits.CommitList{
				Valid: []commits.Commit{},
			},
			expected: true,
		},
		{
			name:       "non-empty list",
			commitList: fixtures.ValidCommitList(),
			expected:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.commitList.IsEmpty()
			if got != tt.expected {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMessageSelection_FullMessage(t *testing.T) {
	tests := []struct {
		name      string
		selection commits.MessageSelection
		expected  string
	}{
		{
			name:      "title only",
			selection: fixtures.ValidMessageSelection(),
			expected:  "feat: add user authentication",
		},
		{
			name:      "title and body",
			selection: fixtures.ManualMessageSelection(),
			expected:  "Custom PR title\n\nCustom PR description",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.selection.FullMessage()
			if got != tt.expected {
				t.Errorf("FullMessage() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestMessageSelection_Provenance(t *testing.T) {
	auto := fixtures.ValidMessageSelection()
	if !auto.IsFromCommit() {
		t.Error("IsFromCommit() = false for auto selection, want true")
	}
	if auto.IsManualOverride() {
		t.Error("IsManualOverride() = true for auto selection, want false")
	}

	manual := fixtures.ManualMessageSelection()
	if manual.IsFromCommit() {
		t.Error("IsFromCommit() = true for manual selection, want false")
	}
	if !manual.IsManualOverride() {
		t.Error("IsManualOverride() = false for manual selection, want true")
	}
}
