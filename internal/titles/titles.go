// Package titles derives pull request title suggestions from branch names.
package titles

import "strings"

// branchTypePrefixes maps common branch name prefixes to conventional commit types.
var branchTypePrefixes = map[string]string{
	"feat":     "feat",
	"feature":  "feat",
	"fix":      "fix",
	"bugfix":   "fix",
	"hotfix":   "fix",
	"docs":     "docs",
	"doc":      "docs",
	"refactor": "refactor",
	"test":     "test",
	"tests":    "test",
	"ci":       "ci",
	"perf":     "perf",
	"build":    "build",
	"chore":    "chore",
	"style":    "style",
	"revert":   "revert",
}

// FromBranch derives a title suggestion from a branch name.
// Branches following the type/description convention ("feat/add-login",
// "bugfix/crash-on-start") become conventional commit titles ("feat: add
// login"); anything else is the branch name with separators spaced out.
// Returns "" for an empty branch name.
func FromBranch(branch string) string {
	if branch == "" {
		return ""
	}

	prefix, rest, found := strings.Cut(branch, "/")
	if found && rest != "" {
		if commitType, ok := branchTypePrefixes[strings.ToLower(prefix)]; ok {
			return commitType + ": " + humanize(rest)
		}
	}

	return humanize(branch)
}

// humanize spaces out branch separators: "add-login_v2" → "add login v2".
func humanize(s string) string {
	s = strings.NewReplacer("-", " ", "_", " ", "/", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
