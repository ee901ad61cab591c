// Package repourl extracts repository coordinates from git remote URLs.
//
// Two generic remote formats are recognized by [Parse]:
//   - SSH: git@github.com:owner/repo.git (also git@host/owner/repo)
//   - HTTPS: https://github.com/owner/repo.git
//
// The SSH form is tried first; an SSH URL can superficially resemble a path
// the HTTPS pattern would also match, so the ordering is semantic, not
// cosmetic. A trailing .git is stripped from the repository name.
//
// Azure DevOps remotes carry an organization and a project in addition to the
// repository name and get their own parser, [ParseAzure].
package repourl

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrUnparseableURL is returned when a remote URL matches neither the SSH nor the HTTPS form.
	ErrUnparseableURL = errors.New("could not parse git URL")

	// ErrUnparseableAzureURL is returned when a URL is not a recognized Azure DevOps remote.
	ErrUnparseableAzureURL = errors.New("could not parse Azure DevOps URL")
)

var (
	sshPattern   = regexp.MustCompile(`git@(?:.*?)[:/](.*?)/(.*?)(?:\.git)?$`)
	httpsPattern = regexp.MustCompile(`https://(?:.*?)/([^/]+)/([^/]+?)(?:\.git)?$`)

	azureHTTPSPattern  = regexp.MustCompile(`^https://(?:[^@/]+@)?dev\.azure\.com/([^/]+)/([^/]+)/_git/([^/]+?)(?:\.git)?$`)
	azureSSHPattern    = regexp.MustCompile(`^git@ssh\.dev\.azure\.com:v3/([^/]+)/([^/]+)/([^/]+?)(?:\.git)?$`)
	azureLegacyPattern = regexp.MustCompile(`^https://(?:[^@/]+@)?([^./]+)\.visualstudio\.com/(?:DefaultCollection/)?([^/]+)/_git/([^/]+?)(?:\.git)?$`)
)

// Parse extracts (owner, repo) from a git remote URL.
//
// Examples:
//
//	Parse("git@github.com:acme/widget.git")     → ("acme", "widget", nil)
//	Parse("https://github.com/acme/widget.git") → ("acme", "widget", nil)
//
// Both captures must be non-empty; otherwise, and when neither pattern
// matches, the returned error wraps [ErrUnparseableURL] and names the URL.
func Parse(url string) (string, string, error) {
	if strings.HasPrefix(url, "git@") {
		if m := sshPattern.FindStringSubmatch(url); m != nil {
			owner, repo := m[1], strings.TrimSuffix(m[2], ".git")
			if owner != "" && repo != "" {
				return owner, repo, nil
			}
		}
	}

	if m := httpsPattern.FindStringSubmatch(url); m != nil {
		owner, repo := m[1], strings.TrimSuffix(m[2], ".git")
		if owner != "" && repo != "" {
			return owner, repo, nil
		}
	}

	return "", "", fmt.Errorf("%w: %s", ErrUnparseableURL, url)
}

// ParseAzure extracts (organization, project, repo) from an Azure DevOps
// remote URL. It recognizes the three shapes Azure hands out:
//
//	https://dev.azure.com/org/project/_git/repo      (HTTPS, optional user@ prefix)
//	git@ssh.dev.azure.com:v3/org/project/repo        (SSH v3)
//	https://org.visualstudio.com/project/_git/repo   (legacy, optional DefaultCollection segment)
//
// The returned error wraps [ErrUnparseableAzureURL] and names the URL when
// none match.
func ParseAzure(url string) (string, string, string, error) {
	for _, pattern := range []*regexp.Regexp{azureHTTPSPattern, azureSSHPattern, azureLegacyPattern} {
		if m := pattern.FindStringSubmatch(url); m != nil {
			return m[1], m[2], m[3], nil
		}
	}

	return "", "", "", fmt.Errorf("%w: %s", ErrUnparseableAzureURL, url)
}
