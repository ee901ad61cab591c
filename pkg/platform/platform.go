// Package platform classifies git hosting services and builds the
// provider-specific pull/merge request creation URLs.
//
// The hosting service is either selected explicitly ([FromString], the -s
// flag) or inferred from the remote URL ([Detect]). [BuildURL] then renders
// the compare/new-request URL for a [Request]:
//
//	service := platform.Detect("git@github.com:acme/widget.git")
//	url, err := platform.BuildURL(platform.Request{
//		Service:      service,
//		Owner:        "acme",
//		Repo:         "widget",
//		SourceBranch: "feature-x",
//		TargetBranch: "main",
//	})
package platform

import (
	"fmt"
	"strings"
)

// Platform identifies a git hosting service.
type Platform string

const (
	// GitHub is github.com.
	GitHub Platform = "github"
	// GitLab is gitlab.com.
	GitLab Platform = "gitlab"
	// Bitbucket is bitbucket.org.
	Bitbucket Platform = "bitbucket"
	// AzureDevOps is dev.azure.com, including legacy visualstudio.com hosts.
	AzureDevOps Platform = "azure"
	// Unknown is any host the classifier does not recognize. Classification
	// never fails; Unknown only becomes an error once a URL is built for it.
	Unknown Platform = "unknown"
)

// Detect classifies a remote URL's hosting service by hostname substring.
// The match order is fixed: github.com, gitlab.com, bitbucket.org, then the
// Azure DevOps hosts.
func Detect(remoteURL string) Platform {
	switch {
	case strings.Contains(remoteURL, "github.com"):
		return GitHub
	case strings.Contains(remoteURL, "gitlab.com"):
		return GitLab
	case strings.Contains(remoteURL, "bitbucket.org"):
		return Bitbucket
	case strings.Contains(remoteURL, "dev.azure.com"), strings.Contains(remoteURL, "visualstudio.com"):
		return AzureDevOps
	default:
		return Unknown
	}
}

// FromString resolves an explicit service selection. Valid values are
// "github", "gitlab", "bitbucket" and "azure".
func FromString(s string) (Platform, error) {
	switch s {
	case "github":
		return GitHub, nil
	case "gitlab":
		return GitLab, nil
	case "bitbucket":
		return Bitbucket, nil
	case "azure":
		return AzureDevOps, nil
	default:
		return Unknown, fmt.Errorf("%w: %s", ErrUnknownService, s)
	}
}
