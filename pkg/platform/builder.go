package platform

import (
	"fmt"
	"net/url"
)

// BuildURL renders the pull/merge request creation URL for req. It is a pure
// function: no repository access, no network.
//
// Title and description are form-urlencoded query values; branch names and
// repository coordinates are inserted as-is (they are assumed URL-safe
// identifiers). Optional parameters are appended in a fixed order: title,
// description, draft.
func BuildURL(req Request) (string, error) {
	switch req.Service {
	case GitHub:
		return buildGitHubURL(req), nil
	case GitLab:
		return buildGitLabURL(req), nil
	case Bitbucket:
		return buildBitbucketURL(req), nil
	case AzureDevOps:
		return buildAzureDevOpsURL(req), nil
	default:
		return "", fmt.Errorf("%w for %s/%s", ErrUnknownService, req.Owner, req.Repo)
	}
}

func buildGitHubURL(req Request) string {
	u := fmt.Sprintf("https://github.com/%s/%s/compare/%s...%s?expand=1",
		req.Owner, req.Repo, req.TargetBranch, req.SourceBranch)

	if req.Title != "" {
		u += "&title=" + url.QueryEscape(req.Title)
	}
	if req.Description != "" {
		u += "&body=" + url.QueryEscape(req.Description)
	}
	if req.Draft {
		u += "&draft=1"
	}

	return u
}

func buildGitLabURL(req Request) string {
	u := fmt.Sprintf(
		"https://gitlab.com/%s/%s/-/merge_requests/new?merge_request%%5Bsource_branch%%5D=%s&merge_request%%5Btarget_branch%%5D=%s",
		req.Owner, req.Repo, req.SourceBranch, req.TargetBranch)

	if req.Title != "" {
		u += "&merge_request%5Btitle%5D=" + url.QueryEscape(req.Title)
	}
	if req.Description != "" {
		u += "&merge_request%5Bdescription%5D=" + url.QueryEscape(req.Description)
	}
	if req.Draft {
		u += "&merge_request%5Bdraft%5D=true"
	}

	return u
}

func buildBitbucketURL(req Request) string {
	u := fmt.Sprintf("https://bitbucket.org/%s/%s/pull-requests/new?source=%s&dest=%s",
		req.Owner, req.Repo, req.SourceBranch, req.TargetBranch)

	if req.Title != "" {
		u += "&title=" + url.QueryEscape(req.Title)
	}
	if req.Description != "" {
		u += "&description=" + url.QueryEscape(req.Description)
	}

	return u
}

func buildAzureDevOpsURL(req Request) string {
	org, project := req.Org, req.Project
	if org == "" {
		org = req.Owner
	}
	if project == "" {
		project = req.Repo
	}

	u := fmt.Sprintf("https://dev.azure.com/%s/%s/_git/%s/pullrequestcreate?sourceRef=%s&targetRef=%s",
		org, project, req.Repo, req.SourceBranch, req.TargetBranch)

	if req.Title != "" {
		u += "&title=" + url.QueryEscape(req.Title)
	}
	if req.Description != "" {
		u += "&description=" + url.QueryEscape(req.Description)
	}
	if req.Draft {
		u += "&isDraft=true"
	}

	return u
}
