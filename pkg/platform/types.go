package platform

// Request carries everything needed to construct a pull/merge request
// creation URL. A Request is built once per run and never mutated.
type Request struct {
	// Service selects the URL template.
	Service Platform

	// Owner and Repo identify the repository as parsed from the remote URL.
	Owner string
	Repo  string

	// Org and Project apply to Azure DevOps only, where the organization and
	// project can legitimately differ from owner/repo. When empty the builder
	// falls back to Owner and Repo.
	Org     string
	Project string

	// SourceBranch is the branch the pull request is created from.
	SourceBranch string
	// TargetBranch is the branch the pull request merges into.
	TargetBranch string

	// Title and Description are optional free text; empty means omitted.
	Title       string
	Description string

	// Draft marks the request as draft/WIP where the service supports it.
	// Bitbucket has no draft URL parameter and ignores this.
	Draft bool
}
