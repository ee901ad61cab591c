package fixtures

import "github.com/sgaunet/open-pr/pkg/platform"

// Test constants for platform fixtures.
const (
	defaultOwner    = "acme"
	defaultRepo     = "widget"
	defaultSourceBr = "feature-x"
	defaultTargetBr = "main"
	defaultTitle    = "Add login & logout"
	defaultBody     = "Fixes #42, see details"
)

// ValidURLRequest returns a pull request URL request with required fields only.
func ValidURLRequest(service platform.Platform) platform.Request {
	return platform.Request{
		Service:      service,
		Owner:        defaultOwner,
		Repo:         defaultRepo,
		SourceBranch: defaultSourceBr,
		TargetBranch: defaultTargetBr,
	}
}

// FullURLRequest returns a pull request URL request with every optional field set.
func FullURLRequest(service platform.Platform) platform.Request {
	req := ValidURLRequest(service)
	req.Title = defaultTitle
	req.Description = defaultBody
	req.Draft = true
	return req
}
