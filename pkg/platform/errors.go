package platform

import "errors"

// ErrUnknownService is returned when a hosting service cannot be resolved,
// either from an explicit selection or when building a URL for a remote whose
// host was classified as [Unknown].
var ErrUnknownService = errors.New("unknown git service")
