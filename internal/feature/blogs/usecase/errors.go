// Package usecase implements the business logic for the blogs feature.
package usecase

import "errors"

// ErrNoBlogsFound is returned when a query or bulk delete matches zero blog posts.
// Callers report this the same way as a missing resource.
var ErrNoBlogsFound = errors.New("no blogs found")
