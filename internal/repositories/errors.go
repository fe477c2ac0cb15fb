package repositories

import "errors"

// ErrNotFound is returned when an identifier does not resolve to a stored
// document, including malformed ObjectID strings.
var ErrNotFound = errors.New("not found")
