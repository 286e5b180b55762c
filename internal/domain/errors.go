package domain

import "errors"

// ErrUnauthenticated indicates the operation requires an authenticated user
// and none was supplied.
var ErrUnauthenticated = errors.New("unauthenticated")

// ErrNotFound indicates a referenced article, reply, or reply entry does not
// exist. When raised mid-operation it signals a data-integrity problem such
// as an orphaned reply reference, and is never silently absorbed.
var ErrNotFound = errors.New("not found")

// ErrUpdateConflict indicates a write against the article's reply entry did
// not complete as a single atomic update.
var ErrUpdateConflict = errors.New("update conflict")
