// Package apperr defines the error taxonomy shared by every service.
// Handlers map these sentinels to HTTP codes; services wrap them with
// context via fmt.Errorf and %w.
package apperr

import "errors"

var (
	// ErrNotFound: the referenced resource does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAccessDenied: the actor may not touch the resource. No partial
	// effects occur before this check fails.
	ErrAccessDenied = errors.New("access denied")
	// ErrOperationNotAllowed: business-rule violation (empty-cart
	// checkout, forbidden status transition, duplicate favorite).
	ErrOperationNotAllowed = errors.New("operation not allowed")
	// ErrConflict: optimistic concurrency check lost the race; the
	// caller may safely retry.
	ErrConflict = errors.New("conflict")
)
