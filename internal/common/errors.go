// Package common defines the closed set of failure kinds shared by the
// repository, service, and boundary layers. Callers match them with
// errors.Is; diagnostic detail travels in the wrapping message and is
// logged at the boundary, never sent to clients verbatim.
package common

import "errors"

var (
	// ErrDatabase covers every storage-layer failure: connectivity,
	// constraint violations, timeouts. Repositories never let a
	// driver-native error type escape without wrapping it.
	ErrDatabase = errors.New("database error")

	// ErrNotFound is returned by read, update, and delete operations
	// when no row matches.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials is reserved for authentication flows.
	// Registration never produces it.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInternal covers hashing failures and other non-storage errors.
	ErrInternal = errors.New("internal error")
)
