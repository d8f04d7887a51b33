// Package store wraps the MongoDB collections behind one type per entity.
// Validation and authorization happen before these methods are called;
// everything here is a single store round trip.
package store

import "errors"

var (
	// ErrNotFound means the referenced document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNotOwner means the requester does not own the targeted document.
	ErrNotOwner = errors.New("not owner")
)
