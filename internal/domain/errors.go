package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgStoreFailure = "option store failure"
	ErrMsgInvalidNonce = "invalid or expired nonce"
	ErrMsgInvalidSeed  = "invalid seed file"
)

var (
	// ErrStoreFailure wraps any failure of the backing key-value store.
	ErrStoreFailure = errors.New(ErrMsgStoreFailure)
	// ErrInvalidNonce is returned when a settings form token does not verify.
	ErrInvalidNonce = errors.New(ErrMsgInvalidNonce)
	// ErrInvalidSeed is returned when the activation seed file fails its schema.
	ErrInvalidSeed = errors.New(ErrMsgInvalidSeed)
)
