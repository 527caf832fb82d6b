package domain

import "errors"

// ErrNotFound is returned by service functions when the requested resource
// does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails business rule validation
// (e.g. missing required field, end date before start date).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrCorruptData is returned by the trip store when the persisted blob could
// not be decoded. The store has already recovered by clearing the blob and
// returning an empty collection — callers should notify the user and carry
// on; this error is never fatal.
var ErrCorruptData = errors.New("corrupt stored data")

// ErrStorage is returned when writing the trip collection to durable storage
// fails. In-memory state remains authoritative and is not rolled back;
// callers should notify the user and carry on.
var ErrStorage = errors.New("storage failure")
