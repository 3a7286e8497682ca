package checker

import "errors"

// ErrInvalidArgument a command argument failed validation.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrRemoteRequestFailed the remote server answered with a non-2xx status.
// For conversions and rates this almost always means an unknown currency code.
var ErrRemoteRequestFailed = errors.New("remote request failed")

// ErrInvalidCurrencyCode no ISO 4217 entry matches the requested code or number.
var ErrInvalidCurrencyCode = errors.New("invalid currency code")

// ErrUnexpectedMarkup the fetched document does not contain the expected fragment.
var ErrUnexpectedMarkup = errors.New("unexpected markup")
