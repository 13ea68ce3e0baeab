package apperrors

import "errors"

// ErrNotFound indicates that a referenced account or user does not exist.
var ErrNotFound = errors.New("resource not found")

// ErrForbidden indicates that the authenticated requester is not allowed to
// access the resource (typically: not the account's owner).
var ErrForbidden = errors.New("forbidden")

// ErrInsufficientFunds indicates that a withdrawal or transfer would drive an
// account balance negative.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidCredentials indicates an authentication failure. Unknown username
// and bad password are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid credentials")
