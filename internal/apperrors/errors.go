package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that a concurrent update anomaly was detected.
var ErrConflict = errors.New("conflicting update detected")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")
