package errors

import "errors"

// As is the equivalent of the std errors.As, and allows devs to only import
// this package for the capability.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Is is the equivalent of the std errors.Is, and allows devs to only import
// this package for the capability.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// IsNotFoundError returns a boolean indicating whether the error is known to
// report a "record not found" condition.
func IsNotFoundError(err error) bool {
	return hasCode(err, RecordNotFound)
}

// IsUniqueError returns a boolean indicating whether the error is known to
// report a unique constraint violation.
func IsUniqueError(err error) bool {
	return hasCode(err, NotUnique)
}

// IsForbiddenError returns a boolean indicating whether the error is known to
// report an authorization failure.
func IsForbiddenError(err error) bool {
	return hasCode(err, Forbidden)
}

// IsInvalidParameterError returns a boolean indicating whether the error is
// known to report an invalid parameter.
func IsInvalidParameterError(err error) bool {
	return hasCode(err, InvalidParameter) || hasCode(err, InvalidPublicId)
}

// IsNotModifiedError returns a boolean indicating whether the error is the
// conditional-read short-circuit. It reports a successful negative result,
// not a failure.
func IsNotModifiedError(err error) bool {
	return hasCode(err, NotModified)
}

func hasCode(err error, c Code) bool {
	if err == nil {
		return false
	}
	var domainErr *Err
	if errors.As(err, &domainErr) {
		return domainErr.Code == c
	}
	return false
}
