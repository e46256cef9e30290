package errors

// Code specifies a code for the error.
type Code uint32

// String will return the Code's Info.Message
func (c Code) String() string {
	return c.Info().Message
}

// Info will look up the Code's Info.  If the Info is not found, it will return
// Info for an Unknown Code.
func (c Code) Info() Info {
	if info, ok := errorCodeInfo[c]; ok {
		return info
	}
	return errorCodeInfo[Unknown]
}

const (
	Unknown Code = 0 // Unknown will be equal to a zero value for Codes

	// General function errors are reserved Codes 100-999
	InvalidParameter Code = 100 // InvalidParameter represents an invalid parameter for an operation.
	InvalidPublicId  Code = 102 // InvalidPublicId represents an invalid public id, e.g. one supplied by a client on create.

	// Authorization errors are reserved Codes 300-399
	Forbidden Code = 300 // Forbidden represents a principal lacking the role or ownership for a mutation.

	// Store errors are reserved Codes from 1000-1999
	NotUnique       Code = 1002 // NotUnique represents a value that must be unique within its collection.
	Io              Code = 1050 // Io represents an error during an io operation against a backing store.
	RecordNotFound  Code = 1100 // RecordNotFound represents that a record was not found matching the criteria.
	MultipleRecords Code = 1101 // MultipleRecords represents that multiple records matched where one was expected.

	// Conditional read results are reserved Codes 1300-1399
	NotModified Code = 1300 // NotModified represents a conditional read short-circuit; a successful negative result, not a failure.

	// External system errors are reserved Codes 3000-3999
	Unavailable Code = 3000 // Unavailable represents that an external system was unavailable.

	Internal Code = 5000 // Internal represents an unexpected failure in a downstream capability.
)
