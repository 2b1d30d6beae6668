package compiler

import "errors"

// Error taxonomy of the compile pass. Every failure is fatal: nothing
// is retried or recovered locally, and a failed compile leaves no
// partially built facility behind the engine should trust.
var (
	// ErrUnknownReference means a route or filesystem referenced a
	// name absent from its registry at the point of lookup.
	ErrUnknownReference = errors.New("unknown reference")

	// ErrUnsupportedStorageType means a storage type outside
	// {OneDisk, JBOD}. The compiler fails at the point of declaration
	// rather than silently skipping device creation.
	ErrUnsupportedStorageType = errors.New("unsupported storage type")

	// ErrDuplicateName means a zone, link or storage name was
	// registered twice within one compile pass.
	ErrDuplicateName = errors.New("duplicate name")

	// ErrInvalidDocument wraps the aggregated validation findings.
	ErrInvalidDocument = errors.New("invalid platform document")
)
