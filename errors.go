// errors.go
package prefsxml

import "errors"

var (
	ErrUsage              = errors.New("missing xml path argument")
	ErrUnknownFlag        = errors.New("unknown flag")
	ErrArity              = errors.New("requires key and value")
	ErrInvalidBoolean     = errors.New("boolean must be true/false")
	ErrInvalidKind        = errors.New("invalid entry kind")
	ErrNotFound           = errors.New("preferences file not found")
	ErrMalformed          = errors.New("malformed preferences document")
	ErrStorageUnavailable = errors.New("storage backend unavailable")
)

// IsUsageError reports whether err came from command-line validation: a missing path,
// an unknown flag, a short group, or a bad boolean literal.
func IsUsageError(err error) bool {
	return errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnknownFlag) ||
		errors.Is(err, ErrArity) ||
		errors.Is(err, ErrInvalidBoolean)
}
