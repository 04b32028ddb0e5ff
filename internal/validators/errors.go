package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyIdentifier        = errors.New("identifier is required")
	ErrIdentifierTooLong      = errors.New("identifier is too long")
	ErrIdentifierNotPrintable = errors.New("identifier contains non-printable characters")
)
