package validators

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Field name constants select the identifier rules Validate applies
// (field-level scoping). No fields means every rule.
const (
	// FieldNotBlank rejects identifiers that are empty after trimming.
	FieldNotBlank = "not_blank"

	// FieldMaxLength rejects identifiers longer than [MaxIdentifierLength] runes.
	FieldMaxLength = "max_length"

	// FieldPrintable rejects identifiers containing control or other
	// non-printable characters.
	FieldPrintable = "printable"
)

// MaxIdentifierLength bounds the identifier accepted by the registry.
const MaxIdentifierLength = 64

// IdentifierValidator checks internship identifiers before they reach the
// registry.
type IdentifierValidator struct{}

func NewIdentifierValidator() *IdentifierValidator {
	return &IdentifierValidator{}
}

func (v *IdentifierValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case string:
		return v.validateIdentifier(ctx, value, fields...)
	case *string:
		if value == nil {
			return ErrEmptyIdentifier
		}
		return v.validateIdentifier(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *IdentifierValidator) validateIdentifier(_ context.Context, identifier string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNotBlank, FieldMaxLength, FieldPrintable}
	}

	for _, f := range fields {
		switch f {
		case FieldNotBlank:
			if strings.TrimSpace(identifier) == "" {
				return ErrEmptyIdentifier
			}
		case FieldMaxLength:
			if utf8.RuneCountInString(identifier) > MaxIdentifierLength {
				return ErrIdentifierTooLong
			}
		case FieldPrintable:
			if !utf8.ValidString(identifier) || strings.IndexFunc(identifier, isNotPrintable) >= 0 {
				return ErrIdentifierNotPrintable
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isNotPrintable(r rune) bool {
	return !unicode.IsPrint(r)
}
