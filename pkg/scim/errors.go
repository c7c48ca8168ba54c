package scim

import (
	"errors"

	"github.com/samber/oops"

	"github.com/openkcm/scim-resources/pkg/utils/errs"
)

var errID = oops.In("scim")

var (
	// ErrSyntax reports JSON that could not be parsed at all.
	ErrSyntax = errors.New("malformed JSON")
	// ErrTypeMismatch reports a JSON value whose shape does not fit the
	// target attribute.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrSchema reports a schemas declaration that does not match the
	// resource, including extension payload mismatches.
	ErrSchema = errors.New("schema violation")
	// ErrField reports an attribute violating its definition: missing while
	// required, more than one primary, or a non-canonical value.
	ErrField = errors.New("invalid field")
)

func syntaxErr(err error) error {
	return errID.Code("syntax_error").Wrap(errs.Wrap(ErrSyntax, err))
}

func typeMismatchErr(attribute string, detail string) error {
	return errID.Code("type_mismatch").
		With("attribute", attribute).
		Wrapf(errs.Attr(ErrTypeMismatch, attribute), "%s", detail)
}

func schemaErr(format string, args ...any) error {
	return errID.Code("schema_error").Wrapf(ErrSchema, format, args...)
}

func fieldErr(attribute string, reason string) error {
	return errID.Code("field_error").
		With("attribute", attribute).
		Wrapf(errs.Attr(ErrField, attribute), "%s", reason)
}
