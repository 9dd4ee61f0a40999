package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidObject     = errors.New("invalid STIX object")
	ErrMalformedObject   = errors.New("object is not a JSON object")
	ErrIDTypeMismatch    = errors.New("id prefix does not match type")
	ErrTimestampOrder    = errors.New("modified is earlier than created")
	ErrInvalidDocument   = errors.New("invalid sync document")
	ErrDuplicateEntity   = errors.New("duplicate entity")
	ErrSchemaUnavailable = errors.New("object schema is unavailable")
)
