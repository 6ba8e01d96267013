package schema

import "errors"

var (
	ErrEmptyEntityName     = errors.New("entity name must not be empty")
	ErrEmptyFieldName      = errors.New("field name must not be empty")
	ErrDuplicateEntity     = errors.New("entity already registered")
	ErrDuplicateField      = errors.New("field declared more than once")
	ErrNilRule             = errors.New("field rule must not be nil")
	ErrUnsupportedType     = errors.New("enumerated string rule requires a string field")
	ErrFailedToParseYAML   = errors.New("failed to parse schema YAML")
	ErrFailedToReadFile    = errors.New("failed to read schema file")
	ErrLoadingCancelled    = errors.New("loading schema cancelled")
	ErrInvalidDeclarations = errors.New("invalid schema declarations")
)
