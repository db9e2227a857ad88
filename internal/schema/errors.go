package schema

import "fmt"

// Kind classifies a schema validation failure.
type Kind int

const (
	MalformedLine Kind = iota + 1
	InvalidRange
	OutOfOrderRange
	InvalidName
	DuplicateName
)

func (k Kind) String() string {
	switch k {
	case MalformedLine:
		return "MALFORMED_LINE"
	case InvalidRange:
		return "INVALID_RANGE"
	case OutOfOrderRange:
		return "OUT_OF_ORDER_RANGE"
	case InvalidName:
		return "INVALID_NAME"
	case DuplicateName:
		return "DUPLICATE_NAME"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Sentinels for errors.Is matching against a *SchemaError of the same kind.
var (
	ErrMalformedLine   = &SchemaError{Kind: MalformedLine}
	ErrInvalidRange    = &SchemaError{Kind: InvalidRange}
	ErrOutOfOrderRange = &SchemaError{Kind: OutOfOrderRange}
	ErrInvalidName     = &SchemaError{Kind: InvalidName}
	ErrDuplicateName   = &SchemaError{Kind: DuplicateName}
)

// SchemaError reports the first invalid schema line.
type SchemaError struct {
	Kind     Kind
	Line     int    // 1-based
	Text     string // verbatim schema line
	Name     string // rejected column name, for name errors only
	Language string // display name of the target language, for InvalidName only
}

func (e *SchemaError) Error() string {
	switch e.Kind {
	case MalformedLine:
		return fmt.Sprintf("Invalid schema format for line %d: '%s'. Please ensure the strict format of 'columnStr startInt endInt'.", e.Line, e.Text)
	case InvalidRange:
		return fmt.Sprintf("Invalid startIndex and/or endIndex for line %d: '%s'. Note that endIndex must be greater than or equal to startIndex, and they should be positive integers.", e.Line, e.Text)
	case OutOfOrderRange:
		return fmt.Sprintf("Invalid startIndex for line %d: '%s'. Note that current startIndex must be greater than or equal to previous endIndex.", e.Line, e.Text)
	case InvalidName:
		return fmt.Sprintf("Invalid columnName as '%s' for line %d: '%s'. Note that columnName should not be a reserved keyword in %s.", e.Name, e.Line, e.Text, e.Language)
	case DuplicateName:
		return fmt.Sprintf("Invalid columnName as '%s' for line %d: '%s'. Note that there should not be duplicated columnName.", e.Name, e.Line, e.Text)
	default:
		return fmt.Sprintf("schema error %s for line %d: '%s'", e.Kind, e.Line, e.Text)
	}
}

// Is matches any *SchemaError with the same Kind.
func (e *SchemaError) Is(target error) bool {
	t, ok := target.(*SchemaError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}
