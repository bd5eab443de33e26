package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode identifies a class of XBRL instance model error.
type ErrorCode string

const (
	// ErrNoRoot indicates the XML document has no root element.
	ErrNoRoot ErrorCode = "xbrl-no-root"
	// ErrNotAnInstance indicates the document root is not an xbrli:xbrl element.
	ErrNotAnInstance ErrorCode = "xbrl-not-an-instance"
	// ErrXMLParse indicates the XML document could not be parsed.
	ErrXMLParse ErrorCode = "xml-parse-error"

	// ErrMalformedElement indicates an element fails the structural
	// precondition of the variant its name selects.
	ErrMalformedElement ErrorCode = "xbrl-malformed-element"
	// ErrMalformedPeriod indicates a period without exactly one of
	// instant, startDate/endDate, or forever content.
	ErrMalformedPeriod ErrorCode = "xbrl-malformed-period"
	// ErrUnboundPrefix indicates a QName value whose prefix has no
	// in-scope namespace binding.
	ErrUnboundPrefix ErrorCode = "xbrl-unbound-prefix"

	// ErrDuplicateID indicates two contexts or two units share an id.
	ErrDuplicateID ErrorCode = "xbrl-duplicate-id"
	// ErrMissingContext indicates a fact references a context id that is
	// not present in the instance.
	ErrMissingContext ErrorCode = "xbrl-missing-context"
	// ErrMissingUnit indicates a fact references a unit id that is not
	// present in the instance.
	ErrMissingUnit ErrorCode = "xbrl-missing-unit"
	// ErrDanglingLabel indicates an arc endpoint label with no matching
	// locator or resource in the same extended link.
	ErrDanglingLabel ErrorCode = "xbrl-dangling-label"
)

// Structural describes a structural error in an XBRL instance with an error
// code and optional path, expected, and actual context.
//
//nolint:errname // public API name uses XBRL domain term.
type Structural struct {
	Code     string
	Message  string
	Path     string
	Actual   string
	Expected []string
}

// StructuralList is an error that wraps one or more structural errors.
type StructuralList []Structural //nolint:errname // public API name.

// Error returns a compact summary of the structural errors.
func (s StructuralList) Error() string {
	switch len(s) {
	case 0:
		return "no structural errors"
	case 1:
		return s[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", s[0].Error(), len(s)-1)
	}
}

// Error formats the structural error for display, including code, message,
// and context.
func (s *Structural) Error() string {
	if s == nil {
		return "structural <nil>"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] %s", s.Code, s.Message))
	if s.Path != "" {
		b.WriteString(fmt.Sprintf(" at %s", s.Path))
	}
	if len(s.Expected) > 0 {
		b.WriteString(fmt.Sprintf(" (expected: %s)", strings.Join(s.Expected, ", ")))
	}
	if s.Actual != "" {
		b.WriteString(fmt.Sprintf(" (actual: %s)", s.Actual))
	}
	return b.String()
}

// NewStructural builds a Structural with a code, message, and optional path.
func NewStructural(code ErrorCode, msg, path string) Structural {
	return Structural{Code: string(code), Message: msg, Path: path}
}

// NewStructuralf formats a message and builds a Structural.
func NewStructuralf(code ErrorCode, path, format string, args ...any) Structural {
	return NewStructural(code, fmt.Sprintf(format, args...), path)
}

// AsStructurals extracts structural errors from an error returned by the
// instance model.
func AsStructurals(err error) ([]Structural, bool) {
	list, ok := asStructuralList(err)
	if !ok {
		return nil, false
	}
	return []Structural(list), true
}

func asStructuralList(err error) (StructuralList, bool) {
	if err == nil {
		return nil, false
	}
	var list StructuralList
	if errors.As(err, &list) {
		return list, true
	}

	var listPtr *StructuralList
	if errors.As(err, &listPtr) && listPtr != nil {
		return *listPtr, true
	}

	return nil, false
}
