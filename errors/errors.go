package errors

import (
	"fmt"
	"strings"
)

// Op indicates which container operation raised the error
type Op string

const (
	OpDefine Op = "define" // registry construction
	OpLookup Op = "lookup" // alternative index lookup
	OpAssign Op = "assign" // payload assignment
	OpAccess Op = "access" // checked payload access
	OpCopy   Op = "copy"   // copy-assignment between values
	OpMove   Op = "move"   // move-assignment between values
	OpSwap   Op = "swap"   // full-state exchange
	OpScript Op = "script" // playground script execution
)

// Kind categorizes the error
type Kind string

const (
	KindEmptySet         Kind = "empty_set"         // registry with no alternatives
	KindDuplicate        Kind = "duplicate"         // repeated alternative type
	KindNotRegistered    Kind = "not_registered"    // type absent from the registry
	KindTagMismatch      Kind = "tag_mismatch"      // live alternative differs from requested
	KindEmptyValue       Kind = "empty_value"       // access on a value with no live payload
	KindRegistryMismatch Kind = "registry_mismatch" // operation across different registries
	KindInvalidInput     Kind = "invalid_input"     // malformed argument
	KindParse            Kind = "parse"             // script parsing
)

// Error is the structured error type used throughout the library.
// Definition-time configuration errors are returned; run-time contract
// violations are raised as panics carrying an *Error.
type Error struct {
	Value  any
	Cause  error
	Op     Op
	Kind   Kind
	Type   string
	Want   string
	Got    string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Op))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Type != "" {
		b.WriteString(" on ")
		b.WriteString(e.Type)
	}

	if e.Want != "" || e.Got != "" {
		b.WriteString(": ")
		if e.Want != "" && e.Got != "" {
			b.WriteString("want ")
			b.WriteString(e.Want)
			b.WriteString(", got ")
			b.WriteString(e.Got)
		} else if e.Want != "" {
			b.WriteString("want ")
			b.WriteString(e.Want)
		} else {
			b.WriteString("got ")
			b.WriteString(e.Got)
		}
	}

	if e.Detail != "" {
		if e.Type != "" || e.Want != "" || e.Got != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Op == t.Op && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(op Op, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Op:   op,
			Kind: kind,
		},
	}
}

// Type sets the subject type name
func (b *Builder) Type(t string) *Builder {
	b.err.Type = t
	return b
}

// Want sets the requested alternative name
func (b *Builder) Want(t string) *Builder {
	b.err.Want = t
	return b
}

// Got sets the live alternative name
func (b *Builder) Got(t string) *Builder {
	b.err.Got = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// EmptySet creates a definition error for a registry with no alternatives
func EmptySet() *Error {
	return &Error{
		Op:     OpDefine,
		Kind:   KindEmptySet,
		Detail: "alternative set has no members",
	}
}

// DuplicateAlternative creates a definition error for a repeated type
func DuplicateAlternative(typeName string, first, again int) *Error {
	return &Error{
		Op:     OpDefine,
		Kind:   KindDuplicate,
		Type:   typeName,
		Detail: fmt.Sprintf("declared at index %d and again at index %d", first, again),
	}
}

// NotRegistered creates a contract violation for a type outside the set
func NotRegistered(op Op, typeName string) *Error {
	return &Error{
		Op:     op,
		Kind:   KindNotRegistered,
		Type:   typeName,
		Detail: "type is not a member of the alternative set",
	}
}

// TagMismatch creates a contract violation for typed access against the
// wrong live alternative
func TagMismatch(op Op, want, got string) *Error {
	return &Error{
		Op:   op,
		Kind: KindTagMismatch,
		Want: want,
		Got:  got,
	}
}

// EmptyValue creates a contract violation for typed access against a value
// holding nothing
func EmptyValue(op Op, want string) *Error {
	return &Error{
		Op:     op,
		Kind:   KindEmptyValue,
		Want:   want,
		Detail: "no live alternative",
	}
}

// RegistryMismatch creates a contract violation for a binary operation over
// values from different registries
func RegistryMismatch(op Op) *Error {
	return &Error{
		Op:     op,
		Kind:   KindRegistryMismatch,
		Detail: "values belong to different alternative sets",
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(op Op, detail string) *Error {
	return &Error{
		Op:     op,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// ParseFailed creates a script parsing error
func ParseFailed(what string, cause error) *Error {
	return &Error{
		Op:     OpScript,
		Kind:   KindParse,
		Detail: fmt.Sprintf("parse %s", what),
		Cause:  cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(op Op, kind Kind, cause error, detail string) *Error {
	return &Error{
		Op:     op,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
