// Package errors provides structured error types for the variant library.
//
// Errors are categorized by Op (which container operation raised them) and
// Kind (error category). Definition-time configuration errors, such as an
// empty alternative set or a duplicate alternative, are returned from
// constructors. Run-time contract violations, such as typed access against
// the wrong live alternative or operations across registries, are raised
// as panics carrying an *Error, so misuse crashes loudly with a full
// diagnostic.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.OpAccess, errors.KindTagMismatch).
//		Want("string").
//		Got("int").
//		Detail("checked access against the wrong alternative").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TagMismatch(errors.OpAccess, "string", "int")
//	err := errors.DuplicateAlternative("int", 0, 3)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
