// Package variant implements a generic tagged-union value container: a
// Value holds exactly one live payload drawn from a fixed, closed set of
// alternative types, tracks which alternative is live, and sequences
// destruction and construction correctly as the live alternative changes.
// A two-alternative success/error specialization lives in the result
// subpackage.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	variant/             Root package: alternative registry, Value facade
//	├── result/          Success/error specialization of the same design
//	├── delegate/        Ordered callback lists with subscription handles
//	├── scope/           Deferred-action guards (Disposer-compatible)
//	├── strutil/         Whitespace, splitting and placeholder formatting
//	├── randutil/        Deterministically seeded uniform random source
//	├── memtrack/        Live-object ledger and leak reporting
//	├── errors/          Structured error types for diagnostics
//	└── internal/        Storage cell and alignment/tag-width math
//
// # Quick Start
//
// Define a registry once, then create values over it:
//
//	reg, err := variant.NewRegistry(
//	    variant.Alt[int](),
//	    variant.Alt[float64](),
//	    variant.Alt[string](),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	v := variant.New(reg)
//	variant.Assign(v, 5)
//	if variant.Is[int](v) {
//	    fmt.Println(*variant.As[int](v)) // 5
//	}
//
//	variant.Assign(v, "tttttt") // destroys the int payload first
//	v.Reset()                   // destroys the string payload
//
// # Registries
//
// A registry is the compiled metadata for one alternative set: declaration
// order assigns each type a stable index, and per-type construct, clone,
// move, and destroy operations are captured once at definition time. An
// empty set or a repeated type is a definition error: NewRegistry rejects
// it and no value over the set can exist. Lookups for types outside the
// set return the reserved NotFound sentinel, which is distinct from every
// valid index and from Empty.
//
// # Payload Protocols
//
// Payload types may opt into two protocols. A type implementing Disposer
// has Dispose called exactly once when its payload is destroyed, whether
// by Reset, by assignment over it, or by overwrite through CopyFrom or
// MoveFrom. A type with a Clone() T method is deep-copied through it by
// Clone and CopyFrom; all other payloads are copied shallowly as values.
//
// # Contract Violations
//
// Typed access is checked in exactly one place: As panics with a
// structured *errors.Error, logged through the package logger first, when
// the live alternative differs from the requested type. Assigning a
// type outside the registry panics the same way. Every other operation on
// a well-formed value always succeeds. Use TryAs to probe without the
// fatal contract.
//
// # Thread Safety
//
// Registries are immutable after construction and safe for concurrent
// readers. Values are plain single-owner types with no internal
// synchronization; sharing one across goroutines requires external
// locking. A pointer obtained from As is invalidated by any subsequent
// mutating call on the same value.
package variant
