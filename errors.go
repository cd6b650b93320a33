package typewright

import "github.com/cockroachdb/errors"

// Sentinel errors for broken upstream contracts. These are fatal: a graph
// that trips one of them cannot be compiled and the run aborts.
var (
	// ErrUnknownType indicates a TypeID that does not resolve to an arena slot.
	ErrUnknownType = errors.New("typewright: unknown type id")

	// ErrUndefinedType indicates a declared type whose body was never supplied.
	ErrUndefinedType = errors.New("typewright: declared type has no definition")

	// ErrUnnamedType indicates a NamedType referenced before the allocator
	// assigned it an identifier.
	ErrUnnamedType = errors.New("typewright: named type has no assigned identifier")

	// ErrNotNamed indicates an Object or Enum node reached without going
	// through a NamedType indirection.
	ErrNotNamed = errors.New("typewright: object and enum nodes must be referenced through a named type")
)
