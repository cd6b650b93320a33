package typewright

import (
	"github.com/cockroachdb/errors"

	"github.com/typewright/typewright/naming"
)

// TypesNamespace is the allocator namespace holding type identifiers.
const TypesNamespace = "types"

// AssignNames binds a unique legalized identifier to every named type, in
// arena order, using the given per-run allocator. It also verifies that every
// declared type has a body, failing fast on a broken upstream contract.
// Renderers call this once before descriptor compilation; calling it with a
// fresh allocator on the same graph yields the same assignment.
func AssignNames(g *Graph, alloc *naming.Allocator) error {
	for _, nt := range g.NamedTypes() {
		if nt.Node == nil {
			return errors.Wrapf(ErrUndefinedType, "type %q", nt.SourceName)
		}
		nt.assigned = alloc.Assign(TypesNamespace, nt.SourceName, naming.TypeNameStyle)
		nt.named = true
	}
	return nil
}
