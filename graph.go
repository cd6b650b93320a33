package typewright

import "github.com/cockroachdb/errors"

// Kind identifies a type-graph node variant. The set is closed; every match
// site type-switches over it exhaustively.
type Kind int

const (
	KindAny Kind = iota
	KindNull
	KindBool
	KindInteger
	KindDouble
	KindString
	KindArray
	KindMap
	KindObject
	KindEnum
	KindUnion
	KindRef
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindAny:
		return "any"
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInteger:
		return "integer"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	case KindObject:
		return "object"
	case KindEnum:
		return "enum"
	case KindUnion:
		return "union"
	case KindRef:
		return "ref"
	default:
		return "unknown"
	}
}

// Node is the root type-graph node interface. Structural variants (primitives,
// Array, Map, Union, Ref) are inlined wherever they occur; Object and Enum are
// always reached indirectly through a NamedType.
type Node interface {
	Kind() Kind
}

// Primitive represents the inline scalar kinds (Any..String).
type Primitive struct {
	K Kind
}

func (p Primitive) Kind() Kind { return p.K }

// Singleton primitive nodes.
var (
	Any     = Primitive{KindAny}
	Null    = Primitive{KindNull}
	Bool    = Primitive{KindBool}
	Integer = Primitive{KindInteger}
	Double  = Primitive{KindDouble}
	String  = Primitive{KindString}
)

// Array represents a homogeneous sequence.
type Array struct {
	Item Node
}

func (*Array) Kind() Kind { return KindArray }

// Map represents a keyed structure with no declared properties; every value
// conforms to Values.
type Map struct {
	Values Node
}

func (*Map) Kind() Kind { return KindMap }

// Union represents an ordered set of alternatives. Order is an externally
// observable contract: the generated validator tries members in this order.
// Duplicates are allowed.
type Union struct {
	Members []Node
}

func (*Union) Kind() Kind { return KindUnion }

// Ref is an indirection to a NamedType by arena index.
type Ref struct {
	Target TypeID
}

func (Ref) Kind() Kind { return KindRef }

// Property describes one declared object property. SourceKey is the original
// JSON key and is never mutated.
type Property struct {
	SourceKey string
	Type      Node
	Optional  bool
}

// Object is a keyed structure with declared properties in declaration order.
// Additional is the type accepted for undeclared keys; nil means the object is
// closed and undeclared keys are rejected.
type Object struct {
	Properties []Property
	Additional Node
}

func (*Object) Kind() Kind { return KindObject }

// Enum is an ordered set of string cases, stored as source literals.
type Enum struct {
	Cases []string
}

func (*Enum) Kind() Kind { return KindEnum }

// TypeID is a stable arena index for a NamedType. Nodes hold TypeIDs rather
// than pointers so cyclic graphs need no ownership cycles.
type TypeID int

// NamedType is an Object or Enum that owns exactly one identifier in the
// "types" namespace. The identifier is assigned once, before descriptor
// compilation, and resolved at emission time.
type NamedType struct {
	ID         TypeID
	SourceName string
	Node       Node // *Object or *Enum; nil until defined

	assigned string
	named    bool
}

// Assigned reports the legalized identifier bound to this type, if any.
func (nt *NamedType) Assigned() (string, bool) { return nt.assigned, nt.named }

// TopLevel is a generation root: a NamedType exposed under its original
// source name in the artifact's export manifest.
type TopLevel struct {
	SourceName string
	Type       TypeID
}

// Graph is an arena of NamedTypes plus the ordered list of top-level roots.
// One Graph is compiled into one output artifact; the graph is immutable for
// the duration of a generation run.
type Graph struct {
	named     []*NamedType
	topLevels []TopLevel
}

// NewGraph returns an empty graph.
func NewGraph() *Graph { return &Graph{} }

// Declare reserves an arena slot for a named type so that cyclic structures
// can reference it before its body exists. The body must be supplied with
// DefineObject or DefineEnum before generation.
func (g *Graph) Declare(sourceName string) TypeID {
	id := TypeID(len(g.named))
	g.named = append(g.named, &NamedType{ID: id, SourceName: sourceName})
	return id
}

// DefineObject binds an object body to a declared slot.
func (g *Graph) DefineObject(id TypeID, props []Property, additional Node) error {
	return g.define(id, &Object{Properties: props, Additional: additional})
}

// DefineEnum binds an enum body to a declared slot.
func (g *Graph) DefineEnum(id TypeID, cases []string) error {
	return g.define(id, &Enum{Cases: cases})
}

func (g *Graph) define(id TypeID, body Node) error {
	nt, ok := g.lookup(id)
	if !ok {
		return errors.Wrapf(ErrUnknownType, "type id %d", id)
	}
	if nt.Node != nil {
		return errors.Newf("typewright: type %q already defined", nt.SourceName)
	}
	nt.Node = body
	return nil
}

// AddObject declares and defines an acyclic object in one step.
func (g *Graph) AddObject(sourceName string, props []Property, additional Node) TypeID {
	id := g.Declare(sourceName)
	g.named[id].Node = &Object{Properties: props, Additional: additional}
	return id
}

// AddEnum declares and defines an enum in one step.
func (g *Graph) AddEnum(sourceName string, cases []string) TypeID {
	id := g.Declare(sourceName)
	g.named[id].Node = &Enum{Cases: cases}
	return id
}

// AddTopLevel exposes a named type as a generation root under sourceName.
func (g *Graph) AddTopLevel(sourceName string, id TypeID) error {
	if _, ok := g.lookup(id); !ok {
		return errors.Wrapf(ErrUnknownType, "top level %q: type id %d", sourceName, id)
	}
	g.topLevels = append(g.topLevels, TopLevel{SourceName: sourceName, Type: id})
	return nil
}

// Named resolves a TypeID to its arena record.
func (g *Graph) Named(id TypeID) (*NamedType, bool) { return g.lookup(id) }

// NamedTypes returns all named types in arena (declaration) order.
func (g *Graph) NamedTypes() []*NamedType { return g.named }

// TopLevels returns the generation roots in declaration order.
func (g *Graph) TopLevels() []TopLevel { return g.topLevels }

func (g *Graph) lookup(id TypeID) (*NamedType, bool) {
	if id < 0 || int(id) >= len(g.named) {
		return nil, false
	}
	return g.named[id], true
}
