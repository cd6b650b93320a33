// Package descriptor compiles a type graph into a closed, serializable token
// vocabulary and interprets those tokens against arbitrary untyped values.
// The emitted artifact carries a twin of the interpreter in its own language;
// the Go implementation here is the reference the twin must agree with, and is
// what tests and the CLI validate against.
package descriptor

import (
	"strconv"
	"strings"
)

// TokKind identifies a descriptor token variant.
type TokKind int

const (
	TokAny TokKind = iota
	TokNull
	TokBool
	TokInteger
	TokDouble
	TokString
	TokUndefined
	TokNever
	TokNoExtra
	TokRef
	TokArray
	TokMap
	TokUnion
	TokObject
	TokEnum
)

// Token is the compiled, serializable form of a type-graph node.
type Token interface {
	Kind() TokKind
}

// Prim is a fixed primitive literal token. Never and NoExtraProps are kept as
// two distinct sentinels: NoExtraProps marks a closed object's additional slot,
// Never is a genuinely uninhabited type. Both reject every value, but they
// describe themselves differently in errors.
type Prim struct {
	K TokKind
}

func (p Prim) Kind() TokKind { return p.K }

// Singleton primitive tokens.
var (
	Any          = Prim{TokAny}
	Null         = Prim{TokNull}
	Bool         = Prim{TokBool}
	Integer      = Prim{TokInteger}
	Double       = Prim{TokDouble}
	String       = Prim{TokString}
	Undefined    = Prim{TokUndefined}
	Never        = Prim{TokNever}
	NoExtraProps = Prim{TokNoExtra}
)

// Ref is an indirection to a declaration-table entry by assigned type name.
type Ref struct {
	Name string
}

func (Ref) Kind() TokKind { return TokRef }

// Array validates a sequence whose every element matches Item.
type Array struct {
	Item Token
}

func (*Array) Kind() TokKind { return TokArray }

// Map validates a keyed structure with no declared properties; every value
// must match Values.
type Map struct {
	Values Token
}

func (*Map) Kind() TokKind { return TokMap }

// Union validates against each member in declared order; the first success
// wins. Order, not specificity, decides.
type Union struct {
	Members []Token
}

func (*Union) Kind() TokKind { return TokUnion }

// Prop binds a source JSON key to its compiled token.
type Prop struct {
	Key   string
	Token Token
}

// Object validates a keyed structure: declared properties against their
// tokens, everything else against Additional (NoExtraProps when closed).
type Object struct {
	Props      []Prop
	Additional Token
}

func (*Object) Kind() TokKind { return TokObject }

// Enum validates membership in an ordered case list of source literals.
type Enum struct {
	Cases []string
}

func (*Enum) Kind() TokKind { return TokEnum }

// Describe renders a token for error messages.
func Describe(t Token) string {
	switch tk := t.(type) {
	case Prim:
		switch tk.K {
		case TokAny:
			return "any"
		case TokNull:
			return "null"
		case TokBool:
			return "boolean"
		case TokInteger:
			return "integer"
		case TokDouble:
			return "double"
		case TokString:
			return "string"
		case TokUndefined:
			return "undefined"
		case TokNever:
			return "never"
		case TokNoExtra:
			return "no additional properties"
		}
	case Ref:
		return tk.Name
	case *Array:
		return Describe(tk.Item) + "[]"
	case *Map:
		return "map<" + Describe(tk.Values) + ">"
	case *Union:
		parts := make([]string, len(tk.Members))
		for i, m := range tk.Members {
			parts[i] = Describe(m)
		}
		return strings.Join(parts, " | ")
	case *Object:
		keys := make([]string, len(tk.Props))
		for i, p := range tk.Props {
			keys[i] = p.Key
		}
		return "object{" + strings.Join(keys, ", ") + "}"
	case *Enum:
		quoted := make([]string, len(tk.Cases))
		for i, c := range tk.Cases {
			quoted[i] = strconv.Quote(c)
		}
		return "one of [" + strings.Join(quoted, ", ") + "]"
	}
	return "unknown"
}
