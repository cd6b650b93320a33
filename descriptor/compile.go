package descriptor

import (
	"github.com/cockroachdb/errors"

	typewright "github.com/typewright/typewright"
)

// Table is the declaration table produced by compilation: one full token per
// NamedType, keyed by its assigned identifier, in arena order. Everything else
// references these entries through Ref tokens.
type Table struct {
	names []string
	decls map[string]Token
}

// Names returns the declared type names in declaration order.
func (t *Table) Names() []string { return t.names }

// Declaration resolves a declared type name to its full token.
func (t *Table) Declaration(name string) (Token, bool) {
	tok, ok := t.decls[name]
	return tok, ok
}

// Compile walks the graph and produces its declaration table. Every NamedType
// must already carry an assigned identifier; compilation fails fast otherwise.
// Compilation is a pure function of the graph plus the name assignment:
// re-running it yields token-for-token identical output, including property
// and union member order.
func Compile(g *typewright.Graph) (*Table, error) {
	c := &compiler{
		graph: g,
		table: &Table{decls: make(map[string]Token)},
	}
	for _, nt := range g.NamedTypes() {
		if err := c.declare(nt); err != nil {
			return nil, err
		}
	}
	return c.table, nil
}

type compiler struct {
	graph *typewright.Graph
	table *Table
}

// declare emits the full ObjectOf/EnumOf token for a named type, exactly once,
// at its declaration site. Reference sites only ever see a Ref token, which is
// what keeps cyclic graphs finite.
func (c *compiler) declare(nt *typewright.NamedType) error {
	name, ok := nt.Assigned()
	if !ok {
		return errors.Wrapf(typewright.ErrUnnamedType, "type %q", nt.SourceName)
	}
	if _, dup := c.table.decls[name]; dup {
		return errors.Newf("descriptor: duplicate declaration %q", name)
	}
	var tok Token
	var err error
	switch n := nt.Node.(type) {
	case *typewright.Object:
		tok, err = c.compileObject(n)
	case *typewright.Enum:
		cases := make([]string, len(n.Cases))
		copy(cases, n.Cases)
		tok = &Enum{Cases: cases}
	case nil:
		return errors.Wrapf(typewright.ErrUndefinedType, "type %q", nt.SourceName)
	default:
		return errors.Newf("descriptor: type %q: named types must be object or enum, got %s",
			nt.SourceName, nt.Node.Kind())
	}
	if err != nil {
		return errors.Wrapf(err, "type %q", nt.SourceName)
	}
	c.table.names = append(c.table.names, name)
	c.table.decls[name] = tok
	return nil
}

func (c *compiler) compileObject(o *typewright.Object) (Token, error) {
	props := make([]Prop, 0, len(o.Properties))
	for _, p := range o.Properties {
		tok, err := c.compile(p.Type)
		if err != nil {
			return nil, errors.Wrapf(err, "property %q", p.SourceKey)
		}
		if p.Optional {
			// Absent or explicitly-undefined values validate too.
			tok = &Union{Members: []Token{Undefined, tok}}
		}
		props = append(props, Prop{Key: p.SourceKey, Token: tok})
	}
	additional := Token(NoExtraProps)
	if o.Additional != nil {
		tok, err := c.compile(o.Additional)
		if err != nil {
			return nil, errors.Wrap(err, "additional properties")
		}
		additional = tok
	}
	return &Object{Props: props, Additional: additional}, nil
}

// compile handles the structural variants, which are inlined at every
// occurrence. Object and Enum never appear here: they are only reachable
// through a Ref, and their bodies are compiled by declare.
func (c *compiler) compile(n typewright.Node) (Token, error) {
	switch node := n.(type) {
	case typewright.Primitive:
		switch node.K {
		case typewright.KindAny:
			return Any, nil
		case typewright.KindNull:
			return Null, nil
		case typewright.KindBool:
			return Bool, nil
		case typewright.KindInteger:
			return Integer, nil
		case typewright.KindDouble:
			return Double, nil
		case typewright.KindString:
			return String, nil
		}
		return nil, errors.Newf("descriptor: invalid primitive kind %s", node.K)
	case *typewright.Array:
		item, err := c.compile(node.Item)
		if err != nil {
			return nil, err
		}
		return &Array{Item: item}, nil
	case *typewright.Map:
		values, err := c.compile(node.Values)
		if err != nil {
			return nil, err
		}
		return &Map{Values: values}, nil
	case *typewright.Union:
		members := make([]Token, 0, len(node.Members))
		for _, m := range node.Members {
			tok, err := c.compile(m)
			if err != nil {
				return nil, err
			}
			members = append(members, tok)
		}
		return &Union{Members: members}, nil
	case typewright.Ref:
		nt, ok := c.graph.Named(node.Target)
		if !ok {
			return nil, errors.Wrapf(typewright.ErrUnknownType, "type id %d", node.Target)
		}
		name, named := nt.Assigned()
		if !named {
			return nil, errors.Wrapf(typewright.ErrUnnamedType, "type %q", nt.SourceName)
		}
		return Ref{Name: name}, nil
	case *typewright.Object, *typewright.Enum:
		return nil, typewright.ErrNotNamed
	case nil:
		return nil, errors.New("descriptor: nil node")
	default:
		return nil, errors.Newf("descriptor: unhandled node kind %s", n.Kind())
	}
}
