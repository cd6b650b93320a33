// Package graphio loads a declared type-graph description from JSON or YAML.
// It performs no inference: every type, property, and case is spelled out in
// the file, and loading fails fast on unknown kinds or dangling references.
//
// The format keeps declarations in lists so property and case order survive
// decoding:
//
//	types:
//	  - name: Point
//	    object:
//	      - { name: x, type: integer }
//	      - { name: y, type: integer }
//	  - name: Color
//	    enum: [Red, Green, Blue]
//	topLevel: [Point]
//
// Property types use a compact expression syntax: primitive names (any, null,
// boolean, integer, double, string), T[] for arrays, map<T> for maps, A | B
// for unions, and declared type names as references.
package graphio

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	typewright "github.com/typewright/typewright"
)

type doc struct {
	Types    []typeDecl `json:"types" yaml:"types"`
	TopLevel []string   `json:"topLevel" yaml:"topLevel"`
}

type typeDecl struct {
	Name   string     `json:"name" yaml:"name"`
	Kind   string     `json:"kind,omitempty" yaml:"kind,omitempty"`
	Object []propDecl `json:"object,omitempty" yaml:"object,omitempty"`
	Enum   []string   `json:"enum,omitempty" yaml:"enum,omitempty"`
	// Additional is the type expression accepted for undeclared keys;
	// empty means the object is closed.
	Additional string `json:"additional,omitempty" yaml:"additional,omitempty"`
}

type propDecl struct {
	Name     string `json:"name" yaml:"name"`
	Type     string `json:"type" yaml:"type"`
	Optional bool   `json:"optional,omitempty" yaml:"optional,omitempty"`
}

// Load reads a graph description from path, choosing the decoder by file
// extension (.json, .yaml, .yml).
func Load(path string) (*typewright.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "graphio: reading %s", path)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return LoadJSON(data)
	case ".yaml", ".yml":
		return LoadYAML(data)
	default:
		return nil, errors.Newf("graphio: unsupported file extension %q", filepath.Ext(path))
	}
}

// LoadJSON decodes a JSON graph description.
func LoadJSON(data []byte) (*typewright.Graph, error) {
	var d doc
	if err := gojson.Unmarshal(data, &d); err != nil {
		return nil, errors.Wrap(err, "graphio: decoding json")
	}
	return build(d)
}

// LoadYAML decodes a YAML graph description.
func LoadYAML(data []byte) (*typewright.Graph, error) {
	var d doc
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, errors.Wrap(err, "graphio: decoding yaml")
	}
	return build(d)
}

func build(d doc) (*typewright.Graph, error) {
	if len(d.Types) == 0 {
		return nil, errors.New("graphio: no types declared")
	}
	g := typewright.NewGraph()
	ids := make(map[string]typewright.TypeID, len(d.Types))

	// Declare everything first so cyclic references resolve.
	for _, t := range d.Types {
		if t.Name == "" {
			return nil, errors.New("graphio: type with empty name")
		}
		if _, dup := ids[t.Name]; dup {
			return nil, errors.Newf("graphio: duplicate type %q", t.Name)
		}
		ids[t.Name] = g.Declare(t.Name)
	}
	resolve := func(name string) (typewright.TypeID, bool) {
		id, ok := ids[name]
		return id, ok
	}

	for _, t := range d.Types {
		switch declKind(t) {
		case "enum":
			if len(t.Enum) == 0 {
				return nil, errors.Newf("graphio: type %q: enum with no cases", t.Name)
			}
			if err := g.DefineEnum(ids[t.Name], t.Enum); err != nil {
				return nil, err
			}
		case "object":
			props := make([]typewright.Property, 0, len(t.Object))
			for _, p := range t.Object {
				node, err := parseTypeExpr(p.Type, resolve)
				if err != nil {
					return nil, errors.Wrapf(err, "type %q, property %q", t.Name, p.Name)
				}
				props = append(props, typewright.Property{
					SourceKey: p.Name,
					Type:      node,
					Optional:  p.Optional,
				})
			}
			var additional typewright.Node
			if t.Additional != "" {
				node, err := parseTypeExpr(t.Additional, resolve)
				if err != nil {
					return nil, errors.Wrapf(err, "type %q, additional", t.Name)
				}
				additional = node
			}
			if err := g.DefineObject(ids[t.Name], props, additional); err != nil {
				return nil, err
			}
		default:
			return nil, errors.Newf("graphio: type %q: unknown kind %q", t.Name, t.Kind)
		}
	}

	for _, name := range d.TopLevel {
		id, ok := ids[name]
		if !ok {
			return nil, errors.Newf("graphio: top level %q is not a declared type", name)
		}
		if err := g.AddTopLevel(name, id); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func declKind(t typeDecl) string {
	if t.Kind != "" {
		return t.Kind
	}
	// A present-but-empty case list still marks the declaration as an enum so
	// it is rejected rather than read as an empty closed object.
	if t.Enum != nil {
		return "enum"
	}
	return "object"
}

// parseTypeExpr parses the compact type-expression syntax.
func parseTypeExpr(s string, resolve func(string) (typewright.TypeID, bool)) (typewright.Node, error) {
	parts := splitUnion(s)
	if len(parts) > 1 {
		members := make([]typewright.Node, 0, len(parts))
		for _, p := range parts {
			node, err := parseTypeExpr(p, resolve)
			if err != nil {
				return nil, err
			}
			members = append(members, node)
		}
		return &typewright.Union{Members: members}, nil
	}
	s = strings.TrimSpace(parts[0])
	if s == "" {
		return nil, errors.New("graphio: empty type expression")
	}
	if strings.HasSuffix(s, "[]") {
		item, err := parseTypeExpr(s[:len(s)-2], resolve)
		if err != nil {
			return nil, err
		}
		return &typewright.Array{Item: item}, nil
	}
	if strings.HasPrefix(s, "map<") && strings.HasSuffix(s, ">") {
		values, err := parseTypeExpr(s[len("map<"):len(s)-1], resolve)
		if err != nil {
			return nil, err
		}
		return &typewright.Map{Values: values}, nil
	}
	switch s {
	case "any":
		return typewright.Any, nil
	case "null":
		return typewright.Null, nil
	case "bool", "boolean":
		return typewright.Bool, nil
	case "int", "integer":
		return typewright.Integer, nil
	case "double", "number":
		return typewright.Double, nil
	case "string":
		return typewright.String, nil
	}
	if id, ok := resolve(s); ok {
		return typewright.Ref{Target: id}, nil
	}
	return nil, errors.Newf("graphio: unknown type %q", s)
}

// splitUnion splits on top-level | separators, honouring map<...> nesting.
func splitUnion(s string) []string {
	var parts []string
	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
		case '|':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}
