package javascript

import (
	"strings"

	"github.com/cockroachdb/errors"

	typewright "github.com/typewright/typewright"
	"github.com/typewright/typewright/descriptor"
	"github.com/typewright/typewright/internal/lines"
	"github.com/typewright/typewright/naming"
)

// entry is one top-level deserializer/serializer pair.
type entry struct {
	sourceName   string // original, pre-legalization export key
	typeName     string // assigned identifier
	deserializer string
	serializer   string
}

// EntryPointsNamespace is the allocator namespace for the generated
// deserializer and serializer function names. Distinct type names can
// camel-case to the same serializer name, so entry points are allocated
// rather than derived.
const EntryPointsNamespace = "javascript entry points"

func deserializerName(typeName string) string {
	return "to" + typeName
}

func serializerName(typeName string) string {
	return naming.CamelCaseStyle(typeName) + "ToJson"
}

// Render compiles the graph and emits the artifact. Output is byte-identical
// across runs for the same graph and options: names, declaration order, and
// validator text are all deterministic.
func Render(g *typewright.Graph, opts Options) ([]byte, error) {
	alloc := naming.NewAllocator()
	if err := typewright.AssignNames(g, alloc); err != nil {
		return nil, err
	}

	entries := make([]entry, 0, len(g.TopLevels()))
	for _, tl := range g.TopLevels() {
		nt, ok := g.Named(tl.Type)
		if !ok {
			return nil, errors.Wrapf(typewright.ErrUnknownType, "top level %q", tl.SourceName)
		}
		name, named := nt.Assigned()
		if !named {
			return nil, errors.Wrapf(typewright.ErrUnnamedType, "top level %q", tl.SourceName)
		}
		entries = append(entries, entry{
			sourceName:   tl.SourceName,
			typeName:     name,
			deserializer: alloc.Assign(EntryPointsNamespace, name, deserializerName),
			serializer:   alloc.Assign(EntryPointsNamespace, name, serializerName),
		})
	}

	var table *descriptor.Table
	if opts.RuntimeTypecheck {
		t, err := descriptor.Compile(g)
		if err != nil {
			return nil, err
		}
		table = t
	}

	w := lines.NewWriter()
	emitUsage(w, entries, opts)
	emitEntryPoints(w, entries, opts)
	if opts.RuntimeTypecheck {
		w.Raw(runtimeSource)
		w.Blank()
		emitTypeMap(w, table)
	}
	emitExports(w, entries)
	return w.Bytes(), nil
}

func emitUsage(w *lines.Writer, entries []entry, opts Options) {
	w.Line("// To parse and serialize this data:")
	w.Line("//")
	w.Line(`//   const Convert = require("./file");`)
	w.Line("//")
	for _, e := range entries {
		w.Line("//   const value = Convert[%s].deserialize(json);", QuoteString(e.sourceName))
		w.Line("//   const text = Convert[%s].serialize(value);", QuoteString(e.sourceName))
	}
	w.Line("//")
	w.Line("// Entry points:")
	w.Line("//")
	for _, e := range entries {
		w.Line("//   %s / %s", e.deserializer, e.serializer)
	}
	w.Line("//")
	if opts.RuntimeTypecheck {
		w.Line("// Deserializers throw an error when the value does not match the declared")
		w.Line("// type, even when the JSON itself is well formed. Serializers never validate.")
	} else {
		w.Line("// Runtime typechecking is disabled: deserializers parse without any")
		w.Line("// structural guarantee.")
	}
	w.Blank()
}

func emitEntryPoints(w *lines.Writer, entries []entry, opts Options) {
	for _, e := range entries {
		w.Line("function %s(json) {", e.deserializer)
		w.Indented(func() {
			if opts.RuntimeTypecheck {
				w.Line("return validate(r(%s), JSON.parse(json));", QuoteString(e.typeName))
			} else {
				w.Line("return JSON.parse(json);")
			}
		})
		w.Line("}")
		w.Blank()
		w.Line("function %s(value) {", e.serializer)
		w.Indented(func() {
			w.Line("return JSON.stringify(value, null, 2);")
		})
		w.Line("}")
		w.Blank()
	}
}

func emitTypeMap(w *lines.Writer, table *descriptor.Table) {
	w.Line("const typeMap = {")
	w.Indented(func() {
		for _, name := range table.Names() {
			tok, _ := table.Declaration(name)
			obj, isObject := tok.(*descriptor.Object)
			if !isObject || len(obj.Props) == 0 {
				w.Line("%s: %s,", QuoteString(name), tokenLiteral(tok))
				continue
			}
			w.Line("%s: o({", QuoteString(name))
			w.Indented(func() {
				for _, p := range obj.Props {
					w.Line("%s: %s,", PropertyName(p.Key), tokenLiteral(p.Token))
				}
			})
			w.Line("}, %s),", tokenLiteral(obj.Additional))
		}
	})
	w.Line("};")
	w.Blank()
}

func emitExports(w *lines.Writer, entries []entry) {
	w.Line("module.exports = {")
	w.Indented(func() {
		for _, e := range entries {
			w.Line("%s: { deserialize: %s, serialize: %s },",
				QuoteString(e.sourceName), e.deserializer, e.serializer)
		}
	})
	w.Line("};")
}

// tokenLiteral renders a token in the artifact's literal notation, using the
// helper constructors defined by the runtime.
func tokenLiteral(t descriptor.Token) string {
	switch tk := t.(type) {
	case descriptor.Prim:
		return QuoteString(primLiteral(tk))
	case descriptor.Ref:
		return "r(" + QuoteString(tk.Name) + ")"
	case *descriptor.Array:
		return "a(" + tokenLiteral(tk.Item) + ")"
	case *descriptor.Map:
		return "m(" + tokenLiteral(tk.Values) + ")"
	case *descriptor.Union:
		parts := make([]string, len(tk.Members))
		for i, m := range tk.Members {
			parts[i] = tokenLiteral(m)
		}
		return "u(" + strings.Join(parts, ", ") + ")"
	case *descriptor.Enum:
		parts := make([]string, len(tk.Cases))
		for i, c := range tk.Cases {
			parts[i] = QuoteString(c)
		}
		return "e(" + strings.Join(parts, ", ") + ")"
	case *descriptor.Object:
		parts := make([]string, 0, len(tk.Props)+1)
		for _, p := range tk.Props {
			parts = append(parts, PropertyName(p.Key)+": "+tokenLiteral(p.Token))
		}
		props := "{}"
		if len(parts) > 0 {
			props = "{ " + strings.Join(parts, ", ") + " }"
		}
		return "o(" + props + ", " + tokenLiteral(tk.Additional) + ")"
	}
	return QuoteString("never")
}

func primLiteral(p descriptor.Prim) string {
	switch p.K {
	case descriptor.TokAny:
		return "any"
	case descriptor.TokNull:
		return "null"
	case descriptor.TokBool:
		return "boolean"
	case descriptor.TokInteger:
		return "integer"
	case descriptor.TokDouble:
		return "double"
	case descriptor.TokString:
		return "string"
	case descriptor.TokUndefined:
		return "undefined"
	case descriptor.TokNever:
		return "never"
	case descriptor.TokNoExtra:
		return "noExtraProps"
	}
	return "never"
}
