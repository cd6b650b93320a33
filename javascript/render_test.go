package javascript_test

import (
	"bytes"
	"strings"
	"testing"

	typewright "github.com/typewright/typewright"
	"github.com/typewright/typewright/javascript"
)

func pointGraph() *typewright.Graph {
	g := typewright.NewGraph()
	point := g.AddObject("Point", []typewright.Property{
		{SourceKey: "x", Type: typewright.Integer},
		{SourceKey: "y", Type: typewright.Integer},
	}, nil)
	color := g.AddEnum("dark-red", []string{"Red", "Green", "Blue"})
	_ = g.AddTopLevel("Point", point)
	_ = g.AddTopLevel("dark-red", color)
	return g
}

func render(t *testing.T, g *typewright.Graph, opts javascript.Options) string {
	t.Helper()
	src, err := javascript.Render(g, opts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(src)
}

func TestRender_SectionOrder(t *testing.T) {
	src := render(t, pointGraph(), javascript.DefaultOptions())

	sections := []string{
		"// To parse and serialize this data:",
		"function toPoint(json) {",
		"function pointToJson(value) {",
		"function toDarkRed(json) {",
		"function darkRedToJson(value) {",
		"function validate(typ, val",
		"const typeMap = {",
		"module.exports = {",
	}
	last := -1
	for _, s := range sections {
		idx := strings.Index(src, s)
		if idx < 0 {
			t.Fatalf("artifact missing section %q:\n%s", s, src)
		}
		if idx < last {
			t.Fatalf("section %q out of order", s)
		}
		last = idx
	}
}

func TestRender_TypeMapAndExports(t *testing.T) {
	src := render(t, pointGraph(), javascript.DefaultOptions())

	for _, want := range []string{
		`"Point": o({`,
		`x: "integer",`,
		`y: "integer",`,
		`}, "noExtraProps"),`,
		`"DarkRed": e("Red", "Green", "Blue"),`,
		`return validate(r("Point"), JSON.parse(json));`,
		`"Point": { deserialize: toPoint, serialize: pointToJson },`,
		`"dark-red": { deserialize: toDarkRed, serialize: darkRedToJson },`,
	} {
		if !strings.Contains(src, want) {
			t.Errorf("artifact missing %q:\n%s", want, src)
		}
	}
	// The export manifest is keyed by the original source name, not the
	// legalized identifier.
	if strings.Contains(src, `"DarkRed": { deserialize`) {
		t.Errorf("export manifest used the legalized name instead of the source name")
	}
}

func TestRender_QuotedPropertyKeys(t *testing.T) {
	g := typewright.NewGraph()
	id := g.AddObject("Thing", []typewright.Property{
		{SourceKey: "plain", Type: typewright.String},
		{SourceKey: "needs space", Type: typewright.String},
	}, nil)
	_ = g.AddTopLevel("Thing", id)
	src := render(t, g, javascript.DefaultOptions())

	if !strings.Contains(src, "plain: \"string\",") {
		t.Errorf("bare-safe key was not emitted bare:\n%s", src)
	}
	if !strings.Contains(src, `"needs space": "string",`) {
		t.Errorf("unsafe key was not quoted:\n%s", src)
	}
}

func TestRender_RuntimeTypecheckDisabled(t *testing.T) {
	src := render(t, pointGraph(), javascript.Options{RuntimeTypecheck: false})

	if strings.Contains(src, "function validate") || strings.Contains(src, "typeMap") {
		t.Fatalf("validator emitted despite disabled typecheck:\n%s", src)
	}
	if !strings.Contains(src, "return JSON.parse(json);") {
		t.Fatalf("expected pass-through deserializer:\n%s", src)
	}
	if !strings.Contains(src, "module.exports = {") {
		t.Fatalf("export manifest missing:\n%s", src)
	}
}

// Distinct type names can camel-case to the same serializer name; the
// colliding entry point gets a numeric suffix instead of shadowing.
func TestRender_EntryPointNameCollision(t *testing.T) {
	g := typewright.NewGraph()
	upper := g.AddEnum("AB", []string{"Red"})
	mixed := g.AddEnum("Ab", []string{"Blue"})
	_ = g.AddTopLevel("AB", upper)
	_ = g.AddTopLevel("Ab", mixed)
	src := render(t, g, javascript.DefaultOptions())

	for _, want := range []string{
		"function abToJson(value) {",
		"function abToJson2(value) {",
		`"AB": { deserialize: toAB, serialize: abToJson },`,
		`"Ab": { deserialize: toAb, serialize: abToJson2 },`,
	} {
		if !strings.Contains(src, want) {
			t.Errorf("artifact missing %q:\n%s", want, src)
		}
	}
}

func TestRender_ByteIdenticalAcrossRuns(t *testing.T) {
	first, err := javascript.Render(pointGraph(), javascript.DefaultOptions())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	second, err := javascript.Render(pointGraph(), javascript.DefaultOptions())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("two runs produced different artifacts")
	}
}

func TestRender_OptionalAndReferenceTokens(t *testing.T) {
	g := typewright.NewGraph()
	color := g.AddEnum("Color", []string{"Red"})
	id := g.AddObject("Shape", []typewright.Property{
		{SourceKey: "fill", Type: typewright.Ref{Target: color}, Optional: true},
		{SourceKey: "points", Type: &typewright.Array{Item: typewright.Double}},
		{SourceKey: "meta", Type: &typewright.Map{Values: typewright.Any}},
	}, nil)
	_ = g.AddTopLevel("Shape", id)
	src := render(t, g, javascript.DefaultOptions())

	for _, want := range []string{
		`fill: u("undefined", r("Color")),`,
		`points: a("double"),`,
		`meta: m("any"),`,
	} {
		if !strings.Contains(src, want) {
			t.Errorf("artifact missing %q:\n%s", want, src)
		}
	}
}
