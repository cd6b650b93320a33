package descriptor_test

import (
	"reflect"
	"testing"

	"github.com/cockroachdb/errors"

	typewright "github.com/typewright/typewright"
	"github.com/typewright/typewright/descriptor"
	"github.com/typewright/typewright/naming"
)

// pointGraph builds the canonical two-type graph used across these tests:
// an object "Point" with required integer x, y and no additional properties,
// and an enum "Color" with cases Red, Green, Blue.
func pointGraph() *typewright.Graph {
	g := typewright.NewGraph()
	point := g.AddObject("Point", []typewright.Property{
		{SourceKey: "x", Type: typewright.Integer},
		{SourceKey: "y", Type: typewright.Integer},
	}, nil)
	color := g.AddEnum("Color", []string{"Red", "Green", "Blue"})
	_ = g.AddTopLevel("Point", point)
	_ = g.AddTopLevel("Color", color)
	return g
}

func compiled(t *testing.T, g *typewright.Graph) *descriptor.Table {
	t.Helper()
	if err := typewright.AssignNames(g, naming.NewAllocator()); err != nil {
		t.Fatalf("assign names: %v", err)
	}
	table, err := descriptor.Compile(g)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	return table
}

func TestCompile_PointDeclaration(t *testing.T) {
	table := compiled(t, pointGraph())
	if got := table.Names(); !reflect.DeepEqual(got, []string{"Point", "Color"}) {
		t.Fatalf("unexpected declaration order: %v", got)
	}
	tok, ok := table.Declaration("Point")
	if !ok {
		t.Fatalf("missing Point declaration")
	}
	want := &descriptor.Object{
		Props: []descriptor.Prop{
			{Key: "x", Token: descriptor.Integer},
			{Key: "y", Token: descriptor.Integer},
		},
		Additional: descriptor.NoExtraProps,
	}
	if !reflect.DeepEqual(tok, want) {
		t.Fatalf("Point compiled to %#v, want %#v", tok, want)
	}

	colorTok, _ := table.Declaration("Color")
	if !reflect.DeepEqual(colorTok, &descriptor.Enum{Cases: []string{"Red", "Green", "Blue"}}) {
		t.Fatalf("Color compiled to %#v", colorTok)
	}
}

func TestCompile_OptionalWrapsUnionWithUndefined(t *testing.T) {
	g := typewright.NewGraph()
	g.AddObject("Config", []typewright.Property{
		{SourceKey: "label", Type: typewright.String, Optional: true},
	}, nil)
	table := compiled(t, g)
	tok, _ := table.Declaration("Config")
	obj := tok.(*descriptor.Object)
	want := &descriptor.Union{Members: []descriptor.Token{descriptor.Undefined, descriptor.String}}
	if !reflect.DeepEqual(obj.Props[0].Token, want) {
		t.Fatalf("optional property compiled to %#v", obj.Props[0].Token)
	}
}

func TestCompile_ReferencesCompileToRef(t *testing.T) {
	g := typewright.NewGraph()
	node := g.Declare("tree node")
	err := g.DefineObject(node, []typewright.Property{
		{SourceKey: "children", Type: &typewright.Array{Item: typewright.Ref{Target: node}}},
		{SourceKey: "tags", Type: &typewright.Map{Values: typewright.String}},
		{SourceKey: "value", Type: &typewright.Union{Members: []typewright.Node{typewright.Null, typewright.Double}}},
	}, nil)
	if err != nil {
		t.Fatalf("define: %v", err)
	}
	table := compiled(t, g)
	tok, _ := table.Declaration("TreeNode")
	obj := tok.(*descriptor.Object)
	if !reflect.DeepEqual(obj.Props[0].Token, &descriptor.Array{Item: descriptor.Ref{Name: "TreeNode"}}) {
		t.Fatalf("self reference compiled to %#v", obj.Props[0].Token)
	}
	if !reflect.DeepEqual(obj.Props[1].Token, &descriptor.Map{Values: descriptor.String}) {
		t.Fatalf("map compiled to %#v", obj.Props[1].Token)
	}
	if !reflect.DeepEqual(obj.Props[2].Token, &descriptor.Union{Members: []descriptor.Token{descriptor.Null, descriptor.Double}}) {
		t.Fatalf("union compiled to %#v", obj.Props[2].Token)
	}
}

func TestCompile_OpenObjectAdditional(t *testing.T) {
	g := typewright.NewGraph()
	g.AddObject("Bag", nil, typewright.Any)
	table := compiled(t, g)
	tok, _ := table.Declaration("Bag")
	obj := tok.(*descriptor.Object)
	if obj.Additional != descriptor.Any {
		t.Fatalf("additional compiled to %#v", obj.Additional)
	}
}

func TestCompile_Deterministic(t *testing.T) {
	first := compiled(t, pointGraph())
	second := compiled(t, pointGraph())
	if !reflect.DeepEqual(first.Names(), second.Names()) {
		t.Fatalf("names diverged: %v vs %v", first.Names(), second.Names())
	}
	for _, name := range first.Names() {
		a, _ := first.Declaration(name)
		b, _ := second.Declaration(name)
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("declaration %q diverged: %#v vs %#v", name, a, b)
		}
	}
}

func TestCompile_FailsFastWithoutAssignedNames(t *testing.T) {
	g := pointGraph()
	_, err := descriptor.Compile(g)
	if !errors.Is(err, typewright.ErrUnnamedType) {
		t.Fatalf("expected ErrUnnamedType, got %v", err)
	}
}
