package naming_test

import (
	"testing"

	"github.com/typewright/typewright/naming"
)

func TestAllocator_DisambiguatesCollisions(t *testing.T) {
	a := naming.NewAllocator()
	first := a.Assign("types", "dark red", naming.TypeNameStyle)
	second := a.Assign("types", "dark-red", naming.TypeNameStyle)
	third := a.Assign("types", "DarkRed", naming.TypeNameStyle)
	if first != "DarkRed" || second != "DarkRed2" || third != "DarkRed3" {
		t.Fatalf("unexpected assignment: %q, %q, %q", first, second, third)
	}
}

func TestAllocator_NamespacesAreIndependent(t *testing.T) {
	a := naming.NewAllocator()
	types := a.Assign("types", "point", naming.TypeNameStyle)
	cases := a.Assign("enum-cases:Color", "point", naming.TypeNameStyle)
	if types != "Point" || cases != "Point" {
		t.Fatalf("namespaces bled into each other: %q, %q", types, cases)
	}
}

func TestAllocator_DeterministicGivenInsertionOrder(t *testing.T) {
	run := func() []string {
		a := naming.NewAllocator()
		return []string{
			a.Assign("types", "point", naming.TypeNameStyle),
			a.Assign("types", "Point", naming.TypeNameStyle),
			a.Assign("types", "POINT", naming.TypeNameStyle),
		}
	}
	first, second := run(), run()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("run diverged at %d: %q vs %q", i, first[i], second[i])
		}
	}
}
