package typewright

// Package typewright is the code-generation backend of a multi-language type
// compiler. Given an already-inferred type graph it:
//
// - Assigns legal, collision-free, idiomatically-styled identifiers to every
//   named type and property (naming/)
// - Compiles the graph into a closed descriptor vocabulary (descriptor/)
// - Emits a self-contained artifact with a runtime validator that checks
//   arbitrary untyped data against the graph, including backtracking across
//   union alternatives (javascript/)
//
// Design policy:
// - Keep the type-graph data model and graph construction in the root package;
//   put implementation detail under internal/.
// - Place reusable naming machinery under naming/, the descriptor compiler and
//   its Go-native interpreter under descriptor/, target renderers in their own
//   packages (javascript/), graph-description loading under graphio/, and the
//   CLI under cmd/typewright.
// - Generation is synchronous and deterministic: the same graph and options
//   produce byte-identical output across runs.
//
// Typical usage:
//
//	g := typewright.NewGraph()
//	point := g.AddObject("Point", []typewright.Property{
//		{SourceKey: "x", Type: typewright.Integer},
//		{SourceKey: "y", Type: typewright.Integer},
//	}, nil)
//	_ = g.AddTopLevel("Point", point)
//
//	src, err := javascript.Render(g, javascript.DefaultOptions())
//
