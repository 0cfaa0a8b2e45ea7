// Package extract resolves element trees into graph models.
//
// # Resolution
//
// [Extract] first resolves the root: a graph element is used directly and a
// composite is invoked until it yields one. Any other root, and any failure
// while expanding a root composite, is fatal.
//
// Children are then walked depth-first in order, with the same rules at the
// graph level and inside every subgraph:
//
//   - leaves (nil, strings, numbers) are skipped
//   - fragments are flattened in place
//   - nodes and edges are appended to the current level
//   - subgraphs are walked recursively and appended when complete
//   - composites are invoked and their output walked; a failing composite
//     is recorded as a [Diagnostic] and its subtree skipped
//   - opaque elements and nested graph elements are transparent
//
// Nodes, edges and subgraphs accumulate in separate sequences. Order within
// each kind follows encounter order; interleaving across kinds is not kept.
//
// # Diagnostics
//
// A failing component never aborts an extraction:
//
//	res, err := extract.Extract(tree, extract.WithLogger(logger))
//	if err != nil {
//	    return err // bad root or depth limit
//	}
//	for _, d := range res.Diagnostics {
//	    fmt.Println(d) // warning in Throwing at graph/Throwing: ...
//	}
//
// Panics raised by components are recovered and treated as failures.
//
// # Depth Limit
//
// Composite expansion is unbounded by default, so a self-recursive
// component exhausts the stack. [WithMaxDepth] turns runaway expansion
// into a RECURSION_LIMIT error. Built-in components expand straight to
// primitives and are not counted.
package extract
