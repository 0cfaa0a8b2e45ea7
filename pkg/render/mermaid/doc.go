// Package mermaid encodes graph models as mermaid flowchart text.
//
// The encoding is a pure function of the model. A rendered diagram is,
// in order: the header line, an optional "%% title" comment, one line per
// node, one line per edge, then one block per subgraph:
//
//	flowchart LR
//	%% title Checkout
//	cart[Cart]
//	pay{Pay?}
//	cart --> pay
//	subgraph retry
//	  title Retry
//	  again((Again))
//	end
//
// Node shapes map to bracket pairs and edge styles to arrow tokens; see
// [Node] and [Edge]. Nested subgraph blocks are indented two spaces per
// level.
package mermaid
