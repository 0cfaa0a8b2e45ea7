// Package document decodes declarative diagram files into element trees.
//
// A document names components and their props instead of constructing
// them in code. The same diagram in YAML:
//
//	kind: flowchart
//	direction: LR
//	title: Checkout
//	children:
//	  - component: Circle
//	    props: {id: start}
//	    text: Start
//	  - component: Subgraph
//	    props: {id: pay, label: Payment}
//	    children:
//	      - component: Diamond
//	        props: {id: ok, label: "Paid?"}
//	  - component: ThickArrow
//	    props: {from: start, to: ok, label: go}
//
// and in TOML:
//
//	kind = "flowchart"
//	title = "Checkout"
//
//	[[children]]
//	component = "Circle"
//	props = { id = "start" }
//	text = "Start"
//
// JSON is accepted with the same field names.
//
// Component names resolve through a [Registry]. [NewRegistry] knows every
// built-in; applications add their own composites with [Registry.Register].
// A name that is not registered still decodes: invoking it fails, so the
// extractor skips it and reports a diagnostic.
package document
