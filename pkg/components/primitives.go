package components

import (
	"github.com/matzehuels/ariel/pkg/diagram"
	"github.com/matzehuels/ariel/pkg/element"
	"github.com/matzehuels/ariel/pkg/errors"
)

// Prop names read by the built-in components.
const (
	PropID        = "id"
	PropLabel     = "label"
	PropShape     = "shape"
	PropClass     = "class"
	PropStyle     = "style"
	PropFrom      = "from"
	PropTo        = "to"
	PropArrow     = "arrow"
	PropKind      = "kind"
	PropDirection = "direction"
	PropTitle     = "title"
)

func buildNode(s Sugar, p element.Props) (element.Element, error) {
	id := p.String(PropID)
	if err := errors.ValidateRequired(s.String(), PropID, id); err != nil {
		return nil, err
	}

	shape, _ := s.Fixed()
	if s.passThrough() {
		var err error
		if shape, err = diagram.ParseShape(p.String(PropShape)); err != nil {
			return nil, errors.Wrap(errors.ErrCodeValidation, err, "%s component", s)
		}
	}

	return element.NodeElement{Node: diagram.Node{
		ID:    id,
		Label: labelOf(p),
		Shape: shape,
		Class: p.String(PropClass),
		Style: p.StringMap(PropStyle),
	}}, nil
}

func buildEdge(s Sugar, p element.Props) (element.Element, error) {
	from, to := p.String(PropFrom), p.String(PropTo)
	if from == "" || to == "" {
		return nil, errors.New(errors.ErrCodeValidation, "%s component requires both from and to props", s)
	}

	_, arrow := s.Fixed()
	if s.passThrough() {
		var err error
		if arrow, err = diagram.ParseArrowStyle(p.String(PropArrow)); err != nil {
			return nil, errors.Wrap(errors.ErrCodeValidation, err, "%s component", s)
		}
	}

	return element.EdgeElement{Edge: diagram.Edge{
		From:  from,
		To:    to,
		Label: labelOf(p),
		Arrow: arrow,
		Style: p.StringMap(PropStyle),
	}}, nil
}

func buildSubgraph(s Sugar, p element.Props) (element.Element, error) {
	id := p.String(PropID)
	if err := errors.ValidateRequired(s.String(), PropID, id); err != nil {
		return nil, err
	}
	return element.SubgraphElement{
		Subgraph: diagram.Subgraph{ID: id, Label: p.String(PropLabel)},
		Children: p.Children(),
	}, nil
}

func buildGraph(s Sugar, p element.Props) (element.Element, error) {
	kind, err := diagram.ParseKind(p.String(PropKind))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeValidation, err, "%s component", s)
	}
	dir, err := diagram.ParseDirection(p.String(PropDirection))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeValidation, err, "%s component", s)
	}
	return element.GraphElement{
		Graph:    diagram.Graph{Kind: kind, Direction: dir, Title: p.String(PropTitle)},
		Children: p.Children(),
	}, nil
}

// labelOf returns the label prop, falling back to the text children.
func labelOf(p element.Props) string {
	if l := p.String(PropLabel); l != "" {
		return l
	}
	return element.TextContent(p.Children())
}
