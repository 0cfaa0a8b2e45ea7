package demo

import (
	"github.com/matzehuels/ariel/pkg/components"
	"github.com/matzehuels/ariel/pkg/document"
	"github.com/matzehuels/ariel/pkg/element"
	"github.com/matzehuels/ariel/pkg/errors"
)

// Prop names read by the flow composites in addition to id and label.
const (
	PropSuccess = "successId"
	PropFailure = "failureId"
)

// =============================================================================
// Flow Composites
// =============================================================================

// State is a screen or resting state, drawn as a hexagon.
func State(id, label string) element.Composite {
	return element.Create("State", stateComponent, element.Props{components.PropID: id, components.PropLabel: label})
}

// Event is an external trigger, drawn as a circle.
func Event(id, label string) element.Composite {
	return element.Create("Event", eventComponent, element.Props{components.PropID: id, components.PropLabel: label})
}

// Outcome is a terminal result, drawn as a trapezoid.
func Outcome(id, label string) element.Composite {
	return element.Create("Outcome", outcomeComponent, element.Props{components.PropID: id, components.PropLabel: label})
}

// Try is a decision with a thick success edge and a dashed failure edge.
func Try(id, label, successID, failureID string) element.Composite {
	return element.Create("Try", tryComponent, element.Props{
		components.PropID:    id,
		components.PropLabel: label,
		PropSuccess:          successID,
		PropFailure:          failureID,
	})
}

func stateComponent(p element.Props) (element.Element, error) {
	return components.Hexagon(nodeProps(p)), nil
}

func eventComponent(p element.Props) (element.Element, error) {
	return components.Circle(nodeProps(p)), nil
}

func outcomeComponent(p element.Props) (element.Element, error) {
	return components.Trapezoid(nodeProps(p)), nil
}

func tryComponent(p element.Props) (element.Element, error) {
	id := p.String(components.PropID)
	success, failure := p.String(PropSuccess), p.String(PropFailure)
	if success == "" || failure == "" {
		return nil, errors.New(errors.ErrCodeValidation, "Try component %q requires %s and %s props", id, PropSuccess, PropFailure)
	}
	return element.Group(
		components.Diamond(nodeProps(p)),
		components.ThickArrow(components.EdgeProps{From: id, To: success, Label: "success"}),
		components.DashedArrow(components.EdgeProps{From: id, To: failure, Label: "fail"}),
	), nil
}

// nodeProps keeps id and label; the wrapped sugar validates them.
func nodeProps(p element.Props) components.NodeProps {
	return components.NodeProps{
		ID:    p.String(components.PropID),
		Label: p.String(components.PropLabel),
		Class: p.String(components.PropClass),
	}
}

// Register adds State, Event, Outcome and Try to reg so documents can use
// them by name.
func Register(reg *document.Registry) error {
	for name, c := range map[string]element.Component{
		"State":   stateComponent,
		"Event":   eventComponent,
		"Outcome": outcomeComponent,
		"Try":     tryComponent,
	} {
		if err := reg.Register(name, c); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Example Subgraphs
// =============================================================================

// LoginFlow is a login screen that either succeeds or errors.
func LoginFlow(id string) element.Composite {
	return element.Create("LoginFlow", func(element.Props) (element.Element, error) {
		return components.Subgraph(components.SubgraphProps{ID: id, Label: "Login Flow"},
			State("welcome", "welcome screen"),
			components.Arrow(components.EdgeProps{From: "welcome", To: "login-process"}),
			Try("login-process", "login with id", "success", "error"),
			State("error", "login error"),
			State("success", "login success"),
		), nil
	}, element.Props{components.PropID: id})
}

// MainCart adds an item to the cart.
func MainCart(id string) element.Composite {
	return element.Create("MainCart", func(element.Props) (element.Element, error) {
		return components.Subgraph(components.SubgraphProps{ID: id},
			Event("top1", "top 1"),
			components.Arrow(components.EdgeProps{From: "top1", To: "added"}),
			Outcome("added", "item added"),
		), nil
	}, element.Props{components.PropID: id})
}

// FullFlow joins the login and cart subgraphs with a dashed edge.
func FullFlow() element.Element {
	const loginID, cartID = "login", "cart"
	return components.Graph(components.GraphProps{Title: "full flow example"},
		LoginFlow(loginID),
		components.DashedArrow(components.EdgeProps{From: loginID, To: cartID}),
		MainCart(cartID),
	)
}
