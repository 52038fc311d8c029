// Package emulator defines the gate tree built by the parser and the
// emulator that computes truth tables over it.
package emulator

import (
	"strconv"
	"strings"
)

// Component is the interface all gate tree nodes implement. Inputs are
// passed as a bitmask; input i reads bit i.
type Component interface {
	// Eval computes the node's output for one input combination.
	Eval(mask uint16) bool
	// String returns the source representation of the node.
	String() string
}

type inputNode struct {
	index int
}

func (n inputNode) Eval(mask uint16) bool { return mask>>n.index&1 == 1 }
func (n inputNode) String() string { return "." + strconv.Itoa(n.index) }

type notNode struct {
	child Component
}

func (n notNode) Eval(mask uint16) bool { return !n.child.Eval(mask) }
func (n notNode) String() string { return "!" + n.child.String() }

type andNode struct {
	children []Component
}

func (n andNode) Eval(mask uint16) bool {
	for _, c := range n.children {
		if !c.Eval(mask) {
			return false
		}
	}
	return true
}

func (n andNode) String() string { return renderCall("and", n.children) }

type orNode struct {
	children []Component
}

func (n orNode) Eval(mask uint16) bool {
	for _, c := range n.children {
		if c.Eval(mask) {
			return true
		}
	}
	return false
}

func (n orNode) String() string { return renderCall("or", n.children) }

// Input creates a reference to external input number index (zero-based).
func Input(index int) Component { return inputNode{index: index} }

// Not creates an inversion of c.
func Not(c Component) Component { return notNode{child: c} }

// And creates a conjunction over the given children, in order.
func And(children ...Component) Component { return andNode{children: children} }

// Or creates a disjunction over the given children, in order.
func Or(children ...Component) Component { return orNode{children: children} }

func renderCall(name string, children []Component) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('(')
	for i, c := range children {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(c.String())
	}
	sb.WriteByte(')')
	return sb.String()
}
