package emulator

import (
	"fmt"
	"strings"
)

// MaxInputs is the widest circuit the emulator accepts; input
// combinations are represented as bits of a uint16 mask.
const MaxInputs = 16

// Emulator evaluates a gate tree over a fixed number of external
// inputs.
type Emulator struct {
	inputs int
	root   Component
}

// New creates an emulator for a circuit with the given input count.
// It fails when inputs exceeds MaxInputs or is negative.
func New(inputs int, root Component) (*Emulator, error) {
	if inputs < 0 || inputs > MaxInputs {
		return nil, fmt.Errorf("unsupported input count %d (maximum is %d)", inputs, MaxInputs)
	}
	return &Emulator{inputs: inputs, root: root}, nil
}

// Inputs returns the emulator's input count.
func (e *Emulator) Inputs() int { return e.inputs }

// Emulate computes the circuit's output for one input combination.
// Input i reads bit i of the mask; bits at or above the input count
// are ignored by well-formed trees.
func (e *Emulator) Emulate(mask uint16) bool {
	return e.root.Eval(mask)
}

// EmulateAll computes the full truth table, one row per input
// combination in ascending mask order.
func (e *Emulator) EmulateAll() *Emulation {
	rows := make([]bool, 1<<e.inputs)
	for mask := range rows {
		rows[mask] = e.root.Eval(uint16(mask))
	}
	return &Emulation{inputs: e.inputs, rows: rows}
}

// Emulation is the result of emulating every input combination.
type Emulation struct {
	inputs int
	rows   []bool
}

// Rows returns the output per input mask, indexed by mask.
func (em *Emulation) Rows() []bool { return em.rows }

// String renders the truth table. One column per input, lowest index
// first, then the output; masks count upward so the .0 column flips
// fastest.
func (em *Emulation) String() string {
	var sb strings.Builder
	for i := 0; i < em.inputs; i++ {
		fmt.Fprintf(&sb, ".%d ", i)
	}
	sb.WriteString("| out")
	for mask, out := range em.rows {
		sb.WriteByte('\n')
		for i := 0; i < em.inputs; i++ {
			width := len(fmt.Sprintf(".%d", i))
			fmt.Fprintf(&sb, "%*d ", width, mask>>i&1)
		}
		sb.WriteString("|   ")
		if out {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
