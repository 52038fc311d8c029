package commands

import (
	"fmt"
	"strings"

	"github.com/sqyyy-jar/sqyyy-bot/internal/circuit"
	"github.com/sqyyy-jar/sqyyy-bot/internal/emulator"
)

// maximum count of inputs accepted before an emulator is constructed
const maxInputs = 16

// Emulate parses and emulates a batch of circuit lines. Each line is
// labeled with its zero-based index; the first failing line aborts the
// batch and its error message is returned verbatim.
func Emulate(source string) Response {
	var response strings.Builder
	for i, statement := range strings.Split(source, "\n") {
		tokens, err := circuit.Tokenize(statement)
		if err != nil {
			return Failure(fmt.Sprintf("[%d] Parsing error", i), err.Error())
		}
		inputs, component, err := circuit.Parse(tokens)
		if err != nil {
			return Failure(fmt.Sprintf("[%d] Parsing error", i), err.Error())
		}
		if inputs > maxInputs {
			return Failure(fmt.Sprintf("[%d] Emulation error", i), "Too many inputs")
		}
		em, err := emulator.New(inputs, component)
		if err != nil {
			return Failure(fmt.Sprintf("[%d] Emulation error", i), "Could not create emulator")
		}
		fmt.Fprintf(&response, "[%d]:\n```\n%s\n```\n", i, em.EmulateAll())
	}
	return Success("Success", response.String())
}
