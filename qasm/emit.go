package qasm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/qucc-project/qucc/ir"
)

// Emit writes the circuit back as QASM source with a single flat quantum
// register q and classical register c. Parameters are emitted as plain
// numbers that round-trip through Parse.
func Emit(c *ir.Circuit) string {
	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n", c.NumQubits)
	if c.NumClbits > 0 {
		fmt.Fprintf(&sb, "creg c[%d];\n", c.NumClbits)
	}
	for _, op := range c.Ops {
		if op.Name == "measure" && len(op.Qubits) == 1 && len(op.Clbits) == 1 {
			fmt.Fprintf(&sb, "measure q[%d] -> c[%d];\n", op.Qubits[0], op.Clbits[0])
			continue
		}
		sb.WriteString(op.Name)
		if len(op.Params) > 0 {
			s := make([]string, len(op.Params))
			for i, p := range op.Params {
				s[i] = strconv.FormatFloat(p, 'g', -1, 64)
			}
			sb.WriteString("(" + strings.Join(s, ",") + ")")
		}
		args := make([]string, len(op.Qubits))
		for i, q := range op.Qubits {
			args[i] = fmt.Sprintf("q[%d]", q)
		}
		sb.WriteString(" " + strings.Join(args, ",") + ";\n")
	}
	return sb.String()
}
