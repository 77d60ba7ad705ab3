// Package ir defines the circuit intermediate representation shared by all
// optimization passes.
package ir

import (
	"fmt"
	"strconv"
	"strings"
)

type Circuit struct {
	// number of qubits and classical bits declared by the host;
	// a pass never changes these
	NumQubits int
	NumClbits int
	// operations in program order, the sole source of truth for dependencies
	Ops []Operation
}

// New returns an empty circuit with the given register sizes.
func New(numQubits, numClbits int) *Circuit {
	return &Circuit{
		NumQubits: numQubits,
		NumClbits: numClbits,
	}
}

// Append adds operations at the end of the circuit, in order.
func (c *Circuit) Append(ops ...Operation) {
	c.Ops = append(c.Ops, ops...)
}

// Clone returns a deep copy. Passes transform clones and never touch their
// input circuit.
func (c *Circuit) Clone() *Circuit {
	res := &Circuit{
		NumQubits: c.NumQubits,
		NumClbits: c.NumClbits,
		Ops:       make([]Operation, len(c.Ops)),
	}
	for i, op := range c.Ops {
		res.Ops[i] = op.Clone()
	}
	return res
}

func checkOp(op Operation, numQubits int, numClbits int) error {
	if len(op.Qubits) == 0 {
		return fmt.Errorf("operation %q has no qubits", op.Name)
	}
	for _, q := range op.Qubits {
		if q < 0 || q >= numQubits {
			return fmt.Errorf("qubit %d is out of bound", q)
		}
	}
	for i, q := range op.Qubits {
		for j := 0; j < i; j++ {
			if op.Qubits[j] == q {
				return fmt.Errorf("qubit %d is repeated", q)
			}
		}
	}
	for _, b := range op.Clbits {
		if b < 0 || b >= numClbits {
			return fmt.Errorf("clbit %d is out of bound", b)
		}
	}
	return nil
}

// Validate checks if the circuit is valid. Index errors are reported here and
// never clamped; every pass validates its input before transforming it.
func Validate(c *Circuit) error {
	if c.NumQubits < 0 {
		return fmt.Errorf("negative qubit count %d", c.NumQubits)
	}
	if c.NumClbits < 0 {
		return fmt.Errorf("negative clbit count %d", c.NumClbits)
	}
	for i, op := range c.Ops {
		if err := checkOp(op, c.NumQubits, c.NumClbits); err != nil {
			return fmt.Errorf("operation %d: %v", i, err)
		}
	}
	return nil
}

func (op Operation) String() string {
	var sb strings.Builder
	sb.WriteString(op.Name)
	if len(op.Params) > 0 {
		s := make([]string, len(op.Params))
		for i, p := range op.Params {
			s[i] = strconv.FormatFloat(p, 'g', -1, 64)
		}
		sb.WriteString("(" + strings.Join(s, ",") + ")")
	}
	s := make([]string, len(op.Qubits))
	for i, q := range op.Qubits {
		s[i] = "q" + strconv.Itoa(q)
	}
	sb.WriteString(" " + strings.Join(s, ","))
	for _, b := range op.Clbits {
		sb.WriteString(" c" + strconv.Itoa(b))
	}
	return sb.String()
}

func (c *Circuit) Print() {
	fmt.Printf("Circuit nbQubits=%d nbClbits=%d nbOps=%d =================\n",
		c.NumQubits, c.NumClbits, len(c.Ops))
	for i, op := range c.Ops {
		fmt.Printf("%d: %s\n", i, op.String())
	}
}
