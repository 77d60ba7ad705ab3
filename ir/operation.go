package ir

// Gate names understood by the passes. Anything outside this vocabulary is
// carried through circuits untouched.
const (
	Rx   = "rx"
	Ry   = "ry"
	Rz   = "rz"
	Rxx  = "rxx"
	H    = "h"
	X    = "x"
	Y    = "y"
	Z    = "z"
	S    = "s"
	T    = "t"
	U3   = "u3"
	CX   = "cx"
	CZ   = "cz"
	Swap = "swap"
)

// Operation is a single gate application. It is immutable by convention:
// passes build new operations rather than mutating existing ones.
type Operation struct {
	Name string
	// rotation angles in radians, empty for non-parametric gates
	Params []float64
	// qubit order matters, the first qubit is the control of two-qubit gates
	Qubits []int
	Clbits []int
}

// NewGate returns a non-parametric operation on the given qubits.
func NewGate(name string, qubits ...int) Operation {
	return Operation{
		Name:   name,
		Qubits: qubits,
	}
}

// NewRotation returns a single-axis rotation on one qubit.
func NewRotation(name string, theta float64, qubit int) Operation {
	return Operation{
		Name:   name,
		Params: []float64{theta},
		Qubits: []int{qubit},
	}
}

// NewRxx returns the fixed entangling gate with the given angle on (control, target).
func NewRxx(theta float64, control int, target int) Operation {
	return Operation{
		Name:   Rxx,
		Params: []float64{theta},
		Qubits: []int{control, target},
	}
}

// NewU3 returns the generic single-qubit unitary U3(theta, phi, lambda).
func NewU3(theta, phi, lambda float64, qubit int) Operation {
	return Operation{
		Name:   U3,
		Params: []float64{theta, phi, lambda},
		Qubits: []int{qubit},
	}
}

func (op Operation) Clone() Operation {
	res := Operation{Name: op.Name}
	if op.Params != nil {
		res.Params = append([]float64{}, op.Params...)
	}
	if op.Qubits != nil {
		res.Qubits = append([]int{}, op.Qubits...)
	}
	if op.Clbits != nil {
		res.Clbits = append([]int{}, op.Clbits...)
	}
	return res
}

// IsRotation reports whether op is a parameterized single-qubit rotation
// around one of the three axes.
func (op Operation) IsRotation() bool {
	return (op.Name == Rx || op.Name == Ry || op.Name == Rz) && len(op.Qubits) == 1
}

// Angle returns the first parameter, or 0 if the operation has none.
func (op Operation) Angle() float64 {
	if len(op.Params) == 0 {
		return 0
	}
	return op.Params[0]
}
