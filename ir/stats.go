package ir

type Stats struct {
	// total number of operations
	NbOps int
	// number of single-qubit rotations (rx/ry/rz)
	NbRotations int
	// number of operations touching two or more qubits
	NbMultiQubit int
	// operation count per gate name
	NbByName map[string]int
}

func (c *Circuit) GetStats() Stats {
	r := Stats{
		NbOps:    len(c.Ops),
		NbByName: make(map[string]int),
	}
	for _, op := range c.Ops {
		r.NbByName[op.Name]++
		if op.IsRotation() {
			r.NbRotations++
		}
		if len(op.Qubits) >= 2 {
			r.NbMultiQubit++
		}
	}
	return r
}
