// Package sequency collapses per-qubit runs of single-qubit operations into a
// bounded summary. Rotation angles are accumulated into per-axis sequency
// coefficients, coefficients below a threshold are zeroed, and each run is
// re-emitted as at most three rotations.
package sequency

import (
	"math"

	"github.com/qucc-project/qucc/ir"
)

type Truncator struct {
	threshold float64
	// bounds the coefficient table; only the order-0 aggregate is computed
	// today, higher orders are reserved for a Walsh-style transform
	maxOrder int
}

type Option func(*Truncator)

// WithThreshold sets the minimum coefficient magnitude to preserve.
func WithThreshold(threshold float64) Option {
	return func(t *Truncator) {
		t.threshold = threshold
	}
}

// WithMaxOrder sets the maximum sequency order to analyze.
func WithMaxOrder(maxOrder int) Option {
	return func(t *Truncator) {
		t.maxOrder = maxOrder
	}
}

func NewTruncator(opts ...Option) *Truncator {
	t := &Truncator{
		threshold: 0.01,
		maxOrder:  3,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Truncator) Name() string {
	return "sequency"
}

// gates that fold into a qubit's run
var recognized = map[string]bool{
	ir.Rx: true, ir.Ry: true, ir.Rz: true, ir.U3: true,
	ir.H: true, ir.X: true, ir.Y: true, ir.Z: true,
	ir.S: true, ir.T: true,
}

// Run truncates each qubit's run independently and returns a new circuit.
// Multi-qubit and unrecognized operations keep their original positions.
func (t *Truncator) Run(c *ir.Circuit) (*ir.Circuit, error) {
	if err := ir.Validate(c); err != nil {
		return nil, err
	}

	// work on an indexed view so replacements land at the original
	// positions of the run they substitute; nil marks a dropped slot
	work := make([]*ir.Operation, len(c.Ops))
	for i, op := range c.Ops {
		clone := op.Clone()
		work[i] = &clone
	}

	for q := 0; q < c.NumQubits; q++ {
		var positions []int
		for i, op := range work {
			if op != nil && extractable(*op, q) {
				positions = append(positions, i)
			}
		}
		if len(positions) < 2 {
			continue
		}

		tbl := newCoeffTable(t.maxOrder)
		for _, i := range positions {
			tbl.accumulate(*work[i])
		}
		tbl.truncate(t.threshold)
		repl := tbl.rebuild(q)

		for j, i := range positions {
			if j < len(repl) {
				op := repl[j]
				work[i] = &op
			} else {
				work[i] = nil
			}
		}
	}

	res := ir.New(c.NumQubits, c.NumClbits)
	for _, op := range work {
		if op != nil {
			res.Ops = append(res.Ops, *op)
		}
	}
	return res, nil
}

func extractable(op ir.Operation, qubit int) bool {
	return len(op.Qubits) == 1 && op.Qubits[0] == qubit &&
		len(op.Clbits) == 0 && recognized[op.Name]
}

// coeffTable holds sequency coefficients indexed by (order, axis). Axis 0,1,2
// correspond to x,y,z rotations.
type coeffTable struct {
	rows [][3]float64
}

func newCoeffTable(maxOrder int) *coeffTable {
	return &coeffTable{
		rows: make([][3]float64, maxOrder+1),
	}
}

// accumulate folds one operation into the order-0 (aggregate) coefficients.
// The u3 gate follows the u3(theta,phi,lambda) = rz(phi) ry(theta) rz(lambda)
// decomposition.
// TODO: fold the h/x/y/z/s/t gates into the accumulation instead of dropping
// their unitary effect.
func (tbl *coeffTable) accumulate(op ir.Operation) {
	switch op.Name {
	case ir.Rx:
		if len(op.Params) > 0 {
			tbl.rows[0][0] += op.Params[0]
		}
	case ir.Ry:
		if len(op.Params) > 0 {
			tbl.rows[0][1] += op.Params[0]
		}
	case ir.Rz:
		if len(op.Params) > 0 {
			tbl.rows[0][2] += op.Params[0]
		}
	case ir.U3:
		if len(op.Params) >= 3 {
			tbl.rows[0][1] += op.Params[0]
			tbl.rows[0][2] += op.Params[1] + op.Params[2]
		}
	}
}

// truncate zeroes every coefficient below the threshold, across all orders.
func (tbl *coeffTable) truncate(threshold float64) {
	for i := range tbl.rows {
		for a := range tbl.rows[i] {
			if math.Abs(tbl.rows[i][a]) < threshold {
				tbl.rows[i][a] = 0
			}
		}
	}
}

var rebuildAxes = [3]string{ir.Rx, ir.Ry, ir.Rz}

// rebuild emits the canonical replacement run, one rotation per axis with a
// surviving coefficient, in x,y,z order.
func (tbl *coeffTable) rebuild(qubit int) []ir.Operation {
	var res []ir.Operation
	for a, name := range rebuildAxes {
		if tbl.rows[0][a] != 0 {
			res = append(res, ir.NewRotation(name, tbl.rows[0][a], qubit))
		}
	}
	return res
}
