// Package native rewrites circuits into the native gate set of a fully
// connected trapped-ion style target: single-axis rotations rx/ry/rz plus the
// fixed rxx entangling gate. A second stage fuses runs of same-axis rotations.
package native

import (
	"math"

	"github.com/qucc-project/qucc/ir"
	"github.com/qucc-project/qucc/logger"
)

// rotations below this magnitude are treated as identity
const epsilon = 1e-10

// Optimizer is an external backend that can replace the built-in translator,
// e.g. a tket-style compiler. None is shipped; the built-in path is always
// available as a fallback.
type Optimizer interface {
	Optimize(c *ir.Circuit) (*ir.Circuit, error)
}

type Translator struct {
	useExternal bool
	external    Optimizer
	degraded    bool
}

type Option func(*Translator)

// WithExternal wires an external optimizer backend.
func WithExternal(o Optimizer) Option {
	return func(t *Translator) {
		t.external = o
	}
}

// UseExternal requests delegation to the external backend. When no backend is
// wired the translator degrades to the built-in path instead of failing.
func UseExternal() Option {
	return func(t *Translator) {
		t.useExternal = true
	}
}

func NewTranslator(opts ...Option) *Translator {
	t := &Translator{}
	for _, opt := range opts {
		opt(t)
	}
	if t.useExternal && t.external == nil {
		t.degraded = true
		log := logger.Logger()
		log.Warn().Msg("external optimizer unavailable, using built-in translator")
	}
	return t
}

// Degraded reports whether an external backend was requested but unavailable.
func (t *Translator) Degraded() bool {
	return t.degraded
}

func (t *Translator) Name() string {
	return "native"
}

// Run translates the circuit into the native gate set and fuses rotations.
// The input circuit is never modified.
func (t *Translator) Run(c *ir.Circuit) (*ir.Circuit, error) {
	if err := ir.Validate(c); err != nil {
		return nil, err
	}
	if t.useExternal && t.external != nil {
		return t.external.Optimize(c)
	}
	res := ir.New(c.NumQubits, c.NumClbits)
	res.Ops = fuseOps(rewriteOps(c.Ops), c.NumQubits)
	return res, nil
}

// Translate applies only the per-gate rewrite table, without fusion.
func Translate(c *ir.Circuit) (*ir.Circuit, error) {
	if err := ir.Validate(c); err != nil {
		return nil, err
	}
	res := ir.New(c.NumQubits, c.NumClbits)
	res.Ops = rewriteOps(c.Ops)
	return res, nil
}

// FuseRotations applies only the rotation fusion stage. It is idempotent.
func FuseRotations(c *ir.Circuit) (*ir.Circuit, error) {
	if err := ir.Validate(c); err != nil {
		return nil, err
	}
	res := ir.New(c.NumQubits, c.NumClbits)
	res.Ops = fuseOps(c.Ops, c.NumQubits)
	return res, nil
}

// rewriteOps maps each gate to its native sequence. The rewrite is purely
// per-operation; gates without a native decomposition pass through unchanged.
func rewriteOps(ops []ir.Operation) []ir.Operation {
	res := make([]ir.Operation, 0, len(ops))
	for _, op := range ops {
		switch {
		case op.Name == ir.H && len(op.Qubits) == 1:
			// h = ry(pi/2) rx(pi)
			res = append(res,
				ir.NewRotation(ir.Ry, math.Pi/2, op.Qubits[0]),
				ir.NewRotation(ir.Rx, math.Pi, op.Qubits[0]),
			)
		case op.Name == ir.X && len(op.Qubits) == 1:
			res = append(res, ir.NewRotation(ir.Rx, math.Pi, op.Qubits[0]))
		case op.Name == ir.Y && len(op.Qubits) == 1:
			res = append(res, ir.NewRotation(ir.Ry, math.Pi, op.Qubits[0]))
		case op.Name == ir.Z && len(op.Qubits) == 1:
			res = append(res, ir.NewRotation(ir.Rz, math.Pi, op.Qubits[0]))
		case op.Name == ir.CX && len(op.Qubits) == 2:
			// cx = rx(-pi/2) on both qubits, then rxx(pi/4)
			control, target := op.Qubits[0], op.Qubits[1]
			res = append(res,
				ir.NewRotation(ir.Rx, -math.Pi/2, control),
				ir.NewRotation(ir.Rx, -math.Pi/2, target),
				ir.NewRxx(math.Pi/4, control, target),
			)
		default:
			// already native, or no decomposition defined
			res = append(res, op.Clone())
		}
	}
	return res
}

// axis order of the accumulators and of emitted fused rotations
var fuseAxes = [3]string{ir.Rx, ir.Ry, ir.Rz}

// fuseOps sums pending same-axis rotations per qubit and emits at most one
// rotation per axis, in x,y,z order, whenever a non-rotation operation (or the
// end of the sequence) is reached. All accumulators flush together, so a
// two-qubit gate acts as a barrier for every qubit.
func fuseOps(ops []ir.Operation, numQubits int) []ir.Operation {
	pending := make([][3]float64, numQubits)
	touched := make([]bool, numQubits)

	res := make([]ir.Operation, 0, len(ops))
	flush := func() {
		for q := 0; q < numQubits; q++ {
			if !touched[q] {
				continue
			}
			for a, name := range fuseAxes {
				if math.Abs(pending[q][a]) > epsilon {
					res = append(res, ir.NewRotation(name, pending[q][a], q))
				}
			}
			pending[q] = [3]float64{}
			touched[q] = false
		}
	}

	for _, op := range ops {
		if op.IsRotation() {
			q := op.Qubits[0]
			for a, name := range fuseAxes {
				if op.Name == name {
					pending[q][a] += op.Angle()
				}
			}
			touched[q] = true
			continue
		}
		flush()
		res = append(res, op.Clone())
	}
	flush()
	return res
}
