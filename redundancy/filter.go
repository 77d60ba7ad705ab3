// Package redundancy implements a hierarchical filter that drops low
// contribution operations from a circuit, layer by layer, while preserving
// the qubit connectivity of each layer.
package redundancy

import (
	"math"
	"sort"

	"github.com/qucc-project/qucc/ir"
	"github.com/qucc-project/qucc/layering"
	"github.com/qucc-project/qucc/utils"
)

type Filter struct {
	threshold float64
	// accepted for a deeper recursive hierarchy which is not implemented;
	// the value does not influence filtering
	depth   int
	builder layering.Builder
}

type Option func(*Filter)

// WithThreshold sets the minimum contribution score an operation must exceed
// to be kept on its own merit.
func WithThreshold(threshold float64) Option {
	return func(f *Filter) {
		f.threshold = threshold
	}
}

// WithHierarchyDepth sets the maximum depth of hierarchical analysis.
func WithHierarchyDepth(depth int) Option {
	return func(f *Filter) {
		f.depth = depth
	}
}

// WithBuilder replaces the layer building strategy.
func WithBuilder(b layering.Builder) Option {
	return func(f *Filter) {
		f.builder = b
	}
}

func NewFilter(opts ...Option) *Filter {
	f := &Filter{
		threshold: 0.01,
		depth:     3,
		builder:   layering.NewGreedy(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Filter) Name() string {
	return "redundancy"
}

// Run filters the circuit and returns the result as a new circuit. Within a
// layer, surviving operations are emitted in score order; since layer members
// are qubit-disjoint this does not change the circuit's meaning.
func (f *Filter) Run(c *ir.Circuit) (*ir.Circuit, error) {
	if err := ir.Validate(c); err != nil {
		return nil, err
	}
	res := ir.New(c.NumQubits, c.NumClbits)
	for _, layer := range f.builder.Split(c.Ops) {
		res.Ops = append(res.Ops, f.filterLayer(layer, c.NumQubits)...)
	}
	return res, nil
}

func (f *Filter) filterLayer(layer layering.Layer, numQubits int) layering.Layer {
	if len(layer) <= 1 {
		res := make(layering.Layer, len(layer))
		for i, op := range layer {
			res[i] = op.Clone()
		}
		return res
	}

	scores := make([]float64, len(layer))
	for i := range layer {
		scores[i] = contribution(layer, i)
	}
	order := make([]int, len(layer))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})

	// connectivity of the operations accepted so far, as union-find over
	// qubit indices local to this layer
	uf := utils.NewUnionFind(numQubits)
	seen := make([]bool, numQubits)

	var kept layering.Layer
	accept := func(op ir.Operation) {
		kept = append(kept, op.Clone())
		for _, q := range op.Qubits {
			uf.Union(op.Qubits[0], q)
		}
		for _, q := range op.Qubits {
			seen[q] = true
		}
	}

	for _, idx := range order {
		op := layer[idx]
		if scores[idx] > f.threshold {
			accept(op)
			continue
		}
		// a sub-threshold operation survives only if it is the unique
		// bridge between two existing connectivity components
		if countComponents(op, uf, seen) >= 2 {
			accept(op)
		}
	}
	return kept
}

// countComponents returns the number of distinct accepted-connectivity
// components the operation's qubit set touches.
func countComponents(op ir.Operation, uf *utils.UnionFind, seen []bool) int {
	roots := make(map[int]bool)
	for _, q := range op.Qubits {
		if seen[q] {
			roots[uf.Find(q)] = true
		}
	}
	return len(roots)
}

// contribution scores the importance of layer[idx] within its layer.
func contribution(layer layering.Layer, idx int) float64 {
	op := layer[idx]
	var base float64
	switch op.Name {
	case ir.H, ir.X, ir.Y, ir.Z:
		base = 1.0
	case ir.Rx, ir.Ry, ir.Rz:
		// parametric gates contribute by angle magnitude
		if len(op.Params) > 0 {
			base = math.Min(math.Abs(op.Params[0])/math.Pi, 1.0)
		} else {
			base = 0.5
		}
	case ir.CX, ir.CZ, ir.Swap:
		// two-qubit gates are more important
		base = 1.5
	default:
		base = 0.8
	}

	// same-name operations on the same qubit set dilute each other
	dups := 0
	for i := range layer {
		if i != idx && layer[i].Name == op.Name && sameQubitSet(layer[i].Qubits, op.Qubits) {
			dups++
		}
	}
	if dups > 0 {
		base /= float64(dups + 1)
	}
	return base
}

func sameQubitSet(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for _, q := range a {
		found := false
		for _, p := range b {
			if p == q {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
