// Package layering partitions an operation sequence into maximal layers of
// pairwise qubit-disjoint operations, preserving program order.
package layering

import (
	"github.com/qucc-project/qucc/ir"
)

// Layer is a run of operations with pairwise-disjoint qubit sets, in
// construction order. Operations of a layer could execute concurrently.
type Layer []ir.Operation

// Qubits returns the set of qubit indices touched by the layer.
func (l Layer) Qubits() map[int]bool {
	res := make(map[int]bool)
	for _, op := range l {
		for _, q := range op.Qubits {
			res[q] = true
		}
	}
	return res
}

// Builder splits an operation sequence into layers. There is a single greedy
// strategy today; the interface exists so a critical-path scheduler can
// replace it without touching pass logic.
type Builder interface {
	Split(ops []ir.Operation) []Layer
}

// NewGreedy returns the greedy single-pass builder. It scans operations in
// program order and closes the current layer whenever an operation touches a
// qubit already active in it. It never looks ahead or reorders.
func NewGreedy() Builder {
	return greedyBuilder{}
}

type greedyBuilder struct{}

func (greedyBuilder) Split(ops []ir.Operation) []Layer {
	var res []Layer
	var cur Layer
	active := make(map[int]bool)
	for _, op := range ops {
		conflict := false
		for _, q := range op.Qubits {
			if active[q] {
				conflict = true
				break
			}
		}
		if conflict {
			if len(cur) > 0 {
				res = append(res, cur)
			}
			cur = nil
			active = make(map[int]bool)
		}
		cur = append(cur, op)
		for _, q := range op.Qubits {
			active[q] = true
		}
	}
	if len(cur) > 0 {
		res = append(res, cur)
	}
	return res
}
