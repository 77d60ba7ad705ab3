package test

import (
	"math"
	"math/rand"

	"github.com/qucc-project/qucc/ir"
)

type randomCircuitConfig struct {
	seed      int
	numQubits randRange
	numOps    randRange
	// percent thresholds for gate class selection, in order:
	// rotation < rotPercent <= pauli < pauliPercent <= twoQubit
	rotPercent   int
	pauliPercent int
}

type randRange struct {
	l int
	r int
}

func (rr *randRange) sample(r *rand.Rand) int {
	return r.Intn(rr.r-rr.l+1) + rr.l
}

type randomCircuitGenerator struct {
	conf *randomCircuitConfig
	rand *rand.Rand
}

func newRandomCircuitGenerator(conf *randomCircuitConfig) *randomCircuitGenerator {
	return &randomCircuitGenerator{
		conf: conf,
		rand: rand.New(rand.NewSource(int64(conf.seed))),
	}
}

var (
	rotationNames = []string{ir.Rx, ir.Ry, ir.Rz}
	pauliNames    = []string{ir.H, ir.X, ir.Y, ir.Z, ir.S, ir.T}
	twoQubitNames = []string{ir.CX, ir.CZ, ir.Swap}
)

func (g *randomCircuitGenerator) circuit() *ir.Circuit {
	n := g.conf.numQubits.sample(g.rand)
	c := ir.New(n, 0)
	nbOps := g.conf.numOps.sample(g.rand)
	for i := 0; i < nbOps; i++ {
		p := g.rand.Intn(100)
		switch {
		case p < g.conf.rotPercent:
			name := rotationNames[g.rand.Intn(len(rotationNames))]
			angle := (g.rand.Float64()*2 - 1) * 2 * math.Pi
			c.Append(ir.NewRotation(name, angle, g.rand.Intn(n)))
		case p < g.conf.pauliPercent:
			name := pauliNames[g.rand.Intn(len(pauliNames))]
			c.Append(ir.NewGate(name, g.rand.Intn(n)))
		default:
			if n < 2 {
				c.Append(ir.NewGate(ir.H, 0))
				continue
			}
			name := twoQubitNames[g.rand.Intn(len(twoQubitNames))]
			a := g.rand.Intn(n)
			b := g.rand.Intn(n - 1)
			if b >= a {
				b++
			}
			c.Append(ir.NewGate(name, a, b))
		}
	}
	return c
}
