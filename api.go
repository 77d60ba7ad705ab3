// Package qucc exposes the circuit optimization passes and a helper to run
// them as a pipeline. Each pass is an independent, pure transformation from
// circuit to circuit; they compose in any order.
package qucc

import (
	"fmt"

	"github.com/qucc-project/qucc/ir"
	"github.com/qucc-project/qucc/logger"
	"github.com/qucc-project/qucc/native"
	"github.com/qucc-project/qucc/redundancy"
	"github.com/qucc-project/qucc/sequency"
)

// Pass transforms a circuit into an equivalent one. Run never modifies its
// input and never changes the qubit or clbit counts.
type Pass interface {
	Name() string
	Run(c *ir.Circuit) (*ir.Circuit, error)
}

// Apply runs the passes in order and returns the final circuit.
func Apply(c *ir.Circuit, passes ...Pass) (*ir.Circuit, error) {
	log := logger.Logger()
	res := c
	for _, p := range passes {
		out, err := p.Run(res)
		if err != nil {
			return nil, fmt.Errorf("pass %s: %w", p.Name(), err)
		}
		if out.NumQubits != res.NumQubits || out.NumClbits != res.NumClbits {
			return nil, fmt.Errorf("pass %s changed register sizes", p.Name())
		}
		stats := out.GetStats()
		log.Info().
			Str("pass", p.Name()).
			Int("nbOps", stats.NbOps).
			Int("nbRotations", stats.NbRotations).
			Int("nbMultiQubit", stats.NbMultiQubit).
			Msg("pass applied")
		res = out
	}
	return res, nil
}

// DefaultPipeline returns the three passes with their default configuration:
// native gate translation, redundancy filtering, sequency truncation.
func DefaultPipeline() []Pass {
	return []Pass{
		native.NewTranslator(),
		redundancy.NewFilter(),
		sequency.NewTruncator(),
	}
}
