package native

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qucc-project/qucc/ir"
	"github.com/qucc-project/qucc/logger"
)

func init() {
	logger.Disable()
}

func TestTranslateRewriteTable(t *testing.T) {
	tests := []struct {
		name  string
		in    ir.Operation
		want  []string
		qubit int
	}{
		{"hadamard", ir.NewGate(ir.H, 0), []string{ir.Ry, ir.Rx}, 0},
		{"pauli x", ir.NewGate(ir.X, 0), []string{ir.Rx}, 0},
		{"pauli y", ir.NewGate(ir.Y, 0), []string{ir.Ry}, 0},
		{"pauli z", ir.NewGate(ir.Z, 0), []string{ir.Rz}, 0},
		{"native rx", ir.NewRotation(ir.Rx, 0.3, 1), []string{ir.Rx}, 1},
		{"unknown", ir.NewGate(ir.S, 1), []string{ir.S}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ir.New(2, 0)
			c.Append(tt.in)
			out, err := Translate(c)
			require.NoError(t, err)
			require.Len(t, out.Ops, len(tt.want))
			for i, name := range tt.want {
				assert.Equal(t, name, out.Ops[i].Name)
				assert.Equal(t, []int{tt.qubit}, out.Ops[i].Qubits)
			}
		})
	}
}

func TestTranslateHadamardAngles(t *testing.T) {
	c := ir.New(1, 0)
	c.Append(ir.NewGate(ir.H, 0))
	out, err := Translate(c)
	require.NoError(t, err)
	require.Len(t, out.Ops, 2)
	assert.Equal(t, math.Pi/2, out.Ops[0].Angle())
	assert.Equal(t, math.Pi, out.Ops[1].Angle())
}

func TestTranslateCNOT(t *testing.T) {
	// h(q0), cx(q0,q1) becomes ry, rx on q0 plus the cx decomposition
	c := ir.New(2, 0)
	c.Append(ir.NewGate(ir.H, 0), ir.NewGate(ir.CX, 0, 1))

	out, err := Translate(c)
	require.NoError(t, err)
	require.Len(t, out.Ops, 5)

	assert.Equal(t, ir.NewRotation(ir.Ry, math.Pi/2, 0), out.Ops[0])
	assert.Equal(t, ir.NewRotation(ir.Rx, math.Pi, 0), out.Ops[1])
	assert.Equal(t, ir.NewRotation(ir.Rx, -math.Pi/2, 0), out.Ops[2])
	assert.Equal(t, ir.NewRotation(ir.Rx, -math.Pi/2, 1), out.Ops[3])
	assert.Equal(t, ir.NewRxx(math.Pi/4, 0, 1), out.Ops[4])
}

func TestFuseSameAxisRun(t *testing.T) {
	c := ir.New(1, 0)
	c.Append(
		ir.NewRotation(ir.Rx, math.Pi/4, 0),
		ir.NewRotation(ir.Rx, math.Pi/8, 0),
	)
	out, err := FuseRotations(c)
	require.NoError(t, err)
	require.Len(t, out.Ops, 1)
	assert.Equal(t, ir.Rx, out.Ops[0].Name)
	assert.InDelta(t, 3*math.Pi/8, out.Ops[0].Angle(), 1e-12)
}

func TestFuseEmitsAxesInOrder(t *testing.T) {
	c := ir.New(1, 0)
	c.Append(
		ir.NewRotation(ir.Rz, 0.3, 0),
		ir.NewRotation(ir.Ry, 0.2, 0),
		ir.NewRotation(ir.Rx, 0.1, 0),
	)
	out, err := FuseRotations(c)
	require.NoError(t, err)
	require.Len(t, out.Ops, 3)
	assert.Equal(t, ir.Rx, out.Ops[0].Name)
	assert.Equal(t, ir.Ry, out.Ops[1].Name)
	assert.Equal(t, ir.Rz, out.Ops[2].Name)
}

func TestFuseDropsNearZero(t *testing.T) {
	c := ir.New(1, 0)
	c.Append(
		ir.NewRotation(ir.Rx, 0.7, 0),
		ir.NewRotation(ir.Rx, -0.7, 0),
		ir.NewRotation(ir.Ry, 1e-12, 0),
	)
	out, err := FuseRotations(c)
	require.NoError(t, err)
	assert.Empty(t, out.Ops)
}

func TestFuseFlushesAtBarrier(t *testing.T) {
	c := ir.New(2, 0)
	c.Append(
		ir.NewRotation(ir.Rx, 0.5, 0),
		ir.NewRxx(math.Pi/4, 0, 1),
		ir.NewRotation(ir.Rx, 0.5, 0),
	)
	out, err := FuseRotations(c)
	require.NoError(t, err)
	require.Len(t, out.Ops, 3)
	assert.Equal(t, ir.Rx, out.Ops[0].Name)
	assert.Equal(t, ir.Rxx, out.Ops[1].Name)
	assert.Equal(t, ir.Rx, out.Ops[2].Name)
}

func TestFuseIdempotent(t *testing.T) {
	c := ir.New(3, 0)
	c.Append(
		ir.NewRotation(ir.Rx, 0.1, 0),
		ir.NewRotation(ir.Ry, 0.2, 1),
		ir.NewRotation(ir.Rx, 0.3, 0),
		ir.NewRxx(math.Pi/4, 0, 1),
		ir.NewRotation(ir.Rz, 0.4, 2),
		ir.NewRotation(ir.Rz, 0.5, 2),
	)
	once, err := FuseRotations(c)
	require.NoError(t, err)
	twice, err := FuseRotations(once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestRunKeepsRegisterSizes(t *testing.T) {
	c := ir.New(4, 2)
	c.Append(ir.NewGate(ir.H, 0), ir.NewGate(ir.CX, 1, 3))
	out, err := NewTranslator().Run(c)
	require.NoError(t, err)
	assert.Equal(t, 4, out.NumQubits)
	assert.Equal(t, 2, out.NumClbits)
}

func TestRunDoesNotMutateInput(t *testing.T) {
	c := ir.New(1, 0)
	c.Append(ir.NewGate(ir.H, 0))
	snapshot := c.Clone()
	_, err := NewTranslator().Run(c)
	require.NoError(t, err)
	assert.Equal(t, snapshot, c)
}

func TestRunEmptyCircuit(t *testing.T) {
	c := ir.New(3, 1)
	out, err := NewTranslator().Run(c)
	require.NoError(t, err)
	assert.Equal(t, 3, out.NumQubits)
	assert.Equal(t, 1, out.NumClbits)
	assert.Empty(t, out.Ops)
}

func TestRunRejectsInvalidCircuit(t *testing.T) {
	c := ir.New(1, 0)
	c.Append(ir.NewGate(ir.X, 1))
	_, err := NewTranslator().Run(c)
	require.Error(t, err)
}

func TestDegradedFallback(t *testing.T) {
	tr := NewTranslator(UseExternal())
	assert.True(t, tr.Degraded())

	c := ir.New(1, 0)
	c.Append(ir.NewGate(ir.X, 0))
	out, err := tr.Run(c)
	require.NoError(t, err)
	require.Len(t, out.Ops, 1)
	assert.Equal(t, ir.Rx, out.Ops[0].Name)
}

type fixedOptimizer struct {
	out *ir.Circuit
}

func (f fixedOptimizer) Optimize(c *ir.Circuit) (*ir.Circuit, error) {
	return f.out, nil
}

func TestExternalDelegation(t *testing.T) {
	want := ir.New(1, 0)
	want.Append(ir.NewRotation(ir.Rz, 0.25, 0))

	tr := NewTranslator(UseExternal(), WithExternal(fixedOptimizer{out: want}))
	assert.False(t, tr.Degraded())

	c := ir.New(1, 0)
	c.Append(ir.NewGate(ir.Z, 0))
	out, err := tr.Run(c)
	require.NoError(t, err)
	assert.Equal(t, want, out)
}
