package ir

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	c := New(2, 1)
	c.Append(
		NewGate(H, 0),
		NewGate(CX, 0, 1),
		Operation{Name: "measure", Qubits: []int{1}, Clbits: []int{0}},
	)
	require.NoError(t, Validate(c))
}

func TestValidateQubitOutOfBound(t *testing.T) {
	c := New(2, 0)
	c.Append(NewGate(X, 2))
	err := Validate(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of bound")
}

func TestValidateNegativeQubit(t *testing.T) {
	c := New(2, 0)
	c.Append(NewGate(X, -1))
	require.Error(t, Validate(c))
}

func TestValidateClbitOutOfBound(t *testing.T) {
	c := New(1, 1)
	c.Append(Operation{Name: "measure", Qubits: []int{0}, Clbits: []int{1}})
	require.Error(t, Validate(c))
}

func TestValidateRepeatedQubit(t *testing.T) {
	c := New(2, 0)
	c.Append(NewGate(CX, 1, 1))
	err := Validate(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "repeated")
}

func TestValidateNoQubits(t *testing.T) {
	c := New(2, 0)
	c.Append(Operation{Name: "nop"})
	require.Error(t, Validate(c))
}

func TestCloneIsDeep(t *testing.T) {
	c := New(2, 0)
	c.Append(NewRotation(Rx, math.Pi/4, 0), NewGate(CX, 0, 1))

	clone := c.Clone()
	clone.Ops[0].Params[0] = 99
	clone.Ops[1].Qubits[0] = 1

	assert.Equal(t, math.Pi/4, c.Ops[0].Params[0])
	assert.Equal(t, 0, c.Ops[1].Qubits[0])
}

func TestSerializeRoundTrip(t *testing.T) {
	c := New(3, 2)
	c.Append(
		NewGate(H, 0),
		NewU3(0.1, 0.2, 0.3, 1),
		NewRxx(math.Pi/4, 0, 2),
		Operation{Name: "measure", Qubits: []int{2}, Clbits: []int{1}},
	)

	back, err := DeserializeCircuit(c.Serialize())
	require.NoError(t, err)
	assert.Equal(t, c, back)
}

func TestDeserializeRejectsInvalid(t *testing.T) {
	c := &Circuit{NumQubits: 1, Ops: []Operation{NewGate(X, 5)}}
	_, err := DeserializeCircuit(c.Serialize())
	require.Error(t, err)
}

func TestGetStats(t *testing.T) {
	c := New(2, 0)
	c.Append(
		NewRotation(Rx, 0.5, 0),
		NewRotation(Rz, 0.5, 1),
		NewGate(CX, 0, 1),
		NewGate(H, 0),
	)
	stats := c.GetStats()
	assert.Equal(t, 4, stats.NbOps)
	assert.Equal(t, 2, stats.NbRotations)
	assert.Equal(t, 1, stats.NbMultiQubit)
	assert.Equal(t, 1, stats.NbByName[CX])
}

func TestOperationHelpers(t *testing.T) {
	rot := NewRotation(Ry, 1.5, 0)
	assert.True(t, rot.IsRotation())
	assert.Equal(t, 1.5, rot.Angle())

	assert.False(t, NewGate(H, 0).IsRotation())
	assert.False(t, NewRxx(1.0, 0, 1).IsRotation())
	assert.Equal(t, 0.0, NewGate(H, 0).Angle())
}
