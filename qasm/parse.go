// Package qasm reads and writes the OpenQASM 2 subset needed to exchange
// circuits with a host toolchain: register declarations, the gate vocabulary
// of the passes, and measurements.
package qasm

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/qucc-project/qucc/ir"
)

// paramPattern matches a single parameter value: numbers, pi expressions, or
// combinations. Examples: "1.5707", "pi", "pi/2", "3*pi/4", "-pi", "3.14e-2"
const paramPattern = `-?(?:\d*\.?\d*\*?pi(?:/\d+\.?\d*)?|\d+\.?\d*(?:[eE][+\-]?\d+)?)`

var (
	qregRegex    = regexp.MustCompile(`^qreg\s+(\w+)\[(\d+)\]$`)
	cregRegex    = regexp.MustCompile(`^creg\s+(\w+)\[(\d+)\]$`)
	measureRegex = regexp.MustCompile(`^measure\s+(\w+)\[(\d+)\]\s*->\s*(\w+)\[(\d+)\]$`)
	gateRegex    = regexp.MustCompile(`^(\w+)\s*(?:\(\s*(` + paramPattern + `(?:\s*,\s*` + paramPattern + `)*)\s*\))?\s+(.+)$`)
	argRegex     = regexp.MustCompile(`^(\w+)\[(\d+)\]$`)
	piExprRegex  = regexp.MustCompile(`^(-?)(\d*\.?\d*)\s*\*?\s*pi(?:\s*/\s*(\d+\.?\d*))?$`)
)

type register struct {
	offset int
	size   int
}

// Parse converts QASM source into a circuit. Qubits of all quantum registers
// are flattened into one index space in declaration order, clbits likewise.
func Parse(src string) (*ir.Circuit, error) {
	c := ir.New(0, 0)
	qregs := make(map[string]register)
	cregs := make(map[string]register)

	for lineno, raw := range strings.Split(src, "\n") {
		line := raw
		if idx := strings.Index(line, "//"); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSuffix(strings.TrimSpace(line), ";")
		if line == "" || strings.HasPrefix(line, "OPENQASM") || strings.HasPrefix(line, "include") {
			continue
		}

		if m := qregRegex.FindStringSubmatch(line); m != nil {
			size, _ := strconv.Atoi(m[2])
			qregs[m[1]] = register{offset: c.NumQubits, size: size}
			c.NumQubits += size
			continue
		}
		if m := cregRegex.FindStringSubmatch(line); m != nil {
			size, _ := strconv.Atoi(m[2])
			cregs[m[1]] = register{offset: c.NumClbits, size: size}
			c.NumClbits += size
			continue
		}
		if m := measureRegex.FindStringSubmatch(line); m != nil {
			q, err := resolveBit(qregs, m[1], m[2])
			if err != nil {
				return nil, fmt.Errorf("line %d: %v", lineno+1, err)
			}
			b, err := resolveBit(cregs, m[3], m[4])
			if err != nil {
				return nil, fmt.Errorf("line %d: %v", lineno+1, err)
			}
			c.Append(ir.Operation{Name: "measure", Qubits: []int{q}, Clbits: []int{b}})
			continue
		}
		if m := gateRegex.FindStringSubmatch(line); m != nil {
			op, err := parseGate(qregs, m[1], m[2], m[3])
			if err != nil {
				return nil, fmt.Errorf("line %d: %v", lineno+1, err)
			}
			c.Append(op)
			continue
		}
		return nil, fmt.Errorf("line %d: cannot parse %q", lineno+1, strings.TrimSpace(raw))
	}

	if err := ir.Validate(c); err != nil {
		return nil, err
	}
	return c, nil
}

func parseGate(qregs map[string]register, name, paramStr, argStr string) (ir.Operation, error) {
	op := ir.Operation{Name: strings.ToLower(name)}
	if paramStr != "" {
		for _, p := range strings.Split(paramStr, ",") {
			v, ok := parseParamExpr(p)
			if !ok {
				return op, fmt.Errorf("bad parameter %q", strings.TrimSpace(p))
			}
			op.Params = append(op.Params, v)
		}
	}
	for _, arg := range strings.Split(argStr, ",") {
		m := argRegex.FindStringSubmatch(strings.TrimSpace(arg))
		if m == nil {
			return op, fmt.Errorf("bad qubit argument %q", strings.TrimSpace(arg))
		}
		q, err := resolveBit(qregs, m[1], m[2])
		if err != nil {
			return op, err
		}
		op.Qubits = append(op.Qubits, q)
	}
	return op, nil
}

func resolveBit(regs map[string]register, name, idxStr string) (int, error) {
	reg, ok := regs[name]
	if !ok {
		return 0, fmt.Errorf("register %q is not declared", name)
	}
	idx, _ := strconv.Atoi(idxStr)
	if idx >= reg.size {
		return 0, fmt.Errorf("index %d is out of bound for register %q", idx, name)
	}
	return reg.offset + idx, nil
}

// parseParamExpr parses a plain number or a pi expression such as "pi/2",
// "3*pi/4" or "-pi".
func parseParamExpr(s string) (float64, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return 0, false
	}
	if val, err := strconv.ParseFloat(s, 64); err == nil {
		return val, true
	}
	m := piExprRegex.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	coeff := 1.0
	if m[2] != "" {
		var err error
		coeff, err = strconv.ParseFloat(m[2], 64)
		if err != nil {
			return 0, false
		}
	}
	res := coeff * math.Pi
	if m[3] != "" {
		denom, err := strconv.ParseFloat(m[3], 64)
		if err != nil || denom == 0 {
			return 0, false
		}
		res /= denom
	}
	if m[1] == "-" {
		res = -res
	}
	return res, true
}
