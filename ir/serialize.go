package ir

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

// Serialize encodes the circuit so a host can persist or hand it between
// processes. The encoding is self-contained; no registry lookups are needed
// on the way back in.
func (c *Circuit) Serialize() []byte {
	buf := new(bytes.Buffer)
	encoder := gob.NewEncoder(buf)
	err := encoder.Encode(c)
	if err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// DeserializeCircuit decodes a circuit produced by Serialize and validates it.
func DeserializeCircuit(data []byte) (*Circuit, error) {
	buf := bytes.NewBuffer(data)
	decoder := gob.NewDecoder(buf)
	c := &Circuit{}
	if err := decoder.Decode(c); err != nil {
		return nil, fmt.Errorf("decoding circuit: %v", err)
	}
	if err := Validate(c); err != nil {
		return nil, err
	}
	return c, nil
}
