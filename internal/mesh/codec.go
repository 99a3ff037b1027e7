package mesh

import (
	"encoding/json"
	"fmt"
	"io"
)

// Encode writes the mesh as an indented JSON document, the interchange
// format read by viewers.
func (d *Data) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(d)
}

// Decode reads a mesh interchange document and validates its invariants.
// Returns ErrMalformedMesh-wrapped errors for syntax and invariant failures.
func Decode(r io.Reader) (*Data, error) {
	var d Data
	dec := json.NewDecoder(r)
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMesh, err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}
