package catalog

import (
	"bytes"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/gategrid/pkg/errors"
)

// ParseYAML decodes a YAML catalog document:
//
//	include_defaults: true
//	operators:
//	  - id: RX
//	    symbol: Rx
//	  - id: PAIR
//	    height: 2
//	    composite: true
//	    components:
//	      - {operator: H, x: 0, y: 0}
//	      - {operator: CNOT, x: 1, y: 0, h: 2}
func ParseYAML(data []byte) (*Catalog, error) {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "decode catalog")
	}
	return f.build()
}
