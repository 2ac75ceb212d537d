package schema

import (
	"io"

	"gopkg.in/yaml.v3"
)

// LoadYAML decodes a YAML schema:
//
//	package: devregs
//	registers:
//	  - name: ctrl
//	    width: 8
//	    fields:
//	      - {name: mode, size: 2}
//	      - {name: rate, size: 6}
//	maps:
//	  - name: bus
//	    entries:
//	      - {address: 0x01, register: ctrl}
//
// The schema is not validated.
func LoadYAML(r io.Reader, filename string) (file *File, err error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	file = &File{}
	err = dec.Decode(file)
	if err == io.EOF {
		err = ErrSchemaPackage
	}
	if err != nil {
		file = nil
		err = &ErrAt{Where: filename, Err: err}
	}

	return
}
