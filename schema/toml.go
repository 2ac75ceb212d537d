package schema

import (
	"io"

	"github.com/BurntSushi/toml"
)

// LoadTOML decodes a TOML schema:
//
//	package = "devregs"
//
//	[[register]]
//	name = "ctrl"
//	width = 8
//	field = [{ name = "mode", size = 2 }, { name = "rate", size = 6 }]
//
//	[[map]]
//	name = "bus"
//	entry = [{ address = 0x01, register = "ctrl" }]
//
// The schema is not validated.
func LoadTOML(r io.Reader, filename string) (file *File, err error) {
	file = &File{}
	md, err := toml.NewDecoder(r).Decode(file)
	if err != nil {
		file = nil
		err = &ErrAt{Where: filename, Err: err}
		return
	}

	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		file = nil
		err = &ErrAt{Where: f("%v: %v", filename, undecoded[0].String()), Err: ErrSchemaKey}
	}

	return
}
