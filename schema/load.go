package schema

import (
	"io"
	"os"
	"path/filepath"
)

// Load reads and validates a schema file. The format is chosen by the file
// extension: .star, .toml, .yaml or .yml.
func Load(path string) (file *File, err error) {
	var loader func(io.Reader, string) (*File, error)

	switch filepath.Ext(path) {
	case ".star":
		loader = LoadStarlark
	case ".toml":
		loader = LoadTOML
	case ".yaml", ".yml":
		loader = LoadYAML
	default:
		err = &ErrAt{Where: path, Err: ErrSchemaFormat}
		return
	}

	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	file, err = loader(inf, path)
	if err != nil {
		return
	}

	err = file.Validate()
	if err != nil {
		file = nil
		err = &ErrAt{Where: path, Err: err}
	}

	return
}
