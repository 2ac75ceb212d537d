package schema

import (
	"io"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// LoadStarlark executes a Starlark schema. The script declares the schema
// through these builtins:
//
//	package(name)
//	field(name, size, doc="")                      -> field
//	register(name, width, fields, doc="")          -> name
//	address_map(name, entries, address_width=8, doc="")
//
// where entries is a list of (address, register) pairs. WIDTH8, WIDTH16,
// WIDTH32 and WIDTH64 are predeclared. For example:
//
//	package("devregs")
//	ctrl = register("ctrl", WIDTH8, [field("mode", 2), field("rate", 6)])
//	address_map("bus", [(0x01, ctrl)])
//
// The schema is not validated.
func LoadStarlark(r io.Reader, filename string) (file *File, err error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return
	}

	sb := &starlarkBuilder{file: &File{}}

	predeclared := starlark.StringDict{
		"package":     starlark.NewBuiltin("package", sb.pkg),
		"field":       starlark.NewBuiltin("field", sb.field),
		"register":    starlark.NewBuiltin("register", sb.register),
		"address_map": starlark.NewBuiltin("address_map", sb.addressMap),
		"WIDTH8":      starlark.MakeInt(8),
		"WIDTH16":     starlark.MakeInt(16),
		"WIDTH32":     starlark.MakeInt(32),
		"WIDTH64":     starlark.MakeInt(64),
	}

	thread := &starlark.Thread{Name: filename}
	opts := syntax.FileOptions{}
	_, err = starlark.ExecFileOptions(&opts, thread, filename, src, predeclared)
	if err != nil {
		err = &ErrAt{Where: filename, Err: err}
		return
	}

	file = sb.file
	return
}

type starlarkBuilder struct {
	file *File
}

func (sb *starlarkBuilder) pkg(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "name", &name); err != nil {
		return nil, err
	}

	sb.file.Package = name
	return starlark.None, nil
}

func (sb *starlarkBuilder) field(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name, doc string
	var size int
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "name", &name, "size", &size, "doc?", &doc); err != nil {
		return nil, err
	}
	if size < 0 {
		return nil, &ErrAt{Where: f("field %v", name), Err: ErrSchemaSyntax}
	}

	return starlark.Tuple{starlark.String(name), starlark.MakeInt(size), starlark.String(doc)}, nil
}

// asField accepts a field() result or a plain (name, size) tuple.
func asField(value starlark.Value) (field Field, err error) {
	tuple, ok := value.(starlark.Tuple)
	if !ok || len(tuple) < 2 || len(tuple) > 3 {
		err = &ErrAt{Where: f("field %v", value), Err: ErrSchemaSyntax}
		return
	}

	name, ok := starlark.AsString(tuple[0])
	if !ok {
		err = &ErrAt{Where: f("field %v", value), Err: ErrSchemaSyntax}
		return
	}
	field.Name = name

	var size uint64
	if err = starlark.AsInt(tuple[1], &size); err != nil {
		err = &ErrAt{Where: f("field %v", name), Err: err}
		return
	}
	field.Size = uint(size)

	if len(tuple) == 3 {
		field.Doc, _ = starlark.AsString(tuple[2])
	}

	return
}

func (sb *starlarkBuilder) register(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name, doc string
	var width int
	var fields *starlark.List
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "name", &name, "width", &width, "fields", &fields, "doc?", &doc); err != nil {
		return nil, err
	}
	if width < 0 {
		return nil, &ErrAt{Where: f("register %v", name), Err: ErrSchemaWidth}
	}

	reg := Register{Name: name, Width: uint(width), Doc: doc}
	for n := range fields.Len() {
		field, err := asField(fields.Index(n))
		if err != nil {
			return nil, err
		}
		reg.Fields = append(reg.Fields, field)
	}

	sb.file.Registers = append(sb.file.Registers, reg)
	return starlark.String(name), nil
}

func (sb *starlarkBuilder) addressMap(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name, doc string
	var entries *starlark.List
	width := DEFAULT_ADDRESS_WIDTH
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "name", &name, "entries", &entries, "address_width?", &width, "doc?", &doc); err != nil {
		return nil, err
	}
	if width < 0 {
		return nil, &ErrAt{Where: f("map %v", name), Err: ErrSchemaWidth}
	}

	m := Map{Name: name, AddressWidth: uint(width), Doc: doc}
	for n := range entries.Len() {
		value := entries.Index(n)
		tuple, ok := value.(starlark.Tuple)
		if !ok || len(tuple) != 2 {
			return nil, &ErrAt{Where: f("map %v entry %v", name, value), Err: ErrSchemaSyntax}
		}

		var entry Entry
		if err := starlark.AsInt(tuple[0], &entry.Address); err != nil {
			return nil, &ErrAt{Where: f("map %v entry %v", name, value), Err: err}
		}
		entry.Register, ok = starlark.AsString(tuple[1])
		if !ok {
			return nil, &ErrAt{Where: f("map %v entry %v", name, value), Err: ErrSchemaSyntax}
		}

		m.Entries = append(m.Entries, entry)
	}

	sb.file.Maps = append(sb.file.Maps, m)
	return starlark.None, nil
}
