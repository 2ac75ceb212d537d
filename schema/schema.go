// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package schema describes register layouts and address maps in a form the
// smallreg generator can turn into Go code. Schemas are written in Starlark,
// TOML or YAML.
package schema

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ezrec/smallreg/register"
)

const (
	DEFAULT_ADDRESS_WIDTH = 8 // Address width of a map that does not set one.
)

// Field is one bitfield of a register, most significant first.
type Field struct {
	Name string `toml:"name" yaml:"name"`
	Size uint   `toml:"size" yaml:"size"`
	Doc  string `toml:"doc" yaml:"doc"`
}

// Register is a register layout.
type Register struct {
	Name   string  `toml:"name" yaml:"name"`
	Width  uint    `toml:"width" yaml:"width"`
	Doc    string  `toml:"doc" yaml:"doc"`
	Fields []Field `toml:"field" yaml:"fields"`
}

// Entry places a register at an address.
type Entry struct {
	Address  uint64 `toml:"address" yaml:"address"`
	Register string `toml:"register" yaml:"register"`
}

// Map is an address map over registers of the same file.
type Map struct {
	Name         string  `toml:"name" yaml:"name"`
	AddressWidth uint    `toml:"address_width" yaml:"address_width"`
	Doc          string  `toml:"doc" yaml:"doc"`
	Entries      []Entry `toml:"entry" yaml:"entries"`
}

// File is a complete schema.
type File struct {
	Package   string     `toml:"package" yaml:"package"`
	Registers []Register `toml:"register" yaml:"registers"`
	Maps      []Map      `toml:"map" yaml:"maps"`
}

var nameRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// Methods every generated register type carries.
var reservedFields = []string{"Value", "Register", "String"}

// GoName converts a schema name to an exported Go identifier.
//
//	enable_irq -> EnableIrq
func GoName(name string) string {
	var sb strings.Builder
	for _, part := range strings.Split(name, "_") {
		if len(part) == 0 {
			continue
		}
		sb.WriteString(strings.ToUpper(part[:1]))
		sb.WriteString(part[1:])
	}
	return sb.String()
}

// Width returns the address width of the map.
func (m *Map) Width() uint {
	if m.AddressWidth == 0 {
		return DEFAULT_ADDRESS_WIDTH
	}
	return m.AddressWidth
}

// Register finds a register by name.
func (file *File) Register(name string) (reg *Register, ok bool) {
	for n := range file.Registers {
		if file.Registers[n].Name == name {
			return &file.Registers[n], true
		}
	}
	return
}

// Validate checks the whole schema. Besides the layouts and maps themselves,
// it rejects names whose generated identifiers would collide.
func (file *File) Validate() (err error) {
	if len(file.Package) == 0 {
		return ErrSchemaPackage
	}
	if !nameRe.MatchString(file.Package) {
		return &ErrAt{Where: f("package %v", file.Package), Err: ErrSchemaName}
	}
	if len(file.Registers) == 0 {
		return ErrSchemaEmpty
	}

	// Package level identifiers of the generated file.
	idents := map[string]bool{}

	for n := range file.Registers {
		reg := &file.Registers[n]
		where := f("register %v", reg.Name)
		if !nameRe.MatchString(reg.Name) {
			return &ErrAt{Where: where, Err: ErrSchemaName}
		}
		_, err = reg.Descriptor()
		if err != nil {
			return &ErrAt{Where: where, Err: err}
		}
		err = declare(idents, where, reg.Idents())
		if err != nil {
			return
		}
		err = declare(map[string]bool{}, where, reg.Methods())
		if err != nil {
			return
		}
	}

	for n := range file.Maps {
		m := &file.Maps[n]
		where := f("map %v", m.Name)
		if !nameRe.MatchString(m.Name) {
			return &ErrAt{Where: where, Err: ErrSchemaName}
		}
		err = m.validate(file)
		if err != nil {
			return
		}
		err = declare(idents, where, m.Idents())
		if err != nil {
			return
		}
	}

	return
}

// declare adds names to seen, failing on the first one already there.
func declare(seen map[string]bool, where string, names []string) error {
	for _, name := range names {
		if seen[name] {
			return &ErrAt{Where: f("%v: %v", where, name), Err: ErrSchemaDuplicate}
		}
		seen[name] = true
	}
	return nil
}

// Idents lists the package level identifiers generated for the register.
func (reg *Register) Idents() (names []string) {
	goName := GoName(reg.Name)
	names = append(names, goName, goName+"Field", goName+"Layout")
	for _, field := range reg.Fields {
		id := goName + GoName(field.Name)
		names = append(names, id, id+"Shift", id+"Mask")
	}
	return
}

// Methods lists the methods generated for the register type.
func (reg *Register) Methods() (names []string) {
	names = append(names, "Value", "Register", "String", "SetFields", "ClearMasks")
	for _, field := range reg.Fields {
		goName := GoName(field.Name)
		names = append(names, goName, "Set"+goName, "Fill"+goName, "Clear"+goName, "Clear"+goName+"Bits")
	}
	return
}

// Alias is the name of the generated type alias for the register at address.
func (m *Map) Alias(address uint64) string {
	return fmt.Sprintf("%vAt0x%0*x", GoName(m.Name), int(m.Width()/4), address)
}

// Idents lists the package level identifiers generated for the map.
func (m *Map) Idents() (names []string) {
	names = append(names, GoName(m.Name))
	for _, entry := range m.Entries {
		names = append(names, m.Alias(entry.Address))
	}
	return
}

// Descriptor validates the register and returns its layout. Field ids of
// the layout are the Go names of the fields.
func (reg *Register) Descriptor() (desc register.Descriptor, err error) {
	fields := make([]register.Bitfield[string], len(reg.Fields))
	for n, field := range reg.Fields {
		if !nameRe.MatchString(field.Name) {
			err = &ErrAt{Where: f("field %v", field.Name), Err: ErrSchemaName}
			return
		}
		goName := GoName(field.Name)
		for _, reserved := range reservedFields {
			if goName == reserved {
				err = &ErrAt{Where: f("field %v", field.Name), Err: ErrSchemaName}
				return
			}
		}
		fields[n] = register.Bitfield[string]{Id: goName, Size: field.Size}
	}

	switch reg.Width {
	case 8:
		desc, err = describe[uint8](fields)
	case 16:
		desc, err = describe[uint16](fields)
	case 32:
		desc, err = describe[uint32](fields)
	case 64:
		desc, err = describe[uint64](fields)
	default:
		err = ErrSchemaWidth
	}

	return
}

func describe[T register.Unsigned](fields []register.Bitfield[string]) (register.Descriptor, error) {
	layout, err := register.NewLayout[T](fields...)
	if err != nil {
		return nil, err
	}
	return layout, nil
}

func (m *Map) validate(file *File) (err error) {
	width := m.Width()
	switch width {
	case 8, 16, 32, 64:
	default:
		return &ErrAt{Where: f("map %v", m.Name), Err: ErrSchemaWidth}
	}

	seen := map[uint64]bool{}
	for _, entry := range m.Entries {
		where := f("map %v address %#x", m.Name, entry.Address)
		if _, ok := file.Register(entry.Register); !ok {
			return &ErrAt{Where: where, Err: ErrSchemaRegister}
		}
		if width < 64 && entry.Address>>width != 0 {
			return &ErrAt{Where: where, Err: ErrSchemaAddress}
		}
		if seen[entry.Address] {
			return &ErrAt{Where: where, Err: ErrSchemaAddressDuplicate}
		}
		seen[entry.Address] = true
	}

	return
}

// AddressMap builds a runtime map for a map of the schema. Field ids of the
// layouts are strings.
func (file *File) AddressMap(name string) (am *register.Map[uint64], err error) {
	for _, m := range file.Maps {
		if m.Name != name {
			continue
		}
		entries := make([]register.Entry[uint64], len(m.Entries))
		for n, entry := range m.Entries {
			reg, ok := file.Register(entry.Register)
			if !ok {
				err = &ErrAt{Where: f("map %v address %#x", m.Name, entry.Address), Err: ErrSchemaRegister}
				return
			}
			var desc register.Descriptor
			desc, err = reg.Descriptor()
			if err != nil {
				return
			}
			entries[n] = register.Entry[uint64]{Address: entry.Address, Name: reg.Name, Layout: desc}
		}
		am = register.NewMap(entries...)
		return
	}

	err = &ErrAt{Where: f("map %v", name), Err: ErrSchemaMap}
	return
}
