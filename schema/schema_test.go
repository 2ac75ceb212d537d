package schema

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/smallreg/register"
)

func devregs(addressWidth uint) *File {
	return &File{
		Package: "devregs",
		Registers: []Register{
			{Name: "ctrl", Width: 8, Doc: "device control", Fields: []Field{
				{Name: "mode", Size: 2, Doc: "operating mode"},
				{Name: "rate", Size: 3},
				{Name: "enable_irq", Size: 3},
			}},
			{Name: "status", Width: 16, Fields: []Field{
				{Name: "ready", Size: 1},
				{Name: "fault", Size: 1},
				{Name: "count", Size: 14},
			}},
		},
		Maps: []Map{
			{Name: "bus", AddressWidth: addressWidth, Entries: []Entry{
				{Address: 0x01, Register: "ctrl"},
				{Address: 0x02, Register: "status"},
			}},
		},
	}
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		path         string
		addressWidth uint
	}){
		{"testdata/regs.star", 8},
		{"testdata/regs.toml", 0},
		{"testdata/regs.yaml", 0},
	}

	for _, entry := range table {
		file, err := Load(entry.path)
		assert.NoError(err, entry.path)
		assert.Equal(devregs(entry.addressWidth), file, entry.path)
	}
}

func TestLoad_Errors(t *testing.T) {
	assert := assert.New(t)

	_, err := Load("testdata/schema.json")
	assert.ErrorIs(err, ErrSchemaFormat)

	_, err = Load("testdata/missing.star")
	assert.Error(err)

	_, err = Load("testdata/short.star")
	assert.ErrorIs(err, register.ErrLayoutWidth)
}

func TestGoName(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		goName string
	}){
		{"mode", "Mode"},
		{"enable_irq", "EnableIrq"},
		{"CTRL", "CTRL"},
		{"a__b_", "AB"},
		{"x1", "X1"},
	}

	for _, entry := range table {
		assert.Equal(entry.goName, GoName(entry.name), entry.name)
	}
}

func TestValidate(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		modify func(file *File)
		err    error
	}){
		{"valid", func(file *File) {}, nil},
		{"package", func(file *File) { file.Package = "" }, ErrSchemaPackage},
		{"package name", func(file *File) { file.Package = "dev-regs" }, ErrSchemaName},
		{"empty", func(file *File) { file.Registers = nil; file.Maps = nil }, ErrSchemaEmpty},
		{"register name", func(file *File) { file.Registers[0].Name = "1ctrl" }, ErrSchemaName},
		{"register dup", func(file *File) { file.Registers[1].Name = "Ctrl" }, ErrSchemaDuplicate},
		{"map dup", func(file *File) { file.Maps[0].Name = "status" }, ErrSchemaDuplicate},
		{"width", func(file *File) { file.Registers[0].Width = 12 }, ErrSchemaWidth},
		{"field name", func(file *File) { file.Registers[0].Fields[0].Name = "mode!" }, ErrSchemaName},
		{"field reserved", func(file *File) { file.Registers[0].Fields[0].Name = "value" }, ErrSchemaName},
		{"field dup", func(file *File) { file.Registers[0].Fields[1].Name = "Mode" }, register.ErrFieldDuplicate},
		{"field size", func(file *File) { file.Registers[0].Fields[1].Size = 0 }, register.ErrFieldSize},
		{"field sum", func(file *File) { file.Registers[0].Fields[1].Size = 4 }, register.ErrLayoutWidth},
		{"field layout", func(file *File) { file.Registers[0].Fields[0].Name = "layout" }, ErrSchemaDuplicate},
		{"field setter", func(file *File) { file.Registers[0].Fields[1].Name = "set_mode" }, ErrSchemaDuplicate},
		{"field fill", func(file *File) { file.Registers[1].Fields[0].Name = "fill_count" }, ErrSchemaDuplicate},
		{"register const", func(file *File) {
			file.Registers[1].Name = "ctrl_rate"
			file.Maps[0].Entries[1].Register = "ctrl_rate"
		}, ErrSchemaDuplicate},
		{"map alias", func(file *File) {
			file.Registers[1].Name = "bus_at0x01"
			file.Maps[0].Entries[1].Register = "bus_at0x01"
		}, ErrSchemaDuplicate},
		{"map register", func(file *File) { file.Maps[0].Entries[1].Register = "missing" }, ErrSchemaRegister},
		{"map address", func(file *File) { file.Maps[0].Entries[1].Address = 0x100 }, ErrSchemaAddress},
		{"map address dup", func(file *File) { file.Maps[0].Entries[1].Address = 0x01 }, ErrSchemaAddressDuplicate},
		{"map width", func(file *File) { file.Maps[0].AddressWidth = 7 }, ErrSchemaWidth},
		{"map wide", func(file *File) {
			file.Maps[0].AddressWidth = 16
			file.Maps[0].Entries[1].Address = 0x100
		}, nil},
	}

	for _, entry := range table {
		file := devregs(0)
		entry.modify(file)
		err := file.Validate()
		if entry.err == nil {
			assert.NoError(err, entry.name)
		} else {
			assert.ErrorIs(err, entry.err, entry.name)
		}
	}
}

func TestValidate_Where(t *testing.T) {
	assert := assert.New(t)

	file := devregs(0)
	file.Registers[1].Fields[2].Size = 13

	err := file.Validate()
	var ea *ErrAt
	assert.True(errors.As(err, &ea))
	assert.Equal("register status", ea.Where)
	assert.True(strings.Contains(err.Error(), "status"))
}

func TestIdents(t *testing.T) {
	assert := assert.New(t)

	file := devregs(16)
	assert.Equal([]string{
		"Ctrl", "CtrlField", "CtrlLayout",
		"CtrlMode", "CtrlModeShift", "CtrlModeMask",
		"CtrlRate", "CtrlRateShift", "CtrlRateMask",
		"CtrlEnableIrq", "CtrlEnableIrqShift", "CtrlEnableIrqMask",
	}, file.Registers[0].Idents())
	assert.Equal([]string{"Bus", "BusAt0x0001", "BusAt0x0002"}, file.Maps[0].Idents())
	assert.Contains(file.Registers[1].Methods(), "ClearCountBits")
	assert.Equal("BusAt0x02", devregs(0).Maps[0].Alias(0x02))
}

func TestAddressMap(t *testing.T) {
	assert := assert.New(t)

	file := devregs(8)
	m, err := file.AddressMap("bus")
	assert.NoError(err)
	assert.Equal(2, m.Len())

	entry, err := m.Lookup(0x02)
	assert.NoError(err)
	assert.Equal("status", entry.Name)
	assert.Equal(uint(16), entry.Layout.Width())
	assert.Equal(register.FieldInfo{Name: "Count", Size: 14, Shift: 0, Mask: 0x3fff}, entry.Layout.Fields()[2])

	layout, err := register.Resolve[uint16, string](m, 0x02)
	assert.NoError(err)
	r := layout.New(0)
	assert.NoError(r.Set("Count", 0x1234))
	assert.NoError(r.Fill("Ready"))
	assert.Equal(uint16(0x9234), r.Value())

	_, err = m.Lookup(0x03)
	assert.ErrorIs(err, register.ErrAddressUnknown)

	_, err = file.AddressMap("missing")
	assert.ErrorIs(err, ErrSchemaMap)
}
