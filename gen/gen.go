// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package gen renders a register schema as Go source.
//
// Each register becomes a named unsigned type with one accessor, setter and
// clearer per field. Field positions are constants, and the generated file
// asserts that the field sizes add up to the register width, so a layout
// that does not fit fails to compile. Unknown fields and unknown map
// addresses are undefined identifiers.
package gen

import (
	"bytes"
	_ "embed"
	"fmt"
	"go/format"
	"log"
	"strings"
	"text/template"

	"github.com/ezrec/smallreg/internal"
	"github.com/ezrec/smallreg/schema"
)

//go:embed register.go.tmpl
var registerTemplate string

var tmpl = template.Must(template.New("register").Parse(registerTemplate))

// Generator renders schema files.
type Generator struct {
	Verbose bool   // If set, logs each generated register and map.
	Source  string // Schema file name, recorded in the file header.
	Package string // Overrides the package name of the schema.
}

type fieldView struct {
	Name   string // schema name
	GoName string
	Doc    string
	Size   uint
	Shift  uint
	Mask   string
	Full   bool // field spans the whole register
}

type registerView struct {
	GoName string
	Doc    string
	Width  uint
	Sizes  string
	Fields []fieldView
}

type entryView struct {
	Alias    string
	Address  string
	Name     string // schema name, as in schema.File.AddressMap
	Register string
}

type mapView struct {
	GoName  string
	Doc     string
	Width   uint
	Entries []entryView
}

type fileView struct {
	Source    string
	Package   string
	Registers []registerView
	Maps      []mapView
}

// Generate validates file and returns the formatted Go source for it.
func (g *Generator) Generate(file *schema.File) (src []byte, err error) {
	err = file.Validate()
	if err != nil {
		return
	}

	view := fileView{
		Source:  g.Source,
		Package: file.Package,
	}
	if len(g.Package) != 0 {
		view.Package = g.Package
	}
	if len(view.Source) == 0 {
		view.Source = "schema"
	}

	for _, reg := range file.Registers {
		view.Registers = append(view.Registers, g.register(reg))
	}

	for _, m := range file.Maps {
		view.Maps = append(view.Maps, g.addressMap(m))
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, &view)
	if err != nil {
		return
	}

	src, err = format.Source(buf.Bytes())
	return
}

func (g *Generator) register(reg schema.Register) (rv registerView) {
	rv = registerView{
		GoName: schema.GoName(reg.Name),
		Doc:    oneLine(reg.Doc),
		Width:  reg.Width,
	}

	sizes := make([]uint, len(reg.Fields))
	terms := make([]string, len(reg.Fields))
	for n, field := range reg.Fields {
		sizes[n] = field.Size
		terms[n] = fmt.Sprint(field.Size)
	}
	rv.Sizes = strings.Join(terms, " + ")

	for n, field := range reg.Fields {
		rv.Fields = append(rv.Fields, fieldView{
			Name:   field.Name,
			GoName: schema.GoName(field.Name),
			Doc:    oneLine(field.Doc),
			Size:   field.Size,
			Shift:  internal.Accumulate(sizes[n+1:], 0),
			Mask:   fmt.Sprintf("%#x", uint64(1)<<field.Size-1),
			Full:   field.Size == reg.Width,
		})
	}

	if g.Verbose {
		log.Printf("gen: register %v: %v bits, %v fields", rv.GoName, rv.Width, len(rv.Fields))
	}

	return
}

func (g *Generator) addressMap(m schema.Map) (mv mapView) {
	mv = mapView{
		GoName: schema.GoName(m.Name),
		Doc:    oneLine(m.Doc),
		Width:  m.Width(),
	}

	digits := int(mv.Width / 4)
	for _, entry := range m.Entries {
		mv.Entries = append(mv.Entries, entryView{
			Alias:    m.Alias(entry.Address),
			Address:  fmt.Sprintf("0x%0*x", digits, entry.Address),
			Name:     entry.Register,
			Register: schema.GoName(entry.Register),
		})
	}

	if g.Verbose {
		log.Printf("gen: map %v: %v entries", mv.GoName, len(mv.Entries))
	}

	return
}

// oneLine folds a doc string so it fits a line comment.
func oneLine(doc string) string {
	return strings.Join(strings.Fields(doc), " ")
}
