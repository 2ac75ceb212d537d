// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command smallreg generates typed register code from a register schema.
//
//	//go:generate go run github.com/ezrec/smallreg/cmd/smallreg -i regs.star -o regs_gen.go
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/ezrec/smallreg/gen"
	"github.com/ezrec/smallreg/schema"
	"github.com/ezrec/smallreg/translate"
)

func main() {
	var input string
	var output string
	var pkg string
	var verbose bool
	var lang string

	flag.StringVar(&input, "i", "", "schema file (.star, .toml, .yaml)")
	flag.StringVar(&output, "o", "-", "generated Go file")
	flag.StringVar(&pkg, "p", "", "package name, overriding the schema")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.StringVar(&lang, "lang", "", "message language (BCP 47), overriding the locale")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(lang) != 0 {
		err := translate.SetLanguage(lang)
		if err != nil {
			log.Fatalf("%v: -lang %v: %v", os.Args[0], lang, err)
		}
	}

	if len(input) == 0 {
		log.Fatalf("%v: no schema given (-i)", os.Args[0])
	}

	file, err := schema.Load(input)
	if err != nil {
		log.Fatal(err)
	}

	g := &gen.Generator{
		Verbose: verbose,
		Source:  filepath.Base(input),
		Package: pkg,
	}

	src, err := g.Generate(file)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	if output == "-" {
		_, err = os.Stdout.Write(src)
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	err = os.WriteFile(output, src, 0o644)
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}

	if verbose {
		log.Printf("smallreg: wrote %v", output)
	}
}
