// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bytes"
	"flag"
	"log"
	"os"

	"github.com/ezrec/mipsvec/synth"
	"github.com/ezrec/mipsvec/testgen"
	"github.com/ezrec/mipsvec/translate"
)

func main() {
	var config string
	var subset int
	var extra int
	var seed uint64
	var output string
	var lang string
	var verbose bool

	opts := testgen.Defaults()

	flag.StringVar(&config, "c", "", ".star configuration file to load")
	flag.IntVar(&subset, "k", opts.Subset, "Templates per ordering")
	flag.IntVar(&extra, "n", opts.Extra, "Random registers per case")
	flag.Uint64Var(&seed, "seed", 0, "Random seed (default from the OS)")
	flag.StringVar(&output, "o", "-", "Output file")
	flag.StringVar(&lang, "lang", "", "Message language (default from the locale)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(lang) != 0 {
		err := translate.SetLanguage(lang)
		if err != nil {
			log.Fatalf("%v: %v", lang, err)
		}
	}

	set := map[string]bool{}
	flag.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	// Load configuration, then apply flags over it.
	if len(config) != 0 {
		inf, err := os.Open(config)
		if err != nil {
			log.Fatalf("%v: %v", config, err)
		}
		defer inf.Close()

		err = testgen.LoadOptions(&opts, config, inf)
		if err != nil {
			log.Fatalf("%v: %v", config, err)
		}
	}

	if set["k"] {
		opts.Subset = subset
	}
	if set["n"] {
		opts.Extra = extra
	}
	if set["seed"] {
		opts.Seed = seed
		opts.SeedSet = true
	}

	if !opts.SeedSet {
		var err error
		opts.Seed, err = synth.RandomSeed()
		if err != nil {
			log.Fatalf("%v: %v", os.Args[0], err)
		}
	}

	driver := testgen.NewDriver(opts)
	driver.Verbose = verbose

	if verbose {
		log.Printf("seed %v, %v cases\n", opts.Seed, driver.Count())
	}

	var buf bytes.Buffer
	err := driver.Generate(&buf)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	if output == "-" {
		_, err = os.Stdout.Write(buf.Bytes())
	} else {
		err = os.WriteFile(output, buf.Bytes(), 0o644)
	}
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}
}
