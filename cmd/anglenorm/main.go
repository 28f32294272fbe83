// Command anglenorm reduces angles read as CSV to canonical form.
//
// Usage:
//
//	anglenorm [-config file.yaml] [-unit rad] [-mode signed] < in.csv > out.csv
//
// Polar mode expects "azimuth" and "altitude" columns, the other modes
// expect an "angle" column.
package main

import (
	"bufio"
	"flag"
	"log"
	"os"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML configuration file. Embedded defaults are used for missing keys.")
		unit       = flag.String("unit", "", "overrides the configured unit")
		mode       = flag.String("mode", "", "overrides the configured mode: signed, unsigned or polar")
		input      = flag.String("in", "", "input CSV file. Defaults to stdin.")
	)
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("anglenorm: ")

	cfg, err := Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *unit != "" {
		if err := cfg.Unit.UnmarshalText([]byte(*unit)); err != nil {
			log.Fatal(err)
		}
	}
	if *mode != "" {
		cfg.Mode = Mode(*mode)
		if err := cfg.validate(); err != nil {
			log.Fatal(err)
		}
	}

	in := os.Stdin
	if *input != "" {
		in, err = os.Open(*input)
		if err != nil {
			log.Fatal(err)
		}
		defer in.Close()
	}
	out := bufio.NewWriter(os.Stdout)
	n, err := normalize(cfg, in, out)
	if err != nil {
		log.Fatal(err)
	}
	if err := out.Flush(); err != nil {
		log.Fatal(err)
	}
	log.Printf("normalized %d records to %s %s form", n, cfg.Unit, cfg.Mode)
}
