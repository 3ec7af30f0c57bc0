// Package main is a command line front end for the packing engine.
// It reads an optimize request from a JSON file and prints the
// resulting shipment plan to stdout.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/guttosm/shipping-optimizer/internal/app"
	"github.com/guttosm/shipping-optimizer/internal/domain/dto"
	"github.com/guttosm/shipping-optimizer/internal/optimizer"
	"github.com/rs/zerolog/log"
)

func main() {
	pretty := flag.Bool("pretty", false, "indent the JSON output")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-pretty] <request.json>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	app.InitializeLogger()

	input := flag.Arg(0)
	if input == "" {
		flag.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(input)
	if err != nil {
		log.Fatal().Err(err).Str("path", input).Msg("Failed to read input file")
	}

	var req dto.OptimizeRequest
	if err := json.Unmarshal(data, &req); err != nil {
		log.Fatal().Err(err).Str("path", input).Msg("Input file is not valid JSON")
	}
	if err := req.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid request")
	}

	opt := optimizer.New()
	plan, err := opt.OptimizeWithCatalog(req.Items(), req.Catalog(), req.Options.ToPlanOptions())
	if err != nil {
		log.Fatal().Err(err).Msg("Optimization failed")
	}

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(plan); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
