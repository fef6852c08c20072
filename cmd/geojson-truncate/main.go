// Command geojson-truncate rounds feature coordinates of a GeoJSON document
// to 6 decimal places.
//
// Usage: geojson-truncate <cities.geojson >cities.min.geojson
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/woozymasta/geotools/internal/fileio"
	"github.com/woozymasta/geotools/internal/geo"
	"github.com/woozymasta/geotools/internal/logger"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Input  string `short:"i" long:"in"     description:"Input GeoJSON file path. Reads from stdin if empty"`
	Output string `short:"o" long:"out"    description:"Output file path. Writes to stdout if empty"`
	Format string `short:"f" long:"format" description:"Output format" choice:"json" choice:"yaml" default:"json"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	if err := run(opts); err != nil {
		log.Fatal().Err(err).Msg("Failed to truncate coordinates")
	}
}

func run(opts Options) error {
	inputData, err := fileio.ReadInput(opts.Input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	doc, err := geo.DecodeDocument(bytes.NewReader(inputData))
	if err != nil {
		return err
	}

	if err := geo.TruncateCollection(doc); err != nil {
		return err
	}

	var buf bytes.Buffer
	if opts.Format == "yaml" {
		err = geo.EncodeYAML(&buf, doc)
	} else {
		err = geo.EncodeDocument(&buf, doc)
	}
	if err != nil {
		return err
	}

	if err := fileio.WriteOutput(opts.Output, buf.Bytes()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	features, _ := doc["features"].([]any)
	log.Debug().
		Int("features", len(features)).
		Int("precision", geo.Precision).
		Str("format", opts.Format).
		Msg("Coordinates truncated")

	return nil
}
