// Command geojson2xml converts a GeoJSON collection of cities to the
// SeisComP city XML format.
//
// Usage: geojson2xml <eqnames_points.json >eqnames.xml
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/woozymasta/geotools/internal/fileio"
	"github.com/woozymasta/geotools/internal/logger"
	"github.com/woozymasta/geotools/internal/seiscomp"

	"github.com/jessevdk/go-flags"
	"github.com/paulmach/orb/geojson"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Input  string `short:"i" long:"in"  description:"Input GeoJSON FeatureCollection path. Reads from stdin if empty"`
	Output string `short:"o" long:"out" description:"Output XML file path. Writes to stdout if empty"`
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
		log.Fatal().Err(err).Msg("Failed to convert cities")
	}
}

func run(opts Options) error {
	inputData, err := fileio.ReadInput(opts.Input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(inputData)
	if err != nil {
		return fmt.Errorf("decode feature collection: %w", err)
	}

	catalog, err := seiscomp.FromFeatureCollection(fc)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := catalog.Encode(&buf); err != nil {
		return err
	}

	if err := fileio.WriteOutput(opts.Output, buf.Bytes()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	log.Debug().
		Int("cities", len(catalog.Cities)).
		Msg("Cities converted")

	return nil
}
