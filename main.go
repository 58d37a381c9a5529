package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/ByLCY/textfit/cache"
	"github.com/ByLCY/textfit/dsl"
	"github.com/ByLCY/textfit/fit"
	canvasmeasure "github.com/ByLCY/textfit/measure/canvas"
)

func main() {
	input := flag.String("in", "examples/banner.fit", "fit request file")
	fontPath := flag.String("font", "", "font file overriding the request's font src")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Logger()

	size, err := run(*input, *fontPath, &log)
	if err != nil {
		log.Fatal().Err(err).Msg("resolve failed")
	}
	// Display rounding only; the resolved value itself stays fractional.
	fmt.Printf("%.2f\n", size)
}

// run chains parsing, measurement backend setup and resolution.
func run(inputPath, fontPath string, log *zerolog.Logger) (float64, error) {
	file, err := os.Open(inputPath)
	if err != nil {
		return 0, fmt.Errorf("open request file %s: %w", inputPath, err)
	}
	defer file.Close()

	req, err := dsl.Parse(file)
	if err != nil {
		return 0, fmt.Errorf("parse request: %w", err)
	}
	compiled, err := req.Compile()
	if err != nil {
		return 0, err
	}

	src := compiled.FontSrc
	if fontPath != "" {
		src = fontPath
	}
	if src == "" {
		return 0, fmt.Errorf("request %s names no font and no -font flag was given", compiled.Name)
	}

	axis, err := fit.ParseAxis(compiled.Axis)
	if err != nil {
		return 0, err
	}
	wrap, err := fit.ParseWrap(compiled.Wrap)
	if err != nil {
		return 0, err
	}

	measurer := canvasmeasure.New(canvasmeasure.Options{
		BaseDir: filepath.Dir(inputPath),
		Font:    canvasmeasure.Resource{Path: src},
		Style:   compiled.FontStyle,
	})
	resolver, err := fit.NewResolver(fit.Options{
		Prober: measurer,
		Cache:  cache.New(cache.Options{}),
		Logger: log,
	})
	if err != nil {
		return 0, err
	}

	return resolver.Resolve(fit.Request{
		Text:       compiled.Text,
		Container:  fit.Extent{Width: compiled.ContainerWidth, Height: compiled.ContainerHeight},
		Bounds:     fit.Bounds{Min: compiled.MinSize, Max: compiled.MaxSize},
		Resolution: compiled.Resolution,
		Axis:       axis,
		Wrap:       wrap,
	})
}
