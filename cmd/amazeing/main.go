// Command amazeing generates a maze from a configuration file, solves
// it, and writes the encoded document to the configured output file.
//
// Usage:
//
//	amazeing [-ascii] [-png FILE] [-show-path] <config-file>
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/amazeing/carve"
	"github.com/katalvlaran/amazeing/config"
	"github.com/katalvlaran/amazeing/maze"
	"github.com/katalvlaran/amazeing/mazefile"
	"github.com/katalvlaran/amazeing/pattern"
	"github.com/katalvlaran/amazeing/render"
	"github.com/katalvlaran/amazeing/solve"
)

var log = logrus.New()

func main() {
	asciiOut := flag.Bool("ascii", false, "print an ASCII rendering to stdout")
	pngOut := flag.String("png", "", "write a PNG rendering to FILE")
	showPath := flag.Bool("show-path", false, "overlay the solution path in renderings")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: amazeing [-ascii] [-png FILE] [-show-path] <config-file>")
		os.Exit(2)
	}
	if err := run(flag.Arg(0), *asciiOut, *pngOut, *showPath); err != nil {
		log.Fatal(err)
	}
}

func run(configPath string, asciiOut bool, pngOut string, showPath bool) error {
	params, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"width":   params.Width,
		"height":  params.Height,
		"perfect": params.Perfect,
	}).Info("configuration loaded")

	grid, err := maze.New(params.Width, params.Height)
	if err != nil {
		return err
	}
	pattern.Apply(grid, pattern.Mask(params.Width, params.Height))

	opts := []carve.Option{carve.WithPerfect(params.Perfect)}
	if params.HasSeed {
		opts = append(opts, carve.WithSeed(params.Seed))
	}
	result, err := carve.Generate(grid, params.Entry, params.Exit, opts...)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"seed":         result.Seed,
		"carved":       result.Carved,
		"opened_walls": result.OpenedWalls,
	}).Info("maze generated")

	path, err := solve.ShortestPath(grid, params.Entry, params.Exit)
	if err != nil {
		return err
	}
	log.WithField("steps", len(path)).Info("shortest path found")

	doc := &mazefile.Document{Grid: grid, Entry: params.Entry, Exit: params.Exit, Path: path}
	if err = os.WriteFile(params.OutputFile, []byte(doc.Encode()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", params.OutputFile, err)
	}
	log.WithField("file", params.OutputFile).Info("maze document written")

	if asciiOut {
		fmt.Print(render.ASCII(doc, showPath))
	}
	if pngOut != "" {
		f, err := os.Create(pngOut)
		if err != nil {
			return fmt.Errorf("creating %s: %w", pngOut, err)
		}
		defer f.Close()
		if err = render.WritePNG(f, doc, render.Options{ShowPath: showPath}); err != nil {
			return fmt.Errorf("rendering %s: %w", pngOut, err)
		}
		log.WithField("file", pngOut).Info("PNG rendering written")
	}
	return nil
}
