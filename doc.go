// Package amazeing generates rectangular grid mazes, carves a fixed
// "42" decoration into their center, solves them, and serializes the
// result to a compact hexadecimal document.
//
// The pipeline, leaf-first:
//
//	maze/     — W×H cell grid with 4-bit wall masks and exclusion flags
//	pattern/  — the centered "42" glyph as a precomputed exclusion set
//	carve/    — seeded recursive-backtracking generator (+ braid pass)
//	solve/    — BFS shortest path, reconstructed as an N/S/E/W string
//	mazefile/ — hex matrix + document encoding and strict decoding
//	config/   — KEY=VALUE parameter files, validated
//	render/   — ASCII and PNG views of a decoded document
//
// A typical run builds a grid, applies the pattern mask, carves with a
// pinned seed, solves entry→exit, and encodes:
//
//	g, _ := maze.New(10, 10)
//	pattern.Apply(g, pattern.Mask(10, 10))
//	res, _ := carve.Generate(g, entry, exit, carve.WithSeed(42))
//	path, _ := solve.ShortestPath(g, entry, exit)
//	doc := mazefile.EncodeDocument(g, entry, exit, path)
//
// Same dimensions, exclusions, entry, and seed reproduce the same maze
// byte for byte on the same Go version. cmd/amazeing wires the whole
// pipeline behind a configuration file.
package amazeing
