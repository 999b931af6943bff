// Package config loads and validates maze parameters from a
// KEY=VALUE configuration file.
//
// Recognized keys:
//
//	WIDTH=10          grid width in cells, ≥ 1
//	HEIGHT=10         grid height in cells, ≥ 1
//	ENTRY=1,1         entry coordinate, 1-based x,y
//	EXIT=10,10        exit coordinate, 1-based x,y
//	OUTPUT_FILE=maze.txt
//	PERFECT=true      spanning-tree maze (true) or braided (false)
//	SEED=42           optional; omit for an entropy-derived seed
//
// Lines starting with # are comments. The file is parsed with godotenv,
// whose format this is. Validation rejects out-of-range or equal
// entry/exit coordinates and coordinates that land on the reserved
// center decoration, so the generator and solver only ever see
// parameters they can honor.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/amazeing/maze"
	"github.com/katalvlaran/amazeing/pattern"
)

// Sentinel errors for configuration loading.
var (
	// ErrMissingKey indicates a required key is absent.
	ErrMissingKey = errors.New("config: missing required key")
	// ErrBadValue indicates a key holds an unparseable or out-of-range value.
	ErrBadValue = errors.New("config: invalid value")
	// ErrBadCoordinate indicates entry/exit coordinates that violate the
	// placement rules.
	ErrBadCoordinate = errors.New("config: invalid coordinate")
)

// Parameters is the validated input consumed by the maze pipeline.
// It is never mutated after Load returns.
type Parameters struct {
	Width, Height int
	Entry, Exit   maze.Coord
	OutputFile    string
	Perfect       bool

	// Seed is honored only when HasSeed is true.
	Seed    int64
	HasSeed bool
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Parameters, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return fromMap(values)
}

// fromMap builds Parameters from raw key/value pairs. Split out so
// tests can exercise validation without touching the filesystem.
func fromMap(values map[string]string) (*Parameters, error) {
	p := &Parameters{}
	var err error

	if p.Width, err = requiredInt(values, "WIDTH"); err != nil {
		return nil, err
	}
	if p.Height, err = requiredInt(values, "HEIGHT"); err != nil {
		return nil, err
	}
	if p.Entry, err = requiredCoord(values, "ENTRY"); err != nil {
		return nil, err
	}
	if p.Exit, err = requiredCoord(values, "EXIT"); err != nil {
		return nil, err
	}
	if p.OutputFile, err = required(values, "OUTPUT_FILE"); err != nil {
		return nil, err
	}
	if p.Perfect, err = requiredBool(values, "PERFECT"); err != nil {
		return nil, err
	}
	if raw, ok := values["SEED"]; ok {
		seed, convErr := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if convErr != nil {
			return nil, fmt.Errorf("%w: SEED=%q is not an integer", ErrBadValue, raw)
		}
		p.Seed, p.HasSeed = seed, true
	}

	if err = p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// validate enforces the placement invariants the core relies on.
func (p *Parameters) validate() error {
	if p.Width < 1 || p.Height < 1 {
		return fmt.Errorf("%w: WIDTH and HEIGHT must be at least 1", ErrBadValue)
	}
	if err := checkInRange("ENTRY", p.Entry, p.Width, p.Height); err != nil {
		return err
	}
	if err := checkInRange("EXIT", p.Exit, p.Width, p.Height); err != nil {
		return err
	}
	if p.Entry == p.Exit {
		return fmt.Errorf("%w: ENTRY and EXIT must differ", ErrBadCoordinate)
	}
	mask := pattern.Mask(p.Width, p.Height)
	if pattern.Contains(mask, p.Entry) {
		return fmt.Errorf("%w: ENTRY %s lies on the center decoration", ErrBadCoordinate, p.Entry)
	}
	if pattern.Contains(mask, p.Exit) {
		return fmt.Errorf("%w: EXIT %s lies on the center decoration", ErrBadCoordinate, p.Exit)
	}
	return nil
}

func checkInRange(key string, c maze.Coord, w, h int) error {
	if c.X < 1 || c.X > w || c.Y < 1 || c.Y > h {
		return fmt.Errorf("%w: %s=%s outside %dx%d grid", ErrBadCoordinate, key, c, w, h)
	}
	return nil
}

func required(values map[string]string, key string) (string, error) {
	v, ok := values[key]
	if !ok || strings.TrimSpace(v) == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingKey, key)
	}
	return strings.TrimSpace(v), nil
}

func requiredInt(values map[string]string, key string) (int, error) {
	raw, err := required(values, key)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrBadValue, key, raw)
	}
	return v, nil
}

func requiredBool(values map[string]string, key string) (bool, error) {
	raw, err := required(values, key)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(raw) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %s=%q is not true or false", ErrBadValue, key, raw)
	}
}

func requiredCoord(values map[string]string, key string) (maze.Coord, error) {
	raw, err := required(values, key)
	if err != nil {
		return maze.Coord{}, err
	}
	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return maze.Coord{}, fmt.Errorf("%w: %s=%q, expected \"x,y\"", ErrBadCoordinate, key, raw)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(parts[0]))
	y, errY := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errX != nil || errY != nil {
		return maze.Coord{}, fmt.Errorf("%w: %s=%q, expected two integers", ErrBadCoordinate, key, raw)
	}
	return maze.Coord{X: x, Y: y}, nil
}
