// Package levels defines the compact level description format, loads level
// sets from YAML or JSON and keeps a registry of named level packs.
package levels

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Brick kind codes as they appear in level data.
const (
	KindGameArea = 1 // Reserved for the field boundary, never valid in a run
	KindRegular  = 2
	KindSilver   = 3
	KindGold     = 4
)

// Run is a horizontal strip of identical bricks: Count bricks of Kind and
// Color starting at cell (Row, Col) and extending to the right.
type Run struct {
	Row   int
	Col   int
	Kind  int
	Color int
	Count int
}

// UnmarshalYAML decodes the compact [row, col, kind, color, count] form.
func (r *Run) UnmarshalYAML(value *yaml.Node) error {
	var fields []int
	if err := value.Decode(&fields); err != nil {
		return fmt.Errorf("line %d: brick run must be a list of integers: %w", value.Line, err)
	}
	if len(fields) != 5 {
		return fmt.Errorf("line %d: brick run needs 5 fields [row, col, kind, color, count], got %d", value.Line, len(fields))
	}
	*r = Run{Row: fields[0], Col: fields[1], Kind: fields[2], Color: fields[3], Count: fields[4]}
	return nil
}

// Level is one playable brick layout.
type Level struct {
	Title  string `yaml:"title"`
	Bricks []Run  `yaml:"bricks"`
}

// BrickCount returns the number of bricks the level requests before any
// truncation at the field edge.
func (l Level) BrickCount() int {
	n := 0
	for _, r := range l.Bricks {
		n += r.Count
	}
	return n
}

// Set is an ordered collection of levels. An empty set is valid and means
// the ball bounces inside the bare field.
type Set struct {
	Title  string  `yaml:"title"`
	Levels []Level `yaml:"levels"`
}

// Len returns the number of levels.
func (s Set) Len() int {
	return len(s.Levels)
}

// Parse decodes a level set. JSON input in the same shape is accepted as well.
func Parse(data []byte) (Set, error) {
	var s Set
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Set{}, fmt.Errorf("levels: parse: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Set{}, err
	}
	return s, nil
}

// Validate checks every run of every level.
func (s Set) Validate() error {
	var errs []error
	for i, l := range s.Levels {
		for j, r := range l.Bricks {
			switch {
			case r.Kind != KindRegular && r.Kind != KindSilver && r.Kind != KindGold:
				errs = append(errs, fmt.Errorf("level %d run %d: unknown brick kind %d", i, j, r.Kind))
			case r.Row < 0 || r.Col < 0:
				errs = append(errs, fmt.Errorf("level %d run %d: negative cell (%d, %d)", i, j, r.Row, r.Col))
			case r.Count < 0:
				errs = append(errs, fmt.Errorf("level %d run %d: negative count %d", i, j, r.Count))
			}
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("levels: invalid set: %w", errors.Join(errs...))
	}
	return nil
}
