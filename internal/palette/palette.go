// Package palette provides immutable lists of cell tags for colored blocks.
package palette

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
)

var (
	ErrEmptyPalette   = errors.New("palette: at least one non-empty tag is required")
	ErrUnknownPalette = errors.New("palette: unknown palette")
)

// Block returns a single cell painted with 256-color background code.
func Block(code int) string {
	return fmt.Sprintf("\x1b[48;5;%dm \x1b[0m", code)
}

// Palette is a named, read-only list of tags.
type Palette struct {
	name string
	tags []string
}

func New(name string, tags ...string) (Palette, error) {
	if len(tags) == 0 {
		return Palette{}, ErrEmptyPalette
	}
	for _, t := range tags {
		if t == "" {
			return Palette{}, ErrEmptyPalette
		}
	}
	own := make([]string, len(tags))
	copy(own, tags)
	return Palette{name: name, tags: own}, nil
}

func fromCodes(name string, codes ...int) Palette {
	tags := make([]string, len(codes))
	for i, c := range codes {
		tags[i] = Block(c)
	}
	return Palette{name: name, tags: tags}
}

func (p Palette) Name() string { return p.name }
func (p Palette) Len() int     { return len(p.tags) }

// Tags returns a copy of the palette's tags.
func (p Palette) Tags() []string {
	out := make([]string, len(p.tags))
	copy(out, p.tags)
	return out
}

// Contains reports whether tag belongs to the palette.
func (p Palette) Contains(tag string) bool {
	for _, t := range p.tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Pick returns a uniformly chosen tag.
func (p Palette) Pick(rng *rand.Rand) string {
	return p.tags[rng.IntN(len(p.tags))]
}

// Built-in palettes
var (
	Classic = fromCodes("classic",
		197, // pink
		162, // magenta
		54,  // purple
		196, // red
		34,  // green
		35,  // green
		40,  // green
		19,  // blue
		20,  // blue
		39,  // blue
		226, // yellow
		229, // yellow
		208, // orange
	)

	Ocean  = fromCodes("ocean", 17, 18, 19, 24, 25, 31, 32, 38, 45, 51, 87, 123)
	Sunset = fromCodes("sunset", 52, 88, 124, 160, 196, 202, 208, 214, 220, 168, 205)
	Retro  = fromCodes("retro", 22, 28, 34, 40, 46, 82, 118)
	Mono   = fromCodes("mono", 236, 239, 242, 245, 248, 251, 254)

	Default = Classic

	builtin = map[string]Palette{
		Classic.name: Classic,
		Ocean.name:   Ocean,
		Sunset.name:  Sunset,
		Retro.name:   Retro,
		Mono.name:    Mono,
	}
)

// Lookup returns a built-in palette by name.
func Lookup(name string) (Palette, error) {
	p, ok := builtin[name]
	if !ok {
		return Palette{}, fmt.Errorf("%w: %q (available: %v)", ErrUnknownPalette, name, Names())
	}
	return p, nil
}

// Names lists built-in palettes in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for n := range builtin {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
