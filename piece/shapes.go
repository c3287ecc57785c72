package piece

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Type identifies one of the seven piece shapes. The numbering and the
// color of each type are fixed; external drivers map observed colors to
// these values.
type Type int

const (
	TypeZ Type = iota
	TypeJ
	TypeO
	TypeT
	TypeS
	TypeL
	TypeI
)

const (
	NumTypes     = 7
	NumRotations = 4
	NumCells     = 4
)

var ErrUnknownPiece = errors.New("unknown piece")

var typeNames = [NumTypes]string{"Z", "J", "O", "T", "S", "L", "I"}
var typeColors = [NumTypes]string{"red", "blue", "yellow", "purple", "green", "orange", "lightblue"}

var titleCaser = cases.Title(language.English)

// Name is the single-letter name of the shape.
func (t Type) Name() string {
	return typeNames[t]
}

// Color is the color the shape is drawn with.
func (t Type) Color() string {
	return typeColors[t]
}

// DisplayName is the color, title-cased, for user display.
func (t Type) DisplayName() string {
	return titleCaser.String(t.Color())
}

func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return t.Name() + " (" + t.Color() + ")"
}

func (t Type) Valid() bool {
	return t >= 0 && t < NumTypes
}

// Types returns all piece types in identifier order.
func Types() [NumTypes]Type {
	return [NumTypes]Type{TypeZ, TypeJ, TypeO, TypeT, TypeS, TypeL, TypeI}
}

// TypeFromName accepts a letter (Z, J, O, ...), a color name, or the
// numeric identifier, all case-insensitive.
func TypeFromName(s string) (Type, error) {
	s = strings.TrimSpace(s)
	for i := 0; i < NumTypes; i++ {
		if strings.EqualFold(s, typeNames[i]) || strings.EqualFold(s, typeColors[i]) {
			return Type(i), nil
		}
	}
	if len(s) == 1 && s[0] >= '0' && s[0] < '0'+NumTypes {
		return Type(s[0] - '0'), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPiece, s)
}

// Offset is a cell position relative to the piece's center.
type Offset struct {
	DX, DY int
}

// shapes holds the four cell offsets of every (type, rotation) pair.
// Successive rotation states are clockwise quarter turns. The states are
// hand-placed around each shape's pivot rather than computed, so this table
// is the only source of truth for piece geometry. It must not be written to.
var shapes = [NumTypes][NumRotations][NumCells]Offset{
	TypeZ: {
		{{1, 0}, {0, 0}, {0, 1}, {-1, 1}},
		{{0, -1}, {0, 0}, {1, 0}, {1, 1}},
		{{-1, 0}, {0, 0}, {0, -1}, {1, -1}},
		{{0, 1}, {0, 0}, {-1, 0}, {-1, -1}},
	},
	TypeJ: {
		{{-1, 0}, {0, 0}, {-1, 1}, {1, 0}},
		{{0, 1}, {0, 0}, {1, 1}, {0, -1}},
		{{1, 0}, {0, 0}, {-1, 0}, {1, -1}},
		{{0, -1}, {0, 0}, {-1, -1}, {0, 1}},
	},
	TypeO: {
		{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
		{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
		{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
		{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
	},
	TypeT: {
		{{0, 0}, {-1, 0}, {1, 0}, {0, 1}},
		{{0, 0}, {0, -1}, {1, 0}, {0, 1}},
		{{0, 0}, {-1, 0}, {1, 0}, {0, -1}},
		{{0, 0}, {0, 1}, {0, -1}, {-1, 0}},
	},
	TypeS: {
		{{-1, 0}, {0, 0}, {0, 1}, {1, 1}},
		{{0, 1}, {0, 0}, {1, 0}, {1, -1}},
		{{1, 0}, {0, 0}, {0, -1}, {-1, -1}},
		{{0, -1}, {0, 0}, {-1, 0}, {-1, 1}},
	},
	TypeL: {
		{{1, 0}, {0, 0}, {1, 1}, {-1, 0}},
		{{0, -1}, {0, 0}, {1, -1}, {0, 1}},
		{{-1, 0}, {0, 0}, {1, 0}, {-1, -1}},
		{{0, 1}, {0, 0}, {-1, 1}, {0, -1}},
	},
	TypeI: {
		{{-1, 0}, {0, 0}, {1, 0}, {2, 0}},
		{{1, -1}, {1, 0}, {1, 1}, {1, 2}},
		{{-1, 1}, {0, 1}, {1, 1}, {2, 1}},
		{{0, -1}, {0, 0}, {0, 1}, {0, 2}},
	},
}

// Offsets returns the cell offsets of type t in rotation state r. The
// rotation is taken modulo 4. The returned array is a copy.
func Offsets(t Type, r int) [NumCells]Offset {
	return shapes[t][normalizeRotation(r)]
}

func normalizeRotation(r int) int {
	return ((r % NumRotations) + NumRotations) % NumRotations
}
