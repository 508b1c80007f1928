package projection

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned by ParseMode for unrecognized names
var ErrUnknownMode = errors.New("unknown projection mode")

// Mode selects how per-level images become screen layers
type Mode uint8

const (
	// TopDown stacks every level unchanged over the same rectangle
	TopDown Mode = iota
	// Isometric crops level L by L rows from the top, producing a staircase
	Isometric
)

var modeNames = map[Mode]string{
	TopDown:   "top_down",
	Isometric: "isometric",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// Next cycles to the following mode
func (m Mode) Next() Mode {
	if m == TopDown {
		return Isometric
	}
	return TopDown
}

// ParseMode resolves a mode name, case-insensitive; "" selects TopDown
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return TopDown, nil
	}
	for m, name := range modeNames {
		if name == s {
			return m, nil
		}
	}
	return TopDown, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}
