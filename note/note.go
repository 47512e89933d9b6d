package note

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Octave bounds and defaults, in scientific pitch notation registers.
const (
	MinOctave     = 0
	MaxOctave     = 10
	DefaultOctave = 4
)

// Note is a pitch class pinned to an octave. The letter and shift it was
// built from are retained as written (for inspection and validation), while
// equality and rendering go through the derived pitch class, so enharmonic
// spellings of the same note compare equal.
type Note struct {
	letter string
	shift  string
	octave int
	pitch  PitchClass
}

// New builds a Note from a letter, a canonical shift and an octave. An empty
// shift means natural. Letter and shift are matched case-insensitively.
func New(letter, shift string, octave int) (*Note, error) {
	n := &Note{}
	if err := n.Set(letter, shift, octave); err != nil {
		return nil, err
	}
	return n, nil
}

// Parse builds a Note at DefaultOctave from a human-readable note string.
func Parse(v interface{}) (*Note, error) {
	letter, shift, err := ParseNoteString(v)
	if err != nil {
		return nil, err
	}
	return New(letter, shift, DefaultOctave)
}

// Set replaces the note's letter, shift and octave together. It validates
// everything before assigning anything: on error the receiver is unchanged.
func (n *Note) Set(letter, shift string, octave int) error {
	if shift == "" {
		shift = DefaultShift
	}
	pitch, err := ToAbstract(letter, shift)
	if err != nil {
		return err
	}
	if err := checkOctave(octave); err != nil {
		return err
	}
	n.letter = letter
	n.shift = shift
	n.octave = octave
	n.pitch = pitch
	return nil
}

// SetOctave replaces the octave alone. It accepts any integer-castable value:
// integer kinds as-is, numeric strings via parsing, floats truncated toward
// zero. Malformed numerals return ErrInvalidValue, uncastable kinds
// ErrWrongType, and out-of-range results ErrInvalidValue; the receiver is
// unchanged on error.
func (n *Note) SetOctave(v interface{}) error {
	octave, err := castOctave(v)
	if err != nil {
		return err
	}
	if err := checkOctave(octave); err != nil {
		return err
	}
	n.octave = octave
	return nil
}

func castOctave(v interface{}) (int, error) {
	switch o := v.(type) {
	case int:
		return o, nil
	case int8:
		return int(o), nil
	case int16:
		return int(o), nil
	case int32:
		return int(o), nil
	case int64:
		return int(o), nil
	case uint:
		return int(o), nil
	case uint8:
		return int(o), nil
	case uint16:
		return int(o), nil
	case uint32:
		return int(o), nil
	case uint64:
		return int(o), nil
	case float32:
		return int(o), nil
	case float64:
		return int(o), nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(o))
		if err != nil {
			return 0, errors.Wrapf(ErrInvalidValue, "octave %q is not a valid numeral", o)
		}
		return i, nil
	default:
		return 0, errors.Wrapf(ErrWrongType, "octave %v (%T) cannot be cast to an integer", v, v)
	}
}

func checkOctave(octave int) error {
	if octave < MinOctave || MaxOctave < octave {
		return errors.Wrapf(ErrInvalidValue, "octave %d is not in %d..%d", octave, MinOctave, MaxOctave)
	}
	return nil
}

// Letter returns the note letter as it was supplied.
func (n *Note) Letter() string { return n.letter }

// Shift returns the note shift as it was supplied.
func (n *Note) Shift() string { return n.shift }

// Octave returns the current octave.
func (n *Note) Octave() int { return n.octave }

// Pitch returns the pitch class derived from the note's letter and shift.
func (n *Note) Pitch() PitchClass { return n.pitch }

// Equal reports whether both notes name the same pitch class in the same
// octave. Spelling is irrelevant: D flat equals C sharp.
func (n *Note) Equal(other *Note) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.pitch == other.pitch && n.octave == other.octave
}

func (n *Note) String() string {
	return fmt.Sprintf("%s %d", n.pitch, n.octave)
}

func (n *Note) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Letter string     `json:"letter"`
		Shift  string     `json:"shift"`
		Octave int        `json:"octave"`
		Pitch  PitchClass `json:"pitch"`
	}{n.letter, n.shift, n.octave, n.pitch})
}
