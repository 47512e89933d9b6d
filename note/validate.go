package note

import (
	"strings"

	"github.com/pkg/errors"
)

// NoteState is the capability a value must expose for whole-note validation:
// the stored letter and shift plus the current octave. *Note satisfies it.
type NoteState interface {
	Letter() string
	Shift() string
	Octave() int
}

// IsNoteLetterValid reports whether v is one of the letters A-G, in either
// case. Non-string input returns ErrWrongType.
func IsNoteLetterValid(v interface{}) (bool, error) {
	s, ok := v.(string)
	if !ok {
		return false, errors.Wrapf(ErrWrongType, "note letter %v (%T)", v, v)
	}
	if len(s) != 1 {
		return false, nil
	}
	c := strings.ToLower(s)[0]
	return 'a' <= c && c <= 'g', nil
}

// IsNoteShiftValid reports whether v is one of the accepted shift spellings
// (natural, sharp, "#", flat, "b"), in any case. Non-string input returns
// ErrWrongType.
func IsNoteShiftValid(v interface{}) (bool, error) {
	s, ok := v.(string)
	if !ok {
		return false, errors.Wrapf(ErrWrongType, "note shift %v (%T)", v, v)
	}
	_, ok = shiftSpelling[strings.ToLower(s)]
	return ok, nil
}

// IsNoteOctaveValid reports whether v is a number within the octave bounds.
// Kinds that do not order against integers return ErrWrongType.
func IsNoteOctaveValid(v interface{}) (bool, error) {
	switch o := v.(type) {
	case int:
		return MinOctave <= o && o <= MaxOctave, nil
	case int8:
		return MinOctave <= o && o <= MaxOctave, nil
	case int16:
		return MinOctave <= o && o <= MaxOctave, nil
	case int32:
		return MinOctave <= o && o <= MaxOctave, nil
	case int64:
		return MinOctave <= o && o <= MaxOctave, nil
	case uint:
		return o <= MaxOctave, nil
	case uint8:
		return o <= MaxOctave, nil
	case uint16:
		return o <= MaxOctave, nil
	case uint32:
		return o <= MaxOctave, nil
	case uint64:
		return o <= MaxOctave, nil
	case float32:
		return MinOctave <= o && o <= MaxOctave, nil
	case float64:
		return MinOctave <= o && o <= MaxOctave, nil
	default:
		return false, errors.Wrapf(ErrWrongType, "octave %v (%T) does not compare with integers", v, v)
	}
}

// IsAbstractNoteValid reports whether v is one of the 12 defined pitch-class
// members. Anything else, including out-of-range PitchClass values, answers
// false.
func IsAbstractNoteValid(v interface{}) bool {
	p, ok := v.(PitchClass)
	return ok && p.Valid()
}

// IsNoteValid reports whether v looks like a well-formed note: it must expose
// the NoteState capability and its letter, shift and octave must each be
// individually valid. Malformed values answer false rather than failing.
func IsNoteValid(v interface{}) bool {
	if n, ok := v.(*Note); ok && n == nil {
		return false
	}
	n, ok := v.(NoteState)
	if !ok {
		return false
	}
	if valid, err := IsNoteLetterValid(n.Letter()); err != nil || !valid {
		return false
	}
	if valid, err := IsNoteShiftValid(n.Shift()); err != nil || !valid {
		return false
	}
	valid, err := IsNoteOctaveValid(n.Octave())
	return err == nil && valid
}
