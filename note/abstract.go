// Package note models notes of the twelve-tone chromatic scale: an abstract
// pitch-class enumeration with modular arithmetic, parsing of human-readable
// note names, component validators, and a Note value object combining a pitch
// class with an octave.
//
// "C sharp" and "D flat" are the same pitch, so the enumeration is deliberately
// abstract: each member stands for one semitone and its name carries both
// enharmonic spellings.
package note

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// PitchClass is one of the 12 semitones of the chromatic scale, starting at
// the B#/C pair. Arithmetic on it wraps modulo 12.
type PitchClass int

const (
	BSharpCNatural PitchClass = iota
	CSharpDFlat
	DNatural
	DSharpEFlat
	ENaturalFFlat
	ESharpFNatural
	FSharpGFlat
	GNatural
	GSharpAFlat
	ANatural
	ASharpBFlat
	BNaturalCFlat
)

const pitchClassCount = 12

var pitchClassName = []string{
	"bsharp_cnatural",
	"csharp_dflat",
	"dnatural",
	"dsharp_eflat",
	"enatural_fflat",
	"esharp_fnatural",
	"fsharp_gflat",
	"gnatural",
	"gsharp_aflat",
	"anatural",
	"asharp_bflat",
	"bnatural_cflat",
}

// NewPitchClass converts a raw semitone value into a PitchClass.
func NewPitchClass(v int) (PitchClass, error) {
	if v < 0 || pitchClassCount <= v {
		return 0, errors.Wrapf(ErrInvalidValue, "pitch class %d is not in 0..%d", v, pitchClassCount-1)
	}
	return PitchClass(v), nil
}

// Add returns the pitch class n semitones above p. n may be negative or larger
// than 12; the result always wraps onto a defined member.
func (p PitchClass) Add(n int) PitchClass {
	v := (int(p) + n) % pitchClassCount
	if v < 0 {
		v += pitchClassCount
	}
	return PitchClass(v)
}

// Sub returns the pitch class n semitones below p.
func (p PitchClass) Sub(n int) PitchClass {
	return p.Add(-n)
}

// Valid reports whether p is one of the 12 defined members.
func (p PitchClass) Valid() bool {
	return 0 <= p && p < pitchClassCount
}

func (p PitchClass) String() string {
	if !p.Valid() {
		return fmt.Sprintf("undefined(%d)", int(p))
	}
	return pitchClassName[p]
}

func (p PitchClass) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}
