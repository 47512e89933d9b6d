package note

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// DefaultShift is the shift assumed when a note string or argument carries
// none.
const DefaultShift = "natural"

// Matching is case-insensitive over the whole pattern, so the upper-case flat
// token "B" (as in "CB") is accepted. That leniency is intentional and kept
// for compatibility; rejecting it would also reject spellings like "SHARP".
var noteStringPattern = regexp.MustCompile(`(?i)^([A-G]) ?(natural|sharp|#|flat|b)?$`)

var shiftSpelling = map[string]string{
	"natural": "natural",
	"sharp":   "sharp",
	"#":       "sharp",
	"flat":    "flat",
	"b":       "flat",
}

// ParseNoteString splits a human-readable note string such as "C#", "Ab" or
// "d sharp" into its lower-cased letter and canonical shift. The shift
// defaults to natural when the string carries none. It returns ErrWrongType
// when v is not a string and ErrInvalidFormat when the string does not match
// the note grammar.
func ParseNoteString(v interface{}) (string, string, error) {
	s, ok := v.(string)
	if !ok {
		return "", "", errors.Wrapf(ErrWrongType, "note string %v (%T)", v, v)
	}
	m := noteStringPattern.FindStringSubmatch(s)
	if m == nil {
		return "", "", errors.Wrapf(ErrInvalidFormat, "note string %q could not be parsed", s)
	}
	letter := strings.ToLower(m[1])
	if m[2] == "" {
		return letter, DefaultShift, nil
	}
	shift, err := ParseNoteShift(m[2])
	if err != nil {
		return "", "", err
	}
	return letter, shift, nil
}

// ParseNoteShift normalizes any accepted shift spelling (natural, sharp, "#",
// flat, "b", in any case) to its canonical form. It returns ErrWrongType when
// v is not a string and ErrInvalidValue for an unknown spelling.
func ParseNoteShift(v interface{}) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", errors.Wrapf(ErrWrongType, "note shift %v (%T)", v, v)
	}
	shift, ok := shiftSpelling[strings.ToLower(s)]
	if !ok {
		return "", errors.Wrapf(ErrInvalidValue, "note shift %q does not match a valid note shift", s)
	}
	return shift, nil
}

type letterShift struct {
	letter string
	shift  string
}

// The single source of musical truth: every letter/shift pair that names one
// of the 12 pitch classes. Both members of each enharmonic pair map to the
// same value.
var abstractByLetterShift = map[letterShift]PitchClass{
	{"b", "sharp"}:   BSharpCNatural,
	{"c", "natural"}: BSharpCNatural,
	{"c", "sharp"}:   CSharpDFlat,
	{"d", "flat"}:    CSharpDFlat,
	{"d", "natural"}: DNatural,
	{"d", "sharp"}:   DSharpEFlat,
	{"e", "flat"}:    DSharpEFlat,
	{"e", "natural"}: ENaturalFFlat,
	{"f", "flat"}:    ENaturalFFlat,
	{"e", "sharp"}:   ESharpFNatural,
	{"f", "natural"}: ESharpFNatural,
	{"f", "sharp"}:   FSharpGFlat,
	{"g", "flat"}:    FSharpGFlat,
	{"g", "natural"}: GNatural,
	{"g", "sharp"}:   GSharpAFlat,
	{"a", "flat"}:    GSharpAFlat,
	{"a", "natural"}: ANatural,
	{"a", "sharp"}:   ASharpBFlat,
	{"b", "flat"}:    ASharpBFlat,
	{"b", "natural"}: BNaturalCFlat,
	{"c", "flat"}:    BNaturalCFlat,
}

// ToAbstract translates a letter/shift pair into its PitchClass. Matching is
// case-insensitive; an empty shift means natural. The shift must be canonical
// (natural, sharp or flat) — pass raw spellings through ParseNoteShift first.
// Pairs with no pitch class return ErrInvalidValue.
func ToAbstract(letter, shift string) (PitchClass, error) {
	if shift == "" {
		shift = DefaultShift
	}
	p, ok := abstractByLetterShift[letterShift{strings.ToLower(letter), strings.ToLower(shift)}]
	if !ok {
		return 0, errors.Wrapf(ErrInvalidValue, "letter %q and shift %q do not name a pitch class", letter, shift)
	}
	return p, nil
}
