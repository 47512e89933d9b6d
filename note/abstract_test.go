package note_test

import (
	"encoding/json"
	"testing"

	"github.com/halfstep/chroma/note"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allPitchClasses = []note.PitchClass{
	note.BSharpCNatural,
	note.CSharpDFlat,
	note.DNatural,
	note.DSharpEFlat,
	note.ENaturalFFlat,
	note.ESharpFNatural,
	note.FSharpGFlat,
	note.GNatural,
	note.GSharpAFlat,
	note.ANatural,
	note.ASharpBFlat,
	note.BNaturalCFlat,
}

func TestNewPitchClassValidValues(t *testing.T) {
	for _, v := range []int{0, 1, 5, 11} {
		p, err := note.NewPitchClass(v)
		require.NoError(t, err)
		assert.Equal(t, note.PitchClass(v), p)
		assert.True(t, p.Valid())
	}
}

func TestNewPitchClassInvalidValues(t *testing.T) {
	for _, v := range []int{-1, 12, 100} {
		_, err := note.NewPitchClass(v)
		require.Error(t, err, "value %d", v)
		assert.Equal(t, note.ErrInvalidValue, errors.Cause(err))
	}
}

func TestPitchClassAdd(t *testing.T) {
	cases := []struct {
		p    note.PitchClass
		n    int
		want note.PitchClass
	}{
		{note.BNaturalCFlat, 2, note.CSharpDFlat},
		{note.BSharpCNatural, 5, note.ESharpFNatural},
		{note.ENaturalFFlat, 9, note.CSharpDFlat},
		{note.ANatural, 299, note.GSharpAFlat},
		{note.ANatural, -2, note.GNatural},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.p.Add(c.n), "%s + %d", c.p, c.n)
	}
}

func TestPitchClassSub(t *testing.T) {
	cases := []struct {
		p    note.PitchClass
		n    int
		want note.PitchClass
	}{
		{note.BSharpCNatural, 4, note.GSharpAFlat},
		{note.ENaturalFFlat, 9, note.GNatural},
		{note.DNatural, 299, note.DSharpEFlat},
		{note.FSharpGFlat, -2, note.GSharpAFlat},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.p.Sub(c.n), "%s - %d", c.p, c.n)
	}
}

func TestPitchClassArithmeticClosure(t *testing.T) {
	intervals := []int{-299, -25, -13, -12, -1, 0, 1, 11, 12, 13, 299}
	for _, p := range allPitchClasses {
		assert.Equal(t, p, p.Add(0))
		assert.Equal(t, p, p.Add(12))
		assert.Equal(t, p, p.Sub(12))
		for _, n := range intervals {
			sum := p.Add(n)
			assert.True(t, sum.Valid(), "%s + %d", p, n)
			assert.True(t, p.Sub(n).Valid(), "%s - %d", p, n)
			assert.Equal(t, p, sum.Sub(n), "(%s + %d) - %d", p, n, n)
		}
	}
}

func TestPitchClassString(t *testing.T) {
	assert.Equal(t, "bsharp_cnatural", note.BSharpCNatural.String())
	assert.Equal(t, "gsharp_aflat", note.GSharpAFlat.String())
	assert.Equal(t, "bnatural_cflat", note.BNaturalCFlat.String())
	assert.Equal(t, "undefined(12)", note.PitchClass(12).String())
	assert.Equal(t, "undefined(-1)", note.PitchClass(-1).String())
}

func TestPitchClassMarshalJSON(t *testing.T) {
	j, err := json.Marshal(note.ASharpBFlat)
	require.NoError(t, err)
	assert.Equal(t, `"asharp_bflat"`, string(j))
}
