package command

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestParseSelection_Number(t *testing.T) {
	n, err := ParseSelection("3")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestParseSelection_Whitespace(t *testing.T) {
	n, err := ParseSelection("  12 \r")
	require.NoError(t, err)
	assert.Equal(t, 12, n)
}

func TestParseSelection_NotANumber(t *testing.T) {
	for _, in := range []string{"", "abc", "1.5", "2 3", "one"} {
		_, err := ParseSelection(in)
		assert.ErrorIs(t, err, ErrNotANumber, "input %q", in)
	}
}

func TestParseSelection_Negative(t *testing.T) {
	n, err := ParseSelection("-4")
	require.NoError(t, err)
	assert.Equal(t, -4, n)
}

func TestParseIndex(t *testing.T) {
	i, err := ParseIndex("1")
	require.NoError(t, err)
	assert.Equal(t, 0, i)

	i, err = ParseIndex("0")
	require.NoError(t, err)
	assert.Equal(t, -1, i)

	_, err = ParseIndex("x")
	assert.ErrorIs(t, err, ErrNotANumber)
}

func TestProperty_ParseSelection_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(-1_000_000, 1_000_000).Draw(t, "n")
		got, err := ParseSelection(" " + strconv.Itoa(n) + " ")
		if err != nil || got != n {
			t.Fatalf("ParseSelection(%d) = %d, %v", n, got, err)
		}
	})
}
