package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphabetsAreDisjointAndUnique(t *testing.T) {
	owner := make(map[rune]Class)
	for _, c := range AllClasses() {
		alphabet := c.Alphabet()
		require.NotEmpty(t, alphabet, c.String())
		for _, ch := range alphabet {
			prev, dup := owner[ch]
			assert.Falsef(t, dup, "%q appears in both %s and %s", ch, prev, c)
			owner[ch] = c
		}
	}
}

func TestParseClass(t *testing.T) {
	tests := map[string]Class{
		"uppercase": Uppercase,
		"Upper":     Uppercase,
		"lowercase": Lowercase,
		" lower ":   Lowercase,
		"digit":     Digit,
		"numbers":   Digit,
		"symbols":   Symbol,
	}
	for in, want := range tests {
		got, err := ParseClass(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseClass("emoji")
	assert.Error(t, err)
}

func TestClassStringRoundTrip(t *testing.T) {
	for _, c := range AllClasses() {
		got, err := ParseClass(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	assert.True(t, strings.HasPrefix(Class(9).String(), "class("))
	assert.Empty(t, Class(9).Alphabet())
}

func TestSelection(t *testing.T) {
	var s Selection
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Classes())

	s = s.With(Symbol).With(Uppercase).With(Symbol)
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has(Uppercase))
	assert.False(t, s.Has(Lowercase))
	assert.Equal(t, []Class{Uppercase, Symbol}, s.Classes())
	assert.Equal(t, "uppercase,symbol", s.String())

	s = s.Without(Uppercase).Toggle(Digit)
	assert.Equal(t, []Class{Digit, Symbol}, s.Classes())

	assert.Equal(t, s, s.With(Class(9)))
	assert.False(t, s.Has(Class(9)))

	assert.Equal(t, AllClasses(), AllSelected().Classes())
}

func TestAllClassesReturnsCopy(t *testing.T) {
	classes := AllClasses()
	classes[0] = Symbol

	assert.Equal(t, []Class{Uppercase, Lowercase, Digit, Symbol}, AllClasses())
	assert.Equal(t, 4, AllSelected().Len())
	assert.True(t, AllSelected().Has(Uppercase))
}
