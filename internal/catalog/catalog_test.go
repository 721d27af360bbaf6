package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguages(t *testing.T) {
	langs := Languages()

	require.Len(t, langs, 11)
	assert.Equal(t, DefaultTarget, langs[0].Code)
	assert.Equal(t, "de", langs[len(langs)-1].Code)

	seen := make(map[string]bool)
	for _, l := range langs {
		assert.False(t, seen[l.Code], "duplicate code %s", l.Code)
		seen[l.Code] = true
	}
}

func TestLanguages_ReturnsCopy(t *testing.T) {
	langs := Languages()
	langs[0].Label = "changed"

	assert.Equal(t, "Hindi", Languages()[0].Label)
}

func TestLookup(t *testing.T) {
	l, ok := Lookup("ta")
	require.True(t, ok)
	assert.Equal(t, "Tamil", l.Label)

	_, ok = Lookup("xx")
	assert.False(t, ok)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Malayalam", Label("ml"))
	assert.Equal(t, "PT", Label("pt"))
	assert.Equal(t, "", Label(""))
}

func TestCodes(t *testing.T) {
	assert.Equal(t, []string{"hi", "mr", "bn", "ta", "te", "gu", "kn", "ml", "fr", "es", "de"}, Codes())
}

func TestNativeName(t *testing.T) {
	assert.NotEmpty(t, NativeName("hi"))
	assert.Equal(t, "français", NativeName("fr"))
	assert.Empty(t, NativeName("not a tag"))
}

func TestSuggestion(t *testing.T) {
	require.Len(t, Suggestions(), 5)

	s, ok := Suggestion(1)
	require.True(t, ok)
	assert.Equal(t, "Thank you for your help.", s)

	_, ok = Suggestion(5)
	assert.False(t, ok)
	_, ok = Suggestion(-1)
	assert.False(t, ok)
}
