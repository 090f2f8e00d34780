package local

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bdkerr "github.com/coreyphillips/bdk-rn/pkg/errors"
)

const abandonMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestNewMnemonic_WordCounts(t *testing.T) {
	t.Parallel()

	for _, count := range []int{12, 15, 18, 21, 24} {
		mnemonic, err := newMnemonic(count)
		require.NoError(t, err)
		assert.Len(t, strings.Fields(mnemonic), count)
		require.NoError(t, ValidateMnemonic(mnemonic))
	}
}

func TestNewMnemonic_InvalidWordCount(t *testing.T) {
	t.Parallel()

	for _, count := range []int{0, 11, 13, 25} {
		_, err := newMnemonic(count)
		require.ErrorIs(t, err, bdkerr.ErrInvalidInput)
	}
}

func TestNewMnemonic_Randomness(t *testing.T) {
	t.Parallel()

	a, err := newMnemonic(12)
	require.NoError(t, err)
	b, err := newMnemonic(12)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestNormalizeMnemonic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abandon ability able", NormalizeMnemonic("  Abandon,ABILITY\n\table "))
	assert.Empty(t, NormalizeMnemonic(" \n "))
}

func TestValidateMnemonic(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateMnemonic(abandonMnemonic))
	require.NoError(t, ValidateMnemonic(strings.ToUpper(abandonMnemonic)))

	tests := []struct {
		name    string
		input   string
		detail  string
		suggest string
	}{
		{"empty", "", "words", ""},
		{"wrong count", "abandon abandon abandon", "words", ""},
		{"bad checksum", strings.Repeat("abandon ", 11) + "abandon", "checksum", ""},
		{"typo", strings.Replace(abandonMnemonic, "about", "abot", 1), "unknown_words", "word 12: 'abot' - did you mean 'about'?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateMnemonic(tt.input)
			require.ErrorIs(t, err, bdkerr.ErrInvalidMnemonic)

			var be *bdkerr.BdkError
			require.ErrorAs(t, err, &be)
			assert.Contains(t, be.Details, tt.detail)
			if tt.suggest != "" {
				assert.Equal(t, tt.suggest, be.Suggestion)
			}
		})
	}
}

func TestSuggestWord(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abandon", SuggestWord("abandon"))
	assert.Equal(t, "abandon", SuggestWord("abandn"))
	assert.Equal(t, "zoo", SuggestWord("ZOO"))
	assert.Empty(t, SuggestWord("qqqqqqqqqq"))
}

func TestDetectTypos(t *testing.T) {
	t.Parallel()

	typos := DetectTypos([]string{"abandon", "abilty", "xyzzyxyzzy"})
	require.Len(t, typos, 2)
	assert.Equal(t, Typo{Index: 1, Word: "abilty", Suggestion: "ability"}, typos[0])
	assert.Equal(t, "xyzzyxyzzy", typos[1].Word)
	assert.Empty(t, typos[1].Suggestion)

	assert.Equal(t,
		"word 2: 'abilty' - did you mean 'ability'?\nword 3: 'xyzzyxyzzy' is not a BIP39 word",
		FormatTypos(typos))
}
