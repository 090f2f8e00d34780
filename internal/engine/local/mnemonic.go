package local

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/tyler-smith/go-bip39"

	"github.com/coreyphillips/bdk-rn/internal/securemem"
	bdkerr "github.com/coreyphillips/bdk-rn/pkg/errors"
)

// MaxTypoDistance is the largest edit distance offered as a suggestion.
const MaxTypoDistance = 2

// entropyBits maps a BIP-39 word count to its entropy size.
func entropyBits(wordCount int) (int, bool) {
	switch wordCount {
	case 12, 15, 18, 21, 24:
		return wordCount * 32 / 3, true
	default:
		return 0, false
	}
}

func newMnemonic(wordCount int) (string, error) {
	bits, ok := entropyBits(wordCount)
	if !ok {
		return "", bdkerr.WithDetails(bdkerr.ErrInvalidInput, map[string]string{"wordCount": strconv.Itoa(wordCount)})
	}

	raw, err := bip39.NewEntropy(bits)
	if err != nil {
		return "", err
	}
	entropy := securemem.From(raw)
	defer entropy.Destroy()

	return bip39.NewMnemonic(entropy.Bytes())
}

// NormalizeMnemonic lower-cases the phrase and collapses whitespace and commas.
func NormalizeMnemonic(input string) string {
	input = strings.ReplaceAll(strings.ToLower(input), ",", " ")
	return strings.Join(strings.Fields(input), " ")
}

// ValidateMnemonic checks word count, word list membership and checksum.
// Unknown words produce an error whose suggestion names the closest words.
func ValidateMnemonic(mnemonic string) error {
	normalized := NormalizeMnemonic(mnemonic)
	words := strings.Fields(normalized)

	if _, ok := entropyBits(len(words)); !ok {
		return bdkerr.WithDetails(bdkerr.ErrInvalidMnemonic, map[string]string{"words": strconv.Itoa(len(words))})
	}

	if typos := DetectTypos(words); len(typos) > 0 {
		return bdkerr.WithSuggestion(
			bdkerr.WithDetails(bdkerr.ErrInvalidMnemonic, map[string]string{"unknown_words": strconv.Itoa(len(typos))}),
			FormatTypos(typos),
		)
	}

	if _, err := bip39.MnemonicToByteArray(normalized); err != nil {
		return bdkerr.WithDetails(bdkerr.ErrInvalidMnemonic, map[string]string{"checksum": "mismatch"})
	}
	return nil
}

// Typo describes a word that is not in the BIP-39 English list.
type Typo struct {
	Index      int
	Word       string
	Suggestion string
}

// DetectTypos returns the words that are not in the word list.
func DetectTypos(words []string) []Typo {
	var typos []Typo
	for i, word := range words {
		if _, ok := bip39.GetWordIndex(word); ok {
			continue
		}
		typos = append(typos, Typo{Index: i, Word: word, Suggestion: SuggestWord(word)})
	}
	return typos
}

// SuggestWord returns the closest word list entry within MaxTypoDistance,
// or "" when nothing is close.
func SuggestWord(input string) string {
	input = strings.ToLower(input)
	best, bestDist := "", math.MaxInt

	for _, word := range bip39.GetWordList() {
		dist := levenshtein.ComputeDistance(input, word)
		if dist < bestDist {
			best, bestDist = word, dist
		}
		if dist == 0 {
			break
		}
	}

	if bestDist <= MaxTypoDistance {
		return best
	}
	return ""
}

// FormatTypos renders typos one per line with 1-based word positions.
func FormatTypos(typos []Typo) string {
	lines := make([]string, len(typos))
	for i, t := range typos {
		if t.Suggestion != "" {
			lines[i] = fmt.Sprintf("word %d: '%s' - did you mean '%s'?", t.Index+1, t.Word, t.Suggestion)
		} else {
			lines[i] = fmt.Sprintf("word %d: '%s' is not a BIP39 word", t.Index+1, t.Word)
		}
	}
	return strings.Join(lines, "\n")
}
