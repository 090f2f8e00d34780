package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreyphillips/bdk-rn/internal/engine/local"
	bdkerr "github.com/coreyphillips/bdk-rn/pkg/errors"
)

func TestMnemonicGenerate(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		words int
	}{
		{"default length", nil, 12},
		{"word count", []string{"--words", "18"}, 18},
		{"entropy", []string{"--entropy", "256"}, 24},
		{"entropy wins over words", []string{"--entropy", "160", "-w", "24"}, 15},
		{"network hint", []string{"--network", "bitcoin"}, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"mnemonic", "generate"}, tt.args...)
			env, err := runJSON(t, nil, t.TempDir(), args...)
			require.NoError(t, err)

			mnemonic := decodeData[string](t, env)
			assert.Len(t, strings.Fields(mnemonic), tt.words)
			assert.NoError(t, local.ValidateMnemonic(mnemonic))
		})
	}
}

func TestMnemonicGenerate_InvalidEntropy(t *testing.T) {
	env, err := runJSON(t, nil, t.TempDir(), "mnemonic", "generate", "--entropy", "100")

	require.Error(t, err)
	assert.Equal(t, bdkerr.ExitCodeFor(bdkerr.CodeInvalidEntropy), ExitCode(err))
	assert.False(t, env.OK)
	require.NotNil(t, env.Error)
	assert.Equal(t, bdkerr.CodeInvalidEntropy, env.Error.Code)
	assert.Equal(t, "100", env.Error.Details["entropy"])
}

func TestMnemonicGenerate_UnsupportedWordCount(t *testing.T) {
	for _, words := range []string{"0", "-3"} {
		t.Run(words, func(t *testing.T) {
			env, err := runJSON(t, nil, t.TempDir(), "mnemonic", "generate", "--words="+words)

			require.Error(t, err)
			assert.False(t, env.OK)
			require.NotNil(t, env.Error)
			assert.Equal(t, bdkerr.CodeInvalidInput, env.Error.Code)
			assert.Equal(t, words, env.Error.Details["wordCount"])
		})
	}
}

func TestMnemonicGenerate_TextOutput(t *testing.T) {
	stdout, err := runCLI(t, nil, t.TempDir(), "-o", "text", "mnemonic", "generate")

	require.NoError(t, err)
	assert.Len(t, strings.Fields(stdout), 12)
}
