package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	bdkerr "github.com/coreyphillips/bdk-rn/pkg/errors"
)

// stdinSecret is the flag value that asks for a secret on stdin.
const stdinSecret = "-"

// minExportPassphrase is the minimum length of a key export passphrase.
const minExportPassphrase = 8

// Prompt hooks, replaced in tests.
//
//nolint:gochecknoglobals // test seams
var (
	promptPasswordFn      = promptPassword
	promptNewPassphraseFn = promptNewPassphrase
)

// promptPassword reads a secret with hidden input. When stdin is not a
// terminal a single line is read instead.
func promptPassword(prompt string) ([]byte, error) {
	fd := int(os.Stdin.Fd()) //nolint:gosec // G115: Fd() returns uintptr, safe conversion for term functions
	if !term.IsTerminal(fd) {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return nil, fmt.Errorf("reading secret: %w", err)
		}
		return []byte(strings.TrimRight(line, "\r\n")), nil
	}

	out(os.Stderr, "%s", prompt)
	secret, err := term.ReadPassword(fd)
	outln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("reading password: %w", err)
	}
	return secret, nil
}

// promptNewPassphrase prompts for an export passphrase with confirmation.
func promptNewPassphrase() (string, error) {
	pass, err := promptPasswordFn("Export passphrase: ")
	if err != nil {
		return "", err
	}
	defer clear(pass)

	if len(pass) < minExportPassphrase {
		return "", bdkerr.WithSuggestion(
			bdkerr.ErrInvalidInput,
			fmt.Sprintf("passphrase must be at least %d characters", minExportPassphrase),
		)
	}

	confirm, err := promptPasswordFn("Confirm passphrase: ")
	if err != nil {
		return "", err
	}
	defer clear(confirm)

	if string(pass) != string(confirm) {
		return "", bdkerr.WithSuggestion(bdkerr.ErrInvalidInput, "passphrases do not match")
	}
	return string(pass), nil
}

// resolveSecret returns value, or prompts for it when value is "-".
func resolveSecret(value, prompt string) (string, error) {
	if value != stdinSecret {
		return value, nil
	}
	secret, err := promptPasswordFn(prompt)
	if err != nil {
		return "", err
	}
	defer clear(secret)
	return string(secret), nil
}
