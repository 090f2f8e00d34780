// Package keyfile stores extended key info encrypted with an age
// passphrase (scrypt) recipient, ASCII-armored.
package keyfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"filippo.io/age"
	"filippo.io/age/armor"

	"github.com/coreyphillips/bdk-rn/internal/fileutil"
	"github.com/coreyphillips/bdk-rn/pkg/bdk"
	bdkerr "github.com/coreyphillips/bdk-rn/pkg/errors"
)

// DefaultWorkFactor is the scrypt log2 work factor used for new files.
const DefaultWorkFactor = 18

// ErrEmptyPassphrase is returned when encrypting without a passphrase.
var ErrEmptyPassphrase = errors.New("passphrase must not be empty")

// Encrypt encrypts plaintext for passphrase and returns armored output.
// A workFactor of 0 selects DefaultWorkFactor.
func Encrypt(plaintext []byte, passphrase string, workFactor int) ([]byte, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}

	recipient, err := age.NewScryptRecipient(passphrase)
	if err != nil {
		return nil, fmt.Errorf("creating scrypt recipient: %w", err)
	}
	if workFactor == 0 {
		workFactor = DefaultWorkFactor
	}
	recipient.SetWorkFactor(workFactor)

	buf := &bytes.Buffer{}
	aw := armor.NewWriter(buf)
	w, err := age.Encrypt(aw, recipient)
	if err != nil {
		return nil, fmt.Errorf("initializing encryption: %w", err)
	}
	if _, err := w.Write(plaintext); err != nil {
		return nil, fmt.Errorf("writing encrypted data: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalizing encryption: %w", err)
	}
	if err := aw.Close(); err != nil {
		return nil, fmt.Errorf("finalizing armor: %w", err)
	}

	return buf.Bytes(), nil
}

// Decrypt decrypts armored ciphertext with passphrase.
func Decrypt(ciphertext []byte, passphrase string) ([]byte, error) {
	identity, err := age.NewScryptIdentity(passphrase)
	if err != nil {
		return nil, fmt.Errorf("creating scrypt identity: %w", err)
	}

	r, err := age.Decrypt(armor.NewReader(bytes.NewReader(ciphertext)), identity)
	if err != nil {
		return nil, bdkerr.WithSuggestion(
			bdkerr.WithDetails(bdkerr.ErrInvalidInput, map[string]string{"keyfile": err.Error()}),
			"check the passphrase used for the export",
		)
	}

	plaintext, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading decrypted data: %w", err)
	}
	return plaintext, nil
}

// Seal encodes info as JSON and encrypts it.
func Seal(info *bdk.ExtendedKeyInfo, passphrase string, workFactor int) ([]byte, error) {
	data, err := json.Marshal(info)
	if err != nil {
		return nil, err
	}
	defer clear(data)
	return Encrypt(data, passphrase, workFactor)
}

// Open decrypts and decodes a sealed ExtendedKeyInfo.
func Open(ciphertext []byte, passphrase string) (*bdk.ExtendedKeyInfo, error) {
	data, err := Decrypt(ciphertext, passphrase)
	if err != nil {
		return nil, err
	}
	defer clear(data)

	var info bdk.ExtendedKeyInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, bdkerr.WithDetails(bdkerr.ErrInvalidInput, map[string]string{"keyfile": "not an extended key export"})
	}
	return &info, nil
}

// Save seals info into a 0600 file at path, creating parent directories.
func Save(path string, info *bdk.ExtendedKeyInfo, passphrase string, workFactor int) error {
	sealed, err := Seal(info, passphrase, workFactor)
	if err != nil {
		return err
	}
	return fileutil.WriteFile(path, sealed, 0o600, 0o700)
}

// Load reads and opens the file at path.
func Load(path, passphrase string) (*bdk.ExtendedKeyInfo, error) {
	// #nosec G304 -- path is supplied by the user on the command line
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, bdkerr.WithDetails(bdkerr.ErrInvalidInput, map[string]string{"file": err.Error()})
	}
	return Open(data, passphrase)
}
