package output

import (
	"io"
	"strings"

	"github.com/mdp/qrterminal/v3"
	"rsc.io/qr"
)

// QRConfig configures QR code rendering.
type QRConfig struct {
	// Level is the error correction level.
	Level qr.Level
	// QuietZone is the number of empty blocks around the QR code.
	QuietZone int
	// HalfBlocks uses half-height blocks for a more compact display.
	HalfBlocks bool
}

// DefaultQRConfig returns defaults for terminal QR rendering.
func DefaultQRConfig() QRConfig {
	return QRConfig{
		Level:      qr.M,
		QuietZone:  1,
		HalfBlocks: true,
	}
}

// PaymentURI returns the BIP-21 URI for address. Bech32 addresses are
// upper-cased so the code fits the denser alphanumeric QR mode.
func PaymentURI(address string) string {
	lower := strings.ToLower(address)
	if strings.HasPrefix(lower, "bc1") || strings.HasPrefix(lower, "tb1") || strings.HasPrefix(lower, "bcrt1") {
		return "BITCOIN:" + strings.ToUpper(address)
	}
	return "bitcoin:" + address
}

// RenderQR renders a QR code for data when w is a terminal.
// Nothing is written otherwise.
func RenderQR(w io.Writer, data string, cfg QRConfig) {
	if !IsTerminal(w) {
		return
	}

	qrterminal.GenerateWithConfig(data, qrterminal.Config{
		Level:          cfg.Level,
		Writer:         w,
		QuietZone:      cfg.QuietZone,
		HalfBlocks:     cfg.HalfBlocks,
		BlackChar:      qrterminal.BLACK_BLACK,
		WhiteChar:      qrterminal.WHITE_WHITE,
		WhiteBlackChar: qrterminal.WHITE_BLACK,
		BlackWhiteChar: qrterminal.BLACK_WHITE,
	})
}
