package qr

import (
	"fmt"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"

	"qrarchive/internal/constants"
)

// MaxContentBytes is the binary-mode capacity of a version 40 symbol at
// the highest error-correction level. Anything longer cannot be encoded
// without dropping error correction, which the archive intentionally
// refuses to do — archived codes are printed and get damaged.
const MaxContentBytes = 1273

// ContentTooLargeError reports content that exceeds the QR capacity at the
// configured error-correction level.
type ContentTooLargeError struct {
	Length int
	Limit  int
}

func (e *ContentTooLargeError) Error() string {
	return fmt.Sprintf("content is %d bytes, exceeding the %d-byte QR capacity at the highest error-correction level", e.Length, e.Limit)
}

// Encode renders content as a QR symbol and returns the PNG bytes.
// The highest error-correction level (30% recovery) is used so printed
// copies survive smudges and partial damage.
func Encode(content string, size int) ([]byte, error) {
	if len(content) > MaxContentBytes {
		return nil, &ContentTooLargeError{Length: len(content), Limit: MaxContentBytes}
	}
	if size <= 0 {
		size = constants.DefaultPNGSize
	}

	png, err := skipqrcode.Encode(content, skipqrcode.Highest, size)
	if err != nil {
		if strings.Contains(err.Error(), "content too long") {
			return nil, &ContentTooLargeError{Length: len(content), Limit: MaxContentBytes}
		}
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}
	return png, nil
}
