package qr

import (
	"bytes"
	"fmt"
	"image/png"
	"os"

	"github.com/makiuchi-d/gozxing"
	gozxingqr "github.com/makiuchi-d/gozxing/qrcode"
)

// VerificationError reports a decode-back mismatch between the content
// that was encoded and what the written artifact actually scans as.
type VerificationError struct {
	Want string
	Got  string
	Err  error
}

func (e *VerificationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("QR verification failed: could not read back the generated symbol: %v", e.Err)
	}
	return fmt.Sprintf("QR verification failed: encoded %q but the symbol decodes to %q", e.Want, e.Got)
}

func (e *VerificationError) Unwrap() error { return e.Err }

// Decode reads the QR symbol out of rendered PNG bytes and returns the
// embedded text.
func Decode(data []byte) (string, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("failed to process image for QR reading: %w", err)
	}

	reader := gozxingqr.NewQRCodeReader()
	result, err := reader.Decode(bmp, nil)
	if err != nil {
		return "", fmt.Errorf("failed to decode QR code: %w", err)
	}

	return result.GetText(), nil
}

// Verify decodes the PNG written at path and checks it round-trips to the
// content that was encoded.
func Verify(path, want string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &VerificationError{Want: want, Err: err}
	}

	got, err := Decode(data)
	if err != nil {
		return &VerificationError{Want: want, Err: err}
	}
	if got != want {
		return &VerificationError{Want: want, Got: got}
	}
	return nil
}
