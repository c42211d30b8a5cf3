// Package qrcode renders the public form URL as a PNG for posting on site.
package qrcode

import (
	"fmt"
	"os"
	"path/filepath"

	qrcode "github.com/skip2/go-qrcode"
)

// Generate writes a QR code PNG of formURL to path. size is the image edge
// length in pixels.
func Generate(formURL, path string, size int) error {
	if size <= 0 {
		size = 256
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create qr code directory: %w", err)
		}
	}

	if err := qrcode.WriteFile(formURL, qrcode.Medium, size, path); err != nil {
		return fmt.Errorf("failed to write qr code: %w", err)
	}

	return nil
}
