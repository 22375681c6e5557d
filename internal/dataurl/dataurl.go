// Package dataurl turns local image files into embeddable data-URL
// strings for avatars, menu item images, and the app logo.
package dataurl

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
)

// maxImageBytes guards against accidentally embedding something huge
// into the kv store. 5 MiB matches what the store comfortably holds.
const maxImageBytes = 5 << 20

// FromFile reads an image file and returns it as a
// data:<mime>;base64,... string. The MIME type is sniffed from the
// content. On any failure the caller keeps its previous image; nothing
// is partially written.
func FromFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if info.Size() > maxImageBytes {
		return "", fmt.Errorf("read image: %s is %d bytes, limit is %d", path, info.Size(), maxImageBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}

	return FromBytes(data), nil
}

// FromBytes encodes raw image bytes as a data URL.
func FromBytes(data []byte) string {
	mime := http.DetectContentType(data)
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data))
}
