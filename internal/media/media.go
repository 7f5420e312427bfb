// Package media turns image files into embeddable data URIs.
package media

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/arunika/internal/common"
	"github.com/gabriel-vasile/mimetype"
)

// DataURI reads path and returns it as data:<mime>;base64,<payload>.
// Files that are not images are rejected with ErrNotAnImage.
func DataURI(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return Encode(b)
}

// Encode is DataURI for bytes already in memory.
func Encode(b []byte) (string, error) {
	mt := mimetype.Detect(b)
	if !strings.HasPrefix(mt.String(), "image/") {
		return "", fmt.Errorf("%w: detected %s", common.ErrNotAnImage, mt.String())
	}
	// Drop parameters such as charset so the URI stays minimal.
	mime, _, _ := strings.Cut(mt.String(), ";")
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(b), nil
}
