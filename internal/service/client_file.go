package service

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-cred-keeper/internal/utils"
)

// FileDataURL reads the file at path into a base64 data URL. The media type
// comes from the file extension, falling back to content sniffing.
func FileDataURL(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", ErrMissingFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	return utils.EncodeDataURL(mediaTypeOf(path, data), data), nil
}

func mediaTypeOf(path string, data []byte) string {
	if byExt := mime.TypeByExtension(filepath.Ext(path)); byExt != "" {
		mediaType, _, err := mime.ParseMediaType(byExt)
		if err == nil {
			return mediaType
		}
	}
	mediaType, _, _ := mime.ParseMediaType(http.DetectContentType(data))
	return mediaType
}

// documentName picks a file name for a downloaded document.
func documentName(cid, mediaType string) string {
	name := "credential-" + cid
	if exts, err := mime.ExtensionsByType(mediaType); err == nil && len(exts) > 0 {
		return name + exts[0]
	}
	return name
}
