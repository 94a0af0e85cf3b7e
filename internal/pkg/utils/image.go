package utils

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DecodeBase64Image decodes a data-URI or bare base64 image payload and
// returns the raw bytes plus the file extension inferred from the MIME type.
func DecodeBase64Image(encoded string) ([]byte, string, error) {
	ext := ".png"
	payload := encoded

	if strings.HasPrefix(encoded, "data:") {
		parts := strings.SplitN(encoded, ",", 2)
		if len(parts) != 2 {
			return nil, "", fmt.Errorf("malformed data URI")
		}
		header := parts[0]
		payload = parts[1]

		switch {
		case strings.Contains(header, "image/jpeg"):
			ext = ".jpg"
		case strings.Contains(header, "image/png"):
			ext = ".png"
		case strings.Contains(header, "image/webp"):
			ext = ".webp"
		default:
			return nil, "", fmt.Errorf("unsupported image MIME type in %q", header)
		}
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", err
	}
	return data, ext, nil
}

func ValidateImageFormat(ext string, allowed []string) error {
	for _, candidate := range allowed {
		if strings.EqualFold(ext, candidate) {
			return nil
		}
	}
	return fmt.Errorf("image format %s is not allowed", ext)
}

func ValidateImageSize(data []byte, maxSizeInMB int) error {
	if len(data) > maxSizeInMB*1024*1024 {
		return fmt.Errorf("image exceeds maximum size of %d MB", maxSizeInMB)
	}
	return nil
}
