package domain

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const (
	dataURLScheme = "data:"
	base64Marker  = ";base64"
)

// ParseDataURL decomposes a "data:<mime>;base64,<payload>" string into its
// declared MIME type and decoded payload. Anything that does not split into
// exactly a metadata prefix and a payload is ErrMalformedDataURL.
func ParseDataURL(raw string) (*Image, error) {
	meta, payload, found := strings.Cut(raw, ",")
	if !found {
		return nil, ErrMalformedDataURL
	}

	if !strings.HasPrefix(meta, dataURLScheme) || !strings.HasSuffix(meta, base64Marker) {
		return nil, ErrMalformedDataURL
	}

	mimeType := strings.TrimSuffix(strings.TrimPrefix(meta, dataURLScheme), base64Marker)
	if mimeType == "" {
		return nil, ErrMalformedDataURL
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDataURL, err)
	}

	return &Image{Data: data, MIMEType: mimeType}, nil
}

// FormatDataURL encodes an image as a displayable data URL.
func FormatDataURL(img Image) string {
	return dataURLScheme + img.MIMEType + base64Marker + "," + base64.StdEncoding.EncodeToString(img.Data)
}
