package domain

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDataURL(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("fake-png-bytes"))

	tests := []struct {
		name     string
		input    string
		wantMIME string
		wantData []byte
		wantErr  bool
	}{
		{
			name:     "png",
			input:    "data:image/png;base64," + payload,
			wantMIME: "image/png",
			wantData: []byte("fake-png-bytes"),
		},
		{
			name:     "jpeg",
			input:    "data:image/jpeg;base64," + payload,
			wantMIME: "image/jpeg",
			wantData: []byte("fake-png-bytes"),
		},
		{
			name:    "no comma",
			input:   "data:image/png;base64" + payload,
			wantErr: true,
		},
		{
			name:    "missing scheme",
			input:   "image/png;base64," + payload,
			wantErr: true,
		},
		{
			name:    "missing base64 marker",
			input:   "data:image/png," + payload,
			wantErr: true,
		},
		{
			name:    "empty mime type",
			input:   "data:;base64," + payload,
			wantErr: true,
		},
		{
			name:    "invalid payload",
			input:   "data:image/png;base64,!!not-base64!!",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			img, err := ParseDataURL(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrMalformedDataURL)
				assert.Nil(t, img)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantMIME, img.MIMEType)
			assert.Equal(t, tc.wantData, img.Data)
		})
	}
}

func TestFormatDataURL(t *testing.T) {
	img := Image{Data: []byte("edited"), MIMEType: "image/png"}

	url := FormatDataURL(img)
	assert.Equal(t, "data:image/png;base64,"+base64.StdEncoding.EncodeToString([]byte("edited")), url)

	parsed, err := ParseDataURL(url)
	require.NoError(t, err)
	assert.Equal(t, img, *parsed)
}
