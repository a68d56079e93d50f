package qrcode

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47}

func TestQRCodeService_GeneratePNG(t *testing.T) {
	service := NewQRCodeService(256, "M")

	png, err := service.GeneratePNG("https://buy.example.com/starter")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}

func TestQRCodeService_GenerateBase64(t *testing.T) {
	service := NewQRCodeService(256, "M")

	encoded, err := service.GenerateBase64("https://buy.example.com/starter")
	require.NoError(t, err)

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(decoded, pngMagic))
}

func TestQRCodeService_EmptyContentFails(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.GeneratePNG("")
	require.Error(t, err)
}

func TestQRCodeService_UnknownLevelDefaultsToMedium(t *testing.T) {
	service := NewQRCodeService(128, "X")

	png, err := service.GeneratePNG("hello")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
