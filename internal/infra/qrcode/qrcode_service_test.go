package qrcode

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G'}

func TestQRCodeService_EncodeLink(t *testing.T) {
	svc := NewQRCodeService(128, "M")

	png, err := svc.EncodeLink("https://wa.me/919794725337?text=hello")
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(png, pngHeader))
}

func TestQRCodeService_UnknownLevelFallsBack(t *testing.T) {
	svc := NewQRCodeService(64, "X")

	png, err := svc.EncodeLink("https://example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestQRCodeService_EmptyLinkFails(t *testing.T) {
	svc := NewQRCodeService(64, "M")

	_, err := svc.EncodeLink("")
	require.Error(t, err)
}
