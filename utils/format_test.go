package utils

import (
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDecorateText(t *testing.T) {
	assert := assert.New(t)

	s := DecorateText("ok", SuccessMessage)
	assert.True(strings.HasPrefix(s, SuccessColor))
	assert.True(strings.HasSuffix(s, DefaultColor))
	assert.Contains(s, "ok")
}

func TestFormatTime(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("1.50s", FormatTime(1500*time.Millisecond))
	assert.Equal("2m 5.00s", FormatTime(125*time.Second))
}

func TestHexToRGBA(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(color.NRGBA{R: 0, G: 255, B: 0, A: 255}, HexToRGBA("#00ff00"))
	assert.Equal(color.NRGBA{R: 0, G: 0, B: 255, A: 255}, HexToRGBA("#00f"))
	assert.Equal(color.NRGBA{R: 255, G: 0, B: 0, A: 128}, HexToRGBA("#ff000080"))
}

func TestRGBAToHex(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("#00ff00", RGBAToHex(color.NRGBA{G: 255, A: 255}))
	assert.Equal("#0000ff", RGBAToHex(HexToRGBA("#0000ff")))
}

func TestIsValidUrl(t *testing.T) {
	assert := assert.New(t)

	assert.True(IsValidUrl("https://example.com/image.png"))
	assert.False(IsValidUrl("/tmp/image.png"))
	assert.False(IsValidUrl("image.png"))
}
