package watermark_test

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"photo-market-backend/internal/watermark"
)

func solidPNG(t *testing.T, w, h int, c color.Color) *bytes.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	buf := &bytes.Buffer{}
	require.NoError(t, png.Encode(buf, img))
	return buf
}

func TestRender_CapsWidthKeepingAspect(t *testing.T) {
	src := solidPNG(t, 2400, 1600, color.Black)

	out, err := watermark.Render(src, watermark.Options{MaxWidth: 1200, Text: "CLACKBUM"})
	require.NoError(t, err)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 1200, cfg.Width)
	assert.Equal(t, 800, cfg.Height)
}

func TestRender_SmallImageKeepsSize(t *testing.T) {
	src := solidPNG(t, 300, 200, color.Black)

	out, err := watermark.Render(src, watermark.Options{MaxWidth: 1200, Text: "CLACKBUM"})
	require.NoError(t, err)

	cfg, _, err := image.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.Width)
	assert.Equal(t, 200, cfg.Height)
}

func TestRender_StampsText(t *testing.T) {
	src := solidPNG(t, 1200, 400, color.Black)

	out, err := watermark.Render(src, watermark.Options{MaxWidth: 1200, Text: "CLACKBUM"})
	require.NoError(t, err)

	img, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)

	brightest := uint32(0)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, _, _, _ := img.At(x, y).RGBA()
			brightest = max(brightest, r)
		}
	}
	assert.Greater(t, brightest, uint32(0x4000))
}

func TestRender_NoTextLeavesImage(t *testing.T) {
	src := solidPNG(t, 100, 100, color.Black)

	out, err := watermark.Render(src, watermark.Options{MaxWidth: 1200})
	require.NoError(t, err)

	img, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	r, _, _, _ := img.At(50, 50).RGBA()
	assert.Less(t, r, uint32(0x1000))
}

func TestRender_RejectsNonImage(t *testing.T) {
	_, err := watermark.Render(strings.NewReader("not an image"), watermark.Options{MaxWidth: 1200})
	assert.ErrorIs(t, err, watermark.ErrUnsupportedImage)
}
