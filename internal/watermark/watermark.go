// Package watermark renders the public preview of a photo: a width-capped
// JPEG with the marketplace name tiled across it.
package watermark

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	_ "image/png"
	"io"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const DefaultQuality = 80

var ErrUnsupportedImage = errors.New("unsupported image")

var stampColor = color.NRGBA{R: 255, G: 255, B: 255, A: 110}

type Options struct {
	MaxWidth int
	Text     string
	Quality  int
}

// Render decodes a JPEG or PNG, scales it down to MaxWidth keeping the aspect
// ratio, stamps Text in staggered rows and encodes the result as JPEG.
func Render(src io.Reader, opts Options) ([]byte, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}

	canvas := resize(img, opts.MaxWidth)
	if opts.Text != "" {
		tile(canvas, stamp(opts.Text, canvas.Bounds().Dx()))
	}

	quality := opts.Quality
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, canvas, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("encode preview: %w", err)
	}
	return buf.Bytes(), nil
}

func resize(img image.Image, maxWidth int) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxWidth > 0 && w > maxWidth {
		h = max(1, h*maxWidth/w)
		w = maxWidth
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
		return dst
	}
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// stamp draws text with the built-in bitmap face and scales it up so one
// stamp spans roughly a quarter of the canvas width.
func stamp(text string, canvasWidth int) image.Image {
	face := basicfont.Face7x13
	const pad = 2

	textWidth := font.MeasureString(face, text).Ceil()
	small := image.NewRGBA(image.Rect(0, 0, textWidth+2*pad, face.Height+2*pad))
	d := &font.Drawer{
		Dst:  small,
		Src:  image.NewUniform(stampColor),
		Face: face,
		Dot:  fixed.P(pad, pad+face.Ascent),
	}
	d.DrawString(text)

	factor := max(1, canvasWidth/4/small.Bounds().Dx())
	if factor == 1 {
		return small
	}
	large := image.NewRGBA(image.Rect(0, 0, small.Bounds().Dx()*factor, small.Bounds().Dy()*factor))
	draw.NearestNeighbor.Scale(large, large.Bounds(), small, small.Bounds(), draw.Src, nil)
	return large
}

func tile(canvas *image.RGBA, mark image.Image) {
	mw, mh := mark.Bounds().Dx(), mark.Bounds().Dy()
	stepX := mw + mw/2
	stepY := mh * 3
	bounds := canvas.Bounds()

	for row, y := 0, mh; y < bounds.Max.Y; row, y = row+1, y+stepY {
		offset := 0
		if row%2 == 1 {
			offset = -stepX / 2
		}
		for x := offset; x < bounds.Max.X; x += stepX {
			r := image.Rect(x, y, x+mw, y+mh)
			draw.Draw(canvas, r, mark, mark.Bounds().Min, draw.Over)
		}
	}
}
