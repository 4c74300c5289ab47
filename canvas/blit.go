// Copyright (c) 2025 Apple Inc. Licensed under MIT License.

package canvas

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"tinygo.org/x/drivers"
)

// Blit flattens img over an opaque background color and pushes the
// result to a hardware display, scaling if the display size differs
// from the image size.
func Blit(img *image.RGBA, bg color.Color, d drivers.Displayer) error {
	dw, dh := d.Size()
	if dw <= 0 || dh <= 0 {
		return nil
	}

	flat := image.NewRGBA(img.Bounds())
	draw.Draw(flat, flat.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	draw.Draw(flat, flat.Bounds(), img, img.Bounds().Min, draw.Over)

	src := flat
	if int(dw) != flat.Bounds().Dx() || int(dh) != flat.Bounds().Dy() {
		dst := image.NewRGBA(image.Rect(0, 0, int(dw), int(dh)))
		xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), flat, flat.Bounds(), xdraw.Src, nil)
		src = dst
	}

	for y := 0; y < int(dh); y++ {
		for x := 0; x < int(dw); x++ {
			d.SetPixel(int16(x), int16(y), src.RGBAAt(x, y))
		}
	}
	return d.Display()
}
