// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/mapcanvas"
)

// TightPixels returns the buffer's pixels as tightly packed RGBA rows
// (width*4 bytes per row), the layout GPU texture writes expect.
//
// When the buffer is already tightly packed the slice aliases the
// buffer's storage with no copy; padded rows are repacked into a fresh
// allocation. Either way the result is only valid for the duration of
// one upload, matching the buffer provider's stability guarantee.
func TightPixels(buf mapcanvas.RasterBuffer) []byte {
	w, h := buf.Width(), buf.Height()
	pix := buf.Pixels()
	stride := buf.Stride()

	if stride == w*4 && len(pix) >= w*h*4 {
		return pix[: w*h*4 : w*h*4]
	}

	src := &image.RGBA{Pix: pix, Stride: stride, Rect: image.Rect(0, 0, w, h)}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(dst, dst.Bounds(), src, image.Point{}, xdraw.Src)
	return dst.Pix
}
