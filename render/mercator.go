// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"math"

	"github.com/gogpu/mapcanvas"
)

// Mercator is a point in the Web Mercator unit square: (0,0) is the
// top-left of the world, (1,1) the bottom-right, Y increasing south.
type Mercator struct {
	X float64
	Y float64
}

// Project converts a geographic coordinate to Web Mercator.
func Project(c mapcanvas.LonLat) Mercator {
	s := math.Sin(c.Lat * math.Pi / 180)
	return Mercator{
		X: (c.Lon + 180) / 360,
		Y: 0.5 - math.Log((1+s)/(1-s))/(4*math.Pi),
	}
}

// projectQuad projects all four corners of a quad.
func projectQuad(q mapcanvas.Quad) [4]Mercator {
	var m [4]Mercator
	for i, c := range q {
		m[i] = Project(c)
	}
	return m
}
