package mapcanvas

import "fmt"

// LonLat is a geographic coordinate in degrees.
type LonLat struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// Quad is the four geographic corner coordinates defining where the
// raster is projected on the map, clockwise from top-left. The corners
// need not form a rectangle.
type Quad [4]LonLat

// Validate checks that every corner is within geographic range.
// Longitude wraps, so only latitude is range-checked; Web Mercator is
// undefined at the poles.
func (q Quad) Validate() error {
	for i, c := range q {
		if c.Lat <= -90 || c.Lat >= 90 {
			return fmt.Errorf("mapcanvas: corner %d latitude %v out of range (-90, 90)", i, c.Lat)
		}
	}
	return nil
}
