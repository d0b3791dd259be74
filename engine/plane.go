package engine

import "github.com/katalvlaran/particles/particle"

// Plane maps between screen pixels (origin top-left, y down) and the
// Cartesian plane (origin at the screen center, y up).
type Plane struct {
	Width, Height int
}

// PixelToCoords maps a pixel to Cartesian coordinates.
func (p Plane) PixelToCoords(px, py float64) particle.Point {
	return particle.Point{
		X: px - float64(p.Width)/2,
		Y: float64(p.Height)/2 - py,
	}
}

// CoordsToPixel is the inverse of PixelToCoords.
func (p Plane) CoordsToPixel(pt particle.Point) (px, py float64) {
	return pt.X + float64(p.Width)/2, float64(p.Height)/2 - pt.Y
}

// Contains reports whether pt falls inside the visible screen.
func (p Plane) Contains(pt particle.Point) bool {
	px, py := p.CoordsToPixel(pt)
	return px >= 0 && px < float64(p.Width) && py >= 0 && py < float64(p.Height)
}
