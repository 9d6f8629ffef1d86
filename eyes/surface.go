package eyes

import "image/color"

// Surface is the drawing sink the engine renders into: clear the frame, fill
// primitive shapes, present the finished frame. Exactly two colors are ever
// used. Implementations must tolerate degenerate shapes (zero or negative
// sizes, coordinates off the edge) by drawing nothing.
type Surface interface {
	Clear()
	FillRoundRect(x, y, w, h, r int, c color.RGBA)
	FillTriangle(x0, y0, x1, y1, x2, y2 int, c color.RGBA)
	Present() error
}
