package eyes

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinydraw"
)

// DisplaySurface rasterizes the engine's draw calls onto any pixel display
// implementing the drivers.Displayer contract (ssd1306, sharpmem, ...).
// Triangles and rectangles go through tinydraw; the rounded corners tinydraw
// lacks are filled here.
type DisplaySurface struct {
	d     clippedDisplayer
	clear color.RGBA
}

var _ Surface = (*DisplaySurface)(nil)

// NewDisplaySurface wraps d. The frame is wiped to opaque black by default;
// use SetClearColor for displays that invert.
func NewDisplaySurface(d drivers.Displayer) *DisplaySurface {
	w, h := d.Size()
	return &DisplaySurface{
		d:     clippedDisplayer{d: d, w: w, h: h},
		clear: color.RGBA{A: 255},
	}
}

// SetClearColor overrides the color Clear wipes the frame with.
func (s *DisplaySurface) SetClearColor(c color.RGBA) {
	s.clear = c
}

func (s *DisplaySurface) Clear() {
	for y := int16(0); y < s.d.h; y++ {
		for x := int16(0); x < s.d.w; x++ {
			s.d.d.SetPixel(x, y, s.clear)
		}
	}
}

func (s *DisplaySurface) Present() error {
	return s.d.d.Display()
}

func (s *DisplaySurface) FillTriangle(x0, y0, x1, y1, x2, y2 int, c color.RGBA) {
	tinydraw.FilledTriangle(&s.d,
		int16(x0), int16(y0), int16(x1), int16(y1), int16(x2), int16(y2), c)
}

func (s *DisplaySurface) FillRoundRect(x, y, w, h, r int, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	r = min(r, min(w, h)/2)
	if r <= 0 {
		s.fillRect(x, y, w, h, c)
		return
	}

	// Center body plus the two side columns between the corner arcs.
	s.fillRect(x+r, y, w-2*r, h, c)
	s.fillRect(x, y+r, r, h-2*r, c)
	s.fillRect(x+w-r, y+r, r, h-2*r, c)

	s.fillCorner(x+r, y+r, r, -1, -1, c)
	s.fillCorner(x+w-r-1, y+r, r, 1, -1, c)
	s.fillCorner(x+r, y+h-r-1, r, -1, 1, c)
	s.fillCorner(x+w-r-1, y+h-r-1, r, 1, 1, c)
}

func (s *DisplaySurface) fillRect(x, y, w, h int, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	tinydraw.FilledRectangle(&s.d, int16(x), int16(y), int16(w), int16(h), c)
}

// fillCorner fills the quarter disc of radius r centered on (cx, cy), in the
// quadrant selected by the signs sx and sy.
func (s *DisplaySurface) fillCorner(cx, cy, r, sx, sy int, c color.RGBA) {
	for dy := 0; dy <= r; dy++ {
		for dx := 0; dx <= r; dx++ {
			if dx*dx+dy*dy > r*r {
				break
			}
			s.d.SetPixel(int16(cx+sx*dx), int16(cy+sy*dy), c)
		}
	}
}

// clippedDisplayer guards a Displayer whose SetPixel does not bound-check;
// the engine's overlays legitimately reach a pixel past the frame edge.
type clippedDisplayer struct {
	d    drivers.Displayer
	w, h int16
}

var _ drivers.Displayer = (*clippedDisplayer)(nil)

func (cd *clippedDisplayer) Size() (x, y int16) {
	return cd.w, cd.h
}

func (cd *clippedDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= cd.w || y >= cd.h {
		return
	}
	cd.d.SetPixel(x, y, c)
}

func (cd *clippedDisplayer) Display() error {
	return cd.d.Display()
}
