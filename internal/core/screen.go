package core

// Screen is a 2D pixel buffer for the terminal frontend.
// It decouples drawing from the terminal, allowing quads to be rasterized
// with simple pixel operations while the platform handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Color
}

// NewScreen creates a new pixel buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  Max(width, 0),
		height: Max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Color, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Color, s.width)
	}
}

// Width returns the buffer width in pixels.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the buffer height in pixels.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the buffer dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	width, height = Max(width, 0), Max(height, 0)
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	// Copy old content
	copyW := Min(oldW, width)
	copyH := Min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear fills the entire buffer with opaque black.
func (s *Screen) Clear() {
	s.Fill(ColorBlack)
}

// Fill fills the entire buffer with the given color.
func (s *Screen) Fill(c Color) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = c
		}
	}
}

// Set places a color at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// Get returns the color at the given position.
// Returns transparent for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return ColorTransparent
	}
	return s.cells[y][x]
}

// Blend composites c over the pixel at (x, y) with an extra opacity.
func (s *Screen) Blend(x, y int, c Color, alpha float64) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c.Over(s.cells[y][x], alpha)
}

// FillRect blends c into the half-open pixel rectangle [x0,x1) x [y0,y1),
// clipped to the buffer.
func (s *Screen) FillRect(x0, y0, x1, y1 int, c Color, alpha float64) {
	x0, x1 = Clamp(x0, 0, s.width), Clamp(x1, 0, s.width)
	y0, y1 = Clamp(y0, 0, s.height), Clamp(y1, 0, s.height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.cells[y][x] = c.Over(s.cells[y][x], alpha)
		}
	}
}

// Row returns a copy of the specified row.
func (s *Screen) Row(y int) []Color {
	row := make([]Color, s.width)
	if y < 0 || y >= s.height {
		return row
	}
	copy(row, s.cells[y])
	return row
}
