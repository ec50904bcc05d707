package blur

import "image"

// Plane addresses one 8-bit channel of an interleaved pixel buffer.
//
// Pix holds Height rows of Stride bytes; pixel (x, y) starts at
// y*Stride + x*PixelSize and the addressed sample sits Channel bytes later.
type Plane struct {
	Pix       []byte
	Width     int
	Height    int
	Stride    int
	PixelSize int
	Channel   int
}

// Bounds returns the plane rectangle.
func (p Plane) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.Width, p.Height)
}

// offset returns the index of the sample at (x, y).
func (p Plane) offset(x, y int) int {
	return y*p.Stride + x*p.PixelSize + p.Channel
}

// At returns the sample at (x, y).
func (p Plane) At(x, y int) byte {
	return p.Pix[p.offset(x, y)]
}

// Set stores the sample at (x, y).
func (p Plane) Set(x, y int, v byte) {
	p.Pix[p.offset(x, y)] = v
}

// Line returns n samples starting at (x, y). With transpose false the line
// runs right along the row; with transpose true it runs down the column.
func (p Plane) Line(x, y, n int, transpose bool) Line {
	step := p.PixelSize
	if transpose {
		step = p.Stride
	}
	return Line{buf: p.Pix, off: p.offset(x, y), step: step, n: n}
}

// Line is a strided view of n samples in a byte slice.
type Line struct {
	buf  []byte
	off  int
	step int
	n    int
}

// scratchLine wraps a contiguous buffer as a line.
func scratchLine(buf []byte) Line {
	return Line{buf: buf, step: 1, n: len(buf)}
}

// Len returns the number of samples in the line.
func (l Line) Len() int {
	return l.n
}

// At returns sample i.
func (l Line) At(i int) byte {
	return l.buf[l.off+i*l.step]
}

// Set stores sample i.
func (l Line) Set(i int, v byte) {
	l.buf[l.off+i*l.step] = v
}
