package blendemo

import "fmt"
import "image"

// Default demo dimensions.
const (
	DefaultWidth       = 512
	DefaultHeight      = 384
	DefaultStripX      = 200
	DefaultStripWidth  = 289
	DefaultStripHeight = 84
	DefaultRows        = 4
)

// A [Layout] describes the logical area of the demo and where the
// foreground strips go. The area is split in Rows horizontal bands of
// equal height, and each strip is vertically centered within its band.
type Layout struct {
	Width int
	Height int
	StripX int
	StripWidth int
	StripHeight int
	Rows int
}

// Returns the default layout: a 512x384 area with four 289x84
// strips at x = 200.
func DefaultLayout() Layout {
	return Layout{
		Width: DefaultWidth,
		Height: DefaultHeight,
		StripX: DefaultStripX,
		StripWidth: DefaultStripWidth,
		StripHeight: DefaultStripHeight,
		Rows: DefaultRows,
	}
}

// Returns the logical area, with its origin at (0, 0).
func (self Layout) Bounds() image.Rectangle {
	return image.Rect(0, 0, self.Width, self.Height)
}

// Returns the height of each horizontal band. Integer division.
func (self Layout) RowHeight() int {
	if self.Rows <= 0 { panic(preViolation + ": layout rows must be positive") }
	return self.Height/self.Rows
}

// Returns the rectangle of the strip drawn on the given row.
func (self Layout) StripRect(row int) image.Rectangle {
	rowHeight := self.RowHeight()
	y := rowHeight/2 - self.StripHeight/2 + row*rowHeight
	return image.Rect(self.StripX, y, self.StripX + self.StripWidth, y + self.StripHeight)
}

// Returns an error if any dimension is not positive or if any of the
// strips doesn't fit within the layout bounds.
func (self Layout) Validate() error {
	if self.Width <= 0 || self.Height <= 0 {
		return fmt.Errorf("invalid layout size %dx%d", self.Width, self.Height)
	}
	if self.StripWidth <= 0 || self.StripHeight <= 0 {
		return fmt.Errorf("invalid strip size %dx%d", self.StripWidth, self.StripHeight)
	}
	if self.Rows <= 0 {
		return fmt.Errorf("invalid number of rows %d", self.Rows)
	}
	bounds := self.Bounds()
	for row := 0; row < self.Rows; row++ {
		rect := self.StripRect(row)
		if !rect.In(bounds) {
			return fmt.Errorf("strip %d at %v doesn't fit in %v", row, rect, bounds)
		}
	}
	return nil
}
