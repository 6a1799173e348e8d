package render

import (
	"math"

	"github.com/lixenwraith/pinball/vmath"
)

// hudRows is the number of status rows below the playfield
const hudRows = 1

// Viewport maps world units onto terminal cells
// Cells are assumed twice as tall as they are wide
type Viewport struct {
	X, Y  int
	CellW float64
	CellH float64
	Cols  int
	Rows  int
}

// NewViewport fits a width×height playfield into a cols×rows terminal
func NewViewport(cols, rows int, width, height float64) Viewport {
	fieldRows := rows - hudRows
	if fieldRows < 1 {
		fieldRows = 1
	}
	if cols < 1 {
		cols = 1
	}
	cellH := math.Max(height/float64(fieldRows), 2*width/float64(cols))
	cellW := cellH / 2

	usedCols := int(math.Ceil(width / cellW))
	usedRows := int(math.Ceil(height / cellH))
	return Viewport{
		X:     (cols - usedCols) / 2,
		Y:     0,
		CellW: cellW,
		CellH: cellH,
		Cols:  usedCols,
		Rows:  usedRows,
	}
}

// ToScreen returns the cell containing world point p
func (v Viewport) ToScreen(p vmath.Vec2) (x, y int) {
	return v.X + int(math.Floor(p[0]/v.CellW)), v.Y + int(math.Floor(p[1]/v.CellH))
}

// CellCenter returns the world point at the center of cell (x, y)
func (v Viewport) CellCenter(x, y int) vmath.Vec2 {
	return vmath.V2((float64(x-v.X)+0.5)*v.CellW, (float64(y-v.Y)+0.5)*v.CellH)
}

// reach is how far from a shape a cell center may be and still be painted
// Half the tall side keeps thin walls visible at any scale
func (v Viewport) reach() float64 {
	return v.CellH / 2
}

// boxDistance is the signed distance from p to an oriented box
func boxDistance(p, center, dims vmath.Vec2, rotation float64) float64 {
	local := vmath.Rotate(p.Sub(center), -rotation)
	qx := math.Abs(local[0]) - dims[0]/2
	qy := math.Abs(local[1]) - dims[1]/2
	outside := vmath.V2(math.Max(qx, 0), math.Max(qy, 0)).Len()
	return outside + math.Min(math.Max(qx, qy), 0)
}

// circleDistance is the signed distance from p to a disc
func circleDistance(p, center vmath.Vec2, radius float64) float64 {
	return p.Sub(center).Len() - radius
}
