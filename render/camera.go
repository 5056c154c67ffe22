package render

import (
	"math"

	"github.com/lixenwraith/slime-survivor/parameter"
	"github.com/lixenwraith/slime-survivor/vmath"
)

// Camera maps world coordinates onto terminal cells, centred on the player and aware of the wrap
type Camera struct {
	CenterX, CenterY float64
	WorldW, WorldH   float64

	// Origin of the play area on screen
	Left, Top  int
	Cols, Rows int

	// World units per cell
	ScaleX, ScaleY float64
}

// Fit sizes the camera so the viewport's width fills the play area
func (c *Camera) Fit(viewportW float64, left, top, cols, rows int) {
	c.Left, c.Top = left, top
	c.Cols, c.Rows = max(1, cols), max(1, rows)
	c.ScaleX = viewportW / float64(c.Cols)
	c.ScaleY = c.ScaleX * parameter.CellAspect
}

// WorldToScreen places a world point at its nearest wrapped image; ok is false off screen
func (c *Camera) WorldToScreen(x, y float64) (col, row int, ok bool) {
	dx := vmath.WrappedDelta(c.CenterX, x, c.WorldW)
	dy := vmath.WrappedDelta(c.CenterY, y, c.WorldH)
	col = c.Left + c.Cols/2 + int(math.Floor(dx/c.ScaleX+0.5))
	row = c.Top + c.Rows/2 + int(math.Floor(dy/c.ScaleY+0.5))
	ok = col >= c.Left && col < c.Left+c.Cols && row >= c.Top && row < c.Top+c.Rows
	return col, row, ok
}

// ScreenToWorld is the inverse of WorldToScreen, wrapped into the world
func (c *Camera) ScreenToWorld(col, row int) (float64, float64) {
	x := c.CenterX + float64(col-c.Left-c.Cols/2)*c.ScaleX
	y := c.CenterY + float64(row-c.Top-c.Rows/2)*c.ScaleY
	return vmath.Wrap(x, c.WorldW), vmath.Wrap(y, c.WorldH)
}

// CellsX converts a world length to a horizontal cell count, at least 1
func (c *Camera) CellsX(length float64) int {
	return max(1, int(math.Round(length/c.ScaleX)))
}

// CellsY converts a world length to a vertical cell count, at least 1
func (c *Camera) CellsY(length float64) int {
	return max(1, int(math.Round(length/c.ScaleY)))
}
