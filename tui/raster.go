package tui

import (
	"math"
	"strings"

	"github.com/milk9111/jumpman/common"
	"github.com/milk9111/jumpman/game"
	"github.com/milk9111/jumpman/obj"
)

// Kind tags what a cell shows so frontends can colour it.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindGround
	KindPlatform
	KindHero
	KindEnemy
	KindFlag
	KindButton
	KindLabel
	KindTitle
)

var kindRunes = map[Kind]rune{
	KindEmpty:    ' ',
	KindGround:   '#',
	KindPlatform: '=',
	KindHero:     '@',
	KindEnemy:    'E',
	KindFlag:     'F',
	KindButton:   '.',
}

// KindFor classifies a sprite by its image name.
func KindFor(image string) Kind {
	switch {
	case strings.HasPrefix(image, "tiles/ground"):
		return KindGround
	case strings.HasPrefix(image, "tiles/flag"):
		return KindFlag
	case strings.HasPrefix(image, "tiles/"):
		return KindPlatform
	case strings.HasPrefix(image, "hero/"):
		return KindHero
	case strings.HasPrefix(image, "enemies/"):
		return KindEnemy
	case strings.HasPrefix(image, "ui/"):
		return KindButton
	default:
		return KindEmpty
	}
}

type Cell struct {
	Rune rune
	Kind Kind
}

// Grid is a character raster of the world. Each cell covers a fixed block of
// world pixels.
type Grid struct {
	Cols, Rows int
	cells      []Cell
	cellW      float64
	cellH      float64
}

func NewGrid(cols, rows int, worldW, worldH float64) *Grid {
	cols = max(cols, 1)
	rows = max(rows, 1)
	g := &Grid{
		Cols:  cols,
		Rows:  rows,
		cells: make([]Cell, cols*rows),
		cellW: worldW / float64(cols),
		cellH: worldH / float64(rows),
	}
	g.Clear()
	return g
}

func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Cell{Rune: ' ', Kind: KindEmpty}
	}
}

// At returns the cell at col,row. Out-of-range cells are empty.
func (g *Grid) At(col, row int) Cell {
	if col < 0 || col >= g.Cols || row < 0 || row >= g.Rows {
		return Cell{Rune: ' '}
	}
	return g.cells[row*g.Cols+col]
}

// Set ignores out-of-range coordinates.
func (g *Grid) Set(col, row int, c Cell) {
	if col < 0 || col >= g.Cols || row < 0 || row >= g.Rows {
		return
	}
	g.cells[row*g.Cols+col] = c
}

// CellRect maps a world rectangle to the half-open cell range it covers. A
// non-empty rectangle always covers at least one cell.
func (g *Grid) CellRect(r common.Rect) (c0, r0, c1, r1 int) {
	c0 = int(math.Floor(r.X / g.cellW))
	r0 = int(math.Floor(r.Y / g.cellH))
	c1 = int(math.Ceil(r.Right() / g.cellW))
	r1 = int(math.Ceil(r.Bottom() / g.cellH))
	if c1 <= c0 {
		c1 = c0 + 1
	}
	if r1 <= r0 {
		r1 = r0 + 1
	}
	return c0, r0, c1, r1
}

func (g *Grid) FillRect(r common.Rect, c Cell) {
	c0, r0, c1, r1 := g.CellRect(r)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			g.Set(col, row, c)
		}
	}
}

func (g *Grid) DrawText(col, row int, s string, kind Kind) {
	for i, r := range []rune(s) {
		g.Set(col+i, row, Cell{Rune: r, Kind: kind})
	}
}

// DrawTextAt centres s on the cell containing world point x,y.
func (g *Grid) DrawTextAt(x, y float64, s string, kind Kind) {
	col, row := g.ToCell(x, y)
	g.DrawText(col-len([]rune(s))/2, row, s, kind)
}

// ToCell returns the cell containing world point x,y.
func (g *Grid) ToCell(x, y float64) (col, row int) {
	return int(math.Floor(x / g.cellW)), int(math.Floor(y / g.cellH))
}

// ToWorld returns the world coordinates of the centre of a cell.
func (g *Grid) ToWorld(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * g.cellW, (float64(row) + 0.5) * g.cellH
}

// Row returns one row as text.
func (g *Grid) Row(row int) string {
	if row < 0 || row >= g.Rows {
		return strings.Repeat(" ", g.Cols)
	}
	var sb strings.Builder
	for col := 0; col < g.Cols; col++ {
		sb.WriteRune(g.cells[row*g.Cols+col].Rune)
	}
	return sb.String()
}

func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.Cols + 1) * g.Rows)
	for row := 0; row < g.Rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(g.Row(row))
	}
	return sb.String()
}

// titleY is the world y the banner is drawn at.
const titleY = 180

// Rasterize draws a scene into a cols x rows grid covering worldW x worldH.
// Sprites are drawn in scene order so later sprites cover earlier ones.
func Rasterize(scene game.Scene, cols, rows int, worldW, worldH float64) *Grid {
	g := NewGrid(cols, rows, worldW, worldH)
	for _, sp := range scene.Sprites {
		g.drawSprite(sp)
	}
	if scene.Title != "" {
		g.DrawTextAt(worldW/2, titleY, scene.Title, KindTitle)
	}
	return g
}

func (g *Grid) drawSprite(sp obj.Sprite) {
	kind := KindFor(sp.Image)
	g.FillRect(sp.Rect, Cell{Rune: kindRunes[kind], Kind: kind})
	if sp.Label != "" {
		g.DrawTextAt(sp.Rect.CenterX(), sp.Rect.CenterY(), sp.Label, KindLabel)
	}
}
