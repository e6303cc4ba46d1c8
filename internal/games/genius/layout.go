package genius

import "github.com/vovakirdan/tui-genius/internal/core"

// Board geometry, in terminal cells.
const (
	boardColumns = 3
	headerRows   = 4 // Title, level label, message, spacer
	footerRows   = 1 // Status line
	tileGapX     = 2
	tileGapY     = 1
	minTileW     = 7
	maxTileW     = 16
	minTileH     = 3
	maxTileH     = 7
	minScreenW   = 40
)

// boardLayout holds where each tile is drawn for a given screen size.
type boardLayout struct {
	tiles [TileCount]core.Rect
	board core.Rect
	fits  bool
}

// computeLayout centers a 3x3 grid of tiles below the header.
// Tiles grow with the terminal up to a maximum size.
func computeLayout(width, height int) boardLayout {
	rows := TileCount / boardColumns
	availW := width - 2
	availH := height - headerRows - footerRows

	tileW := core.Clamp((availW-(boardColumns-1)*tileGapX)/boardColumns, minTileW, maxTileW)
	tileH := core.Clamp((availH-(rows-1)*tileGapY)/rows, minTileH, maxTileH)
	boardW := boardColumns*tileW + (boardColumns-1)*tileGapX
	boardH := rows*tileH + (rows-1)*tileGapY

	var l boardLayout
	l.fits = width >= minScreenW && boardW <= availW && boardH <= availH

	x0 := (width - boardW) / 2
	y0 := headerRows
	l.board = core.NewRect(x0, y0, boardW, boardH)
	for i := 0; i < TileCount; i++ {
		col, row := i%boardColumns, i/boardColumns
		l.tiles[i] = core.NewRect(x0+col*(tileW+tileGapX), y0+row*(tileH+tileGapY), tileW, tileH)
	}
	return l
}

// TileAt maps a screen cell to the tile drawn there.
func (g *Game) TileAt(x, y int) (int, bool) {
	if g.tooSmall {
		return 0, false
	}
	for i, r := range g.layout.tiles {
		if r.Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}
