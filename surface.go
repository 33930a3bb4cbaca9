package main

// Surface is the display collaborator the controller draws onto: a fixed-size
// pixel canvas with a fill-rectangle primitive, a score label, and a game-over
// indicator. Input and timing reach the controller separately through the
// event loop.
type Surface interface {
	// Clear erases the whole canvas.
	Clear()
	// FillRect fills the outlined rectangle (x1,y1)-(x2,y2), in pixel
	// coordinates, with the palette color at the given index.
	FillRect(x1, y1, x2, y2, color int)
	// SetScore updates the score label to the given value.
	SetScore(score int)
	// ShowGameOver displays the terminal game-over indicator.
	ShowGameOver()
}

// Canvas is the terminal-backed Surface. A terminal has no sub-cell pixels, so
// rectangles are rasterized onto the board cell grid: each covered column gets
// the color at the row nearest the rectangle's top edge.
type Canvas struct {
	cellSize int
	cells    [][]int // -1 empty, otherwise a palette index
	score    int
	gameOver bool
}

func NewCanvas(cfg Config) *Canvas {
	c := &Canvas{cellSize: cfg.CellSize}
	c.cells = make([][]int, cfg.BoardHeight)
	for y := range c.cells {
		c.cells[y] = make([]int, cfg.BoardWidth)
	}
	c.Clear()
	return c
}

func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = -1
		}
	}
	c.gameOver = false
}

func (c *Canvas) FillRect(x1, y1, x2, y2, color int) {
	if x2 <= x1 || y2 <= y1 {
		return
	}
	row := (y1 + c.cellSize/2) / c.cellSize
	if y1 < 0 || row >= len(c.cells) {
		return
	}
	first := x1 / c.cellSize
	last := (x2 - 1) / c.cellSize
	for col := first; col <= last; col++ {
		if col < 0 || col >= len(c.cells[row]) {
			continue
		}
		c.cells[row][col] = color
	}
}

func (c *Canvas) SetScore(score int) {
	c.score = score
}

func (c *Canvas) ShowGameOver() {
	c.gameOver = true
}
