package main

import (
	"math/rand"
	"time"
)

// Game owns the locked-cell board, the active piece, and the session state.
// All mutation happens through its methods on the single event-loop goroutine,
// in response to gravity ticks and key events.
type Game struct {
	cfg       Config
	Board     [][]int // 0 empty, otherwise 1 + palette index
	Piece     Piece
	Score     int
	Running   bool
	dropSpeed int
	rng       *rand.Rand
}

func NewGame(cfg Config) Game {
	board := make([][]int, cfg.BoardHeight)
	for i := range board {
		board[i] = make([]int, cfg.BoardWidth)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game := Game{
		cfg:       cfg,
		Board:     board,
		Running:   true,
		dropSpeed: cfg.FallSpeed,
		rng:       rand.New(rand.NewSource(seed)),
	}
	game.spawn()
	return game
}

// spawn replaces the active piece with a fresh random one, horizontally
// centered at the top. Shape and color are chosen independently; the color
// carries no shape meaning.
func (g *Game) spawn() {
	shape := g.cfg.Shapes[g.rng.Intn(len(g.cfg.Shapes))]
	g.Piece = Piece{
		Shape: shape,
		Color: g.rng.Intn(len(g.cfg.Colors)),
		X:     g.cfg.BoardWidth/2 - len(shape[0])/2,
	}
}

// validMove reports whether shifting the active piece by (dx, dy) cells keeps
// every occupied cell inside the side and bottom bounds and off locked board
// cells. Rows above the visible top are allowed. Every mutation runs this
// check before committing.
func (g *Game) validMove(dx, dy int) bool {
	for y, row := range g.Piece.Shape {
		for x, cell := range row {
			if cell == 0 {
				continue
			}
			newX := g.Piece.X + x + dx
			newY := g.Piece.Y + y + dy
			if newX < 0 || newX >= g.cfg.BoardWidth || newY >= g.cfg.BoardHeight {
				return false
			}
			if newY >= 0 && g.Board[newY][newX] != 0 {
				return false
			}
		}
	}
	return true
}

// Move shifts the piece one column left (dx = -1) or right (dx = +1) if the
// target position is free. Returns whether the move was committed.
func (g *Game) Move(dx int) bool {
	if !g.Running {
		return false
	}
	if !g.validMove(dx, 0) {
		return false
	}
	g.Piece.X += dx
	return true
}

// Rotate turns the piece 90 degrees clockwise. The rotation either fits at
// the current anchor or is rejected outright; no offset search.
func (g *Game) Rotate() bool {
	if !g.Running {
		return false
	}
	original := g.Piece.Shape
	g.Piece.Shape = rotateCW(original)
	if !g.validMove(0, 0) {
		g.Piece.Shape = original
		return false
	}
	return true
}

// FastDrop switches gravity to the fast speed for the current tick only; Tick
// resets it, so sustained fast drop rides on terminal key auto-repeat.
func (g *Game) FastDrop() {
	if !g.Running {
		return
	}
	g.dropSpeed = g.cfg.FastFallSpeed
}

// Tick advances gravity by one interval. When the accumulated pixel offset
// reaches a full cell the piece snaps to the boundary and moves down one row;
// if it cannot descend further from there it locks. The drop speed resets to
// normal at the end of every tick.
func (g *Game) Tick() {
	if !g.Running {
		return
	}
	g.Piece.PixelY += g.dropSpeed
	if g.Piece.PixelY >= g.cfg.CellSize {
		g.Piece.PixelY = 0
		g.Piece.Y++
		if !g.validMove(0, 1) {
			g.lockPiece()
		}
	}
	g.dropSpeed = g.cfg.FallSpeed
}

// lockPiece writes the piece's cells into the board, clears full rows, spawns
// the next piece, and runs the game-over check. Only invoked once the piece
// can no longer descend.
func (g *Game) lockPiece() {
	for y, row := range g.Piece.Shape {
		for x, cell := range row {
			if cell == 0 {
				continue
			}
			bx := g.Piece.X + x
			by := g.Piece.Y + y
			if by >= 0 && by < g.cfg.BoardHeight && bx >= 0 && bx < g.cfg.BoardWidth {
				g.Board[by][bx] = g.Piece.Color + 1
			}
		}
	}
	g.clearFullRows()
	g.spawn()
	if !g.validMove(0, 1) && g.Piece.Y == 0 {
		g.Running = false
		DebugLogf("game over, score=%d", g.Score)
	}
}

// clearFullRows removes every row with no empty cell, inserts that many empty
// rows at the top, and scores 100 points per cleared row. Zero, one, or a
// whole board of clears go through the same path.
func (g *Game) clearFullRows() int {
	kept := make([][]int, 0, g.cfg.BoardHeight)
	for _, row := range g.Board {
		full := true
		for _, cell := range row {
			if cell == 0 {
				full = false
				break
			}
		}
		if !full {
			kept = append(kept, row)
		}
	}
	cleared := g.cfg.BoardHeight - len(kept)
	if cleared == 0 {
		return 0
	}
	g.Score += cleared * 100
	board := make([][]int, 0, g.cfg.BoardHeight)
	for i := 0; i < cleared; i++ {
		board = append(board, make([]int, g.cfg.BoardWidth))
	}
	g.Board = append(board, kept...)
	return cleared
}

// Draw emits the current frame to the surface: locked cells at exact cell
// rectangles, the active piece shifted down by its sub-cell pixel offset, the
// score, and the game-over indicator once the session ends.
func (g *Game) Draw(s Surface) {
	s.Clear()
	cell := g.cfg.CellSize
	for y, row := range g.Board {
		for x, val := range row {
			if val == 0 {
				continue
			}
			s.FillRect(x*cell, y*cell, (x+1)*cell, (y+1)*cell, val-1)
		}
	}
	for y, row := range g.Piece.Shape {
		for x, c := range row {
			if c == 0 {
				continue
			}
			px := (g.Piece.X + x) * cell
			py := (g.Piece.Y+y)*cell + g.Piece.PixelY
			s.FillRect(px, py, px+cell, py+cell, g.Piece.Color)
		}
	}
	s.SetScore(g.Score)
	if !g.Running {
		s.ShowGameOver()
	}
}
