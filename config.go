package main

import "time"

// Config carries every fixed parameter of a game session: board geometry,
// timing, drop speeds, and the shape/color tables. It is built once at startup
// and never mutated; the controller reads it instead of package globals.
type Config struct {
	BoardWidth    int
	BoardHeight   int
	CellSize      int           // pixel height and width of one board cell
	TickInterval  time.Duration // delay between gravity ticks
	FallSpeed     int           // pixels per tick
	FastFallSpeed int           // pixels per tick while Down is active
	Shapes        [][][]int     // 0/1 occupancy matrices
	Colors        []string      // palette names, indexed by Piece.Color
	Seed          int64         // 0 means seed from the clock
}

// DefaultConfig returns the fixed game parameters: a 10x20 board of 30px
// cells, a 10ms tick, and a 1px normal / 100px fast drop.
func DefaultConfig() Config {
	return Config{
		BoardWidth:    10,
		BoardHeight:   20,
		CellSize:      30,
		TickInterval:  10 * time.Millisecond,
		FallSpeed:     1,
		FastFallSpeed: 100,
		Shapes:        tetrominoes,
		Colors:        palette,
		Seed:          0,
	}
}

var tetrominoes = [][][]int{
	{{1, 1, 1, 1}},         // I
	{{1, 1}, {1, 1}},       // O
	{{0, 1, 0}, {1, 1, 1}}, // T
	{{1, 1, 0}, {0, 1, 1}}, // S
	{{0, 1, 1}, {1, 1, 0}}, // Z
	{{1, 1, 1}, {1, 0, 0}}, // L
	{{1, 1, 1}, {0, 0, 1}}, // J
}

var palette = []string{"cyan", "yellow", "purple", "green", "red", "orange", "blue"}
