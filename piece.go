package main

// Piece is the active falling tetromino. Shape is a rectangular 0/1 matrix of
// occupied cells relative to the (X, Y) anchor in board coordinates. PixelY is
// the sub-cell vertical offset that animates the fall between row advances; it
// stays in [0, cellSize) and resets to 0 whenever Y increments.
type Piece struct {
	Shape  [][]int
	Color  int // palette index, fixed at spawn
	X      int
	Y      int
	PixelY int
}

// rotateCW returns the 90-degree clockwise rotation of shape as a fresh
// matrix: the rows reversed, then transposed, so an r x c shape becomes c x r.
// The input is left untouched, which lets the caller revert a rejected
// rotation by reassigning the saved shape.
func rotateCW(shape [][]int) [][]int {
	rows := len(shape)
	cols := len(shape[0])
	rotated := make([][]int, cols)
	for y := 0; y < cols; y++ {
		rotated[y] = make([]int, rows)
		for x := 0; x < rows; x++ {
			rotated[y][x] = shape[rows-1-x][y]
		}
	}
	return rotated
}
