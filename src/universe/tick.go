package universe

import (
	"golang.org/x/sync/errgroup"
	"time"
)

//nextState applies the classic B3/S23 rule to one cell given its live
//neighbour count. This is the only rule the engine supports.
func nextState(c Cell, liveNeighbors uint8) Cell {
	switch {
	case c == Alive && liveNeighbors < 2:
		return Dead //underpopulation
	case c == Alive && liveNeighbors > 3:
		return Dead //overpopulation
	case c == Dead && liveNeighbors == 3:
		return Alive //reproduction
	default:
		//a live cell with 2 or 3 neighbours survives, a dead cell stays dead
		return c
	}
}

//liveNeighbors counts the Alive cells among the 8 positions at
//(row±1, col±1), with row arithmetic modulo the height and column
//arithmetic modulo the width: the grid is a torus and has no edges.
//On 1-wide or 1-high grids the wrapped positions can land on the cell
//itself, so a cell may count itself.
func (u *Universe) liveNeighbors(row, col int) uint8 {
	up := (row - 1 + u.height) % u.height
	down := (row + 1) % u.height
	left := (col - 1 + u.width) % u.width
	right := (col + 1) % u.width

	//straight sum over the 8 positions, no per-neighbour branch:
	//Alive is 1 and Dead is 0
	return uint8(u.cells[up*u.width+left]) +
		uint8(u.cells[up*u.width+col]) +
		uint8(u.cells[up*u.width+right]) +
		uint8(u.cells[row*u.width+left]) +
		uint8(u.cells[row*u.width+right]) +
		uint8(u.cells[down*u.width+left]) +
		uint8(u.cells[down*u.width+col]) +
		uint8(u.cells[down*u.width+right])
}

//Tick advances the universe by one generation. Every cell's next state is
//computed from the frozen current buffer into the scratch buffer, which is
//then swapped in, so no neighbour count ever observes a half-advanced grid
//and the result does not depend on visitation order. Tick blocks until the
//generation is complete and is not reentrant. On an empty grid it only
//advances the generation counter.
func (u *Universe) Tick() {
	start := time.Now()
	if u.width > 0 && u.height > 0 {
		if u.workers > 1 {
			u.alive = u.stepSharded()
		} else {
			u.alive = u.stepRows(0, u.height)
		}
		u.cells, u.next = u.next, u.cells
	}
	u.generation++
	u.tickTime = time.Since(start)
}

//stepRows computes rows [from, to) of the next generation and returns how
//many of those cells come out Alive.
func (u *Universe) stepRows(from, to int) int {
	live := 0
	for row := from; row < to; row++ {
		for col := 0; col < u.width; col++ {
			i := row*u.width + col
			c := nextState(u.cells[i], u.liveNeighbors(row, col))
			u.next[i] = c
			if c == Alive {
				live++
			}
		}
	}
	return live
}

//stepSharded splits the row range across the configured workers. Every
//shard reads only the frozen current buffer and writes only its own rows
//of the scratch buffer, so shards share no mutable state; per-shard live
//counts are summed once all shards are done.
func (u *Universe) stepSharded() int {
	workers := u.workers
	if workers > u.height {
		workers = u.height
	}
	rowsPerWorker := (u.height + workers - 1) / workers

	var g errgroup.Group
	counts := make([]int, workers)
	for w := 0; w < workers; w++ {
		from := w * rowsPerWorker
		to := from + rowsPerWorker
		if from >= u.height {
			break
		}
		if to > u.height {
			to = u.height
		}
		g.Go(func() error {
			counts[w] = u.stepRows(from, to)
			return nil
		})
	}
	_ = g.Wait() //shards never fail

	live := 0
	for _, c := range counts {
		live += c
	}
	return live
}
