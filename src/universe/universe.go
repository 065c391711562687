//Package universe implements a Game of Life automaton on a fixed-size
//toroidal grid. The Universe owns the cell buffer and the generation-step
//algorithm; rendering, input and frame timing belong to the host driving it.
package universe

import (
	"bytes"
	"github.com/pkg/errors"
	"math/rand"
	"time"
)

//Cell is the state of a single grid position.
//Dead is 0 and Alive is 1 so neighbour counting can sum cells directly.
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

//Coord addresses a single cell, row-major: Row before Col
type Coord struct {
	Row int
	Col int
}

//Status represents the universe's counters at a concrete moment
type Status struct {
	Generation int
	LiveCells  int
	TickTime   time.Duration
}

//Universe owns a fixed-size toroidal grid of cells plus the transition
//algorithm. The grid is a single flat row-major buffer: the cell at
//(row, col) lives at index row*width+col. Two equally sized buffers are
//kept so a tick can read one frozen generation while writing the next.
//A Universe is synchronous and not safe for concurrent use.
type Universe struct {
	width   int
	height  int
	cells   []Cell //current generation
	next    []Cell //scratch buffer for the upcoming generation
	workers int

	generation int
	alive      int
	tickTime   time.Duration
}

//New creates a universe seeded with the default deterministic pattern:
//the cell at linear index i starts Alive when i is divisible by 2 or by 7.
//The seeding is arbitrary but pinned, so identical dimensions always give
//identical universes. Negative dimensions are treated as zero.
func New(width, height int) *Universe {
	u := NewEmpty(width, height)
	for i := range u.cells {
		if i%2 == 0 || i%7 == 0 {
			u.cells[i] = Alive
			u.alive++
		}
	}
	return u
}

//NewEmpty creates a universe with every cell Dead.
//Negative dimensions are treated as zero.
func NewEmpty(width, height int) *Universe {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Universe{
		width:   width,
		height:  height,
		cells:   make([]Cell, width*height),
		next:    make([]Cell, width*height),
		workers: 1,
	}
}

//Width returns the number of grid columns.
func (u *Universe) Width() int {
	return u.width
}

//Height returns the number of grid rows.
func (u *Universe) Height() int {
	return u.height
}

//Index returns the position of (row, col) inside the buffer returned by
//Cells. The caller must guarantee row < Height() and col < Width();
//wraparound applies to neighbour lookups only, never here.
func (u *Universe) Index(row, col int) int {
	return row*u.width + col
}

//Cells exposes the current generation as a read-only view into the
//universe's own memory: length Width()*Height(), row-major, Dead=0/Alive=1.
//The view is stable across queries but is only valid until the next
//mutating call (Tick, ToggleCell, SetCells, SettlePattern, Randomize,
//Clear, SetWidth, SetHeight); after one of those it must be re-acquired.
//Callers must not write through it.
func (u *Universe) Cells() []Cell {
	return u.cells
}

//Population returns the number of Alive cells in the current generation.
func (u *Universe) Population() int {
	return u.alive
}

//Generation returns how many ticks this universe has advanced.
func (u *Universe) Generation() int {
	return u.generation
}

//Status returns a snapshot of the universe's counters.
func (u *Universe) Status() Status {
	return Status{
		Generation: u.generation,
		LiveCells:  u.alive,
		TickTime:   u.tickTime,
	}
}

//ToggleCell flips the cell at (row, col) between Alive and Dead.
//Coordinates out of range are rejected with an error and never wrap;
//every coordinate-taking mutation on Universe shares this policy.
func (u *Universe) ToggleCell(row, col int) error {
	if err := u.checkBounds(row, col); err != nil {
		return err
	}
	i := u.Index(row, col)
	if u.cells[i] == Alive {
		u.cells[i] = Dead
		u.alive--
	} else {
		u.cells[i] = Alive
		u.alive++
	}
	return nil
}

//SetCells sets every listed cell Alive. The whole batch is validated up
//front: one out-of-range coordinate rejects the call and leaves the
//universe untouched.
func (u *Universe) SetCells(coords []Coord) error {
	for _, c := range coords {
		if err := u.checkBounds(c.Row, c.Col); err != nil {
			return err
		}
	}
	for _, c := range coords {
		i := u.Index(c.Row, c.Col)
		if u.cells[i] == Dead {
			u.cells[i] = Alive
			u.alive++
		}
	}
	return nil
}

//Randomize reseeds the whole grid, making each cell Alive independently
//with probability density, and restarts the counters. Density at or below
//0 clears the grid, at or above 1 fills it.
func (u *Universe) Randomize(density float64) {
	u.alive = 0
	for i := range u.cells {
		if rand.Float64() < density {
			u.cells[i] = Alive
			u.alive++
		} else {
			u.cells[i] = Dead
		}
	}
	u.generation = 0
	u.tickTime = 0
}

//Clear kills every cell and restarts the counters.
func (u *Universe) Clear() {
	for i := range u.cells {
		u.cells[i] = Dead
	}
	u.generation = 0
	u.alive = 0
	u.tickTime = 0
}

//SetWidth resizes the grid to width x Height() cells, all Dead. The buffer
//is replaced wholesale: previously obtained views are invalid and the
//counters restart. Negative width is treated as zero.
func (u *Universe) SetWidth(width int) {
	u.resize(width, u.height)
}

//SetHeight resizes the grid to Width() x height cells, all Dead. Same
//contract as SetWidth.
func (u *Universe) SetHeight(height int) {
	u.resize(u.width, height)
}

//SetWorkers sets how many goroutines a tick may shard the rows across.
//Values below 2 keep the serial path. The outcome of a tick is identical
//for every worker count.
func (u *Universe) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	u.workers = n
}

//String renders the grid as text, one rune per cell and one line per row.
func (u *Universe) String() string {
	var b bytes.Buffer
	for row := 0; row < u.height; row++ {
		for col := 0; col < u.width; col++ {
			if u.cells[u.Index(row, col)] == Alive {
				b.WriteRune('◼')
			} else {
				b.WriteRune('◻')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (u *Universe) resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	u.width = width
	u.height = height
	u.cells = make([]Cell, width*height)
	u.next = make([]Cell, width*height)
	u.generation = 0
	u.alive = 0
	u.tickTime = 0
}

func (u *Universe) checkBounds(row, col int) error {
	if row < 0 || row >= u.height {
		return errors.Errorf("row %d out of range, universe height is %d", row, u.height)
	}
	if col < 0 || col >= u.width {
		return errors.Errorf("col %d out of range, universe width is %d", col, u.width)
	}
	return nil
}
