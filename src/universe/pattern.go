package universe

import (
	"github.com/pkg/errors"
	"sort"
)

//Pattern is a reusable arrangement of live cells, stored as offsets from an
//origin cell so the same shape can be settled anywhere on the grid.
type Pattern struct {
	Name  string  //pattern name
	Descr string  //pattern descr
	Cells []Coord //offsets relative to the origin
}

var (
	//Glider is the smallest spaceship; this orientation drifts one cell
	//down and right every four generations
	Glider = Pattern{
		Name:  "glider",
		Descr: "the smallest spaceship, drifts down-right",
		Cells: []Coord{{-1, 0}, {0, 1}, {1, -1}, {1, 0}, {1, 1}},
	}

	//Blinker flips between a horizontal and a vertical bar with period 2
	Blinker = Pattern{
		Name:  "blinker",
		Descr: "period-2 oscillator",
		Cells: []Coord{{0, -1}, {0, 0}, {0, 1}},
	}

	//Block is the 2x2 still life
	Block = Pattern{
		Name:  "block",
		Descr: "2x2 still life, unchanged by the rule",
		Cells: []Coord{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	}
)

var stock = map[string]Pattern{
	Glider.Name:  Glider,
	Blinker.Name: Blinker,
	Block.Name:   Block,
}

//LookupPattern returns the stock pattern registered under name.
func LookupPattern(name string) (Pattern, bool) {
	p, ok := stock[name]
	return p, ok
}

//PatternNames returns the stock pattern names, sorted.
func PatternNames() []string {
	names := make([]string, 0, len(stock))
	for name := range stock {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

//SettlePattern stamps p's cells onto the grid with the pattern origin at
//(row, col). The origin follows the usual bounds policy and is rejected
//when out of range; the offsets around it wrap toroidally, the same
//adjacency the tick rule uses, so a pattern settled at an edge continues
//across it. Cells the pattern does not name are left as they are.
func (u *Universe) SettlePattern(p Pattern, row, col int) error {
	if err := u.checkBounds(row, col); err != nil {
		return errors.Wrapf(err, "settle %s", p.Name)
	}
	for _, d := range p.Cells {
		r := ((row+d.Row)%u.height + u.height) % u.height
		c := ((col+d.Col)%u.width + u.width) % u.width
		i := u.Index(r, c)
		if u.cells[i] == Dead {
			u.cells[i] = Alive
			u.alive++
		}
	}
	return nil
}
