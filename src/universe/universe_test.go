package universe

import (
	"testing"
)

func mustSetCells(t *testing.T, u *Universe, coords []Coord) {
	t.Helper()
	if err := u.SetCells(coords); err != nil {
		t.Fatalf("SetCells: %v", err)
	}
}

func TestNewDefaultSeed(t *testing.T) {
	u := New(8, 8)
	want := 0
	for i, c := range u.Cells() {
		alive := i%2 == 0 || i%7 == 0
		if alive {
			want++
		}
		if alive != (c == Alive) {
			t.Fatalf("cell %v: got %v, the default seed fills indexes divisible by 2 or 7", i, c)
		}
	}
	if u.Population() != want {
		t.Errorf("Population() = %v, want %v", u.Population(), want)
	}
	if u.Generation() != 0 {
		t.Errorf("Generation() = %v on a fresh universe", u.Generation())
	}
}

func TestNewEmpty(t *testing.T) {
	u := NewEmpty(5, 3)
	if u.Width() != 5 || u.Height() != 3 {
		t.Fatalf("dimensions = %v x %v, want 5 x 3", u.Width(), u.Height())
	}
	if len(u.Cells()) != 15 {
		t.Fatalf("len(Cells()) = %v, want 15", len(u.Cells()))
	}
	if u.Population() != 0 {
		t.Errorf("Population() = %v on an empty universe", u.Population())
	}

	//negative dimensions collapse to zero instead of panicking on make
	n := NewEmpty(-3, 5)
	if n.Width() != 0 || n.Height() != 5 || len(n.Cells()) != 0 {
		t.Errorf("NewEmpty(-3, 5) = %v x %v with %v cells, want an empty 0 x 5",
			n.Width(), n.Height(), len(n.Cells()))
	}
}

func TestIndexRowMajor(t *testing.T) {
	u := NewEmpty(7, 3)
	if i := u.Index(0, 0); i != 0 {
		t.Errorf("Index(0, 0) = %v", i)
	}
	if i := u.Index(1, 0); i != 7 {
		t.Errorf("Index(1, 0) = %v, want 7", i)
	}
	if i := u.Index(2, 6); i != 20 {
		t.Errorf("Index(2, 6) = %v, want 20", i)
	}
}

func TestToggleCell(t *testing.T) {
	u := New(4, 4)
	before := u.String()
	pop := u.Population()

	//index 5 is odd and not divisible by 7, so (1,1) starts Dead
	if err := u.ToggleCell(1, 1); err != nil {
		t.Fatalf("ToggleCell: %v", err)
	}
	if u.Cells()[u.Index(1, 1)] != Alive {
		t.Fatal("the toggled cell is not Alive")
	}
	if u.Population() != pop+1 {
		t.Fatalf("Population() = %v after one toggle, want %v", u.Population(), pop+1)
	}

	//a second toggle restores the whole universe exactly
	if err := u.ToggleCell(1, 1); err != nil {
		t.Fatalf("ToggleCell: %v", err)
	}
	if u.String() != before {
		t.Fatal("a toggle pair changed cells it did not address")
	}
	if u.Population() != pop {
		t.Fatalf("Population() = %v after the toggle pair, want %v", u.Population(), pop)
	}
}

func TestToggleCellOutOfRange(t *testing.T) {
	u := NewEmpty(4, 4)
	bad := []Coord{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {100, 100}}
	for _, c := range bad {
		if err := u.ToggleCell(c.Row, c.Col); err == nil {
			t.Errorf("ToggleCell(%v, %v) accepted an out of range coordinate", c.Row, c.Col)
		}
	}
	if u.Population() != 0 {
		t.Errorf("rejected toggles changed the universe, Population() = %v", u.Population())
	}
}

func TestSetCells(t *testing.T) {
	u := NewEmpty(5, 5)
	mustSetCells(t, u, []Coord{{0, 0}, {2, 3}, {4, 4}, {2, 3}}) //duplicate on purpose
	if u.Population() != 3 {
		t.Fatalf("Population() = %v, want 3", u.Population())
	}
	for _, c := range []Coord{{0, 0}, {2, 3}, {4, 4}} {
		if u.Cells()[u.Index(c.Row, c.Col)] != Alive {
			t.Errorf("cell (%v, %v) is not Alive", c.Row, c.Col)
		}
	}
}

func TestSetCellsRejectsWholeBatch(t *testing.T) {
	u := NewEmpty(5, 5)
	mustSetCells(t, u, []Coord{{1, 1}})

	err := u.SetCells([]Coord{{0, 0}, {5, 0}})
	if err == nil {
		t.Fatal("a batch with an out of range coordinate was accepted")
	}
	if u.Cells()[u.Index(0, 0)] != Dead {
		t.Error("part of a rejected batch was applied")
	}
	if u.Population() != 1 {
		t.Errorf("Population() = %v, want the pre-batch 1", u.Population())
	}
}

func TestCellsViewIsStable(t *testing.T) {
	u := New(6, 6)
	a := u.Cells()
	_ = u.String()
	_ = u.Population()
	b := u.Cells()
	if len(a) != len(b) || &a[0] != &b[0] {
		t.Fatal("queries must not reallocate the cell buffer")
	}
}

func TestRandomize(t *testing.T) {
	u := NewEmpty(10, 10)
	u.Tick()

	u.Randomize(1)
	if u.Population() != 100 {
		t.Fatalf("Population() = %v after density 1, want 100", u.Population())
	}
	if u.Generation() != 0 {
		t.Errorf("Generation() = %v, a reseed restarts the counters", u.Generation())
	}

	u.Randomize(0.5)
	count := 0
	for _, c := range u.Cells() {
		if c == Alive {
			count++
		}
	}
	if u.Population() != count {
		t.Errorf("Population() = %v, the grid holds %v live cells", u.Population(), count)
	}

	u.Randomize(0)
	if u.Population() != 0 {
		t.Fatalf("Population() = %v after density 0, want 0", u.Population())
	}
}

func TestClear(t *testing.T) {
	u := New(5, 5)
	u.Tick()
	u.Clear()
	if u.Population() != 0 || u.Generation() != 0 {
		t.Fatalf("Clear left Population() = %v, Generation() = %v", u.Population(), u.Generation())
	}
	for i, c := range u.Cells() {
		if c != Dead {
			t.Fatalf("cell %v survived Clear", i)
		}
	}
	if st := u.Status(); st.TickTime != 0 {
		t.Errorf("TickTime = %v after Clear, want 0", st.TickTime)
	}
}

func TestResizeDropsState(t *testing.T) {
	u := New(6, 6)
	u.Tick()

	u.SetWidth(3)
	if u.Width() != 3 || u.Height() != 6 {
		t.Fatalf("dimensions = %v x %v after SetWidth(3), want 3 x 6", u.Width(), u.Height())
	}
	if len(u.Cells()) != 18 {
		t.Fatalf("len(Cells()) = %v, want 18", len(u.Cells()))
	}
	if u.Population() != 0 || u.Generation() != 0 {
		t.Errorf("resize kept Population() = %v, Generation() = %v", u.Population(), u.Generation())
	}
	for i, c := range u.Cells() {
		if c != Dead {
			t.Fatalf("cell %v survived the resize", i)
		}
	}

	u.SetHeight(-2) //collapses to zero like the constructors
	if u.Height() != 0 || len(u.Cells()) != 0 {
		t.Errorf("SetHeight(-2) left height %v with %v cells", u.Height(), len(u.Cells()))
	}
}

func TestString(t *testing.T) {
	u := NewEmpty(3, 2)
	if err := u.ToggleCell(0, 1); err != nil {
		t.Fatalf("ToggleCell: %v", err)
	}
	if err := u.ToggleCell(1, 2); err != nil {
		t.Fatalf("ToggleCell: %v", err)
	}
	want := "◻◼◻\n◻◻◼\n"
	if got := u.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestStatusSnapshot(t *testing.T) {
	u := New(6, 6)
	if st := u.Status(); st.Generation != 0 || st.LiveCells != u.Population() || st.TickTime != 0 {
		t.Fatalf("fresh Status() = %+v", st)
	}
	u.Tick()
	st := u.Status()
	if st.Generation != u.Generation() || st.LiveCells != u.Population() {
		t.Fatalf("Status() = %+v does not match Generation() %v and Population() %v",
			st, u.Generation(), u.Population())
	}
	if st.TickTime <= 0 {
		t.Errorf("TickTime = %v after a tick", st.TickTime)
	}
}

func TestZeroAreaUniverse(t *testing.T) {
	for _, d := range []struct{ w, h int }{{0, 0}, {5, 0}, {0, 5}} {
		u := NewEmpty(d.w, d.h)
		if err := u.ToggleCell(0, 0); err == nil {
			t.Errorf("%v x %v: ToggleCell(0, 0) accepted a cell that does not exist", d.w, d.h)
		}
		if err := u.SetCells([]Coord{{0, 0}}); err == nil {
			t.Errorf("%v x %v: SetCells accepted a cell that does not exist", d.w, d.h)
		}
		u.Tick() //nothing to compute, the generation still advances
		if u.Generation() != 1 {
			t.Errorf("%v x %v: Generation() = %v after a tick, want 1", d.w, d.h, u.Generation())
		}
		if u.Population() != 0 {
			t.Errorf("%v x %v: Population() = %v", d.w, d.h, u.Population())
		}
	}
	if s := NewEmpty(0, 0).String(); s != "" {
		t.Errorf("String() = %q on a 0 x 0 universe", s)
	}
}
