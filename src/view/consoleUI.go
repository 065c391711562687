package view

import (
	"bytes"
	"fmt"
	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
	"log"
	"strings"
	"time"
	"toruslife/src/universe"
)

type keyBindings struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

//ConsoleUI is an interactive terminal host for a Universe. It owns all
//frame timing and input handling; the universe is only ever touched from
//the gocui event loop, so the engine's single-threaded contract holds
//even while the animation ticker is running.
type ConsoleUI struct {
	u        *universe.Universe
	g        *gocui.Gui
	k        []keyBindings
	interval time.Duration
	density  float64
	stop     chan struct{} //non-nil while the animation ticker runs

	liveFiller string
	deadFiller string
}

func NewConsoleUI(u *universe.Universe, interval time.Duration, density float64) *ConsoleUI {

	//the run ticker needs a positive interval
	if interval <= 0 {
		interval = time.Millisecond
	}

	var err error
	t := ConsoleUI{
		u:          u,
		interval:   interval,
		density:    density,
		liveFiller: aurora.Green("█").BgBrightGreen().String(),
		deadFiller: "░",
	}

	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}

	t.g.Mouse = true
	t.k = []keyBindings{
		{gocui.KeyCtrlC,
			"^C",
			"Exit",
			t.cmdQuit,
			""},
		{'n',
			"N",
			"Next generation",
			t.cmdNextGeneration,
			""},
		{'r',
			"R",
			"Run",
			t.cmdRun,
			""},
		{'s',
			"S",
			"Stop",
			t.cmdStop,
			""},
		{'c',
			"C",
			"Clear",
			t.cmdClear,
			""},
		{'w',
			"W",
			"Random reseed",
			t.cmdRandomize,
			""},
		{'g',
			"G",
			"Glider at centre",
			t.cmdGlider,
			""},
		{gocui.MouseLeft,
			"MOUSE",
			"Toggle the cell",
			t.cmdMouseToggle,
			"battlefield"},
	}
	t.g.SetManagerFunc(t.layout)

	t.initKeyBindings(t.k)

	return &t
}

func (t *ConsoleUI) initKeyBindings(k []keyBindings) {
	for _, kb := range k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			log.Panicln(err)
		}
	}
}

//Start runs the UI main loop and blocks until the user quits.
func (t *ConsoleUI) Start() {
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
	t.g.Close()
}

//Refresh redraws every pane from the universe's current state.
func (t *ConsoleUI) Refresh() {
	t.renderField()
	t.renderConfiguration()
	t.renderStatus()
}

func (t *ConsoleUI) renderField() {

	t.g.Update(func(g *gocui.Gui) error {
		v, e := g.View("battlefield")
		if e != nil {
			return e
		}
		//the entire field is redrawn at once; the terminal driver only
		//repaints changed chars
		v.Clear()

		crop := false
		maxW, maxH := v.Size()
		width, height := t.u.Width(), t.u.Height()
		if width > maxW || height > maxH {
			crop = true
		}

		var b bytes.Buffer

		//one rune per cell, read straight out of the universe's buffer
		cells := t.u.Cells()
		for row := 0; row < height; row++ {
			//discard the rows outside the view area
			if row >= maxH {
				break
			}
			if row != 0 {
				b.WriteByte('\n')
			}
			if crop && row == (maxH-1) {
				b.WriteString(aurora.Red("The universe is larger than the viewing area").BgBlack().String())
				break
			}
			for col, c := range cells[row*width : (row+1)*width] {
				if col >= maxW {
					break
				}
				if c == universe.Alive {
					b.WriteString(t.liveFiller)
				} else {
					b.WriteString(t.deadFiller)
				}
			}
		}
		_, _ = fmt.Fprint(v, b.String())
		return nil
	})
}

func (t *ConsoleUI) renderStatus() {
	s := t.u.Status()
	mode := aurora.Colorize("waiting", aurora.BlueFg).String()
	if t.stop != nil {
		mode = aurora.Colorize("running", aurora.CyanFg).String()
	}
	t.g.Update(func(g *gocui.Gui) error {
		if v, e := t.g.View("status"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Generation", "%v", s.Generation))
			_, _ = fmt.Fprintln(v, t.renderProp("Live Cells", "%v", s.LiveCells))
			_, _ = fmt.Fprintln(v, t.renderProp("Tick time", "%v", s.TickTime.Round(time.Microsecond)))
			_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", mode))
		}
		return nil
	})
}

func (t *ConsoleUI) renderConfiguration() {
	//it needs to call Update when called from a goroutine
	t.g.Update(func(g *gocui.Gui) error {
		if v, e := g.View("configuration"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Dimension", "%v x %v", t.u.Width(), t.u.Height()))
			_, _ = fmt.Fprintln(v, t.renderProp("Interval", "%v", t.interval))
			_, _ = fmt.Fprintln(v, t.renderProp("Density", "%v", t.density))
		}
		return nil
	})
}

func (t *ConsoleUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {

	maxX, maxY := g.Size()
	leftColumnWidth := 28
	minWindowHeight := 20

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
		_ = g.DeleteView("configuration")
		_ = g.DeleteView("status")
		_ = g.DeleteView("battlefield")
		return nil

	} else {
		if _, err := t.headerLayout(g, 3, "Game of Life on a torus"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
	}

	if v, err := g.SetView("configuration", 0, 3, leftColumnWidth, 3+(maxY-5-3)/2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
		t.renderConfiguration()
	}

	if v, err := g.SetView("status", 0, 3+(maxY-5-3)/2+1, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		t.renderStatus()
	}

	if v, err := g.SetView("battlefield", leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Battle Field"
		v.Frame = true
		t.renderField()
	} else {
		t.renderField()
	}

	if v, err := g.SetView("help", -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		b := bytes.Buffer{}
		b.WriteString("KEYBINDINGS: ")
		for i, k := range t.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	return nil
}

func (t *ConsoleUI) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView("header", -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		if maxX < len(text) {
			panic(fmt.Sprintf("Terminal width is too small: %v", maxX))
		}
		_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2+1)+strings.Repeat(" ", (maxX-len(text))/2)+text)
	}
	return
}

//animate drives the universe at the configured interval until stop closes.
//The tick itself is queued onto the gocui event loop, which serialises it
//with every key and mouse handler.
func (t *ConsoleUI) animate(stop <-chan struct{}) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			t.g.Update(func(g *gocui.Gui) error {
				t.u.Tick()
				t.Refresh()
				return nil
			})
		}
	}
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdNextGeneration(_ *gocui.View) error {
	t.u.Tick()
	t.Refresh()
	return nil
}

func (t *ConsoleUI) cmdRun(_ *gocui.View) error {
	if t.stop != nil {
		return nil
	}
	t.stop = make(chan struct{})
	go t.animate(t.stop)
	t.renderStatus()
	return nil
}

func (t *ConsoleUI) cmdStop(_ *gocui.View) error {
	if t.stop == nil {
		return nil
	}
	close(t.stop)
	t.stop = nil
	t.renderStatus()
	return nil
}

func (t *ConsoleUI) cmdClear(_ *gocui.View) error {
	t.u.Clear()
	t.Refresh()
	return nil
}

func (t *ConsoleUI) cmdRandomize(_ *gocui.View) error {
	t.u.Randomize(t.density)
	t.Refresh()
	return nil
}

func (t *ConsoleUI) cmdGlider(_ *gocui.View) error {
	//settling can only fail on an empty grid
	_ = t.u.SettlePattern(universe.Glider, t.u.Height()/2, t.u.Width()/2)
	t.Refresh()
	return nil
}

func (t *ConsoleUI) cmdMouseToggle(v *gocui.View) error {
	cx, cy := v.Cursor()
	//clicks outside the grid are ignored, the engine rejects them
	_ = t.u.ToggleCell(cy, cx)
	t.Refresh()
	return nil
}
