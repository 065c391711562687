package main

import (
	"github.com/integrii/flaggy"
	"strings"
	"time"
	"toruslife/src/universe"
	"toruslife/src/view"
)

type EnvOptions struct {
	width       int
	height      int
	interval    time.Duration
	maxSteps    int
	workers     int
	interactive bool
	randomData  bool
	density     float64
	pattern     string
}

func main() {
	eo := initOptions()

	u := seed(eo)
	u.SetWorkers(eo.workers)

	if eo.interactive {
		v := view.NewConsoleUI(u, eo.interval, eo.density)
		v.Refresh()
		v.Start()
	} else {
		out := view.NewConsoleOut(u)
		out.Begin(eo.interval, eo.maxSteps)
		for step := 0; step < eo.maxSteps; step++ {
			u.Tick()
			out.Progress()
			if u.Population() == 0 {
				break
			}
			if eo.interval > 0 {
				time.Sleep(eo.interval)
			}
		}
		out.Finish()
	}
}

func seed(eo *EnvOptions) *universe.Universe {
	switch {
	case eo.pattern != "":
		p, _ := universe.LookupPattern(eo.pattern)
		u := universe.NewEmpty(eo.width, eo.height)
		if err := u.SettlePattern(p, eo.height/2, eo.width/2); err != nil {
			flaggy.ShowHelpAndExit(err.Error())
		}
		return u
	case eo.randomData:
		u := universe.NewEmpty(eo.width, eo.height)
		u.Randomize(eo.density)
		return u
	default:
		return universe.New(eo.width, eo.height)
	}
}

func initOptions() (eo *EnvOptions) {

	eo = &EnvOptions{
		width:    64,
		height:   64,
		interval: 100 * time.Millisecond,
		maxSteps: 1000,
		workers:  1,
		density:  0.5,
	}
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&eo.width, "x", "width", "Width of a simulation field")
	flaggy.Int(&eo.height, "y", "height", "Height of a simulation field")
	flaggy.Duration(&eo.interval, "i", "interval", "Simulation speed (interval between the steps) in format the number with 'ms' suffix, for example 150ms")
	flaggy.Int(&eo.maxSteps, "s", "maxSteps", "Limit the simulation to maxSteps")
	flaggy.Int(&eo.workers, "w", "workers", "Number of worker goroutines per generation")
	flaggy.Bool(&eo.interactive, "n", "interactive", "Start interactive mode")
	flaggy.Bool(&eo.randomData, "r", "random", "Settle with random data")
	flaggy.Float64(&eo.density, "d", "density", "Fraction of live cells for a random settle, 0..1")
	flaggy.String(&eo.pattern, "p", "pattern", "Settle a stock pattern ["+strings.Join(universe.PatternNames(), "|")+"]")

	flaggy.Parse()

	if eo.pattern != "" {
		if _, ok := universe.LookupPattern(eo.pattern); !ok {
			flaggy.ShowHelpAndExit("unknown pattern")
		}
	}

	if !eo.interactive {
		flaggy.ShowHelp("")
	}

	return
}
