package view

import (
	"fmt"
	"sort"
	"time"
	"toruslife/src/universe"
)

//ConsoleOut is a plain stdout reporter for headless runs.
type ConsoleOut struct {
	u         *universe.Universe
	startTime time.Time
}

func NewConsoleOut(u *universe.Universe) *ConsoleOut {
	return &ConsoleOut{u: u}
}

//Begin prints the run configuration and starts the wall clock.
func (c *ConsoleOut) Begin(interval time.Duration, maxSteps int) {
	fmt.Println("Running configuration:")
	fmt.Printf("  Dimension: %v x %v\n", c.u.Width(), c.u.Height())
	fmt.Printf("  Interval: %v\n", interval)
	fmt.Printf("  Max generations: %v steps\n", maxSteps)
	c.startTime = time.Now()
	fmt.Println("\nSimulation started...")
}

//Progress reports every tenth generation.
func (c *ConsoleOut) Progress() {
	if g := c.u.Generation(); g%10 == 0 {
		fmt.Printf("  Generations done: %v\n", g)
	}
}

//Finish prints the run summary.
func (c *ConsoleOut) Finish() {
	totalTime := time.Since(c.startTime).Round(time.Millisecond)
	resultData := map[string]interface{}{
		"Last generation": c.u.Generation(),
		"Total time":      totalTime,
		"Live cells":      c.u.Population(),
	}
	fmt.Println("\nFinished:")
	c.printHashData(resultData)
}

func (c *ConsoleOut) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		fmt.Printf("  %s: %v\n", propName, d[propName])
	}
}
