// ABOUTME: Headless simulation mode: steps the driver as fast as possible, serving automatically, until a winner.
// ABOUTME: Prints a one-line summary with the final score and a state digest for comparing seeded runs.
package main

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/2389-research/pong/config"
	"github.com/2389-research/pong/driver"
	"github.com/2389-research/pong/engine"
)

// runHeadless plays until the match is over, maxSteps steps have run (0 means
// no limit), or ctx is done. Nobody moves the player's paddle, so it stays
// centered. The final snapshot is returned along with ctx.Err() when
// interrupted.
func runHeadless(ctx context.Context, w io.Writer, settings config.Settings, maxSteps int, verbose bool) (engine.Snapshot, error) {
	var handler engine.EventHandler
	if verbose {
		handler = logEvent
	}

	match, err := engine.NewMatch(settings.Engine, matchOptions(settings, handler)...)
	if err != nil {
		return engine.Snapshot{}, err
	}
	d := driver.New(match)

	log.Printf("component=cli action=headless_started match_id=%s max_steps=%d", match.ID(), maxSteps)

	snap := match.Snapshot()
	steps := 0
	for snap.State != engine.StateOver && (maxSteps == 0 || steps < maxSteps) {
		if err := ctx.Err(); err != nil {
			printSummary(w, snap, steps)
			return snap, err
		}
		if snap.State == engine.StateReady {
			d.Submit(driver.Activate{})
		}
		snap = d.Step()
		steps++
	}

	printSummary(w, snap, steps)
	return snap, nil
}

// logEvent writes a match event in key=value form.
func logEvent(evt engine.Event) {
	log.Printf("component=match event=%s id=%s tick=%d data=%v", evt.Type, evt.ID, evt.Tick, evt.Data)
}

// printSummary writes the outcome of a headless run.
func printSummary(w io.Writer, s engine.Snapshot, steps int) {
	winner := s.Winner
	if winner == "" {
		winner = "none"
	}
	fmt.Fprintf(w, "state=%s winner=%q score=%d-%d ticks=%d steps=%d digest=%016x\n",
		s.State, winner, s.PlayerScore, s.ComputerScore, s.Tick, steps, s.Digest())
}
