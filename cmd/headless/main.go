// Command headless runs the simulation without a window, flown either by an
// autopilot script or by a fixed jump schedule, and logs how each run ended.
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/milk9111/flappy/assets"
	"github.com/milk9111/flappy/autopilot"
	"github.com/milk9111/flappy/prefabs"
	"github.com/milk9111/flappy/sim"
)

func main() {
	seed := flag.Int64("seed", 1, "seed of the first run")
	runs := flag.Int("runs", 1, "number of runs; run i uses seed+i")
	script := flag.String("script", autopilot.DefaultScript, "autopilot script in prefabs/scripts/")
	jumps := flag.String("jumps", "", "comma separated ticks to jump on instead of running a script")
	maxTicks := flag.Int("max-ticks", 10000, "stop a run after this many ticks (0 for no limit)")
	trace := flag.Bool("trace", false, "log the bird every tick")
	flag.Parse()

	set, err := prefabs.LoadSet()
	if err != nil {
		log.Fatal(err)
	}
	imgs := assets.BuildImages(set)

	var schedule sim.Schedule
	if *jumps != "" {
		if schedule, err = parseSchedule(*jumps); err != nil {
			log.Fatal(err)
		}
	}

	total := 0
	for i := 0; i < *runs; i++ {
		runSeed := *seed + int64(i)
		loop, err := sim.NewLoop(sim.Config{
			Tuning:   set.Tuning(),
			Random:   sim.NewRandom(runSeed),
			BirdMask: imgs.BirdMask,
			PipeMask: imgs.PipeMask,
		})
		if err != nil {
			log.Fatal(err)
		}

		var src sim.Source = schedule
		if schedule == nil {
			pilot, err := autopilot.Load(*script)
			if err != nil {
				log.Fatal(err)
			}
			src = pilot
		}
		if *trace {
			src = traced(src)
		}

		res := loop.Run(src, *maxTicks)
		total += res.Score
		log.Printf("headless: seed=%d ticks=%d score=%d cause=%s quit=%t", runSeed, res.Ticks, res.Score, res.Cause, res.Quit)
	}

	if *runs > 1 {
		log.Printf("headless: %d runs, mean score %.2f", *runs, float64(total)/float64(*runs))
	}
}

func parseSchedule(s string) (sim.Schedule, error) {
	schedule := sim.Schedule{}
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		tick, err := strconv.Atoi(field)
		if err != nil || tick < 0 {
			return nil, fmt.Errorf("headless: bad jump tick %q", field)
		}
		schedule[tick] = append(schedule[tick], sim.EventJump)
	}
	return schedule, nil
}

func traced(src sim.Source) sim.Source {
	return sim.SourceFunc(func(s sim.Snapshot) []sim.Event {
		events := src.Poll(s)
		log.Printf("tick=%d y=%.2f vy=%.1f tilt=%.0f pipes=%d score=%d events=%v",
			s.Tick, s.Bird.Y, s.Bird.VelocityY, s.Bird.Tilt, len(s.Pipes), s.Score, events)
		return events
	})
}
