package sim

// Result summarises a Run.
type Result struct {
	Ticks int
	Score int
	Cause EndCause
	// Quit is set when the source asked to stop before the game ended.
	Quit bool
}

// Run drives the loop from src until it ends, src sends EventQuit, or
// maxTicks ticks have run. maxTicks <= 0 means no limit.
func (l *Loop) Run(src Source, maxTicks int) Result {
	for l.state == Playing {
		if maxTicks > 0 && l.tick >= maxTicks {
			break
		}
		var events []Event
		if src != nil {
			events = src.Poll(l.Snapshot())
		}
		if hasEvent(events, EventQuit) {
			return Result{Ticks: l.tick, Score: l.score, Cause: l.cause, Quit: true}
		}
		l.Step(events)
	}
	return Result{Ticks: l.tick, Score: l.score, Cause: l.cause}
}
