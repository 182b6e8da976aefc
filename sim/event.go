package sim

// Event is a discrete input delivered to the loop once per tick.
type Event uint8

const (
	EventJump Event = iota + 1
	// EventQuit stops a Run; Step ignores it.
	EventQuit
)

func (e Event) String() string {
	switch e {
	case EventJump:
		return "jump"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Source delivers the events for the next tick. It sees the state the tick
// will start from.
type Source interface {
	Poll(s Snapshot) []Event
}

// SourceFunc adapts a function to Source.
type SourceFunc func(s Snapshot) []Event

func (f SourceFunc) Poll(s Snapshot) []Event {
	return f(s)
}

// Schedule replays events keyed by the number of ticks already run, so
// Schedule{0: {EventJump}} jumps before the first tick.
type Schedule map[int][]Event

func (s Schedule) Poll(snap Snapshot) []Event {
	return s[snap.Tick]
}

func hasEvent(events []Event, want Event) bool {
	for _, e := range events {
		if e == want {
			return true
		}
	}
	return false
}
