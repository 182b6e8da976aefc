package sim

func solidMask(w, h int) *Mask {
	m := NewMask(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Set(x, y, true)
		}
	}
	return m
}

// fixedRandom always draws the same value, wrapped into range.
type fixedRandom int

func (f fixedRandom) Intn(n int) int {
	return int(f) % n
}

func testConfig(seed int64) Config {
	return Config{
		Tuning:   DefaultTuning(),
		Random:   NewRandom(seed),
		BirdMask: solidMask(68, 48),
		PipeMask: solidMask(104, 640),
	}
}

// hover jumps whenever the bird sinks below y.
func hover(y float64) Source {
	return SourceFunc(func(s Snapshot) []Event {
		if s.Bird.Y > y {
			return []Event{EventJump}
		}
		return nil
	})
}
