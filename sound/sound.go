// Package sound synthesizes the game's effects and plays them through the
// ebiten audio context.
package sound

import (
	"encoding/binary"
	"log"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const SampleRate = 44100

type Effect int

const (
	Flap Effect = iota
	Point
	Hit
	effectCount
)

// tone is a sine sweep with a linear fade out.
type tone struct {
	from, to float64 // Hz
	seconds  float64
	volume   float64
}

var tones = [effectCount][]tone{
	Flap:  {{from: 520, to: 880, seconds: 0.08, volume: 0.35}},
	Point: {{from: 988, to: 988, seconds: 0.07, volume: 0.3}, {from: 1319, to: 1319, seconds: 0.16, volume: 0.3}},
	Hit:   {{from: 220, to: 60, seconds: 0.25, volume: 0.5}},
}

var (
	audioOnce sync.Once
	audioCtx  *audio.Context
)

func audioContext() *audio.Context {
	audioOnce.Do(func() {
		audioCtx = audio.CurrentContext()
		if audioCtx == nil {
			audioCtx = audio.NewContext(SampleRate)
		}
	})
	return audioCtx
}

// PCM renders tones as 16-bit little-endian stereo, the layout
// audio.Context.NewPlayerFromBytes expects.
func PCM(sampleRate int, parts ...tone) []byte {
	var out []byte
	for _, t := range parts {
		n := int(t.seconds * float64(sampleRate))
		buf := make([]byte, n*4)
		phase := 0.0
		for i := 0; i < n; i++ {
			p := float64(i) / float64(n)
			v := int16(math.Sin(phase) * t.volume * (1 - p) * math.MaxInt16)
			freq := t.from + (t.to-t.from)*p
			phase += 2 * math.Pi * freq / float64(sampleRate)
			binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
			binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
		}
		out = append(out, buf...)
	}
	return out
}

// Player plays the game's effects. A nil *Player is silent.
type Player struct {
	players [effectCount]*audio.Player
}

func NewPlayer() *Player {
	ctx := audioContext()
	s := &Player{}
	for i, parts := range tones {
		s.players[i] = ctx.NewPlayerFromBytes(PCM(ctx.SampleRate(), parts...))
	}
	return s
}

func (s *Player) Play(e Effect) {
	if s == nil || e < 0 || e >= effectCount {
		return
	}
	p := s.players[e]
	if p == nil {
		return
	}
	if err := p.Rewind(); err != nil {
		log.Printf("sound: rewind effect %d: %v", e, err)
		return
	}
	p.Play()
}
