package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/flappy/sim"
)

// Keyboard holds this frame's edge-triggered input from the keyboard, the
// mouse, touches and the first gamepad.
type Keyboard struct {
	// JumpPressed is Space, Up, W, left click, a new touch or the gamepad's
	// primary button.
	JumpPressed bool
	// QuitPressed is F12.
	QuitPressed bool
	// PausePressed is Escape, P or the gamepad start button. The game reads
	// it; the simulation never sees it.
	PausePressed bool
	// ConfirmPressed is Enter.
	ConfirmPressed bool
}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

var jumpKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}

// Update samples input. Call it once at the start of every ebiten Update.
func (k *Keyboard) Update() {
	k.QuitPressed = inpututil.IsKeyJustPressed(ebiten.KeyF12)
	k.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP)
	k.ConfirmPressed = inpututil.IsKeyJustPressed(ebiten.KeyEnter)

	jump := false
	for _, key := range jumpKeys {
		if inpututil.IsKeyJustPressed(key) {
			jump = true
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		jump = true
	}
	if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		jump = true
	}

	if ids := ebiten.AppendGamepadIDs(nil); len(ids) > 0 {
		gid := ids[0]
		if inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightBottom) {
			jump = true
		}
		if inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight) {
			k.PausePressed = true
		}
	}
	k.JumpPressed = jump
}

// Poll turns the sampled frame into simulation events.
func (k *Keyboard) Poll(_ sim.Snapshot) []sim.Event {
	var events []sim.Event
	if k.QuitPressed {
		events = append(events, sim.EventQuit)
	}
	if k.JumpPressed {
		events = append(events, sim.EventJump)
	}
	return events
}
