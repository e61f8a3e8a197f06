package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState holds the polled state of inputs for a single frame.
// This separates input polling from input handling logic, so the
// handling code can be driven by synthetic states in tests.
type InputState struct {
	Quit             bool
	ToggleFullscreen bool
	ToggleDebug      bool
	Reset            bool
	ActualSize       bool
	NextImage        bool
	PrevImage        bool

	// Mouse state
	WheelY               float64
	PrimaryJustPressed   bool // Left mouse button just pressed
	PrimaryHeld          bool // Left mouse button is being held down
	SecondaryJustPressed bool // Right mouse button just pressed
	MiddleJustPressed    bool // Middle mouse button just pressed
	MouseX, MouseY       int
}

// PollInput gathers all raw input events for the current frame.
func PollInput() InputState {
	_, wheelY := ebiten.Wheel()
	mx, my := ebiten.CursorPosition()
	return InputState{
		Quit:             inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		ToggleFullscreen: inpututil.IsKeyJustPressed(ebiten.KeyF) || inpututil.IsKeyJustPressed(ebiten.KeyF11),
		ToggleDebug:      inpututil.IsKeyJustPressed(ebiten.KeyD),
		Reset:            inpututil.IsKeyJustPressed(ebiten.KeyR),
		ActualSize:       inpututil.IsKeyJustPressed(ebiten.Key0),
		NextImage:        inpututil.IsKeyJustPressed(ebiten.KeyRight),
		PrevImage:        inpututil.IsKeyJustPressed(ebiten.KeyLeft),

		// Mouse state
		WheelY:               wheelY,
		PrimaryJustPressed:   inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		PrimaryHeld:          ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		SecondaryJustPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		MiddleJustPressed:    inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle),
		MouseX:               mx,
		MouseY:               my,
	}
}
