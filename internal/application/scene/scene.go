// Package scene defines the Scene interface for game screens.
//
// Each game screen implements the Scene interface to handle its own
// update logic and rendering.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene represents a game screen.
//
// The frontend delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update polls input for the scene.
	// dt is the delta time in seconds (typically 1/60).
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnResize is called when the drawing surface changes size, and once
	// before the first Draw.
	OnResize(widthPx, heightPx int)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene or closing the window.
	// Background work started in OnEnter must be stopped here.
	OnExit()
}
