package sushi

import "math"

// Camera converts between world distance and screen rows and turns forward
// player movement past the trigger line into scroll.
type Camera struct {
	Scroll   float64 // Scroll accumulator, world units travelled
	Height   float64 // Viewport height
	Trigger  float64 // Screen Y of the scroll trigger line
	locked   bool
	lockedAt float64
}

// NewCamera creates a camera for a viewport of the given height.
// triggerFrac is the trigger line as a fraction of the height.
func NewCamera(height, triggerFrac float64) Camera {
	return Camera{
		Height:  height,
		Trigger: height * triggerFrac,
	}
}

// WorldToScreen converts a world distance to a screen Y.
func (c *Camera) WorldToScreen(worldY float64) float64 {
	return c.Height - (worldY - c.Scroll)
}

// ScreenToWorld converts a screen Y to a world distance.
func (c *Camera) ScreenToWorld(screenY float64) float64 {
	return c.Scroll + c.Height - screenY
}

// Distance is the integer progress through the level.
func (c *Camera) Distance() int {
	return int(math.Floor(c.Scroll))
}

// Lock freezes the scroll accumulator at its current value.
func (c *Camera) Lock() {
	c.locked = true
	c.lockedAt = c.Scroll
}

// Unlock lets the scroll accumulator advance again.
func (c *Camera) Unlock() {
	c.locked = false
}

// Locked reports whether the camera is frozen.
func (c *Camera) Locked() bool {
	return c.locked
}

// Advance takes the desired player screen Y and returns the Y the player
// actually ends up at. Above the trigger line the deficit becomes scroll and
// the player stays on the line. A locked camera never scrolls.
func (c *Camera) Advance(desiredY float64) float64 {
	if c.locked {
		c.Scroll = c.lockedAt
		return desiredY
	}
	if desiredY < c.Trigger {
		c.Scroll += c.Trigger - desiredY
		return c.Trigger
	}
	return desiredY
}
