package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// GestureType represents different types of gestures on the cover art
type GestureType int

const (
	GestureNone GestureType = iota
	GestureTap
	GestureSwipeLeft
	GestureSwipeRight
)

// DefaultSwipeThreshold is the horizontal distance a drag must cover to count as a swipe
const DefaultSwipeThreshold float32 = 50.0

// classifySwipe determines the direction of a finished drag. Mostly vertical
// or short drags are not swipes.
func classifySwipe(dx, dy, threshold float32) GestureType {
	absDx := dx
	if absDx < 0 {
		absDx = -absDx
	}
	absDy := dy
	if absDy < 0 {
		absDy = -absDy
	}

	if absDx < threshold || absDx <= absDy {
		return GestureNone
	}
	if dx > 0 {
		return GestureSwipeRight
	}
	return GestureSwipeLeft
}

// CoverArt shows the track cover and reports taps and horizontal swipes
type CoverArt struct {
	widget.BaseWidget

	image     *canvas.Image
	onGesture func(GestureType)
	threshold float32

	// Drag tracking
	dragDX float32
	dragDY float32
}

var (
	_ fyne.Tappable  = (*CoverArt)(nil)
	_ fyne.Draggable = (*CoverArt)(nil)
)

// NewCoverArt creates a cover widget of the given size
func NewCoverArt(res fyne.Resource, size fyne.Size, onGesture func(GestureType)) *CoverArt {
	image := canvas.NewImageFromResource(res)
	image.FillMode = canvas.ImageFillContain
	image.SetMinSize(size)

	c := &CoverArt{
		image:     image,
		onGesture: onGesture,
		threshold: DefaultSwipeThreshold,
	}
	c.ExtendBaseWidget(c)
	return c
}

// SetResource replaces the displayed image
func (c *CoverArt) SetResource(res fyne.Resource) {
	if c.image.Resource == res {
		return
	}
	c.image.Resource = res
	c.image.Refresh()
}

// Resource returns the displayed image
func (c *CoverArt) Resource() fyne.Resource {
	return c.image.Resource
}

// CreateRenderer implements fyne.Widget
func (c *CoverArt) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.image)
}

// Tapped implements fyne.Tappable
func (c *CoverArt) Tapped(*fyne.PointEvent) {
	c.triggerGesture(GestureTap)
}

// Dragged implements fyne.Draggable
func (c *CoverArt) Dragged(event *fyne.DragEvent) {
	c.dragDX += event.Dragged.DX
	c.dragDY += event.Dragged.DY
}

// DragEnd implements fyne.Draggable
func (c *CoverArt) DragEnd() {
	gesture := classifySwipe(c.dragDX, c.dragDY, c.threshold)
	c.dragDX, c.dragDY = 0, 0
	if gesture != GestureNone {
		c.triggerGesture(gesture)
	}
}

func (c *CoverArt) triggerGesture(gesture GestureType) {
	if c.onGesture != nil {
		c.onGesture(gesture)
	}
}
