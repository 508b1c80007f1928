package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gamearea/component"
	"github.com/lixenwraith/gamearea/core"
	"github.com/lixenwraith/gamearea/vmath"
)

// action is the outcome of one key press
type action int

const (
	actionNone action = iota
	actionQuit
	actionToggleStatus
	actionSaveSnapshot
)

// page scroll moves by a quarter of the visible size
func pageStep(n int) int {
	return max(n/4, 1)
}

// handleKey applies vi-style and arrow bindings to c
//
//	h j k l / arrows  scroll x/y       H J K L  page scroll
//	PgUp / u          level up         PgDn / d level down
//	g                 origin           m        toggle projection
//	c                 center           r        refresh area
//	s                 toggle status
//	w                 save snapshot    q Esc ^C quit
func handleKey(c *component.GameComponent, ev *tcell.EventKey) action {
	size := c.BoundableSize()

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyLeft:
		c.ScrollLeftBy(1)
	case tcell.KeyRight:
		c.ScrollRightBy(1)
	case tcell.KeyUp:
		c.ScrollBackwardBy(1)
	case tcell.KeyDown:
		c.ScrollForwardBy(1)
	case tcell.KeyPgUp:
		c.ScrollUpBy(1)
	case tcell.KeyPgDn:
		c.ScrollDownBy(1)
	case tcell.KeyHome:
		c.ScrollTo(core.Point3D{})
	case tcell.KeyRune:
		return handleRune(c, ev.Rune(), size)
	}
	return actionNone
}

func handleRune(c *component.GameComponent, r rune, size core.Size) action {
	switch r {
	case 'q':
		return actionQuit
	case 'h':
		c.ScrollLeftBy(1)
	case 'l':
		c.ScrollRightBy(1)
	case 'k':
		c.ScrollBackwardBy(1)
	case 'j':
		c.ScrollForwardBy(1)
	case 'H':
		c.ScrollLeftBy(pageStep(size.Width))
	case 'L':
		c.ScrollRightBy(pageStep(size.Width))
	case 'K':
		c.ScrollBackwardBy(pageStep(size.Height))
	case 'J':
		c.ScrollForwardBy(pageStep(size.Height))
	case 'u':
		c.ScrollUpBy(1)
	case 'd':
		c.ScrollDownBy(1)
	case 'g':
		c.ScrollTo(core.Point3D{})
	case 'c':
		center := vmath.SpaceCenter(c.VirtualSpaceSize())
		center.Z = c.VisibleOffset().Z
		c.CenterOn(center)
	case 'm':
		c.SetProjectionMode(c.ProjectionMode().Next())
	case 'r':
		c.GiveFocus(nil)
	case 's':
		return actionToggleStatus
	case 'w':
		return actionSaveSnapshot
	}
	return actionNone
}
