// Package reveal describes the scroll-triggered entrance of page blocks.
package reveal

import (
	"fmt"
	"html/template"
	"time"
)

// Direction is where content slides in from.
type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

const (
	DefaultDistance = 40
	DefaultDuration = 800 * time.Millisecond
)

// Options configure one wrapper.
type Options struct {
	Direction Direction
	Distance  int
	Duration  time.Duration
	Delay     time.Duration
	// Once latches the content visible after the first time it enters view.
	Once bool
}

// Defaults returns an upward, once-only reveal.
func Defaults() Options {
	return Options{
		Direction: Up,
		Distance:  DefaultDistance,
		Duration:  DefaultDuration,
		Once:      true,
	}
}

// WithDelay returns a copy delayed by d.
func (o Options) WithDelay(d time.Duration) Options {
	o.Delay = d
	return o
}

// Offset is the resting-state displacement content starts from.
func (o Options) Offset() (x, y int) {
	d := o.Distance
	switch o.Direction {
	case Down:
		return 0, -d
	case Left:
		return d, 0
	case Right:
		return -d, 0
	}
	return 0, d
}

// Attrs renders the wrapper's data attributes and initial style. The page
// script shows the content on intersection and, unless Once is set, hides it
// again when it leaves the viewport.
func (o Options) Attrs() template.HTMLAttr {
	x, y := o.Offset()
	return template.HTMLAttr(fmt.Sprintf(
		`data-reveal data-reveal-once="%t" style="opacity:0;transform:translate(%dpx,%dpx);transition:opacity %dms,transform %dms;transition-delay:%dms"`,
		o.Once, x, y, o.Duration.Milliseconds(), o.Duration.Milliseconds(), o.Delay.Milliseconds(),
	))
}
