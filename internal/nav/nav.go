// Package nav tracks the floating navigation: whether it is shown and which
// section it highlights.
package nav

import "github.com/mtmuztaba/portfolio/internal/view"

// DefaultThreshold is the scroll offset in pixels past which the nav shows.
const DefaultThreshold = 300

// Report is what the browser sends on every scroll event. Offsets holds the
// top offset of each section element present on the page, keyed by id.
type Report struct {
	ScrollY        float64            `json:"scrollY"`
	ViewportHeight float64            `json:"viewportHeight"`
	Offsets        map[string]float64 `json:"offsets"`
}

// State is the nav as last rendered for a visitor.
type State struct {
	Visible bool   `json:"visible"`
	Active  string `json:"active"`
}

// Visible reports whether the nav shows at scrollY.
func Visible(scrollY, threshold float64) bool {
	return scrollY > threshold
}

// ActiveSection picks the last item whose section top is at or above the
// upper third of the viewport. Items without an offset are skipped. When
// nothing qualifies, current is returned unchanged.
func ActiveSection(items []view.NavItem, offsets map[string]float64, scrollY, viewportHeight float64, current string) string {
	line := scrollY + viewportHeight/3
	for i := len(items) - 1; i >= 0; i-- {
		top, ok := offsets[items[i].ID]
		if ok && top <= line {
			return items[i].ID
		}
	}
	return current
}

// New returns the state for a fresh page: hidden, with the first item active.
func New(items []view.NavItem) State {
	s := State{}
	if len(items) > 0 {
		s.Active = items[0].ID
	}
	return s
}

// Update recomputes visibility and the active section from a scroll report.
func (s *State) Update(r Report, items []view.NavItem, threshold float64) {
	s.Visible = Visible(r.ScrollY, threshold)
	s.Active = ActiveSection(items, r.Offsets, r.ScrollY, r.ViewportHeight, s.Active)
}

// Reset is called when the item set changes with the view. The active
// section survives if the new set still contains it.
func (s *State) Reset(items []view.NavItem) {
	for _, it := range items {
		if it.ID == s.Active {
			return
		}
	}
	if len(items) > 0 {
		s.Active = items[0].ID
	} else {
		s.Active = ""
	}
}
