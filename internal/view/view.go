// Package view defines the three page views and the sections each exposes.
package view

import "fmt"

// View selects which experience sections are rendered.
type View string

const (
	All    View = "all"
	CAD    View = "cad"
	Design View = "design"

	Default = All
)

// Option is a view as offered by the selector.
type Option struct {
	View  View
	Label string
}

var options = []Option{
	{All, "All Experiences"},
	{CAD, "Computer Aided Designs"},
	{Design, "Graphic Designs"},
}

// Views returns the selector options in display order.
func Views() []Option {
	out := make([]Option, len(options))
	copy(out, options)
	return out
}

// Parse validates a view identifier.
func Parse(s string) (View, error) {
	switch v := View(s); v {
	case All, CAD, Design:
		return v, nil
	}
	return "", fmt.Errorf("unknown view %q", s)
}

// Valid reports whether v is one of the three views.
func (v View) Valid() bool {
	_, err := Parse(string(v))
	return err == nil
}

func (v View) String() string {
	return string(v)
}

// NavItem is an entry in the floating navigation.
type NavItem struct {
	ID         string
	Label      string
	ShortLabel string
}

var (
	home       = NavItem{"hero", "Home", "Home"}
	education  = NavItem{"education", "Education", "Edu"}
	skills     = NavItem{"skills", "Skills", "Skills"}
	experience = NavItem{"experience", "Experience", "Work"}
	projects   = NavItem{"projects", "Projects", "Projects"}
	certs      = NavItem{"certifications", "Certs", "Certs"}
	leadership = NavItem{"leadership", "Leadership", "Lead"}
	solidworks = NavItem{"solidworks", "SOLIDWORKS", "SW"}
	autocad    = NavItem{"autocad", "AutoCAD", "CAD"}
	designs    = NavItem{"design", "Graphic Designs", "Design"}
)

// NavItems returns the sections the floating navigation offers in v.
// Anything that is not a view gets Home only.
func NavItems(v View) []NavItem {
	switch v {
	case All:
		return []NavItem{home, education, skills, experience, projects, certs, leadership}
	case CAD:
		return []NavItem{home, education, skills, solidworks, autocad}
	case Design:
		return []NavItem{home, education, skills, designs}
	}
	return []NavItem{home}
}

// Sections names the templates rendered below the view selector.
func Sections(v View) []string {
	switch v {
	case CAD:
		return []string{"cad"}
	case Design:
		return []string{"designs"}
	}
	return []string{"experience", "projects", "certifications", "leadership"}
}
