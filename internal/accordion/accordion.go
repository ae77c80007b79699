// Package accordion tracks which expandable blocks are open.
package accordion

// State maps an entity key to its expanded flag. Missing keys are collapsed.
type State map[string]bool

// Toggle flips key and returns the new flag.
func (s State) Toggle(key string) bool {
	open := !s[key]
	if open {
		s[key] = true
	} else {
		delete(s, key)
	}
	return open
}

// Expanded reports whether key is open.
func (s State) Expanded(key string) bool {
	return s[key]
}
