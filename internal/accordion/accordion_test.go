package accordion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultCollapsed(t *testing.T) {
	s := State{}
	assert.False(t, s.Expanded("project:Fan"))
}

func TestToggle(t *testing.T) {
	s := State{}
	assert.True(t, s.Toggle("project:Fan"))
	assert.True(t, s.Expanded("project:Fan"))
	assert.False(t, s.Toggle("project:Fan"))
	assert.False(t, s.Expanded("project:Fan"))
}

func TestToggleTwiceRestores(t *testing.T) {
	for _, initial := range []bool{false, true} {
		s := State{}
		if initial {
			s.Toggle("k")
		}
		s.Toggle("k")
		s.Toggle("k")
		assert.Equal(t, initial, s.Expanded("k"))
	}
}

func TestKeysIndependent(t *testing.T) {
	s := State{}
	s.Toggle("team:CLP/Chassis")
	assert.False(t, s.Expanded("company:CLP"))
	assert.False(t, s.Expanded("team:Racing/Chassis"))

	s.Toggle("company:CLP")
	s.Toggle("company:CLP")
	assert.True(t, s.Expanded("team:CLP/Chassis"))
}
