package nav

import (
	"testing"

	"github.com/mtmuztaba/portfolio/internal/view"
	"github.com/stretchr/testify/assert"
)

func TestVisible(t *testing.T) {
	assert.False(t, Visible(0, DefaultThreshold))
	assert.False(t, Visible(300, DefaultThreshold))
	assert.True(t, Visible(301, DefaultThreshold))
	assert.True(t, Visible(5000, DefaultThreshold))
}

var allOffsets = map[string]float64{
	"hero":           0,
	"education":      900,
	"skills":         1500,
	"experience":     2400,
	"projects":       4000,
	"certifications": 5200,
	"leadership":     6100,
}

func TestActiveSection(t *testing.T) {
	items := view.NavItems(view.All)

	tests := []struct {
		name    string
		scrollY float64
		want    string
	}{
		{"top of page", 0, "hero"},
		{"just before education line", 599, "hero"},
		{"education at upper third", 600, "education"},
		{"middle of experience", 3000, "experience"},
		{"bottom", 9000, "leadership"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// viewport 900 puts the line 300px below scrollY
			got := ActiveSection(items, allOffsets, tt.scrollY, 900, "previous")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestActiveSection_NoMatchKeepsCurrent(t *testing.T) {
	items := view.NavItems(view.All)
	offsets := map[string]float64{"hero": 500, "education": 900}

	got := ActiveSection(items, offsets, 0, 600, "skills")
	assert.Equal(t, "skills", got)
}

func TestActiveSection_SkipsMissingElements(t *testing.T) {
	items := view.NavItems(view.CAD)
	// the CAD sections are not on the page yet
	offsets := map[string]float64{"hero": 0, "education": 900, "skills": 1500}

	got := ActiveSection(items, offsets, 5000, 900, "hero")
	assert.Equal(t, "skills", got)
}

func TestState_Update(t *testing.T) {
	items := view.NavItems(view.All)
	s := New(items)
	assert.False(t, s.Visible)
	assert.Equal(t, "hero", s.Active)

	s.Update(Report{ScrollY: 0, ViewportHeight: 900, Offsets: allOffsets}, items, DefaultThreshold)
	assert.False(t, s.Visible)
	assert.Equal(t, "hero", s.Active)

	s.Update(Report{ScrollY: 2500, ViewportHeight: 900, Offsets: allOffsets}, items, DefaultThreshold)
	assert.True(t, s.Visible)
	assert.Equal(t, "experience", s.Active)

	// a report with no offsets leaves the highlight alone
	s.Update(Report{ScrollY: 2600, ViewportHeight: 900}, items, DefaultThreshold)
	assert.Equal(t, "experience", s.Active)
}

func TestState_Reset(t *testing.T) {
	s := State{Visible: true, Active: "skills"}
	s.Reset(view.NavItems(view.CAD))
	assert.Equal(t, "skills", s.Active)

	s.Active = "projects"
	s.Reset(view.NavItems(view.Design))
	assert.Equal(t, "hero", s.Active)
	assert.True(t, s.Visible)

	s.Reset(nil)
	assert.Empty(t, s.Active)
}
