package lightbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var images = []string{"/a.jpg", "/b.jpg", "/c.jpg", "/d.jpg"}

func TestNext_Wraps(t *testing.T) {
	n := len(images)
	for start := 0; start < n; start++ {
		for steps := 0; steps <= 3*n; steps++ {
			var l Lightbox
			l.OpenAt(images, start)
			for i := 0; i < steps; i++ {
				l.Next()
			}
			assert.Equal(t, (start+steps)%n, l.Index, "start=%d steps=%d", start, steps)
		}
	}
}

func TestPrev_Wraps(t *testing.T) {
	n := len(images)
	for start := 0; start < n; start++ {
		for steps := 0; steps <= 3*n; steps++ {
			var l Lightbox
			l.OpenAt(images, start)
			for i := 0; i < steps; i++ {
				l.Prev()
			}
			want := ((start-steps)%n + n) % n
			assert.Equal(t, want, l.Index, "start=%d steps=%d", start, steps)
		}
	}
}

func TestOpenAt(t *testing.T) {
	var l Lightbox
	l.OpenAt(images, 2)
	assert.True(t, l.Open)
	assert.Equal(t, images, l.Images)
	assert.Equal(t, 2, l.Index)
	assert.Equal(t, "/c.jpg", l.Current())
	assert.Equal(t, 3, l.Position())
}

func TestOpenAt_ReplacesSequence(t *testing.T) {
	var l Lightbox
	l.OpenAt(images, 3)
	l.Close()

	other := []string{"/x.jpg", "/y.jpg"}
	l.OpenAt(other, 1)
	assert.True(t, l.Open)
	assert.Equal(t, other, l.Images)
	assert.Equal(t, "/y.jpg", l.Current())
}

func TestOpenAt_OutOfRangeIndexWraps(t *testing.T) {
	var l Lightbox
	l.OpenAt(images, 5)
	assert.Equal(t, 1, l.Index)

	l.OpenAt(images, -1)
	assert.Equal(t, 3, l.Index)
}

func TestClose_KeepsSequence(t *testing.T) {
	var l Lightbox
	l.OpenAt(images, 1)
	l.Close()
	assert.False(t, l.Open)
	assert.Equal(t, images, l.Images)
	assert.Equal(t, 1, l.Index)
}

func TestEmpty(t *testing.T) {
	var l Lightbox
	l.Next()
	l.Prev()
	assert.Equal(t, 0, l.Index)
	assert.Empty(t, l.Current())

	l.OpenAt(nil, 3)
	assert.True(t, l.Open)
	assert.Equal(t, 0, l.Index)
}
