package media

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAssets(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	img := imaging.New(4, 4, color.NRGBA{R: 26, G: 43, B: 74, A: 255})
	require.NoError(t, imaging.Save(img, filepath.Join(dir, "good.png")))
	require.NoError(t, imaging.Save(img, filepath.Join(dir, "with space.jpg")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.jpg"), []byte("not an image"), 0o644))
	return dir
}

func TestResolve(t *testing.T) {
	r := NewResolver(setupAssets(t), "/projects")

	tests := []struct {
		src    string
		failed bool
	}{
		{"/projects/good.png", false},
		{"/projects/with%20space.jpg", false},
		{"/projects/broken.jpg", true},
		{"/projects/missing.jpg", true},
		{"/elsewhere/good.png", true},
		{"/projects/../good.png", true},
		{"", true},
		{"https://example.com/remote.jpg", false},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			img := r.Resolve(tt.src, "alt text")
			assert.Equal(t, tt.failed, img.Failed)
			assert.Equal(t, tt.src, img.Src)
			assert.Equal(t, "alt text", img.Alt)
		})
	}
}

func TestResolve_FailureIsolatedAndCached(t *testing.T) {
	dir := setupAssets(t)
	r := NewResolver(dir, "/projects/")

	assert.True(t, r.Resolve("/projects/late.png", "").Failed)
	assert.False(t, r.Resolve("/projects/good.png", "").Failed)

	// no retry: the first result sticks even once the file appears
	img := imaging.New(2, 2, color.White)
	require.NoError(t, imaging.Save(img, filepath.Join(dir, "late.png")))
	assert.True(t, r.Resolve("/projects/late.png", "").Failed)
}
