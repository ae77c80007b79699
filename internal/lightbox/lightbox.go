// Package lightbox implements the full-view image browser state.
package lightbox

// Lightbox holds the image sequence being browsed. Images and Index may be
// stale while closed; OpenAt replaces both.
type Lightbox struct {
	Images []string `json:"images"`
	Index  int      `json:"index"`
	Open   bool     `json:"open"`
}

// OpenAt shows images starting at index. An out-of-range index wraps.
func (l *Lightbox) OpenAt(images []string, index int) {
	l.Images = images
	l.Index = wrap(index, len(images))
	l.Open = true
}

// Close hides the lightbox.
func (l *Lightbox) Close() {
	l.Open = false
}

// Next advances one image, wrapping from last to first.
func (l *Lightbox) Next() {
	l.step(1)
}

// Prev goes back one image, wrapping from first to last.
func (l *Lightbox) Prev() {
	l.step(-1)
}

func (l *Lightbox) step(d int) {
	n := len(l.Images)
	if n == 0 {
		return
	}
	l.Index = (l.Index + d + n) % n
}

// Current is the image shown, or "" when there is none.
func (l *Lightbox) Current() string {
	if l.Index < 0 || l.Index >= len(l.Images) {
		return ""
	}
	return l.Images[l.Index]
}

// Position is the 1-based index for display.
func (l *Lightbox) Position() int {
	return l.Index + 1
}

func wrap(i, n int) int {
	if n == 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
