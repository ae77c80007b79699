package site

import (
	"fmt"
	"html/template"
	"net/url"
	"time"

	"github.com/mtmuztaba/portfolio/internal/content"
	"github.com/mtmuztaba/portfolio/internal/lightbox"
	"github.com/mtmuztaba/portfolio/internal/media"
	"github.com/mtmuztaba/portfolio/internal/reveal"
	"github.com/mtmuztaba/portfolio/internal/session"
	"github.com/mtmuztaba/portfolio/internal/view"
)

// pageData is what every page and fragment template renders from.
type pageData struct {
	Content   *content.Content
	State     *session.State
	Views     []view.Option
	Threshold float64
	// Print expands every gallery, for the PDF export.
	Print bool
	// Tracking is set when visits are recorded, so the privacy notice is linked.
	Tracking bool

	images *media.Resolver
}

func (s *Server) page(st *session.State, print bool) *pageData {
	return &pageData{
		Content:   s.content,
		State:     st,
		Views:     view.Views(),
		Threshold: s.cfg.NavThreshold,
		Print:     print,
		Tracking:  s.metrics != nil,
		images:    s.images,
	}
}

// Sections lists the section templates for the active view.
func (p *pageData) Sections() []string {
	return view.Sections(p.State.View)
}

// Nav is the floating navigation for the active view.
func (p *pageData) Nav() navData {
	return navData{
		Items:   view.NavItems(p.State.View),
		Active:  p.State.Nav.Active,
		Visible: p.State.Nav.Visible,
	}
}

// NavOOB is Nav marked for an out-of-band swap.
func (p *pageData) NavOOB() navData {
	n := p.Nav()
	n.OOB = true
	return n
}

// Gallery is the accordion block for key; it is nil when key has no images.
func (p *pageData) Gallery(key string) *galleryData {
	g, ok := p.Content.Group(key)
	if !ok {
		return nil
	}
	return &galleryData{
		Key:      g.Key,
		Label:    g.Label,
		Layout:   g.Layout,
		Toggle:   true,
		Expanded: p.Print || p.State.Expanded.Expanded(key),
		Images:   p.resolve(g),
	}
}

// Grid is an always-open gallery, as the CAD and design views show them.
func (p *pageData) Grid(key string) *galleryData {
	g := p.Gallery(key)
	if g != nil {
		g.Toggle = false
		g.Expanded = true
	}
	return g
}

// Image resolves a single image for the hero and logos.
func (p *pageData) Image(src, alt string) media.Image {
	return p.images.Resolve(src, alt)
}

// Lightbox is the overlay state.
func (p *pageData) Lightbox() lightboxData {
	lb := p.State.Lightbox
	d := lightboxData{Lightbox: lb, Count: len(lb.Images)}
	if lb.Open && d.Count > 0 {
		d.Position = lb.Position()
		d.Image = p.images.Resolve(lb.Current(), fmt.Sprintf("Image %d of %d", d.Position, d.Count))
	}
	return d
}

func (p *pageData) resolve(g content.Group) []media.Image {
	out := make([]media.Image, len(g.Images))
	for i, src := range g.Images {
		out[i] = p.images.Resolve(src, fmt.Sprintf("%s - Image %d", g.Label, i+1))
	}
	return out
}

type navData struct {
	Items   []view.NavItem
	Active  string
	Visible bool
	OOB     bool
}

type galleryData struct {
	Key      string
	Label    string
	Layout   string
	Toggle   bool
	Expanded bool
	Images   []media.Image
}

// Featured splits the images into the three-up row and the large fourth.
func (g *galleryData) Featured() bool {
	return g.Layout == content.LayoutFeatured && len(g.Images) >= 4
}

// Thumbs pairs each image with its index for the lightbox open request.
func (g *galleryData) Thumbs() []thumbData {
	out := make([]thumbData, len(g.Images))
	for i, img := range g.Images {
		out[i] = thumbData{Group: g.Key, Index: i, Image: img}
	}
	return out
}

type thumbData struct {
	Group string
	Index int
	Image media.Image
}

type lightboxData struct {
	lightbox.Lightbox
	Count    int
	Position int
	Image    media.Image
}

func funcs(c *content.Content) template.FuncMap {
	return template.FuncMap{
		"key":     content.Key,
		"teamKey": content.TeamKey,
		"grid":    content.GridClass,
		"link":    c.LinkPath,
		"q":       url.QueryEscape,
		"reveal": func(i int) template.HTMLAttr {
			return reveal.Defaults().WithDelay(time.Duration(i) * 100 * time.Millisecond).Attrs()
		},
	}
}
