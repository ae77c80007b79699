package content

import (
	"fmt"
	"strings"
	"unicode"
)

// Key kinds. A key names both an accordion block and the image list it reveals.
const (
	KindCompany    = "company"
	KindTeam       = "team"
	KindProject    = "project"
	KindLeadership = "leadership"
	KindSolidworks = "solidworks"
	KindAutoCAD    = "autocad"
	KindDesign     = "design"
)

// Key builds the namespaced key for an entity.
func Key(kind, name string) string {
	return kind + ":" + name
}

// TeamKey keys a team by its company so equal team names at different
// companies stay independent.
func TeamKey(company, team string) string {
	return Key(KindTeam, company+"/"+team)
}

// Group is an image list together with how it is captioned and laid out.
type Group struct {
	Key    string
	Label  string
	Layout string
	Images []string
}

// Group returns the image group registered under key.
func (c *Content) Group(key string) (Group, bool) {
	g, ok := c.groups[key]
	return g, ok
}

// Images returns the image list registered under key.
func (c *Content) Images(key string) ([]string, bool) {
	g, ok := c.groups[key]
	return g.Images, ok
}

// GroupCount is the number of registered image groups.
func (c *Content) GroupCount() int {
	return len(c.groups)
}

// GridClass picks the grid variant for n images.
func GridClass(n int) string {
	switch {
	case n <= 1:
		return "grid-1"
	case n == 2:
		return "grid-2"
	case n == 3:
		return "grid-3"
	default:
		return "grid-4"
	}
}

// Link is a document the site counts clicks for.
type Link struct {
	Slug   string
	Title  string
	Target string
}

// Links returns the tracked documents in page order.
func (c *Content) Links() []Link {
	return c.links
}

// LinkBySlug looks up a tracked document.
func (c *Content) LinkBySlug(slug string) (Link, bool) {
	for _, l := range c.links {
		if l.Slug == slug {
			return l, true
		}
	}
	return Link{}, false
}

// LinkPath returns the counting redirect for target, or target itself when
// it is not tracked.
func (c *Content) LinkPath(target string) string {
	for _, l := range c.links {
		if l.Target == target {
			return "/go/" + l.Slug
		}
	}
	return target
}

// Slugify lowercases s and collapses every run of other characters into a
// single dash.
func Slugify(s string) string {
	var sb strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			dash = false
			continue
		}
		if !dash && sb.Len() > 0 {
			sb.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(sb.String(), "-")
}

func (c *Content) index() error {
	c.groups = make(map[string]Group)
	add := func(key, label, layout string, imgs []string) error {
		if len(imgs) == 0 {
			return nil
		}
		if _, dup := c.groups[key]; dup {
			return fmt.Errorf("duplicate image group %q", key)
		}
		c.groups[key] = Group{Key: key, Label: label, Layout: layout, Images: imgs}
		return nil
	}

	for _, w := range c.Work {
		if err := add(Key(KindCompany, w.Company), w.Company, w.Layout, w.Images); err != nil {
			return err
		}
		for _, t := range w.Teams {
			if err := add(TeamKey(w.Company, t.Name), t.Name, LayoutGrid, t.Images); err != nil {
				return err
			}
		}
	}
	for _, p := range c.Projects {
		if err := add(Key(KindProject, p.Title), p.Title, p.Layout, p.Images); err != nil {
			return err
		}
	}
	for _, l := range c.Leadership {
		if err := add(Key(KindLeadership, l.Organization), l.Organization, LayoutGrid, l.Images); err != nil {
			return err
		}
	}
	for _, p := range c.Projects3D {
		if err := add(Key(KindSolidworks, p.Title), p.Title, p.Layout, p.Images); err != nil {
			return err
		}
	}
	for _, d := range c.Drawings {
		if err := add(Key(KindAutoCAD, d.Title), d.Title, LayoutGrid, d.Images); err != nil {
			return err
		}
	}
	for _, d := range c.Designs {
		if err := add(Key(KindDesign, d.Title), d.Title, LayoutGrid, d.Images); err != nil {
			return err
		}
	}

	c.links = nil
	seen := make(map[string]bool)
	track := func(title, target string) {
		if target == "" {
			return
		}
		slug := Slugify(title)
		for i := 2; seen[slug]; i++ {
			slug = fmt.Sprintf("%s-%d", Slugify(title), i)
		}
		seen[slug] = true
		c.links = append(c.links, Link{Slug: slug, Title: title, Target: target})
	}
	track("cv", c.Profile.CV)
	for _, cert := range c.Certifications {
		track(cert.Title, cert.Link)
	}
	return nil
}
