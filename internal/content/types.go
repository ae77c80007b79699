// Package content holds the static records the portfolio renders and loads them
// from JSON files.
package content

// Layout values for image grids.
const (
	LayoutGrid     = ""
	LayoutFeatured = "featured"
)

// Profile is the hero section.
type Profile struct {
	Name      string   `json:"name" validate:"required"`
	Headline  string   `json:"headline" validate:"required"`
	Summary   []string `json:"summary"`
	Photo     string   `json:"photo"`
	CV        string   `json:"cv"`
	CVName    string   `json:"cv_name"`
	LinkedIn  string   `json:"linkedin" validate:"omitempty,url"`
	Email     string   `json:"email" validate:"omitempty,email"`
	Phone     string   `json:"phone"`
	Location  string   `json:"location"`
	Copyright string   `json:"copyright"`
}

// Education is a single degree entry.
type Education struct {
	Institution string   `json:"institution" validate:"required"`
	Degree      string   `json:"degree" validate:"required"`
	Date        string   `json:"date"`
	Logo        string   `json:"logo"`
	Highlights  []string `json:"highlights"`
}

// SkillCategory groups skills under a heading.
type SkillCategory struct {
	Title  string   `json:"title" validate:"required"`
	Skills []string `json:"skills" validate:"min=1"`
}

// Skills is the bento grid of the skills section.
type Skills struct {
	Technical  []SkillCategory `json:"technical" validate:"dive"`
	Industrial []string        `json:"industrial"`
	Design     []SkillCategory `json:"design" validate:"dive"`
}

// Team is one team within a work item.
type Team struct {
	Name       string   `json:"name"`
	Highlights []string `json:"highlights"`
	Images     []string `json:"images,omitempty"`
}

// WorkItem is a single position.
type WorkItem struct {
	Company  string   `json:"company" validate:"required"`
	Role     string   `json:"role" validate:"required"`
	Date     string   `json:"date" validate:"required"`
	Location string   `json:"location"`
	Logo     string   `json:"logo,omitempty"`
	Layout   string   `json:"layout,omitempty" validate:"omitempty,oneof=featured"`
	Teams    []Team   `json:"teams" validate:"dive"`
	Images   []string `json:"images"`
}

// Project is an entry in the projects section.
type Project struct {
	Title      string   `json:"title" validate:"required"`
	Date       string   `json:"date"`
	Highlights []string `json:"highlights"`
	Images     []string `json:"images,omitempty"`
	Layout     string   `json:"layout,omitempty" validate:"omitempty,oneof=featured"`
}

// Certification links to a certificate document. Date and ValidUntil are
// each optional.
type Certification struct {
	Title      string `json:"title" validate:"required"`
	Issuer     string `json:"issuer" validate:"required"`
	Date       string `json:"date,omitempty"`
	ValidUntil string `json:"valid_until,omitempty"`
	Link       string `json:"link" validate:"required"`
}

// Reel is a social video link attached to a leadership entry.
type Reel struct {
	Title string `json:"title" validate:"required"`
	URL   string `json:"url" validate:"required,url"`
}

// LeadershipItem is an entry in the leadership section.
type LeadershipItem struct {
	Organization string   `json:"organization" validate:"required"`
	Role         string   `json:"role" validate:"required"`
	Date         string   `json:"date"`
	Location     string   `json:"location"`
	Highlights   []string `json:"highlights"`
	Images       []string `json:"images,omitempty"`
	Reels        []Reel   `json:"reels,omitempty" validate:"dive"`
	Instagram    string   `json:"instagram,omitempty" validate:"omitempty,url"`
}

// Project3D is a SOLIDWORKS project shown in the CAD view.
type Project3D struct {
	Title       string   `json:"title" validate:"required"`
	Date        string   `json:"date"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
	Images      []string `json:"images"`
	Layout      string   `json:"layout,omitempty" validate:"omitempty,oneof=featured"`
}

// Drawing is an AutoCAD entry shown in the CAD view.
type Drawing struct {
	Title       string   `json:"title" validate:"required"`
	Date        string   `json:"date"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
	Images      []string `json:"images"`
}

// Design is a graphic design piece shown in the design view.
type Design struct {
	Title       string   `json:"title" validate:"required"`
	Date        string   `json:"date"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Images      []string `json:"images" validate:"min=1"`
}

// Content is everything the site renders. It is not modified after Load.
type Content struct {
	Profile        Profile
	Education      []Education      `validate:"dive"`
	Skills         Skills
	Work           []WorkItem       `validate:"dive"`
	Projects       []Project        `validate:"dive"`
	Certifications []Certification  `validate:"dive"`
	Leadership     []LeadershipItem `validate:"dive"`
	Projects3D     []Project3D      `validate:"dive"`
	Drawings       []Drawing        `validate:"dive"`
	Designs        []Design         `validate:"dive"`

	groups map[string]Group
	links  []Link
}
