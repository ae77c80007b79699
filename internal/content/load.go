package content

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path"

	"github.com/go-playground/validator/v10"
	"github.com/xeipuuv/gojsonschema"
	"golang.org/x/sync/errgroup"
)

//go:embed data/*.json
var dataFS embed.FS

//go:embed schemas/*.schema.json
var schemaFS embed.FS

// Default returns the content shipped with the binary.
func Default() fs.FS {
	sub, err := fs.Sub(dataFS, "data")
	if err != nil {
		// the embed pattern guarantees the directory exists
		panic(err)
	}
	return sub
}

// Dir returns the content in dir, or the embedded default when dir is empty.
func Dir(dir string) fs.FS {
	if dir == "" {
		return Default()
	}
	return os.DirFS(dir)
}

// source ties a content file to its schema and decode target.
type source struct {
	file   string
	schema string
	target any
}

func (c *Content) sources() []source {
	return []source{
		{"profile.json", "profile", &c.Profile},
		{"education.json", "education", &c.Education},
		{"skills.json", "skills", &c.Skills},
		{"work.json", "work", &c.Work},
		{"projects.json", "projects", &c.Projects},
		{"certifications.json", "certifications", &c.Certifications},
		{"leadership.json", "leadership", &c.Leadership},
		{"projects3d.json", "projects3d", &c.Projects3D},
		{"drawings.json", "drawings", &c.Drawings},
		{"designs.json", "designs", &c.Designs},
	}
}

// Load reads and validates every content file in fsys.
func Load(fsys fs.FS) (*Content, error) {
	c := &Content{}

	var g errgroup.Group
	for _, src := range c.sources() {
		g.Go(func() error {
			return loadFile(fsys, src)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return nil, fmt.Errorf("content failed validation: %w", err)
	}
	if err := c.index(); err != nil {
		return nil, fmt.Errorf("failed to index content: %w", err)
	}

	log.Printf("Content loaded: %d work items, %d projects, %d certifications, %d leadership entries, %d CAD projects, %d designs",
		len(c.Work), len(c.Projects), len(c.Certifications), len(c.Leadership), len(c.Projects3D), len(c.Designs))
	return c, nil
}

func loadFile(fsys fs.FS, src source) error {
	data, err := fs.ReadFile(fsys, src.file)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", src.file, err)
	}

	schema, err := schemaFS.ReadFile(path.Join("schemas", src.schema+".schema.json"))
	if err != nil {
		return fmt.Errorf("missing schema for %s: %w", src.file, err)
	}
	if err := ValidateJSON(schema, data); err != nil {
		return fmt.Errorf("%s: %w", src.file, err)
	}

	if err := json.Unmarshal(data, src.target); err != nil {
		return fmt.Errorf("failed to parse %s: %w", src.file, err)
	}
	return nil
}

// ValidateJSON validates document against schema.
func ValidateJSON(schema, document []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewBytesLoader(document),
	)
	if err != nil {
		return &SchemaLoadError{Message: "schema validation failed during load", Cause: err}
	}
	if result.Valid() {
		return nil
	}

	verr := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		verr.Errors = append(verr.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return verr
}
