package content

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Default(t *testing.T) {
	c, err := Load(Default())
	require.NoError(t, err)

	assert.Equal(t, "Mushfique Tanzim Muztaba", c.Profile.Name)
	assert.NotEmpty(t, c.Work)
	assert.NotEmpty(t, c.Projects)
	assert.Len(t, c.Certifications, 6)
	assert.NotEmpty(t, c.Leadership)
	assert.NotEmpty(t, c.Projects3D)
	assert.NotEmpty(t, c.Drawings)
	assert.NotEmpty(t, c.Designs)
}

func TestLoad_CertificationOptionalDates(t *testing.T) {
	c, err := Load(Default())
	require.NoError(t, err)

	green := c.Certifications[0]
	assert.Empty(t, green.Date)
	assert.Equal(t, "March 2028", green.ValidUntil)

	gears := c.Certifications[2]
	assert.Equal(t, "July 27, 2023", gears.Date)
	assert.Empty(t, gears.ValidUntil)
}

// copyDefault returns a writable copy of the embedded content.
func copyDefault(t *testing.T) fstest.MapFS {
	t.Helper()
	m := fstest.MapFS{}
	c := &Content{}
	for _, src := range c.sources() {
		data, err := dataFS.ReadFile("data/" + src.file)
		require.NoError(t, err)
		m[src.file] = &fstest.MapFile{Data: data}
	}
	return m
}

func TestLoad_MissingFile(t *testing.T) {
	fsys := copyDefault(t)
	delete(fsys, "designs.json")

	_, err := Load(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "designs.json")
}

func TestLoad_SchemaViolation(t *testing.T) {
	fsys := copyDefault(t)
	fsys["certifications.json"] = &fstest.MapFile{Data: []byte(`[{"title": "No issuer", "link": "/x.pdf"}]`)}

	_, err := Load(fsys)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.Errors)
	assert.Contains(t, err.Error(), "certifications.json")
}

func TestLoad_UnknownLayoutRejected(t *testing.T) {
	fsys := copyDefault(t)
	fsys["projects.json"] = &fstest.MapFile{Data: []byte(`[{"title": "P", "date": "2024", "highlights": [], "layout": "carousel"}]`)}

	_, err := Load(fsys)
	require.Error(t, err)
}

func TestLoad_StructValidation(t *testing.T) {
	fsys := copyDefault(t)
	// passes the schema but not the email rule
	fsys["profile.json"] = &fstest.MapFile{Data: []byte(`{"name": "A", "headline": "B", "email": "not-an-email"}`)}

	_, err := Load(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestValidateJSON(t *testing.T) {
	schema := []byte(`{"type": "object", "required": ["a"]}`)

	assert.NoError(t, ValidateJSON(schema, []byte(`{"a": 1}`)))

	err := ValidateJSON(schema, []byte(`{}`))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "(root)", verr.Errors[0].Field)
}
