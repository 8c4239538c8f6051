package schemas

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/jonathan/template-finder/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateCatalog_EmbeddedMatchesFile(t *testing.T) {
	data, err := os.ReadFile(TemplateCatalogPath)
	require.NoError(t, err)
	assert.Equal(t, data, TemplateCatalog)
}

func TestTemplateCatalog_ValidJSONSchema(t *testing.T) {
	var schemaObj map[string]interface{}
	require.NoError(t, json.Unmarshal(TemplateCatalog, &schemaObj))

	_, hasSchema := schemaObj["$schema"]
	_, hasDefs := schemaObj["definitions"]
	assert.True(t, hasSchema)
	assert.True(t, hasDefs)
}

func TestTemplateCatalog_AcceptsBothShapes(t *testing.T) {
	docs := []string{
		`[]`,
		`[{"id": "modern-1", "name": "Modern"}]`,
		`{"templates": [{"id": "modern-1", "name": "Modern", "tags": ["tech"], "atsScore": 92, "premium": false}]}`,
		`[{"id": "x", "name": "X", "tags": null, "keywords": null, "atsScore": null, "image": "/x.png"}]`,
	}

	for _, doc := range docs {
		assert.NoError(t, schemas.ValidateJSONBytes(TemplateCatalog, []byte(doc)), doc)
	}
}

func TestTemplateCatalog_RejectsInvalidDocuments(t *testing.T) {
	docs := []string{
		`{"items": []}`,
		`[{"name": "No id"}]`,
		`[{"id": "", "name": "Empty id"}]`,
		`[{"id": "a", "name": "A", "tags": "tech"}]`,
		`[{"id": "a", "name": "A", "atsScore": 140}]`,
		`"templates"`,
	}

	for _, doc := range docs {
		err := schemas.ValidateJSONBytes(TemplateCatalog, []byte(doc))
		require.Error(t, err, doc)

		var validationErr *schemas.ValidationError
		assert.ErrorAs(t, err, &validationErr, doc)
	}
}
