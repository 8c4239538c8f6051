package catalog

import (
	"testing"

	"github.com/jonathan/template-finder/internal/schemas"
	"github.com/jonathan/template-finder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantIDs []string
		wantErr bool
	}{
		{
			name:    "bare array",
			input:   `[{"id":"a","name":"Alpha"},{"id":"b","name":"Beta","tags":["tech"]}]`,
			wantIDs: []string{"a", "b"},
		},
		{
			name:    "envelope",
			input:   `{"templates":[{"id":"a","name":"Alpha","category":"Modern"}]}`,
			wantIDs: []string{"a"},
		},
		{
			name:    "empty array",
			input:   `[]`,
			wantIDs: []string{},
		},
		{
			name:    "missing name",
			input:   `[{"id":"a"}]`,
			wantErr: true,
		},
		{
			name:    "ats score out of range",
			input:   `[{"id":"a","name":"Alpha","atsScore":140}]`,
			wantErr: true,
		},
		{
			name:    "duplicate ids",
			input:   `[{"id":"a","name":"Alpha"},{"id":" a ","name":"Again"}]`,
			wantErr: true,
		},
		{
			name:    "not json",
			input:   `templates`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := Decode([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			ids := make([]string, 0, len(records))
			for _, rec := range records {
				ids = append(ids, rec.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestDecode_SchemaErrorIsTyped(t *testing.T) {
	_, err := Decode([]byte(`[{"id":"","name":"Blank"}]`))
	require.Error(t, err)

	var validationErr *schemas.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestDecode_FillsLists(t *testing.T) {
	records, err := Decode([]byte(`[{"id":"a","name":"Alpha","tags":null,"atsScore":88.5}]`))
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.NotNil(t, records[0].Tags)
	assert.NotNil(t, records[0].Keywords)
	require.NotNil(t, records[0].ATSScore)
	assert.InDelta(t, 88.5, *records[0].ATSScore, 0.001)
}

func TestNormalize(t *testing.T) {
	input := []types.TemplateRecord{
		{ID: "  a  ", Name: "Alpha", Tags: []string{"x"}},
		{ID: "b", Name: "Beta"},
	}

	out, err := Normalize(input)
	require.NoError(t, err)
	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, []string{}, out[1].Tags)
	assert.Equal(t, []string{}, out[1].Keywords)

	out[0].Tags[0] = "changed"
	assert.Equal(t, "x", input[0].Tags[0], "input must not be modified")
	assert.Equal(t, "  a  ", input[0].ID)

	_, err = Normalize([]types.TemplateRecord{{ID: "   "}})
	assert.Error(t, err)
}
