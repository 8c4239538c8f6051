package catalog

import (
	"testing"

	"github.com/jonathan/template-finder/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	deps := Deps{DB: db.New(nil, db.DialectSQLite), Objects: &fakeFetcher{}}

	tests := []struct {
		uri     string
		want    interface{}
		wantErr bool
	}{
		{uri: "catalog.json", want: &FileSource{}},
		{uri: "file:///data/catalog.xlsx", want: &FileSource{}},
		{uri: "https://example.com/templates", want: &HTTPSource{}},
		{uri: "http://localhost:8080/templates", want: &HTTPSource{}},
		{uri: "s3://bucket/catalog.json", want: &ObjectSource{}},
		{uri: "db", want: &DBSource{}},
		{uri: "ftp://host/catalog.json", wantErr: true},
		{uri: "s3://bucket", wantErr: true},
		{uri: "  ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			src, err := Open(tt.uri, deps)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, src)
		})
	}
}

func TestOpen_FilePathStripsScheme(t *testing.T) {
	src, err := Open("file:///data/catalog.json", Deps{})
	require.NoError(t, err)
	assert.Equal(t, "/data/catalog.json", src.(*FileSource).Path)
}

func TestOpen_MissingDeps(t *testing.T) {
	_, err := Open("db", Deps{})
	assert.Error(t, err)

	_, err = Open("s3://bucket/key.json", Deps{})
	assert.Error(t, err)
}

func TestOpenAll(t *testing.T) {
	_, err := OpenAll(nil, Deps{})
	assert.Error(t, err)

	single, err := OpenAll([]string{"a.json"}, Deps{})
	require.NoError(t, err)
	assert.IsType(t, &FileSource{}, single)

	multi, err := OpenAll([]string{"a.json", "https://example.com/b"}, Deps{})
	require.NoError(t, err)
	require.IsType(t, &MultiSource{}, multi)
	assert.Len(t, multi.(*MultiSource).Sources, 2)
}
