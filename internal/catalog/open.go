package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/template-finder/internal/db"
	"github.com/jonathan/template-finder/internal/fetch"
	"go.uber.org/zap"
)

// Deps carries the shared clients that some sources need.
type Deps struct {
	DB      *db.DB
	Objects ObjectFetcher
	Fetch   *fetch.Options
	Retries int
	Logger  *zap.Logger
}

// Open builds a Source from a URI: a file path or file:// URI, an http(s)
// URL, an s3://bucket/key object, or "db" for the SQL store.
func Open(uri string, deps Deps) (Source, error) {
	uri = strings.TrimSpace(uri)
	switch {
	case uri == "":
		return nil, fmt.Errorf("catalog URI is empty")
	case uri == "db":
		if deps.DB == nil {
			return nil, fmt.Errorf("catalog source %q requires a database", uri)
		}
		return &DBSource{DB: deps.DB}, nil
	case strings.HasPrefix(uri, "http://"), strings.HasPrefix(uri, "https://"):
		return &HTTPSource{
			URL:     uri,
			Options: deps.Fetch,
			Retries: deps.Retries,
			Backoff: 200 * time.Millisecond,
			Logger:  deps.Logger,
		}, nil
	case strings.HasPrefix(uri, "s3://"):
		if deps.Objects == nil {
			return nil, fmt.Errorf("catalog source %q requires an object store", uri)
		}
		bucket, key, err := ParseObjectURI(uri)
		if err != nil {
			return nil, err
		}
		return &ObjectSource{Fetcher: deps.Objects, Bucket: bucket, Key: key}, nil
	case strings.Contains(uri, "://") && !strings.HasPrefix(uri, "file://"):
		return nil, fmt.Errorf("unsupported catalog URI scheme in %q", uri)
	default:
		return &FileSource{Path: strings.TrimPrefix(uri, "file://")}, nil
	}
}

// OpenAll opens every URI and combines them. A single URI is returned as is.
func OpenAll(uris []string, deps Deps) (Source, error) {
	if len(uris) == 0 {
		return nil, fmt.Errorf("no catalog sources configured")
	}

	sources := make([]Source, 0, len(uris))
	for _, uri := range uris {
		src, err := Open(uri, deps)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}
	if len(sources) == 1 {
		return sources[0], nil
	}
	return &MultiSource{Sources: sources, Logger: deps.Logger}, nil
}
