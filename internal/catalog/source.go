package catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonathan/template-finder/internal/db"
	"github.com/jonathan/template-finder/internal/fetch"
	logging "github.com/jonathan/template-finder/internal/logger"
	"github.com/jonathan/template-finder/internal/types"
	"go.uber.org/zap"
)

// Source provides a snapshot of the template catalog.
type Source interface {
	Load(ctx context.Context) ([]types.TemplateRecord, error)
}

// StaticSource serves a fixed in-memory catalog.
type StaticSource struct {
	Records []types.TemplateRecord
}

// Load returns a copy of the records.
func (s *StaticSource) Load(_ context.Context) ([]types.TemplateRecord, error) {
	out := make([]types.TemplateRecord, len(s.Records))
	copy(out, s.Records)
	return out, nil
}

// FileSource reads a JSON or XLSX catalog from disk.
type FileSource struct {
	Path string
}

// Load reads and decodes the file, choosing the format by extension.
func (s *FileSource) Load(_ context.Context) ([]types.TemplateRecord, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, &Error{Source: s.Path, Message: "failed to read file", Cause: err}
	}

	records, err := decodeByName(s.Path, data)
	if err != nil {
		return nil, &Error{Source: s.Path, Message: "failed to decode catalog", Cause: err}
	}
	return records, nil
}

// HTTPSource downloads a JSON catalog.
type HTTPSource struct {
	URL     string
	Options *fetch.Options
	// Retries is the number of extra attempts after a retryable failure
	Retries int
	Backoff time.Duration
	Logger  *zap.Logger
}

// Load fetches and decodes the catalog, retrying transient failures.
func (s *HTTPSource) Load(ctx context.Context) ([]types.TemplateRecord, error) {
	logger := logging.OrNop(s.Logger)
	backoff := s.Backoff
	if backoff <= 0 {
		backoff = 200 * time.Millisecond
	}

	var result *fetch.Result
	var err error
	for attempt := 0; ; attempt++ {
		result, err = fetch.URL(ctx, s.URL, s.Options)
		if err == nil {
			break
		}

		var fetchErr *fetch.Error
		if !errors.As(err, &fetchErr) || !fetchErr.Retryable || attempt >= s.Retries {
			return nil, &Error{Source: s.URL, Message: "failed to fetch catalog", Cause: err}
		}

		logger.Warn("retrying catalog fetch",
			zap.String("url", s.URL),
			zap.Int("attempt", attempt+1),
			zap.Error(err),
		)
		select {
		case <-ctx.Done():
			return nil, &Error{Source: s.URL, Message: "fetch canceled", Cause: ctx.Err()}
		case <-time.After(backoff * time.Duration(attempt+1)):
		}
	}

	records, err := Decode(result.Body)
	if err != nil {
		return nil, &Error{Source: s.URL, Message: "failed to decode catalog", Cause: err}
	}
	return records, nil
}

// DBSource reads the catalog stored in SQL.
type DBSource struct {
	DB *db.DB
}

// Load lists the stored templates.
func (s *DBSource) Load(ctx context.Context) ([]types.TemplateRecord, error) {
	records, err := s.DB.ListTemplates(ctx)
	if err != nil {
		return nil, &Error{Source: "db", Message: "failed to load templates", Cause: err}
	}
	return records, nil
}

// decodeByName picks the decoder from a file or object name.
func decodeByName(name string, data []byte) ([]types.TemplateRecord, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx":
		return DecodeXLSX(bytes.NewReader(data))
	case ".json", "":
		return Decode(data)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", filepath.Ext(name))
	}
}

// readAllLimited reads at most limit bytes, failing when r holds more.
func readAllLimited(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("object exceeds %d bytes", limit)
	}
	return data, nil
}
