package catalog

import (
	"context"
	"sync"
	"time"

	logging "github.com/jonathan/template-finder/internal/logger"
	"github.com/jonathan/template-finder/internal/types"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// MultiSource loads several sources in parallel and concatenates them in
// source order. When two sources share an id the earlier record wins.
type MultiSource struct {
	Sources []Source
	Logger  *zap.Logger
}

// Load fails when any source fails.
func (m *MultiSource) Load(ctx context.Context) ([]types.TemplateRecord, error) {
	logger := logging.OrNop(m.Logger)

	loaded := make([][]types.TemplateRecord, len(m.Sources))
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range m.Sources {
		g.Go(func() error {
			records, err := src.Load(gctx)
			if err != nil {
				return err
			}
			loaded[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]types.TemplateRecord, 0)
	seen := make(map[string]bool)
	for i, records := range loaded {
		skipped := 0
		for _, rec := range records {
			if seen[rec.ID] {
				skipped++
				continue
			}
			seen[rec.ID] = true
			out = append(out, rec)
		}
		if skipped > 0 {
			logger.Warn("skipped duplicate template ids",
				zap.Int("source", i),
				zap.Int("skipped", skipped),
			)
		}
	}

	logger.Debug("catalog loaded",
		zap.Int("sources", len(m.Sources)),
		zap.Int("templates", len(out)),
	)
	return out, nil
}

// CachedSource keeps the last successful snapshot of a source for TTL.
// A zero TTL disables caching.
type CachedSource struct {
	Source Source
	TTL    time.Duration
	Logger *zap.Logger

	mu       sync.Mutex
	records  []types.TemplateRecord
	loadedAt time.Time
	now      func() time.Time
}

// NewCachedSource wraps src with a TTL cache.
func NewCachedSource(src Source, ttl time.Duration, logger *zap.Logger) *CachedSource {
	return &CachedSource{Source: src, TTL: ttl, Logger: logging.OrNop(logger), now: time.Now}
}

// Load returns the cached snapshot while fresh, reloading otherwise.
func (c *CachedSource) Load(ctx context.Context) ([]types.TemplateRecord, error) {
	if c.TTL <= 0 {
		return c.Source.Load(ctx)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock()
	if c.records != nil && now.Sub(c.loadedAt) < c.TTL {
		return c.snapshot(), nil
	}

	records, err := c.Source.Load(ctx)
	if err != nil {
		return nil, err
	}
	c.records = records
	c.loadedAt = now
	logging.OrNop(c.Logger).Debug("catalog cache refreshed", zap.Int("templates", len(records)))
	return c.snapshot(), nil
}

// Invalidate drops the cached snapshot.
func (c *CachedSource) Invalidate() {
	c.mu.Lock()
	c.records = nil
	c.mu.Unlock()
}

func (c *CachedSource) clock() time.Time {
	if c.now == nil {
		return time.Now()
	}
	return c.now()
}

func (c *CachedSource) snapshot() []types.TemplateRecord {
	out := make([]types.TemplateRecord, len(c.records))
	copy(out, c.records)
	return out
}
