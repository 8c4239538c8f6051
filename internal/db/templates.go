package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/template-finder/internal/types"
)

// ListTemplates returns every stored template in catalog order.
func (db *DB) ListTemplates(ctx context.Context) ([]types.TemplateRecord, error) {
	rows, err := db.sql.QueryContext(ctx,
		`SELECT `+templateColumns+` FROM templates ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records := make([]types.TemplateRecord, 0)
	for rows.Next() {
		rec, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate templates: %w", err)
	}
	return records, nil
}

// ReplaceTemplates swaps the stored catalog for records in a single transaction
// and records the import. Records keep their slice order.
func (db *DB) ReplaceTemplates(ctx context.Context, source string, records []types.TemplateRecord) (*ImportRun, error) {
	tx, err := db.sql.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM templates`); err != nil {
		return nil, fmt.Errorf("failed to clear templates: %w", err)
	}

	insert := db.rebind(`INSERT INTO templates (position, ` + templateColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	for i, rec := range records {
		tags, err := json.Marshal(nonNil(rec.Tags))
		if err != nil {
			return nil, fmt.Errorf("failed to marshal tags for %s: %w", rec.ID, err)
		}
		keywords, err := json.Marshal(nonNil(rec.Keywords))
		if err != nil {
			return nil, fmt.Errorf("failed to marshal keywords for %s: %w", rec.ID, err)
		}

		var atsScore sql.NullFloat64
		if rec.ATSScore != nil {
			atsScore = sql.NullFloat64{Float64: *rec.ATSScore, Valid: true}
		}

		if _, err := tx.ExecContext(ctx, insert,
			i, rec.ID, rec.Name, rec.Category, rec.Description,
			string(tags), string(keywords), rec.Premium, rec.Popular, atsScore, rec.TemplateID,
		); err != nil {
			return nil, fmt.Errorf("failed to insert template %s: %w", rec.ID, err)
		}
	}

	run := &ImportRun{
		ID:            uuid.New(),
		Source:        source,
		TemplateCount: len(records),
		CreatedAt:     time.Now().UTC(),
	}
	if _, err := tx.ExecContext(ctx,
		db.rebind(`INSERT INTO catalog_imports (id, source, template_count, created_at) VALUES (?, ?, ?, ?)`),
		run.ID.String(), run.Source, run.TemplateCount, run.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to record import: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit templates: %w", err)
	}
	return run, nil
}

// LatestImport returns the most recent import, or nil when none exists.
func (db *DB) LatestImport(ctx context.Context) (*ImportRun, error) {
	var run ImportRun
	var id string
	err := db.sql.QueryRowContext(ctx,
		`SELECT id, source, template_count, created_at FROM catalog_imports ORDER BY created_at DESC LIMIT 1`,
	).Scan(&id, &run.Source, &run.TemplateCount, &run.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest import: %w", err)
	}

	run.ID, err = uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid import id %q: %w", id, err)
	}
	return &run, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTemplate(row rowScanner) (types.TemplateRecord, error) {
	var rec types.TemplateRecord
	var tags, keywords string
	var atsScore sql.NullFloat64

	if err := row.Scan(
		&rec.ID, &rec.Name, &rec.Category, &rec.Description,
		&tags, &keywords, &rec.Premium, &rec.Popular, &atsScore, &rec.TemplateID,
	); err != nil {
		return rec, fmt.Errorf("failed to scan template: %w", err)
	}

	if err := json.Unmarshal([]byte(tags), &rec.Tags); err != nil {
		return rec, fmt.Errorf("invalid tags for template %s: %w", rec.ID, err)
	}
	if err := json.Unmarshal([]byte(keywords), &rec.Keywords); err != nil {
		return rec, fmt.Errorf("invalid keywords for template %s: %w", rec.ID, err)
	}
	rec.Tags = nonNil(rec.Tags)
	rec.Keywords = nonNil(rec.Keywords)
	if atsScore.Valid {
		score := atsScore.Float64
		rec.ATSScore = &score
	}
	return rec, nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
