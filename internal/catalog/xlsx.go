package catalog

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jonathan/template-finder/internal/types"
	"github.com/xuri/excelize/v2"
)

// Column headers recognized in XLSX catalogs, matched case-insensitively.
const (
	columnID          = "id"
	columnName        = "name"
	columnCategory    = "category"
	columnDescription = "description"
	columnTags        = "tags"
	columnKeywords    = "keywords"
	columnPremium     = "premium"
	columnPopular     = "popular"
	columnATSScore    = "atsscore"
	columnTemplateID  = "templateid"
)

// XLSXColumns lists the catalog columns in the order written by exports.
var XLSXColumns = []string{"id", "name", "category", "description", "tags", "keywords", "premium", "popular", "atsScore", "templateId"}

// DecodeXLSX reads templates from the first sheet of a workbook. The first
// row holds column headers; tags and keywords are comma or semicolon separated.
func DecodeXLSX(r io.Reader) ([]types.TemplateRecord, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return []types.TemplateRecord{}, nil
	}

	columns := make(map[string]int, len(rows[0]))
	for i, header := range rows[0] {
		key := strings.ToLower(strings.TrimSpace(header))
		key = strings.ReplaceAll(key, "_", "")
		columns[key] = i
	}
	for _, required := range []string{columnID, columnName} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("sheet %s is missing the %q column", sheets[0], required)
		}
	}

	records := make([]types.TemplateRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		cell := func(column string) string {
			idx, ok := columns[column]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		if cell(columnID) == "" && cell(columnName) == "" {
			continue
		}

		rowNum := i + 2
		rec := types.TemplateRecord{
			ID:          cell(columnID),
			Name:        cell(columnName),
			Category:    cell(columnCategory),
			Description: cell(columnDescription),
			Tags:        splitList(cell(columnTags)),
			Keywords:    splitList(cell(columnKeywords)),
			TemplateID:  cell(columnTemplateID),
		}

		if rec.Premium, err = parseFlag(cell(columnPremium)); err != nil {
			return nil, fmt.Errorf("row %d: premium: %w", rowNum, err)
		}
		if rec.Popular, err = parseFlag(cell(columnPopular)); err != nil {
			return nil, fmt.Errorf("row %d: popular: %w", rowNum, err)
		}
		if raw := cell(columnATSScore); raw != "" {
			score, err := strconv.ParseFloat(raw, 64)
			if err != nil || score < 0 || score > 100 {
				return nil, fmt.Errorf("row %d: atsScore %q is not a number between 0 and 100", rowNum, raw)
			}
			rec.ATSScore = &score
		}

		records = append(records, rec)
	}

	return Normalize(records)
}

func splitList(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ';' })
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func parseFlag(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "", "0", "false", "no", "n":
		return false, nil
	case "1", "true", "yes", "y":
		return true, nil
	default:
		return false, fmt.Errorf("unrecognized flag value %q", raw)
	}
}
