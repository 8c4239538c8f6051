// Package export writes search results, recommendations and catalogs as XLSX workbooks.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/template-finder/internal/catalog"
	"github.com/jonathan/template-finder/internal/types"
	"github.com/xuri/excelize/v2"
)

// Sheet names used by the writers.
const (
	SheetSearch          = "Search Results"
	SheetRecommendations = "Recommendations"
	SheetCatalog         = "Templates"
)

const defaultSheet = "Sheet1"

var searchHeaders = []string{"Rank", "ID", "Name", "Category", "Relevance", "Matched Fields", "Premium", "Popular", "ATS Score", "Builder URL"}

var recommendationHeaders = []string{"Rank", "ID", "Name", "Category", "Score", "Match %", "Reasons", "Premium", "Popular", "ATS Score", "Builder URL"}

// WriteSearchResults writes ranked search results as a single-sheet workbook.
func WriteSearchResults(w io.Writer, results []types.SearchResult) error {
	rows := make([][]interface{}, 0, len(results))
	for i, r := range results {
		fields := make([]string, 0, len(r.MatchDetails))
		for _, d := range r.MatchDetails {
			fields = append(fields, d.Field)
		}
		rows = append(rows, []interface{}{
			i + 1, r.ID, r.Name, r.Category, r.RelevanceScore, strings.Join(fields, ", "),
			r.Premium, r.Popular, atsValue(r.ATSScore), r.BuilderURL,
		})
	}
	return writeWorkbook(w, SheetSearch, searchHeaders, rows)
}

// WriteRecommendations writes quiz recommendations as a single-sheet workbook.
func WriteRecommendations(w io.Writer, recs []types.Recommendation) error {
	rows := make([][]interface{}, 0, len(recs))
	for i, r := range recs {
		rows = append(rows, []interface{}{
			i + 1, r.ID, r.Name, r.Category, r.Score, r.MatchPercentage, strings.Join(r.Reasons, "; "),
			r.Premium, r.Popular, atsValue(r.ATSScore), r.BuilderURL,
		})
	}
	return writeWorkbook(w, SheetRecommendations, recommendationHeaders, rows)
}

// WriteCatalog writes templates using the columns read back by catalog.DecodeXLSX.
func WriteCatalog(w io.Writer, records []types.TemplateRecord) error {
	rows := make([][]interface{}, 0, len(records))
	for _, r := range records {
		rows = append(rows, []interface{}{
			r.ID, r.Name, r.Category, r.Description,
			strings.Join(r.Tags, ", "), strings.Join(r.Keywords, ", "),
			r.Premium, r.Popular, atsValue(r.ATSScore), r.TemplateID,
		})
	}
	return writeWorkbook(w, SheetCatalog, catalog.XLSXColumns, rows)
}

func atsValue(score *float64) interface{} {
	if score == nil {
		return ""
	}
	return *score
}

func writeWorkbook(w io.Writer, sheet string, headers []string, rows [][]interface{}) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(defaultSheet, sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	row, err := writeHeader(f, sheet, 0, headers)
	if err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if len(rows) > 0 {
		if err := applyDataCellStyle(f, sheet, 1, row+1, len(headers), row+len(rows)); err != nil {
			return fmt.Errorf("failed to style rows: %w", err)
		}
	}
	for _, values := range rows {
		row++
		for col, value := range values {
			if err := writeColumn(f, sheet, col+1, row, value); err != nil {
				return fmt.Errorf("failed to write row %d: %w", row, err)
			}
		}
	}

	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze header: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeColumn(f *excelize.File, sheet string, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}

// writeHeader writes a bold header row after row and returns its row number.
func writeHeader(f *excelize.File, sheet string, row int, headers []string) (int, error) {
	row++
	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E7EEF7"}},
	})
	if err != nil {
		return row, err
	}

	cellFirst, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return row, err
	}
	cellLast, err := excelize.CoordinatesToCellName(len(headers), row)
	if err != nil {
		return row, err
	}
	if err := f.SetCellStyle(sheet, cellFirst, cellLast, style); err != nil {
		return row, err
	}

	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return row, err
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 22); err != nil {
		return row, err
	}

	for idx, value := range headers {
		if err := writeColumn(f, sheet, idx+1, row, value); err != nil {
			return row, err
		}
	}
	return row, nil
}

func applyDataCellStyle(f *excelize.File, sheet string, colFrom, rowFrom, colTo, rowTo int) error {
	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center", WrapText: true},
		Font:      &excelize.Font{Size: 11},
	})
	if err != nil {
		return err
	}
	cellFirst, err := excelize.CoordinatesToCellName(colFrom, rowFrom)
	if err != nil {
		return err
	}
	cellLast, err := excelize.CoordinatesToCellName(colTo, rowTo)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, cellFirst, cellLast, style)
}
